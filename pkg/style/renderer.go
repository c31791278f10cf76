package style

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/pypath/pkg/dispatcher"
	"github.com/arthur-debert/pypath/pkg/errors"
)

// Renderer prints dispatcher results and errors in one output format.
type Renderer struct {
	format Format
	styles Registry
}

// NewRenderer creates a renderer using the default stylesheet.
func NewRenderer(format Format) *Renderer {
	return &Renderer{format: format, styles: Default}
}

// WithStyles replaces the stylesheet.
func (r *Renderer) WithStyles(styles Registry) *Renderer {
	r.styles = styles
	return r
}

// Format returns the configured format, which may be FormatAuto.
func (r *Renderer) Format() Format {
	return r.format
}

// PrintResult writes result to w.
func (r *Renderer) PrintResult(w io.Writer, result *dispatcher.Result) error {
	switch Resolve(r.format, w) {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatTerminal:
		return writeLines(w, r.styledLines(result))
	case FormatText, FormatAuto:
		return writeLines(w, result.Lines)
	default:
		return writeLines(w, result.Lines)
	}
}

// PrintError writes err to w.
func (r *Renderer) PrintError(w io.Writer, err error) error {
	msg := errors.UserMessage(err)

	switch Resolve(r.format, w) {
	case FormatJSON:
		return writeJSON(w, errorView{
			Error:   msg,
			Code:    errors.GetErrorCode(err),
			Details: errors.GetErrorDetails(err),
		})
	case FormatTerminal:
		line := r.styles.Get("Error").Render("Error:") + " " + msg
		if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
			line += " " + r.styles.Get("ErrorCode").Render("("+string(code)+")")
		}
		return writeLines(w, []string{line})
	case FormatText, FormatAuto:
		return writeLines(w, []string{"Error: " + msg})
	default:
		return writeLines(w, []string{"Error: " + msg})
	}
}

type errorView struct {
	Error   string                 `json:"error"`
	Code    errors.ErrorCode       `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (r *Renderer) styledLines(result *dispatcher.Result) []string {
	path := r.styles.Get("Path")

	if result.Empty {
		muted := r.styles.Get("Muted")
		lines := make([]string, len(result.Lines))
		for i, line := range result.Lines {
			lines[i] = muted.Render(line)
		}
		return lines
	}

	switch result.Action {
	case dispatcher.ActionList:
		index := r.styles.Get("Index")
		lines := make([]string, len(result.Entries))
		for i, e := range result.Entries {
			lines[i] = index.Render(fmt.Sprintf("%d.", e.Index)) + path.Render(e.Path)
		}
		return lines
	case dispatcher.ActionAdd:
		return []string{fmt.Sprintf("%s '%s' to path.",
			r.styles.Get("Success").Render("Added"), path.Render(result.Path))}
	case dispatcher.ActionDelete:
		return []string{fmt.Sprintf("%s '%s' from path",
			r.styles.Get("Deleted").Render("Deleted"), path.Render(result.Path))}
	case dispatcher.ActionListAll, dispatcher.ActionPathFile:
		lines := make([]string, len(result.Lines))
		for i, line := range result.Lines {
			lines[i] = path.Render(line)
		}
		return lines
	default:
		return result.Lines
	}
}

func writeLines(w io.Writer, lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
