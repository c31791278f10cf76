package searchpath

// Lister returns the complete runtime search path, in order.
type Lister interface {
	Entries() ([]string, error)
}

// Sink mirrors path list changes into a live search path.
type Sink interface {
	Append(path string)
	Remove(path string)
}

type nopSink struct{}

func (nopSink) Append(string) {}
func (nopSink) Remove(string) {}

// NopSink returns a Sink that ignores every change. The command-line tool
// uses it since the process exits right after persisting.
func NopSink() Sink {
	return nopSink{}
}

// Static is a fixed search path.
type Static []string

// Entries returns a copy of the static entries.
func (s Static) Entries() ([]string, error) {
	out := make([]string, len(s))
	copy(out, s)
	return out, nil
}
