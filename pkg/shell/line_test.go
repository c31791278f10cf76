package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pypath/pkg/dispatcher"
)

func TestSplitFields(t *testing.T) {
	tests := []struct {
		line     string
		expected []string
	}{
		{"", nil},
		{"  %pypath  -a  ", []string{"%pypath", "-a"}},
		{`%pypath -a "a b"`, []string{"%pypath", "-a", "a b"}},
		{`%pypath -a 'x'"y"`, []string{"%pypath", "-a", "xy"}},
		{`%pypath -a ""`, []string{"%pypath", "-a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := splitFields(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseLineRequests(t *testing.T) {
	tests := []struct {
		line   string
		action dispatcher.Action
		args   []string
	}{
		{"%pypath", dispatcher.ActionList, []string{}},
		{"pypath -a", dispatcher.ActionAdd, []string{}},
		{"%pypath -a src", dispatcher.ActionAdd, []string{"src"}},
		{"%pypath -d 2", dispatcher.ActionDelete, []string{"2"}},
		{"%pypath --delete lib", dispatcher.ActionDelete, []string{"lib"}},
		{"%pypath -l", dispatcher.ActionListAll, []string{}},
		{"%PYPATH -p", dispatcher.ActionPathFile, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			parsed, err := parseLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, lineRequest, parsed.kind)
			assert.Equal(t, tt.action, parsed.req.Action)
			assert.Equal(t, tt.args, parsed.req.Args)
		})
	}
}

func TestParseLineRejectsUnknownFlag(t *testing.T) {
	_, err := parseLine("%pypath -x")
	assert.Error(t, err)
}
