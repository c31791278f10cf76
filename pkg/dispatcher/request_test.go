package dispatcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pypath/pkg/dispatcher"
	"github.com/arthur-debert/pypath/pkg/errors"
)

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     dispatcher.Request
		wantErr bool
	}{
		{"list without args", dispatcher.Request{Action: dispatcher.ActionList}, false},
		{"list with arg", dispatcher.Request{Action: dispatcher.ActionList, Args: []string{"x"}}, true},
		{"add without args", dispatcher.Request{Action: dispatcher.ActionAdd}, false},
		{"add with one arg", dispatcher.Request{Action: dispatcher.ActionAdd, Args: []string{"x"}}, false},
		{"add with two args", dispatcher.Request{Action: dispatcher.ActionAdd, Args: []string{"x", "y"}}, true},
		{"delete with one arg", dispatcher.Request{Action: dispatcher.ActionDelete, Args: []string{"0"}}, false},
		{"list-all with arg", dispatcher.Request{Action: dispatcher.ActionListAll, Args: []string{"x"}}, true},
		{"path-file with arg", dispatcher.Request{Action: dispatcher.ActionPathFile, Args: []string{"x"}}, true},
		{"unknown action", dispatcher.Request{Action: dispatcher.Action(99)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrUsage))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequestArg(t *testing.T) {
	assert.Equal(t, "", dispatcher.Request{}.Arg())
	assert.Equal(t, "lib", dispatcher.Request{Args: []string{"lib"}}.Arg())
}

func TestFromFlags(t *testing.T) {
	tests := []struct {
		name                        string
		add, del, listAll, pathFile bool
		args                        []string
		expected                    dispatcher.Action
		wantErr                     bool
	}{
		{name: "no flags lists", expected: dispatcher.ActionList},
		{name: "add", add: true, expected: dispatcher.ActionAdd},
		{name: "add with path", add: true, args: []string{"/tmp/a"}, expected: dispatcher.ActionAdd},
		{name: "delete with index", del: true, args: []string{"0"}, expected: dispatcher.ActionDelete},
		{name: "list all", listAll: true, expected: dispatcher.ActionListAll},
		{name: "path file", pathFile: true, expected: dispatcher.ActionPathFile},
		{name: "two flags", add: true, del: true, wantErr: true},
		{name: "all flags", add: true, del: true, listAll: true, pathFile: true, wantErr: true},
		{name: "argument for list all", listAll: true, args: []string{"x"}, wantErr: true},
		{name: "argument without flag", args: []string{"x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := dispatcher.FromFlags(tt.add, tt.del, tt.listAll, tt.pathFile, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrUsage))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, req.Action)
			assert.Equal(t, tt.args, req.Args)
		})
	}
}

func TestFromFlagsMultipleMessage(t *testing.T) {
	_, err := dispatcher.FromFlags(true, false, true, false, nil)
	require.Error(t, err)
	assert.Equal(t, "Only a single option allowed.", errors.UserMessage(err))
}
