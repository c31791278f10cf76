package dispatcher_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pypath/pkg/dispatcher"
	"github.com/arthur-debert/pypath/pkg/errors"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected dispatcher.Action
		wantErr  bool
	}{
		{input: "", expected: dispatcher.ActionList},
		{input: "list", expected: dispatcher.ActionList},
		{input: "add", expected: dispatcher.ActionAdd},
		{input: "delete", expected: dispatcher.ActionDelete},
		{input: "del", expected: dispatcher.ActionDelete},
		{input: "DEL", expected: dispatcher.ActionDelete},
		{input: "list-all", expected: dispatcher.ActionListAll},
		{input: "path-file", expected: dispatcher.ActionPathFile},
		{input: "remove", wantErr: true},
		{input: "list_all", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := dispatcher.ParseAction(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrUsage))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestActionStringRoundTrips(t *testing.T) {
	for _, a := range dispatcher.Actions {
		parsed, err := dispatcher.ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
		assert.NotEmpty(t, a.Description())
	}
	assert.Equal(t, "unknown", dispatcher.Action(42).String())
}

func TestActionTakesArgument(t *testing.T) {
	assert.True(t, dispatcher.ActionAdd.TakesArgument())
	assert.True(t, dispatcher.ActionDelete.TakesArgument())
	assert.False(t, dispatcher.ActionList.TakesArgument())
	assert.False(t, dispatcher.ActionListAll.TakesArgument())
	assert.False(t, dispatcher.ActionPathFile.TakesArgument())
}

func TestActionMarshalsByName(t *testing.T) {
	data, err := json.Marshal(dispatcher.Result{Action: dispatcher.ActionListAll})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"action":"list-all"`)
}
