package cli

import (
	"errors"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandTree(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "rust-protogen", root.Use)
	assert.Equal(t, "dev", root.Version)

	names := make([]string, 0, len(root.Commands()))
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "describe")
	assert.Contains(t, names, "refpath")
	assert.Contains(t, names, "reference")
}

func TestDescribeCommandFlags(t *testing.T) {
	cmd := newDescribeCommand()
	require.NotNil(t, cmd.Flags().Lookup("kind"))
	require.NotNil(t, cmd.Flags().Lookup("wrapper"))
	require.NotNil(t, cmd.Flags().Lookup("bytes-mode"))
	assert.Equal(t, "plain", cmd.Flags().Lookup("wrapper").DefValue)
	assert.Equal(t, "default", cmd.Flags().Lookup("bytes-mode").DefValue)
}

func TestRefPathCommandFlags(t *testing.T) {
	cmd := newRefPathCommand()
	require.NotNil(t, cmd.Flags().Lookup("from"))
	require.NotNil(t, cmd.Flags().Lookup("to"))
	require.NotNil(t, cmd.Flags().Lookup("to-absolute"))
}

func TestReferenceCommandFlags(t *testing.T) {
	cmd := newReferenceCommand()
	require.NotNil(t, cmd.Flags().Lookup("summary"))
	require.NotNil(t, cmd.Flags().Lookup("type"))
	require.NotNil(t, cmd.Flags().Lookup("file"))
	require.NotNil(t, cmd.Flags().Lookup("module"))
}

func TestExitCodeForError(t *testing.T) {
	cases := []struct {
		err      error
		expected int
	}{
		{errbuilder.New().WithCode(errbuilder.CodeInvalidArgument).WithMsg("bad"), 2},
		{errbuilder.New().WithCode(errbuilder.CodeFailedPrecondition).WithMsg("no path"), 3},
		{errbuilder.New().WithCode(errbuilder.CodeNotFound).WithMsg("missing"), 4},
		{errbuilder.New().WithCode(errbuilder.CodeInternal).WithMsg("broken"), 5},
		{errors.New("plain"), 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, exitCodeForError(tc.err))
	}
}

func TestErrorMessage(t *testing.T) {
	built := errbuilder.New().WithCode(errbuilder.CodeNotFound).WithMsg("type not found")
	assert.Equal(t, "type not found", errorMessage(built))
	assert.Equal(t, "plain failure", errorMessage(errors.New("plain failure")))
}

func TestResolveHelpersWithoutCommand(t *testing.T) {
	assert.Equal(t, "direct", resolveString(nil, "direct", "missing_key", ""))
	assert.Equal(t, []string{"a"}, resolveStrings(nil, []string{"a"}, "missing_key", ""))
	assert.True(t, resolveBool(nil, true, "missing_key", ""))
	assert.False(t, flagChanged(nil, "anything"))
}

func TestFlagChanged(t *testing.T) {
	cmd := newDescribeCommand()
	assert.False(t, flagChanged(cmd, "kind"))
	require.NoError(t, cmd.Flags().Set("kind", "int32"))
	assert.True(t, flagChanged(cmd, "kind"))
	assert.False(t, flagChanged(cmd, "no-such-flag"))
}
