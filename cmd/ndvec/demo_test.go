package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoCommand(t *testing.T) {
	root := NewRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"demo"})

	require.NoError(t, root.Execute())

	out := buf.String()
	assert.Contains(t, out, "a x b       = [[19 22] [43 50]]")
	assert.Contains(t, out, "broadcast   = [[10 20] [10 20]]")
	assert.Contains(t, out, "a unchanged = [[1 2] [3 4]]")
}
