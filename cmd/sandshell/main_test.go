package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"exec", "mkdir home2", "cd home2", "touch note.txt", "git init", "git add note.txt", "git commit -m hello", "git log"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Initialized empty Git repository\nAdded note.txt\nCommitted with message: \"hello\"\ncommit 1\n    hello\n", out.String())
}

func TestExecRequiresArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"exec"})
	assert.Error(t, cmd.Execute())
}
