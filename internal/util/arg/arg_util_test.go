package arg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantName string
		wantArgs []string
	}{
		{name: "empty", line: "", wantName: "", wantArgs: nil},
		{name: "blank", line: "   \t ", wantName: "", wantArgs: nil},
		{name: "no args", line: "pwd", wantName: "pwd", wantArgs: []string{}},
		{name: "args", line: "git commit -m hi", wantName: "git", wantArgs: []string{"commit", "-m", "hi"}},
		{name: "extra spaces", line: "  cd   home ", wantName: "cd", wantArgs: []string{"home"}},
		{name: "quotes are literal", line: `git commit -m "a b"`, wantName: "git", wantArgs: []string{"commit", "-m", `"a`, `b"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, args := Split(tt.line)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestCommitMessage(t *testing.T) {
	assert.Equal(t, "hello", CommitMessage([]string{"-m", "hello"}))
	assert.Equal(t, "hello world", CommitMessage([]string{"-m", "hello", "world"}))
	assert.Equal(t, "hello", CommitMessage([]string{"hello"}))
	assert.Equal(t, "-m", CommitMessage([]string{"-m"}))
	assert.Equal(t, "a -m b", CommitMessage([]string{"-m", "a", "-m", "b"}))
}

func TestLastToken(t *testing.T) {
	tok, pos := LastToken("")
	assert.Equal(t, "", tok)
	assert.Equal(t, 0, pos)

	tok, pos = LastToken("mk")
	assert.Equal(t, "mk", tok)
	assert.Equal(t, 0, pos)

	tok, pos = LastToken("cd ho")
	assert.Equal(t, "ho", tok)
	assert.Equal(t, 1, pos)

	tok, pos = LastToken("cd ")
	assert.Equal(t, "", tok)
	assert.Equal(t, 1, pos)
}
