package arg

import "strings"

// Split breaks a raw command line into the command name and its arguments.
// Tokens are separated by runs of whitespace; quotes have no meaning.
func Split(line string) (string, []string) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return "", nil
	}
	return tokens[0], tokens[1:]
}

// CommitMessage joins args with spaces and removes the first literal "-m ".
// It does not check that -m was passed at all.
func CommitMessage(args []string) string {
	return strings.Replace(strings.Join(args, " "), "-m ", "", 1)
}

// LastToken returns the token under the cursor at the end of line and its
// position (0 for the command name). A trailing space starts a new empty token.
func LastToken(line string) (string, int) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return "", 0
	}
	if strings.HasSuffix(line, " ") || strings.HasSuffix(line, "\t") {
		return "", len(tokens)
	}
	return tokens[len(tokens)-1], len(tokens) - 1
}
