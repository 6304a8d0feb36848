package vfs

import (
	"regexp"
	"strings"
)

var slashRun = regexp.MustCompile(`/+`)

// Normalize turns path into an absolute path relative to cwd.
//
// Absolute paths are returned unchanged. Relative paths are appended to cwd and
// runs of "/" are collapsed. "." and ".." segments are not interpreted.
func Normalize(path, cwd string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return slashRun.ReplaceAllString(cwd+"/"+path, "/")
}

// ParentOf drops the last non-empty segment of an absolute path.
// The parent of "/" is "/".
func ParentOf(path string) string {
	parts := segments(path)
	if len(parts) > 0 {
		parts = parts[:len(parts)-1]
	}
	return "/" + strings.Join(parts, "/")
}

func segments(path string) []string {
	var out []string
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
