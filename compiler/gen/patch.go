package gen

import (
	"os"
	"regexp"
)

// Patcher inserts text into existing files.
type Patcher interface {
	// InsertAfter inserts text immediately after the first match of pattern
	// in the file at path. Every call inserts, even if the text is already
	// present. A missing file or an absent match is an error.
	InsertAfter(path string, pattern *regexp.Regexp, text string) error
}

// FilePatcher patches files on the local filesystem.
type FilePatcher struct{}

// InsertAfter implements Patcher.
func (FilePatcher) InsertAfter(path string, pattern *regexp.Regexp, text string) error {
	info, err := os.Stat(path)
	if err != nil {
		return NewPatchError(path, pattern.String(), err)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return NewPatchError(path, pattern.String(), err)
	}
	out, err := insertAfter(src, pattern, text)
	if err != nil {
		return NewPatchError(path, pattern.String(), err)
	}
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return NewPatchError(path, pattern.String(), err)
	}
	return nil
}

// insertAfter returns src with text inserted after the first match of pattern.
func insertAfter(src []byte, pattern *regexp.Regexp, text string) ([]byte, error) {
	loc := pattern.FindIndex(src)
	if loc == nil {
		return nil, ErrSentinelNotFound
	}
	out := make([]byte, 0, len(src)+len(text))
	out = append(out, src[:loc[1]]...)
	out = append(out, text...)
	return append(out, src[loc[1]:]...), nil
}

// RoutePatch is the insertion of a resource route into the routes file.
type RoutePatch struct {
	// File is the routes file path, relative to the application root.
	File string
	// Namespace is the routes namespace the resource is added to.
	Namespace string
	// Resource is the plural route name ("posts").
	Resource string
}

// Sentinel returns the pattern of the line the route is inserted after.
func (r *RoutePatch) Sentinel() *regexp.Regexp {
	return regexp.MustCompile(`namespace :` + regexp.QuoteMeta(r.Namespace) + `\b.*\n`)
}

// Content returns the route line, without indentation.
func (r *RoutePatch) Content() string {
	return "resources :" + r.Resource + "\n"
}

// Text returns the indented route line for the given routes file content.
// The line is indented two spaces deeper than the namespace declaration.
func (r *RoutePatch) Text(src []byte) string {
	return r.Indent(src) + "  " + r.Content()
}

// Indent returns the indentation of the namespace declaration.
func (r *RoutePatch) Indent(src []byte) string {
	re := regexp.MustCompile(`(?m)^([ \t]*)namespace :` + regexp.QuoteMeta(r.Namespace) + `\b`)
	m := re.FindSubmatch(src)
	if m == nil {
		return ""
	}
	return string(m[1])
}
