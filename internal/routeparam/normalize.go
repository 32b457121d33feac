// Package routeparam implements C4: rewriting :name and [NAME] route
// parameter syntax into the engine's canonical {name} form.
package routeparam

import "regexp"

var (
	colonParam   = regexp.MustCompile(`(^|/):([A-Za-z_][A-Za-z0-9_]*)`)
	bracketParam = regexp.MustCompile(`\[([A-Za-z_][A-Za-z0-9_]*)\]`)
)

// Normalize rewrites every `:name` and `[NAME]` route-parameter occurrence
// in s to `{name}` / `{NAME}` form. Only the normalized form is retained;
// callers never see the original syntax in the returned string.
func Normalize(s string) string {
	s = colonParam.ReplaceAllString(s, `${1}{${2}}`)
	s = bracketParam.ReplaceAllString(s, `{$1}`)
	return s
}
