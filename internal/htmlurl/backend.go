// Package htmlurl implements C5: pulling URL-bearing attribute values out
// of a candidate string that looks like an embedded HTML fragment, via a
// selectable parsing backend.
package htmlurl

// urlAttributes are the plain attribute names checked on every element.
var urlAttributes = []string{"href", "src", "action", "formaction", "poster", "background"}

// Backend parses an HTML fragment and returns every attribute value worth
// considering as a URL candidate.
type Backend interface {
	Extract(fragment string) []string
}

// New returns the named backend. Unknown names fall back to the goquery
// backend, the engine's default.
func New(name string) Backend {
	switch name {
	case "tokenizer", "x/net":
		return TokenizerBackend{}
	default:
		return GoqueryBackend{}
	}
}

// looksLikeHTML reports whether s is a candidate for C5 HTML-embedded
// extraction: trimmed, it starts with '<' or contains a DOCTYPE
// declaration.
func looksLikeHTML(s string) bool {
	trimmed := trimSpace(s)
	if trimmed == "" {
		return false
	}
	if trimmed[0] == '<' {
		return true
	}
	return containsFold(trimmed, "<!DOCTYPE")
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && isSpace(s[start]) {
		start++
	}
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func containsFold(s, substr string) bool {
	ls, lsub := len(s), len(substr)
	if lsub == 0 || lsub > ls {
		return false
	}
	for i := 0; i+lsub <= ls; i++ {
		if equalFold(s[i:i+lsub], substr) {
			return true
		}
	}
	return false
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// IsURLLike is the lightweight heuristic applied to data-* attribute
// values, which unlike the fixed attribute list aren't guaranteed to hold
// URLs: it accepts anything containing a slash (which includes "://"); a
// value with a scheme colon but no slash, such as "tel:1", is rejected.
func IsURLLike(v string) bool {
	for i := 0; i < len(v); i++ {
		if v[i] == '/' {
			return true
		}
	}
	return containsFold(v, "://")
}
