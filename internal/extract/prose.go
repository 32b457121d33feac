package extract

import (
	"regexp"
	"strings"
)

// proseIndicators are phrases common to React/Vue runtime warnings and
// other developer-facing error text bundled verbatim into production JS.
var proseIndicators = []string{
	"has been deprecated",
	"must be one of",
	"called on incompatible",
	"please change",
	"this means",
	"will never render",
	"in favor of",
	"for the full message",
	"minified",
	"invariant",
	"warning:",
	"error:",
}

var embeddedURLRe = regexp.MustCompile(`https?://[^\s<>"'{}|\\^` + "`" + `\[\]]+`)

// looksLikeProse reports whether text reads as a log/warning message
// rather than a URL or path literal: it either contains one of the
// common runtime-warning phrases, or simply has enough whitespace to be
// prose and doesn't itself start like a URL or path.
func looksLikeProse(text string) bool {
	if strings.Contains(text, "<") && strings.Contains(text, ">") {
		return false
	}
	lower := strings.ToLower(text)
	for _, ind := range proseIndicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	if strings.Contains(text, "useRoutes()") {
		return true
	}
	if strings.Count(text, " ") >= 4 {
		switch {
		case strings.HasPrefix(text, "http://"),
			strings.HasPrefix(text, "https://"),
			strings.HasPrefix(text, "/"),
			strings.HasPrefix(text, "./"),
			strings.HasPrefix(text, "../"):
			return false
		}
		return true
	}
	return false
}

// proseEmbeddedURLs extracts only full http(s) URLs found inside prose
// text, trimming trailing punctuation a sentence would leave attached.
// Relative paths are deliberately not pulled out of prose: they are
// almost always fragments of a URL already extracted elsewhere, or
// unrelated false positives ("RFC2822/ISO").
func proseEmbeddedURLs(text string) []string {
	var out []string
	for _, m := range embeddedURLRe.FindAllString(text, -1) {
		m = strings.TrimRight(m, ".,;:")
		if len(m) > 10 {
			out = append(out, m)
		}
	}
	return out
}
