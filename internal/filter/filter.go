// Package filter implements C6: classifying and rejecting junk candidate
// strings, keeping full URLs, absolute paths, protocol-relative URLs, and
// bare domains.
package filter

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"
)

var (
	bareSchemeRe    = regexp.MustCompile(`^[a-z]+://$`)
	mimeShapeRe     = regexp.MustCompile(`^[a-z]+/[a-z0-9.+-]+(;.*)?$`)
	dottedPathRe    = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)+$`)
	dateFormatRe    = regexp.MustCompile(`^/?(yyyy|YYYY|mm|MM|dd|DD)(/(yyyy|YYYY|mm|MM|dd|DD))*/?$`)
	timezoneRe      = regexp.MustCompile(`^[A-Z][A-Za-z_]+/[A-Z][A-Za-z_]+$`)
	placeholderPart = regexp.MustCompile(`^(\{[A-Za-z_][A-Za-z0-9_]*\}|[A-Za-z_][A-Za-z0-9_]*|/)+$`)

	// commentURLLike matches a "//host[:port][/path]" protocol-relative
	// URL, the one shape StripCommentDelimiter must NOT treat as a
	// leading line-comment marker.
	commentURLLike = regexp.MustCompile(`^//(?:(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}|(?:\d{1,3}\.){3}\d{1,3})(?::\d{1,5})?(?:/\S*)?$`)
)

var exactRejects = map[string]bool{
	"https://": true,
	"http://":  true,
	"//":       true,
	"http:":    true,
}

// w3cNamespacePrefixes is the W3C/XML-namespace allowlist: schema and
// namespace URLs that show up constantly in JS bundled alongside XML/SOAP
// tooling, and are never the application's own endpoints.
var w3cNamespacePrefixes = []string{
	"http://www.w3.org/",
	"https://www.w3.org/",
	"http://schemas.xmlsoap.org/",
	"https://schemas.xmlsoap.org/",
	"http://schemas.microsoft.com/",
}

var genericTestHosts = map[string]bool{
	"localhost": true,
	"a":         true,
	"b":         true,
}

// schemeDenylist rejects candidates jsluice's own matcher never treats as
// navigable web URLs, regardless of how strong their structural signal is.
var schemeDenylist = map[string]bool{
	"data":       true,
	"tel":        true,
	"about":      true,
	"javascript": true,
}

// knownExtensions is the built-in file-extension allowlist, augmented by
// FilterConfig.Extensions at construction time.
var knownExtensions = []string{
	"js", "css", "html", "htm", "xhtml", "xlsx",
	"xls", "docx", "doc", "pdf", "rss", "xml",
	"php", "phtml", "asp", "aspx", "asmx", "ashx",
	"cgi", "pl", "rb", "py", "do", "jsp",
	"jspa", "json", "jsonp", "txt", "map",
}

// Config controls candidate classification.
type Config struct {
	Placeholder string
	Extensions  []string
}

// Filter rejects or normalizes candidate strings.
type Filter struct {
	placeholder string
	extensions  map[string]bool
}

// New builds a Filter from cfg.
func New(cfg Config) *Filter {
	ext := make(map[string]bool, len(knownExtensions)+len(cfg.Extensions))
	for _, e := range knownExtensions {
		ext[e] = true
	}
	for _, e := range cfg.Extensions {
		ext[strings.ToLower(strings.TrimPrefix(e, "."))] = true
	}
	return &Filter{placeholder: cfg.Placeholder, extensions: ext}
}

// Keep classifies candidate, returning the (possibly bracket-trimmed) text
// to retain and whether it should be emitted at all.
func (f *Filter) Keep(candidate string) (string, bool) {
	candidate = trimUnbalancedBrackets(candidate)
	candidate = consolidateAdjacentPlaceholders(candidate, f.placeholder)
	if candidate == "" {
		return "", false
	}

	if exactRejects[candidate] || bareSchemeRe.MatchString(candidate) {
		return "", false
	}
	if hasDenylistedScheme(candidate) {
		return "", false
	}
	if mimeShapeRe.MatchString(candidate) {
		return "", false
	}
	// The extension allowlist is checked before the dotted-identifier-path
	// rejection so bare module-relative filenames like "config.json" are
	// retained preferentially, per §4.6.
	if f.hasKnownExtension(candidate) {
		return candidate, true
	}
	if dottedPathRe.MatchString(candidate) && !strings.Contains(candidate, "/") && !looksLikeBareDomain(candidate) {
		return "", false
	}
	if isW3CNamespace(candidate) {
		return "", false
	}
	if isGenericTestURL(candidate) {
		return "", false
	}
	if f.isPlaceholderOnly(candidate) {
		return "", false
	}
	if dateFormatRe.MatchString(candidate) {
		return "", false
	}
	if isTimezoneIdentifier(candidate) {
		return "", false
	}
	if !hasStructuralURLSignal(candidate) {
		return "", false
	}
	return candidate, true
}

func hasDenylistedScheme(s string) bool {
	idx := strings.IndexByte(s, ':')
	if idx < 0 {
		return false
	}
	return schemeDenylist[strings.ToLower(s[:idx])]
}

func isW3CNamespace(s string) bool {
	lower := strings.ToLower(s)
	for _, p := range w3cNamespacePrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

func isGenericTestURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}
	if u.Path != "" && u.Path != "/" {
		return false
	}
	if u.Port() != "" {
		return false
	}
	return genericTestHosts[strings.ToLower(u.Hostname())]
}

// isPlaceholderOnly rejects candidates made up solely of placeholder
// tokens, template tokens, and path separators (e.g. "FUZZ/FUZZ",
// "{x}/{y}"): every non-empty path segment must equal the configured
// placeholder text or be a "{...}" token.
func (f *Filter) isPlaceholderOnly(s string) bool {
	if !placeholderPart.MatchString(s) {
		return false
	}
	segments := strings.Split(s, "/")
	sawSegment := false
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		sawSegment = true
		if seg == f.placeholder {
			continue
		}
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			continue
		}
		return false
	}
	return sawSegment
}

func isTimezoneIdentifier(s string) bool {
	if !timezoneRe.MatchString(s) {
		return false
	}
	return !strings.Contains(s, "//") && !strings.HasPrefix(s, "/")
}

func (f *Filter) hasKnownExtension(s string) bool {
	path := s
	if idx := strings.IndexAny(path, "?#"); idx >= 0 {
		path = path[:idx]
	}
	idx := strings.LastIndexByte(path, '/')
	segment := path[idx+1:]
	dot := strings.LastIndexByte(segment, '.')
	if dot < 0 {
		return false
	}
	return f.extensions[strings.ToLower(segment[dot+1:])]
}

// hasStructuralURLSignal requires a scheme, a leading slash, or a
// plausible bare-domain host (has a dot and a recognized public suffix).
func hasStructuralURLSignal(s string) bool {
	if strings.HasPrefix(s, "/") || strings.HasPrefix(s, "//") {
		return true
	}
	if u, err := url.Parse(s); err == nil && u.Scheme != "" {
		return true
	}
	return looksLikeBareDomain(s)
}

func looksLikeBareDomain(s string) bool {
	host := s
	if idx := strings.IndexAny(host, "/?#"); idx >= 0 {
		host = host[:idx]
	}
	if !strings.Contains(host, ".") {
		return false
	}
	if strings.ContainsAny(host, " \t\n{}()<>'\"`") {
		return false
	}
	suffix, icann := publicsuffix.PublicSuffix(strings.ToLower(host))
	if !icann || suffix == "" || suffix == host {
		return false
	}
	// publicsuffix treats every ICANN gTLD as a valid suffix, including
	// obscure ones ("name", "museum") that are far more often the tail of
	// a dotted property-access path than an actual hostname. Restrict to
	// the TLDs that commonly appear in real endpoints.
	last := suffix
	if idx := strings.LastIndexByte(suffix, '.'); idx >= 0 {
		last = suffix[idx+1:]
	}
	return commonTLDs[last]
}

var commonTLDs = map[string]bool{
	"com": true, "net": true, "org": true, "io": true, "co": true,
	"dev": true, "app": true, "me": true, "gov": true, "edu": true,
	"info": true, "biz": true, "us": true, "uk": true, "ca": true,
	"de": true, "fr": true, "jp": true, "cn": true, "ru": true,
	"au": true, "nl": true, "se": true, "no": true, "es": true,
	"it": true, "ch": true, "xyz": true, "tv": true, "ai": true,
}

// consolidateAdjacentPlaceholders collapses a run of 2+ consecutive
// placeholder tokens into one. Adjacent unresolved template
// substitutions like `${a}${b}/profile` evaluate with no separator
// between their placeholder forms, leaving a "FUZZFUZZ/profile"-shaped
// residue; this restores it to "FUZZ/profile".
func consolidateAdjacentPlaceholders(s, placeholder string) string {
	if placeholder == "" {
		return s
	}
	doubled := placeholder + placeholder
	for strings.Contains(s, doubled) {
		s = strings.Replace(s, doubled, placeholder, -1)
	}
	return s
}

// StripCommentDelimiter strips JS comment markers ("//", "/* */") from
// text recovered from a comment node, so commented-out code
// (e.g. "// GET /api/legacy/users") still yields a worthwhile candidate
// once the marker is gone. A leading "//" that itself looks like a
// protocol-relative URL is left alone — it's a URL in its own right, not
// a comment marker in front of one. ok is false when nothing but
// delimiters and whitespace remain.
func StripCommentDelimiter(text string) (string, bool) {
	text = strings.TrimSpace(text)
	for strings.HasPrefix(text, "/*") {
		text = strings.TrimSpace(text[2:])
	}
	for strings.HasSuffix(text, "*/") {
		text = strings.TrimSpace(text[:len(text)-2])
	}
	for strings.HasPrefix(text, "//") && !commentURLLike.MatchString(text) {
		text = strings.TrimSpace(text[2:])
	}
	for strings.HasPrefix(text, "/ ") {
		text = strings.TrimSpace(text[2:])
	}
	for strings.HasSuffix(text, " /") {
		text = strings.TrimSpace(text[:len(text)-2])
	}
	return text, text != ""
}

// trimUnbalancedBrackets trims a trailing ), ], or } when its opener
// doesn't appear earlier in the candidate.
func trimUnbalancedBrackets(s string) string {
	pairs := map[byte]byte{')': '(', ']': '[', '}': '{'}
	for len(s) > 0 {
		last := s[len(s)-1]
		opener, isCloser := pairs[last]
		if !isCloser {
			break
		}
		if strings.IndexByte(s, opener) >= 0 {
			break
		}
		s = s[:len(s)-1]
	}
	return s
}
