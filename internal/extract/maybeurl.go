package extract

import (
	"net/url"
	"strings"
)

// looksLikeMaybeURL is jsluice's MaybeURL heuristic (url-matchers.go /
// maybeurl.go): a cheap pre-filter used to decide whether an otherwise
// unrecognized call expression's first argument is worth treating as a
// candidate root at all, before spending C3 evaluation on it.
func looksLikeMaybeURL(in string) bool {
	if !strings.ContainsAny(in, "/?.") {
		return false
	}
	if strings.ContainsAny(in, " ()!<>'\"`{}^$,") {
		return false
	}
	if strings.HasPrefix(in, "/") {
		return true
	}

	u, err := url.Parse(in)
	if err != nil {
		return false
	}

	if u.Scheme != "" {
		s := strings.ToLower(u.Scheme)
		if s != "http" && s != "https" {
			return false
		}
	}

	if len(strings.Split(u.Hostname(), ".")) > 1 {
		return true
	}

	for _, vv := range u.Query() {
		if len(vv) > 0 && len(vv[0]) > 0 {
			return true
		}
	}

	if !strings.ContainsAny(u.Path, ".") {
		return false
	}
	parts := strings.Split(u.Path, ".")
	return maybeURLExtensions[parts[len(parts)-1]]
}

var maybeURLExtensions = map[string]bool{
	"js": true, "css": true, "html": true, "htm": true, "xhtml": true, "xlsx": true,
	"xls": true, "docx": true, "doc": true, "pdf": true, "rss": true, "xml": true,
	"php": true, "phtml": true, "asp": true, "aspx": true, "asmx": true, "ashx": true,
	"cgi": true, "pl": true, "rb": true, "py": true, "do": true, "jsp": true,
	"jspa": true, "json": true, "jsonp": true, "txt": true,
}
