package htmlurl

import (
	"strings"

	"golang.org/x/net/html"
)

// TokenizerBackend extracts URL-bearing attributes with golang.org/x/net/html's
// low-level tokenizer instead of building a full DOM tree. It trades the
// convenience of CSS selectors for tolerance of badly malformed fragments,
// which is why it's offered as an alternative to GoqueryBackend rather than
// a replacement.
type TokenizerBackend struct{}

// Extract implements Backend.
func (TokenizerBackend) Extract(fragment string) []string {
	if !looksLikeHTML(fragment) {
		return nil
	}

	var out []string
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return out
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}
		tag, hasAttr := z.TagName()
		if !hasAttr {
			continue
		}
		isObject := string(tag) == "object"

		for {
			key, val, more := z.TagAttr()
			k, v := string(key), string(val)
			if v != "" {
				switch {
				case isURLAttr(k):
					out = append(out, v)
				case k == "data" && isObject:
					out = append(out, v)
				case k == "srcset":
					out = append(out, splitSrcset(v)...)
				case strings.HasPrefix(k, "data-") && IsURLLike(v):
					out = append(out, v)
				}
			}
			if !more {
				break
			}
		}
	}
}

func isURLAttr(name string) bool {
	for _, a := range urlAttributes {
		if a == name {
			return true
		}
	}
	return false
}
