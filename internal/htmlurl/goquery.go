package htmlurl

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// GoqueryBackend extracts URL-bearing attributes using goquery's CSS
// selector API over golang.org/x/net/html's DOM tree. It is the default
// backend.
type GoqueryBackend struct{}

// Extract implements Backend.
func (GoqueryBackend) Extract(fragment string) []string {
	if !looksLikeHTML(fragment) {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil
	}

	var out []string
	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		for _, attr := range urlAttributes {
			if v, ok := sel.Attr(attr); ok && v != "" {
				out = append(out, v)
			}
		}
		if goquery.NodeName(sel) == "object" {
			if v, ok := sel.Attr("data"); ok && v != "" {
				out = append(out, v)
			}
		}
		if v, ok := sel.Attr("srcset"); ok && v != "" {
			out = append(out, splitSrcset(v)...)
		}
		for _, node := range sel.Nodes {
			for _, a := range node.Attr {
				if strings.HasPrefix(a.Key, "data-") && a.Val != "" && IsURLLike(a.Val) {
					out = append(out, a.Val)
				}
			}
		}
	})
	return out
}

// splitSrcset implements the HTML spec's srcset grammar at the level the
// engine needs: a comma-separated list of image candidate strings, each
// holding a URL optionally followed by a width/density descriptor. No
// special quoting logic is applied, matching the simple split the HTML
// living standard itself describes for the common case.
func splitSrcset(v string) []string {
	var out []string
	for _, candidate := range strings.Split(v, ",") {
		fields := strings.Fields(candidate)
		if len(fields) == 0 {
			continue
		}
		out = append(out, fields[0])
	}
	return out
}
