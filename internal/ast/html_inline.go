package ast

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
)

// ExtractInlineScripts pulls the text of every <script> element out of an
// HTML document and concatenates it, newline-separated, so the result can
// be parsed as a single JavaScript Source Unit. If source doesn't parse as
// HTML, or no <script> tags are found, source is returned unchanged.
func ExtractInlineScripts(source []byte) []byte {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(source))
	if err != nil {
		return source
	}

	var inline []byte
	doc.Find("script").Each(func(i int, s *goquery.Selection) {
		if src, has := s.Attr("src"); has && src != "" {
			return
		}
		inline = append(inline, []byte(s.Text()+"\n")...)
	})
	if len(inline) == 0 {
		return source
	}
	return inline
}
