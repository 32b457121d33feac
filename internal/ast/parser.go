package ast

import (
	"bytes"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

// SourceUnit is one parsed input: its raw bytes and the syntax tree built
// from them.
type SourceUnit struct {
	Root   *Node
	Source []byte

	// Tree keeps the underlying *sitter.Tree alive; Node values hold only
	// raw *sitter.Node pointers which are only valid for the tree's
	// lifetime.
	Tree *sitter.Tree
}

// Parse builds a SourceUnit from raw bytes. If the bytes don't parse
// cleanly as JavaScript, or begin with '<' (a well-formed page can parse
// as JSX without errors), they are tried as an HTML document and any inline
// <script> bodies are concatenated and reparsed, mirroring how a browser
// would extract a page's embedded scripts.
func Parse(source []byte) *SourceUnit {
	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())

	tree := parser.Parse(nil, source)
	if tree.RootNode().HasError() || bytes.HasPrefix(bytes.TrimSpace(source), []byte("<")) {
		if inline := ExtractInlineScripts(source); len(inline) > 0 {
			if reparsed := parser.Parse(nil, inline); reparsed.RootNode() != nil {
				tree = reparsed
				source = inline
			}
		}
	}

	return &SourceUnit{
		Root:   NewNode(tree.RootNode(), source),
		Source: source,
		Tree:   tree,
	}
}
