// Package models holds the data types shared across the extraction engine:
// the Candidate emitted by the driver, and the engine's sentinel errors.
package models

// SourceKind tags where a Candidate's text came from, per §3 "Candidate".
type SourceKind string

const (
	SourceLiteral        SourceKind = "literal"
	SourceTemplate       SourceKind = "template"
	SourceConcatenation  SourceKind = "concatenation"
	SourceMethodCall     SourceKind = "method-call"
	SourceMember         SourceKind = "member"
	SourceHTMLEmbedded   SourceKind = "html-embedded"
	SourceComment        SourceKind = "comment"
)

// Candidate is a String Value produced by the abstract evaluator (C3),
// tagged with enough provenance to support filtering, normalization, and
// deduplication by the driver (C7).
type Candidate struct {
	// Text is the canonical, escape-decoded string.
	Text string

	// Template reports whether Text still contains unresolved
	// interpolations rendered as "{name}" placeholders.
	Template bool

	// Source is the syntactic origin of the value.
	Source SourceKind

	// NodeType holds a tree-sitter node kind (e.g. "call_expression").
	// The extraction driver does not set it, and sink matching does not
	// read it.
	NodeType string
}
