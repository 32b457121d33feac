package config

// ExtractionConfig controls the behavior of the symbol table builder (C2),
// the abstract evaluator (C3), and the extraction driver (C7). It maps
// directly onto the "Configuration recognized by the core" table in §6 of
// the specification.
type ExtractionConfig struct {
	// Placeholder is the token substituted for unresolved values. Default "FUZZ".
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`

	// IncludeTemplates, when true, emits template-form candidates
	// (e.g. "/users/{id}") in addition to their placeholder form.
	IncludeTemplates bool `json:"include_templates" yaml:"include_templates"`

	// MaxNodes bounds the number of AST nodes the driver (C7) will visit.
	MaxNodes int `json:"max_nodes,omitempty" yaml:"max_nodes,omitempty" validate:"omitempty,min=1"`

	// MaxFileSize is the byte threshold above which C2 is skipped and C3
	// operates in degraded mode.
	MaxFileSize int64 `json:"max_file_size,omitempty" yaml:"max_file_size,omitempty" validate:"omitempty,min=1"`

	// MaxRecursionDepth bounds C3's recursive descent into expression trees.
	MaxRecursionDepth int `json:"max_recursion_depth,omitempty" yaml:"max_recursion_depth,omitempty" validate:"omitempty,min=1"`

	// MaxFanOut caps the cardinality of a single evaluation result set.
	MaxFanOut int `json:"max_fan_out,omitempty" yaml:"max_fan_out,omitempty" validate:"omitempty,min=1"`

	// SkipSymbols forces degraded mode by bypassing C2 entirely.
	SkipSymbols bool `json:"skip_symbols" yaml:"skip_symbols"`

	// SkipAliases disables the aliasing preference in template rendering (§4.2).
	SkipAliases bool `json:"skip_aliases" yaml:"skip_aliases"`

	// MergePolicy is "merge" (append to a symbol's value set) or
	// "override" (replace it) when a symbol is reassigned.
	MergePolicy string `json:"merge_policy,omitempty" yaml:"merge_policy,omitempty" validate:"omitempty,oneof=merge override"`

	// IncludeErrorNodes retains string candidates discovered inside
	// tree-sitter ERROR subtrees (§7 Parse failures).
	IncludeErrorNodes bool `json:"include_error_nodes" yaml:"include_error_nodes"`
}

// NewDefaultExtractionConfig returns the defaults described in §6.
func NewDefaultExtractionConfig() ExtractionConfig {
	return ExtractionConfig{
		Placeholder:       DefaultPlaceholder,
		IncludeTemplates:  false,
		MaxNodes:          DefaultMaxNodes,
		MaxFileSize:       DefaultMaxFileSizeBytes,
		MaxRecursionDepth: DefaultMaxRecursionDepth,
		MaxFanOut:         DefaultMaxFanOut,
		SkipSymbols:       false,
		SkipAliases:       false,
		MergePolicy:       "merge",
		IncludeErrorNodes: false,
	}
}

// FilterConfig controls the candidate filter (C6).
type FilterConfig struct {
	// Extensions augments the built-in file-extension allowlist used to
	// preferentially retain path-like candidates.
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// NewDefaultFilterConfig returns the defaults for C6.
func NewDefaultFilterConfig() FilterConfig {
	return FilterConfig{
		Extensions: []string{},
	}
}

// HTMLConfig controls the HTML-embedded URL extractor (C5).
type HTMLConfig struct {
	// Parser selects the HTML backend: "goquery" or "tokenizer".
	Parser string `json:"html_parser,omitempty" yaml:"html_parser,omitempty" validate:"omitempty,oneof=goquery tokenizer"`
}

// NewDefaultHTMLConfig returns the defaults for C5.
func NewDefaultHTMLConfig() HTMLConfig {
	return HTMLConfig{
		Parser: DefaultHTMLParser,
	}
}

// ContextConfig controls the context injector (C8).
type ContextConfig struct {
	// Policy is "merge", "override", or "only".
	Policy string `json:"context_policy,omitempty" yaml:"context_policy,omitempty" validate:"omitempty,oneof=merge override only"`

	// Values holds externally supplied name -> value bindings, parsed from
	// JSON, KEY=VALUE pairs, or a JSON/YAML file by the calling mode.
	Values map[string]string `json:"context,omitempty" yaml:"context,omitempty"`
}

// NewDefaultContextConfig returns the defaults for C8.
func NewDefaultContextConfig() ContextConfig {
	return ContextConfig{
		Policy: DefaultContextPolicy,
		Values: map[string]string{},
	}
}

// ResourceConfig controls the gopsutil-backed resource monitor that watches
// large Source Units (§5: "minified bundles ... symbol counts can reach the
// hundreds of thousands").
type ResourceConfig struct {
	Enabled            bool  `json:"enabled" yaml:"enabled"`
	CheckIntervalSecs  int   `json:"check_interval_secs,omitempty" yaml:"check_interval_secs,omitempty" validate:"omitempty,min=1"`
	MemoryCeilingMB    int64 `json:"memory_ceiling_mb,omitempty" yaml:"memory_ceiling_mb,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultResourceConfig returns the defaults for the resource monitor.
func NewDefaultResourceConfig() ResourceConfig {
	return ResourceConfig{
		Enabled:           false,
		CheckIntervalSecs: DefaultResourceCheckIntervalSecs,
		MemoryCeilingMB:   DefaultResourceMemoryCeilingMB,
	}
}
