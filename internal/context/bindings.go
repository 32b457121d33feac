// Package context implements C8: ingesting externally supplied variable
// bindings and merging them with the symbol table under a policy.
package context

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Policy controls how context values combine with file-derived ones.
type Policy string

const (
	// MergePolicy adds context values alongside file-derived ones; both are emitted.
	MergePolicy Policy = "merge"
	// Override replaces file-derived values for names present in the context.
	Override Policy = "override"
	// Only skips C2 entirely; every lookup resolves from context alone.
	Only Policy = "only"
)

// Bindings is the parsed, normalized result of a context input: plain
// name -> value pairs, plus any dotted `window.location.*` overrides
// split out for the evaluator's location resolver.
type Bindings struct {
	Values            map[string]string
	LocationOverrides map[string]string
}

const locationPrefix = "window.location."

// normalize splits raw name -> value pairs into plain bindings and
// window.location dotted overrides (§4.8).
func normalize(raw map[string]string) Bindings {
	b := Bindings{Values: map[string]string{}, LocationOverrides: map[string]string{}}
	for k, v := range raw {
		if strings.HasPrefix(k, locationPrefix) {
			prop := strings.TrimPrefix(k, locationPrefix)
			b.LocationOverrides[prop] = v
			continue
		}
		b.Values[k] = v
	}
	return b
}

// ParseJSON parses a JSON object of name -> value pairs.
func ParseJSON(data []byte) (Bindings, error) {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return Bindings{}, fmt.Errorf("parsing context JSON: %w", err)
	}
	return normalize(raw), nil
}

// ParseKeyValue parses a list of "KEY=VALUE" pairs, the shape a CLI
// repeats one --context flag per binding into.
func ParseKeyValue(pairs []string) (Bindings, error) {
	raw := make(map[string]string, len(pairs))
	for _, p := range pairs {
		idx := strings.IndexByte(p, '=')
		if idx < 0 {
			return Bindings{}, fmt.Errorf("context binding %q is not KEY=VALUE", p)
		}
		raw[p[:idx]] = p[idx+1:]
	}
	return normalize(raw), nil
}

// ParseFile parses a JSON or YAML file of name -> value pairs, selecting
// the format from the file extension.
func ParseFile(path string, data []byte) (Bindings, error) {
	var raw map[string]string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return Bindings{}, fmt.Errorf("parsing context file %q: %w", path, err)
	}
	return normalize(raw), nil
}

// Merge combines two sets of bindings, with later values winning on key
// collision — used to layer a --context-file with individual --context
// KEY=VALUE overrides.
func Merge(base, overlay Bindings) Bindings {
	out := Bindings{
		Values:            make(map[string]string, len(base.Values)+len(overlay.Values)),
		LocationOverrides: make(map[string]string, len(base.LocationOverrides)+len(overlay.LocationOverrides)),
	}
	for k, v := range base.Values {
		out.Values[k] = v
	}
	for k, v := range overlay.Values {
		out.Values[k] = v
	}
	for k, v := range base.LocationOverrides {
		out.LocationOverrides[k] = v
	}
	for k, v := range overlay.LocationOverrides {
		out.LocationOverrides[k] = v
	}
	return out
}
