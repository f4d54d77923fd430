package resume

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/resumeforge/resumeforge/pkg/errors"
)

// =============================================================================
// Input Formats
// =============================================================================

// Format identifies a supported input encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatForPath picks the input format from a file extension.
// Unknown extensions default to YAML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// ParseFormat parses a user-supplied format name such as a query parameter.
// The empty string defaults to YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeUnsupported, "unsupported document format %q", s)
	}
}

// Decode parses raw document bytes in the given format into an ordered tree.
// Syntax errors return PARSE_ERROR; a well-formed document whose top level
// is not a mapping returns VALIDATION_ERROR.
func Decode(data []byte, format Format) (*Mapping, error) {
	switch format {
	case FormatTOML:
		return decodeTOML(data)
	case FormatYAML, FormatJSON, "":
		// JSON is a subset of YAML, so both share the node walker.
		return decodeYAML(data)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported document format %q", format)
	}
}

// =============================================================================
// YAML / JSON
// =============================================================================

// maxDepth bounds tree recursion; guards against alias cycles.
const maxDepth = 200

func decodeYAML(data []byte) (*Mapping, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "parsing document")
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return &Mapping{}, nil
	}
	v, err := yamlValue(root.Content[0], 0)
	if err != nil {
		return nil, err
	}
	m, ok := v.(*Mapping)
	if !ok {
		return nil, errors.New(errors.ErrCodeValidation, "top-level document must be a mapping")
	}
	return m, nil
}

func yamlValue(n *yaml.Node, depth int) (any, error) {
	if depth > maxDepth {
		return nil, errors.New(errors.ErrCodeParse, "document nesting exceeds %d levels", maxDepth)
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return yamlValue(n.Content[0], depth+1)
	case yaml.AliasNode:
		return yamlValue(n.Alias, depth+1)
	case yaml.MappingNode:
		m := &Mapping{Pairs: make([]Pair, 0, len(n.Content)/2)}
		for i := 0; i+1 < len(n.Content); i += 2 {
			val, err := yamlValue(n.Content[i+1], depth+1)
			if err != nil {
				return nil, err
			}
			// Duplicate keys: last one wins.
			m.Set(n.Content[i].Value, val)
		}
		return m, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := yamlValue(c, depth+1)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	case yaml.ScalarNode:
		return yamlScalar(n), nil
	default:
		return nil, nil
	}
}

// yamlScalar resolves a scalar node by its tag. Timestamps and anything
// unrecognized stay as their source text, which is exactly what date fields
// need.
func yamlScalar(n *yaml.Node) any {
	switch n.Tag {
	case "!!null":
		return nil
	case "!!bool":
		if b, err := strconv.ParseBool(n.Value); err == nil {
			return b
		}
	case "!!int":
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return i
		}
	case "!!float":
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return f
		}
	}
	return n.Value
}

// =============================================================================
// TOML
// =============================================================================

func decodeTOML(data []byte) (*Mapping, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "parsing document")
	}

	// The decoder hands back unordered maps; MetaData.Keys lists every
	// defined key in document order. Record the first occurrence of each
	// dotted path so mapping keys can be put back in source order.
	order := make(map[string]int, len(md.Keys()))
	for i, k := range md.Keys() {
		path := strings.Join(k, "\x1f")
		if _, seen := order[path]; !seen {
			order[path] = i
		}
	}
	return tomlMapping(raw, nil, order), nil
}

func tomlMapping(raw map[string]any, prefix []string, order map[string]int) *Mapping {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		pi, iok := order[tomlPath(prefix, keys[i])]
		pj, jok := order[tomlPath(prefix, keys[j])]
		if iok && jok {
			return pi < pj
		}
		if iok != jok {
			return iok
		}
		return keys[i] < keys[j]
	})

	m := &Mapping{Pairs: make([]Pair, 0, len(keys))}
	for _, k := range keys {
		m.Pairs = append(m.Pairs, Pair{Key: k, Value: tomlValue(raw[k], append(prefix, k), order)})
	}
	return m
}

func tomlPath(prefix []string, key string) string {
	if len(prefix) == 0 {
		return key
	}
	return strings.Join(prefix, "\x1f") + "\x1f" + key
}

func tomlValue(v any, path []string, order map[string]int) any {
	switch x := v.(type) {
	case map[string]any:
		return tomlMapping(x, path, order)
	case []map[string]any:
		items := make([]any, len(x))
		for i, e := range x {
			items[i] = tomlMapping(e, path, order)
		}
		return items
	case []any:
		items := make([]any, len(x))
		for i, e := range x {
			items[i] = tomlValue(e, path, order)
		}
		return items
	case string, int64, float64, bool, nil:
		return x
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format("2006-01-02")
		}
		return x.Format(time.RFC3339)
	default:
		// Local date/time wrapper types stringify cleanly.
		if s, ok := v.(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprint(v)
	}
}
