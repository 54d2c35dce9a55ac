package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lgulich/dotfile-manager/pkg/errors"
)

// Links maps a project-relative source path to one or more destinations.
type Links map[string][]string

// Sources returns the link sources in lexicographic order.
func (l Links) Sources() []string {
	sources := make([]string, 0, len(l))
	for source := range l {
		sources = append(sources, source)
	}
	sort.Strings(sources)
	return sources
}

// shape decodes a raw YAML value into T, reporting whether it matched.
type shape[T any] struct {
	name   string
	decode func(raw any) (T, bool)
}

var (
	boolShape = shape[bool]{
		name: "a boolean",
		decode: func(raw any) (bool, bool) {
			b, ok := raw.(bool)
			return b, ok
		},
	}

	stringsShape = shape[[]string]{
		name:   "a list of strings",
		decode: decodeStrings,
	}

	linksShape = shape[Links]{
		name:   "a mapping of source to destination(s)",
		decode: decodeLinks,
	}
)

// Value is a configuration field that may hold an OS-generic value, a table
// of OS-specific raw entries, or both. It is built once from the raw config
// and resolved whenever the OS is selected.
type Value[T any] struct {
	key        string
	shape      shape[T]
	generic    T
	hasGeneric bool
	perOS      map[string]any
}

// newValue builds a Value for key from the raw config mapping. OS-specific
// entries come from a nested mapping under key and from legacy "<key>_<os>"
// keys; the nested mapping wins when both name the same OS.
func newValue[T any](raw map[string]any, key string, s shape[T]) Value[T] {
	v := Value[T]{key: key, shape: s, perOS: map[string]any{}}

	prefix := key + "_"
	for rawKey, entry := range raw {
		if osName, ok := strings.CutPrefix(rawKey, prefix); ok && osName != "" {
			v.perOS[osName] = entry
		}
	}

	entry, ok := raw[key]
	if !ok {
		return v
	}

	if nested, ok := asMap(entry); ok {
		for osName, sub := range nested {
			v.perOS[osName] = sub
		}
	}

	if generic, ok := s.decode(entry); ok {
		v.generic = generic
		v.hasGeneric = true
	}

	return v
}

// Resolve returns the value for osName. An OS-specific entry takes precedence
// and must match the expected shape; otherwise the generic value is used, and
// def when there is none. A null entry counts as absent.
func (v Value[T]) Resolve(osName string, def T) (T, error) {
	if entry, ok := v.perOS[osName]; ok && entry != nil {
		resolved, ok := v.shape.decode(entry)
		if !ok {
			return def, errors.Newf(errors.ErrConfigShape, "%s.%s must be %s", v.key, osName, v.shape.name).
				WithDetail("key", v.key).
				WithDetail("os", osName).
				WithDetail("value", fmt.Sprintf("%v", entry))
		}
		return resolved, nil
	}
	if v.hasGeneric {
		return v.generic, nil
	}
	return def, nil
}

func asMap(raw any) (map[string]any, bool) {
	switch m := raw.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = v
		}
		return out, true
	default:
		return nil, false
	}
}

func decodeStrings(raw any) ([]string, bool) {
	switch list := raw.(type) {
	case []string:
		return list, true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

func decodeLinks(raw any) (Links, bool) {
	m, ok := asMap(raw)
	if !ok {
		return nil, false
	}
	links := make(Links, len(m))
	for source, dest := range m {
		if s, ok := dest.(string); ok {
			links[source] = []string{s}
			continue
		}
		destinations, ok := decodeStrings(dest)
		if !ok {
			return nil, false
		}
		links[source] = destinations
	}
	return links, true
}
