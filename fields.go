package cff

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// container is the backing store shared by every model type: a mapping from
// canonical (kebab-case) field name to value, guarded by a per-type
// allow-list. Unset scalar fields read as the empty string and unset
// list fields as an empty slice, so a container is always safe to
// stringify or iterate.
type container struct {
	model   string
	allowed map[string]struct{}
	lists   map[string]struct{}
	dates   map[string]struct{}
	fields  map[string]any
}

func newContainer(model string, allowed, lists, dates []string) *container {
	c := &container{
		model:   model,
		allowed: make(map[string]struct{}, len(allowed)),
		lists:   make(map[string]struct{}, len(lists)),
		dates:   make(map[string]struct{}, len(dates)),
		fields:  make(map[string]any),
	}
	for _, f := range allowed {
		c.allowed[f] = struct{}{}
	}
	for _, f := range lists {
		c.lists[f] = struct{}{}
	}
	for _, f := range dates {
		c.dates[f] = struct{}{}
	}
	return c
}

// canonicalField translates accessor-style snake_case names to the
// kebab-case form used by the CITATION file format. The translation is
// deterministic and reversible for the allow-listed field set, which never
// contains underscores.
func canonicalField(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}

func (c *container) check(field string) (string, error) {
	f := canonicalField(field)
	if _, ok := c.allowed[f]; !ok {
		return "", &UnknownFieldError{Model: c.model, Field: f}
	}
	return f, nil
}

// get returns the value of an allow-listed field, or an UnknownFieldError.
// Unset fields read as "" (or an empty slice for list fields).
func (c *container) get(field string) (any, error) {
	f, err := c.check(field)
	if err != nil {
		return nil, err
	}
	v, ok := c.fields[f]
	if !ok {
		if _, list := c.lists[f]; list {
			return []string{}, nil
		}
		return "", nil
	}
	if _, date := c.dates[f]; date {
		if t, ok := asDate(v); ok {
			return t, nil
		}
		// Tolerate bad stored data on the read path.
		return "", nil
	}
	return v, nil
}

// set stores a value against an allow-listed field, or returns an
// UnknownFieldError. Date-typed fields parse string input strictly and
// return an InvalidDateError when unparsable.
func (c *container) set(field string, value any) error {
	f, err := c.check(field)
	if err != nil {
		return err
	}
	if _, date := c.dates[f]; date {
		return c.setDate(f, value)
	}
	c.fields[f] = value
	return nil
}

// setDate stores a date value. Strings are parsed as ISO 8601 dates; a
// parse failure propagates to the caller as an InvalidDateError.
func (c *container) setDate(field string, value any) error {
	switch v := value.(type) {
	case time.Time:
		c.fields[field] = v
		return nil
	case string:
		t, err := parseDate(v)
		if err != nil {
			return &InvalidDateError{Field: field, Value: v}
		}
		c.fields[field] = t
		return nil
	default:
		return &InvalidDateError{Field: field, Value: fmt.Sprint(value)}
	}
}

// date reads a date field leniently: raw-loaded string values are parsed on
// demand and unparsable data reads as the zero time.
func (c *container) date(field string) time.Time {
	v, ok := c.fields[field]
	if !ok {
		return time.Time{}
	}
	t, ok := asDate(v)
	if !ok {
		return time.Time{}
	}
	return t
}

// str reads a field as a string, tolerating scalar values of other types.
// Used internally for fields known to be allow-listed.
func (c *container) str(field string) string {
	v, ok := c.fields[field]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case []string, []any, map[string]any:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// strs reads a list field as a string slice, never nil.
func (c *container) strs(field string) []string {
	v, ok := c.fields[field]
	if !ok {
		return []string{}
	}
	switch list := v.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out
	case []any:
		out := make([]string, 0, len(list))
		for _, e := range list {
			if s, ok := e.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprint(e))
			}
		}
		return out
	default:
		return []string{}
	}
}

func (c *container) has(field string) bool {
	_, ok := c.fields[field]
	return ok
}

func (c *container) delete(field string) {
	delete(c.fields, field)
}

// rawFields flattens the container back to a plain field mapping suitable
// for serialization: dates emit as ISO 8601 strings and nested model
// objects as their own raw mappings.
func (c *container) rawFields() map[string]any {
	out := make(map[string]any, len(c.fields))
	for k, v := range c.fields {
		out[k] = flattenValue(v)
	}
	return out
}

// fielder is anything that can flatten itself to a raw field mapping.
type fielder interface {
	Fields() map[string]any
}

func flattenValue(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.Format("2006-01-02")
	case fielder:
		return t.Fields()
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out
	default:
		return v
	}
}

// asDate interprets a stored value as a date. String values are parsed
// leniently so documents loaded from raw data still read cleanly.
func asDate(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		parsed, err := parseDate(t)
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	default:
		return time.Time{}, false
	}
}

// parseDate parses an ISO 8601 date, accepting a full timestamp as well as
// the plain YYYY-MM-DD form CFF files use.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// sortedKeys returns the keys of a string-keyed map in sorted order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
