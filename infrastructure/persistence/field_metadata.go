package persistence

import (
	"reflect"
	"strings"
)

// FieldMap translates logical field names to storage field names.
type FieldMap map[string]string

// Metadata describes one entity for one backend: its default projection and the
// logical <-> storage name tables. It is built once and only read afterwards.
type Metadata struct {
	Fields  []string
	Map     FieldMap
	ID      string
	reverse map[string]string
	known   map[string]bool
	snippet map[string]bool
}

// NewMetadata reads the json (logical) and storageTag names of every field of
// the struct behind entity. Fields tagged catalog:"snippet" are dropped from the
// default projection when no snippet is requested.
func NewMetadata(entity interface{}, storageTag string) *Metadata {
	t := reflect.TypeOf(entity)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	m := &Metadata{
		Map:     FieldMap{},
		reverse: map[string]string{},
		known:   map[string]bool{},
		snippet: map[string]bool{},
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		logical := tagName(f.Tag.Get("json"))
		storage := tagName(f.Tag.Get(storageTag))
		if logical == "" || logical == "-" || storage == "" || storage == "-" {
			continue
		}
		m.Fields = append(m.Fields, storage)
		m.Map[logical] = storage
		m.reverse[storage] = logical
		m.known[storage] = true
		if f.Tag.Get("catalog") == "snippet" {
			m.snippet[storage] = true
		}
	}
	m.ID = m.Map["id"]
	return m
}

func tagName(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	return name
}

// Storage maps a logical name. Unmapped names pass through unchanged with ok=false.
func (m *Metadata) Storage(logical string) (string, bool) {
	if s, ok := m.Map[logical]; ok {
		return s, true
	}
	return logical, false
}

// Logical maps a storage name back. Unmapped names pass through unchanged.
func (m *Metadata) Logical(storage string) string {
	if l, ok := m.reverse[storage]; ok {
		return l
	}
	return storage
}

// Known reports whether storage is a column/field of the entity.
func (m *Metadata) Known(storage string) bool {
	return m.known[storage]
}

// Project returns the storage projection for a requested logical field list.
// An empty request yields the default fields, minus snippet payloads when
// noSnippet is set. Unknown names are dropped and the identity is always kept.
func (m *Metadata) Project(requested []string, noSnippet bool) []string {
	if len(requested) == 0 {
		out := make([]string, 0, len(m.Fields))
		for _, f := range m.Fields {
			if noSnippet && m.snippet[f] {
				continue
			}
			out = append(out, f)
		}
		return out
	}
	out := []string{m.ID}
	seen := map[string]bool{m.ID: true}
	for _, name := range requested {
		s, _ := m.Storage(strings.TrimSpace(name))
		if !m.known[s] || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
