// Package query holds the backend-neutral filter representation that every
// catalog search is translated into before a backend compiles it to its native
// syntax. Field names in this package are always logical (API-facing) names.
package query

import "time"

// Predicate is a single typed condition on one logical field.
type Predicate interface {
	predicate()
}

// Match is an equality condition.
type Match struct {
	Field string
	Value interface{}
}

// In matches when the field equals any of Values.
type In struct {
	Field  string
	Values []string
}

// Contains matches when a list field holds any of Values.
type Contains struct {
	Field  string
	Values []string
}

// Range bounds a numeric or time field. A nil bound is open.
type Range struct {
	Field        string
	Lower        interface{}
	Upper        interface{}
	IncludeLower bool
	IncludeUpper bool
}

// Text is a case-insensitive substring match of Value over any of Fields.
type Text struct {
	Fields []string
	Value  string
}

func (Match) predicate()    {}
func (In) predicate()       {}
func (Contains) predicate() {}
func (Range) predicate()    {}
func (Text) predicate()     {}

// Filter combines predicates: every Must holds, at least one Should holds when
// Should is not empty, and no Not holds.
type Filter struct {
	Must   []Predicate
	Should []Predicate
	Not    []Predicate
}

// IsEmpty reports whether the filter places no constraint at all.
func (f Filter) IsEmpty() bool {
	return len(f.Must) == 0 && len(f.Should) == 0 && len(f.Not) == 0
}

// SortField orders results by a logical field.
type SortField struct {
	Field string
	Desc  bool
}

// Request is a complete list request handed to a backend.
type Request struct {
	Filter    Filter
	Sort      []SortField
	Limit     int
	PageToken string
	Fields    []string
	NoSnippet bool
}

// Contains reports whether v lies inside the range. Only int64, int, float64
// and time.Time values are comparable; anything else is reported as outside.
func (r Range) Contains(v interface{}) bool {
	if r.Lower != nil {
		c, ok := compare(v, r.Lower)
		if !ok || c < 0 || (c == 0 && !r.IncludeLower) {
			return false
		}
	}
	if r.Upper != nil {
		c, ok := compare(v, r.Upper)
		if !ok || c > 0 || (c == 0 && !r.IncludeUpper) {
			return false
		}
	}
	return true
}

func compare(a, b interface{}) (int, bool) {
	if at, ok := a.(time.Time); ok {
		bt, ok := b.(time.Time)
		if !ok {
			return 0, false
		}
		return at.Compare(bt), true
	}
	af, ok := toFloat(a)
	if !ok {
		return 0, false
	}
	bf, ok := toFloat(b)
	if !ok {
		return 0, false
	}
	switch {
	case af < bf:
		return -1, true
	case af > bf:
		return 1, true
	}
	return 0, true
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
