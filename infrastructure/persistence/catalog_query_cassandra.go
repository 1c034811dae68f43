package persistence

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"tube-catalog/domain/query"
)

// luceneTimeLayout matches the date pattern of the Lucene index mappers.
const luceneTimeLayout = "2006-01-02 15:04:05.000Z"

// luceneCondition is one Stratio Lucene index search condition.
type luceneCondition struct {
	Type         string            `json:"type"`
	Field        string            `json:"field,omitempty"`
	Value        interface{}       `json:"value,omitempty"`
	Values       []string          `json:"values,omitempty"`
	Lower        interface{}       `json:"lower,omitempty"`
	Upper        interface{}       `json:"upper,omitempty"`
	IncludeLower bool              `json:"include_lower,omitempty"`
	IncludeUpper bool              `json:"include_upper,omitempty"`
	Must         []luceneCondition `json:"must,omitempty"`
	Should       []luceneCondition `json:"should,omitempty"`
	Not          []luceneCondition `json:"not,omitempty"`
}

type luceneSort struct {
	Field   string `json:"field"`
	Reverse bool   `json:"reverse,omitempty"`
}

// luceneSearch is the JSON document passed to expr(index, ?).
type luceneSearch struct {
	Filter *luceneCondition `json:"filter,omitempty"`
	Sort   []luceneSort     `json:"sort,omitempty"`
}

func (s luceneSearch) isEmpty() bool {
	return s.Filter == nil && len(s.Sort) == 0
}

// buildLuceneSearch compiles a filter and sort into a Lucene index search.
// Should groups and text matches become nested boolean conditions so they stay
// mandatory next to other must clauses.
func buildLuceneSearch(f query.Filter, sort []query.SortField, meta *Metadata) luceneSearch {
	var s luceneSearch
	if !f.IsEmpty() {
		root := luceneCondition{Type: "boolean"}
		for _, p := range f.Must {
			root.Must = append(root.Must, lucenePredicate(p, meta))
		}
		if len(f.Should) > 0 {
			group := luceneCondition{Type: "boolean"}
			for _, p := range f.Should {
				group.Should = append(group.Should, lucenePredicate(p, meta))
			}
			root.Must = append(root.Must, group)
		}
		for _, p := range f.Not {
			root.Not = append(root.Not, lucenePredicate(p, meta))
		}
		s.Filter = &root
	}
	for _, sf := range sort {
		field, _ := meta.Storage(sf.Field)
		if !meta.Known(field) {
			continue
		}
		s.Sort = append(s.Sort, luceneSort{Field: field, Reverse: sf.Desc})
	}
	return s
}

func lucenePredicate(p query.Predicate, meta *Metadata) luceneCondition {
	switch c := p.(type) {
	case query.Match:
		field, _ := meta.Storage(c.Field)
		return luceneCondition{Type: "match", Field: field, Value: luceneValue(c.Value)}
	case query.In:
		field, _ := meta.Storage(c.Field)
		return luceneCondition{Type: "contains", Field: field, Values: c.Values}
	case query.Contains:
		field, _ := meta.Storage(c.Field)
		return luceneCondition{Type: "contains", Field: field, Values: c.Values}
	case query.Range:
		field, _ := meta.Storage(c.Field)
		return luceneCondition{
			Type:         "range",
			Field:        field,
			Lower:        luceneValue(c.Lower),
			Upper:        luceneValue(c.Upper),
			IncludeLower: c.IncludeLower,
			IncludeUpper: c.IncludeUpper,
		}
	case query.Text:
		group := luceneCondition{Type: "boolean"}
		escaped := escapeWildcard(c.Value)
		for _, name := range c.Fields {
			field, _ := meta.Storage(name)
			group.Should = append(group.Should,
				luceneCondition{Type: "phrase", Field: field, Value: c.Value},
				luceneCondition{Type: "prefix", Field: field, Value: c.Value},
				luceneCondition{Type: "wildcard", Field: field, Value: "*" + escaped},
				luceneCondition{Type: "wildcard", Field: field, Value: escaped + "*"},
				luceneCondition{Type: "wildcard", Field: field, Value: "*" + escaped + "*"},
			)
		}
		return group
	}
	return luceneCondition{Type: "all"}
}

func luceneValue(v interface{}) interface{} {
	if t, ok := v.(time.Time); ok {
		return t.UTC().Format(luceneTimeLayout)
	}
	return v
}

var wildcardEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)

func escapeWildcard(s string) string {
	return wildcardEscaper.Replace(s)
}

// buildLuceneSelect renders the CQL statement and its bind values. The search
// JSON is always bound as a parameter, never spliced into the statement.
func buildLuceneSelect(table, index string, columns []string, f query.Filter, sort []query.SortField, meta *Metadata) (string, []interface{}, error) {
	stmt := fmt.Sprintf("SELECT %s FROM %s", strings.Join(columns, ", "), table)
	search := buildLuceneSearch(f, sort, meta)
	if search.isEmpty() {
		return stmt, nil, nil
	}
	raw, err := json.Marshal(search)
	if err != nil {
		return "", nil, fmt.Errorf("marshal lucene search: %w", err)
	}
	return stmt + fmt.Sprintf(" WHERE expr(%s, ?)", index), []interface{}{string(raw)}, nil
}
