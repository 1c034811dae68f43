package persistence

import (
	"regexp"

	"tube-catalog/domain/query"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// buildMongoFilter compiles a filter into a MongoDB query document.
// Must clauses are combined with $and, Should with $or and Not with $nor;
// empty groups are left out entirely.
func buildMongoFilter(f query.Filter, meta *Metadata) bson.D {
	var and bson.A
	for _, p := range f.Must {
		and = append(and, mongoPredicate(p, meta))
	}
	if len(f.Should) > 0 {
		or := make(bson.A, 0, len(f.Should))
		for _, p := range f.Should {
			or = append(or, mongoPredicate(p, meta))
		}
		and = append(and, bson.D{{Key: "$or", Value: or}})
	}
	if len(f.Not) > 0 {
		nor := make(bson.A, 0, len(f.Not))
		for _, p := range f.Not {
			nor = append(nor, mongoPredicate(p, meta))
		}
		and = append(and, bson.D{{Key: "$nor", Value: nor}})
	}
	switch len(and) {
	case 0:
		return bson.D{}
	case 1:
		return and[0].(bson.D)
	}
	return bson.D{{Key: "$and", Value: and}}
}

func mongoPredicate(p query.Predicate, meta *Metadata) bson.D {
	switch c := p.(type) {
	case query.Match:
		field, _ := meta.Storage(c.Field)
		return bson.D{{Key: field, Value: c.Value}}
	case query.In:
		field, _ := meta.Storage(c.Field)
		return bson.D{{Key: field, Value: bson.D{{Key: "$in", Value: c.Values}}}}
	case query.Contains:
		field, _ := meta.Storage(c.Field)
		return bson.D{{Key: field, Value: bson.D{{Key: "$in", Value: c.Values}}}}
	case query.Range:
		field, _ := meta.Storage(c.Field)
		var bounds bson.D
		if c.Lower != nil {
			op := "$gt"
			if c.IncludeLower {
				op = "$gte"
			}
			bounds = append(bounds, bson.E{Key: op, Value: c.Lower})
		}
		if c.Upper != nil {
			op := "$lt"
			if c.IncludeUpper {
				op = "$lte"
			}
			bounds = append(bounds, bson.E{Key: op, Value: c.Upper})
		}
		return bson.D{{Key: field, Value: bounds}}
	case query.Text:
		// The value is quoted so caller input never becomes regex syntax.
		pattern := regexp.QuoteMeta(c.Value)
		or := make(bson.A, 0, len(c.Fields))
		for _, name := range c.Fields {
			field, _ := meta.Storage(name)
			or = append(or, bson.D{{Key: field, Value: bson.Regex{Pattern: pattern, Options: "i"}}})
		}
		return bson.D{{Key: "$or", Value: or}}
	}
	return bson.D{}
}

// buildMongoSort compiles sort fields; fields unknown to the entity are dropped.
func buildMongoSort(sort []query.SortField, meta *Metadata) bson.D {
	var d bson.D
	for _, s := range sort {
		field, _ := meta.Storage(s.Field)
		if !meta.Known(field) {
			continue
		}
		dir := 1
		if s.Desc {
			dir = -1
		}
		d = append(d, bson.E{Key: field, Value: dir})
	}
	return d
}

// buildMongoProjection turns a storage field list into a projection document.
func buildMongoProjection(fields []string) bson.D {
	d := make(bson.D, 0, len(fields))
	for _, f := range fields {
		d = append(d, bson.E{Key: f, Value: 1})
	}
	return d
}
