package query

import (
	"strings"

	"tube-catalog/domain/model"
)

// Logical field names used by the criteria translation.
const (
	FieldID             = "id"
	FieldTitle          = "title"
	FieldDescription    = "description"
	FieldDuration       = "duration"
	FieldPublishedAt    = "publishedAt"
	FieldBlockedRegions = "blockedRegions"
	FieldChannelID      = "channelId"
	FieldChannelType    = "channelType"
	FieldTopicID        = "topicId"
	FieldLanguage       = "relevanceLanguage"
	FieldCategoryID     = "categoryId"
	FieldTags           = "tags"
	FieldCustomURL      = "customUrl"
	FieldOwnerChannelID = "videoOwnerChannelId"
)

// DurationBuckets maps a videoDuration selector to its duration range in seconds.
// 240 falls into medium and 1200 into long.
var DurationBuckets = map[string]Range{
	model.DurationShort:  {Field: FieldDuration, Lower: int64(0), Upper: int64(240)},
	model.DurationMedium: {Field: FieldDuration, Lower: int64(240), Upper: int64(1200), IncludeLower: true},
	model.DurationLong:   {Field: FieldDuration, Lower: int64(1200), IncludeLower: true},
}

// ClassifyDuration returns the bucket a duration in seconds belongs to, or "" when none.
func ClassifyDuration(seconds int64) string {
	for _, name := range []string{model.DurationShort, model.DurationMedium, model.DurationLong} {
		if DurationBuckets[name].Contains(seconds) {
			return name
		}
	}
	return ""
}

// SortMap is the logical sort key to logical field table. Every supported key
// currently orders by publish date.
var SortMap = map[string]string{
	model.SortDate:      FieldPublishedAt,
	model.SortRelevance: FieldPublishedAt,
	model.SortRating:    FieldPublishedAt,
	model.SortViewCount: FieldPublishedAt,
}

// PublishedDesc is the default listing order.
var PublishedDesc = []SortField{{Field: FieldPublishedAt, Desc: true}}

// SortBy resolves a sort key through SortMap. Unmapped keys pass through unchanged.
func SortBy(key string) []SortField {
	if key == "" {
		return nil
	}
	field, ok := SortMap[key]
	if !ok {
		field = key
	}
	return []SortField{{Field: field, Desc: true}}
}

// VideoFilter translates video search criteria.
func VideoFilter(sm model.ItemSM) Filter {
	f := commonFilter(sm.SearchCriteria, FieldChannelID)
	if r, ok := DurationBuckets[strings.ToLower(sm.VideoDuration)]; ok {
		f.Must = append(f.Must, r)
	}
	return f
}

// PlaylistFilter translates playlist search criteria.
func PlaylistFilter(sm model.PlaylistSM) Filter {
	return commonFilter(sm.SearchCriteria, FieldChannelID)
}

// ChannelFilter translates channel search criteria. A channelId constraint
// matches the channel's own identity.
func ChannelFilter(sm model.ChannelSM) Filter {
	return commonFilter(sm.SearchCriteria, FieldID)
}

// RelatedFilter matches videos sharing any tag with the source video, never the source itself.
func RelatedFilter(videoID string, tags []string) Filter {
	f := Filter{Not: []Predicate{Match{Field: FieldID, Value: videoID}}}
	if len(tags) > 0 {
		f.Must = append(f.Must, Contains{Field: FieldTags, Values: tags})
	}
	return f
}

// PopularFilter optionally restricts by category and excludes videos blocked in regionCode.
func PopularFilter(regionCode, categoryID string) Filter {
	var f Filter
	if categoryID != "" {
		f.Must = append(f.Must, Match{Field: FieldCategoryID, Value: categoryID})
	}
	if regionCode != "" {
		f.Not = append(f.Not, Contains{Field: FieldBlockedRegions, Values: []string{regionCode}})
	}
	return f
}

// OwnerFilter matches entities whose owner field equals channelID.
func OwnerFilter(field, channelID string) Filter {
	return Filter{Must: []Predicate{Match{Field: field, Value: channelID}}}
}

func commonFilter(s model.SearchCriteria, channelField string) Filter {
	var f Filter
	if q := strings.TrimSpace(s.Q); q != "" {
		f.Must = append(f.Must, Text{Fields: []string{FieldTitle, FieldDescription}, Value: q})
	}
	// publishedBefore is the lower bound and publishedAfter the upper bound.
	switch {
	case s.PublishedBefore != nil && s.PublishedAfter != nil:
		f.Must = append(f.Must, Range{Field: FieldPublishedAt, Lower: *s.PublishedBefore, Upper: *s.PublishedAfter, IncludeUpper: true})
	case s.PublishedAfter != nil:
		f.Must = append(f.Must, Range{Field: FieldPublishedAt, Upper: *s.PublishedAfter, IncludeUpper: true})
	case s.PublishedBefore != nil:
		f.Must = append(f.Must, Range{Field: FieldPublishedAt, Lower: *s.PublishedBefore})
	}
	if s.RegionCode != "" {
		f.Not = append(f.Not, Contains{Field: FieldBlockedRegions, Values: []string{s.RegionCode}})
	}
	if s.ChannelID != "" {
		f.Must = append(f.Must, Match{Field: channelField, Value: s.ChannelID})
	}
	if s.ChannelType != "" {
		f.Must = append(f.Must, Match{Field: FieldChannelType, Value: s.ChannelType})
	}
	if s.TopicID != "" {
		f.Must = append(f.Must, Match{Field: FieldTopicID, Value: s.TopicID})
	}
	if s.RelevanceLanguage != "" {
		f.Must = append(f.Must, Match{Field: FieldLanguage, Value: s.RelevanceLanguage})
	}
	return f
}
