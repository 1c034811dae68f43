package persistence

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tube-catalog/domain/model"
	"tube-catalog/domain/query"
)

func TestBuildLuceneSelect_EmptySearchHasNoWhere(t *testing.T) {
	meta := NewMetadata(model.Video{}, "cql")
	stmt, values, err := buildLuceneSelect("video", "video_index", []string{"id", "title"}, query.Filter{}, nil, meta)
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, title FROM video", stmt)
	assert.Nil(t, values)
}

func TestBuildLuceneSelect_SearchIsBound(t *testing.T) {
	meta := NewMetadata(model.Video{}, "cql")
	f := query.OwnerFilter(query.FieldChannelID, "UC1'; DROP TABLE video;")
	stmt, values, err := buildLuceneSelect("video", "video_index", []string{"id"}, f, query.PublishedDesc, meta)
	require.NoError(t, err)

	assert.Equal(t, "SELECT id FROM video WHERE expr(video_index, ?)", stmt)
	require.Len(t, values, 1)
	assert.JSONEq(t, `{
		"filter": {"type": "boolean", "must": [{"type": "match", "field": "channelid", "value": "UC1'; DROP TABLE video;"}]},
		"sort": [{"field": "publishedat", "reverse": true}]
	}`, values[0].(string))
}

func TestBuildLuceneSelect_VideoEqualityFiltersUseColumns(t *testing.T) {
	meta := NewMetadata(model.Video{}, "cql")
	f := query.VideoFilter(model.ItemSM{SearchCriteria: model.SearchCriteria{
		RelevanceLanguage: "en",
		TopicID:           "/m/1",
		ChannelType:       "brand",
	}})
	_, values, err := buildLuceneSelect("video", "video_index", []string{"id"}, f, nil, meta)
	require.NoError(t, err)

	require.Len(t, values, 1)
	assert.JSONEq(t, `{
		"filter": {"type": "boolean", "must": [
			{"type": "match", "field": "channeltype", "value": "brand"},
			{"type": "match", "field": "topicid", "value": "/m/1"},
			{"type": "match", "field": "relevancelanguage", "value": "en"}
		]}
	}`, values[0].(string))
	assert.Equal(t, []string{"id", "topicid", "relevancelanguage"}, meta.Project([]string{"topicId", "relevanceLanguage"}, false))
}

func TestBuildLuceneSearch_PlaylistTopicUsesColumn(t *testing.T) {
	meta := NewMetadata(model.Playlist{}, "cql")
	s := buildLuceneSearch(query.PlaylistFilter(model.PlaylistSM{SearchCriteria: model.SearchCriteria{TopicID: "/m/2"}}), nil, meta)

	require.NotNil(t, s.Filter)
	assert.Equal(t, []luceneCondition{{Type: "match", Field: "topicid", Value: "/m/2"}}, s.Filter.Must)
}

func TestBuildLuceneSearch_SortOnlyHasNoFilter(t *testing.T) {
	meta := NewMetadata(model.Video{}, "cql")
	s := buildLuceneSearch(query.Filter{}, query.PublishedDesc, meta)
	assert.Nil(t, s.Filter)
	assert.Equal(t, []luceneSort{{Field: "publishedat", Reverse: true}}, s.Sort)
}

func TestBuildLuceneSearch_UnknownSortDropped(t *testing.T) {
	meta := NewMetadata(model.Video{}, "cql")
	s := buildLuceneSearch(query.Filter{}, query.SortBy("popularity"), meta)
	assert.True(t, s.isEmpty())
}

func TestBuildLuceneSearch_TextExpandsPerField(t *testing.T) {
	meta := NewMetadata(model.Video{}, "cql")
	f := query.VideoFilter(model.ItemSM{SearchCriteria: model.SearchCriteria{Q: "ca*t"}})
	s := buildLuceneSearch(f, nil, meta)

	require.NotNil(t, s.Filter)
	require.Len(t, s.Filter.Must, 1)
	group := s.Filter.Must[0]
	assert.Equal(t, "boolean", group.Type)
	require.Len(t, group.Should, 10)
	assert.Equal(t, luceneCondition{Type: "phrase", Field: "title", Value: "ca*t"}, group.Should[0])
	assert.Equal(t, luceneCondition{Type: "prefix", Field: "title", Value: "ca*t"}, group.Should[1])
	assert.Equal(t, luceneCondition{Type: "wildcard", Field: "title", Value: `*ca\*t`}, group.Should[2])
	assert.Equal(t, luceneCondition{Type: "wildcard", Field: "title", Value: `ca\*t*`}, group.Should[3])
	assert.Equal(t, luceneCondition{Type: "wildcard", Field: "title", Value: `*ca\*t*`}, group.Should[4])
	assert.Equal(t, "description", group.Should[5].Field)
}

func TestBuildLuceneSearch_DurationAndRegion(t *testing.T) {
	meta := NewMetadata(model.Video{}, "cql")
	f := query.VideoFilter(model.ItemSM{
		SearchCriteria: model.SearchCriteria{RegionCode: "VN"},
		VideoDuration:  model.DurationShort,
	})
	raw, err := json.Marshal(buildLuceneSearch(f, nil, meta))
	require.NoError(t, err)

	assert.JSONEq(t, `{"filter": {
		"type": "boolean",
		"must": [{"type": "range", "field": "duration", "lower": 0, "upper": 240}],
		"not": [{"type": "contains", "field": "blockedregions", "values": ["VN"]}]
	}}`, string(raw))
}

func TestBuildLuceneSearch_PublishedRange(t *testing.T) {
	meta := NewMetadata(model.Video{}, "cql")
	before := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	after := time.Date(2023, 6, 1, 12, 30, 0, 0, time.FixedZone("ICT", 7*3600))
	f := query.VideoFilter(model.ItemSM{SearchCriteria: model.SearchCriteria{PublishedBefore: &before, PublishedAfter: &after}})

	s := buildLuceneSearch(f, nil, meta)
	require.Len(t, s.Filter.Must, 1)
	assert.Equal(t, luceneCondition{
		Type:         "range",
		Field:        "publishedat",
		Lower:        "2023-01-01 00:00:00.000Z",
		Upper:        "2023-06-01 05:30:00.000Z",
		IncludeUpper: true,
	}, s.Filter.Must[0])
}

func TestBuildLuceneSearch_ShouldGroupStaysMandatory(t *testing.T) {
	meta := NewMetadata(model.Channel{}, "cql")
	f := query.Filter{
		Must:   []query.Predicate{query.Match{Field: query.FieldChannelType, Value: "music"}},
		Should: []query.Predicate{query.Match{Field: query.FieldID, Value: "a"}, query.Match{Field: query.FieldID, Value: "b"}},
	}
	s := buildLuceneSearch(f, nil, meta)

	require.Len(t, s.Filter.Must, 2)
	assert.Empty(t, s.Filter.Should)
	assert.Equal(t, "boolean", s.Filter.Must[1].Type)
	assert.Len(t, s.Filter.Must[1].Should, 2)
}
