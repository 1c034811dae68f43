package model

import "time"

// Duration buckets accepted by ItemSM.VideoDuration.
const (
	DurationShort  = "short"
	DurationMedium = "medium"
	DurationLong   = "long"
)

// Sort keys accepted by the search criteria.
const (
	SortDate      = "date"
	SortRelevance = "relevance"
	SortRating    = "rating"
	SortViewCount = "viewCount"
)

// SearchCriteria holds the filter dimensions shared by every searchable entity.
// An empty field means no constraint on that dimension.
type SearchCriteria struct {
	Q                 string     `json:"q,omitempty"                 form:"q"`
	PublishedAfter    *time.Time `json:"publishedAfter,omitempty"    form:"publishedAfter"  time_format:"2006-01-02T15:04:05Z07:00"`
	PublishedBefore   *time.Time `json:"publishedBefore,omitempty"   form:"publishedBefore" time_format:"2006-01-02T15:04:05Z07:00"`
	RegionCode        string     `json:"regionCode,omitempty"        form:"regionCode"`
	ChannelID         string     `json:"channelId,omitempty"         form:"channelId"`
	ChannelType       string     `json:"channelType,omitempty"       form:"channelType"`
	TopicID           string     `json:"topicId,omitempty"           form:"topicId"`
	RelevanceLanguage string     `json:"relevanceLanguage,omitempty" form:"relevanceLanguage"`
	Sort              string     `json:"sort,omitempty"              form:"sort"`
}

// ItemSM is the search criteria for videos.
type ItemSM struct {
	SearchCriteria
	VideoDuration string `json:"videoDuration,omitempty" form:"videoDuration"`
}

// ChannelSM is the search criteria for channels.
type ChannelSM struct {
	SearchCriteria
}

// PlaylistSM is the search criteria for playlists.
type PlaylistSM struct {
	SearchCriteria
}
