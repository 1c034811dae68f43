package model

import "time"

// Channel represents a catalog channel.
// json tags are the logical field names, bson tags the MongoDB field names
// and cql tags the Cassandra column names.
type Channel struct {
	ID                     string     `json:"id"                                bson:"_id"                              cql:"id"`
	Title                  string     `json:"title,omitempty"                   bson:"title,omitempty"                  cql:"title"`
	Description            string     `json:"description,omitempty"             bson:"description,omitempty"            cql:"description"            catalog:"snippet"`
	CustomURL              string     `json:"customUrl,omitempty"               bson:"customUrl,omitempty"              cql:"customurl"`
	Country                string     `json:"country,omitempty"                 bson:"country,omitempty"                cql:"country"`
	ChannelType            string     `json:"channelType,omitempty"             bson:"channelType,omitempty"            cql:"channeltype"`
	TopicID                string     `json:"topicId,omitempty"                 bson:"topicId,omitempty"                cql:"topicid"`
	RelevanceLanguage      string     `json:"relevanceLanguage,omitempty"       bson:"relevanceLanguage,omitempty"      cql:"relevancelanguage"`
	PublishedAt            *time.Time `json:"publishedAt,omitempty"             bson:"publishedAt,omitempty"            cql:"publishedat"`
	LocalizedTitle         string     `json:"localizedTitle,omitempty"          bson:"localizedTitle,omitempty"         cql:"localizedtitle"`
	LocalizedDescription   string     `json:"localizedDescription,omitempty"    bson:"localizedDescription,omitempty"   cql:"localizeddescription"   catalog:"snippet"`
	Thumbnail              string     `json:"thumbnail,omitempty"               bson:"thumbnail,omitempty"              cql:"thumbnail"`
	MediumThumbnail        string     `json:"mediumThumbnail,omitempty"         bson:"mediumThumbnail,omitempty"        cql:"mediumthumbnail"`
	HighThumbnail          string     `json:"highThumbnail,omitempty"           bson:"highThumbnail,omitempty"          cql:"highthumbnail"`
	Uploads                string     `json:"uploads,omitempty"                 bson:"uploads,omitempty"                cql:"uploads"`
	Favorites              string     `json:"favorites,omitempty"               bson:"favorites,omitempty"              cql:"favorites"`
	Likes                  string     `json:"likes,omitempty"                   bson:"likes,omitempty"                  cql:"likes"`
	LastUpload             *time.Time `json:"lastUpload,omitempty"              bson:"lastUpload,omitempty"             cql:"lastupload"`
	Count                  int64      `json:"count,omitempty"                   bson:"count,omitempty"                  cql:"count"`
	ItemCount              int64      `json:"itemCount,omitempty"               bson:"itemCount,omitempty"              cql:"itemcount"`
	PlaylistCount          int64      `json:"playlistCount,omitempty"           bson:"playlistCount,omitempty"          cql:"playlistcount"`
	PlaylistItemCount      int64      `json:"playlistItemCount,omitempty"       bson:"playlistItemCount,omitempty"      cql:"playlistitemcount"`
	PlaylistVideoCount     int64      `json:"playlistVideoCount,omitempty"      bson:"playlistVideoCount,omitempty"     cql:"playlistvideocount"`
	PlaylistVideoItemCount int64      `json:"playlistVideoItemCount,omitempty"  bson:"playlistVideoItemCount,omitempty" cql:"playlistvideoitemcount"`
	BlockedRegions         []string   `json:"blockedRegions,omitempty"          bson:"blockedRegions,omitempty"         cql:"blockedregions"`
}

func (c Channel) Identity() string { return c.ID }

// Playlist represents a catalog playlist.
type Playlist struct {
	ID                   string     `json:"id"                             bson:"_id"                            cql:"id"`
	Title                string     `json:"title,omitempty"                bson:"title,omitempty"                cql:"title"`
	Description          string     `json:"description,omitempty"          bson:"description,omitempty"          cql:"description"          catalog:"snippet"`
	ChannelID            string     `json:"channelId,omitempty"            bson:"channelId,omitempty"            cql:"channelid"`
	ChannelTitle         string     `json:"channelTitle,omitempty"         bson:"channelTitle,omitempty"         cql:"channeltitle"`
	ChannelType          string     `json:"channelType,omitempty"          bson:"channelType,omitempty"          cql:"channeltype"`
	TopicID              string     `json:"topicId,omitempty"              bson:"topicId,omitempty"              cql:"topicid"`
	RelevanceLanguage    string     `json:"relevanceLanguage,omitempty"    bson:"relevanceLanguage,omitempty"    cql:"relevancelanguage"`
	PublishedAt          *time.Time `json:"publishedAt,omitempty"          bson:"publishedAt,omitempty"          cql:"publishedat"`
	LocalizedTitle       string     `json:"localizedTitle,omitempty"       bson:"localizedTitle,omitempty"       cql:"localizedtitle"`
	LocalizedDescription string     `json:"localizedDescription,omitempty" bson:"localizedDescription,omitempty" cql:"localizeddescription" catalog:"snippet"`
	Thumbnail            string     `json:"thumbnail,omitempty"            bson:"thumbnail,omitempty"            cql:"thumbnail"`
	MediumThumbnail      string     `json:"mediumThumbnail,omitempty"      bson:"mediumThumbnail,omitempty"      cql:"mediumthumbnail"`
	HighThumbnail        string     `json:"highThumbnail,omitempty"        bson:"highThumbnail,omitempty"        cql:"highthumbnail"`
	StandardThumbnail    string     `json:"standardThumbnail,omitempty"    bson:"standardThumbnail,omitempty"    cql:"standardthumbnail"`
	MaxresThumbnail      string     `json:"maxresThumbnail,omitempty"      bson:"maxresThumbnail,omitempty"      cql:"maxresthumbnail"`
	Count                int64      `json:"count,omitempty"                bson:"count,omitempty"                cql:"count"`
	ItemCount            int64      `json:"itemCount,omitempty"            bson:"itemCount,omitempty"            cql:"itemcount"`
	BlockedRegions       []string   `json:"blockedRegions,omitempty"       bson:"blockedRegions,omitempty"       cql:"blockedregions"`
}

func (p Playlist) Identity() string { return p.ID }

// Video represents a catalog video. Duration is in seconds.
type Video struct {
	ID                   string     `json:"id"                             bson:"_id"                            cql:"id"`
	Title                string     `json:"title,omitempty"                bson:"title,omitempty"                cql:"title"`
	Description          string     `json:"description,omitempty"          bson:"description,omitempty"          cql:"description"          catalog:"snippet"`
	ChannelID            string     `json:"channelId,omitempty"            bson:"channelId,omitempty"            cql:"channelid"`
	ChannelTitle         string     `json:"channelTitle,omitempty"         bson:"channelTitle,omitempty"         cql:"channeltitle"`
	CategoryID           string     `json:"categoryId,omitempty"           bson:"categoryId,omitempty"           cql:"categoryid"`
	ChannelType          string     `json:"channelType,omitempty"          bson:"channelType,omitempty"          cql:"channeltype"`
	TopicID              string     `json:"topicId,omitempty"              bson:"topicId,omitempty"              cql:"topicid"`
	RelevanceLanguage    string     `json:"relevanceLanguage,omitempty"    bson:"relevanceLanguage,omitempty"    cql:"relevancelanguage"`
	PublishedAt          *time.Time `json:"publishedAt,omitempty"          bson:"publishedAt,omitempty"          cql:"publishedat"`
	Duration             int64      `json:"duration,omitempty"             bson:"duration,omitempty"             cql:"duration"`
	Definition           string     `json:"definition,omitempty"           bson:"definition,omitempty"           cql:"definition"`
	Dimension            string     `json:"dimension,omitempty"            bson:"dimension,omitempty"            cql:"dimension"`
	Caption              string     `json:"caption,omitempty"              bson:"caption,omitempty"              cql:"caption"`
	LicensedContent      bool       `json:"licensedContent,omitempty"      bson:"licensedContent,omitempty"      cql:"licensedcontent"`
	Projection           string     `json:"projection,omitempty"           bson:"projection,omitempty"           cql:"projection"`
	DefaultLanguage      string     `json:"defaultLanguage,omitempty"      bson:"defaultLanguage,omitempty"      cql:"defaultlanguage"`
	DefaultAudioLanguage string     `json:"defaultAudioLanguage,omitempty" bson:"defaultAudioLanguage,omitempty" cql:"defaultaudiolanguage"`
	LocalizedTitle       string     `json:"localizedTitle,omitempty"       bson:"localizedTitle,omitempty"       cql:"localizedtitle"`
	LocalizedDescription string     `json:"localizedDescription,omitempty" bson:"localizedDescription,omitempty" cql:"localizeddescription" catalog:"snippet"`
	Thumbnail            string     `json:"thumbnail,omitempty"            bson:"thumbnail,omitempty"            cql:"thumbnail"`
	MediumThumbnail      string     `json:"mediumThumbnail,omitempty"      bson:"mediumThumbnail,omitempty"      cql:"mediumthumbnail"`
	HighThumbnail        string     `json:"highThumbnail,omitempty"        bson:"highThumbnail,omitempty"        cql:"highthumbnail"`
	StandardThumbnail    string     `json:"standardThumbnail,omitempty"    bson:"standardThumbnail,omitempty"    cql:"standardthumbnail"`
	MaxresThumbnail      string     `json:"maxresThumbnail,omitempty"      bson:"maxresThumbnail,omitempty"      cql:"maxresthumbnail"`
	Tags                 []string   `json:"tags,omitempty"                 bson:"tags,omitempty"                 cql:"tags"`
	BlockedRegions       []string   `json:"blockedRegions,omitempty"       bson:"blockedRegions,omitempty"       cql:"blockedregions"`
	AllowedRegions       []string   `json:"allowedRegions,omitempty"       bson:"allowedRegions,omitempty"       cql:"allowedregions"`
}

func (v Video) Identity() string { return v.ID }

// PlaylistVideo is the reduced video shape returned for playlist and channel
// listings. The owner channel is stored on the video as channelId/channelTitle.
type PlaylistVideo struct {
	ID                     string     `json:"id"                               bson:"_id"                            cql:"id"`
	Title                  string     `json:"title,omitempty"                  bson:"title,omitempty"                cql:"title"`
	Description            string     `json:"description,omitempty"            bson:"description,omitempty"          cql:"description"          catalog:"snippet"`
	PublishedAt            *time.Time `json:"publishedAt,omitempty"            bson:"publishedAt,omitempty"          cql:"publishedat"`
	VideoOwnerChannelID    string     `json:"videoOwnerChannelId,omitempty"    bson:"channelId,omitempty"            cql:"channelid"`
	VideoOwnerChannelTitle string     `json:"videoOwnerChannelTitle,omitempty" bson:"channelTitle,omitempty"         cql:"channeltitle"`
	LocalizedTitle         string     `json:"localizedTitle,omitempty"         bson:"localizedTitle,omitempty"       cql:"localizedtitle"`
	LocalizedDescription   string     `json:"localizedDescription,omitempty"   bson:"localizedDescription,omitempty" cql:"localizeddescription" catalog:"snippet"`
	Thumbnail              string     `json:"thumbnail,omitempty"              bson:"thumbnail,omitempty"            cql:"thumbnail"`
	MediumThumbnail        string     `json:"mediumThumbnail,omitempty"        bson:"mediumThumbnail,omitempty"      cql:"mediumthumbnail"`
	HighThumbnail          string     `json:"highThumbnail,omitempty"          bson:"highThumbnail,omitempty"        cql:"highthumbnail"`
	StandardThumbnail      string     `json:"standardThumbnail,omitempty"      bson:"standardThumbnail,omitempty"    cql:"standardthumbnail"`
	MaxresThumbnail        string     `json:"maxresThumbnail,omitempty"        bson:"maxresThumbnail,omitempty"      cql:"maxresthumbnail"`
}

func (v PlaylistVideo) Identity() string { return v.ID }

// PlaylistVideos is the ordered list of video ids stored for a playlist.
type PlaylistVideos struct {
	ID     string   `json:"id"     bson:"_id"    cql:"id"`
	Videos []string `json:"videos" bson:"videos" cql:"videos"`
}

// VideoCategory is a category record as served by the external category source.
type VideoCategory struct {
	ID         string `json:"id"                  bson:"id"`
	Title      string `json:"title"               bson:"title"`
	Assignable bool   `json:"assignable"          bson:"assignable"`
	ChannelID  string `json:"channelId,omitempty" bson:"channelId,omitempty"`
}

// CategoryCollection holds the assignable categories cached for one region.
type CategoryCollection struct {
	ID   string          `json:"id"   bson:"_id"`
	Data []VideoCategory `json:"data" bson:"data"`
}
