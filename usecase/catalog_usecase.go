package usecase

import (
	"context"

	"tube-catalog/domain/model"
	"tube-catalog/domain/pagination"
	"tube-catalog/domain/query"
	"tube-catalog/domain/repository"
	"tube-catalog/infrastructure/logger"
)

const (
	DefaultLimit = 25
	MaxLimit     = 50
)

// ICatalogUseCase is the read and search surface of the catalog.
type ICatalogUseCase interface {
	GetChannel(ctx context.Context, id string, fields []string) (*model.Channel, error)
	GetChannels(ctx context.Context, ids []string, fields []string) ([]model.Channel, error)
	GetPlaylist(ctx context.Context, id string, fields []string) (*model.Playlist, error)
	GetPlaylists(ctx context.Context, ids []string, fields []string) ([]model.Playlist, error)
	GetVideo(ctx context.Context, id string, fields []string, noSnippet bool) (*model.Video, error)
	GetVideos(ctx context.Context, ids []string, fields []string, noSnippet bool) ([]model.Video, error)

	GetChannelPlaylists(ctx context.Context, channelID string, page model.PageRequest) (*model.ListResult[model.Playlist], error)
	GetChannelVideos(ctx context.Context, channelID string, page model.PageRequest) (*model.ListResult[model.PlaylistVideo], error)
	GetPlaylistVideos(ctx context.Context, playlistID string, page model.PageRequest) (*model.ListResult[model.PlaylistVideo], error)

	Search(ctx context.Context, sm model.ItemSM, page model.PageRequest) (*model.ListResult[model.Video], error)
	SearchVideos(ctx context.Context, sm model.ItemSM, page model.PageRequest) (*model.ListResult[model.Video], error)
	SearchPlaylists(ctx context.Context, sm model.PlaylistSM, page model.PageRequest) (*model.ListResult[model.Playlist], error)
	SearchChannels(ctx context.Context, sm model.ChannelSM, page model.PageRequest) (*model.ListResult[model.Channel], error)

	GetRelatedVideos(ctx context.Context, videoID string, page model.PageRequest) (*model.ListResult[model.Video], error)
	GetPopularVideos(ctx context.Context, regionCode, categoryID string, page model.PageRequest) (*model.ListResult[model.Video], error)
	GetPopularVideosByCategory(ctx context.Context, categoryID string, page model.PageRequest) (*model.ListResult[model.Video], error)
	GetPopularVideosByRegion(ctx context.Context, regionCode string, page model.PageRequest) (*model.ListResult[model.Video], error)

	GetCategories(ctx context.Context, regionCode string) ([]model.VideoCategory, error)
}

// CatalogUseCase composes a catalog backend and the category resolver.
type CatalogUseCase struct {
	catalog      repository.ICatalog
	categories   *CategoryResolver
	defaultLimit int
	maxLimit     int
}

func NewCatalogUseCase(catalog repository.ICatalog, categories *CategoryResolver) *CatalogUseCase {
	return &CatalogUseCase{
		catalog:      catalog,
		categories:   categories,
		defaultLimit: DefaultLimit,
		maxLimit:     MaxLimit,
	}
}

// WithLimits overrides the default and maximum page sizes (fluent).
// Non-positive values keep the current setting.
func (u *CatalogUseCase) WithLimits(defaultLimit, maxLimit int) *CatalogUseCase {
	if defaultLimit > 0 {
		u.defaultLimit = defaultLimit
	}
	if maxLimit > 0 {
		u.maxLimit = maxLimit
	}
	if u.defaultLimit > u.maxLimit {
		u.defaultLimit = u.maxLimit
	}
	return u
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func (u *CatalogUseCase) limit(requested int) int {
	switch {
	case requested <= 0:
		return u.defaultLimit
	case requested > u.maxLimit:
		return u.maxLimit
	}
	return requested
}

func (u *CatalogUseCase) request(f query.Filter, sort []query.SortField, page model.PageRequest) query.Request {
	return query.Request{
		Filter:    f,
		Sort:      sort,
		Limit:     u.limit(page.Limit),
		PageToken: page.NextPageToken,
		Fields:    page.Fields,
	}
}

// GetChannel looks the channel up by identity and falls back to its custom URL.
func (u *CatalogUseCase) GetChannel(ctx context.Context, id string, fields []string) (*model.Channel, error) {
	list, err := u.catalog.GetChannels(ctx, []string{id}, fields)
	if err != nil {
		return nil, err
	}
	if len(list) > 0 {
		return &list[0], nil
	}
	return u.catalog.FindChannelByCustomURL(ctx, id, fields)
}

func (u *CatalogUseCase) GetChannels(ctx context.Context, ids []string, fields []string) ([]model.Channel, error) {
	list, err := u.catalog.GetChannels(ctx, ids, fields)
	if err != nil {
		return nil, err
	}
	return orderByIDs(ids, list), nil
}

func (u *CatalogUseCase) GetPlaylist(ctx context.Context, id string, fields []string) (*model.Playlist, error) {
	return first(u.catalog.GetPlaylists(ctx, []string{id}, fields))
}

func (u *CatalogUseCase) GetPlaylists(ctx context.Context, ids []string, fields []string) ([]model.Playlist, error) {
	list, err := u.catalog.GetPlaylists(ctx, ids, fields)
	if err != nil {
		return nil, err
	}
	return orderByIDs(ids, list), nil
}

func (u *CatalogUseCase) GetVideo(ctx context.Context, id string, fields []string, noSnippet bool) (*model.Video, error) {
	return first(u.catalog.GetVideos(ctx, []string{id}, fields, noSnippet))
}

func (u *CatalogUseCase) GetVideos(ctx context.Context, ids []string, fields []string, noSnippet bool) ([]model.Video, error) {
	list, err := u.catalog.GetVideos(ctx, ids, fields, noSnippet)
	if err != nil {
		return nil, err
	}
	return orderByIDs(ids, list), nil
}

func (u *CatalogUseCase) GetChannelPlaylists(ctx context.Context, channelID string, page model.PageRequest) (*model.ListResult[model.Playlist], error) {
	return u.catalog.ListPlaylists(ctx, u.request(query.OwnerFilter(query.FieldChannelID, channelID), query.PublishedDesc, page))
}

func (u *CatalogUseCase) GetChannelVideos(ctx context.Context, channelID string, page model.PageRequest) (*model.ListResult[model.PlaylistVideo], error) {
	return u.catalog.ListPlaylistVideos(ctx, u.request(query.OwnerFilter(query.FieldOwnerChannelID, channelID), query.PublishedDesc, page))
}

// GetPlaylistVideos slices the stored identity list of the playlist and
// hydrates the slice, keeping the playlist order. A token is issued while
// identities remain beyond the slice.
func (u *CatalogUseCase) GetPlaylistVideos(ctx context.Context, playlistID string, page model.PageRequest) (*model.ListResult[model.PlaylistVideo], error) {
	ids, err := u.catalog.GetPlaylistVideoIDs(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	limit := u.limit(page.Limit)
	total := int64(len(ids))
	result := &model.ListResult[model.PlaylistVideo]{List: []model.PlaylistVideo{}, Total: &total, Limit: &limit}

	skip := pagination.ResumeSkip(page.NextPageToken)
	if skip >= len(ids) {
		return result, nil
	}
	end := skip + limit
	if end < skip || end > len(ids) {
		end = len(ids)
	}
	slice := ids[skip:end]

	list, err := u.catalog.GetPlaylistVideos(ctx, slice, page.Fields)
	if err != nil {
		return nil, err
	}
	result.List = orderByIDs(slice, list)
	if end < len(ids) {
		result.NextPageToken = pagination.EncodeSkip(len(slice), slice[len(slice)-1], limit, skip)
	}
	return result, nil
}

// Search is the general item search; it currently covers videos only.
func (u *CatalogUseCase) Search(ctx context.Context, sm model.ItemSM, page model.PageRequest) (*model.ListResult[model.Video], error) {
	return u.SearchVideos(ctx, sm, page)
}

func (u *CatalogUseCase) SearchVideos(ctx context.Context, sm model.ItemSM, page model.PageRequest) (*model.ListResult[model.Video], error) {
	return u.catalog.ListVideos(ctx, u.request(query.VideoFilter(sm), query.SortBy(sm.Sort), page))
}

func (u *CatalogUseCase) SearchPlaylists(ctx context.Context, sm model.PlaylistSM, page model.PageRequest) (*model.ListResult[model.Playlist], error) {
	return u.catalog.ListPlaylists(ctx, u.request(query.PlaylistFilter(sm), query.SortBy(sm.Sort), page))
}

func (u *CatalogUseCase) SearchChannels(ctx context.Context, sm model.ChannelSM, page model.PageRequest) (*model.ListResult[model.Channel], error) {
	return u.catalog.ListChannels(ctx, u.request(query.ChannelFilter(sm), query.SortBy(sm.Sort), page))
}

// GetRelatedVideos lists videos sharing a tag with videoID. An unknown or
// untagged source video has no related videos.
func (u *CatalogUseCase) GetRelatedVideos(ctx context.Context, videoID string, page model.PageRequest) (*model.ListResult[model.Video], error) {
	source, err := u.catalog.GetVideos(ctx, []string{videoID}, []string{query.FieldTags}, true)
	if err != nil {
		return nil, err
	}
	if len(source) == 0 || len(source[0].Tags) == 0 {
		logger.GetLogger().WithField("videoId", videoID).Debug("No related videos for source video")
		return model.EmptyList[model.Video](), nil
	}
	return u.catalog.ListVideos(ctx, u.request(query.RelatedFilter(videoID, source[0].Tags), query.PublishedDesc, page))
}

func (u *CatalogUseCase) GetPopularVideos(ctx context.Context, regionCode, categoryID string, page model.PageRequest) (*model.ListResult[model.Video], error) {
	return u.catalog.ListVideos(ctx, u.request(query.PopularFilter(regionCode, categoryID), query.PublishedDesc, page))
}

func (u *CatalogUseCase) GetPopularVideosByCategory(ctx context.Context, categoryID string, page model.PageRequest) (*model.ListResult[model.Video], error) {
	return u.GetPopularVideos(ctx, "", categoryID, page)
}

func (u *CatalogUseCase) GetPopularVideosByRegion(ctx context.Context, regionCode string, page model.PageRequest) (*model.ListResult[model.Video], error) {
	return u.GetPopularVideos(ctx, regionCode, "", page)
}

func (u *CatalogUseCase) GetCategories(ctx context.Context, regionCode string) ([]model.VideoCategory, error) {
	return u.categories.Resolve(ctx, regionCode)
}

func first[T any](list []T, err error) (*T, error) {
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return &list[0], nil
}

// orderByIDs returns the items of list in the order of ids. Missing ids are
// skipped and repeated ids repeat the item.
func orderByIDs[T model.Identifiable](ids []string, list []T) []T {
	byID := make(map[string]T, len(list))
	for _, item := range list {
		byID[item.Identity()] = item
	}
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			out = append(out, item)
		}
	}
	return out
}
