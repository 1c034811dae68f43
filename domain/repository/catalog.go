package repository

import (
	"context"
	"errors"

	"tube-catalog/domain/model"
	"tube-catalog/domain/query"
)

var (
	// ErrBackendExecution marks any failure executing a translated query.
	ErrBackendExecution = errors.New("backend execution failed")
	// ErrExternalSource marks a failure of the external category source.
	ErrExternalSource = errors.New("external category source failed")
)

// ICatalog is the storage contract every catalog backend implements.
// Missing entities are reported as empty results, never as errors.
type ICatalog interface {
	// Batch lookups by identity. Order of the result is backend defined.
	GetChannels(ctx context.Context, ids []string, fields []string) ([]model.Channel, error)
	GetPlaylists(ctx context.Context, ids []string, fields []string) ([]model.Playlist, error)
	GetVideos(ctx context.Context, ids []string, fields []string, noSnippet bool) ([]model.Video, error)
	GetPlaylistVideos(ctx context.Context, ids []string, fields []string) ([]model.PlaylistVideo, error)

	// FindChannelByCustomURL returns nil when no channel uses customURL.
	FindChannelByCustomURL(ctx context.Context, customURL string, fields []string) (*model.Channel, error)
	// GetPlaylistVideoIDs returns nil when the playlist has no stored video list.
	GetPlaylistVideoIDs(ctx context.Context, playlistID string) ([]string, error)

	// Filtered, sorted, paged listings.
	ListChannels(ctx context.Context, req query.Request) (*model.ListResult[model.Channel], error)
	ListPlaylists(ctx context.Context, req query.Request) (*model.ListResult[model.Playlist], error)
	ListVideos(ctx context.Context, req query.Request) (*model.ListResult[model.Video], error)
	ListPlaylistVideos(ctx context.Context, req query.Request) (*model.ListResult[model.PlaylistVideo], error)

	ICategoryStore
}

// ICategoryStore persists the per-region category collection.
type ICategoryStore interface {
	// GetCategories returns nil when nothing is stored for regionCode.
	GetCategories(ctx context.Context, regionCode string) (*model.CategoryCollection, error)
	// SaveCategories overwrites whatever is stored for collection.ID.
	SaveCategories(ctx context.Context, collection *model.CategoryCollection) error
}

// ICategoryClient is the external category metadata source.
type ICategoryClient interface {
	GetCategories(ctx context.Context, regionCode string) ([]model.VideoCategory, error)
}
