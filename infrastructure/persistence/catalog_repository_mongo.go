package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tube-catalog/domain/model"
	"tube-catalog/domain/pagination"
	"tube-catalog/domain/query"
	"tube-catalog/domain/repository"
	"tube-catalog/infrastructure/logger"
	"tube-catalog/infrastructure/metrics"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const mongoBackend = "mongo"

// mongoCollection is the subset of *mongo.Collection the catalog uses.
type mongoCollection interface {
	Find(ctx context.Context, filter interface{}, opts ...options.Lister[options.FindOptions]) (*mongo.Cursor, error)
	FindOne(ctx context.Context, filter interface{}, opts ...options.Lister[options.FindOneOptions]) *mongo.SingleResult
	ReplaceOne(ctx context.Context, filter interface{}, replacement interface{}, opts ...options.Lister[options.ReplaceOptions]) (*mongo.UpdateResult, error)
}

// CatalogRepositoryMongo implements repository.ICatalog on MongoDB with
// skip/limit paging and "lastId|skip" continuation tokens.
type CatalogRepositoryMongo struct {
	channels       mongoCollection
	playlists      mongoCollection
	videos         mongoCollection
	playlistVideos mongoCollection
	categories     mongoCollection

	channelMeta       *Metadata
	playlistMeta      *Metadata
	videoMeta         *Metadata
	playlistVideoMeta *Metadata
}

func NewCatalogRepositoryMongo(db *mongo.Database) *CatalogRepositoryMongo {
	return newCatalogRepositoryMongo(
		db.Collection("channel"),
		db.Collection("playlist"),
		db.Collection("video"),
		db.Collection("playlistVideo"),
		db.Collection("category"),
	)
}

func newCatalogRepositoryMongo(channels, playlists, videos, playlistVideos, categories mongoCollection) *CatalogRepositoryMongo {
	return &CatalogRepositoryMongo{
		channels:          channels,
		playlists:         playlists,
		videos:            videos,
		playlistVideos:    playlistVideos,
		categories:        categories,
		channelMeta:       NewMetadata(model.Channel{}, "bson"),
		playlistMeta:      NewMetadata(model.Playlist{}, "bson"),
		videoMeta:         NewMetadata(model.Video{}, "bson"),
		playlistVideoMeta: NewMetadata(model.PlaylistVideo{}, "bson"),
	}
}

var _ repository.ICatalog = (*CatalogRepositoryMongo)(nil)

func (r *CatalogRepositoryMongo) GetChannels(ctx context.Context, ids []string, fields []string) ([]model.Channel, error) {
	return findByIDs[model.Channel](ctx, r.channels, r.channelMeta, ids, fields, false, "get_channels")
}

func (r *CatalogRepositoryMongo) GetPlaylists(ctx context.Context, ids []string, fields []string) ([]model.Playlist, error) {
	return findByIDs[model.Playlist](ctx, r.playlists, r.playlistMeta, ids, fields, false, "get_playlists")
}

func (r *CatalogRepositoryMongo) GetVideos(ctx context.Context, ids []string, fields []string, noSnippet bool) ([]model.Video, error) {
	return findByIDs[model.Video](ctx, r.videos, r.videoMeta, ids, fields, noSnippet, "get_videos")
}

func (r *CatalogRepositoryMongo) GetPlaylistVideos(ctx context.Context, ids []string, fields []string) ([]model.PlaylistVideo, error) {
	return findByIDs[model.PlaylistVideo](ctx, r.videos, r.playlistVideoMeta, ids, fields, false, "get_playlist_videos")
}

func (r *CatalogRepositoryMongo) FindChannelByCustomURL(ctx context.Context, customURL string, fields []string) (*model.Channel, error) {
	start := time.Now()
	opts := options.FindOne().SetProjection(buildMongoProjection(r.channelMeta.Project(fields, false)))
	var channel model.Channel
	err := r.channels.FindOne(ctx, bson.D{{Key: "customUrl", Value: customURL}}, opts).Decode(&channel)
	if errors.Is(err, mongo.ErrNoDocuments) {
		metrics.ObserveQuery(mongoBackend, "find_channel_by_custom_url", start, nil)
		return nil, nil
	}
	metrics.ObserveQuery(mongoBackend, "find_channel_by_custom_url", start, err)
	if err != nil {
		return nil, backendError("find channel by custom url", err)
	}
	return &channel, nil
}

func (r *CatalogRepositoryMongo) GetPlaylistVideoIDs(ctx context.Context, playlistID string) ([]string, error) {
	start := time.Now()
	var doc model.PlaylistVideos
	err := r.playlistVideos.FindOne(ctx, bson.D{{Key: "_id", Value: playlistID}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		metrics.ObserveQuery(mongoBackend, "get_playlist_video_ids", start, nil)
		return nil, nil
	}
	metrics.ObserveQuery(mongoBackend, "get_playlist_video_ids", start, err)
	if err != nil {
		return nil, backendError("get playlist video ids", err)
	}
	return doc.Videos, nil
}

func (r *CatalogRepositoryMongo) ListChannels(ctx context.Context, req query.Request) (*model.ListResult[model.Channel], error) {
	return findPage[model.Channel](ctx, r.channels, r.channelMeta, req, "list_channels")
}

func (r *CatalogRepositoryMongo) ListPlaylists(ctx context.Context, req query.Request) (*model.ListResult[model.Playlist], error) {
	return findPage[model.Playlist](ctx, r.playlists, r.playlistMeta, req, "list_playlists")
}

func (r *CatalogRepositoryMongo) ListVideos(ctx context.Context, req query.Request) (*model.ListResult[model.Video], error) {
	return findPage[model.Video](ctx, r.videos, r.videoMeta, req, "list_videos")
}

func (r *CatalogRepositoryMongo) ListPlaylistVideos(ctx context.Context, req query.Request) (*model.ListResult[model.PlaylistVideo], error) {
	return findPage[model.PlaylistVideo](ctx, r.videos, r.playlistVideoMeta, req, "list_playlist_videos")
}

func (r *CatalogRepositoryMongo) GetCategories(ctx context.Context, regionCode string) (*model.CategoryCollection, error) {
	start := time.Now()
	var collection model.CategoryCollection
	err := r.categories.FindOne(ctx, bson.D{{Key: "_id", Value: regionCode}}).Decode(&collection)
	if errors.Is(err, mongo.ErrNoDocuments) {
		metrics.ObserveQuery(mongoBackend, "get_categories", start, nil)
		return nil, nil
	}
	metrics.ObserveQuery(mongoBackend, "get_categories", start, err)
	if err != nil {
		return nil, backendError("get categories", err)
	}
	return &collection, nil
}

func (r *CatalogRepositoryMongo) SaveCategories(ctx context.Context, collection *model.CategoryCollection) error {
	start := time.Now()
	_, err := r.categories.ReplaceOne(ctx, bson.D{{Key: "_id", Value: collection.ID}}, collection, options.Replace().SetUpsert(true))
	metrics.ObserveQuery(mongoBackend, "save_categories", start, err)
	if err != nil {
		return backendError("save categories", err)
	}
	return nil
}

func findByIDs[T any](ctx context.Context, coll mongoCollection, meta *Metadata, ids []string, fields []string, noSnippet bool, op string) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	start := time.Now()
	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}
	opts := options.Find().SetProjection(buildMongoProjection(meta.Project(fields, noSnippet)))
	list, err := findAll[T](ctx, coll, filter, opts)
	metrics.ObserveQuery(mongoBackend, op, start, err)
	if err != nil {
		return nil, backendError(op, err)
	}
	return list, nil
}

// findPage runs one filtered, sorted and projected page and computes the next token.
func findPage[T model.Identifiable](ctx context.Context, coll mongoCollection, meta *Metadata, req query.Request, op string) (*model.ListResult[T], error) {
	skip, ok := pagination.DecodeSkip(req.PageToken)
	if !ok {
		logger.GetLogger().WithField("pageToken", req.PageToken).Debug("Malformed page token, restarting from the first page")
		metrics.RecordMalformedToken(mongoBackend)
	}
	opts := options.Find().
		SetLimit(int64(req.Limit)).
		SetSkip(int64(skip)).
		SetProjection(buildMongoProjection(meta.Project(req.Fields, req.NoSnippet)))
	if sort := buildMongoSort(req.Sort, meta); len(sort) > 0 {
		opts.SetSort(sort)
	}

	start := time.Now()
	list, err := findAll[T](ctx, coll, buildMongoFilter(req.Filter, meta), opts)
	metrics.ObserveQuery(mongoBackend, op, start, err)
	if err != nil {
		return nil, backendError(op, err)
	}
	return &model.ListResult[T]{
		List:          list,
		NextPageToken: pagination.NextToken(list, req.Limit, skip),
	}, nil
}

func findAll[T any](ctx context.Context, coll mongoCollection, filter interface{}, opts *options.FindOptionsBuilder) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func(cursor *mongo.Cursor, ctx context.Context) {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}(cursor, ctx)

	list := []T{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func backendError(op string, err error) error {
	logger.GetLogger().WithField("error", err).WithField("operation", op).Error("Catalog query failed")
	return fmt.Errorf("%w: %s: %w", repository.ErrBackendExecution, op, err)
}
