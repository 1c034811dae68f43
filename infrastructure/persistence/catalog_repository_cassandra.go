package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"tube-catalog/domain/model"
	"tube-catalog/domain/pagination"
	"tube-catalog/domain/query"
	"tube-catalog/domain/repository"
	"tube-catalog/infrastructure/logger"
	"tube-catalog/infrastructure/metrics"

	"github.com/go-viper/mapstructure/v2"
)

const cassandraBackend = "cassandra"

type cqlTable struct {
	name  string
	index string
	meta  *Metadata
}

// CatalogRepositoryCassandra implements repository.ICatalog on Cassandra with a
// Lucene secondary index per table. Pages are resumed from the native paging
// state, wrapped into a URL-safe token.
type CatalogRepositoryCassandra struct {
	runner cqlRunner

	channel       cqlTable
	playlist      cqlTable
	video         cqlTable
	playlistVideo cqlTable
}

func NewCatalogRepositoryCassandra(runner cqlRunner) *CatalogRepositoryCassandra {
	return &CatalogRepositoryCassandra{
		runner:        runner,
		channel:       cqlTable{name: "channel", index: "channel_index", meta: NewMetadata(model.Channel{}, "cql")},
		playlist:      cqlTable{name: "playlist", index: "playlist_index", meta: NewMetadata(model.Playlist{}, "cql")},
		video:         cqlTable{name: "video", index: "video_index", meta: NewMetadata(model.Video{}, "cql")},
		playlistVideo: cqlTable{name: "video", index: "video_index", meta: NewMetadata(model.PlaylistVideo{}, "cql")},
	}
}

var _ repository.ICatalog = (*CatalogRepositoryCassandra)(nil)

func (r *CatalogRepositoryCassandra) GetChannels(ctx context.Context, ids []string, fields []string) ([]model.Channel, error) {
	return selectByIDs[model.Channel](ctx, r.runner, r.channel, ids, fields, false, "get_channels")
}

func (r *CatalogRepositoryCassandra) GetPlaylists(ctx context.Context, ids []string, fields []string) ([]model.Playlist, error) {
	return selectByIDs[model.Playlist](ctx, r.runner, r.playlist, ids, fields, false, "get_playlists")
}

func (r *CatalogRepositoryCassandra) GetVideos(ctx context.Context, ids []string, fields []string, noSnippet bool) ([]model.Video, error) {
	return selectByIDs[model.Video](ctx, r.runner, r.video, ids, fields, noSnippet, "get_videos")
}

func (r *CatalogRepositoryCassandra) GetPlaylistVideos(ctx context.Context, ids []string, fields []string) ([]model.PlaylistVideo, error) {
	return selectByIDs[model.PlaylistVideo](ctx, r.runner, r.playlistVideo, ids, fields, false, "get_playlist_videos")
}

func (r *CatalogRepositoryCassandra) FindChannelByCustomURL(ctx context.Context, customURL string, fields []string) (*model.Channel, error) {
	res, err := selectPage[model.Channel](ctx, r.runner, r.channel, query.Request{
		Filter: query.Filter{Must: []query.Predicate{query.Match{Field: query.FieldCustomURL, Value: customURL}}},
		Limit:  1,
		Fields: fields,
	}, "find_channel_by_custom_url")
	if err != nil {
		return nil, err
	}
	if len(res.List) == 0 {
		return nil, nil
	}
	return &res.List[0], nil
}

func (r *CatalogRepositoryCassandra) GetPlaylistVideoIDs(ctx context.Context, playlistID string) ([]string, error) {
	start := time.Now()
	rows, _, err := r.runner.Select(ctx, "SELECT videos FROM playlistvideo WHERE id = ?", []interface{}{playlistID}, cqlPage{})
	metrics.ObserveQuery(cassandraBackend, "get_playlist_video_ids", start, err)
	if err != nil {
		return nil, backendError("get playlist video ids", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	switch ids := rows[0]["videos"].(type) {
	case []string:
		return ids, nil
	case nil:
		return nil, nil
	default:
		return nil, backendError("get playlist video ids", fmt.Errorf("unexpected videos column type %T", ids))
	}
}

func (r *CatalogRepositoryCassandra) ListChannels(ctx context.Context, req query.Request) (*model.ListResult[model.Channel], error) {
	return selectPage[model.Channel](ctx, r.runner, r.channel, req, "list_channels")
}

func (r *CatalogRepositoryCassandra) ListPlaylists(ctx context.Context, req query.Request) (*model.ListResult[model.Playlist], error) {
	return selectPage[model.Playlist](ctx, r.runner, r.playlist, req, "list_playlists")
}

func (r *CatalogRepositoryCassandra) ListVideos(ctx context.Context, req query.Request) (*model.ListResult[model.Video], error) {
	return selectPage[model.Video](ctx, r.runner, r.video, req, "list_videos")
}

func (r *CatalogRepositoryCassandra) ListPlaylistVideos(ctx context.Context, req query.Request) (*model.ListResult[model.PlaylistVideo], error) {
	return selectPage[model.PlaylistVideo](ctx, r.runner, r.playlistVideo, req, "list_playlist_videos")
}

// GetCategories reads the category row; data is stored as a JSON text column.
func (r *CatalogRepositoryCassandra) GetCategories(ctx context.Context, regionCode string) (*model.CategoryCollection, error) {
	start := time.Now()
	rows, _, err := r.runner.Select(ctx, "SELECT id, data FROM category WHERE id = ?", []interface{}{regionCode}, cqlPage{})
	metrics.ObserveQuery(cassandraBackend, "get_categories", start, err)
	if err != nil {
		return nil, backendError("get categories", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	collection := &model.CategoryCollection{ID: regionCode, Data: []model.VideoCategory{}}
	if raw, _ := rows[0]["data"].(string); raw != "" {
		if err := json.Unmarshal([]byte(raw), &collection.Data); err != nil {
			return nil, backendError("decode categories", err)
		}
	}
	return collection, nil
}

func (r *CatalogRepositoryCassandra) SaveCategories(ctx context.Context, collection *model.CategoryCollection) error {
	raw, err := json.Marshal(collection.Data)
	if err != nil {
		return fmt.Errorf("encode categories: %w", err)
	}
	start := time.Now()
	err = r.runner.Exec(ctx, "INSERT INTO category (id, data) VALUES (?, ?)", collection.ID, string(raw))
	metrics.ObserveQuery(cassandraBackend, "save_categories", start, err)
	if err != nil {
		return backendError("save categories", err)
	}
	return nil
}

func selectByIDs[T any](ctx context.Context, runner cqlRunner, table cqlTable, ids []string, fields []string, noSnippet bool, op string) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	stmt := fmt.Sprintf("SELECT %s FROM %s WHERE id IN ?", strings.Join(table.meta.Project(fields, noSnippet), ", "), table.name)
	start := time.Now()
	rows, _, err := runner.Select(ctx, stmt, []interface{}{ids}, cqlPage{})
	metrics.ObserveQuery(cassandraBackend, op, start, err)
	if err != nil {
		return nil, backendError(op, err)
	}
	list, err := decodeRows[T](rows, table.meta)
	if err != nil {
		return nil, backendError(op, err)
	}
	return list, nil
}

// selectPage runs one Lucene-filtered page and wraps the returned paging state.
func selectPage[T any](ctx context.Context, runner cqlRunner, table cqlTable, req query.Request, op string) (*model.ListResult[T], error) {
	stmt, values, err := buildLuceneSelect(table.name, table.index, table.meta.Project(req.Fields, req.NoSnippet), req.Filter, req.Sort, table.meta)
	if err != nil {
		return nil, backendError(op, err)
	}
	state := pagination.DecodeCursor(req.PageToken)
	if req.PageToken != "" && state == nil {
		logger.GetLogger().WithField("pageToken", req.PageToken).Debug("Malformed page token, restarting from the first page")
		metrics.RecordMalformedToken(cassandraBackend)
	}

	start := time.Now()
	rows, next, err := runner.Select(ctx, stmt, values, cqlPage{Size: req.Limit, State: state})
	metrics.ObserveQuery(cassandraBackend, op, start, err)
	if err != nil {
		return nil, backendError(op, err)
	}
	list, err := decodeRows[T](rows, table.meta)
	if err != nil {
		return nil, backendError(op, err)
	}
	return &model.ListResult[T]{List: list, NextPageToken: pagination.EncodeCursor(next)}, nil
}

// decodeRows renames storage columns to logical names and decodes each row
// into T through its json tags.
func decodeRows[T any](rows []map[string]interface{}, meta *Metadata) ([]T, error) {
	list := make([]T, 0, len(rows))
	for _, row := range rows {
		logical := make(map[string]interface{}, len(row))
		for column, value := range row {
			logical[meta.Logical(column)] = value
		}
		var item T
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			TagName:          "json",
			WeaklyTypedInput: true,
			DecodeHook:       nullTimeHook,
			Result:           &item,
		})
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(logical); err != nil {
			return nil, fmt.Errorf("decode row: %w", err)
		}
		list = append(list, item)
	}
	return list, nil
}

// nullTimeHook drops zero timestamps, which is how the driver reports null.
func nullTimeHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if t, ok := data.(time.Time); ok && t.IsZero() {
		return nil, nil
	}
	return data, nil
}

