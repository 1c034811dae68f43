package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tube-catalog/domain/model"
	"tube-catalog/domain/pagination"
	"tube-catalog/domain/query"
	"tube-catalog/domain/repository"
)

type cqlCall struct {
	stmt   string
	values []interface{}
	page   cqlPage
}

type fakeRunner struct {
	rows []map[string]interface{}
	next []byte
	err  error

	selects []cqlCall
	execs   []cqlCall
}

func (f *fakeRunner) Select(ctx context.Context, stmt string, values []interface{}, page cqlPage) ([]map[string]interface{}, []byte, error) {
	f.selects = append(f.selects, cqlCall{stmt: stmt, values: values, page: page})
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.rows, f.next, nil
}

func (f *fakeRunner) Exec(ctx context.Context, stmt string, values ...interface{}) error {
	f.execs = append(f.execs, cqlCall{stmt: stmt, values: values})
	return f.err
}

func TestCassandraListVideos_WrapsPagingState(t *testing.T) {
	published := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	runner := &fakeRunner{
		rows: []map[string]interface{}{
			{"id": "v1", "title": "Cats", "duration": 95, "publishedat": published, "tags": []string{"cat"}},
			{"id": "v2", "title": "Dogs", "duration": int64(400), "publishedat": time.Time{}},
		},
		next: []byte{0x01, 0xfe, 0x10},
	}
	repo := NewCatalogRepositoryCassandra(runner)

	res, err := repo.ListVideos(context.Background(), query.Request{
		Filter: query.VideoFilter(model.ItemSM{VideoDuration: model.DurationMedium}),
		Sort:   query.PublishedDesc,
		Limit:  2,
		Fields: []string{"title", "duration", "publishedAt", "tags"},
	})
	require.NoError(t, err)

	require.Len(t, res.List, 2)
	assert.Equal(t, "v1", res.List[0].ID)
	assert.Equal(t, int64(95), res.List[0].Duration)
	require.NotNil(t, res.List[0].PublishedAt)
	assert.True(t, published.Equal(*res.List[0].PublishedAt))
	assert.Equal(t, []string{"cat"}, res.List[0].Tags)
	assert.Nil(t, res.List[1].PublishedAt)
	assert.Equal(t, pagination.EncodeCursor([]byte{0x01, 0xfe, 0x10}), res.NextPageToken)

	require.Len(t, runner.selects, 1)
	call := runner.selects[0]
	assert.Equal(t, "SELECT id, title, duration, publishedat, tags FROM video WHERE expr(video_index, ?)", call.stmt)
	assert.Equal(t, 2, call.page.Size)
	assert.Nil(t, call.page.State)
}

func TestCassandraListVideos_ResumesFromToken(t *testing.T) {
	runner := &fakeRunner{rows: []map[string]interface{}{}}
	repo := NewCatalogRepositoryCassandra(runner)

	state := []byte("opaque-state")
	res, err := repo.ListVideos(context.Background(), query.Request{Limit: 10, PageToken: pagination.EncodeCursor(state)})
	require.NoError(t, err)

	assert.Empty(t, res.List)
	assert.Empty(t, res.NextPageToken)
	assert.Equal(t, state, runner.selects[0].page.State)
}

func TestCassandraListVideos_MalformedTokenRestarts(t *testing.T) {
	runner := &fakeRunner{}
	repo := NewCatalogRepositoryCassandra(runner)

	_, err := repo.ListVideos(context.Background(), query.Request{Limit: 10, PageToken: "%%not-base64%%"})
	require.NoError(t, err)
	assert.Nil(t, runner.selects[0].page.State)
}

func TestCassandraListPlaylistVideos_MapsOwnerColumns(t *testing.T) {
	runner := &fakeRunner{rows: []map[string]interface{}{
		{"id": "v1", "channelid": "UC1", "channeltitle": "Owner"},
	}}
	repo := NewCatalogRepositoryCassandra(runner)

	res, err := repo.ListPlaylistVideos(context.Background(), query.Request{
		Filter: query.OwnerFilter(query.FieldOwnerChannelID, "UC1"),
		Limit:  5,
		Fields: []string{"videoOwnerChannelId", "videoOwnerChannelTitle"},
	})
	require.NoError(t, err)

	assert.Equal(t, []model.PlaylistVideo{{ID: "v1", VideoOwnerChannelID: "UC1", VideoOwnerChannelTitle: "Owner"}}, res.List)
	assert.Equal(t, "SELECT id, channelid, channeltitle FROM video WHERE expr(video_index, ?)", runner.selects[0].stmt)
	assert.Contains(t, runner.selects[0].values[0], `"field":"channelid"`)
}

func TestCassandraGetVideos(t *testing.T) {
	runner := &fakeRunner{rows: []map[string]interface{}{{"id": "v1", "title": "Cats"}}}
	repo := NewCatalogRepositoryCassandra(runner)

	list, err := repo.GetVideos(context.Background(), []string{"v1", "v9"}, nil, true)
	require.NoError(t, err)

	assert.Equal(t, []model.Video{{ID: "v1", Title: "Cats"}}, list)
	call := runner.selects[0]
	assert.NotContains(t, call.stmt, "description")
	assert.Contains(t, call.stmt, "FROM video WHERE id IN ?")
	assert.Equal(t, []interface{}{[]string{"v1", "v9"}}, call.values)
	assert.Equal(t, cqlPage{}, call.page)
}

func TestCassandraGetChannels_EmptyIDsSkipsQuery(t *testing.T) {
	runner := &fakeRunner{}
	repo := NewCatalogRepositoryCassandra(runner)

	list, err := repo.GetChannels(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Empty(t, runner.selects)
}

func TestCassandraFindChannelByCustomURL(t *testing.T) {
	runner := &fakeRunner{}
	repo := NewCatalogRepositoryCassandra(runner)

	channel, err := repo.FindChannelByCustomURL(context.Background(), "@cats", nil)
	require.NoError(t, err)
	assert.Nil(t, channel)
	assert.Equal(t, 1, runner.selects[0].page.Size)
	assert.Contains(t, runner.selects[0].values[0], `"field":"customurl"`)

	runner.rows = []map[string]interface{}{{"id": "UC1", "customurl": "@cats"}}
	channel, err = repo.FindChannelByCustomURL(context.Background(), "@cats", nil)
	require.NoError(t, err)
	require.NotNil(t, channel)
	assert.Equal(t, "UC1", channel.ID)
	assert.Equal(t, "@cats", channel.CustomURL)
}

func TestCassandraGetPlaylistVideoIDs(t *testing.T) {
	runner := &fakeRunner{}
	repo := NewCatalogRepositoryCassandra(runner)

	ids, err := repo.GetPlaylistVideoIDs(context.Background(), "PL1")
	require.NoError(t, err)
	assert.Nil(t, ids)

	runner.rows = []map[string]interface{}{{"videos": []string{"v3", "v1"}}}
	ids, err = repo.GetPlaylistVideoIDs(context.Background(), "PL1")
	require.NoError(t, err)
	assert.Equal(t, []string{"v3", "v1"}, ids)
	assert.Equal(t, []interface{}{"PL1"}, runner.selects[1].values)
}

func TestCassandraGetPlaylistVideoIDs_UnexpectedColumnType(t *testing.T) {
	runner := &fakeRunner{rows: []map[string]interface{}{{"videos": "v3,v1"}}}
	repo := NewCatalogRepositoryCassandra(runner)

	ids, err := repo.GetPlaylistVideoIDs(context.Background(), "PL1")
	assert.ErrorIs(t, err, repository.ErrBackendExecution)
	assert.Nil(t, ids)
}

func TestCassandraCategories(t *testing.T) {
	runner := &fakeRunner{}
	repo := NewCatalogRepositoryCassandra(runner)

	got, err := repo.GetCategories(context.Background(), "US")
	require.NoError(t, err)
	assert.Nil(t, got)

	err = repo.SaveCategories(context.Background(), &model.CategoryCollection{
		ID:   "US",
		Data: []model.VideoCategory{{ID: "10", Title: "Music", Assignable: true}},
	})
	require.NoError(t, err)
	require.Len(t, runner.execs, 1)
	assert.Equal(t, "INSERT INTO category (id, data) VALUES (?, ?)", runner.execs[0].stmt)
	assert.Equal(t, "US", runner.execs[0].values[0])
	stored := runner.execs[0].values[1].(string)

	runner.rows = []map[string]interface{}{{"id": "US", "data": stored}}
	got, err = repo.GetCategories(context.Background(), "US")
	require.NoError(t, err)
	assert.Equal(t, &model.CategoryCollection{
		ID:   "US",
		Data: []model.VideoCategory{{ID: "10", Title: "Music", Assignable: true}},
	}, got)
}

func TestCassandraBackendError(t *testing.T) {
	runner := &fakeRunner{err: errors.New("no hosts available")}
	repo := NewCatalogRepositoryCassandra(runner)

	_, err := repo.ListChannels(context.Background(), query.Request{Limit: 10})
	assert.ErrorIs(t, err, repository.ErrBackendExecution)

	err = repo.SaveCategories(context.Background(), &model.CategoryCollection{ID: "US"})
	assert.ErrorIs(t, err, repository.ErrBackendExecution)
}
