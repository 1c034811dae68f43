package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tube-catalog/domain/model"
	"tube-catalog/domain/query"
)

// Mock implementations
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetChannels(ctx context.Context, ids []string, fields []string) ([]model.Channel, error) {
	args := m.Called(ctx, ids, fields)
	return args.Get(0).([]model.Channel), args.Error(1)
}

func (m *MockCatalog) GetPlaylists(ctx context.Context, ids []string, fields []string) ([]model.Playlist, error) {
	args := m.Called(ctx, ids, fields)
	return args.Get(0).([]model.Playlist), args.Error(1)
}

func (m *MockCatalog) GetVideos(ctx context.Context, ids []string, fields []string, noSnippet bool) ([]model.Video, error) {
	args := m.Called(ctx, ids, fields, noSnippet)
	return args.Get(0).([]model.Video), args.Error(1)
}

func (m *MockCatalog) GetPlaylistVideos(ctx context.Context, ids []string, fields []string) ([]model.PlaylistVideo, error) {
	args := m.Called(ctx, ids, fields)
	return args.Get(0).([]model.PlaylistVideo), args.Error(1)
}

func (m *MockCatalog) FindChannelByCustomURL(ctx context.Context, customURL string, fields []string) (*model.Channel, error) {
	args := m.Called(ctx, customURL, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Channel), args.Error(1)
}

func (m *MockCatalog) GetPlaylistVideoIDs(ctx context.Context, playlistID string) ([]string, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalog) ListChannels(ctx context.Context, req query.Request) (*model.ListResult[model.Channel], error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ListResult[model.Channel]), args.Error(1)
}

func (m *MockCatalog) ListPlaylists(ctx context.Context, req query.Request) (*model.ListResult[model.Playlist], error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ListResult[model.Playlist]), args.Error(1)
}

func (m *MockCatalog) ListVideos(ctx context.Context, req query.Request) (*model.ListResult[model.Video], error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ListResult[model.Video]), args.Error(1)
}

func (m *MockCatalog) ListPlaylistVideos(ctx context.Context, req query.Request) (*model.ListResult[model.PlaylistVideo], error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ListResult[model.PlaylistVideo]), args.Error(1)
}

func (m *MockCatalog) GetCategories(ctx context.Context, regionCode string) (*model.CategoryCollection, error) {
	args := m.Called(ctx, regionCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CategoryCollection), args.Error(1)
}

func (m *MockCatalog) SaveCategories(ctx context.Context, collection *model.CategoryCollection) error {
	args := m.Called(ctx, collection)
	return args.Error(0)
}

type MockCategoryClient struct {
	mock.Mock
}

func (m *MockCategoryClient) GetCategories(ctx context.Context, regionCode string) ([]model.VideoCategory, error) {
	args := m.Called(ctx, regionCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VideoCategory), args.Error(1)
}
