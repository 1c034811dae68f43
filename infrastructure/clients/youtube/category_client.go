package youtube

import (
	"context"
	"fmt"

	"tube-catalog/domain/model"
	"tube-catalog/domain/repository"
	"tube-catalog/infrastructure/logger"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// CategoryClient reads video categories from the YouTube Data API.
type CategoryClient struct {
	service *youtube.Service
}

// NewCategoryClient creates a read-only client authenticated with an API key.
// Extra options are appended, which lets callers point it at another endpoint.
func NewCategoryClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (*CategoryClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube api key is not configured")
	}
	service, err := youtube.NewService(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service with API key: %w", err)
	}
	return &CategoryClient{service: service}, nil
}

var _ repository.ICategoryClient = (*CategoryClient)(nil)

// GetCategories returns every category the API reports for regionCode,
// assignable or not.
func (c *CategoryClient) GetCategories(ctx context.Context, regionCode string) ([]model.VideoCategory, error) {
	resp, err := c.service.VideoCategories.List([]string{"snippet"}).RegionCode(regionCode).Context(ctx).Do()
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("regionCode", regionCode).Error("Error while fetching video categories")
		return nil, fmt.Errorf("list video categories: %w", err)
	}
	categories := make([]model.VideoCategory, 0, len(resp.Items))
	for _, item := range resp.Items {
		category := model.VideoCategory{ID: item.Id}
		if item.Snippet != nil {
			category.Title = item.Snippet.Title
			category.Assignable = item.Snippet.Assignable
			category.ChannelID = item.Snippet.ChannelId
		}
		categories = append(categories, category)
	}
	return categories, nil
}
