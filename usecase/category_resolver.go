package usecase

import (
	"context"
	"fmt"

	"tube-catalog/domain/model"
	"tube-catalog/domain/repository"
	"tube-catalog/infrastructure/logger"
	"tube-catalog/infrastructure/metrics"

	"golang.org/x/sync/singleflight"
)

// CategoryResolver serves per-region categories cache-aside: the local store is
// read first and only a miss reaches the external source. Concurrent misses for
// the same region share one fetch and one write.
type CategoryResolver struct {
	store  repository.ICategoryStore
	client repository.ICategoryClient
	group  singleflight.Group
}

func NewCategoryResolver(store repository.ICategoryStore, client repository.ICategoryClient) *CategoryResolver {
	return &CategoryResolver{store: store, client: client}
}

// Resolve returns the assignable categories of regionCode.
func (r *CategoryResolver) Resolve(ctx context.Context, regionCode string) ([]model.VideoCategory, error) {
	cached, err := r.store.GetCategories(ctx, regionCode)
	if err != nil {
		metrics.RecordCategoryLookup("error")
		return nil, err
	}
	if cached != nil {
		metrics.RecordCategoryLookup("hit")
		logger.GetLogger().WithField("regionCode", regionCode).Debug("Category cache hit")
		return cached.Data, nil
	}

	logger.GetLogger().WithField("regionCode", regionCode).Debug("Category cache miss")
	// The flight outlives any single caller; each caller still stops waiting
	// when its own context ends.
	flight := context.WithoutCancel(ctx)
	ch := r.group.DoChan(regionCode, func() (interface{}, error) {
		return r.populate(flight, regionCode)
	})
	select {
	case <-ctx.Done():
		metrics.RecordCategoryLookup("error")
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			metrics.RecordCategoryLookup("error")
			return nil, res.Err
		}
		metrics.RecordCategoryLookup("miss")
		return res.Val.([]model.VideoCategory), nil
	}
}

// populate fetches, keeps the assignable records and overwrites the stored
// collection. Nothing is written when the fetch fails. The store is read again
// first since a flight that just finished may already have filled it.
func (r *CategoryResolver) populate(ctx context.Context, regionCode string) ([]model.VideoCategory, error) {
	if cached, err := r.store.GetCategories(ctx, regionCode); err == nil && cached != nil {
		return cached.Data, nil
	}
	if r.client == nil {
		return nil, fmt.Errorf("%w: no category source configured", repository.ErrExternalSource)
	}
	fetched, err := r.client.GetCategories(ctx, regionCode)
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("regionCode", regionCode).Error("Error while fetching categories from source")
		return nil, fmt.Errorf("%w: %w", repository.ErrExternalSource, err)
	}

	assignable := make([]model.VideoCategory, 0, len(fetched))
	for _, c := range fetched {
		if c.Assignable {
			assignable = append(assignable, c)
		}
	}
	if err := r.store.SaveCategories(ctx, &model.CategoryCollection{ID: regionCode, Data: assignable}); err != nil {
		return nil, err
	}
	return assignable, nil
}
