package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"tube-catalog/domain/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *CategoryClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewCategoryClient(context.Background(), "test-key",
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return client
}

func TestCategoryClient_GetCategories(t *testing.T) {
	var gotPath, gotRegion, gotPart string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRegion = r.URL.Query().Get("regionCode")
		gotPart = r.URL.Query().Get("part")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": [
			{"id": "1", "snippet": {"title": "Film & Animation", "assignable": true, "channelId": "UCBR8"}},
			{"id": "18", "snippet": {"title": "Short Movies", "assignable": false, "channelId": "UCBR8"}}
		]}`))
	})

	categories, err := client.GetCategories(context.Background(), "US")
	require.NoError(t, err)

	assert.Equal(t, "/videoCategories", gotPath)
	assert.Equal(t, "US", gotRegion)
	assert.Equal(t, "snippet", gotPart)
	assert.Equal(t, []model.VideoCategory{
		{ID: "1", Title: "Film & Animation", Assignable: true, ChannelID: "UCBR8"},
		{ID: "18", Title: "Short Movies", Assignable: false, ChannelID: "UCBR8"},
	}, categories)
}

func TestCategoryClient_Error(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"code": 403, "message": "quota exceeded"}}`, http.StatusForbidden)
	})

	_, err := client.GetCategories(context.Background(), "US")
	assert.Error(t, err)
}

func TestNewCategoryClient_RequiresKey(t *testing.T) {
	_, err := NewCategoryClient(context.Background(), "")
	assert.Error(t, err)
}
