package http

import (
	"net/http"
	"strconv"
	"strings"

	"tube-catalog/domain/model"
	"tube-catalog/infrastructure/logger"
	"tube-catalog/usecase"

	"github.com/gin-gonic/gin"
)

// ICatalogHandler defines the catalog HTTP handlers
type ICatalogHandler interface {
	GetChannel(ctx *gin.Context)
	GetChannels(ctx *gin.Context)
	GetChannelPlaylists(ctx *gin.Context)
	GetChannelVideos(ctx *gin.Context)

	GetPlaylist(ctx *gin.Context)
	GetPlaylists(ctx *gin.Context)
	GetPlaylistVideos(ctx *gin.Context)

	GetVideo(ctx *gin.Context)
	GetVideos(ctx *gin.Context)
	GetRelatedVideos(ctx *gin.Context)
	GetPopularVideos(ctx *gin.Context)

	Search(ctx *gin.Context)
	SearchVideos(ctx *gin.Context)
	SearchPlaylists(ctx *gin.Context)
	SearchChannels(ctx *gin.Context)

	GetCategories(ctx *gin.Context)
}

// CatalogHandler implements ICatalogHandler on top of the catalog use case
type CatalogHandler struct {
	catalogUseCase usecase.ICatalogUseCase
}

// NewCatalogHandler creates a new catalog handler instance
func NewCatalogHandler(catalogUseCase usecase.ICatalogUseCase) ICatalogHandler {
	return &CatalogHandler{catalogUseCase: catalogUseCase}
}

// splitList reads a comma separated query parameter, dropping blanks.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func fields(ctx *gin.Context) []string {
	return splitList(ctx.Query("fields"))
}

func pageRequest(ctx *gin.Context) model.PageRequest {
	page := model.PageRequest{
		NextPageToken: ctx.Query("nextPageToken"),
		Fields:        fields(ctx),
	}
	if raw := ctx.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			page.Limit = n
		}
	}
	return page
}

func noSnippet(ctx *gin.Context) bool {
	v, _ := strconv.ParseBool(ctx.Query("noSnippet"))
	return v
}

func respondError(ctx *gin.Context, message string, err error) {
	logger.GetLogger().
		WithField("error", err).
		WithField("path", ctx.FullPath()).
		Error(message)
	ctx.JSON(http.StatusInternalServerError, gin.H{
		"error":   message,
		"message": err.Error(),
	})
}

func respondBadRequest(ctx *gin.Context, message string, err error) {
	body := gin.H{"error": message}
	if err != nil {
		body["message"] = err.Error()
	}
	ctx.JSON(http.StatusBadRequest, body)
}

func respondEntity[T any](ctx *gin.Context, entity *T, err error, name string) {
	if err != nil {
		respondError(ctx, "Failed to get "+name, err)
		return
	}
	if entity == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": strings.ToUpper(name[:1]) + name[1:] + " not found"})
		return
	}
	ctx.JSON(http.StatusOK, entity)
}

func respondList[T any](ctx *gin.Context, list T, err error, message string) {
	if err != nil {
		respondError(ctx, message, err)
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// GetChannel handles GET /api/channels/:id
func (h *CatalogHandler) GetChannel(ctx *gin.Context) {
	channel, err := h.catalogUseCase.GetChannel(ctx.Request.Context(), ctx.Param("id"), fields(ctx))
	respondEntity(ctx, channel, err, "channel")
}

// GetChannels handles GET /api/channels?ids=a,b
func (h *CatalogHandler) GetChannels(ctx *gin.Context) {
	ids := splitList(ctx.Query("ids"))
	if len(ids) == 0 {
		respondBadRequest(ctx, "ids is required", nil)
		return
	}
	channels, err := h.catalogUseCase.GetChannels(ctx.Request.Context(), ids, fields(ctx))
	respondList(ctx, channels, err, "Failed to get channels")
}

// GetChannelPlaylists handles GET /api/channels/:id/playlists
func (h *CatalogHandler) GetChannelPlaylists(ctx *gin.Context) {
	res, err := h.catalogUseCase.GetChannelPlaylists(ctx.Request.Context(), ctx.Param("id"), pageRequest(ctx))
	respondList(ctx, res, err, "Failed to get channel playlists")
}

// GetChannelVideos handles GET /api/channels/:id/videos
func (h *CatalogHandler) GetChannelVideos(ctx *gin.Context) {
	res, err := h.catalogUseCase.GetChannelVideos(ctx.Request.Context(), ctx.Param("id"), pageRequest(ctx))
	respondList(ctx, res, err, "Failed to get channel videos")
}

// GetPlaylist handles GET /api/playlists/:id
func (h *CatalogHandler) GetPlaylist(ctx *gin.Context) {
	playlist, err := h.catalogUseCase.GetPlaylist(ctx.Request.Context(), ctx.Param("id"), fields(ctx))
	respondEntity(ctx, playlist, err, "playlist")
}

// GetPlaylists handles GET /api/playlists?ids=a,b
func (h *CatalogHandler) GetPlaylists(ctx *gin.Context) {
	ids := splitList(ctx.Query("ids"))
	if len(ids) == 0 {
		respondBadRequest(ctx, "ids is required", nil)
		return
	}
	playlists, err := h.catalogUseCase.GetPlaylists(ctx.Request.Context(), ids, fields(ctx))
	respondList(ctx, playlists, err, "Failed to get playlists")
}

// GetPlaylistVideos handles GET /api/playlists/:id/videos
func (h *CatalogHandler) GetPlaylistVideos(ctx *gin.Context) {
	res, err := h.catalogUseCase.GetPlaylistVideos(ctx.Request.Context(), ctx.Param("id"), pageRequest(ctx))
	respondList(ctx, res, err, "Failed to get playlist videos")
}

// GetVideo handles GET /api/videos/:id
func (h *CatalogHandler) GetVideo(ctx *gin.Context) {
	video, err := h.catalogUseCase.GetVideo(ctx.Request.Context(), ctx.Param("id"), fields(ctx), noSnippet(ctx))
	respondEntity(ctx, video, err, "video")
}

// GetVideos handles GET /api/videos?ids=a,b
func (h *CatalogHandler) GetVideos(ctx *gin.Context) {
	ids := splitList(ctx.Query("ids"))
	if len(ids) == 0 {
		respondBadRequest(ctx, "ids is required", nil)
		return
	}
	videos, err := h.catalogUseCase.GetVideos(ctx.Request.Context(), ids, fields(ctx), noSnippet(ctx))
	respondList(ctx, videos, err, "Failed to get videos")
}

// GetRelatedVideos handles GET /api/videos/:id/related
func (h *CatalogHandler) GetRelatedVideos(ctx *gin.Context) {
	res, err := h.catalogUseCase.GetRelatedVideos(ctx.Request.Context(), ctx.Param("id"), pageRequest(ctx))
	respondList(ctx, res, err, "Failed to get related videos")
}

// GetPopularVideos handles GET /api/videos/popular?regionCode=&categoryId=
func (h *CatalogHandler) GetPopularVideos(ctx *gin.Context) {
	regionCode := ctx.Query("regionCode")
	categoryID := ctx.Query("categoryId")
	page := pageRequest(ctx)

	var (
		res *model.ListResult[model.Video]
		err error
	)
	switch {
	case regionCode != "" && categoryID == "":
		res, err = h.catalogUseCase.GetPopularVideosByRegion(ctx.Request.Context(), regionCode, page)
	case categoryID != "" && regionCode == "":
		res, err = h.catalogUseCase.GetPopularVideosByCategory(ctx.Request.Context(), categoryID, page)
	default:
		res, err = h.catalogUseCase.GetPopularVideos(ctx.Request.Context(), regionCode, categoryID, page)
	}
	respondList(ctx, res, err, "Failed to get popular videos")
}

// Search handles GET /api/search
func (h *CatalogHandler) Search(ctx *gin.Context) {
	var sm model.ItemSM
	if err := ctx.ShouldBindQuery(&sm); err != nil {
		respondBadRequest(ctx, "Invalid search criteria", err)
		return
	}
	res, err := h.catalogUseCase.Search(ctx.Request.Context(), sm, pageRequest(ctx))
	respondList(ctx, res, err, "Failed to search")
}

// SearchVideos handles GET /api/search/videos
func (h *CatalogHandler) SearchVideos(ctx *gin.Context) {
	var sm model.ItemSM
	if err := ctx.ShouldBindQuery(&sm); err != nil {
		respondBadRequest(ctx, "Invalid search criteria", err)
		return
	}
	res, err := h.catalogUseCase.SearchVideos(ctx.Request.Context(), sm, pageRequest(ctx))
	respondList(ctx, res, err, "Failed to search videos")
}

// SearchPlaylists handles GET /api/search/playlists
func (h *CatalogHandler) SearchPlaylists(ctx *gin.Context) {
	var sm model.PlaylistSM
	if err := ctx.ShouldBindQuery(&sm); err != nil {
		respondBadRequest(ctx, "Invalid search criteria", err)
		return
	}
	res, err := h.catalogUseCase.SearchPlaylists(ctx.Request.Context(), sm, pageRequest(ctx))
	respondList(ctx, res, err, "Failed to search playlists")
}

// SearchChannels handles GET /api/search/channels
func (h *CatalogHandler) SearchChannels(ctx *gin.Context) {
	var sm model.ChannelSM
	if err := ctx.ShouldBindQuery(&sm); err != nil {
		respondBadRequest(ctx, "Invalid search criteria", err)
		return
	}
	res, err := h.catalogUseCase.SearchChannels(ctx.Request.Context(), sm, pageRequest(ctx))
	respondList(ctx, res, err, "Failed to search channels")
}

// GetCategories handles GET /api/categories?regionCode=US
func (h *CatalogHandler) GetCategories(ctx *gin.Context) {
	regionCode := strings.ToUpper(strings.TrimSpace(ctx.Query("regionCode")))
	if regionCode == "" {
		respondBadRequest(ctx, "regionCode is required", nil)
		return
	}
	categories, err := h.catalogUseCase.GetCategories(ctx.Request.Context(), regionCode)
	respondList(ctx, categories, err, "Failed to get categories")
}
