package server

import (
	"net/http"
	"time"

	httpHandler "tube-catalog/interfaces/http"
	"tube-catalog/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func InitiateRouter(catalogHandler httpHandler.ICatalogHandler, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	channels := api.Group("/channels")
	{
		channels.GET("", catalogHandler.GetChannels)
		channels.GET("/:id", catalogHandler.GetChannel)
		channels.GET("/:id/playlists", catalogHandler.GetChannelPlaylists)
		channels.GET("/:id/videos", catalogHandler.GetChannelVideos)
	}

	playlists := api.Group("/playlists")
	{
		playlists.GET("", catalogHandler.GetPlaylists)
		playlists.GET("/:id", catalogHandler.GetPlaylist)
		playlists.GET("/:id/videos", catalogHandler.GetPlaylistVideos)
	}

	videos := api.Group("/videos")
	{
		videos.GET("", catalogHandler.GetVideos)
		videos.GET("/popular", catalogHandler.GetPopularVideos)
		videos.GET("/:id", catalogHandler.GetVideo)
		videos.GET("/:id/related", catalogHandler.GetRelatedVideos)
	}

	search := api.Group("/search")
	{
		search.GET("", catalogHandler.Search)
		search.GET("/videos", catalogHandler.SearchVideos)
		search.GET("/playlists", catalogHandler.SearchPlaylists)
		search.GET("/channels", catalogHandler.SearchChannels)
	}

	api.GET("/categories", catalogHandler.GetCategories)

	return router
}
