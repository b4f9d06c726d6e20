package handlers

import (
	"TnenntAdmin/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterBlogRoutes(router *gin.RouterGroup, blogController *controllers.BlogController) {
	blogGroup := router.Group("/blogs")
	{
		blogGroup.GET("", blogController.GetBlogs)
		blogGroup.POST("", blogController.CreateBlog)
		blogGroup.DELETE("/:id", blogController.DeleteBlog)
	}
}

func RegisterVideoRoutes(router *gin.RouterGroup, videoController *controllers.VideoController) {
	videoGroup := router.Group("/videos")
	{
		videoGroup.GET("", videoController.GetVideos)
		videoGroup.POST("", videoController.CreateVideo)
		videoGroup.DELETE("/:id", videoController.DeleteVideo)
	}
}

func RegisterPlaylistRoutes(router *gin.RouterGroup, playlistController *controllers.PlaylistController) {
	playlistGroup := router.Group("/playlists")
	{
		playlistGroup.GET("", playlistController.GetPlaylists)
		playlistGroup.POST("", playlistController.CreatePlaylist)
		playlistGroup.PUT("/:id", playlistController.UpdatePlaylist)
		playlistGroup.DELETE("/:id", playlistController.DeletePlaylist)
	}
}
