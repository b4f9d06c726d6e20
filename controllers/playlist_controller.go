package controllers

import (
	"TnenntAdmin/services"
	"TnenntAdmin/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PlaylistController struct {
	PlaylistService *services.PlaylistService
}

func NewPlaylistController(playlistService *services.PlaylistService) *PlaylistController {
	return &PlaylistController{PlaylistService: playlistService}
}

// optionalIDs reads repeated "productIds" form values. It tells an absent
// field apart from an empty list.
func optionalIDs(c *gin.Context) *[]string {
	ids, ok := c.GetPostFormArray("productIds")
	if !ok {
		return nil
	}
	return &ids
}

func (h *PlaylistController) GetPlaylists(c *gin.Context) {
	lists, err := h.PlaylistService.ListPlaylists(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Playlists fetched successfully", lists)
}

func (h *PlaylistController) CreatePlaylist(c *gin.Context) {
	image, err := formFile(c, "image")
	if err != nil {
		c.Error(err)
		return
	}
	list, err := h.PlaylistService.CreatePlaylist(c.Request.Context(), image,
		c.PostFormArray("productIds"), c.PostForm("text"))
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Playlist created successfully", list)
}

func (h *PlaylistController) UpdatePlaylist(c *gin.Context) {
	image, err := formFile(c, "image")
	if err != nil {
		c.Error(err)
		return
	}
	list, err := h.PlaylistService.UpdatePlaylist(c.Request.Context(), c.Param("id"), services.PlaylistUpdate{
		ProductIDs: optionalIDs(c),
		Text:       optionalForm(c, "text"),
		Image:      image,
	})
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Playlist updated successfully", list)
}

func (h *PlaylistController) DeletePlaylist(c *gin.Context) {
	if err := h.PlaylistService.DeletePlaylist(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Playlist deleted successfully", gin.H{"id": c.Param("id")})
}
