package services

import (
	"TnenntAdmin/models"
	"TnenntAdmin/utils"
	"context"
)

type PlaylistUpdate struct {
	ProductIDs *[]string
	Text       *string
	Image      *FileUpload
}

type PlaylistService struct {
	Store DocumentStore
	Blobs BlobStore
}

func NewPlaylistService(store DocumentStore, blobs BlobStore) *PlaylistService {
	return &PlaylistService{Store: store, Blobs: blobs}
}

func (s *PlaylistService) ListPlaylists(ctx context.Context) ([]models.FoodPlaylist, error) {
	docs, err := s.Store.GetAll(ctx, CollectionPlaylists)
	if err != nil {
		return nil, utils.Internal("Failed to fetch playlists", err)
	}
	lists, err := decodeDocs(docs, func(p *models.FoodPlaylist, id string) { p.ID = id })
	if err != nil {
		return nil, utils.Internal("Failed to parse playlists", err)
	}
	return lists, nil
}

func (s *PlaylistService) GetPlaylist(ctx context.Context, id string) (*models.FoodPlaylist, error) {
	doc, err := getDocument(ctx, s.Store, CollectionPlaylists, id, "Playlist")
	if err != nil {
		return nil, err
	}
	var p models.FoodPlaylist
	if err := doc.DataTo(&p); err != nil {
		return nil, utils.Internal("Failed to parse playlist", err)
	}
	p.ID = doc.ID
	return &p, nil
}

func (s *PlaylistService) CreatePlaylist(ctx context.Context, image *FileUpload, productIDs []string, text string) (*models.FoodPlaylist, error) {
	if image == nil {
		return nil, utils.BadRequest("Playlist image is required")
	}
	url, err := s.Blobs.Upload(ctx, "FoodPlaylist", *image)
	if err != nil {
		return nil, utils.Internal("Failed to upload playlist image", err)
	}

	p := models.FoodPlaylist{Image: url, ProductIDs: uniqueNonEmpty(productIDs), Text: text}
	id, err := s.Store.Add(ctx, CollectionPlaylists, p)
	if err != nil {
		return nil, utils.Internal("Failed to create playlist", err)
	}
	p.ID = id
	return &p, nil
}

func (s *PlaylistService) UpdatePlaylist(ctx context.Context, id string, in PlaylistUpdate) (*models.FoodPlaylist, error) {
	if in.ProductIDs == nil && in.Text == nil && in.Image == nil {
		return nil, utils.BadRequest("Nothing to update")
	}
	if err := ensureExists(ctx, s.Store, CollectionPlaylists, id, "Playlist"); err != nil {
		return nil, err
	}

	update := map[string]interface{}{}
	if in.ProductIDs != nil {
		update["productIds"] = uniqueNonEmpty(*in.ProductIDs)
	}
	if in.Text != nil {
		update["text"] = *in.Text
	}
	if in.Image != nil {
		url, err := s.Blobs.Upload(ctx, "FoodPlaylist", *in.Image)
		if err != nil {
			return nil, utils.Internal("Failed to upload playlist image", err)
		}
		update["image"] = url
	}
	if err := s.Store.Merge(ctx, CollectionPlaylists, id, update); err != nil {
		return nil, utils.Internal("Failed to update playlist", err)
	}
	return s.GetPlaylist(ctx, id)
}

func (s *PlaylistService) DeletePlaylist(ctx context.Context, id string) error {
	if err := ensureExists(ctx, s.Store, CollectionPlaylists, id, "Playlist"); err != nil {
		return err
	}
	if err := s.Store.Delete(ctx, CollectionPlaylists, id); err != nil {
		return utils.Internal("Failed to delete playlist", err)
	}
	return nil
}
