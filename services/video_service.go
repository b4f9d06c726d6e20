package services

import (
	"TnenntAdmin/models"
	"TnenntAdmin/utils"
	"context"
	"net/url"
)

type VideoService struct {
	Store DocumentStore
	Blobs BlobStore
}

func NewVideoService(store DocumentStore, blobs BlobStore) *VideoService {
	return &VideoService{Store: store, Blobs: blobs}
}

func (s *VideoService) ListVideos(ctx context.Context) ([]models.Video, error) {
	docs, err := s.Store.GetAll(ctx, CollectionVideos)
	if err != nil {
		return nil, utils.Internal("Failed to fetch videos", err)
	}
	videos, err := decodeDocs(docs, func(v *models.Video, id string) { v.ID = id })
	if err != nil {
		return nil, utils.Internal("Failed to parse videos", err)
	}
	return videos, nil
}

func (s *VideoService) CreateVideo(ctx context.Context, videoURL string, thumbnail *FileUpload) (*models.Video, error) {
	u, err := url.Parse(videoURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, utils.BadRequest("videoUrl must be an absolute http(s) URL")
	}
	if thumbnail == nil {
		return nil, utils.BadRequest("Video thumbnail is required")
	}

	imageURL, err := s.Blobs.Upload(ctx, "Video", *thumbnail)
	if err != nil {
		return nil, utils.Internal("Failed to upload video thumbnail", err)
	}
	v := models.Video{ImageURL: imageURL, VideoURL: videoURL}
	id, err := s.Store.Add(ctx, CollectionVideos, v)
	if err != nil {
		return nil, utils.Internal("Failed to create video", err)
	}
	v.ID = id
	return &v, nil
}

func (s *VideoService) DeleteVideo(ctx context.Context, id string) error {
	if err := ensureExists(ctx, s.Store, CollectionVideos, id, "Video"); err != nil {
		return err
	}
	if err := s.Store.Delete(ctx, CollectionVideos, id); err != nil {
		return utils.Internal("Failed to delete video", err)
	}
	return nil
}
