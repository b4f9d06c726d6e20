package services

import (
	"TnenntAdmin/models"
	"TnenntAdmin/utils"
	"context"
	"sort"
)

type MiddlemanService struct {
	Store DocumentStore
}

func NewMiddlemanService(store DocumentStore) *MiddlemanService {
	return &MiddlemanService{Store: store}
}

// ListMiddlemen returns delivery partners, available ones first.
func (s *MiddlemanService) ListMiddlemen(ctx context.Context) ([]models.Middleman, error) {
	docs, err := s.Store.GetAll(ctx, CollectionMiddlemen)
	if err != nil {
		return nil, utils.Internal("Failed to fetch middlemen", err)
	}
	middlemen, err := decodeDocs(docs, func(m *models.Middleman, id string) { m.ID = id })
	if err != nil {
		return nil, utils.Internal("Failed to parse middlemen", err)
	}
	sort.SliceStable(middlemen, func(i, j int) bool {
		return middlemen[i].IsAvailable && !middlemen[j].IsAvailable
	})
	return middlemen, nil
}

func (s *MiddlemanService) SetAvailability(ctx context.Context, id string, available bool) error {
	if err := ensureExists(ctx, s.Store, CollectionMiddlemen, id, "Middleman"); err != nil {
		return err
	}
	if err := s.Store.Merge(ctx, CollectionMiddlemen, id, map[string]interface{}{"isAvailable": available}); err != nil {
		return utils.Internal("Failed to update middleman", err)
	}
	return nil
}
