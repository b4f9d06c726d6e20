package services

import (
	"TnenntAdmin/config/logger"
	"TnenntAdmin/models"
	"TnenntAdmin/utils"
	"context"
	"errors"
	"math"
	"sort"

	"go.uber.org/zap"
)

type StoreFlags struct {
	IsActive  *bool `json:"isActive"`
	IsBlocked *bool `json:"isBlocked"`
	IsPaused  *bool `json:"isPaused"`
}

type StoreService struct {
	Store DocumentStore
	Blobs BlobStore
}

func NewStoreService(store DocumentStore, blobs BlobStore) *StoreService {
	return &StoreService{Store: store, Blobs: blobs}
}

func (s *StoreService) loadStores(ctx context.Context) ([]models.Store, error) {
	docs, err := s.Store.GetAll(ctx, CollectionStores)
	if err != nil {
		return nil, utils.Internal("Failed to fetch stores", err)
	}
	stores, err := decodeDocs(docs, func(st *models.Store, id string) { st.ID = id })
	if err != nil {
		return nil, utils.Internal("Failed to parse stores", err)
	}
	return stores, nil
}

func (s *StoreService) featuredIDs(ctx context.Context) (map[string]bool, []string, error) {
	doc, err := s.Store.Get(ctx, CollectionFeaturedStores, FeaturedStoresDoc)
	if errors.Is(err, ErrDocumentNotFound) {
		return map[string]bool{}, nil, nil
	}
	if err != nil {
		return nil, nil, utils.Internal("Failed to fetch featured stores", err)
	}
	var featured models.FeaturedStores
	if err := doc.DataTo(&featured); err != nil {
		return nil, nil, utils.Internal("Failed to parse featured stores", err)
	}
	set := make(map[string]bool, len(featured.Stores))
	for _, id := range featured.Stores {
		set[id] = true
	}
	return set, featured.Stores, nil
}

func view(st models.Store, featured map[string]bool) models.StoreView {
	return models.StoreView{
		Store:      st,
		Status:     st.Status(),
		IsFeatured: featured[st.ID] || (st.StoreID != "" && featured[st.StoreID]),
	}
}

func (s *StoreService) ListStores(ctx context.Context) ([]models.StoreView, error) {
	stores, err := s.loadStores(ctx)
	if err != nil {
		return nil, err
	}
	featured, _, err := s.featuredIDs(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]models.StoreView, 0, len(stores))
	for _, st := range stores {
		views = append(views, view(st, featured))
	}
	return views, nil
}

func (s *StoreService) GetStore(ctx context.Context, id string) (*models.StoreView, error) {
	doc, err := getDocument(ctx, s.Store, CollectionStores, id, "Store")
	if err != nil {
		return nil, err
	}
	var st models.Store
	if err := doc.DataTo(&st); err != nil {
		return nil, utils.Internal("Failed to parse store", err)
	}
	st.ID = doc.ID

	featured, _, err := s.featuredIDs(ctx)
	if err != nil {
		return nil, err
	}
	v := view(st, featured)
	return &v, nil
}

// UpdateFlags merges whichever of the three flags are set.
func (s *StoreService) UpdateFlags(ctx context.Context, id string, flags StoreFlags) (*models.StoreView, error) {
	update := map[string]interface{}{}
	if flags.IsActive != nil {
		update["isActive"] = *flags.IsActive
	}
	if flags.IsBlocked != nil {
		update["isBlocked"] = *flags.IsBlocked
	}
	if flags.IsPaused != nil {
		update["isPaused"] = *flags.IsPaused
	}
	if len(update) == 0 {
		return nil, utils.BadRequest("At least one of isActive, isBlocked or isPaused is required")
	}
	if err := ensureExists(ctx, s.Store, CollectionStores, id, "Store"); err != nil {
		return nil, err
	}
	if err := s.Store.Merge(ctx, CollectionStores, id, update); err != nil {
		return nil, utils.Internal("Failed to update store", err)
	}
	return s.GetStore(ctx, id)
}

// UpdateLogos uploads a new logo and/or banner and stores their URLs.
func (s *StoreService) UpdateLogos(ctx context.Context, id string, logo, banner *FileUpload) (*models.StoreView, error) {
	if logo == nil && banner == nil {
		return nil, utils.BadRequest("A logo or banner file is required")
	}
	if err := ensureExists(ctx, s.Store, CollectionStores, id, "Store"); err != nil {
		return nil, err
	}

	update := map[string]interface{}{}
	if logo != nil {
		url, err := s.Blobs.Upload(ctx, "Stores", *logo)
		if err != nil {
			return nil, utils.Internal("Failed to upload logo", err)
		}
		update["logoUrl"] = url
	}
	if banner != nil {
		url, err := s.Blobs.Upload(ctx, "Stores", *banner)
		if err != nil {
			return nil, utils.Internal("Failed to upload banner", err)
		}
		update["bannerUrl"] = url
	}
	if err := s.Store.Merge(ctx, CollectionStores, id, update); err != nil {
		return nil, utils.Internal("Failed to update store", err)
	}
	return s.GetStore(ctx, id)
}

// ActivateUnpaused marks every store that is not paused as active and
// returns how many were touched.
func (s *StoreService) ActivateUnpaused(ctx context.Context) (int, error) {
	docs, err := s.Store.Query(ctx, CollectionStores, Query{
		Conditions: []Condition{Where("isPaused", "==", false)},
	})
	if err != nil {
		return 0, utils.Internal("Failed to activate stores. Please try again later.", err)
	}
	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	if err := s.Store.BatchMerge(ctx, CollectionStores, ids, map[string]interface{}{"isActive": true}); err != nil {
		return 0, utils.Internal("Failed to activate stores. Please try again later.", err)
	}
	logger.L().Info("stores activated", zap.Int("count", len(ids)))
	return len(ids), nil
}

// FeaturedStores returns the featured stores in their curated order. Ids
// without a store document are skipped.
func (s *StoreService) FeaturedStores(ctx context.Context) ([]models.StoreView, error) {
	set, ids, err := s.featuredIDs(ctx)
	if err != nil {
		return nil, err
	}
	stores, err := s.loadStores(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Store, len(stores))
	for _, st := range stores {
		byID[st.ID] = st
		if st.StoreID != "" {
			byID[st.StoreID] = st
		}
	}

	views := make([]models.StoreView, 0, len(ids))
	for _, id := range ids {
		if st, ok := byID[id]; ok {
			views = append(views, view(st, set))
		}
	}
	return views, nil
}

func (s *StoreService) AddFeatured(ctx context.Context, storeID string) error {
	if err := ensureExists(ctx, s.Store, CollectionStores, storeID, "Store"); err != nil {
		return err
	}
	if err := s.Store.ArrayUnion(ctx, CollectionFeaturedStores, FeaturedStoresDoc, "stores", storeID); err != nil {
		return utils.Internal("Failed to add featured store", err)
	}
	return nil
}

func (s *StoreService) RemoveFeatured(ctx context.Context, storeID string) error {
	if err := s.Store.ArrayRemove(ctx, CollectionFeaturedStores, FeaturedStoresDoc, "stores", storeID); err != nil {
		return utils.Internal("Failed to remove featured store", err)
	}
	return nil
}

// Nearby returns stores within radiusKm of the point, closest first.
func (s *StoreService) Nearby(ctx context.Context, lat, lon, radiusKm float64) ([]models.StoreView, error) {
	if !utils.ValidCoordinate(lat, lon) {
		return nil, utils.BadRequest("Invalid latitude or longitude")
	}
	if radiusKm <= 0 || math.IsNaN(radiusKm) {
		return nil, utils.BadRequest("radius must be positive")
	}
	stores, err := s.loadStores(ctx)
	if err != nil {
		return nil, err
	}
	featured, _, err := s.featuredIDs(ctx)
	if err != nil {
		return nil, err
	}

	var near []models.StoreView
	for _, st := range stores {
		loc := st.StoreLocation
		if loc == nil || !utils.ValidCoordinate(loc.Lat, loc.Long) {
			continue
		}
		d := utils.Haversine(lat, lon, loc.Lat, loc.Long)
		if d > radiusKm {
			continue
		}
		d = math.Round(d*100) / 100
		v := view(st, featured)
		v.DistanceKm = &d
		near = append(near, v)
	}
	sort.SliceStable(near, func(i, j int) bool {
		return *near[i].DistanceKm < *near[j].DistanceKm
	})
	return near, nil
}
