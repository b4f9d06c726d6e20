package services

import (
	"TnenntAdmin/models"
	"TnenntAdmin/utils"
	"context"
	"sort"
	"strings"
)

type CuisineProductInput struct {
	Title string
	Desc  string
	Image *FileUpload
}

type CuisineInput struct {
	Heading    string
	SubHeading string
	About      string
	Desc       string
	Image      *FileUpload
	Banner     *FileUpload
	Products   []CuisineProductInput
}

type CuisineService struct {
	Store DocumentStore
	Blobs BlobStore
}

func NewCuisineService(store DocumentStore, blobs BlobStore) *CuisineService {
	return &CuisineService{Store: store, Blobs: blobs}
}

func (s *CuisineService) ListCuisines(ctx context.Context) ([]models.Cuisine, error) {
	docs, err := s.Store.GetAll(ctx, CollectionCuisines)
	if err != nil {
		return nil, utils.Internal("Failed to fetch cuisines", err)
	}
	cuisines, err := decodeDocs(docs, func(c *models.Cuisine, id string) { c.ID = id })
	if err != nil {
		return nil, utils.Internal("Failed to parse cuisines", err)
	}
	sort.SliceStable(cuisines, func(i, j int) bool {
		return cuisines[i].LowerHeading < cuisines[j].LowerHeading
	})
	return cuisines, nil
}

// CreateCuisine uploads the cover images and every product image. Products
// submitted without an image are dropped.
func (s *CuisineService) CreateCuisine(ctx context.Context, in CuisineInput) (*models.Cuisine, error) {
	if strings.TrimSpace(in.Heading) == "" {
		return nil, utils.BadRequest("Cuisine heading is required")
	}
	if in.Image == nil || in.Banner == nil {
		return nil, utils.BadRequest("Cuisine image and banner are required")
	}

	products := make([]models.CuisineProduct, 0, len(in.Products))
	for _, p := range in.Products {
		if p.Image == nil {
			continue
		}
		url, err := s.Blobs.Upload(ctx, "Cuisine", *p.Image)
		if err != nil {
			return nil, utils.Internal("Failed to create cuisine", err)
		}
		products = append(products, models.CuisineProduct{Title: p.Title, Desc: p.Desc, ImageURL: url})
	}

	image, err := s.Blobs.Upload(ctx, "Cuisine", *in.Image)
	if err != nil {
		return nil, utils.Internal("Failed to create cuisine", err)
	}
	banner, err := s.Blobs.Upload(ctx, "Cuisine", *in.Banner)
	if err != nil {
		return nil, utils.Internal("Failed to create cuisine", err)
	}

	c := models.Cuisine{
		Heading:      in.Heading,
		LowerHeading: utils.ToLowerNoSpaces(in.Heading),
		SubHeading:   in.SubHeading,
		About:        in.About,
		Desc:         in.Desc,
		Image:        image,
		Banner:       banner,
		Products:     products,
	}
	id, err := s.Store.Add(ctx, CollectionCuisines, c)
	if err != nil {
		return nil, utils.Internal("Failed to create cuisine", err)
	}
	c.ID = id
	return &c, nil
}

func (s *CuisineService) DeleteCuisine(ctx context.Context, id string) error {
	if err := ensureExists(ctx, s.Store, CollectionCuisines, id, "Cuisine"); err != nil {
		return err
	}
	if err := s.Store.Delete(ctx, CollectionCuisines, id); err != nil {
		return utils.Internal("Failed to delete cuisine", err)
	}
	return nil
}
