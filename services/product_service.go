package services

import (
	"TnenntAdmin/models"
	"TnenntAdmin/utils"
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ProductInput struct {
	Name            string                             `json:"name"`
	Cuisine         string                             `json:"cuisine"`
	ProductCategory string                             `json:"productCategory"`
	StoreCategory   string                             `json:"storeCategory"`
	StoreID         string                             `json:"storeId"`
	Type            string                             `json:"type"`
	Variations      map[string]models.ProductVariation `json:"variations"`
}

// ProductUpdate holds the editable fields. Nil or empty means unchanged.
type ProductUpdate struct {
	Name       *string                            `json:"name"`
	Cuisine    *string                            `json:"cuisine"`
	Type       *string                            `json:"type"`
	Variations map[string]models.ProductVariation `json:"variations"`
}

type ProductService struct {
	Store DocumentStore
	Blobs BlobStore
	Now   func() time.Time
}

func NewProductService(store DocumentStore, blobs BlobStore) *ProductService {
	return &ProductService{Store: store, Blobs: blobs, Now: time.Now}
}

// NormalizeProductType maps the form labels "Veg" and "Non Veg" to the
// stored values.
func NormalizeProductType(t string) (string, error) {
	switch utils.ToLowerNoSpaces(t) {
	case "veg":
		return models.ProductTypeVeg, nil
	case "nonveg", "non-veg":
		return models.ProductTypeNonVeg, nil
	}
	return "", utils.BadRequest(fmt.Sprintf("Invalid product type %q", t))
}

// ValidateVariations requires at least one named variation with
// non-negative numbers.
func ValidateVariations(variations map[string]models.ProductVariation) error {
	if len(variations) == 0 {
		return utils.BadRequest("A product needs at least one variation")
	}
	for name, v := range variations {
		if strings.TrimSpace(name) == "" {
			return utils.BadRequest("Variation name is required")
		}
		for _, n := range []float64{v.MRP, v.Price, v.Discount, float64(v.StockQuantity)} {
			if n < 0 || math.IsNaN(n) {
				return utils.BadRequest(fmt.Sprintf("Variation %q has a negative value", name))
			}
		}
		if v.Discount > 100 {
			return utils.BadRequest(fmt.Sprintf("Variation %q discount is over 100", name))
		}
	}
	return nil
}

func (s *ProductService) ListProducts(ctx context.Context, storeID string) ([]models.Product, error) {
	var q Query
	if storeID != "" {
		q.Conditions = []Condition{Where("storeId", "==", storeID)}
	}
	docs, err := s.Store.Query(ctx, CollectionProducts, q)
	if err != nil {
		return nil, utils.Internal("Failed to fetch products", err)
	}
	products, err := decodeDocs(docs, func(p *models.Product, id string) { p.ID = id })
	if err != nil {
		return nil, utils.Internal("Failed to parse products", err)
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	doc, err := getDocument(ctx, s.Store, CollectionProducts, id, "Product")
	if err != nil {
		return nil, err
	}
	var p models.Product
	if err := doc.DataTo(&p); err != nil {
		return nil, utils.Internal("Failed to parse product", err)
	}
	p.ID = doc.ID
	return &p, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, in ProductInput, image *FileUpload) (*models.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, utils.BadRequest("Product name is required")
	}
	if image == nil {
		return nil, utils.BadRequest("Product image is required")
	}
	productType, err := NormalizeProductType(in.Type)
	if err != nil {
		return nil, err
	}
	if err := ValidateVariations(in.Variations); err != nil {
		return nil, err
	}
	if err := ensureExists(ctx, s.Store, CollectionStores, in.StoreID, "Store"); err != nil {
		return nil, err
	}

	imageURL, err := s.Blobs.Upload(ctx, "Products", *image)
	if err != nil {
		return nil, utils.Internal("Failed to upload product image", err)
	}

	now := s.Now()
	id := uuid.NewString()
	p := models.Product{
		ID:              id,
		ProductID:       id,
		StoreID:         in.StoreID,
		Name:            in.Name,
		LowerName:       utils.ToLowerNoSpaces(in.Name),
		Cuisine:         in.Cuisine,
		LowerCuisine:    utils.ToLowerNoSpaces(in.Cuisine),
		ImageURL:        imageURL,
		ProductCategory: in.ProductCategory,
		StoreCategory:   in.StoreCategory,
		Type:            productType,
		Variations:      in.Variations,
		IsAvailable:     true,
		Rating:          0,
		CreatedAt:       now,
		LastUpdated:     now,
	}
	if err := s.Store.Set(ctx, CollectionProducts, id, p); err != nil {
		return nil, utils.Internal("Failed to create product", err)
	}
	return &p, nil
}

// UpdateProduct writes only the changed fields, so fields set elsewhere
// (rating, availability, categories) are never overwritten. Variations,
// when given, replace the whole set.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, in ProductUpdate, image *FileUpload) (*models.Product, error) {
	if err := ensureExists(ctx, s.Store, CollectionProducts, id, "Product"); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, utils.BadRequest("Product name cannot be empty")
		}
		fields["name"] = *in.Name
		fields["lowerName"] = utils.ToLowerNoSpaces(*in.Name)
	}
	if in.Cuisine != nil {
		fields["cuisine"] = *in.Cuisine
		fields["lowerCuisine"] = utils.ToLowerNoSpaces(*in.Cuisine)
	}
	if in.Type != nil {
		t, err := NormalizeProductType(*in.Type)
		if err != nil {
			return nil, err
		}
		fields["type"] = t
	}
	if len(in.Variations) > 0 {
		if err := ValidateVariations(in.Variations); err != nil {
			return nil, err
		}
		fields["variations"] = in.Variations
	}
	if image != nil {
		url, err := s.Blobs.Upload(ctx, "Products", *image)
		if err != nil {
			return nil, utils.Internal("Failed to upload product image", err)
		}
		fields["imageUrl"] = url
	}
	fields["lastUpdated"] = s.Now()

	err := s.Store.Update(ctx, CollectionProducts, id, fields)
	if errors.Is(err, ErrDocumentNotFound) {
		return nil, utils.NotFound("Product not found")
	}
	if err != nil {
		return nil, utils.Internal("Failed to update product", err)
	}
	return s.GetProduct(ctx, id)
}

func (s *ProductService) SetAvailability(ctx context.Context, id string, available bool) error {
	if err := ensureExists(ctx, s.Store, CollectionProducts, id, "Product"); err != nil {
		return err
	}
	err := s.Store.Merge(ctx, CollectionProducts, id, map[string]interface{}{
		"isAvailable": available,
		"lastUpdated": s.Now(),
	})
	if err != nil {
		return utils.Internal("Failed to update product", err)
	}
	return nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := ensureExists(ctx, s.Store, CollectionProducts, id, "Product"); err != nil {
		return err
	}
	if err := s.Store.Delete(ctx, CollectionProducts, id); err != nil {
		return utils.Internal("Failed to delete product", err)
	}
	return nil
}
