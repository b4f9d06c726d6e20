package services

import (
	"TnenntAdmin/models"
	"TnenntAdmin/utils"
	"context"
	"strings"
)

type CampaignInput struct {
	Title      string   `json:"title"`
	ProductIDs []string `json:"productIds"`
}

type CampaignUpdate struct {
	Title      *string   `json:"title"`
	ProductIDs *[]string `json:"productIds"`
}

type CampaignService struct {
	Store DocumentStore
	Blobs BlobStore
}

func NewCampaignService(store DocumentStore, blobs BlobStore) *CampaignService {
	return &CampaignService{Store: store, Blobs: blobs}
}

func (s *CampaignService) ListCampaigns(ctx context.Context) ([]models.Campaign, error) {
	docs, err := s.Store.GetAll(ctx, CollectionCampaigns)
	if err != nil {
		return nil, utils.Internal("Failed to fetch campaigns", err)
	}
	campaigns, err := decodeDocs(docs, func(c *models.Campaign, id string) { c.ID = id })
	if err != nil {
		return nil, utils.Internal("Failed to parse campaigns", err)
	}
	return campaigns, nil
}

func (s *CampaignService) GetCampaign(ctx context.Context, id string) (*models.Campaign, error) {
	doc, err := getDocument(ctx, s.Store, CollectionCampaigns, id, "Campaign")
	if err != nil {
		return nil, err
	}
	var c models.Campaign
	if err := doc.DataTo(&c); err != nil {
		return nil, utils.Internal("Failed to parse campaign", err)
	}
	c.ID = doc.ID
	return &c, nil
}

func (s *CampaignService) CreateCampaign(ctx context.Context, in CampaignInput) (*models.Campaign, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, utils.BadRequest("Campaign title is required")
	}
	ids := uniqueNonEmpty(in.ProductIDs)
	id, err := s.Store.Add(ctx, CollectionCampaigns, map[string]interface{}{
		"title":      in.Title,
		"productIds": ids,
	})
	if err != nil {
		return nil, utils.Internal("Failed to create campaign", err)
	}
	return &models.Campaign{ID: id, Title: in.Title, ProductIDs: ids}, nil
}

func (s *CampaignService) UpdateCampaign(ctx context.Context, id string, in CampaignUpdate) (*models.Campaign, error) {
	update := map[string]interface{}{}
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, utils.BadRequest("Campaign title cannot be empty")
		}
		update["title"] = *in.Title
	}
	if in.ProductIDs != nil {
		update["productIds"] = uniqueNonEmpty(*in.ProductIDs)
	}
	if len(update) == 0 {
		return nil, utils.BadRequest("Nothing to update")
	}
	if err := ensureExists(ctx, s.Store, CollectionCampaigns, id, "Campaign"); err != nil {
		return nil, err
	}
	if err := s.Store.Merge(ctx, CollectionCampaigns, id, update); err != nil {
		return nil, utils.Internal("Failed to update campaign", err)
	}
	return s.GetCampaign(ctx, id)
}

func (s *CampaignService) DeleteCampaign(ctx context.Context, id string) error {
	if err := ensureExists(ctx, s.Store, CollectionCampaigns, id, "Campaign"); err != nil {
		return err
	}
	if err := s.Store.Delete(ctx, CollectionCampaigns, id); err != nil {
		return utils.Internal("Failed to delete campaign", err)
	}
	return nil
}

// IncludeProduct adds a product to the campaign. Adding twice is a no-op.
func (s *CampaignService) IncludeProduct(ctx context.Context, campaignID, productID string) error {
	if err := ensureExists(ctx, s.Store, CollectionCampaigns, campaignID, "Campaign"); err != nil {
		return err
	}
	if err := ensureExists(ctx, s.Store, CollectionProducts, productID, "Product"); err != nil {
		return err
	}
	if err := s.Store.ArrayUnion(ctx, CollectionCampaigns, campaignID, "productIds", productID); err != nil {
		return utils.Internal("Failed to add product to campaign", err)
	}
	return nil
}

func (s *CampaignService) ExcludeProduct(ctx context.Context, campaignID, productID string) error {
	if err := ensureExists(ctx, s.Store, CollectionCampaigns, campaignID, "Campaign"); err != nil {
		return err
	}
	if err := s.Store.ArrayRemove(ctx, CollectionCampaigns, campaignID, "productIds", productID); err != nil {
		return utils.Internal("Failed to remove product from campaign", err)
	}
	return nil
}

// AddImages uploads banner images and appends their URLs.
func (s *CampaignService) AddImages(ctx context.Context, campaignID string, images []FileUpload) (*models.Campaign, error) {
	if len(images) == 0 {
		return nil, utils.BadRequest("At least one image is required")
	}
	if err := ensureExists(ctx, s.Store, CollectionCampaigns, campaignID, "Campaign"); err != nil {
		return nil, err
	}

	urls := make([]interface{}, 0, len(images))
	for _, img := range images {
		url, err := s.Blobs.Upload(ctx, "Campaigns", img)
		if err != nil {
			return nil, utils.Internal("Failed to upload campaign image", err)
		}
		urls = append(urls, url)
	}
	if err := s.Store.ArrayUnion(ctx, CollectionCampaigns, campaignID, "imageUrls", urls...); err != nil {
		return nil, utils.Internal("Failed to save campaign images", err)
	}
	return s.GetCampaign(ctx, campaignID)
}

// Reset clears the campaign's images and products but keeps its title.
func (s *CampaignService) Reset(ctx context.Context, campaignID string) (*models.Campaign, error) {
	if err := ensureExists(ctx, s.Store, CollectionCampaigns, campaignID, "Campaign"); err != nil {
		return nil, err
	}
	err := s.Store.Merge(ctx, CollectionCampaigns, campaignID, map[string]interface{}{
		"imageUrls":  []string{},
		"productIds": []string{},
	})
	if err != nil {
		return nil, utils.Internal("Failed to reset campaign", err)
	}
	return s.GetCampaign(ctx, campaignID)
}
