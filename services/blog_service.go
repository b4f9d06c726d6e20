package services

import (
	"TnenntAdmin/models"
	"TnenntAdmin/utils"
	"context"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
)

const excerptLength = 200

type BlogInput struct {
	Title       string
	Description string
	Content     string
	Thumbnail   *FileUpload
}

type BlogService struct {
	Store DocumentStore
	Blobs BlobStore
	Now   func() time.Time
}

func NewBlogService(store DocumentStore, blobs BlobStore) *BlogService {
	return &BlogService{Store: store, Blobs: blobs, Now: time.Now}
}

func (s *BlogService) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	docs, err := s.Store.GetAll(ctx, CollectionBlogs)
	if err != nil {
		return nil, utils.Internal("Failed to fetch blogs", err)
	}
	blogs, err := decodeDocs(docs, func(b *models.Blog, id string) { b.ID = id })
	if err != nil {
		return nil, utils.Internal("Failed to parse blogs", err)
	}
	for i := range blogs {
		if blogs[i].Excerpt == "" {
			blogs[i].Excerpt = Excerpt(blogs[i].Content, excerptLength)
		}
	}
	sort.SliceStable(blogs, func(i, j int) bool {
		return blogs[i].CreatedAt.After(blogs[j].CreatedAt)
	})
	return blogs, nil
}

func (s *BlogService) CreateBlog(ctx context.Context, in BlogInput) (*models.Blog, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, utils.BadRequest("Blog title is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, utils.BadRequest("Blog content is required")
	}
	if in.Thumbnail == nil {
		return nil, utils.BadRequest("Blog thumbnail is required")
	}

	thumbnail, err := s.Blobs.Upload(ctx, "Blogs", *in.Thumbnail)
	if err != nil {
		return nil, utils.Internal("Error in creating blog", err)
	}

	id := uuid.NewString()
	blog := models.Blog{
		ID:          id,
		BlogID:      id,
		Title:       in.Title,
		Description: in.Description,
		Thumbnail:   thumbnail,
		Content:     in.Content,
		Excerpt:     Excerpt(in.Content, excerptLength),
		CreatedAt:   s.Now(),
	}
	if err := s.Store.Set(ctx, CollectionBlogs, id, blog); err != nil {
		return nil, utils.Internal("Error in creating blog", err)
	}
	return &blog, nil
}

func (s *BlogService) DeleteBlog(ctx context.Context, id string) error {
	if err := ensureExists(ctx, s.Store, CollectionBlogs, id, "Blog"); err != nil {
		return err
	}
	if err := s.Store.Delete(ctx, CollectionBlogs, id); err != nil {
		return utils.Internal("Failed to delete blog", err)
	}
	return nil
}

// Excerpt returns the first n characters of the visible text of an HTML
// fragment with whitespace collapsed.
func Excerpt(html string, n int) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return utils.Truncate(strings.Join(strings.Fields(html), " "), n)
	}
	doc.Find("script, style").Remove()
	return utils.Truncate(strings.Join(strings.Fields(doc.Text()), " "), n)
}
