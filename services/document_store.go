package services

import (
	"TnenntAdmin/models"
	"TnenntAdmin/utils"
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"google.golang.org/genproto/googleapis/type/latlng"
)

// Collection names as written by the marketplace apps.
const (
	CollectionOrders          = "Orders"
	CollectionStores          = "Stores"
	CollectionProducts        = "products"
	CollectionCampaigns       = "Campaigns"
	CollectionCuisines        = "CuisineItems"
	CollectionMiddlemen       = "Middlemens"
	CollectionUsers           = "Users"
	CollectionCreatorRequests = "Creators-Waitinglist"
	CollectionBlogs           = "Blogs"
	CollectionVideos          = "Videos"
	CollectionPlaylists       = "Foodplaylist"
	CollectionFeaturedStores  = "Featured Stores"
	CollectionAdmins          = "Authorized-Admins/document/admin"

	FeaturedStoresDoc = "featured-stores"
)

func earningsCollection(middlemanID string) string {
	return CollectionMiddlemen + "/" + middlemanID + "/Earnings"
}

var ErrDocumentNotFound = errors.New("document not found")

// Condition is a single where clause. Field may be a dotted path.
type Condition struct {
	Field    string
	Operator string
	Value    interface{}
}

type OrderBy struct {
	Field string
	Desc  bool
}

type Query struct {
	Conditions []Condition
	OrderBy    []OrderBy
	Limit      int
}

func Where(field, op string, value interface{}) Condition {
	return Condition{Field: field, Operator: op, Value: value}
}

// Document is a snapshot's id and raw field map.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// DocumentStore is the thin wrapper every service talks to.
type DocumentStore interface {
	Get(ctx context.Context, collection, id string) (*Document, error)
	GetAll(ctx context.Context, collection string) ([]Document, error)
	Query(ctx context.Context, collection string, q Query) ([]Document, error)
	// Add creates a document with a generated id.
	Add(ctx context.Context, collection string, data interface{}) (string, error)
	// Set creates or replaces a document.
	Set(ctx context.Context, collection, id string, data interface{}) error
	// Merge writes the given fields into the document, creating it if needed.
	// Nested maps are merged, not replaced.
	Merge(ctx context.Context, collection, id string, data map[string]interface{}) error
	// Update replaces each given top-level field whole and leaves every other
	// field untouched. A missing document is ErrDocumentNotFound.
	Update(ctx context.Context, collection, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, collection, id string) error
	ArrayUnion(ctx context.Context, collection, id, field string, values ...interface{}) error
	ArrayRemove(ctx context.Context, collection, id, field string, values ...interface{}) error
	// BatchMerge applies the same merge to many documents.
	BatchMerge(ctx context.Context, collection string, ids []string, data map[string]interface{}) error
}

var (
	timeType        = reflect.TypeOf(time.Time{})
	coordinatesType = reflect.TypeOf(models.Coordinates{})
)

// DataTo decodes the document into v using the firestore struct tags.
func (d Document) DataTo(v interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "firestore",
		WeaklyTypedInput: true,
		Result:           v,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			timeDecodeHook,
			geoPointDecodeHook,
		),
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(d.Data); err != nil {
		return fmt.Errorf("decode document %s: %w", d.ID, err)
	}
	return nil
}

// timeDecodeHook accepts timestamps written as RFC 3339 strings, dates,
// {seconds, nanoseconds} objects or unix seconds.
func timeDecodeHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to != timeType {
		return data, nil
	}
	switch v := data.(type) {
	case time.Time:
		return v, nil
	case string:
		if v == "" {
			return time.Time{}, nil
		}
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
			if t, err := time.Parse(layout, v); err == nil {
				return t, nil
			}
		}
		return nil, fmt.Errorf("unrecognised time %q", v)
	case int64:
		return time.Unix(v, 0), nil
	case int:
		return time.Unix(int64(v), 0), nil
	case float64:
		return time.Unix(int64(v), 0), nil
	case map[string]interface{}:
		secs, ok := toFloat(v["seconds"])
		if !ok {
			secs, ok = toFloat(v["_seconds"])
		}
		if !ok {
			return data, nil
		}
		nanos, _ := toFloat(v["nanoseconds"])
		return time.Unix(int64(secs), int64(nanos)), nil
	}
	return data, nil
}

// geoPointDecodeHook lets a Firestore GeoPoint populate Coordinates.
func geoPointDecodeHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to != coordinatesType {
		return data, nil
	}
	if p, ok := data.(*latlng.LatLng); ok && p != nil {
		return models.Coordinates{Lat: p.Latitude, Long: p.Longitude}, nil
	}
	return data, nil
}

// decodeDocs decodes every document and lets assign record the document id.
func decodeDocs[T any](docs []Document, assign func(*T, string)) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var v T
		if err := doc.DataTo(&v); err != nil {
			return nil, err
		}
		if assign != nil {
			assign(&v, doc.ID)
		}
		out = append(out, v)
	}
	return out, nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// getDocument maps a missing document to a 404 naming the entity.
func getDocument(ctx context.Context, store DocumentStore, collection, id, entity string) (*Document, error) {
	if strings.TrimSpace(id) == "" {
		return nil, utils.BadRequest(entity + " id is required")
	}
	doc, err := store.Get(ctx, collection, id)
	if errors.Is(err, ErrDocumentNotFound) {
		return nil, utils.NotFound(entity + " not found")
	}
	if err != nil {
		return nil, utils.Internal("Failed to fetch "+strings.ToLower(entity), err)
	}
	return doc, nil
}

// ensureExists is getDocument for writes that only need the 404.
func ensureExists(ctx context.Context, store DocumentStore, collection, id, entity string) error {
	_, err := getDocument(ctx, store, collection, id, entity)
	return err
}
