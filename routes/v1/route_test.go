package route

import (
	"TnenntAdmin/middleware"
	"TnenntAdmin/models"
	"TnenntAdmin/services"
	"TnenntAdmin/utils"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const taskKey = "route-test-key"

type testServer struct {
	router *gin.Engine
	store  *services.MemoryStore
	blobs  *services.MemoryBlobStore
}

func setupRouter(t *testing.T, authDisabled bool) *testServer {
	t.Helper()
	store := services.NewMemoryStore()
	blobs := services.NewMemoryBlobStore()
	deps := Dependencies{
		Store:               store,
		Blobs:               blobs,
		Messenger:           services.LogMessenger{},
		AuthDisabled:        authDisabled,
		TaskSigningKey:      taskKey,
		CommissionRate:      0.075,
		FastDelivery:        30 * time.Minute,
		SlowDelivery:        45 * time.Minute,
		NotifyRatePerMinute: 2,
	}

	router := gin.New()
	router.Use(middleware.ErrorHandlerMiddleware())
	RegisterRoutes(router, deps, NewServices(deps))
	return &testServer{router: router, store: store, blobs: blobs}
}

func (s *testServer) seed(t *testing.T, collection, id string, data interface{}) {
	t.Helper()
	require.NoError(t, s.store.Set(context.Background(), collection, id, data))
}

func performRequest(r http.Handler, method, path string, body interface{}, header map[string]string) *httptest.ResponseRecorder {
	var reqBody io.Reader = http.NoBody
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	}
	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// performMultipart sends fields and files (field name -> filename) as a
// multipart form.
func performMultipart(r http.Handler, method, path string, fields map[string][]string, files map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, values := range fields {
		for _, v := range values {
			_ = mw.WriteField(k, v)
		}
	}
	for field, name := range files {
		fw, _ := mw.CreateFormFile(field, name)
		_, _ = fw.Write([]byte("image-bytes"))
	}
	_ = mw.Close()

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) utils.Response {
	t.Helper()
	resp := utils.Response{Data: data}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func TestHealth(t *testing.T) {
	s := setupRouter(t, false)
	w := performRequest(s.router, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRoutesRequireSession(t *testing.T) {
	s := setupRouter(t, false)

	for _, path := range []string{"/v1/orders", "/v1/stores", "/v1/auth/me", "/v1/users"} {
		w := performRequest(s.router, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	// no verifier is configured with the memory backends
	w := performRequest(s.router, http.MethodGet, "/v1/orders", nil, map[string]string{"Cookie": "session=abc"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = performRequest(s.router, http.MethodGet, "/v1/auth/verify", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderRoutes(t *testing.T) {
	s := setupRouter(t, true)
	placed := time.Date(2024, 5, 9, 12, 0, 0, 0, time.UTC)
	s.seed(t, services.CollectionUsers, "u1", models.User{FirstName: "Asha"})
	s.seed(t, services.CollectionOrders, "o1", models.Order{
		OrderID: "ORD-1",
		UserID:  "u1",
		StoreID: "s1",
		OrderAt: placed,
		Status:  map[string]models.StatusStep{"ordered": {Message: "Order placed", Timestamp: placed}},
	})

	var rows []models.OrderRow
	w := performRequest(s.router, http.MethodGet, "/v1/orders?storeId=s1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w, &rows)
	assert.True(t, resp.Success)
	require.Len(t, rows, 1)
	assert.Equal(t, "Asha", rows[0].Customer)
	assert.Equal(t, "ordered", rows[0].Status)

	w = performRequest(s.router, http.MethodGet, "/v1/orders?date=09-05-2024", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var updated models.OrderRow
	w = performRequest(s.router, http.MethodPut, "/v1/orders/o1/status", gin.H{"stage": "Accepted"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &updated)
	assert.Equal(t, "accepted", updated.Status)
	assert.Equal(t, "Asha", updated.Customer, "same row as GET /orders/:id")
	assert.Equal(t, "s1", updated.Store, "store id stands in for a missing name")
	assert.Len(t, updated.Timeline, 2)

	w = performRequest(s.router, http.MethodPut, "/v1/orders/o1/status", gin.H{"stage": "ordered"}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = performRequest(s.router, http.MethodPut, "/v1/orders/o1/status", gin.H{}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var cancelled models.OrderRow
	w = performRequest(s.router, http.MethodPost, "/v1/orders/o1/cancel", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &cancelled)
	assert.Equal(t, "cancelled", cancelled.Status)
	assert.Equal(t, "Asha", cancelled.Customer)

	var row models.OrderRow
	w = performRequest(s.router, http.MethodGet, "/v1/orders/o1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &row)
	assert.Equal(t, "cancelled", row.Status)
	assert.Len(t, row.Timeline, 3)

	w = performRequest(s.router, http.MethodGet, "/v1/orders/missing", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReportAndEarningsRoutes(t *testing.T) {
	s := setupRouter(t, true)
	placed := time.Date(2024, 5, 9, 12, 0, 0, 0, time.UTC)
	s.seed(t, services.CollectionStores, "s1", models.Store{Name: "Spice Garden"})
	s.seed(t, services.CollectionOrders, "o1", models.Order{
		StoreID:     "s1",
		OrderAt:     placed,
		TotalAmount: 200,
		Products:    []models.OrderProduct{{Name: "Thali", Price: 100, Quantity: 2}},
		Status: map[string]models.StatusStep{
			"ordered":   {Timestamp: placed},
			"delivered": {Timestamp: placed.Add(25 * time.Minute)},
		},
		CustomerCoordinates: &models.Coordinates{Lat: 24.868978, Long: 92.364217},
	})

	var latency models.LatencyBuckets
	w := performRequest(s.router, http.MethodGet, "/v1/reports/orders/latency?from=2024-05-01&to=2024-05-31", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &latency)
	assert.Equal(t, 1, latency.Fast)

	var areas []models.AreaCount
	w = performRequest(s.router, http.MethodGet, "/v1/reports/orders/areas?from=2024-05-01&to=2024-05-31&precision=4", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &areas)
	require.Len(t, areas, 1)
	assert.Len(t, areas[0].Geohash, 4)

	w = performRequest(s.router, http.MethodGet, "/v1/reports/orders/areas?precision=abc", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(s.router, http.MethodGet, "/v1/reports/orders/daily?from=2024-05-31&to=2024-05-01", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	for _, path := range []string{
		"/v1/reports/orders/daily?from=0001-01-01&to=9999-12-31",
		"/v1/users/growth?from=0001-01-01&to=9999-12-31",
	} {
		w = performRequest(s.router, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}

	var report models.StoreEarningsReport
	w = performRequest(s.router, http.MethodGet, "/v1/earnings/stores?from=2024-05-01&to=2024-05-31", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &report)
	require.Len(t, report.Stores, 1)
	assert.Equal(t, "Spice Garden", report.Stores[0].StoreName)

	var st models.StoreStatement
	w = performRequest(s.router, http.MethodGet, "/v1/earnings/stores/s1/statement", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &st)
	require.Len(t, st.Lines, 1)
	assert.Equal(t, 15.0, st.Lines[0].Commission)
	assert.Equal(t, 185.0, st.TotalNetAmount)

	var distance map[string]float64
	w = performRequest(s.router, http.MethodGet, "/v1/geo/distance?lat1=24.868978&lon1=92.364217&lat2=24.862601&lon2=92.371676", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &distance)
	assert.InDelta(t, 1.03, distance["km"], 0.05)

	w = performRequest(s.router, http.MethodGet, "/v1/geo/distance?lat1=10&lon1=20&lat2=-10&lon2=-160", nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &distance)
	assert.InDelta(t, 20015.087, distance["km"], 0.01)
}

func TestStoreAndProductRoutes(t *testing.T) {
	s := setupRouter(t, true)
	s.seed(t, services.CollectionStores, "s1", models.Store{Name: "Spice Garden", IsPaused: false})

	w := performRequest(s.router, http.MethodPatch, "/v1/stores/s1/flags", gin.H{"isBlocked": true}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var view models.StoreView
	decode(t, w, &view)
	assert.Equal(t, "Blocked", view.Status)

	w = performRequest(s.router, http.MethodPost, "/v1/stores/featured/s1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var featured []models.StoreView
	w = performRequest(s.router, http.MethodGet, "/v1/stores/featured", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &featured)
	require.Len(t, featured, 1)

	w = performMultipart(s.router, http.MethodPut, "/v1/stores/s1/logos", nil, map[string]string{"banner": "banner.png"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, s.blobs.Len())

	fields := map[string][]string{
		"name":       {"Veg Momo"},
		"storeId":    {"s1"},
		"type":       {"Veg"},
		"cuisine":    {"Tibetan"},
		"variations": {`{"plate":{"mrp":120,"price":100,"discount":0,"stockQuantity":10}}`},
	}
	w = performMultipart(s.router, http.MethodPost, "/v1/products", fields, map[string]string{"image": "momo.png"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var product models.Product
	decode(t, w, &product)
	assert.Equal(t, "vegmomo", product.LowerName)

	fields["variations"] = []string{"not json"}
	w = performMultipart(s.router, http.MethodPost, "/v1/products", fields, map[string]string{"image": "momo.png"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(s.router, http.MethodPatch, "/v1/products/"+product.ID+"/availability", gin.H{"isAvailable": false}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = performRequest(s.router, http.MethodPatch, "/v1/products/"+product.ID+"/availability", gin.H{}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(s.router, http.MethodPost, "/v1/campaigns", gin.H{"title": "Momo Week", "productIds": []string{product.ID}}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var campaign models.Campaign
	decode(t, w, &campaign)

	w = performMultipart(s.router, http.MethodPost, "/v1/campaigns/"+campaign.ID+"/images", nil, map[string]string{"images": "banner.png"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &campaign)
	assert.Len(t, campaign.ImageURLs, 1)

	w = performRequest(s.router, http.MethodDelete, "/v1/products/"+product.ID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestTaskRoute(t *testing.T) {
	s := setupRouter(t, false)
	s.seed(t, services.CollectionStores, "s1", models.Store{Name: "A"})
	s.seed(t, services.CollectionStores, "s2", models.Store{Name: "B", IsPaused: true})

	w := performRequest(s.router, http.MethodPost, "/v1/tasks/stores-on", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := middleware.GenerateTaskToken(taskKey, "stores-on", time.Minute)
	require.NoError(t, err)
	w = performRequest(s.router, http.MethodPost, "/v1/tasks/stores-on", nil, map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusOK, w.Code)

	var result map[string]int
	decode(t, w, &result)
	assert.Equal(t, 1, result["activated"])
}

func TestNotifyRoute(t *testing.T) {
	s := setupRouter(t, true)
	msg := gin.H{"token": "device", "title": "Hi"}

	w := performRequest(s.router, http.MethodPost, "/v1/notify", gin.H{"title": "Hi"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(s.router, http.MethodPost, "/v1/notify", msg, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(s.router, http.MethodPost, "/v1/notify", msg, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestContentRoutes(t *testing.T) {
	s := setupRouter(t, true)

	w := performMultipart(s.router, http.MethodPost, "/v1/blogs",
		map[string][]string{"title": {"Momos"}, "content": {"<p>Steamed</p>"}},
		map[string]string{"thumbnail": "t.png"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = performMultipart(s.router, http.MethodPost, "/v1/videos",
		map[string][]string{"videoUrl": {"https://cdn.example.com/v.mp4"}},
		map[string]string{"image": "t.png"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = performMultipart(s.router, http.MethodPost, "/v1/playlists",
		map[string][]string{"productIds": {"p1", "p2"}, "text": {"Rainy day"}},
		map[string]string{"image": "cover.png"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var playlist models.FoodPlaylist
	decode(t, w, &playlist)
	assert.Equal(t, []string{"p1", "p2"}, playlist.ProductIDs)

	w = performMultipart(s.router, http.MethodPost, "/v1/cuisines",
		map[string][]string{"heading": {"Assamese"}, "products": {`[{"title":"Khar","desc":"alkaline curry"}]`}},
		map[string]string{"image": "i.png", "banner": "b.png", "productImage0": "khar.png"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var cuisine models.Cuisine
	decode(t, w, &cuisine)
	require.Len(t, cuisine.Products, 1)
	assert.Equal(t, "Khar", cuisine.Products[0].Title)

	var blogs []models.Blog
	w = performRequest(s.router, http.MethodGet, "/v1/blogs", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &blogs)
	require.Len(t, blogs, 1)
	assert.Equal(t, "Steamed", blogs[0].Excerpt)
}
