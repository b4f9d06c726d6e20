package route

import (
	"TnenntAdmin/controllers"
	"TnenntAdmin/handlers"
	"TnenntAdmin/middleware"
	"TnenntAdmin/services"
	"TnenntAdmin/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Dependencies holds the storage backends and settings the routes are
// built from.
type Dependencies struct {
	Store     services.DocumentStore
	Blobs     services.BlobStore
	Messenger services.Messenger
	Verifier  services.SessionVerifier

	AuthDisabled        bool
	TaskSigningKey      string
	CommissionRate      float64
	FastDelivery        time.Duration
	SlowDelivery        time.Duration
	NotifyRatePerMinute int
}

// Services are shared between the HTTP routes and the background jobs.
type Services struct {
	Admins        *services.AdminService
	Users         *services.UserService
	Notifications *services.NotificationService
	Orders        *services.OrderService
	Reports       *services.ReportService
	Earnings      *services.EarningsService
	Stores        *services.StoreService
	Products      *services.ProductService
	Campaigns     *services.CampaignService
	Cuisines      *services.CuisineService
	Middlemen     *services.MiddlemanService
	Blogs         *services.BlogService
	Videos        *services.VideoService
	Playlists     *services.PlaylistService
}

func NewServices(deps Dependencies) *Services {
	users := services.NewUserService(deps.Store)
	notifications := services.NewNotificationService(deps.Messenger)
	orders := services.NewOrderService(deps.Store, users, notifications)

	return &Services{
		Admins:        services.NewAdminService(deps.Store, deps.Verifier),
		Users:         users,
		Notifications: notifications,
		Orders:        orders,
		Reports:       services.NewReportService(orders, deps.FastDelivery, deps.SlowDelivery),
		Earnings:      services.NewEarningsService(deps.Store, orders, deps.CommissionRate),
		Stores:        services.NewStoreService(deps.Store, deps.Blobs),
		Products:      services.NewProductService(deps.Store, deps.Blobs),
		Campaigns:     services.NewCampaignService(deps.Store, deps.Blobs),
		Cuisines:      services.NewCuisineService(deps.Store, deps.Blobs),
		Middlemen:     services.NewMiddlemanService(deps.Store),
		Blogs:         services.NewBlogService(deps.Store, deps.Blobs),
		Videos:        services.NewVideoService(deps.Store, deps.Blobs),
		Playlists:     services.NewPlaylistService(deps.Store, deps.Blobs),
	}
}

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine, deps Dependencies, svc *Services) {
	authController := controllers.NewAuthController(svc.Admins)
	userController := controllers.NewUserController(svc.Users)
	orderController := controllers.NewOrderController(svc.Orders)
	reportController := controllers.NewReportController(svc.Reports)
	earningsController := controllers.NewEarningsController(svc.Earnings)
	storeController := controllers.NewStoreController(svc.Stores)
	productController := controllers.NewProductController(svc.Products)
	campaignController := controllers.NewCampaignController(svc.Campaigns)
	cuisineController := controllers.NewCuisineController(svc.Cuisines)
	middlemanController := controllers.NewMiddlemanController(svc.Middlemen)
	blogController := controllers.NewBlogController(svc.Blogs)
	videoController := controllers.NewVideoController(svc.Videos)
	playlistController := controllers.NewPlaylistController(svc.Playlists)
	notificationController := controllers.NewNotificationController(svc.Notifications)
	taskController := controllers.NewTaskController(svc.Stores)
	geoController := controllers.NewGeoController()

	router.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "OK", gin.H{"status": "up"})
	})

	v1Routes := router.Group("/v1")
	{
		handlers.RegisterAuthRoutes(v1Routes, authController)
		handlers.RegisterTaskRoutes(v1Routes, taskController, deps.TaskSigningKey)
	}

	admin := v1Routes.Group("", middleware.AuthMiddleware(svc.Admins, deps.AuthDisabled))
	{
		handlers.RegisterSessionRoutes(admin, authController)
		handlers.RegisterGeoRoutes(admin, geoController)
		handlers.RegisterOrderRoutes(admin, orderController)
		handlers.RegisterReportRoutes(admin, reportController)
		handlers.RegisterEarningsRoutes(admin, earningsController)
		handlers.RegisterStoreRoutes(admin, storeController)
		handlers.RegisterProductRoutes(admin, productController)
		handlers.RegisterCampaignRoutes(admin, campaignController)
		handlers.RegisterCuisineRoutes(admin, cuisineController)
		handlers.RegisterMiddlemanRoutes(admin, middlemanController, earningsController)
		handlers.RegisterUserRoutes(admin, userController)
		handlers.RegisterBlogRoutes(admin, blogController)
		handlers.RegisterVideoRoutes(admin, videoController)
		handlers.RegisterPlaylistRoutes(admin, playlistController)
		handlers.RegisterNotificationRoutes(admin, notificationController, middleware.NewRateLimiter(deps.NotifyRatePerMinute))
	}
}
