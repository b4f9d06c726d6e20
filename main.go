package main

import (
	"TnenntAdmin/config/database"
	"TnenntAdmin/config/environment"
	"TnenntAdmin/config/logger"
	"TnenntAdmin/middleware"
	v1 "TnenntAdmin/routes/v1"
	"TnenntAdmin/services"
	"TnenntAdmin/tasks"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	environment.Load()

	gin.SetMode(environment.GetGinMode())
	if err := logger.Init(environment.GetLogLevel(), environment.GetGinMode() == gin.DebugMode); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	deps, err := buildDependencies(context.Background())
	if err != nil {
		logger.L().Fatal("startup failed", zap.Error(err))
	}
	defer database.Close()

	svc := v1.NewServices(deps)

	// Setup Gin router
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	// Errors pushed with c.Error are rendered here
	r.Use(middleware.ErrorHandlerMiddleware())

	origins := environment.GetAllowedOrigins()
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: !containsWildcard(origins),
		MaxAge:           12 * time.Hour,
	}))

	// Register all routes
	v1.RegisterRoutes(r, deps, svc)

	var storesOn *tasks.StoresOnTask
	if schedule := environment.GetStoresOnSchedule(); schedule != "" {
		storesOn = tasks.NewStoresOnTask(svc.Stores, schedule)
		if err := storesOn.Start(); err != nil {
			logger.L().Fatal("start stores-on task", zap.Error(err))
		}
	}

	srv := &http.Server{
		Addr:    ":" + environment.GetPort(),
		Handler: r,
	}

	go func() {
		logger.L().Info("server running", zap.String("addr", srv.Addr), zap.String("driver", environment.GetStoreDriver()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.L().Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if storesOn != nil {
		storesOn.Stop(ctx)
	}
	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Error("server shutdown", zap.Error(err))
	}
}

// buildDependencies wires the storage backends for the configured driver.
func buildDependencies(ctx context.Context) (v1.Dependencies, error) {
	deps := v1.Dependencies{
		AuthDisabled:        environment.IsAuthDisabled(),
		TaskSigningKey:      environment.GetTaskSigningKey(),
		CommissionRate:      environment.GetCommissionRate(),
		FastDelivery:        environment.GetFastDelivery(),
		SlowDelivery:        environment.GetSlowDelivery(),
		NotifyRatePerMinute: environment.GetNotifyRatePerMinute(),
	}

	switch driver := environment.GetStoreDriver(); driver {
	case "memory":
		logger.L().Warn("using in-memory store, data is lost on restart")
		deps.Store = services.NewMemoryStore()
		deps.Blobs = services.NewMemoryBlobStore()
		deps.Messenger = services.LogMessenger{}
	case "firestore":
		if err := database.InitFirebase(ctx); err != nil {
			return deps, err
		}
		deps.Store = services.NewFirestoreStore(database.GetFirestoreClient())
		deps.Blobs = services.NewFirebaseBlobStore(database.GetStorageBucket())
		deps.Messenger = database.GetMessagingClient()
		deps.Verifier = database.GetFirebaseAuthClient()
	default:
		return deps, errors.New("unknown STORE_DRIVER " + driver)
	}
	return deps, nil
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
