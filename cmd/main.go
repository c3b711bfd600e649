package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/auth"
	bookingsHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/bookings"
	itemsHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/items"
	placesHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/places"
	profileHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/profile"
	qrHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/qr"
	verificationHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/verification"
	"github.com/m04kA/SMC-CoworkingService/internal/api/middleware"
	"github.com/m04kA/SMC-CoworkingService/internal/auth"
	"github.com/m04kA/SMC-CoworkingService/internal/config"
	bookingStorage "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/booking"
	companyStorage "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/company"
	itemStorage "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/item"
	placeStorage "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/place"
	userStorage "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-CoworkingService/internal/integrations/objstore"
	bookingsService "github.com/m04kA/SMC-CoworkingService/internal/service/bookings"
	companiesService "github.com/m04kA/SMC-CoworkingService/internal/service/companies"
	itemsService "github.com/m04kA/SMC-CoworkingService/internal/service/items"
	placesService "github.com/m04kA/SMC-CoworkingService/internal/service/places"
	usersService "github.com/m04kA/SMC-CoworkingService/internal/service/users"
	verificationService "github.com/m04kA/SMC-CoworkingService/internal/service/verification"
	"github.com/m04kA/SMC-CoworkingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CoworkingService/internal/usecase/generate_qr"
	"github.com/m04kA/SMC-CoworkingService/internal/usecase/place_item"
	"github.com/m04kA/SMC-CoworkingService/internal/usecase/put_items"
	"github.com/m04kA/SMC-CoworkingService/internal/usecase/resize_coworking"
	"github.com/m04kA/SMC-CoworkingService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-CoworkingService/internal/usecase/verify_qr"
	"github.com/m04kA/SMC-CoworkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CoworkingService/pkg/logger"
	"github.com/m04kA/SMC-CoworkingService/pkg/metrics"
	"github.com/m04kA/SMC-CoworkingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CoworkingService/pkg/txmanager"
)

const configPath = "config.toml"

// transactor объединяет оба менеджера транзакций: с метриками и без
type transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

func main() {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logg.Close()

	logg.Info("starting %s", cfg.Metrics.ServiceName)

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		logg.Fatal("failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		logg.Fatal("failed to ping database: %v", err)
	}
	logg.Info("connected to database %s:%d/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := objstore.NewClient(ctx, cfg.S3)
	if err != nil {
		logg.Fatal("failed to create object store client: %v", err)
	}
	logg.Info("connected to object store bucket %q", cfg.S3.Bucket)

	// С включенными метриками запросы идут через обертку с таймингами,
	// без них - напрямую через *sql.DB
	stopMetricsCh := make(chan struct{})
	defer close(stopMetricsCh)

	var metricsCollector *metrics.Metrics
	var dbExecutor dbmetrics.DBExecutor
	var txMgr transactor
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		dbExecutor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		dbExecutor = db
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	tokenManager := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTLHours)

	// Репозитории
	companyRepo := companyStorage.NewRepository(dbExecutor)
	userRepo := userStorage.NewRepository(dbExecutor)
	placeRepo := placeStorage.NewRepository(dbExecutor)
	itemRepo := itemStorage.NewRepository(dbExecutor)
	bookingRepo := bookingStorage.NewRepository(dbExecutor)

	// Сервисы
	companySvc := companiesService.NewService(companyRepo, userRepo, tokenManager, txMgr, logg)
	userSvc := usersService.NewService(userRepo, companyRepo, tokenManager, logg)
	placeSvc := placesService.NewService(placeRepo, itemRepo, logg)
	itemSvc := itemsService.NewService(itemRepo, store, logg)
	bookingSvc := bookingsService.NewService(bookingRepo, placeRepo, logg)
	verificationSvc := verificationService.NewService(userRepo, store, txMgr, logg)

	// Use cases
	placeItemUC := place_item.NewUseCase(placeRepo, itemRepo, txMgr, logg)
	putItemsUC := put_items.NewUseCase(placeRepo, itemRepo, txMgr, logg)
	resizeUC := resize_coworking.NewUseCase(placeRepo, itemRepo, txMgr, logg)
	createBookingUC := create_booking.NewUseCase(bookingRepo, itemRepo, txMgr, logg)
	updateBookingUC := update_booking.NewUseCase(bookingRepo, txMgr, logg)
	generateQrUC := generate_qr.NewUseCase(bookingRepo, tokenManager, logg)
	verifyQrUC := verify_qr.NewUseCase(bookingRepo, tokenManager, logg)

	// Обработчики
	authH := authHandler.NewHandler(companySvc, userSvc, logg)
	profileH := profileHandler.NewHandler(userSvc, companySvc, logg)
	placesH := placesHandler.NewHandler(placeSvc, placeItemUC, putItemsUC, resizeUC, logg)
	itemsH := itemsHandler.NewHandler(itemSvc, logg)
	bookingsH := bookingsHandler.NewHandler(bookingSvc, createBookingUC, updateBookingUC, logg)
	qrH := qrHandler.NewHandler(generateQrUC, verifyQrUC, logg)
	verificationH := verificationHandler.NewHandler(verificationSvc, logg)

	router := buildRouter(cfg, logg, metricsCollector, tokenManager,
		authH, profileH, placesH, itemsH, bookingsH, qrH, verificationH)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		logg.Info("http server listening on :%d", cfg.Server.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logg.Fatal("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logg.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Error("graceful shutdown failed: %v", err)
	}

	logg.Info("stopped")
}

// buildRouter собирает маршруты API с middleware аутентификации и авторизации
func buildRouter(
	cfg *config.Config,
	logg *logger.Logger,
	metricsCollector *metrics.Metrics,
	tokenManager *auth.Manager,
	authH *authHandler.Handler,
	profileH *profileHandler.Handler,
	placesH *placesHandler.Handler,
	itemsH *itemsHandler.Handler,
	bookingsH *bookingsHandler.Handler,
	qrH *qrHandler.Handler,
	verificationH *verificationHandler.Handler,
) *mux.Router {
	router := mux.NewRouter()

	if cfg.Metrics.Enabled {
		router.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		router.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	api := router.PathPrefix("/api/v1").Subrouter()

	// Публичные маршруты
	api.HandleFunc("/companies", authH.RegisterCompany).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", authH.RegisterUser).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authH.Login).Methods(http.MethodPost)

	// Защищенные маршруты: сначала Auth, затем проверка прав на операцию
	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.Auth(tokenManager, logg))

	route := func(op middleware.Operation, path string, h http.HandlerFunc, methods ...string) {
		protected.Handle(path, middleware.Authorize(op, logg)(h)).Methods(methods...)
	}

	route(middleware.OpCompanyGet, "/company", profileH.GetCompany, http.MethodGet)
	route(middleware.OpProfileGet, "/profile", profileH.GetProfile, http.MethodGet)
	route(middleware.OpProfileUpdate, "/profile", profileH.UpdateProfile, http.MethodPatch)

	route(middleware.OpBuildingCreate, "/buildings", placesH.CreateBuilding, http.MethodPost)
	route(middleware.OpBuildingList, "/buildings", placesH.ListBuildings, http.MethodGet)
	route(middleware.OpBuildingGet, "/buildings/{buildingId}", placesH.GetBuilding, http.MethodGet)

	route(middleware.OpCoworkingCreate, "/buildings/{buildingId}/coworkings", placesH.CreateCoworking, http.MethodPost)
	route(middleware.OpCoworkingList, "/buildings/{buildingId}/coworkings", placesH.ListCoworkings, http.MethodGet)
	route(middleware.OpCoworkingGet, "/buildings/{buildingId}/coworkings/{coworkingId}", placesH.GetCoworking, http.MethodGet)
	route(middleware.OpCoworkingUpdate, "/buildings/{buildingId}/coworkings/{coworkingId}", placesH.UpdateCoworking, http.MethodPatch)
	route(middleware.OpCoworkingResize, "/buildings/{buildingId}/coworkings/{coworkingId}/dimensions", placesH.ResizeCoworking, http.MethodPut)
	route(middleware.OpCoworkingDelete, "/buildings/{buildingId}/coworkings/{coworkingId}", placesH.DeleteCoworking, http.MethodDelete)

	route(middleware.OpItemList, "/buildings/{buildingId}/coworkings/{coworkingId}/items", placesH.ListItems, http.MethodGet)
	route(middleware.OpItemPlace, "/buildings/{buildingId}/coworkings/{coworkingId}/items", placesH.PlaceItem, http.MethodPost)
	route(middleware.OpItemsPut, "/buildings/{buildingId}/coworkings/{coworkingId}/items", placesH.PutItems, http.MethodPut)
	route(middleware.OpItemDelete, "/buildings/{buildingId}/coworkings/{coworkingId}/items/{itemId}", placesH.DeleteItem, http.MethodDelete)

	route(middleware.OpItemTypeCreate, "/item-types", itemsH.CreateItemType, http.MethodPost)
	route(middleware.OpItemTypeList, "/item-types", itemsH.ListItemTypes, http.MethodGet)
	route(middleware.OpItemTypeGet, "/item-types/{itemTypeId}", itemsH.GetItemType, http.MethodGet)
	route(middleware.OpItemTypeIcon, "/item-types/{itemTypeId}/icon", itemsH.GetIcon, http.MethodGet)
	route(middleware.OpItemTypeDelete, "/item-types/{itemTypeId}", itemsH.DeleteItemType, http.MethodDelete)

	route(middleware.OpBookingCreate, "/bookings", bookingsH.Create, http.MethodPost)
	route(middleware.OpBookingListMy, "/bookings", bookingsH.ListMine, http.MethodGet)
	route(middleware.OpBookingGet, "/bookings/{bookingId}", bookingsH.Get, http.MethodGet)
	route(middleware.OpBookingUpdate, "/bookings/{bookingId}", bookingsH.Update, http.MethodPatch)
	route(middleware.OpBookingDelete, "/bookings/{bookingId}", bookingsH.Delete, http.MethodDelete)
	route(middleware.OpBookingListAll, "/buildings/{buildingId}/coworkings/{coworkingId}/bookings", bookingsH.ListByCoworking, http.MethodGet)

	route(middleware.OpQrGenerate, "/bookings/{bookingId}/qr", qrH.Generate, http.MethodGet)
	route(middleware.OpQrVerify, "/qr/verify", qrH.Verify, http.MethodPost)

	route(middleware.OpVerificationRequest, "/verification", verificationH.Request, http.MethodPost)
	route(middleware.OpVerificationList, "/verification", verificationH.ListPending, http.MethodGet)
	route(middleware.OpVerificationDocument, "/verification/{userId}/document", verificationH.GetDocument, http.MethodGet)
	route(middleware.OpVerificationApprove, "/verification/{userId}/approve", verificationH.Approve, http.MethodPost)
	route(middleware.OpVerificationDecline, "/verification/{userId}/decline", verificationH.Decline, http.MethodPost)

	return router
}
