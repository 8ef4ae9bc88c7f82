package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/Eldarfox/easy-parking-maps/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/Eldarfox/easy-parking-maps/internal/api/handlers/create_booking"
	getAvailableSpacesHandler "github.com/Eldarfox/easy-parking-maps/internal/api/handlers/get_available_spaces"
	getBookingHandler "github.com/Eldarfox/easy-parking-maps/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/Eldarfox/easy-parking-maps/internal/api/handlers/get_bookings"
	getClockHandler "github.com/Eldarfox/easy-parking-maps/internal/api/handlers/get_clock"
	getDisabledHoursHandler "github.com/Eldarfox/easy-parking-maps/internal/api/handlers/get_disabled_hours"
	getParkingsHandler "github.com/Eldarfox/easy-parking-maps/internal/api/handlers/get_parkings"
	getWalletHandler "github.com/Eldarfox/easy-parking-maps/internal/api/handlers/get_wallet"
	setClockHandler "github.com/Eldarfox/easy-parking-maps/internal/api/handlers/set_clock"
	topupWalletHandler "github.com/Eldarfox/easy-parking-maps/internal/api/handlers/topup_wallet"
	"github.com/Eldarfox/easy-parking-maps/internal/api/middleware"
	"github.com/Eldarfox/easy-parking-maps/internal/catalog"
	"github.com/Eldarfox/easy-parking-maps/internal/config"
	"github.com/Eldarfox/easy-parking-maps/internal/domain"
	"github.com/Eldarfox/easy-parking-maps/internal/events"
	bookingsRepo "github.com/Eldarfox/easy-parking-maps/internal/infra/storage/bookings"
	clockstateRepo "github.com/Eldarfox/easy-parking-maps/internal/infra/storage/clockstate"
	"github.com/Eldarfox/easy-parking-maps/internal/infra/storage/filestore"
	"github.com/Eldarfox/easy-parking-maps/internal/infra/storage/memstore"
	walletRepo "github.com/Eldarfox/easy-parking-maps/internal/infra/storage/wallet"
	"github.com/Eldarfox/easy-parking-maps/internal/scheduler"
	availabilityService "github.com/Eldarfox/easy-parking-maps/internal/service/availability"
	bookingsService "github.com/Eldarfox/easy-parking-maps/internal/service/bookings"
	lifecycleService "github.com/Eldarfox/easy-parking-maps/internal/service/lifecycle"
	pricingService "github.com/Eldarfox/easy-parking-maps/internal/service/pricing"
	virtualclockService "github.com/Eldarfox/easy-parking-maps/internal/service/virtualclock"
	walletService "github.com/Eldarfox/easy-parking-maps/internal/service/wallet"
	createBookingUC "github.com/Eldarfox/easy-parking-maps/internal/usecase/create_booking"
	getAvailableSpacesUC "github.com/Eldarfox/easy-parking-maps/internal/usecase/get_available_spaces"
	"github.com/Eldarfox/easy-parking-maps/pkg/logger"
	"github.com/Eldarfox/easy-parking-maps/pkg/metrics"
)

// bookingStorage объединяет операции хранилища бронирований,
// общие для всех бэкендов
type bookingStorage interface {
	List(ctx context.Context) ([]*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Delete(ctx context.Context, id int64) error
}

type walletStorage interface {
	Balance(ctx context.Context) (int64, error)
	SetBalance(ctx context.Context, balance int64) error
}

type clockStorage interface {
	Load(ctx context.Context) (domain.ClockState, error)
	Save(ctx context.Context, state domain.ClockState) error
	Clear(ctx context.Context) error
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting easy-parking-maps...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	} else {
		metricsCollector = metrics.New("disabled")
	}

	// Каталог парковок по умолчанию
	parkings := catalog.Default()

	// Выбираем бэкенд хранилища
	var (
		bookingStore bookingStorage
		walletStore  walletStorage
		clockStore   clockStorage
	)

	switch cfg.Storage.Backend {
	case "memory":
		bookingStore = memstore.NewBookings()
		walletStore = memstore.NewWallet(cfg.Wallet.InitialBalance)
		clockStore = memstore.NewClock()
		log.Info("Using in-memory storage backend")

	case "postgres":
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		bookingStore = bookingsRepo.NewRepository(db)
		walletStore = walletRepo.NewRepository(db, cfg.Wallet.InitialBalance)
		clockStore = clockstateRepo.NewRepository(db, cfg.Clock.Key)

	default: // file
		store, err := filestore.New(cfg.Storage.Dir, cfg.Clock.Key)
		if err != nil {
			log.Fatal("Failed to initialize file storage: %v", err)
		}

		// Кэш парковок совместим с первой версией приложения:
		// читаем его, если есть, иначе сохраняем каталог по умолчанию
		if cached := store.LoadParkings(); len(cached) > 0 {
			parkings = cached
			log.Info("Loaded %d parkings from storage cache", len(cached))
		} else if err := store.SaveParkings(parkings); err != nil {
			log.Warn("Failed to seed parkings cache: %v", err)
		}

		bookingStore = store.Bookings()
		walletStore = store.Wallet(cfg.Wallet.InitialBalance)
		clockStore = store.Clock()
		log.Info("Using file storage backend at %s", cfg.Storage.Dir)
	}

	parkingCatalog := catalog.New(parkings)

	// Шина событий
	bus := events.NewBus()
	defer bus.Close()

	// Инициализируем сервисы
	clockSvc := virtualclockService.NewService(clockStore, bus, log)
	availabilitySvc := availabilityService.NewService(bookingStore, log)
	pricingSvc := pricingService.NewService()
	walletSvc := walletService.NewService(walletStore, bus, log)
	lifecycleSvc := lifecycleService.NewService(bookingStore, clockSvc, bus, metricsCollector, log)
	bookingSvc := bookingsService.NewService(
		bookingStore,
		parkingCatalog,
		pricingSvc,
		lifecycleSvc,
		clockSvc,
		bus,
		metricsCollector,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingStore,
		parkingCatalog,
		availabilitySvc,
		pricingSvc,
		walletSvc,
		clockSvc,
		bus,
		metricsCollector,
		log,
	)
	getAvailableSpacesUseCase := getAvailableSpacesUC.NewUseCase(parkingCatalog, availabilitySvc, log)

	// Инициализируем handlers
	getParkings := getParkingsHandler.NewHandler(parkingCatalog, log)
	getAvailableSpaces := getAvailableSpacesHandler.NewHandler(getAvailableSpacesUseCase, log)
	getDisabledHours := getDisabledHoursHandler.NewHandler(availabilitySvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getClock := getClockHandler.NewHandler(clockSvc, log)
	setClock := setClockHandler.NewHandler(clockSvc, log)
	getWallet := getWalletHandler.NewHandler(walletSvc, log)
	topupWallet := topupWalletHandler.NewHandler(walletSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestIDMiddleware())

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Парковки ---
	api.HandleFunc("/parkings", getParkings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/parkings/{id}/available-spaces", getAvailableSpaces.Handle).Methods(http.MethodGet)
	api.HandleFunc("/parkings/{id}/disabled-hours", getDisabledHours.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- Виртуальные часы ---
	api.HandleFunc("/clock", getClock.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clock", setClock.Handle).Methods(http.MethodPut)
	api.HandleFunc("/clock", setClock.HandleReset).Methods(http.MethodDelete)

	// --- Кошелёк ---
	api.HandleFunc("/wallet", getWallet.Handle).Methods(http.MethodGet)
	api.HandleFunc("/wallet/topup", topupWallet.Handle).Methods(http.MethodPost)

	// Планировщик статусов бронирований
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()

	sched := scheduler.New(lifecycleSvc, bus, log,
		time.Duration(cfg.Scheduler.IntervalSeconds)*time.Second)
	go func() {
		if err := sched.Run(schedulerCtx); err != nil && err != context.Canceled {
			log.Error("Scheduler stopped with error: %v", err)
		}
	}()

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	stopScheduler()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
