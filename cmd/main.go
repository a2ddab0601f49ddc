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

	cancelBookingHandler "github.com/akholodov/salon-booking-service/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/akholodov/salon-booking-service/internal/api/handlers/confirm_booking"
	createBlockHandler "github.com/akholodov/salon-booking-service/internal/api/handlers/create_block"
	createBookingHandler "github.com/akholodov/salon-booking-service/internal/api/handlers/create_booking"
	deleteBlockHandler "github.com/akholodov/salon-booking-service/internal/api/handlers/delete_block"
	getAvailableSlotsHandler "github.com/akholodov/salon-booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/akholodov/salon-booking-service/internal/api/handlers/get_booking"
	getClientBookingsHandler "github.com/akholodov/salon-booking-service/internal/api/handlers/get_client_bookings"
	getSlotConfigHandler "github.com/akholodov/salon-booking-service/internal/api/handlers/get_slot_config"
	getStaffBookingsHandler "github.com/akholodov/salon-booking-service/internal/api/handlers/get_staff_bookings"
	getStaffScheduleHandler "github.com/akholodov/salon-booking-service/internal/api/handlers/get_staff_schedule"
	listBlocksHandler "github.com/akholodov/salon-booking-service/internal/api/handlers/list_blocks"
	updateBookingStatusHandler "github.com/akholodov/salon-booking-service/internal/api/handlers/update_booking_status"
	updateSlotConfigHandler "github.com/akholodov/salon-booking-service/internal/api/handlers/update_slot_config"
	updateStaffScheduleHandler "github.com/akholodov/salon-booking-service/internal/api/handlers/update_staff_schedule"
	"github.com/akholodov/salon-booking-service/internal/api/middleware"
	"github.com/akholodov/salon-booking-service/internal/config"
	"github.com/akholodov/salon-booking-service/internal/database"
	blockRepo "github.com/akholodov/salon-booking-service/internal/infra/storage/block"
	bookingRepo "github.com/akholodov/salon-booking-service/internal/infra/storage/booking"
	salonRepo "github.com/akholodov/salon-booking-service/internal/infra/storage/salon"
	scheduleRepo "github.com/akholodov/salon-booking-service/internal/infra/storage/schedule"
	staffRepo "github.com/akholodov/salon-booking-service/internal/infra/storage/staff"
	catalogServiceClient "github.com/akholodov/salon-booking-service/internal/integrations/catalogservice"
	bookingsService "github.com/akholodov/salon-booking-service/internal/service/bookings"
	configService "github.com/akholodov/salon-booking-service/internal/service/config"
	scheduleService "github.com/akholodov/salon-booking-service/internal/service/schedule"
	confirmBookingUC "github.com/akholodov/salon-booking-service/internal/usecase/confirm_booking"
	createBookingUC "github.com/akholodov/salon-booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/akholodov/salon-booking-service/internal/usecase/get_available_slots"
	"github.com/akholodov/salon-booking-service/pkg/dbmetrics"
	"github.com/akholodov/salon-booking-service/pkg/logger"
	"github.com/akholodov/salon-booking-service/pkg/metrics"
	"github.com/akholodov/salon-booking-service/pkg/simpletxmanager"
	"github.com/akholodov/salon-booking-service/pkg/txmanager"
)

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

	log.Info("Starting salon-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Применяем миграции схемы
	if err := database.Migrate(cfg.Database); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент каталога услуг
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Catalog service client initialized (url=%s, timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		blockRepository    *blockRepo.Repository
		staffRepository    *staffRepo.Repository
		salonRepository    *salonRepo.Repository
	)

	// Интерфейс transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		blockRepository = blockRepo.NewRepository(wrappedDB)
		staffRepository = staffRepo.NewRepository(wrappedDB)
		salonRepository = salonRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		blockRepository = blockRepo.NewRepository(db)
		staffRepository = staffRepo.NewRepository(db)
		salonRepository = salonRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		staffRepository,
		log,
	)
	slotConfigSvc := configService.NewService(
		staffRepository,
		catalogClient,
		cfg.Booking.DefaultGranularityMinutes,
		cfg.Booking.MinGranularityMinutes,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		blockRepository,
		staffRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		scheduleRepository,
		blockRepository,
		bookingRepository,
		staffRepository,
		salonRepository,
		catalogClient,
		slotConfigSvc,
		cfg.Booking.MinNoticeMinutes,
		cfg.Booking.AdvanceBookingDays,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		blockRepository,
		staffRepository,
		salonRepository,
		catalogClient,
		txMgr,
		cfg.Booking.MinNoticeMinutes,
		cfg.Booking.AdvanceBookingDays,
		time.Duration(cfg.Booking.ReserveTimeoutSeconds)*time.Second,
		log,
	)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		bookingRepository,
		staffRepository,
		salonRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)
	getStaffBookings := getStaffBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getStaffSchedule := getStaffScheduleHandler.NewHandler(scheduleSvc, log)
	updateStaffSchedule := updateStaffScheduleHandler.NewHandler(scheduleSvc, log)
	createBlock := createBlockHandler.NewHandler(scheduleSvc, log)
	deleteBlock := deleteBlockHandler.NewHandler(scheduleSvc, log)
	listBlocks := listBlocksHandler.NewHandler(scheduleSvc, log)
	getSlotConfig := getSlotConfigHandler.NewHandler(slotConfigSvc, log)
	updateSlotConfig := updateSlotConfigHandler.NewHandler(slotConfigSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	// Auth пропускает анонимные запросы: handlers сами решают,
	// обязателен ли X-User-ID для конкретной операции
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Доступные слоты ---
	api.HandleFunc("/salons/{salonId}/staff/{staffId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Записи ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- История записей ---
	api.HandleFunc("/users/me/bookings", getClientBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff/{staffId}/bookings", getStaffBookings.Handle).Methods(http.MethodGet)

	// --- Расписание мастера ---
	api.HandleFunc("/staff/{staffId}/schedule", getStaffSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff/{staffId}/schedule", updateStaffSchedule.Handle).Methods(http.MethodPut)

	// --- Блокировки времени ---
	api.HandleFunc("/staff/{staffId}/blocks", listBlocks.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff/{staffId}/blocks", createBlock.Handle).Methods(http.MethodPost)
	api.HandleFunc("/staff/{staffId}/blocks/{blockId}", deleteBlock.Handle).Methods(http.MethodDelete)

	// --- Конфигурация сетки слотов ---
	api.HandleFunc("/staff/{staffId}/slot-config", getSlotConfig.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff/{staffId}/slot-config", updateSlotConfig.Handle).Methods(http.MethodPut)

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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
