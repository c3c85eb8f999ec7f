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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	assignStaffHandler "github.com/m04kA/SMC-NurseryService/internal/api/handlers/assign_staff"
	blockSlotHandler "github.com/m04kA/SMC-NurseryService/internal/api/handlers/block_slot"
	cancelBookingHandler "github.com/m04kA/SMC-NurseryService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-NurseryService/internal/api/handlers/create_booking"
	createChildHandler "github.com/m04kA/SMC-NurseryService/internal/api/handlers/create_child"
	createSlotHandler "github.com/m04kA/SMC-NurseryService/internal/api/handlers/create_slot"
	createStaffHandler "github.com/m04kA/SMC-NurseryService/internal/api/handlers/create_staff"
	deleteStaffHandler "github.com/m04kA/SMC-NurseryService/internal/api/handlers/delete_staff"
	evaluateComplianceHandler "github.com/m04kA/SMC-NurseryService/internal/api/handlers/evaluate_compliance"
	exportOccupancyHandler "github.com/m04kA/SMC-NurseryService/internal/api/handlers/export_occupancy"
	getAvailableSlotsHandler "github.com/m04kA/SMC-NurseryService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-NurseryService/internal/api/handlers/get_booking"
	getOccupancyHandler "github.com/m04kA/SMC-NurseryService/internal/api/handlers/get_occupancy"
	getSlotHandler "github.com/m04kA/SMC-NurseryService/internal/api/handlers/get_slot"
	getSlotBookingsHandler "github.com/m04kA/SMC-NurseryService/internal/api/handlers/get_slot_bookings"
	getSlotComplianceHandler "github.com/m04kA/SMC-NurseryService/internal/api/handlers/get_slot_compliance"
	getStaffHandler "github.com/m04kA/SMC-NurseryService/internal/api/handlers/get_staff"
	getUserBookingsHandler "github.com/m04kA/SMC-NurseryService/internal/api/handlers/get_user_bookings"
	getUserChildrenHandler "github.com/m04kA/SMC-NurseryService/internal/api/handlers/get_user_children"
	listSlotsHandler "github.com/m04kA/SMC-NurseryService/internal/api/handlers/list_slots"
	listStaffHandler "github.com/m04kA/SMC-NurseryService/internal/api/handlers/list_staff"
	unassignStaffHandler "github.com/m04kA/SMC-NurseryService/internal/api/handlers/unassign_staff"
	updateStaffHandler "github.com/m04kA/SMC-NurseryService/internal/api/handlers/update_staff"
	"github.com/m04kA/SMC-NurseryService/internal/api/middleware"
	"github.com/m04kA/SMC-NurseryService/internal/config"
	"github.com/m04kA/SMC-NurseryService/internal/infra/cache/slotcompliance"
	bookingRepo "github.com/m04kA/SMC-NurseryService/internal/infra/storage/booking"
	childRepo "github.com/m04kA/SMC-NurseryService/internal/infra/storage/child"
	scheduleRepo "github.com/m04kA/SMC-NurseryService/internal/infra/storage/schedule"
	slotRepo "github.com/m04kA/SMC-NurseryService/internal/infra/storage/slot"
	staffRepo "github.com/m04kA/SMC-NurseryService/internal/infra/storage/staff"
	bookingsService "github.com/m04kA/SMC-NurseryService/internal/service/bookings"
	childrenService "github.com/m04kA/SMC-NurseryService/internal/service/children"
	slotsService "github.com/m04kA/SMC-NurseryService/internal/service/slots"
	staffService "github.com/m04kA/SMC-NurseryService/internal/service/staff"
	createBookingUC "github.com/m04kA/SMC-NurseryService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-NurseryService/internal/usecase/get_available_slots"
	getOccupancyUC "github.com/m04kA/SMC-NurseryService/internal/usecase/get_occupancy"
	getSlotComplianceUC "github.com/m04kA/SMC-NurseryService/internal/usecase/get_slot_compliance"
	"github.com/m04kA/SMC-NurseryService/pkg/dbmetrics"
	"github.com/m04kA/SMC-NurseryService/pkg/logger"
	"github.com/m04kA/SMC-NurseryService/pkg/metrics"
	"github.com/m04kA/SMC-NurseryService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if path, ok := os.LookupEnv("CONFIG_PATH"); ok {
		configPath = path
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.NewWithFormat(cfg.Logs.File, cfg.Logs.Level, cfg.Logs.Format)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-NurseryService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	// Методы *metrics.Metrics безопасны для nil, поэтому выключенные метрики просто не пишутся
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Кэш результатов проверки соотношений
	var kv slotcompliance.KVStore = slotcompliance.NopKVStore{}
	if cfg.Cache.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			// Без Redis сервис работает, каждый запрос считает соотношения заново
			log.Warn("Redis is unavailable at %s, compliance cache disabled: %v", cfg.Redis.Addr, err)
		} else {
			kv = slotcompliance.NewRedisKVStore(redisClient)
			log.Info("Compliance cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Cache.ComplianceTTLSecs)
		}
		cancelPing()
	}
	complianceCache := slotcompliance.NewCache(kv, time.Duration(cfg.Cache.ComplianceTTLSecs)*time.Second)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	slotRepository := slotRepo.NewRepository(wrappedDB)
	childRepository := childRepo.NewRepository(wrappedDB)
	staffRepository := staffRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		slotRepository,
		complianceCache,
		txMgr,
		log,
	)
	slotSvc := slotsService.NewService(slotRepository, log)
	childSvc := childrenService.NewService(childRepository, log)
	staffSvc := staffService.NewService(
		staffRepository,
		scheduleRepository,
		complianceCache,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		childRepository,
		slotRepository,
		staffRepository,
		complianceCache,
		metricsCollector,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		slotRepository,
		staffRepository,
		bookingRepository,
		childRepository,
		log,
	)

	getSlotComplianceUseCase := getSlotComplianceUC.NewUseCase(
		slotRepository,
		staffRepository,
		bookingRepository,
		complianceCache,
		metricsCollector,
		log,
	)

	getOccupancyUseCase := getOccupancyUC.NewUseCase(
		slotRepository,
		staffRepository,
		bookingRepository,
		txMgr,
		metricsCollector,
		cfg.Booking.MaxOccupancyRangeDays,
		log,
	)

	// Инициализируем handlers
	evaluateCompliance := evaluateComplianceHandler.NewHandler(log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createChild := createChildHandler.NewHandler(childSvc, log)
	getUserChildren := getUserChildrenHandler.NewHandler(childSvc, log)

	listSlots := listSlotsHandler.NewHandler(slotSvc, log)
	getSlot := getSlotHandler.NewHandler(slotSvc, log)
	createSlot := createSlotHandler.NewHandler(slotSvc, log)
	blockSlot := blockSlotHandler.NewHandler(slotSvc, log)
	getSlotBookings := getSlotBookingsHandler.NewHandler(bookingSvc, log)
	getSlotCompliance := getSlotComplianceHandler.NewHandler(getSlotComplianceUseCase, log)
	assignStaff := assignStaffHandler.NewHandler(staffSvc, log)
	unassignStaff := unassignStaffHandler.NewHandler(staffSvc, log)

	listStaff := listStaffHandler.NewHandler(staffSvc, log)
	getStaff := getStaffHandler.NewHandler(staffSvc, log)
	createStaff := createStaffHandler.NewHandler(staffSvc, log)
	updateStaff := updateStaffHandler.NewHandler(staffSvc, log)
	deleteStaff := deleteStaffHandler.NewHandler(staffSvc, log)

	getOccupancy := getOccupancyHandler.NewHandler(getOccupancyUseCase, log)
	exportOccupancy := exportOccupancyHandler.NewHandler(getOccupancyUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Расчёт соотношений для произвольной смены
	api.HandleFunc("/compliance/evaluate", evaluateCompliance.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Дети ---
	protected.HandleFunc("/children", createChild.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users/{userId}/children", getUserChildren.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Доступные слоты (регистрируется до /slots/{slotId})
	protected.HandleFunc("/slots/available", getAvailableSlots.Handle).Methods(http.MethodGet)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Слоты (просмотр для всех авторизованных) ---
	protected.HandleFunc("/slots", listSlots.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/slots/{slotId}", getSlot.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-Role: admin)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Auth, middleware.RequireAdmin)

	// --- Слоты ---
	admin.HandleFunc("/slots", createSlot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/slots/{slotId}/block", blockSlot.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/slots/{slotId}/bookings", getSlotBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/slots/{slotId}/compliance", getSlotCompliance.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/slots/{slotId}/staff", assignStaff.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/slots/{slotId}/staff/{staffId}", unassignStaff.Handle).Methods(http.MethodDelete)

	// --- Сотрудники ---
	admin.HandleFunc("/staff", listStaff.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/staff", createStaff.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/staff/{staffId}", getStaff.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/staff/{staffId}", updateStaff.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/staff/{staffId}", deleteStaff.Handle).Methods(http.MethodDelete)

	// --- Загрузка ---
	admin.HandleFunc("/occupancy", getOccupancy.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/occupancy/export", exportOccupancy.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор статистики connection pool
	close(stopMetricsCh)

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
