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

	cancelAppointmentHandler "github.com/m04kA/NLS-BookingService/internal/api/handlers/cancel_appointment"
	cancellationPolicyHandler "github.com/m04kA/NLS-BookingService/internal/api/handlers/cancellation_policy"
	completeAppointmentHandler "github.com/m04kA/NLS-BookingService/internal/api/handlers/complete_appointment"
	createAppointmentHandler "github.com/m04kA/NLS-BookingService/internal/api/handlers/create_appointment"
	createReviewHandler "github.com/m04kA/NLS-BookingService/internal/api/handlers/create_review"
	getAppointmentHandler "github.com/m04kA/NLS-BookingService/internal/api/handlers/get_appointment"
	getAvailableDatesHandler "github.com/m04kA/NLS-BookingService/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/m04kA/NLS-BookingService/internal/api/handlers/get_available_slots"
	getClientAppointmentsHandler "github.com/m04kA/NLS-BookingService/internal/api/handlers/get_client_appointments"
	getClientReviewsHandler "github.com/m04kA/NLS-BookingService/internal/api/handlers/get_client_reviews"
	getReviewsHandler "github.com/m04kA/NLS-BookingService/internal/api/handlers/get_reviews"
	getScheduleHandler "github.com/m04kA/NLS-BookingService/internal/api/handlers/get_schedule"
	getServicesHandler "github.com/m04kA/NLS-BookingService/internal/api/handlers/get_services"
	getStatsHandler "github.com/m04kA/NLS-BookingService/internal/api/handlers/get_stats"
	manageBlockedDatesHandler "github.com/m04kA/NLS-BookingService/internal/api/handlers/manage_blocked_dates"
	managePromosHandler "github.com/m04kA/NLS-BookingService/internal/api/handlers/manage_promos"
	manageServicesHandler "github.com/m04kA/NLS-BookingService/internal/api/handlers/manage_services"
	updateScheduleHandler "github.com/m04kA/NLS-BookingService/internal/api/handlers/update_schedule"
	validatePromoHandler "github.com/m04kA/NLS-BookingService/internal/api/handlers/validate_promo"
	"github.com/m04kA/NLS-BookingService/internal/api/middleware"
	"github.com/m04kA/NLS-BookingService/internal/config"
	appointmentRepo "github.com/m04kA/NLS-BookingService/internal/infra/storage/appointment"
	promoRepo "github.com/m04kA/NLS-BookingService/internal/infra/storage/promo"
	reviewRepo "github.com/m04kA/NLS-BookingService/internal/infra/storage/review"
	scheduleRepo "github.com/m04kA/NLS-BookingService/internal/infra/storage/schedule"
	serviceRepo "github.com/m04kA/NLS-BookingService/internal/infra/storage/service"
	settingsRepo "github.com/m04kA/NLS-BookingService/internal/infra/storage/settings"
	appointmentsService "github.com/m04kA/NLS-BookingService/internal/service/appointments"
	catalogService "github.com/m04kA/NLS-BookingService/internal/service/catalog"
	promosService "github.com/m04kA/NLS-BookingService/internal/service/promos"
	reviewsService "github.com/m04kA/NLS-BookingService/internal/service/reviews"
	scheduleService "github.com/m04kA/NLS-BookingService/internal/service/schedule"
	settingsService "github.com/m04kA/NLS-BookingService/internal/service/settings"
	statsService "github.com/m04kA/NLS-BookingService/internal/service/stats"
	createAppointmentUC "github.com/m04kA/NLS-BookingService/internal/usecase/create_appointment"
	getAvailableDatesUC "github.com/m04kA/NLS-BookingService/internal/usecase/get_available_dates"
	getAvailableSlotsUC "github.com/m04kA/NLS-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/NLS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/NLS-BookingService/pkg/logger"
	"github.com/m04kA/NLS-BookingService/pkg/metrics"
	"github.com/m04kA/NLS-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/NLS-BookingService/pkg/txmanager"
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

	log.Info("Starting NLS-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем репозитории (с метриками или без)
	var (
		scheduleRepository    *scheduleRepo.Repository
		serviceRepository     *serviceRepo.Repository
		appointmentRepository *appointmentRepo.Repository
		promoRepository       *promoRepo.Repository
		reviewRepository      *reviewRepo.Repository
		settingsRepository    *settingsRepo.Repository
	)

	// Интерфейс менеджера транзакций для usecases
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		promoRepository = promoRepo.NewRepository(wrappedDB)
		reviewRepository = reviewRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		scheduleRepository = scheduleRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		promoRepository = promoRepo.NewRepository(db)
		reviewRepository = reviewRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	timeProvider := &createAppointmentUC.RealTimeProvider{}

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)
	promosSvc := promosService.NewService(promoRepository, log)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		settingsRepository,
		&appointmentsService.RealTimeProvider{},
		log,
	)
	reviewsSvc := reviewsService.NewService(reviewRepository, appointmentRepository, log)
	statsSvc := statsService.NewService(appointmentRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	// Инициализируем use cases
	getAvailableDatesUseCase := getAvailableDatesUC.NewUsecase(
		scheduleRepository,
		&getAvailableDatesUC.RealTimeProvider{},
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUsecase(
		scheduleRepository,
		serviceRepository,
		appointmentRepository,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUsecase(
		scheduleRepository,
		serviceRepository,
		appointmentRepository,
		promoRepository,
		txMgr,
		timeProvider,
		log,
	)

	// Инициализируем handlers
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(appointmentsSvc, log)
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	manageServices := manageServicesHandler.NewHandler(catalogSvc, log)
	validatePromo := validatePromoHandler.NewHandler(promosSvc, log)
	managePromos := managePromosHandler.NewHandler(promosSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)
	manageBlockedDates := manageBlockedDatesHandler.NewHandler(scheduleSvc, log)
	createReview := createReviewHandler.NewHandler(reviewsSvc, log)
	getReviews := getReviewsHandler.NewHandler(reviewsSvc, log)
	getClientReviews := getClientReviewsHandler.NewHandler(reviewsSvc, log)
	getStats := getStatsHandler.NewHandler(statsSvc, log)
	cancellationPolicy := cancellationPolicyHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог активных услуг
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)

	// Недельное расписание салона
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Даты, доступные для записи
	api.HandleFunc("/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)

	// Свободные слоты на дату под услугу
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Условия отмены записей
	api.HandleFunc("/cancellation-policy", cancellationPolicy.HandleGet).Methods(http.MethodGet)

	// Отзывы клиентов
	api.HandleFunc("/reviews", getReviews.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Проверка промокода перед записью
	protected.HandleFunc("/promos/validate", validatePromo.Handle).Methods(http.MethodPost)

	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// История записей клиента
	protected.HandleFunc("/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Отзыв о завершенной записи
	protected.HandleFunc("/reviews", createReview.Handle).Methods(http.MethodPost)

	// Отзывы клиента
	protected.HandleFunc("/reviews/my", getClientReviews.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-Role: admin)
	// ============================================================

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminOnly)

	// Управление расписанием
	admin.HandleFunc("/schedule", updateSchedule.Handle).Methods(http.MethodPut)

	// Заблокированные даты
	admin.HandleFunc("/blocked-dates", manageBlockedDates.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/blocked-dates", manageBlockedDates.HandleAdd).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-dates/{dateId}", manageBlockedDates.HandleRemove).Methods(http.MethodDelete)

	// Каталог услуг
	admin.HandleFunc("/services", manageServices.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/services", manageServices.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/services/{serviceId}", manageServices.HandleGet).Methods(http.MethodGet)
	admin.HandleFunc("/services/{serviceId}", manageServices.HandleUpdate).Methods(http.MethodPatch)
	admin.HandleFunc("/services/{serviceId}", manageServices.HandleDelete).Methods(http.MethodDelete)

	// Промокоды
	admin.HandleFunc("/promos", managePromos.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/promos", managePromos.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/promos/{promoId}", managePromos.HandleGet).Methods(http.MethodGet)
	admin.HandleFunc("/promos/{promoId}", managePromos.HandleUpdate).Methods(http.MethodPatch)
	admin.HandleFunc("/promos/{promoId}", managePromos.HandleDelete).Methods(http.MethodDelete)

	// Завершение записи
	admin.HandleFunc("/appointments/{appointmentId}/complete", completeAppointment.Handle).Methods(http.MethodPatch)

	// Статистика
	admin.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)

	// Политика отмены
	admin.HandleFunc("/cancellation-policy", cancellationPolicy.HandleUpdate).Methods(http.MethodPut)

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

	log.Info("Server stopped")
}
