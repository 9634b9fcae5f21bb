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

	bookingsSummaryHandler "github.com/m04kA/RMS-BookingService/internal/api/handlers/bookings_summary"
	checkClashHandler "github.com/m04kA/RMS-BookingService/internal/api/handlers/check_clash"
	createBookingHandler "github.com/m04kA/RMS-BookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/RMS-BookingService/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/m04kA/RMS-BookingService/internal/api/handlers/get_booking"
	listBookingsHandler "github.com/m04kA/RMS-BookingService/internal/api/handlers/list_bookings"
	occupancyReportHandler "github.com/m04kA/RMS-BookingService/internal/api/handlers/occupancy_report"
	updateBookingHandler "github.com/m04kA/RMS-BookingService/internal/api/handlers/update_booking"
	"github.com/m04kA/RMS-BookingService/internal/api/middleware"
	"github.com/m04kA/RMS-BookingService/internal/config"
	"github.com/m04kA/RMS-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/RMS-BookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/RMS-BookingService/internal/infra/storage/room"
	bookingsService "github.com/m04kA/RMS-BookingService/internal/service/bookings"
	reportsService "github.com/m04kA/RMS-BookingService/internal/service/reports"
	checkClashUC "github.com/m04kA/RMS-BookingService/internal/usecase/check_clash"
	createBookingUC "github.com/m04kA/RMS-BookingService/internal/usecase/create_booking"
	updateBookingUC "github.com/m04kA/RMS-BookingService/internal/usecase/update_booking"
	"github.com/m04kA/RMS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/RMS-BookingService/pkg/logger"
	"github.com/m04kA/RMS-BookingService/pkg/metrics"
	"github.com/m04kA/RMS-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/RMS-BookingService/pkg/txmanager"
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

	log.Info("Starting RMS-BookingService...")
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

	// Политика пересечения дат: по умолчанию выселение и заселение
	// в один день конфликтуют (семантика источника)
	overlapPolicy := domain.PolicyFromSameDayTurnover(cfg.Booking.SameDayTurnover)
	if cfg.Booking.SameDayTurnover {
		log.Info("Same-day turnover enabled: touching date ranges do not clash")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		roomRepository    *roomRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	reportsSvc := reportsService.NewService(bookingRepository, roomRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, txMgr, overlapPolicy, log)
	updateBookingUseCase := updateBookingUC.NewUseCase(bookingRepository, txMgr, overlapPolicy, log)
	checkClashUseCase := checkClashUC.NewUseCase(bookingRepository, overlapPolicy, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	checkClash := checkClashHandler.NewHandler(checkClashUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	occupancyReport := occupancyReportHandler.NewHandler(reportsSvc, log)
	bookingsSummary := bookingsSummaryHandler.NewHandler(reportsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"OK"}`))
	}).Methods(http.MethodGet)

	// --- Бронирования ---
	// Проверка конфликта дат (pre-flight для UI), до роутов с {bookingId}
	api.HandleFunc("/bookings/check-clash", checkClash.Handle).Methods(http.MethodPost)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список бронирований с фильтрами
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по бизнес-идентификатору
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Полное обновление бронирования
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)

	// Удаление бронирования
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Отчёты ---
	api.HandleFunc("/reports/occupancy", occupancyReport.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reports/bookings-summary", bookingsSummary.Handle).Methods(http.MethodGet)

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
