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

	cancelAppointmentHandler "github.com/consultly/booking-service/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/consultly/booking-service/internal/api/handlers/create_appointment"
	createPlanHandler "github.com/consultly/booking-service/internal/api/handlers/create_plan"
	createShiftHandler "github.com/consultly/booking-service/internal/api/handlers/create_shift"
	deleteBufferRuleHandler "github.com/consultly/booking-service/internal/api/handlers/delete_buffer_rule"
	deletePlanHandler "github.com/consultly/booking-service/internal/api/handlers/delete_plan"
	deleteShiftHandler "github.com/consultly/booking-service/internal/api/handlers/delete_shift"
	getAppointmentsHandler "github.com/consultly/booking-service/internal/api/handlers/get_appointments"
	getAvailableSlotsHandler "github.com/consultly/booking-service/internal/api/handlers/get_available_slots"
	getBookedSlotsHandler "github.com/consultly/booking-service/internal/api/handlers/get_booked_slots"
	getBufferRulesHandler "github.com/consultly/booking-service/internal/api/handlers/get_buffer_rules"
	getPlansHandler "github.com/consultly/booking-service/internal/api/handlers/get_plans"
	getShiftsHandler "github.com/consultly/booking-service/internal/api/handlers/get_shifts"
	updateAppointmentStatusHandler "github.com/consultly/booking-service/internal/api/handlers/update_appointment_status"
	updatePlanHandler "github.com/consultly/booking-service/internal/api/handlers/update_plan"
	updateShiftHandler "github.com/consultly/booking-service/internal/api/handlers/update_shift"
	upsertBufferRuleHandler "github.com/consultly/booking-service/internal/api/handlers/upsert_buffer_rule"
	"github.com/consultly/booking-service/internal/api/middleware"
	"github.com/consultly/booking-service/internal/config"
	appointmentRepo "github.com/consultly/booking-service/internal/infra/storage/appointment"
	bufferRuleRepo "github.com/consultly/booking-service/internal/infra/storage/bufferrule"
	planRepo "github.com/consultly/booking-service/internal/infra/storage/plan"
	shiftRepo "github.com/consultly/booking-service/internal/infra/storage/shift"
	appointmentsService "github.com/consultly/booking-service/internal/service/appointments"
	bufferRulesService "github.com/consultly/booking-service/internal/service/bufferrules"
	plansService "github.com/consultly/booking-service/internal/service/plans"
	shiftsService "github.com/consultly/booking-service/internal/service/shifts"
	createAppointmentUC "github.com/consultly/booking-service/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/consultly/booking-service/internal/usecase/get_available_slots"
	"github.com/consultly/booking-service/pkg/logger"
	"github.com/consultly/booking-service/pkg/metrics"
	"github.com/consultly/booking-service/pkg/txmanager"
)

const dbPoolStatsInterval = 15 * time.Second

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

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
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

	if cfg.Metrics.Enabled {
		go metricsCollector.CollectDBPool(db, dbPoolStatsInterval, stopMetricsCh)
		log.Info("Database pool metrics collection started")
	}

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(db)
	shiftRepository := shiftRepo.NewRepository(db)
	planRepository := planRepo.NewRepository(db)
	bufferRuleRepository := bufferRuleRepo.NewRepository(db)

	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	shiftsSvc := shiftsService.NewService(shiftRepository, bufferRuleRepository, log)
	plansSvc := plansService.NewService(planRepository, log)
	bufferRulesSvc := bufferRulesService.NewService(bufferRuleRepository, planRepository, shiftRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		planRepository,
		shiftRepository,
		bufferRuleRepository,
		appointmentRepository,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		planRepository,
		shiftRepository,
		bufferRuleRepository,
		appointmentRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getBookedSlots := getBookedSlotsHandler.NewHandler(appointmentsSvc, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getPlans := getPlansHandler.NewHandler(plansSvc, log)
	createPlan := createPlanHandler.NewHandler(plansSvc, log)
	updatePlan := updatePlanHandler.NewHandler(plansSvc, log)
	deletePlan := deletePlanHandler.NewHandler(plansSvc, log)
	getShifts := getShiftsHandler.NewHandler(shiftsSvc, log)
	createShift := createShiftHandler.NewHandler(shiftsSvc, log)
	updateShift := updateShiftHandler.NewHandler(shiftsSvc, log)
	deleteShift := deleteShiftHandler.NewHandler(shiftsSvc, log)
	getBufferRules := getBufferRulesHandler.NewHandler(bufferRulesSvc, log)
	upsertBufferRule := upsertBufferRuleHandler.NewHandler(bufferRulesSvc, log)
	deleteBufferRule := deleteBufferRuleHandler.NewHandler(bufferRulesSvc, log)

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
	// PUBLIC ROUTES (без аутентификации, консультант задаётся ?adminId=)
	// ============================================================

	// Планы консультанта для страницы бронирования
	api.HandleFunc("/plans", getPlans.Handle).Methods(http.MethodGet)

	// Доступные слоты плана на дату
	api.HandleFunc("/plans/{planId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Занятые слоты на дату (для календаря клиента)
	api.HandleFunc("/appointments/booked-slots/{date}", getBookedSlots.Handle).Methods(http.MethodGet)

	// Создание записи клиентом
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID и X-User-Role headers)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth)

	// --- Записи ---
	admin.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// --- Планы ---
	admin.HandleFunc("/plans", getPlans.HandleAdmin).Methods(http.MethodGet)
	admin.HandleFunc("/plans", createPlan.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/plans/{planId}", updatePlan.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/plans/{planId}", deletePlan.Handle).Methods(http.MethodDelete)

	// --- Смены ---
	admin.HandleFunc("/shifts", getShifts.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/shifts", createShift.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/shifts/{shiftId}", updateShift.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/shifts/{shiftId}", deleteShift.Handle).Methods(http.MethodDelete)

	// --- Правила буферов план-смена ---
	admin.HandleFunc("/plan-shift-buffer-rules", getBufferRules.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/plan-shift-buffer-rules", upsertBufferRule.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/plan-shift-buffer-rules/{ruleId}", deleteBufferRule.Handle).Methods(http.MethodDelete)

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
