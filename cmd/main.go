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

	createAppointmentHandler "github.com/m04kA/PKC-SchedulerService/internal/api/handlers/create_appointment"
	createTreatmentPlanHandler "github.com/m04kA/PKC-SchedulerService/internal/api/handlers/create_treatment_plan"
	findAvailableHandler "github.com/m04kA/PKC-SchedulerService/internal/api/handlers/find_available_practitioners"
	generateSlotsHandler "github.com/m04kA/PKC-SchedulerService/internal/api/handlers/generate_slots"
	getAppointmentHandler "github.com/m04kA/PKC-SchedulerService/internal/api/handlers/get_appointment"
	getPatientAppointmentsHandler "github.com/m04kA/PKC-SchedulerService/internal/api/handlers/get_patient_appointments"
	getPatientPlansHandler "github.com/m04kA/PKC-SchedulerService/internal/api/handlers/get_patient_treatment_plans"
	getSlotsHandler "github.com/m04kA/PKC-SchedulerService/internal/api/handlers/get_slots"
	getTreatmentPlanHandler "github.com/m04kA/PKC-SchedulerService/internal/api/handlers/get_treatment_plan"
	updateSlotStatusHandler "github.com/m04kA/PKC-SchedulerService/internal/api/handlers/update_slot_status"
	"github.com/m04kA/PKC-SchedulerService/internal/api/middleware"
	"github.com/m04kA/PKC-SchedulerService/internal/config"
	appointmentRepo "github.com/m04kA/PKC-SchedulerService/internal/infra/storage/appointment"
	slotRepo "github.com/m04kA/PKC-SchedulerService/internal/infra/storage/slot"
	treatmentRepo "github.com/m04kA/PKC-SchedulerService/internal/infra/storage/treatment"
	inventoryServiceClient "github.com/m04kA/PKC-SchedulerService/internal/integrations/inventoryservice"
	staffServiceClient "github.com/m04kA/PKC-SchedulerService/internal/integrations/staffservice"
	appointmentsService "github.com/m04kA/PKC-SchedulerService/internal/service/appointments"
	plansService "github.com/m04kA/PKC-SchedulerService/internal/service/plans"
	slotsService "github.com/m04kA/PKC-SchedulerService/internal/service/slots"
	allocatePlanUC "github.com/m04kA/PKC-SchedulerService/internal/usecase/allocate_plan"
	findAvailableUC "github.com/m04kA/PKC-SchedulerService/internal/usecase/find_available"
	generateSlotsUC "github.com/m04kA/PKC-SchedulerService/internal/usecase/generate_slots"
	"github.com/m04kA/PKC-SchedulerService/pkg/dbmetrics"
	"github.com/m04kA/PKC-SchedulerService/pkg/logger"
	"github.com/m04kA/PKC-SchedulerService/pkg/metrics"
	"github.com/m04kA/PKC-SchedulerService/pkg/simpletxmanager"
	"github.com/m04kA/PKC-SchedulerService/pkg/txmanager"
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

	log.Info("Starting PKC-SchedulerService...")
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

	// Инициализируем интеграционных клиентов
	staffClient := staffServiceClient.NewClient(
		cfg.StaffService.URL,
		time.Duration(cfg.StaffService.Timeout)*time.Second,
		log,
	)
	inventoryClient := inventoryServiceClient.NewClient(
		cfg.InventoryService.URL,
		time.Duration(cfg.InventoryService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (StaffService=%s timeout=%ds, InventoryService=%s timeout=%ds)",
		cfg.StaffService.URL, cfg.StaffService.Timeout, cfg.InventoryService.URL, cfg.InventoryService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository        *slotRepo.Repository
		treatmentRepository   *treatmentRepo.Repository
		appointmentRepository *appointmentRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		treatmentRepository = treatmentRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		treatmentRepository = treatmentRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем use cases
	generateSlotsUseCase := generateSlotsUC.NewUseCase(
		slotRepository,
		staffClient,
		txMgr,
		log,
	)

	allocatePlanUseCase := allocatePlanUC.NewUseCase(
		treatmentRepository,
		staffClient,
		inventoryClient,
		txMgr,
		allocatePlanUC.FirstFitPicker{},
		log,
	)

	findAvailableUseCase := findAvailableUC.NewUseCase(
		appointmentRepository,
		staffClient,
		log,
	)

	// Инициализируем сервисы
	slotsSvc := slotsService.NewService(
		slotRepository,
		generateSlotsUseCase,
		log,
	)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		txMgr,
		log,
	)
	plansSvc := plansService.NewService(
		treatmentRepository,
		log,
	)

	// Инициализируем handlers
	generateSlots := generateSlotsHandler.NewHandler(generateSlotsUseCase, log)
	getSlots := getSlotsHandler.NewHandler(slotsSvc, log)
	updateSlotStatus := updateSlotStatusHandler.NewHandler(slotsSvc, log)
	createTreatmentPlan := createTreatmentPlanHandler.NewHandler(allocatePlanUseCase, log)
	findAvailable := findAvailableHandler.NewHandler(findAvailableUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getPatientAppointments := getPatientAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getTreatmentPlan := getTreatmentPlanHandler.NewHandler(plansSvc, log)
	getPatientPlans := getPatientPlansHandler.NewHandler(plansSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Поиск свободных врачей на дату и время
	api.HandleFunc("/slots/available", findAvailable.Handle).Methods(http.MethodPost)

	// Сетка слотов специалиста
	api.HandleFunc("/slots/{providerId}", getSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Слоты ---
	// Генерация сеток для всех специалистов
	protected.HandleFunc("/slots/generate", generateSlots.HandleAll).Methods(http.MethodPost)

	// Генерация сетки одного специалиста
	protected.HandleFunc("/slots/generate/{providerId}", generateSlots.Handle).Methods(http.MethodPost)

	// Изменение статуса слота
	protected.HandleFunc("/slots/{slotId}", updateSlotStatus.Handle).Methods(http.MethodPut)

	// --- Планы лечения ---
	// Создание плана лечения с автоматическим распределением сеансов
	protected.HandleFunc("/scheduler", createTreatmentPlan.Handle).Methods(http.MethodPost)

	// План лечения с сеансами
	protected.HandleFunc("/treatment-plans/{planId}", getTreatmentPlan.Handle).Methods(http.MethodGet)

	// Планы лечения пациента
	protected.HandleFunc("/patients/{patientId}/treatment-plans", getPatientPlans.Handle).Methods(http.MethodGet)

	// --- Записи на приём ---
	// Создание записи на приём
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Записи пациента на приём
	protected.HandleFunc("/patients/{patientId}/appointments", getPatientAppointments.Handle).Methods(http.MethodGet)

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
