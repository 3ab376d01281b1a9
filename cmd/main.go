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

	cancelBookingHandler "github.com/v-lavrov/RS-SchedulerService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/v-lavrov/RS-SchedulerService/internal/api/handlers/create_booking"
	createEmployeeHandler "github.com/v-lavrov/RS-SchedulerService/internal/api/handlers/create_employee"
	dragBookingHandler "github.com/v-lavrov/RS-SchedulerService/internal/api/handlers/drag_booking"
	getBookingHandler "github.com/v-lavrov/RS-SchedulerService/internal/api/handlers/get_booking"
	getEmployeeHandler "github.com/v-lavrov/RS-SchedulerService/internal/api/handlers/get_employee"
	getEmployeeBookingsHandler "github.com/v-lavrov/RS-SchedulerService/internal/api/handlers/get_employee_bookings"
	getScheduleGridHandler "github.com/v-lavrov/RS-SchedulerService/internal/api/handlers/get_schedule_grid"
	getScheduleTemplateHandler "github.com/v-lavrov/RS-SchedulerService/internal/api/handlers/get_schedule_template"
	listEmployeesHandler "github.com/v-lavrov/RS-SchedulerService/internal/api/handlers/list_employees"
	reassignBookingHandler "github.com/v-lavrov/RS-SchedulerService/internal/api/handlers/reassign_booking"
	saveScheduleTemplateHandler "github.com/v-lavrov/RS-SchedulerService/internal/api/handlers/save_schedule_template"
	storeSnapshotHandler "github.com/v-lavrov/RS-SchedulerService/internal/api/handlers/store_snapshot"
	updateEmployeeHandler "github.com/v-lavrov/RS-SchedulerService/internal/api/handlers/update_employee"
	"github.com/v-lavrov/RS-SchedulerService/internal/api/middleware"
	"github.com/v-lavrov/RS-SchedulerService/internal/config"
	"github.com/v-lavrov/RS-SchedulerService/internal/dragdrop"
	bookingRepo "github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/booking"
	counterRepo "github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/counter"
	employeeRepo "github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/employee"
	"github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/records"
	scheduleRepo "github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/schedule"
	scheduleServiceClient "github.com/v-lavrov/RS-SchedulerService/internal/integrations/scheduleservice"
	"github.com/v-lavrov/RS-SchedulerService/internal/schedule"
	bookingsService "github.com/v-lavrov/RS-SchedulerService/internal/service/bookings"
	employeesService "github.com/v-lavrov/RS-SchedulerService/internal/service/employees"
	schedulesService "github.com/v-lavrov/RS-SchedulerService/internal/service/schedules"
	storeService "github.com/v-lavrov/RS-SchedulerService/internal/service/store"
	createBookingUC "github.com/v-lavrov/RS-SchedulerService/internal/usecase/create_booking"
	getScheduleGridUC "github.com/v-lavrov/RS-SchedulerService/internal/usecase/get_schedule_grid"
	reassignBookingUC "github.com/v-lavrov/RS-SchedulerService/internal/usecase/reassign_booking"
	"github.com/v-lavrov/RS-SchedulerService/pkg/dbmetrics"
	"github.com/v-lavrov/RS-SchedulerService/pkg/logger"
	"github.com/v-lavrov/RS-SchedulerService/pkg/metrics"
	"github.com/v-lavrov/RS-SchedulerService/pkg/simpletxmanager"
	"github.com/v-lavrov/RS-SchedulerService/pkg/txmanager"
	"github.com/v-lavrov/RS-SchedulerService/pkg/types"
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

	log.Info("Starting RS-SchedulerService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем локальное хранилище записей
	var localStore records.Store

	switch cfg.Storage.Mode {
	case config.StorageModePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			log.Info("Database metrics collection started")
			localStore = records.NewPostgresStore(wrappedDB, txmanager.NewTransactionManager(wrappedDB))
		} else {
			localStore = records.NewPostgresStore(db, simpletxmanager.NewTransactionManager(db))
		}

	case config.StorageModeMemory:
		localStore = records.NewMemoryStore()
		log.Info("Using in-memory storage")
	}

	// Инициализируем удаленный клиент (remote-режим шлюза)
	var remoteClient records.RemoteClient
	if cfg.Storage.Remote {
		remoteClient = scheduleServiceClient.NewClient(
			cfg.ScheduleService.URL,
			cfg.ScheduleService.AuthToken,
			time.Duration(cfg.ScheduleService.Timeout)*time.Second,
			cfg.ScheduleService.RetryAttempts,
			time.Duration(cfg.ScheduleService.RetryBaseMS)*time.Millisecond,
			log,
		)
		log.Info("Remote schedule service client initialized (url=%s, timeout=%ds)",
			cfg.ScheduleService.URL, cfg.ScheduleService.Timeout)
	}

	// Шлюз хранилища: в remote-режиме записи уходят на удаленный сервис,
	// локальное хранилище служит кэшем и источником для синхронизации
	gateway := records.NewGateway(localStore, remoteClient, cfg.Storage.Remote, log)
	if gateway.RemoteMode() {
		log.Info("Storage gateway running in remote mode")
	} else {
		log.Info("Storage gateway running in local mode")
	}

	// Инициализируем типизированные репозитории поверх шлюза
	employeeRepository := employeeRepo.NewRepository(gateway)
	scheduleRepository := scheduleRepo.NewRepository(gateway)
	bookingRepository := bookingRepo.NewRepository(gateway)
	counterRepository := counterRepo.NewRepository(gateway)

	// Конфигурация визуальной сетки
	gridCfg := schedule.DefaultGridConfig()
	if cfg.Grid.DayStart != "" {
		gridCfg.DayStart = types.TimeString(cfg.Grid.DayStart)
	}
	if cfg.Grid.DayEnd != "" {
		gridCfg.DayEnd = types.TimeString(cfg.Grid.DayEnd)
	}
	if cfg.Grid.StepMinutes > 0 {
		gridCfg.StepMinutes = cfg.Grid.StepMinutes
	}
	if err := gridCfg.Validate(); err != nil {
		log.Fatal("Invalid grid configuration: %v", err)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, employeeRepository, log)
	employeeSvc := employeesService.NewService(employeeRepository, counterRepository, gateway, log)
	scheduleSvc := schedulesService.NewService(scheduleRepository, employeeRepository, counterRepository, gateway, log)
	storeSvc := storeService.NewService(gateway, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		employeeRepository,
		scheduleRepository,
		bookingRepository,
		counterRepository,
		gateway,
		log,
	)

	getScheduleGridUseCase := getScheduleGridUC.NewUseCase(
		employeeRepository,
		scheduleRepository,
		bookingRepository,
		gridCfg,
		log,
	)

	reassignBookingUseCase := reassignBookingUC.NewUseCase(
		employeeRepository,
		scheduleRepository,
		bookingRepository,
		gateway,
		log,
	)

	// Координатор перетаскивания поверх use case переноса
	dragCoordinator := dragdrop.NewCoordinator(bookingRepository, scheduleRepository, reassignBookingUseCase, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getEmployeeBookings := getEmployeeBookingsHandler.NewHandler(bookingSvc, log)
	reassignBooking := reassignBookingHandler.NewHandler(reassignBookingUseCase, log)
	getScheduleGrid := getScheduleGridHandler.NewHandler(getScheduleGridUseCase, log)
	dragBooking := dragBookingHandler.NewHandler(dragCoordinator, log)
	createEmployee := createEmployeeHandler.NewHandler(employeeSvc, log)
	listEmployees := listEmployeesHandler.NewHandler(employeeSvc, log)
	getEmployee := getEmployeeHandler.NewHandler(employeeSvc, log)
	updateEmployee := updateEmployeeHandler.NewHandler(employeeSvc, log)
	saveScheduleTemplate := saveScheduleTemplateHandler.NewHandler(scheduleSvc, log)
	getScheduleTemplate := getScheduleTemplateHandler.NewHandler(scheduleSvc, log)
	storeSnapshot := storeSnapshotHandler.NewHandler(storeSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// Сетка расписания на день
	api.HandleFunc("/schedule/grid", getScheduleGrid.Handle).Methods(http.MethodGet)

	// Список сотрудников
	api.HandleFunc("/employees", listEmployees.Handle).Methods(http.MethodGet)

	// Сотрудник по ID
	api.HandleFunc("/employees/{employeeId}", getEmployee.Handle).Methods(http.MethodGet)

	// Шаблон расписания сотрудника (с параметром date - рабочее окно на дату)
	api.HandleFunc("/employees/{employeeId}/schedule", getScheduleTemplate.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Заявки ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/reassign", reassignBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/employees/{employeeId}/bookings", getEmployeeBookings.Handle).Methods(http.MethodGet)

	// --- Перетаскивание по сетке ---
	protected.HandleFunc("/drag/begin", dragBooking.HandleBegin).Methods(http.MethodPost)
	protected.HandleFunc("/drag/hover", dragBooking.HandleHover).Methods(http.MethodPost)
	protected.HandleFunc("/drag/drop", dragBooking.HandleDrop).Methods(http.MethodPost)
	protected.HandleFunc("/drag/cancel", dragBooking.HandleCancel).Methods(http.MethodPost)

	// --- Сотрудники и расписания ---
	protected.HandleFunc("/employees", createEmployee.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/employees/{employeeId}", updateEmployee.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/employees/{employeeId}/schedule", saveScheduleTemplate.Handle).Methods(http.MethodPut)

	// --- Снимки хранилища ---
	protected.HandleFunc("/store/export", storeSnapshot.HandleExport).Methods(http.MethodGet)
	protected.HandleFunc("/store/import", storeSnapshot.HandleImport).Methods(http.MethodPost)
	protected.HandleFunc("/store/sync", storeSnapshot.HandleSync).Methods(http.MethodPost)

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
