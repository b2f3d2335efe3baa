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

	cancelBookingHandler "github.com/Aryan-Wadhawan/masaje-app/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/Aryan-Wadhawan/masaje-app/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/Aryan-Wadhawan/masaje-app/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/Aryan-Wadhawan/masaje-app/internal/api/handlers/get_booking"
	getCustomerBookingsHandler "github.com/Aryan-Wadhawan/masaje-app/internal/api/handlers/get_customer_bookings"
	getLocationBookingsHandler "github.com/Aryan-Wadhawan/masaje-app/internal/api/handlers/get_location_bookings"
	getLocationConfigHandler "github.com/Aryan-Wadhawan/masaje-app/internal/api/handlers/get_location_config"
	getServicesHandler "github.com/Aryan-Wadhawan/masaje-app/internal/api/handlers/get_services"
	getTherapistScheduleHandler "github.com/Aryan-Wadhawan/masaje-app/internal/api/handlers/get_therapist_schedule"
	getWorkingTherapistsHandler "github.com/Aryan-Wadhawan/masaje-app/internal/api/handlers/get_working_therapists"
	updateBookingStatusHandler "github.com/Aryan-Wadhawan/masaje-app/internal/api/handlers/update_booking_status"
	updateLocationConfigHandler "github.com/Aryan-Wadhawan/masaje-app/internal/api/handlers/update_location_config"
	upsertScheduleEntryHandler "github.com/Aryan-Wadhawan/masaje-app/internal/api/handlers/upsert_schedule_entry"
	"github.com/Aryan-Wadhawan/masaje-app/internal/api/middleware"
	"github.com/Aryan-Wadhawan/masaje-app/internal/config"
	bookingRepo "github.com/Aryan-Wadhawan/masaje-app/internal/infra/storage/booking"
	configRepo "github.com/Aryan-Wadhawan/masaje-app/internal/infra/storage/config"
	scheduleRepo "github.com/Aryan-Wadhawan/masaje-app/internal/infra/storage/schedule"
	serviceRepo "github.com/Aryan-Wadhawan/masaje-app/internal/infra/storage/service"
	therapistRepo "github.com/Aryan-Wadhawan/masaje-app/internal/infra/storage/therapist"
	bookingsService "github.com/Aryan-Wadhawan/masaje-app/internal/service/bookings"
	catalogService "github.com/Aryan-Wadhawan/masaje-app/internal/service/catalog"
	schedulesService "github.com/Aryan-Wadhawan/masaje-app/internal/service/schedules"
	slotconfigService "github.com/Aryan-Wadhawan/masaje-app/internal/service/slotconfig"
	createBookingUC "github.com/Aryan-Wadhawan/masaje-app/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/Aryan-Wadhawan/masaje-app/internal/usecase/get_available_slots"
	"github.com/Aryan-Wadhawan/masaje-app/pkg/dbmetrics"
	"github.com/Aryan-Wadhawan/masaje-app/pkg/logger"
	"github.com/Aryan-Wadhawan/masaje-app/pkg/metrics"
	"github.com/Aryan-Wadhawan/masaje-app/pkg/simpletxmanager"
	"github.com/Aryan-Wadhawan/masaje-app/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting masaje booking service...")

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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
	log.Info("Connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var (
		bookingRepository   *bookingRepo.Repository
		scheduleRepository  *scheduleRepo.Repository
		therapistRepository *therapistRepo.Repository
		serviceRepository   *serviceRepo.Repository
		configRepository    *configRepo.Repository
		txMgr               createBookingUC.TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		therapistRepository = therapistRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		configRepository = configRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		therapistRepository = therapistRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		configRepository = configRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	bookingSvc := bookingsService.NewService(bookingRepository, log)
	scheduleSvc := schedulesService.NewService(therapistRepository, scheduleRepository, log)
	slotConfigSvc := slotconfigService.NewService(configRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		therapistRepository,
		scheduleRepository,
		configRepository,
		bookingRepository,
		serviceRepository,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		therapistRepository,
		scheduleRepository,
		configRepository,
		bookingRepository,
		serviceRepository,
		log,
	)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	getLocationBookings := getLocationBookingsHandler.NewHandler(bookingSvc, log)
	getWorkingTherapists := getWorkingTherapistsHandler.NewHandler(scheduleSvc, log)
	getTherapistSchedule := getTherapistScheduleHandler.NewHandler(scheduleSvc, log)
	upsertScheduleEntry := upsertScheduleEntryHandler.NewHandler(scheduleSvc, log)
	getLocationConfig := getLocationConfigHandler.NewHandler(slotConfigSvc, log)
	updateLocationConfig := updateLocationConfigHandler.NewHandler(slotConfigSvc, log)
	getServices := getServicesHandler.NewHandler(catalogSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: anything a customer reaches directly.
	api.HandleFunc("/locations/{locationId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/locations/{locationId}/therapists/working", getWorkingTherapists.Handle).Methods(http.MethodGet)
	api.HandleFunc("/locations/{locationId}/config", getLocationConfig.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{reference}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{reference}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Staff routes: branch administration behind the staff header.
	staff := api.PathPrefix("").Subrouter()
	staff.Use(middleware.StaffAuth(log))
	staff.HandleFunc("/bookings/{reference}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/locations/{locationId}/bookings", getLocationBookings.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/therapists/{therapistId}/schedule", getTherapistSchedule.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/therapists/{therapistId}/schedule", upsertScheduleEntry.Handle).Methods(http.MethodPut)
	staff.HandleFunc("/locations/{locationId}/config", updateLocationConfig.Handle).Methods(http.MethodPut)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
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
