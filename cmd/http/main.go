package main

import (
	"carehome-service/internal/app/config"
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/app/delivery/http/controllers"
	"carehome-service/internal/app/delivery/http/middlewares"
	"carehome-service/internal/app/delivery/http/routers"
	"carehome-service/internal/app/drivers/database"
	"carehome-service/internal/app/drivers/logger"
	"carehome-service/internal/app/drivers/messaging"
	"carehome-service/internal/app/drivers/storage"
	"carehome-service/internal/app/observability/metrics"
	"carehome-service/internal/app/services/care_api"
	"carehome-service/internal/app/services/core/auth"
	"carehome-service/internal/app/services/core/combinations"
	"carehome-service/internal/app/services/core/diagnoses"
	"carehome-service/internal/app/services/core/inventory"
	"carehome-service/internal/app/services/core/notifications"
	"carehome-service/internal/app/services/core/patients"
	"carehome-service/internal/app/services/core/reserves"
	"carehome-service/internal/app/services/core/specifications"
	"carehome-service/internal/app/services/shared/cache"
	"carehome-service/internal/app/services/shared/events"
	"carehome-service/internal/app/services/shared/exporter"
	"carehome-service/internal/app/services/shared/invalidation"
	"carehome-service/internal/app/services/shared/redis"
	exportStorage "carehome-service/internal/app/services/shared/storage"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	metrics.Init()

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if internalConfig.Cache.Enabled {
		bootstrap.Redis = database.NewRedisClient(driverConfig)
	}
	if internalConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}
	if internalConfig.Minio.Enabled {
		bootstrap.Minio = storage.NewMinio(driverConfig, internalConfig)
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server started", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release drivers", zap.Error(err))
	}

	fmt.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Care backend
	transport := care_api.NewTransport(care_api.TransportConfig{
		BaseUrl:           internalConfig.Care.BaseUrl,
		Timeout:           time.Duration(internalConfig.Care.RequestTimeoutInSeconds) * time.Second,
		RequestsPerSecond: internalConfig.Care.OutboundRequestsPerSecond,
		Burst:             internalConfig.Care.OutboundBurst,
	}, log)
	authClient := care_api.NewAuthClient(transport, log)

	// Cache
	var queryCache contracts.QueryCache
	if bootstrap.Redis != nil {
		redisRepository := redis.NewRedisRepository(bootstrap.Redis)
		queryCache = cache.NewQueryCache(redisRepository, time.Duration(internalConfig.Cache.TTLInSeconds)*time.Second, log)
	}

	// Mutation events
	publisher := events.NewNoopPublisher()
	if bootstrap.RabbitMQ != nil {
		rabbitPublisher, err := events.NewRabbitMQPublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.MutationQueue)
		if err != nil {
			return err
		}
		publisher = rabbitPublisher
	}
	invalidator := invalidation.NewInvalidator(queryCache, publisher, log)

	// Exports
	var specificationExportStorage contracts.ExportStorage
	if bootstrap.Minio != nil {
		specificationExportStorage = exportStorage.NewMinioExportStorage(bootstrap.Minio, internalConfig.Minio.BucketName)
	}

	// Usecases
	authUsecase := auth.NewAuthUsecase(log)
	patientUsecase := patients.NewPatientUsecase(care_api.NewPatientCareClient(transport, log), queryCache, invalidator, log)
	inventoryUsecase := inventory.NewInventoryUsecase(care_api.NewInventoryCareClient(transport, log), queryCache, invalidator, log)
	diagnosisUsecase := diagnoses.NewDiagnosisUsecase(care_api.NewDiagnosisCareClient(transport, log), queryCache, invalidator, log)
	reserveUsecase := reserves.NewReserveUsecase(care_api.NewReserveCareClient(transport, log), queryCache, invalidator, log)
	combinationUsecase := combinations.NewCombinationUsecase(care_api.NewCombinationCareClient(transport, log), queryCache, invalidator, log)
	notificationUsecase := notifications.NewNotificationUsecase(care_api.NewNotificationCareClient(transport, log), queryCache, invalidator, log)
	specificationUsecase := specifications.NewSpecificationUsecase(
		care_api.NewSpecificationCareClient(transport, log),
		queryCache,
		invalidator,
		specificationExportStorage,
		time.Duration(internalConfig.Export.PreSignedUrlExpiryTimeInMinutes)*time.Minute,
		exporter.Options{PDFFontPath: internalConfig.Export.PDFFontPath},
		log,
	)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, authClient, internalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewares,
		controllers.NewAuthController(log, authUsecase),
		controllers.NewPatientController(log, patientUsecase),
		controllers.NewInventoryController(log, inventoryUsecase),
		controllers.NewDiagnosisController(log, diagnosisUsecase),
		controllers.NewReserveController(log, reserveUsecase),
		controllers.NewSpecificationController(log, specificationUsecase),
		controllers.NewCombinationController(log, combinationUsecase),
		controllers.NewNotificationController(log, notificationUsecase),
	)
	return nil
}
