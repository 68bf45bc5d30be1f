package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthfirst-service/internal/app/config"
	"healthfirst-service/internal/app/delivery/http/middlewares"
	"healthfirst-service/internal/app/delivery/http/routers"
	"healthfirst-service/internal/app/drivers/database"
	"healthfirst-service/internal/app/drivers/logger"
	"healthfirst-service/internal/app/services/auth"
	"healthfirst-service/internal/app/services/patients"
	"healthfirst-service/internal/app/services/providers"
	"healthfirst-service/internal/app/services/registration"
	"healthfirst-service/internal/app/services/shared/sessions"
	"healthfirst-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootLog := logger.NewLogrusLogger(internalConfig)
	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		bootLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	chiRouter := chi.NewRouter()
	bootstrapingTheApp(chiRouter, driverConfig, internalConfig, log, bootLog)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		bootLog.Infof("Listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		bootLog.Fatalf("Server forced to shutdown: %v", err)
	}

	bootLog.Println("Server exiting")
}

func bootstrapingTheApp(
	chiRouter *chi.Mux,
	driverConfig *config.DriverConfig,
	internalConfig *config.InternalConfig,
	log *zap.Logger,
	bootLog *logrus.Logger,
) {
	// Session store: in-memory by default, redis when configured.
	var sessionStore sessions.SessionStore
	switch internalConfig.Session.Backend {
	case constvars.SessionBackendRedis:
		redisClient := database.NewRedisClient(driverConfig)
		sessionStore = sessions.NewRedisSessionStore(
			redisClient,
			time.Hour*time.Duration(internalConfig.Session.TTLInHours),
		)
	default:
		sessionStore = sessions.NewMemorySessionStore(
			time.Hour*time.Duration(internalConfig.Session.TTLInHours),
			time.Second*time.Duration(internalConfig.Session.CleanupSeconds),
		)
	}

	credentialStore, err := auth.NewMemoryCredentialStore(internalConfig.Directory.SeedDemoCredential)
	if err != nil {
		bootLog.Fatalf("Error seeding credential store: %v", err)
	}

	// Directory repositories: in-memory by default, mongo when configured.
	var providerRepository providers.ProviderRepository
	var patientRepository patients.PatientRepository
	switch internalConfig.Directory.Backend {
	case constvars.DirectoryBackendMongo:
		mongoClient := database.NewMongoDB(driverConfig)
		providerRepository = providers.NewProviderMongoRepository(mongoClient, driverConfig.MongoDB.DbName)
		patientRepository = patients.NewPatientMongoRepository(mongoClient, driverConfig.MongoDB.DbName)
	default:
		providerRepository = providers.NewProviderMemoryRepository(internalConfig.Directory)
		patientRepository = patients.NewPatientMemoryRepository(internalConfig.Directory)
	}

	authUsecase := auth.NewAuthUsecase(credentialStore, sessionStore, internalConfig, log)
	authController := auth.NewAuthController(authUsecase, log)

	providerUsecase := providers.NewProviderUsecase(providerRepository, log)
	providerController := providers.NewProviderController(providerUsecase, authUsecase, log)

	patientUsecase := patients.NewPatientUsecase(patientRepository, log)
	patientController := patients.NewPatientController(patientUsecase, authUsecase, log)

	registrar, _ := credentialStore.(registration.CredentialRegistrar)
	submitter := registration.NewDirectorySubmitter(providerUsecase, patientUsecase, registrar, log)
	wizardStore := registration.NewMemoryWizardStore(time.Minute * time.Duration(internalConfig.Wizard.TTLInMinutes))
	registrationUsecase := registration.NewRegistrationUsecase(wizardStore, submitter, log)
	registrationController := registration.NewRegistrationController(registrationUsecase, log)

	appMiddlewares := middlewares.New(log, authUsecase, internalConfig)

	routers.SetupRoutes(
		chiRouter,
		internalConfig,
		appMiddlewares,
		authController,
		registrationController,
		providerController,
		patientController,
	)
}
