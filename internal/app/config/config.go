package config

import (
	"healthfirst-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "healthfirst"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "America/New_York"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			LoginMaxAttemptsPerMinute: utils.GetEnvInt("APP_LOGIN_MAX_ATTEMPTS_PER_MINUTE", 5),
			LoginBlockTimeInMinutes:   utils.GetEnvInt("APP_LOGIN_BLOCK_TIME_IN_MINUTES", 5),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
		Session: Session{
			Backend:        utils.GetEnvString("SESSION_BACKEND", "memory"),
			TTLInHours:     utils.GetEnvInt("SESSION_TTL_IN_HOURS", 1),
			CleanupSeconds: utils.GetEnvInt("SESSION_CLEANUP_IN_SECONDS", 60),
		},
		Wizard: Wizard{
			TTLInMinutes: utils.GetEnvInt("WIZARD_TTL_IN_MINUTES", 30),
		},
		Directory: Directory{
			Backend:            utils.GetEnvString("DIRECTORY_BACKEND", "memory"),
			SimulateLatency:    utils.GetEnvBool("DIRECTORY_SIMULATE_LATENCY", true),
			CreateDelayInMs:    utils.GetEnvInt("DIRECTORY_CREATE_DELAY_IN_MS", 2000),
			UpdateDelayInMs:    utils.GetEnvInt("DIRECTORY_UPDATE_DELAY_IN_MS", 1000),
			FetchDelayInMs:     utils.GetEnvInt("DIRECTORY_FETCH_DELAY_IN_MS", 1000),
			DeleteDelayInMs:    utils.GetEnvInt("DIRECTORY_DELETE_DELAY_IN_MS", 500),
			SeedDemoRecords:    utils.GetEnvBool("DIRECTORY_SEED_DEMO_RECORDS", true),
			SeedDemoCredential: utils.GetEnvBool("DIRECTORY_SEED_DEMO_CREDENTIALS", true),
		},
	}
}
