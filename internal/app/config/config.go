package config

import (
	"carehome-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Europe/Belgrade"),
			FrontendDomain:             utils.GetEnvString("APP_FRONTEND_DOMAIN", "http://localhost:5173"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api/v1"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 2),
		},
		Care: AppCare{
			BaseUrl:                   utils.GetEnvString("CARE_BASE_URL", "http://localhost:3000/api"),
			RequestTimeoutInSeconds:   utils.GetEnvInt("CARE_REQUEST_TIMEOUT_IN_SECONDS", 15),
			OutboundRequestsPerSecond: utils.GetEnvFloat("CARE_OUTBOUND_REQUESTS_PER_SECOND", 20),
			OutboundBurst:             utils.GetEnvInt("CARE_OUTBOUND_BURST", 10),
		},
		Session: AppSession{
			ExpirySkewInSeconds: utils.GetEnvInt("SESSION_EXPIRY_SKEW_IN_SECONDS", 30),
			CLISessionFile:      utils.GetEnvString("SESSION_CLI_FILE", ".carectl-session.json"),
		},
		Cache: AppCache{
			Enabled:      utils.GetEnvBool("CACHE_ENABLED", true),
			TTLInSeconds: utils.GetEnvInt("CACHE_TTL_IN_SECONDS", 300),
		},
		Export: AppExport{
			PreSignedUrlExpiryTimeInMinutes: utils.GetEnvInt("EXPORT_PRE_SIGNED_URL_EXPIRY_TIME_IN_MINUTES", 60),
			PDFFontPath:                     utils.GetEnvString("EXPORT_PDF_FONT_PATH", ""),
		},
		Minio: AppMinio{
			Enabled:    utils.GetEnvBool("APP_MINIO_ENABLED", false),
			BucketName: utils.GetEnvString("APP_MINIO_EXPORT_BUCKET_NAME", "specification-exports"),
		},
		RabbitMQ: AppRabbitMQ{
			Enabled:       utils.GetEnvBool("APP_RABBITMQ_ENABLED", false),
			MutationQueue: utils.GetEnvString("APP_RABBITMQ_MUTATION_QUEUE", "care.mutations"),
		},
	}
}
