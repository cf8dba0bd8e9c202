package config

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	Care     AppCare     `mapstructure:"care"`
	Session  AppSession  `mapstructure:"session"`
	Cache    AppCache    `mapstructure:"cache"`
	Export   AppExport   `mapstructure:"export"`
	Minio    AppMinio    `mapstructure:"minio"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Address                    string `mapstructure:"address"`
	Timezone                   string `mapstructure:"timezone"`
	FrontendDomain             string `mapstructure:"frontend_domain"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	MaxTimeRequestsPerSeconds  int    `mapstructure:"max_time_requests_per_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
}

// AppCare points at the care backend that owns persistence and totals.
type AppCare struct {
	BaseUrl                   string  `mapstructure:"base_url"`
	RequestTimeoutInSeconds   int     `mapstructure:"request_timeout_in_seconds"`
	OutboundRequestsPerSecond float64 `mapstructure:"outbound_requests_per_second"`
	OutboundBurst             int     `mapstructure:"outbound_burst"`
}

type AppSession struct {
	ExpirySkewInSeconds int    `mapstructure:"expiry_skew_in_seconds"`
	CLISessionFile      string `mapstructure:"cli_session_file"`
}

type AppCache struct {
	Enabled      bool `mapstructure:"enabled"`
	TTLInSeconds int  `mapstructure:"ttl_in_seconds"`
}

type AppExport struct {
	PreSignedUrlExpiryTimeInMinutes int    `mapstructure:"pre_signed_url_expiry_time_in_minutes"`
	PDFFontPath                     string `mapstructure:"pdf_font_path"`
}

type AppMinio struct {
	Enabled    bool   `mapstructure:"enabled"`
	BucketName string `mapstructure:"bucket_name"`
}

type AppRabbitMQ struct {
	Enabled       bool   `mapstructure:"enabled"`
	MutationQueue string `mapstructure:"mutation_queue"`
}
