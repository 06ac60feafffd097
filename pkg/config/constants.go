package config

const (
	EnvPrefix = "SALESBOARD"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv       = "SALESBOARD_APP_ENV"
	EnvPort         = "SALESBOARD_APP_PORT"
	EnvServiceName  = "SALESBOARD_SERVICE_NAME"
	EnvLogLevel     = "SALESBOARD_LOG_LEVEL"
	EnvLogFormat    = "SALESBOARD_LOG_FORMAT"
	EnvLogWarnStack = "SALESBOARD_LOG_WARN_STACK"

	EnvDatasetProducts = "SALESBOARD_DATASET_PRODUCTS"
	EnvDatasetOrders   = "SALESBOARD_DATASET_ORDERS"
	EnvDatasetSeed     = "SALESBOARD_DATASET_SEED"

	EnvRedisURL          = "SALESBOARD_REDIS_URL"
	EnvRedisAddr         = "SALESBOARD_REDIS_ADDR"
	EnvRedisPassword     = "SALESBOARD_REDIS_PASSWORD"
	EnvRedisDB           = "SALESBOARD_REDIS_DB"
	EnvRedisPoolSize     = "SALESBOARD_REDIS_POOL_SIZE"
	EnvRedisMinIdleConns = "SALESBOARD_REDIS_MIN_IDLE_CONNS"
	EnvRedisDialTimeout  = "SALESBOARD_REDIS_DIAL_TIMEOUT"
	EnvRedisReadTimeout  = "SALESBOARD_REDIS_READ_TIMEOUT"
	EnvRedisWriteTimeout = "SALESBOARD_REDIS_WRITE_TIMEOUT"

	EnvRateLimitWriteWindow = "SALESBOARD_RATE_LIMIT_WRITE_WINDOW"
	EnvRateLimitWriteLimit  = "SALESBOARD_RATE_LIMIT_WRITE_LIMIT"

	EnvMetricsEnabled = "SALESBOARD_METRICS_ENABLED"
	EnvMetricsPath    = "SALESBOARD_METRICS_PATH"

	EnvCORSAllowedOrigins = "SALESBOARD_CORS_ALLOWED_ORIGINS"
)
