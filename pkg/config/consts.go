package config

// EnvPrefix is the envconfig prefix shared by every setting.
const EnvPrefix = "BACKOFFICE"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names, used by tests and operator docs.
const (
	EnvAppEnv          = "BACKOFFICE_APP_ENV"
	EnvPort            = "BACKOFFICE_APP_PORT"
	EnvDBDSN           = "BACKOFFICE_DB_DSN"
	EnvDBDriver        = "BACKOFFICE_DB_DRIVER"
	EnvRedisURL        = "BACKOFFICE_REDIS_URL"
	EnvJWTSecret       = "BACKOFFICE_JWT_SECRET"
	EnvJWTIssuer       = "BACKOFFICE_JWT_ISSUER"
	EnvJWTExpMins      = "BACKOFFICE_JWT_EXPIRATION_MINUTES"
	EnvSessionTTLMins  = "BACKOFFICE_SESSION_TTL_MINUTES"
	EnvAvatarDir       = "BACKOFFICE_AVATAR_DIR"
	EnvProfilePath     = "BACKOFFICE_PROFILE_PATH"
	EnvAutoMigrate     = "BACKOFFICE_AUTO_MIGRATE"
	EnvSeedAccounts    = "BACKOFFICE_SEED_ACCOUNTS"
	EnvLowStockMinimum = "BACKOFFICE_LOW_STOCK_THRESHOLD"
)
