package config

type App struct {
	Port          string  `env:"APP_PORT" default:"8080"`
	DatabaseURL   string  `env:"DATABASE_URL,required"`
	RedisAddr     string  `env:"REDIS_ADDR"`
	JWTSecret     string  `env:"JWT_SECRET,required"`
	StorageURL    string  `env:"STORAGE_URL"`
	StorageAPIKey string  `env:"STORAGE_API_KEY"`
	ShippingFee   float64 `env:"SHIPPING_FEE" default:"350"`
	Env           string  `env:"APP_ENV" default:"dev"`
}
