package config

import (
	"log/slog"
	"os"
	"strconv"
)

func Load() App {
	cfg := App{
		Port:          getenv("APP_PORT", "8080"),
		DatabaseURL:   must("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		JWTSecret:     getenv("JWT_SECRET", "local_dev_secret"),
		StorageURL:    getenv("STORAGE_URL", "http://localhost:9000/uploads"),
		StorageAPIKey: os.Getenv("STORAGE_API_KEY"),
		ShippingFee:   getfloat("SHIPPING_FEE", 350),
		Env:           getenv("APP_ENV", "dev"),
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getfloat(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("bad numeric env, using default", "key", k, "value", v)
		return def
	}
	return f
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("required env missing", "key", k)
		panic("missing env " + k)
	}
	return v
}
