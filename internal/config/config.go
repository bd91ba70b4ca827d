package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// StoreDriver values accepted by STORE_DRIVER.
const (
	DriverMongo  = "mongo"
	DriverLibSQL = "libsql"
)

type Config struct {
	Port       int // preferred; the listener probes upward when taken
	PortProbes int

	StoreDriver string
	MongoURI    string
	MongoDBName string
	DatabaseURL string // libsql/sqld DSN

	UploadDir      string
	AllowedOrigins []string

	RabbitURI      string // empty disables event publishing
	RabbitExchange string
}

const (
	PortEnv           = "PORT"
	PortProbesEnv     = "PORT_PROBES"
	StoreDriverEnv    = "STORE_DRIVER"
	MongoURIEnv       = "MONGO_URI"
	MongoDBNameEnv    = "MONGO_DB_NAME"
	DatabaseURLEnv    = "DATABASE_URL"
	UploadDirEnv      = "UPLOAD_DIR"
	AllowedOriginsEnv = "ALLOWED_ORIGINS"
	RabbitURIEnv      = "RABBIT_URI"
	RabbitExchangeEnv = "RABBIT_EXCHANGE"
)

func FromEnv() (Config, error) {
	var cfg Config

	cfg.StoreDriver = getEnv(StoreDriverEnv, DriverMongo)
	if cfg.StoreDriver != DriverMongo && cfg.StoreDriver != DriverLibSQL {
		return cfg, fmt.Errorf("invalid %v: %q (want %q or %q)",
			StoreDriverEnv, cfg.StoreDriver, DriverMongo, DriverLibSQL)
	}

	cfg.MongoURI = getEnv(MongoURIEnv, "mongodb://localhost:27017")
	cfg.MongoDBName = getEnv(MongoDBNameEnv, "olympiad")
	cfg.DatabaseURL = getEnv(DatabaseURLEnv, "http://127.0.0.1:8080")
	cfg.UploadDir = getEnv(UploadDirEnv, "uploads")
	cfg.RabbitURI = os.Getenv(RabbitURIEnv)
	cfg.RabbitExchange = getEnv(RabbitExchangeEnv, "cms.content")

	origins := getEnv(AllowedOriginsEnv, "*")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	var err error
	if cfg.Port, err = getEnvInt(PortEnv, 5000); err != nil {
		return cfg, fmt.Errorf("invalid %v: %w", PortEnv, err)
	}
	if cfg.PortProbes, err = getEnvInt(PortProbesEnv, 20); err != nil {
		return cfg, fmt.Errorf("invalid %v: %w", PortProbesEnv, err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	return i, nil
}
