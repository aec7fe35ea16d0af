package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Host            string
	Port            int
	GinMode         string
	TZ              string
	ShutdownTimeout time.Duration

	DBDriver          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPass            string
	DBName            string
	DBSSLMode         string
	DBPath            string
	DBAutoMigrate     bool
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnectAttempts int
	DBConnectDelay    time.Duration
}

// findEnvFile walks up from the working directory looking for name.
func findEnvFile(name string) (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}

	for {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func loadEnvFile() {
	path, ok := findEnvFile(".env")
	if !ok {
		slog.Warn("no .env file found, using process environment only")
		return
	}

	if err := godotenv.Load(path); err != nil {
		slog.Warn("could not load env file", "path", path, "error", err)
		return
	}
	slog.Info("loaded env file", "path", path)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", 4002)
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("TZ", "UTC")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASS", "")
	v.SetDefault("DB_NAME", "catalogo")
	v.SetDefault("DB_SSLMODE", "")
	v.SetDefault("DB_PATH", "./catalogo.db")
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONNECT_ATTEMPTS", 10)
	v.SetDefault("DB_CONNECT_DELAY", "2s")

	return v
}

func Load() *Config {
	if os.Getenv("GIN_MODE") == "" || os.Getenv("GIN_MODE") == "debug" {
		loadEnvFile()
	}

	return fromViper(newViper())
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Host:            v.GetString("HOST"),
		Port:            v.GetInt("PORT"),
		GinMode:         v.GetString("GIN_MODE"),
		TZ:              v.GetString("TZ"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),

		DBDriver:          v.GetString("DB_DRIVER"),
		DBHost:            v.GetString("DB_HOST"),
		DBPort:            v.GetString("DB_PORT"),
		DBUser:            v.GetString("DB_USER"),
		DBPass:            v.GetString("DB_PASS"),
		DBName:            v.GetString("DB_NAME"),
		DBSSLMode:         v.GetString("DB_SSLMODE"),
		DBPath:            v.GetString("DB_PATH"),
		DBAutoMigrate:     v.GetBool("DB_AUTO_MIGRATE"),
		DBMaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnectAttempts: v.GetInt("DB_CONNECT_ATTEMPTS"),
		DBConnectDelay:    v.GetDuration("DB_CONNECT_DELAY"),
	}

	if cfg.DBSSLMode == "" {
		if cfg.GinMode == "release" {
			cfg.DBSSLMode = "require"
		} else {
			cfg.DBSSLMode = "disable"
		}
	}

	if cfg.DBConnectAttempts < 1 {
		cfg.DBConnectAttempts = 1
	}

	return cfg
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c *Config) DSN() string {
	if c.DBDriver == DriverSQLite {
		return fmt.Sprintf("file:%s?_foreign_keys=1&_busy_timeout=5000", c.DBPath)
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost,
		c.DBUser,
		c.DBPass,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
		c.TZ,
	)
}
