package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// ServerConfig del listener HTTP.
type ServerConfig struct {
	Port            string
	Env             string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

func (c ServerConfig) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// DBConfig del pool Postgres. DSN vacío => modo dev con storage in-memory.
type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration
	AutoSchema      bool
}

// JWTConfig de firma de tokens.
type JWTConfig struct {
	Key           string
	Issuer        string
	Audience      string
	ExpiryMinutes int
}

type LogConfig struct {
	Level  string
	Format string
}

// AdminConfig: usuario inicial creado al arrancar si no existe.
type AdminConfig struct {
	Email    string
	Password string
	Name     string
}

func (c AdminConfig) Enabled() bool {
	return strings.TrimSpace(c.Email) != "" && c.Password != ""
}

type Config struct {
	AppName    string
	Server     ServerConfig
	DB         DBConfig
	JWT        JWTConfig
	Log        LogConfig
	Admin      AdminConfig
	BcryptCost int
}

// Load lee un .env opcional (envFile vacío => ".env") y luego variables de entorno.
// Las variables ya definidas en el entorno no se pisan.
func Load(envFile string) (*Config, error) {
	if strings.TrimSpace(envFile) == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := &Config{
		AppName: getEnv("APP_NAME", "clinica-api"),
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Env:             getEnv("APP_ENV", "development"),
			ReadTimeout:     getEnvAsDuration("HTTP_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:    getEnvAsDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvAsDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		DB: DBConfig{
			DSN:             getEnv("DB_DSN", ""),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxIdleTime: getEnvAsDuration("DB_CONN_MAX_IDLE_TIME", 5*time.Minute),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			AutoSchema:      getEnvAsBool("DB_AUTO_SCHEMA", false),
		},
		JWT: JWTConfig{
			Key:           getEnv("JWT_KEY", ""),
			Issuer:        getEnv("JWT_ISSUER", ""),
			Audience:      getEnv("JWT_AUDIENCE", ""),
			ExpiryMinutes: getEnvAsInt("JWT_EXPIRY_MINUTES", 60),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
			Name:     getEnv("ADMIN_NAME", "Administrador"),
		},
		BcryptCost: getEnvAsInt("BCRYPT_COST", bcrypt.DefaultCost),
	}

	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	return cfg, nil
}

// LogFields: resumen seguro (sin secretos) para loguear al arrancar.
func (c *Config) LogFields() map[string]any {
	return map[string]any{
		"app":            c.AppName,
		"env":            c.Server.Env,
		"port":           c.Server.Port,
		"storage":        c.storageKind(),
		"jwt_key_set":    c.JWT.Key != "",
		"jwt_issuer":     c.JWT.Issuer,
		"jwt_expiry_min": c.JWT.ExpiryMinutes,
		"admin_seed":     c.Admin.Enabled(),
	}
}

func (c *Config) storageKind() string {
	if c.DB.DSN == "" {
		return "memory"
	}
	return "postgres"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
