package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type ServerConfig struct {
	Address      string `json:"address"`
	TemplateGlob string `json:"templateGlob"`
}

type SecurityConfig struct {
	MaxBodySize    int64    `json:"maxBodySize"` // bytes
	AllowedMethods []string `json:"allowedMethods"`
}

type TimeoutConfig struct {
	RequestTimeout int `json:"requestTimeout"` // seconds
}

type CORSConfig struct {
	AllowOrigins     []string      `json:"allowOrigins"`
	AllowMethods     []string      `json:"allowMethods"`
	AllowHeaders     []string      `json:"allowHeaders"`
	ExposeHeaders    []string      `json:"exposeHeaders"`
	AllowCredentials bool          `json:"allowCredentials"`
	MaxAge           time.Duration `json:"maxAge"`
	TrustedDomains   []string      `json:"trustedDomains"`
}

// SessionConfig drives the session token middleware. The token is a signed
// JWT carried in a cookie on the site surface and as a bearer header on the
// API surface.
type SessionConfig struct {
	Secret     string        `json:"secret"`
	TTL        time.Duration `json:"ttl"`
	Issuer     string        `json:"issuer"`
	CookieName string        `json:"cookieName"`
}

type RateLimitConfig struct {
	Rate     int           `json:"rate"`
	Interval time.Duration `json:"interval"`
}

type MiddlewareConfig struct {
	Security  SecurityConfig  `json:"security"`
	Session   SessionConfig   `json:"session"`
	Timeout   TimeoutConfig   `json:"timeout"`
	CORS      CORSConfig      `json:"cors"`
	RateLimit RateLimitConfig `json:"rateLimit"`
}

type DatabaseConfig struct {
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	DBName      string `json:"dbname"`
	UseUnixSock bool   `json:"useUnixSock"`
	MinPoolSize int    `json:"minPoolSize"`
	MaxPoolSize int    `json:"maxPoolSize"`
	LogLevel    string `json:"logLevel"`
}

type Config struct {
	Server     ServerConfig     `json:"server"`
	Database   DatabaseConfig   `json:"database"`
	Middleware MiddlewareConfig `json:"middleware"`
	Env        string           `json:"env"`
}

var defaultConfig = Config{
	Server: ServerConfig{
		Address:      ":8080",
		TemplateGlob: "templates/*.html",
	},
	Database: DatabaseConfig{
		Host:        "localhost",
		Port:        3306,
		Username:    "root",
		Password:    "root",
		DBName:      "til",
		UseUnixSock: false,
		MinPoolSize: 5,
		MaxPoolSize: 50,
		LogLevel:    "warn",
	},
	Middleware: MiddlewareConfig{
		Security: SecurityConfig{
			MaxBodySize:    10 << 20, // 10MB
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		},
		Session: SessionConfig{
			Secret:     "dev-secret-change-me-in-production",
			TTL:        24 * time.Hour,
			Issuer:     "tilapp",
			CookieName: "til_session",
		},
		Timeout: TimeoutConfig{
			RequestTimeout: 15,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		RateLimit: RateLimitConfig{
			Rate:     10,
			Interval: time.Second,
		},
	},
	Env: "development",
}

func (c *Config) IsProd() bool {
	return c.Env == "production"
}

// Load resolves configuration with precedence: env vars > config file > defaults.
func Load() *Config {
	config := defaultConfig

	if path := getConfigPath(); path != "" {
		if err := loadFromFile(&config, path); err != nil {
			hlog.Warnf("Failed to load config file: %v", err)
		}
	}

	loadFromEnv(&config)

	return &config
}

func getConfigPath() string {
	if path := os.Getenv("APP_CONFIG"); path != "" {
		return path
	}

	searchPaths := []string{
		"./config.json",
		"../config.json",
		"/etc/tilapp/config.json",
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

func loadFromFile(config *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, config)
}

func loadFromEnv(config *Config) {
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		config.Server.Address = v
	}

	if v := os.Getenv("TEMPLATE_GLOB"); v != "" {
		config.Server.TemplateGlob = v
	}

	if v := os.Getenv("APP_ENV"); v != "" {
		config.Env = v
	}

	if v := os.Getenv("MAX_BODY_SIZE"); v != "" {
		if size, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.Middleware.Security.MaxBodySize = size
		}
	}

	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		if timeout, err := strconv.Atoi(v); err == nil {
			config.Middleware.Timeout.RequestTimeout = timeout
		}
	}

	if v := os.Getenv("RATE_LIMIT"); v != "" {
		if rate, err := strconv.Atoi(v); err == nil {
			config.Middleware.RateLimit.Rate = rate
		}
	}

	if v := os.Getenv("SESSION_SECRET"); v != "" {
		config.Middleware.Session.Secret = v
	}

	if v := os.Getenv("SESSION_TTL"); v != "" {
		if ttl, err := time.ParseDuration(v); err == nil {
			config.Middleware.Session.TTL = ttl
		} else {
			hlog.Warnf("Invalid SESSION_TTL format: %v", err)
		}
	}

	if v := os.Getenv("SESSION_ISSUER"); v != "" {
		config.Middleware.Session.Issuer = v
	}

	if v := os.Getenv("DB_HOST"); v != "" {
		config.Database.Host = v
	}

	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			config.Database.Port = port
		}
	}

	if v := os.Getenv("DB_USER"); v != "" {
		config.Database.Username = v
	}

	if v := os.Getenv("DB_PASSWORD"); v != "" {
		config.Database.Password = v
	}

	if v := os.Getenv("DB_NAME"); v != "" {
		config.Database.DBName = v
	}

	if v := os.Getenv("DB_SOCKET"); v != "" {
		config.Database.UseUnixSock = parseBool(v)
	}

	if v := os.Getenv("DB_MIN_POOL"); v != "" {
		if size, err := strconv.Atoi(v); err == nil {
			config.Database.MinPoolSize = size
		}
	}

	if v := os.Getenv("DB_MAX_POOL"); v != "" {
		if size, err := strconv.Atoi(v); err == nil {
			config.Database.MaxPoolSize = size
		}
	}

	if v := os.Getenv("DB_LOG_LEVEL"); v != "" {
		config.Database.LogLevel = strings.ToLower(v)
	}
}

func parseBool(value string) bool {
	value = strings.ToLower(value)
	return value == "true" || value == "1" || value == "yes"
}

// InitDB opens the GORM handle and applies pool settings.
func (c *Config) InitDB() (*gorm.DB, error) {
	var dsn string
	charsetParam := "charset=utf8mb4&parseTime=True&loc=Local"

	if c.Database.UseUnixSock {
		// Host holds the socket path in this mode.
		dsn = fmt.Sprintf("%s:%s@unix(%s)/%s?%s",
			c.Database.Username,
			c.Database.Password,
			c.Database.Host,
			c.Database.DBName,
			charsetParam)
	} else {
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			c.Database.Username,
			c.Database.Password,
			c.Database.Host,
			c.Database.Port,
			c.Database.DBName,
			charsetParam)
	}

	gormConfig := &gorm.Config{}
	switch c.Database.LogLevel {
	case "silent":
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	case "error":
		gormConfig.Logger = logger.Default.LogMode(logger.Error)
	case "warn":
		gormConfig.Logger = logger.Default.LogMode(logger.Warn)
	case "info":
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(c.Database.MinPoolSize)
	sqlDB.SetMaxOpenConns(c.Database.MaxPoolSize)

	return db, nil
}
