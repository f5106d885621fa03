package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Media    MediaConfig
	Catalog  CatalogConfig
	Video    VideoConfig
	Geocoder GeocoderConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
	BodyLimitMB int
}

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	AutoMigrate     bool
}

type MongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// MediaConfig описывает хранилище загружаемых файлов галереи
type MediaConfig struct {
	Backend        string
	Root           string
	URLPrefix      string
	GCSBucket      string
	GCSPublicBase  string
	GCSCredentials string
	S3Endpoint     string
	S3Region       string
	S3Bucket       string
	S3AccessKey    string
	S3SecretKey    string
	S3PublicBase   string
	PlaceholderURL string
}

type CatalogConfig struct {
	PageSize     int
	City         string
	ObjectsLimit int
}

type VideoConfig struct {
	ThumbnailTimeout time.Duration
	RutubeAPIURL     string
}

type GeocoderConfig struct {
	URL       string
	UserAgent string
	Timeout   time.Duration
	Delay     time.Duration
	Limit     int
	Cache     string
	CacheFile string
	CacheKey  string
}

type LogConfig struct {
	Level string
}

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"

	MediaBackendLocal = "local"
	MediaBackendGCS   = "gcs"
	MediaBackendS3    = "s3"

	GeocoderCacheFile  = "file"
	GeocoderCacheRedis = "redis"
)

// Load читает .env (если он есть) и переменные окружения
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("API_HOST"),
			Port:        v.GetInt("API_PORT"),
			Env:         v.GetString("API_ENV"),
			CORSOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
			BodyLimitMB: v.GetInt("API_BODY_LIMIT_MB"),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(v.GetString("DB_DRIVER")),
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
			AutoMigrate:     v.GetBool("DB_AUTO_MIGRATE"),
		},
		Mongo: MongoConfig{
			URI:      v.GetString("MONGO_URI"),
			Database: v.GetString("MONGO_DB"),
			Timeout:  time.Duration(v.GetInt("MONGO_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Media: MediaConfig{
			Backend:        strings.ToLower(v.GetString("MEDIA_BACKEND")),
			Root:           v.GetString("MEDIA_ROOT"),
			URLPrefix:      normalizePrefix(v.GetString("MEDIA_URL")),
			GCSBucket:      v.GetString("GCS_BUCKET"),
			GCSPublicBase:  strings.TrimRight(v.GetString("GCS_PUBLIC_BASE_URL"), "/"),
			GCSCredentials: v.GetString("GCS_CREDENTIALS_FILE"),
			S3Endpoint:     strings.TrimRight(v.GetString("AWS_S3_ENDPOINT_URL"), "/"),
			S3Region:       v.GetString("AWS_S3_REGION_NAME"),
			S3Bucket:       v.GetString("AWS_STORAGE_BUCKET_NAME"),
			S3AccessKey:    v.GetString("AWS_ACCESS_KEY_ID"),
			S3SecretKey:    v.GetString("AWS_SECRET_ACCESS_KEY"),
			S3PublicBase:   strings.TrimRight(v.GetString("S3_PUBLIC_BASE_URL"), "/"),
			PlaceholderURL: v.GetString("MEDIA_PLACEHOLDER_URL"),
		},
		Catalog: CatalogConfig{
			PageSize:     v.GetInt("CATALOG_PAGE_SIZE"),
			City:         v.GetString("CATALOG_CITY"),
			ObjectsLimit: v.GetInt("CATALOG_OBJECTS_LIMIT"),
		},
		Video: VideoConfig{
			ThumbnailTimeout: time.Duration(v.GetInt("VIDEO_THUMBNAIL_TIMEOUT")) * time.Second,
			RutubeAPIURL:     strings.TrimRight(v.GetString("RUTUBE_API_URL"), "/"),
		},
		Geocoder: GeocoderConfig{
			URL:       v.GetString("GEOCODER_URL"),
			UserAgent: v.GetString("GEOCODER_USER_AGENT"),
			Timeout:   time.Duration(v.GetInt("GEOCODER_TIMEOUT")) * time.Second,
			Delay:     time.Duration(v.GetInt("GEOCODER_DELAY_MS")) * time.Millisecond,
			Limit:     v.GetInt("GEOCODER_LIMIT"),
			Cache:     strings.ToLower(v.GetString("GEOCODER_CACHE")),
			CacheFile: v.GetString("GEOCODER_CACHE_FILE"),
			CacheKey:  v.GetString("GEOCODER_CACHE_KEY"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("API_BODY_LIMIT_MB", 50)

	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "anton_houses")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 1800)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 300)

	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "houses")
	v.SetDefault("MONGO_TIMEOUT", 10)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)

	v.SetDefault("MEDIA_BACKEND", MediaBackendLocal)
	v.SetDefault("MEDIA_ROOT", "./media")
	v.SetDefault("MEDIA_URL", "/media/")
	v.SetDefault("GCS_PUBLIC_BASE_URL", "https://storage.googleapis.com")
	v.SetDefault("AWS_S3_ENDPOINT_URL", "https://s3.timeweb.cloud")
	v.SetDefault("AWS_S3_REGION_NAME", "ru-1")
	v.SetDefault("MEDIA_PLACEHOLDER_URL", "/static/img/placeholder.png")

	v.SetDefault("CATALOG_PAGE_SIZE", 9)
	v.SetDefault("CATALOG_CITY", "Уфа")
	v.SetDefault("CATALOG_OBJECTS_LIMIT", 1000)

	v.SetDefault("VIDEO_THUMBNAIL_TIMEOUT", 3)
	v.SetDefault("RUTUBE_API_URL", "https://rutube.ru/api")

	v.SetDefault("GEOCODER_URL", "https://nominatim.openstreetmap.org/search")
	v.SetDefault("GEOCODER_USER_AGENT", "anton_houses-geocoder/1.0")
	v.SetDefault("GEOCODER_TIMEOUT", 8)
	v.SetDefault("GEOCODER_DELAY_MS", 1000)
	v.SetDefault("GEOCODER_LIMIT", 200)
	v.SetDefault("GEOCODER_CACHE", GeocoderCacheFile)
	v.SetDefault("GEOCODER_CACHE_FILE", "geocode_cache.json")
	v.SetDefault("GEOCODER_CACHE_KEY", "geocode:cache")

	v.SetDefault("LOG_LEVEL", "info")
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	switch c.Media.Backend {
	case MediaBackendLocal:
	case MediaBackendGCS:
		if c.Media.GCSBucket == "" {
			return fmt.Errorf("GCS_BUCKET is required for gcs media backend")
		}
	case MediaBackendS3:
		if c.Media.S3Bucket == "" {
			return fmt.Errorf("AWS_STORAGE_BUCKET_NAME is required for s3 media backend")
		}
	default:
		return fmt.Errorf("unsupported MEDIA_BACKEND %q", c.Media.Backend)
	}

	switch c.Geocoder.Cache {
	case GeocoderCacheFile, GeocoderCacheRedis:
	default:
		return fmt.Errorf("unsupported GEOCODER_CACHE %q", c.Geocoder.Cache)
	}

	if c.Catalog.PageSize <= 0 {
		return fmt.Errorf("CATALOG_PAGE_SIZE must be positive")
	}

	return nil
}

func normalizePrefix(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/media/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetDatabaseDSN возвращает DSN для выбранного драйвера
func (c *Config) GetDatabaseDSN() string {
	return c.Database.DSN()
}

// DSN - строка подключения. Для sqlite3 DB_NAME трактуется как путь к файлу базы.
func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.DBName
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.DBName,
		c.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
