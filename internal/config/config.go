package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	MongoURI      string
	MongoDB       string
	DataDir       string
	StaticFiles   []string
	BrandTable    string
	CacheTTL      time.Duration
	RedisAddr     string
	RedisPassword string
	LogLevel      string
	LogFormat     string
	MaxUploadMB   int64
	GinMode       string

	// EnvSource indica de dónde salieron las variables (".env" o "system")
	EnvSource string
	EnvError  error
}

func LoadConfig() *Config {
	source := "system"
	var envErr error
	// Solo cargar .env en desarrollo local
	if _, err := os.Stat(".env"); err == nil {
		if envErr = godotenv.Load(); envErr == nil {
			source = ".env"
		}
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		MongoURI:      getEnv("MONGO_URI", ""),
		MongoDB:       getEnv("MONGO_DB", "fashionCatalog"),
		DataDir:       getEnv("DATA_DIR", "data"),
		StaticFiles:   splitList(getEnv("STATIC_FILES", "cp-company.json")),
		BrandTable:    getEnv("BRAND_TABLE_PATH", ""),
		CacheTTL:      getDuration("CACHE_TTL", 2*time.Minute),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		MaxUploadMB:   getInt("MAX_UPLOAD_MB", 20),
		GinMode:       getEnv("GIN_MODE", "release"),
		EnvSource:     source,
		EnvError:      envErr,
	}
}

// StaticPaths devuelve las rutas completas de los documentos estáticos
func (c *Config) StaticPaths() []string {
	paths := make([]string, 0, len(c.StaticFiles))
	for _, f := range c.StaticFiles {
		if filepath.IsAbs(f) || strings.ContainsAny(f, `/\`) || c.DataDir == "" {
			paths = append(paths, f)
			continue
		}
		paths = append(paths, filepath.Join(c.DataDir, f))
	}
	return paths
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int64) int64 {
	if v, err := strconv.ParseInt(getEnv(key, ""), 10, 64); err == nil && v > 0 {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(getEnv(key, "")); err == nil && d > 0 {
		return d
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
