package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, key := range []string{"PORT", "MONGO_URI", "MONGO_DB", "STATIC_FILES", "CACHE_TTL", "MAX_UPLOAD_MB"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "fashionCatalog", cfg.MongoDB)
	assert.Equal(t, "system", cfg.EnvSource)
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL)
	assert.Equal(t, int64(20), cfg.MaxUploadMB)
	assert.Equal(t, []string{"cp-company.json"}, cfg.StaticFiles)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("STATIC_FILES", "cp-company.json, stone-island.json ,")
	t.Setenv("DATA_DIR", "catalog")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("MAX_UPLOAD_MB", "5")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"cp-company.json", "stone-island.json"}, cfg.StaticFiles)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, int64(5), cfg.MaxUploadMB)
	assert.Equal(t, []string{
		filepath.Join("catalog", "cp-company.json"),
		filepath.Join("catalog", "stone-island.json"),
	}, cfg.StaticPaths())
}

// chdir cambia el directorio de trabajo durante el test y lo restaura al terminar.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
