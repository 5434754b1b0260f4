package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/limbo/habitlog/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load("")
	assert.Equal(t, "habit-events", cfg.GetString("KAFKA_TOPIC"))
	assert.Equal(t, 200*time.Millisecond, cfg.GetDuration("STORAGE_RETRY_DELAY"))
	assert.Equal(t, time.Local, cfg.Location())
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "HABITLOG_TEST_BACKEND=redis\nHABITLOG_TEST_REDIS_DB=3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	t.Cleanup(func() {
		os.Unsetenv("HABITLOG_TEST_BACKEND")
		os.Unsetenv("HABITLOG_TEST_REDIS_DB")
	})
	cfg := config.Load(path)
	assert.Equal(t, "redis", cfg.GetString("HABITLOG_TEST_BACKEND"))
	assert.Equal(t, 3, cfg.GetInt("HABITLOG_TEST_REDIS_DB"))
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("KAFKA_TOPIC", "custom")
	t.Setenv("KAFKA_BROKERS", "a:9092, b:9092,,")
	t.Setenv("TIMEZONE", "UTC")
	cfg := config.Load("")
	assert.Equal(t, "custom", cfg.GetString("KAFKA_TOPIC"))
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.GetList("KAFKA_BROKERS"))
	assert.Equal(t, "UTC", cfg.Location().String())
}

func TestUnknownTimezone(t *testing.T) {
	t.Setenv("TIMEZONE", "Mars/Olympus")
	assert.Equal(t, time.Local, config.Load("").Location())
}
