package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
user = "nursery"
dbname = "nursery"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "json", cfg.Logs.Format)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 60, cfg.Cache.ComplianceTTLSecs)
	assert.Equal(t, 62, cfg.Booking.MaxOccupancyRangeDays)
}

func TestLoad_ReadsValues(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
port = 6543
user = "u"
password = "p"
dbname = "nursery"

[logs]
level = "debug"
format = "console"

[metrics]
enabled = true
service_name = "nursery"

[redis]
addr = "redis:6379"
db = 2

[cache]
enabled = true
compliance_ttl = 30
`)
	t.Setenv("DB_PASSWORD", "p")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "host=db port=6543 user=u password=p dbname=nursery sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "console", cfg.Logs.Format)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 30, cfg.Cache.ComplianceTTLSecs)
}

func TestLoad_PasswordFromEnv(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "db"
dbname = "nursery"
password = "from-file"
`)
	t.Setenv("DB_PASSWORD", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
		assert.ErrorIs(t, err, ErrReadConfig)
	})

	t.Run("malformed toml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[server\nhttp_port = "))
		assert.ErrorIs(t, err, ErrReadConfig)
	})

	t.Run("missing database host", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[server]\nhttp_port = 8080\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("bad port", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[server]\nhttp_port = 70000\n[database]\nhost = \"db\"\ndbname = \"n\"\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("bad log format", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[logs]\nformat = \"xml\"\n[database]\nhost = \"db\"\ndbname = \"n\"\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}
