package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/spf13/viper"
)

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "8083", s.Port)
	assert.Equal(t, SourceRemote, s.DirectorySource)
	assert.InDelta(t, DefaultTaxRate, s.TaxRate, 1e-9)
	assert.InDelta(t, DefaultDepositRate, s.DepositRate, 1e-9)
	assert.Equal(t, DefaultMutationMinInterval, s.MutationMinInterval)
	assert.Equal(t, DefaultCacheTTL, s.CacheTTL)
	assert.Equal(t, DefaultGuardIdleTTL, s.GuardIdleTTL)
}

func TestLoadSettings_FromEnv(t *testing.T) {
	t.Setenv("TAX_RATE", "0.1")
	t.Setenv("MUTATION_MIN_INTERVAL", "5s")
	t.Setenv("DIRECTORY_SOURCE", " LOCAL ")
	t.Setenv("DIRECTORY_BASE_URL", "https://directory.example/api/")

	s, err := LoadSettings(t.TempDir())
	require.NoError(t, err)
	assert.InDelta(t, 0.1, s.TaxRate, 1e-9)
	assert.Equal(t, 5*time.Second, s.MutationMinInterval)
	assert.Equal(t, SourceLocal, s.DirectorySource)
	assert.Equal(t, "https://directory.example/api", s.DirectoryBaseURL)
}

func TestSettingsNormalize(t *testing.T) {
	s := Settings{TaxRate: 1.5, DepositRate: -0.2, DirectorySource: "ftp"}
	s.normalize()
	assert.InDelta(t, DefaultTaxRate, s.TaxRate, 1e-9)
	assert.InDelta(t, DefaultDepositRate, s.DepositRate, 1e-9)
	assert.Equal(t, SourceRemote, s.DirectorySource)
	assert.Equal(t, DefaultDebounceQuietPeriod, s.DebounceQuietPeriod)
	assert.Equal(t, 30*time.Second, s.DirectoryTimeout)
}

func TestOriginsAndCors(t *testing.T) {
	assert.Empty(t, Settings{}.Origins())

	open := CorsConfig(Settings{})
	require.NotNil(t, open.AllowOriginFunc)
	assert.True(t, open.AllowOriginFunc("https://anything.example"))

	s := Settings{AllowedOrigins: "https://a.example, ,https://b.example"}
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, s.Origins())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, CorsConfig(s).AllowOrigins)
}

func TestDBConfigByEnv(t *testing.T) {
	t.Setenv("QC_DB_HOST", "db.local")
	t.Setenv("QC_DB_NAME", "frontdesk")
	viper.AutomaticEnv()
	dsn, err := getDBConfigByEnv("qc")
	require.NoError(t, err)
	assert.Contains(t, dsn, "host=db.local")
	assert.Contains(t, dsn, "dbname=frontdesk")

	_, err = getDBConfigByEnv("staging")
	assert.Error(t, err)
}
