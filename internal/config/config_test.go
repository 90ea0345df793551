package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Data.TopN)
	assert.NotEmpty(t, cfg.Data.CompaniesFile)
	assert.NotEmpty(t, cfg.Data.NeighborhoodsFile)
	assert.NotEmpty(t, cfg.Data.DurationsFile)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("TOP_N", "5")
	t.Setenv("COMPANIES_FILE", "/tmp/companies.csv")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Data.TopN)
	assert.Equal(t, "/tmp/companies.csv", cfg.Data.CompaniesFile)
}

func TestLoad_InvalidTopN(t *testing.T) {
	t.Setenv("TOP_N", "0")

	_, err := Load()
	require.Error(t, err)
}
