package pricing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mkt-tools/quote-forge/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog_EmptyPathReturnsDefaults(t *testing.T) {
	catalog, err := LoadCatalog("")
	require.NoError(t, err)

	assert.Equal(t, 997.0, catalog.Services[ServiceGoogleAds].BasePrice)
	assert.Equal(t, 997.0, catalog.MinimumManagementFee)
	assert.Len(t, catalog.Services, 5)
	assert.Len(t, catalog.AddOns, 4)
	assert.Len(t, catalog.IndustryROI, 10)
}

func TestLoadCatalog_OverridesMergeOnDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	content := `minimum_management_fee: 1200
services:
  google-ads:
    name: "Google Ads Management"
    description: "Search campaigns"
    base_price: 1099
    setup_fee: 600
`
	err := os.WriteFile(path, []byte(content), 0o644)
	require.NoError(t, err)

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)

	assert.Equal(t, 1200.0, catalog.MinimumManagementFee)
	assert.Equal(t, 1099.0, catalog.Services[ServiceGoogleAds].BasePrice)
	// untouched defaults survive
	assert.Equal(t, 897.0, catalog.Services[ServiceMetaAds].BasePrice)
	assert.Equal(t, 0.20, catalog.managementRate(0))
}

func TestLoadCatalog_InvalidFileReturnsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	err := os.WriteFile(path, []byte("services: [not: a: map"), 0o644)
	require.NoError(t, err)

	_, err = LoadCatalog(path)
	assert.Error(t, err)
}

func TestCatalogMultiplierFallbacks(t *testing.T) {
	catalog := DefaultCatalog()

	assert.Equal(t, 0.9, catalog.sizeMultiplier(domain.CompanySizeStartup))
	assert.Equal(t, 1.0, catalog.sizeMultiplier(domain.CompanySize("unknown")))
	assert.Equal(t, 1.25, catalog.urgencyMultiplier(domain.UrgencyCritical))
	assert.Equal(t, 1.0, catalog.urgencyMultiplier(domain.Urgency("unknown")))

	assert.Equal(t, 3.2, catalog.industryMultiplier("Real-Estate"))
	assert.Equal(t, 2.5, catalog.industryMultiplier("circus"))
	assert.Equal(t, 2.5, catalog.industryMultiplier(""))
}
