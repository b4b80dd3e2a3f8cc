package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() *Catalog {
	c := &Catalog{
		Timestamp: "2026-08-30T12:00:00Z",
		Packages: map[string][]ESIMPackage{
			"Japan": {
				{ID: 1, Country: "Japan", Provider: "Ubigi", Price: 17.00, DataType: DataTypeData},
				{ID: 2, Country: "Japan", Provider: "Airalo", Price: 4.99, DataType: DataTypeData},
			},
			"Thailand": {
				{ID: 3, Country: "Thailand", Provider: "Dtac", Price: 9.90, DataType: DataTypeUnlimited},
			},
			"France": {
				{ID: 4, Country: "France", Provider: "Orange", Price: 14.90, DataType: DataTypeData},
			},
		},
	}
	c.Normalize()
	return c
}

func TestNormalize_DerivesViews(t *testing.T) {
	c := sampleCatalog()

	assert.Equal(t, []string{"France", "Japan", "Thailand"}, c.Countries)
	assert.Len(t, c.All, 4)
	assert.Equal(t, 4, c.TotalPackages)
	// Flattening follows sorted country order.
	assert.Equal(t, "France", c.All[0].Country)
	assert.Equal(t, "Thailand", c.All[3].Country)
}

func TestNormalize_KeepsShippedViews(t *testing.T) {
	c := &Catalog{
		TotalPackages: 1,
		Countries:     []string{"Japan"},
		Packages:      map[string][]ESIMPackage{"Japan": {{ID: 1, Country: "Japan"}}},
		All:           []ESIMPackage{{ID: 1, Country: "Japan"}},
	}
	c.Normalize()

	assert.Equal(t, []string{"Japan"}, c.Countries)
	assert.Equal(t, 1, c.TotalPackages)
}

func TestNormalize_NilPackagesMap(t *testing.T) {
	c := &Catalog{}
	c.Normalize()
	assert.NotNil(t, c.Packages)
	assert.Empty(t, c.All)
}

func TestByCountry(t *testing.T) {
	c := sampleCatalog()
	assert.Len(t, c.ByCountry("Japan"), 2)
	assert.Nil(t, c.ByCountry("Atlantis"))
}

func TestUnlimited(t *testing.T) {
	c := sampleCatalog()
	unlimited := c.Unlimited()
	require.Len(t, unlimited, 1)
	assert.Equal(t, "Dtac", unlimited[0].Provider)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	c := sampleCatalog()

	assert.Len(t, c.Search("japan"), 2)
	assert.Len(t, c.Search("JAPAN"), 2)
	assert.Len(t, c.Search("airalo"), 1)
	assert.Empty(t, c.Search("atlantis"))
}

func TestStats(t *testing.T) {
	c := sampleCatalog()
	stats := c.Stats()

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 3, stats.Countries)
	assert.Equal(t, []string{"Airalo", "Dtac", "Orange", "Ubigi"}, stats.Providers)
	assert.Equal(t, "2026-08-30T12:00:00Z", stats.Timestamp)
}

func TestSortByPrice_AscendingCopy(t *testing.T) {
	original := []ESIMPackage{
		{ID: 1, Price: 10.00},
		{ID: 2, Price: 2.50},
		{ID: 3, Price: 7.00},
	}
	sorted := SortByPrice(original)

	assert.Equal(t, []float64{2.50, 7.00, 10.00}, []float64{sorted[0].Price, sorted[1].Price, sorted[2].Price})
	// Input untouched.
	assert.Equal(t, 10.00, original[0].Price)
}

func TestSortByPrice_StableForEqualPrices(t *testing.T) {
	original := []ESIMPackage{
		{ID: 1, Provider: "A", Price: 5.00},
		{ID: 2, Provider: "B", Price: 5.00},
		{ID: 3, Provider: "C", Price: 1.00},
		{ID: 4, Provider: "D", Price: 5.00},
	}
	sorted := SortByPrice(original)

	require.Len(t, sorted, 4)
	assert.Equal(t, "C", sorted[0].Provider)
	assert.Equal(t, "A", sorted[1].Provider)
	assert.Equal(t, "B", sorted[2].Provider)
	assert.Equal(t, "D", sorted[3].Provider)
}

func TestTruncate(t *testing.T) {
	pkgs := []ESIMPackage{{ID: 1}, {ID: 2}, {ID: 3}}

	assert.Len(t, Truncate(pkgs, 2), 2)
	assert.Len(t, Truncate(pkgs, 3), 3)
	assert.Len(t, Truncate(pkgs, 10), 3)
	assert.Len(t, Truncate(pkgs, -1), 3)
	assert.Empty(t, Truncate(pkgs, 0))
}
