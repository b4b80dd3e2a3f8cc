package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCompatibility_EveryModelHasFullRow(t *testing.T) {
	table := DefaultCompatibility()

	for _, brand := range table.Brands {
		for _, model := range brand.Models {
			row, ok := table.Support[model]
			require.True(t, ok, "model %q missing from support matrix", model)
			for _, region := range table.Regions {
				_, ok := row[region.ID]
				assert.True(t, ok, "model %q missing region %q", model, region.ID)
			}
		}
	}
}

func TestDefaultCompatibility_NoOrphanSupportRows(t *testing.T) {
	table := DefaultCompatibility()

	listed := make(map[string]bool)
	for _, brand := range table.Brands {
		for _, model := range brand.Models {
			listed[model] = true
		}
	}
	for model := range table.Support {
		assert.True(t, listed[model], "support row %q not listed under any brand", model)
	}
}

func TestDefaultCompatibility_KnownRows(t *testing.T) {
	table := DefaultCompatibility()

	// iPhone Air is the sole mainland-China iPhone row with cn=true.
	assert.True(t, table.Support["iPhone Air"][RegionCN])
	assert.False(t, table.Support["iPhone 17 Pro"][RegionCN])
	assert.False(t, table.Support["iPhone 15"][RegionCN])

	// Galaxy S23+ mainland unit does support eSIM.
	assert.True(t, table.Support["Galaxy S23+"][RegionCN])

	// All-false hardware rows.
	for _, region := range table.Regions {
		assert.False(t, table.Support["Galaxy A53"][region.ID])
		assert.False(t, table.Support["P40 Pro"][region.ID])
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "supported", OutcomeSupported.String())
	assert.Equal(t, "unsupported", OutcomeUnsupported.String())
	assert.Equal(t, "model_not_found", OutcomeModelNotFound.String())
}
