package services

import (
	"fmt"
	"strings"

	"globalpass/internal/models"
)

type CompatibilityServiceInterface interface {
	Resolve(brand, model, region string) models.Outcome
	Check(brand, model, region string) CompatibilityResult
	Brands() []models.BrandModels
	Regions() []models.Region
}

// CompatibilityResult is the user-facing answer for one device lookup.
type CompatibilityResult struct {
	Outcome    string `json:"outcome"`
	Compatible bool   `json:"compatible"`
	Message    string `json:"message"`
	Note       string `json:"note,omitempty"`
}

type CompatibilityService struct {
	table *models.CompatibilityTable
}

func NewCompatibilityService(table *models.CompatibilityTable) CompatibilityServiceInterface {
	return &CompatibilityService{table: table}
}

// Resolve looks the model up in the flat support matrix. Matching is exact
// and case sensitive; an unknown model is ModelNotFound, a known model
// without an entry for the region is Unsupported.
func (cs *CompatibilityService) Resolve(_, model, region string) models.Outcome {
	support, ok := cs.table.Support[model]
	if !ok {
		return models.OutcomeModelNotFound
	}
	if support[region] {
		return models.OutcomeSupported
	}
	return models.OutcomeUnsupported
}

func (cs *CompatibilityService) Check(brand, model, region string) CompatibilityResult {
	outcome := cs.Resolve(brand, model, region)
	regionName := cs.regionName(region)

	switch outcome {
	case models.OutcomeModelNotFound:
		return CompatibilityResult{
			Outcome: outcome.String(),
			Message: fmt.Sprintf("We don't have eSIM data for %q yet.", model),
		}
	case models.OutcomeSupported:
		return CompatibilityResult{
			Outcome:    outcome.String(),
			Compatible: true,
			Message:    fmt.Sprintf("%s (%s) supports eSIM.", model, regionName),
			Note:       supportedNote(brand, model, region),
		}
	default:
		return CompatibilityResult{
			Outcome: outcome.String(),
			Message: fmt.Sprintf("%s (%s) does not support eSIM.", model, regionName),
			Note:    unsupportedNote(brand, model, region, regionName),
		}
	}
}

func (cs *CompatibilityService) Brands() []models.BrandModels {
	return cs.table.Brands
}

func (cs *CompatibilityService) Regions() []models.Region {
	return cs.table.Regions
}

func (cs *CompatibilityService) regionName(region string) string {
	for _, r := range cs.table.Regions {
		if r.ID == region {
			return r.Name
		}
	}
	return region
}

// supportedNote carries the per-device caveats the catalog annotates. These
// are data-driven exceptions, not brand rules.
func supportedNote(brand, model, region string) string {
	switch {
	case model == "iPhone Air" && region == models.RegionCN:
		return "iPhone Air is the only iPhone sold in mainland China that supports eSIM."
	case strings.HasPrefix(model, "Pixel 10") && region == models.RegionUS:
		return "US Pixel 10 units are eSIM only, with no physical SIM tray."
	default:
		return ""
	}
}

func unsupportedNote(brand, model, region, regionName string) string {
	switch {
	case brand == "Apple" && region == models.RegionCN && model != "iPhone Air":
		return "iPhones sold in mainland China (except iPhone Air) do not support eSIM."
	case region == models.RegionCN:
		return "The mainland China unit of this model does not support eSIM."
	default:
		return fmt.Sprintf("The %s unit of this model does not support eSIM.", regionName)
	}
}
