package models

import (
	"sort"
	"strings"
)

const (
	DataTypeData      = "Data"
	DataTypeUnlimited = "Unlimited"
)

// ESIMPackage is one purchasable data plan offer. Records are produced by an
// external ingestion process and are read-only here.
type ESIMPackage struct {
	ID          int64   `json:"id"`
	Country     string  `json:"country"`
	Provider    string  `json:"provider"`
	PlanName    string  `json:"plan_name"`
	DataType    string  `json:"data_type"`
	DataAmount  string  `json:"data_amount"`
	Validity    string  `json:"validity"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency,omitempty"`
	Network     string  `json:"network"`
	Link        string  `json:"link"`
	RawData     string  `json:"raw_data,omitempty"`
	LastChecked string  `json:"last_checked"`
}

// Catalog is the static package catalog, grouped by country.
type Catalog struct {
	Timestamp     string                   `json:"timestamp"`
	TotalPackages int                      `json:"total_packages"`
	Countries     []string                 `json:"countries"`
	Packages      map[string][]ESIMPackage `json:"packages"`
	All           []ESIMPackage            `json:"all_packages"`
}

// Normalize derives the flattened views from the per-country map. The feed
// usually ships them, but older exports carry only the map.
func (c *Catalog) Normalize() {
	if c.Packages == nil {
		c.Packages = make(map[string][]ESIMPackage)
	}
	if len(c.Countries) == 0 {
		for country := range c.Packages {
			c.Countries = append(c.Countries, country)
		}
		sort.Strings(c.Countries)
	}
	if len(c.All) == 0 {
		for _, country := range c.Countries {
			c.All = append(c.All, c.Packages[country]...)
		}
	}
	if c.TotalPackages == 0 {
		c.TotalPackages = len(c.All)
	}
}

func (c *Catalog) ByCountry(country string) []ESIMPackage {
	return c.Packages[country]
}

func (c *Catalog) Unlimited() []ESIMPackage {
	var result []ESIMPackage
	for _, pkg := range c.All {
		if pkg.DataType == DataTypeUnlimited {
			result = append(result, pkg)
		}
	}
	return result
}

// Search returns packages whose country or provider contains the query,
// case-insensitively.
func (c *Catalog) Search(query string) []ESIMPackage {
	q := strings.ToLower(query)
	var result []ESIMPackage
	for _, pkg := range c.All {
		if strings.Contains(strings.ToLower(pkg.Country), q) ||
			strings.Contains(strings.ToLower(pkg.Provider), q) {
			result = append(result, pkg)
		}
	}
	return result
}

type CatalogStats struct {
	Total     int      `json:"total"`
	Countries int      `json:"countries"`
	Providers []string `json:"providers"`
	Timestamp string   `json:"timestamp"`
}

func (c *Catalog) Stats() CatalogStats {
	seen := make(map[string]struct{})
	var providers []string
	for _, pkg := range c.All {
		if _, ok := seen[pkg.Provider]; !ok {
			seen[pkg.Provider] = struct{}{}
			providers = append(providers, pkg.Provider)
		}
	}
	sort.Strings(providers)
	return CatalogStats{
		Total:     len(c.All),
		Countries: len(c.Countries),
		Providers: providers,
		Timestamp: c.Timestamp,
	}
}

// SortByPrice returns a copy sorted by ascending price. The sort is stable:
// equal prices keep their catalog order.
func SortByPrice(packages []ESIMPackage) []ESIMPackage {
	result := make([]ESIMPackage, len(packages))
	copy(result, packages)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Price < result[j].Price
	})
	return result
}

func Truncate(packages []ESIMPackage, n int) []ESIMPackage {
	if n < 0 || n >= len(packages) {
		return packages
	}
	return packages[:n]
}
