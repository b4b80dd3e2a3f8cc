package models

// row builds one region support entry in the fixed region order.
func row(global, cn, hk, us, jp, eu bool) map[string]bool {
	return map[string]bool{
		RegionGlobal: global,
		RegionCN:     cn,
		RegionHK:     hk,
		RegionUS:     us,
		RegionJP:     jp,
		RegionEU:     eu,
	}
}

// DefaultCompatibility is the canonical device data set. Every model carries
// a full region row, so regional exceptions are plain data.
func DefaultCompatibility() *CompatibilityTable {
	return &CompatibilityTable{
		Regions: []Region{
			{ID: RegionGlobal, Name: "Global"},
			{ID: RegionCN, Name: "China Mainland"},
			{ID: RegionHK, Name: "Hong Kong/Macau"},
			{ID: RegionUS, Name: "USA"},
			{ID: RegionJP, Name: "Japan"},
			{ID: RegionEU, Name: "Europe"},
		},
		Brands: []BrandModels{
			{Brand: "Apple", Models: []string{
				"iPhone 17 Pro Max", "iPhone 17 Pro", "iPhone 17", "iPhone Air",
				"iPhone 16 Pro Max", "iPhone 16 Pro", "iPhone 16 Plus", "iPhone 16",
				"iPhone 15 Pro Max", "iPhone 15 Pro", "iPhone 15 Plus", "iPhone 15",
				"iPhone 14 Pro Max", "iPhone 14 Pro", "iPhone 14 Plus", "iPhone 14",
				"iPhone 13 Pro Max", "iPhone 13 Pro", "iPhone 13", "iPhone 13 mini",
				"iPhone 12 Pro Max", "iPhone 12 Pro", "iPhone 12", "iPhone 12 mini",
				"iPhone 11 Pro Max", "iPhone 11 Pro", "iPhone 11",
				"iPhone XS Max", "iPhone XS", "iPhone XR",
				"iPhone SE (2022)", "iPhone SE (2020)",
			}},
			{Brand: "Samsung", Models: []string{
				"Galaxy S26 Ultra", "Galaxy S26+", "Galaxy S26",
				"Galaxy S24 Ultra", "Galaxy S24+", "Galaxy S24",
				"Galaxy Z Fold 6", "Galaxy Z Fold 5", "Galaxy Z Flip 6", "Galaxy Z Flip 5",
				"Galaxy S23 Ultra", "Galaxy S23+", "Galaxy S23", "Galaxy S23 FE",
				"Galaxy Z Fold 4", "Galaxy Z Flip 4",
				"Galaxy S22 Ultra", "Galaxy S22+", "Galaxy S22",
				"Galaxy Z Fold 3", "Galaxy Z Flip 3",
				"Galaxy S21 Ultra", "Galaxy S21+", "Galaxy S21", "Galaxy S21 FE",
				"Galaxy A54", "Galaxy A53", "Galaxy A34",
			}},
			{Brand: "Google", Models: []string{
				"Pixel 10 Pro XL", "Pixel 10 Pro", "Pixel 10",
				"Pixel 9 Pro XL", "Pixel 9 Pro", "Pixel 9",
				"Pixel 8 Pro", "Pixel 8", "Pixel 8a",
				"Pixel 7 Pro", "Pixel 7", "Pixel 7a",
				"Pixel 6 Pro", "Pixel 6", "Pixel 6a",
				"Pixel 5", "Pixel 4a",
			}},
			{Brand: "Huawei", Models: []string{
				"Pura 70 Ultra", "Pura 70 Pro", "Pura 70",
				"Mate 60 Pro+", "Mate 60 Pro", "Mate 60",
				"P60 Pro", "P60", "P50 Pro", "P50",
				"Mate 50 Pro", "Mate 50",
				"P40 Pro", "Mate 40 Pro",
			}},
			{Brand: "Xiaomi", Models: []string{
				"Xiaomi 14 Ultra", "Xiaomi 14 Pro", "Xiaomi 14",
				"Xiaomi 13 Ultra", "Xiaomi 13 Pro", "Xiaomi 13",
				"Xiaomi 12S Ultra", "Xiaomi 12 Pro", "Xiaomi 12",
				"Xiaomi 11 Ultra", "Xiaomi 11 Pro", "Xiaomi 11",
				"Redmi Note 13 Pro+", "Redmi Note 12 Pro+",
			}},
			{Brand: "OPPO", Models: []string{
				"Find X7 Ultra", "Find X7 Pro", "Find X7",
				"Find X6 Pro", "Find X6",
				"Find X5 Pro", "Find X5",
				"Reno 11 Pro", "Reno 10 Pro+",
			}},
			{Brand: "OnePlus", Models: []string{
				"OnePlus 12", "OnePlus 12R",
				"OnePlus 11", "OnePlus 11R",
				"OnePlus 10 Pro", "OnePlus 10T",
				"OnePlus 9 Pro", "OnePlus 9",
			}},
		},
		Support: map[string]map[string]bool{
			// Apple: mainland-China units lack eSIM across the lineup, with
			// one exception below.
			"iPhone 17 Pro Max": row(true, false, true, true, true, true),
			"iPhone 17 Pro":     row(true, false, true, true, true, true),
			"iPhone 17":         row(true, false, true, true, true, true),
			// iPhone Air is the only iPhone sold in mainland China with eSIM.
			"iPhone Air": row(true, true, true, true, true, true),

			"iPhone 16 Pro Max": row(true, false, true, true, true, true),
			"iPhone 16 Pro":     row(true, false, true, true, true, true),
			"iPhone 16 Plus":    row(true, false, true, true, true, true),
			"iPhone 16":         row(true, false, true, true, true, true),

			"iPhone 15 Pro Max": row(true, false, true, true, true, true),
			"iPhone 15 Pro":     row(true, false, true, true, true, true),
			"iPhone 15 Plus":    row(true, false, true, true, true, true),
			"iPhone 15":         row(true, false, true, true, true, true),

			"iPhone 14 Pro Max": row(true, false, true, true, true, true),
			"iPhone 14 Pro":     row(true, false, true, true, true, true),
			"iPhone 14 Plus":    row(true, false, true, true, true, true),
			"iPhone 14":         row(true, false, true, true, true, true),

			"iPhone 13 Pro Max": row(true, false, true, true, true, true),
			"iPhone 13 Pro":     row(true, false, true, true, true, true),
			"iPhone 13":         row(true, false, true, true, true, true),
			"iPhone 13 mini":    row(true, false, true, true, true, true),

			"iPhone 12 Pro Max": row(true, false, true, true, true, true),
			"iPhone 12 Pro":     row(true, false, true, true, true, true),
			"iPhone 12":         row(true, false, true, true, true, true),
			"iPhone 12 mini":    row(true, false, true, true, true, true),

			"iPhone 11 Pro Max": row(true, false, true, true, true, true),
			"iPhone 11 Pro":     row(true, false, true, true, true, true),
			"iPhone 11":         row(true, false, true, true, true, true),

			"iPhone XS Max": row(true, false, true, true, true, true),
			"iPhone XS":     row(true, false, true, true, true, true),
			"iPhone XR":     row(true, false, true, true, true, true),

			"iPhone SE (2022)": row(true, false, true, true, true, true),
			"iPhone SE (2020)": row(true, false, true, true, true, true),

			// Samsung: S23 and later also ship eSIM in mainland China.
			"Galaxy S26 Ultra": row(true, true, true, true, true, true),
			"Galaxy S26+":      row(true, true, true, true, true, true),
			"Galaxy S26":       row(true, true, true, true, true, true),

			"Galaxy S24 Ultra": row(true, true, true, true, true, true),
			"Galaxy S24+":      row(true, true, true, true, true, true),
			"Galaxy S24":       row(true, true, true, true, true, true),
			"Galaxy Z Fold 6":  row(true, true, true, true, true, true),
			"Galaxy Z Fold 5":  row(true, true, true, true, true, true),
			"Galaxy Z Flip 6":  row(true, true, true, true, true, true),
			"Galaxy Z Flip 5":  row(true, true, true, true, true, true),

			"Galaxy S23 Ultra": row(true, true, true, true, true, true),
			"Galaxy S23+":      row(true, true, true, true, true, true),
			"Galaxy S23":       row(true, true, true, true, true, true),
			"Galaxy S23 FE":    row(true, true, true, true, true, true),
			"Galaxy Z Fold 4":  row(true, true, true, true, true, true),
			"Galaxy Z Flip 4":  row(true, true, true, true, true, true),

			"Galaxy S22 Ultra": row(true, false, true, true, true, true),
			"Galaxy S22+":      row(true, false, true, true, true, true),
			"Galaxy S22":       row(true, false, true, true, true, true),
			"Galaxy Z Fold 3":  row(true, false, true, true, true, true),
			"Galaxy Z Flip 3":  row(true, false, true, true, true, true),

			"Galaxy S21 Ultra": row(true, false, true, true, true, true),
			"Galaxy S21+":      row(true, false, true, true, true, true),
			"Galaxy S21":       row(true, false, true, true, true, true),
			"Galaxy S21 FE":    row(true, false, true, true, true, true),

			"Galaxy A54": row(true, false, false, true, false, true),
			"Galaxy A53": row(false, false, false, false, false, false),
			"Galaxy A34": row(false, false, false, false, false, false),

			// Google: US Pixel 10 units are eSIM only.
			"Pixel 10 Pro XL": row(true, false, true, true, true, true),
			"Pixel 10 Pro":    row(true, false, true, true, true, true),
			"Pixel 10":        row(true, false, true, true, true, true),

			"Pixel 9 Pro XL": row(true, false, true, true, true, true),
			"Pixel 9 Pro":    row(true, false, true, true, true, true),
			"Pixel 9":        row(true, false, true, true, true, true),

			"Pixel 8 Pro": row(true, false, true, true, true, true),
			"Pixel 8":     row(true, false, true, true, true, true),
			"Pixel 8a":    row(true, false, true, true, true, true),

			"Pixel 7 Pro": row(true, false, true, true, true, true),
			"Pixel 7":     row(true, false, true, true, true, true),
			"Pixel 7a":    row(true, false, true, true, true, true),

			"Pixel 6 Pro": row(true, false, true, true, true, true),
			"Pixel 6":     row(true, false, true, true, true, true),
			"Pixel 6a":    row(true, false, true, true, true, true),

			"Pixel 5":  row(true, false, true, true, true, true),
			"Pixel 4a": row(true, false, true, true, true, true),

			// Huawei: international units only.
			"Pura 70 Ultra": row(true, false, true, false, false, true),
			"Pura 70 Pro":   row(true, false, true, false, false, true),
			"Pura 70":       row(true, false, true, false, false, true),
			"Mate 60 Pro+":  row(true, false, true, false, false, true),
			"Mate 60 Pro":   row(true, false, true, false, false, true),
			"Mate 60":       row(true, false, true, false, false, true),
			"P60 Pro":       row(true, false, true, false, false, true),
			"P60":           row(true, false, true, false, false, true),
			"P50 Pro":       row(true, false, true, false, false, true),
			"P50":           row(true, false, true, false, false, true),
			"Mate 50 Pro":   row(true, false, true, false, false, true),
			"Mate 50":       row(true, false, true, false, false, true),
			"P40 Pro":       row(false, false, false, false, false, false),
			"Mate 40 Pro":   row(false, false, false, false, false, false),

			// Xiaomi: international units only.
			"Xiaomi 14 Ultra":    row(true, false, true, false, false, true),
			"Xiaomi 14 Pro":      row(true, false, true, false, false, true),
			"Xiaomi 14":          row(true, false, true, false, false, true),
			"Xiaomi 13 Ultra":    row(true, false, true, false, false, true),
			"Xiaomi 13 Pro":      row(true, false, true, false, false, true),
			"Xiaomi 13":          row(true, false, true, false, false, true),
			"Xiaomi 12S Ultra":   row(true, false, true, false, false, true),
			"Xiaomi 12 Pro":      row(true, false, true, false, false, true),
			"Xiaomi 12":          row(true, false, true, false, false, true),
			"Xiaomi 11 Ultra":    row(true, false, true, false, false, true),
			"Xiaomi 11 Pro":      row(true, false, true, false, false, true),
			"Xiaomi 11":          row(true, false, true, false, false, true),
			"Redmi Note 13 Pro+": row(false, false, false, false, false, false),
			"Redmi Note 12 Pro+": row(false, false, false, false, false, false),

			// OPPO: international units only.
			"Find X7 Ultra": row(true, false, true, false, false, true),
			"Find X7 Pro":   row(true, false, true, false, false, true),
			"Find X7":       row(true, false, true, false, false, true),
			"Find X6 Pro":   row(true, false, true, false, false, true),
			"Find X6":       row(true, false, true, false, false, true),
			"Find X5 Pro":   row(true, false, true, false, false, true),
			"Find X5":       row(true, false, true, false, false, true),
			"Reno 11 Pro":   row(false, false, false, false, false, false),
			"Reno 10 Pro+":  row(false, false, false, false, false, false),

			// OnePlus.
			"OnePlus 12":     row(true, false, true, true, false, true),
			"OnePlus 12R":    row(true, false, true, true, false, true),
			"OnePlus 11":     row(true, false, true, true, false, true),
			"OnePlus 11R":    row(true, false, true, true, false, true),
			"OnePlus 10 Pro": row(true, false, true, true, false, true),
			"OnePlus 10T":    row(true, false, true, true, false, true),
			"OnePlus 9 Pro":  row(true, false, true, true, false, true),
			"OnePlus 9":      row(true, false, true, true, false, true),
		},
	}
}
