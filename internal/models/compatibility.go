package models

// Outcome of a compatibility lookup. ModelNotFound means the device is absent
// from the table, which is different from a known device without support.
type Outcome int

const (
	OutcomeModelNotFound Outcome = iota
	OutcomeUnsupported
	OutcomeSupported
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSupported:
		return "supported"
	case OutcomeUnsupported:
		return "unsupported"
	default:
		return "model_not_found"
	}
}

// Sales region codes used by the support matrix.
const (
	RegionGlobal = "global"
	RegionCN     = "cn"
	RegionHK     = "hk"
	RegionUS     = "us"
	RegionJP     = "jp"
	RegionEU     = "eu"
)

type Region struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BrandModels struct {
	Brand  string   `json:"brand"`
	Models []string `json:"models"`
}

// CompatibilityTable holds the static device compatibility data set. The
// support matrix is flat (model keyed, brand independent) and every model
// stores its own full region row: exceptions to a brand's usual pattern are
// plain data, not overrides.
type CompatibilityTable struct {
	Regions []Region
	Brands  []BrandModels
	Support map[string]map[string]bool
}
