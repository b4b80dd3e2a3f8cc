package models

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is one exchange in the assistant conversation. Turns live only in
// the client session history and are never persisted.
type ChatTurn struct {
	Role                string        `json:"role"`
	Content             string        `json:"content"`
	RecommendedPackages []ESIMPackage `json:"recommendedPackages,omitempty"`
}

type ChatRequest struct {
	Question    string `json:"question"`
	CountryHint string `json:"countryHint,omitempty"`
}

type ChatAnswer struct {
	Answer   string        `json:"answer"`
	Packages []ESIMPackage `json:"packages"`
}
