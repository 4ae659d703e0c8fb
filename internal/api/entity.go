package api

const (
	EntitySearchDefaultLimit = 10
	EntitySearchMaxLimit     = 20

	// EntitySearchResultType tags every EntitySearchResponse.
	EntitySearchResultType = "kg_entities"
)

type EntitySearchRequest struct {
	// Required
	Token string `json:"-"`

	// Mutually exclusive, at most one may be set.
	// Only the first keyword is used.
	Keywords []string `json:"keywords,omitempty"`
	IDs      []string `json:"ids,omitempty"`

	// Optional
	Language string   `json:"language,omitempty"`
	Types    []string `json:"types,omitempty"`
	Prefix   bool     `json:"prefix"`
	Limit    int      `json:"limit"`
}

// Keyword returns the keyword that ends up in the query parameter.
func (r EntitySearchRequest) Keyword() string {
	if len(r.Keywords) == 0 {
		return ""
	}
	return r.Keywords[0]
}

// Warning records a parameter that was adjusted instead of rejected.
type Warning struct {
	Param   string `json:"param"`
	Message string `json:"message"`
}

type Entity struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Types []string `json:"types"`
	Score float64  `json:"score"`

	// Optional
	Description         string  `json:"description,omitempty"`
	DetailedDescription *string `json:"detailedDescription,omitempty"`
}

type EntitySearchResponse struct {
	Type      string              `json:"type"`
	RequestID string              `json:"requestId"`
	Params    EntitySearchRequest `json:"params"`

	// RawURL is the URL before the final escaping pass, RequestURL is what was sent.
	RawURL     string `json:"rawUrl"`
	RequestURL string `json:"requestUrl"`

	Entities []*Entity `json:"entities"`
	Warnings []Warning `json:"warnings,omitempty"`
}
