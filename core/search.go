package core

// SearchResult is the normalized shape of one web-search hit, constructed at
// the provider-adapter boundary from vendor-specific JSON. Position follows
// the vendor's ranking (1-based when the vendor supplies none). Results are
// never deduplicated across providers.
type SearchResult struct {
	Position int    `json:"position"`
	Title    string `json:"title"`
	Link     string `json:"link"`
	Snippet  string `json:"snippet"`
}

// PersonaRecord is a structured person profile heuristically derived from a
// single SearchResult. Every field is best-effort; absence is the empty
// string. A record has no identity beyond the request that produced it.
type PersonaRecord struct {
	FullName    string `json:"full_name,omitempty"`
	JobTitle    string `json:"job_title,omitempty"`
	Company     string `json:"company,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Experience  string `json:"experience,omitempty"`
	Email       string `json:"email,omitempty"`
	SocialMedia string `json:"social_media,omitempty"`
	SourceURL   string `json:"source_url,omitempty"`
	Bio         string `json:"bio,omitempty"`
}
