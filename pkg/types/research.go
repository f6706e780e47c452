// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ResearchInput identifies the company to research. CompanyName is required.
type ResearchInput struct {
	CompanyName string `json:"companyName" yaml:"company_name"`
	Website     string `json:"website,omitempty" yaml:"website,omitempty"`
	LinkedInURL string `json:"linkedInUrl,omitempty" yaml:"linkedin_url,omitempty"`
}

// SearchHit is one ranked text snippet returned by the search provider.
type SearchHit struct {
	Title         string    `json:"title" yaml:"title"`
	URL           string    `json:"url" yaml:"url"`
	Text          string    `json:"text" yaml:"text"`
	Highlight     string    `json:"highlight,omitempty" yaml:"highlight,omitempty"`
	PublishedDate time.Time `json:"publishedDate,omitempty" yaml:"published_date,omitempty"`
	Score         float64   `json:"score" yaml:"score"`
}
