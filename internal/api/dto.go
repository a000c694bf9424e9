package api

import "github.com/starford/sowilo/internal/models"

// DocumentSummary is the list representation (aliased from the domain layer).
type DocumentSummary = models.DocumentSummary

// DocumentDetail is the full document response (aliased from the domain layer).
type DocumentDetail = models.Document

// PostListResponse wraps the ordered post listing.
type PostListResponse struct {
	Posts []DocumentSummary `json:"posts"`
	Total int               `json:"total"`
}

// PageListResponse wraps the page listing.
type PageListResponse struct {
	Pages []DocumentSummary `json:"pages"`
	Total int               `json:"total"`
}

// SearchResult is a single search hit in the API response.
type SearchResult struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// SearchResponse wraps search results.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}
