package api

import (
	"github.com/rpupo63/cms-admin-backend/database"
	"github.com/rpupo63/cms-admin-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	blogPostHandler     blogPostHandler
	agreementHandler    agreementHandler
	customerInfoHandler customerInfoHandler
	fileHandler         fileHandler
	healthHandler       healthHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	Cause   string `json:"cause,omitempty"`
}

// PageResponse is the envelope for agreement and customer searches
type PageResponse[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

func newPageResponse[T any](result database.Result[T]) PageResponse[T] {
	return PageResponse[T]{
		Data:       result.Rows,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}
}

// BlogPostSummary is a list entry: the stored row plus derived fields
type BlogPostSummary struct {
	models.BlogPost
	Tags    []string `json:"tags"`
	Summary string   `json:"summary"`
}

type BlogPostCollection struct {
	Blogs      []BlogPostSummary `json:"blogs"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

// BlogPostRequest is the create/update body. Tags may be sent as a list, as
// returned by the detail endpoint, instead of the comma-joined tag column.
type BlogPostRequest struct {
	models.BlogPost
	Tags []string `json:"tags"`
}

func (r BlogPostRequest) post() models.BlogPost {
	post := r.BlogPost
	if post.Tag == "" && len(r.Tags) > 0 {
		post.Tag = models.JoinTags(r.Tags)
	}
	return post
}

// BlogPostDetail is a single post with its split tags
type BlogPostDetail struct {
	models.BlogPost
	Tags []string `json:"tags"`
}

type ConsentUpdateResponse struct {
	Updated int64 `json:"updated"`
}
