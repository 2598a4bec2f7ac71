package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/cms-admin-backend/database"
	"github.com/rpupo63/cms-admin-backend/errs"
	"github.com/rpupo63/cms-admin-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type blogPostHandler struct {
	responder    Responder
	logger       zerolog.Logger
	blogPostRepo *database.BlogPostRepo
	excerpter    *services.Excerpter
}

func newBlogPostHandler(blogPostRepo *database.BlogPostRepo, excerpter *services.Excerpter) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		blogPostRepo: blogPostRepo,
		excerpter:    excerpter,
	}
}

// searchBlogPosts lists posts that are not deleted
// @Router /blog [get]
func (h blogPostHandler) searchBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := pageFromQuery(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		q := r.URL.Query()
		query := database.BlogPostQuery{
			Titl:   q.Get("titl"),
			Tag:    q.Get("tag"),
			PstgYn: q.Get("pstg_yn"),
		}
		if err := validateStruct(query); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		result, err := h.blogPostRepo.Search(r.Context(), query, page)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("search", "blog posts", err))
			return
		}

		blogs := make([]BlogPostSummary, 0, len(result.Rows))
		for _, post := range result.Rows {
			blogs = append(blogs, BlogPostSummary{
				BlogPost: post,
				Tags:     post.Tags(),
				Summary:  h.excerpter.Excerpt(post.Contt),
			})
		}

		h.responder.WriteJSON(w, BlogPostCollection{
			Blogs:      blogs,
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		})
	}
}

// @Router /blog/{bltnNo} [get]
func (h blogPostHandler) getBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, err := h.blogPostRepo.FindByID(r.Context(), chi.URLParam(r, "bltnNo"))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog post", err))
			return
		}

		h.responder.WriteJSON(w, BlogPostDetail{BlogPost: *post, Tags: post.Tags()})
	}
}

// createBlogPost stores a new post; the server assigns bltn_no and audit columns
// @Router /blog [post]
func (h blogPostHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BlogPostRequest
		if err := decodeJSON(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		post := req.post()
		if err := validateStruct(post); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		editorID := ctxGetEditorID(r.Context())
		if err := h.blogPostRepo.Add(r.Context(), &post, editorID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "blog post", err))
			return
		}

		h.logger.Info().
			Str("bltnNo", post.BltnNo).
			Str("editor", editorID).
			Bool("published", post.Published()).
			Msg("blog post created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, BlogPostDetail{BlogPost: post, Tags: post.Tags()})
	}
}

// @Router /blog/{bltnNo} [put]
func (h blogPostHandler) updateBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BlogPostRequest
		if err := decodeJSON(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		post := req.post()
		if err := validateStruct(post); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		// the path wins over any id in the body
		post.BltnNo = chi.URLParam(r, "bltnNo")

		if err := h.blogPostRepo.Update(r.Context(), &post, ctxGetEditorID(r.Context())); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "blog post", err))
			return
		}

		updated, err := h.blogPostRepo.FindByID(r.Context(), post.BltnNo)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog post", err))
			return
		}
		h.logger.Info().Str("bltnNo", updated.BltnNo).Bool("published", updated.Published()).Msg("blog post updated")

		h.responder.WriteJSON(w, BlogPostDetail{BlogPost: *updated, Tags: updated.Tags()})
	}
}

// deleteBlogPost flags the post as deleted; the row is kept
// @Router /blog/{bltnNo} [delete]
func (h blogPostHandler) deleteBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bltnNo := chi.URLParam(r, "bltnNo")
		if bltnNo == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("bltn_no"))
			return
		}

		if err := h.blogPostRepo.Delete(r.Context(), bltnNo, ctxGetEditorID(r.Context())); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "blog post", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog post deleted successfully",
		})
	}
}
