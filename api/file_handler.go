package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/cms-admin-backend/errs"
	"github.com/rpupo63/cms-admin-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const uploadFormField = "file"

type fileHandler struct {
	responder      Responder
	logger         zerolog.Logger
	uploader       *services.Uploader
	maxUploadBytes int64
}

func newFileHandler(uploader *services.Uploader, maxUploadBytes int64) fileHandler {
	logger := log.With().Str("handlerName", "fileHandler").Logger()

	return fileHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		uploader:       uploader,
		maxUploadBytes: maxUploadBytes,
	}
}

// uploadFile accepts one multipart file and returns its document number and download URL
// @Router /files/upload [post]
func (h fileHandler) uploadFile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.uploader == nil {
			h.responder.WriteError(w, errs.NewConfigError("S3_BUCKET"))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
		file, _, err := r.FormFile(uploadFormField)
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			switch {
			case errors.As(err, &maxBytesErr):
				h.responder.WriteError(w, errs.NewMaxBodySizeExceededError(h.maxUploadBytes))
			case errors.Is(err, http.ErrMissingFile):
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError(uploadFormField))
			default:
				h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart", err))
			}
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart", err))
			return
		}

		upload, err := h.uploader.Upload(r.Context(), data)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().
			Str("docNo", upload.DocNo).
			Str("contentType", upload.ContentType).
			Int("size", upload.Size).
			Str("editor", ctxGetEditorID(r.Context())).
			Msg("file uploaded")

		h.responder.WriteJSONStatus(w, http.StatusCreated, upload)
	}
}

// @Router /files/{docNo} [get]
func (h fileHandler) downloadFile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.uploader == nil {
			h.responder.WriteError(w, errs.NewConfigError("S3_BUCKET"))
			return
		}

		obj, err := h.uploader.Open(r.Context(), chi.URLParam(r, "docNo"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer obj.Body.Close()

		if obj.ContentType != "" {
			w.Header().Set("Content-Type", obj.ContentType)
		}
		if obj.Size > 0 {
			w.Header().Set("Content-Length", strconv.FormatInt(obj.Size, 10))
		}
		w.Header().Set("Cache-Control", "public, max-age=86400")
		w.WriteHeader(http.StatusOK)

		if _, err := io.Copy(w, obj.Body); err != nil {
			h.logger.Error().Err(err).Msg("error streaming file")
		}
	}
}
