package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"github.com/rpupo63/cms-admin-backend/errs"
)

var allowedUploadTypes = []string{"image/*", "application/pdf", "office documents"}

// Upload describes a stored file. URL is what the editor embeds in post bodies
// and thumbnail_img_url.
type Upload struct {
	DocNo       string `json:"docNo"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
}

// Uploader relays editor uploads to a FileStore and hands back a document number
type Uploader struct {
	store           FileStore
	downloadBaseURL string
}

func NewUploader(store FileStore, downloadBaseURL string) *Uploader {
	return &Uploader{store: store, downloadBaseURL: strings.TrimRight(downloadBaseURL, "/")}
}

// DownloadURL builds the public URL for a document number
func (u *Uploader) DownloadURL(docNo string) string {
	return u.downloadBaseURL + "/" + docNo
}

// Upload sniffs the content type from the bytes and stores the file under a new document number.
// Only images and documents are accepted.
func (u *Uploader) Upload(ctx context.Context, data []byte) (Upload, error) {
	if !acceptedUpload(data) {
		kind, _ := filetype.Match(data)
		return Upload{}, errs.NewUnsupportedMediaTypeError(kind.MIME.Value, allowedUploadTypes)
	}

	kind, err := filetype.Match(data)
	if err != nil {
		return Upload{}, errs.NewMalformedPayloadError("file", err)
	}

	docNo := uuid.NewString()
	if err := u.store.Put(ctx, docNo, data, kind.MIME.Value); err != nil {
		return Upload{}, errs.NewServiceUnreachableError("file store", err)
	}

	return Upload{
		DocNo:       docNo,
		URL:         u.DownloadURL(docNo),
		ContentType: kind.MIME.Value,
		Size:        len(data),
	}, nil
}

func acceptedUpload(data []byte) bool {
	return filetype.IsImage(data) || filetype.IsDocument(data) || filetype.Is(data, "pdf")
}

// Open returns the stored object; the caller closes its body
func (u *Uploader) Open(ctx context.Context, docNo string) (*Object, error) {
	obj, err := u.store.Get(ctx, docNo)
	if errors.Is(err, ErrObjectNotFound) {
		return nil, errs.NewNotFound("file")
	}
	if err != nil {
		return nil, errs.NewServiceUnreachableError("file store", err)
	}
	return obj, nil
}
