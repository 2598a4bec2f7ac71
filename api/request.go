package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rpupo63/cms-admin-backend/database"
	"github.com/rpupo63/cms-admin-backend/errs"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// V returns the shared validator; field names in its errors are the JSON names
func V() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

func validateStruct(v any) error {
	err := V().Struct(v)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return errs.NewBadRequestError(err.Error())
	}

	fieldErr := validationErrs[0]
	switch fieldErr.Tag() {
	case "required":
		return errs.NewMissingRequiredFieldError(fieldErr.Field())
	case "oneof":
		return errs.NewInvalidFieldError(fieldErr.Field(), fmt.Sprintf("must be one of [%s]", fieldErr.Param()))
	default:
		return errs.NewInvalidFieldError(fieldErr.Field(), fmt.Sprintf("failed %s validation", fieldErr.Tag()))
	}
}

// decodeJSON reads the whole body into dst. An empty body leaves dst untouched.
func decodeJSON(r *http.Request, dst any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return errs.NewMaxBodySizeExceededError(maxBytesErr.Limit)
		}
		return errs.NewMalformedPayloadError("request", err)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return errs.NewInvalidJSONError(err)
	}
	return nil
}

func pageFromQuery(r *http.Request) (database.Page, error) {
	q := r.URL.Query()
	return database.ParsePage(q.Get("page"), q.Get("limit"))
}

// queryValues collects a repeated parameter. Both name and name[] are accepted,
// and comma-separated values are split.
func queryValues(r *http.Request, name string) []string {
	q := r.URL.Query()
	var values []string
	for _, key := range []string{name, name + "[]"} {
		for _, raw := range q[key] {
			for _, v := range strings.Split(raw, ",") {
				if v = strings.TrimSpace(v); v != "" {
					values = append(values, v)
				}
			}
		}
	}
	return values
}
