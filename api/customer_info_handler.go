package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/cms-admin-backend/database"
	"github.com/rpupo63/cms-admin-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type customerInfoHandler struct {
	responder        Responder
	logger           zerolog.Logger
	customerInfoRepo *database.CustomerInfoRepo
}

func newCustomerInfoHandler(customerInfoRepo *database.CustomerInfoRepo) customerInfoHandler {
	logger := log.With().Str("handlerName", "customerInfoHandler").Logger()

	return customerInfoHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		customerInfoRepo: customerInfoRepo,
	}
}

// listCustomers reads the filter from the query string. Array filters are repeated parameters.
// @Router /user/info [get]
func (h customerInfoHandler) listCustomers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		h.search(w, r, database.CustomerInfoQuery{
			CustNo:          q.Get("cust_no"),
			CustNm:          q.Get("cust_nm"),
			Eml:             q.Get("eml"),
			Hp:              q.Get("hp"),
			CustClsCd:       q.Get("cust_cls_cd"),
			CustStatCd:      q.Get("cust_stat_cd"),
			JoinTypCd:       q.Get("join_typ_cd"),
			CustClsCdArray:  queryValues(r, "cust_cls_cd_array"),
			CustStatCdArray: queryValues(r, "cust_stat_cd_array"),
			JoinTypCdArray:  queryValues(r, "join_typ_cd_array"),
		})
	}
}

// @Router /user/info [post]
func (h customerInfoHandler) searchCustomers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var query database.CustomerInfoQuery
		if err := decodeJSON(r, &query); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.search(w, r, query)
	}
}

func (h customerInfoHandler) search(w http.ResponseWriter, r *http.Request, query database.CustomerInfoQuery) {
	page, err := pageFromQuery(r)
	if err != nil {
		h.responder.WriteError(w, err)
		return
	}
	if err := validateStruct(query); err != nil {
		h.responder.WriteError(w, err)
		return
	}

	result, err := h.customerInfoRepo.Search(r.Context(), query, page)
	if err != nil {
		h.responder.WriteError(w, wrapDatabaseError("search", "customers", err))
		return
	}

	h.responder.WriteJSON(w, newPageResponse(result))
}

// @Router /user/info/{custNo} [get]
func (h customerInfoHandler) getCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		custNo, err := strconv.ParseInt(chi.URLParam(r, "custNo"), 10, 64)
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("cust_no", "must be an integer"))
			return
		}

		customer, err := h.customerInfoRepo.FindByNo(r.Context(), custNo)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "customer", err))
			return
		}

		h.responder.WriteJSON(w, customer)
	}
}
