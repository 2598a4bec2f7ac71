package api

import (
	"net/http"

	"github.com/rpupo63/cms-admin-backend/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type agreementHandler struct {
	responder     Responder
	logger        zerolog.Logger
	agreementRepo *database.AgreementRepo
}

func newAgreementHandler(agreementRepo *database.AgreementRepo) agreementHandler {
	logger := log.With().Str("handlerName", "agreementHandler").Logger()

	return agreementHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		agreementRepo: agreementRepo,
	}
}

// @Router /user/agree [get]
func (h agreementHandler) listAgreements() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		h.search(w, r, database.AgreementQuery{
			CustNm:         q.Get("cust_nm"),
			TmcndPlcyClsCd: q.Get("tmcnd_plcy_cls_cd"),
			AgreYn:         q.Get("agre_yn"),
		})
	}
}

// searchAgreements takes the filter as a JSON body and the page from the query string
// @Router /user/agree/search [post]
func (h agreementHandler) searchAgreements() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var query database.AgreementQuery
		if err := decodeJSON(r, &query); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.search(w, r, query)
	}
}

func (h agreementHandler) search(w http.ResponseWriter, r *http.Request, query database.AgreementQuery) {
	page, err := pageFromQuery(r)
	if err != nil {
		h.responder.WriteError(w, err)
		return
	}
	if err := validateStruct(query); err != nil {
		h.responder.WriteError(w, err)
		return
	}

	result, err := h.agreementRepo.Search(r.Context(), query, page)
	if err != nil {
		h.responder.WriteError(w, wrapDatabaseError("search", "agreements", err))
		return
	}

	h.responder.WriteJSON(w, newPageResponse(result))
}

// updateConsent sets agre_yn on every row matching the customer name and policy code.
// Zero matches is not an error.
// @Router /user/agree [put]
func (h agreementHandler) updateConsent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var update database.ConsentUpdate
		if err := decodeJSON(r, &update); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := validateStruct(update); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		updated, err := h.agreementRepo.UpdateConsent(r.Context(), update, ctxGetEditorID(r.Context()))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "agreements", err))
			return
		}

		h.logger.Info().
			Str("custNm", update.CustNm).
			Str("policy", update.TmcndPlcyClsCd).
			Bool("agreed", *update.AgreYn).
			Int64("updated", updated).
			Msg("consent updated")

		h.responder.WriteJSON(w, ConsentUpdateResponse{Updated: updated})
	}
}
