/*
 * Copyright (c) 2026, Coverlane, Inc. (https://www.coverlane.io).
 *
 * Coverlane, Inc. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/coverlane/brokerage-automation-service/internal/quotes/model"
	"github.com/coverlane/brokerage-automation-service/internal/quotes/store"
	"github.com/coverlane/brokerage-automation-service/internal/system/authn"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
	"github.com/coverlane/brokerage-automation-service/internal/system/utils"
)

// QuoteHandler exposes the quote endpoints.
type QuoteHandler struct{}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler() *QuoteHandler {

	return &QuoteHandler{}
}

// AddQuote handles drafting a new quote for the calling broker.
func (qh *QuoteHandler) AddQuote(w http.ResponseWriter, r *http.Request) {

	principal, err := authn.PrincipalFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	var request model.QuoteFormRequest
	if err := utils.DecodeJSONBody(r, &request); err != nil {
		utils.HandleError(w, err)
		return
	}
	if request.ClientId == "" || request.ProductType == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "client_id and product_type are required.",
		}, http.StatusBadRequest))
		return
	}

	now := time.Now().UTC()
	quote := model.Quote{
		QuoteId:        uuid.New().String(),
		ClientId:       request.ClientId,
		BrokerId:       principal.Subject,
		ProductType:    request.ProductType,
		Status:         model.StatusDraft,
		Premium:        request.Premium,
		CoverageAmount: request.CoverageAmount,
		Currency:       request.Currency,
		ValidUntil:     request.ValidUntil,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := store.AddQuote(quote); err != nil {
		utils.HandleError(w, err)
		return
	}

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorID:   principal.Subject,
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      quote.QuoteId,
		TargetType:    log.TargetTypeQuote,
		ActionID:      log.ActionAddQuote,
		Data:          map[string]string{"client_id": quote.ClientId},
	})

	utils.WriteJSONResponse(w, http.StatusCreated, quote)
}

// GetQuote handles fetching a single quote.
func (qh *QuoteHandler) GetQuote(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.PrincipalFromRequest(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	quoteId := r.PathValue("quoteId")
	quote, err := store.GetQuote(quoteId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if quote == nil {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.QUOTE_NOT_FOUND.Code,
			Message:     errors2.QUOTE_NOT_FOUND.Message,
			Description: fmt.Sprintf("No quote exists with id %s.", quoteId),
		}, http.StatusNotFound))
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, quote)
}

// GetQuotesForClient handles listing one client's quotes, newest first.
func (qh *QuoteHandler) GetQuotesForClient(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.PrincipalFromRequest(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	quotes, err := store.GetQuotesForClient(r.PathValue("clientId"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if quotes == nil {
		quotes = []model.Quote{}
	}
	utils.WriteJSONResponse(w, http.StatusOK, quotes)
}
