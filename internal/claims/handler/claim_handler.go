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

	"github.com/coverlane/brokerage-automation-service/internal/claims/model"
	"github.com/coverlane/brokerage-automation-service/internal/claims/store"
	"github.com/coverlane/brokerage-automation-service/internal/system/authn"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
	"github.com/coverlane/brokerage-automation-service/internal/system/utils"
)

// ClaimHandler exposes the claim endpoints.
type ClaimHandler struct{}

// NewClaimHandler creates a new ClaimHandler.
func NewClaimHandler() *ClaimHandler {

	return &ClaimHandler{}
}

// SubmitClaim handles filing a new claim. The claim starts in the submitted
// status with a pending workflow; the stale-claims sweep acknowledges it if
// nobody does within a day.
func (ch *ClaimHandler) SubmitClaim(w http.ResponseWriter, r *http.Request) {

	principal, err := authn.PrincipalFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	var request model.ClaimFormRequest
	if err := utils.DecodeJSONBody(r, &request); err != nil {
		utils.HandleError(w, err)
		return
	}
	if request.PolicyId == "" || request.ClientId == "" || request.Type == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "policy_id, client_id and type are required.",
		}, http.StatusBadRequest))
		return
	}

	now := time.Now().UTC()
	claim := model.Claim{
		ClaimId:       uuid.New().String(),
		PolicyId:      request.PolicyId,
		ClientId:      request.ClientId,
		ClaimNumber:   fmt.Sprintf("CLM-%d", now.UnixMilli()),
		Type:          request.Type,
		Status:        model.StatusSubmitted,
		Description:   request.Description,
		AmountClaimed: request.AmountClaimed,
		SubmittedAt:   now,
		Workflow: model.ClaimWorkflow{
			Acknowledgment: model.WorkflowStep{Status: model.StepPending},
			Investigation:  model.WorkflowStep{Status: model.StepPending},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := store.AddClaim(claim); err != nil {
		utils.HandleError(w, err)
		return
	}

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorID:   principal.Subject,
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      claim.ClaimId,
		TargetType:    log.TargetTypeClaim,
		ActionID:      log.ActionSubmitClaim,
		Data:          map[string]string{"claim_number": claim.ClaimNumber},
	})

	utils.WriteJSONResponse(w, http.StatusCreated, claim)
}

// GetClaim handles fetching a single claim.
func (ch *ClaimHandler) GetClaim(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.PrincipalFromRequest(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	claimId := r.PathValue("claimId")
	claim, err := store.GetClaim(claimId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if claim == nil {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.CLAIM_NOT_FOUND.Code,
			Message:     errors2.CLAIM_NOT_FOUND.Message,
			Description: fmt.Sprintf("No claim exists with id %s.", claimId),
		}, http.StatusNotFound))
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, claim)
}
