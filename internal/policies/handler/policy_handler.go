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

	"github.com/coverlane/brokerage-automation-service/internal/policies/model"
	"github.com/coverlane/brokerage-automation-service/internal/policies/store"
	"github.com/coverlane/brokerage-automation-service/internal/system/authn"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
	"github.com/coverlane/brokerage-automation-service/internal/system/utils"
)

// PolicyHandler exposes the policy endpoints.
type PolicyHandler struct{}

// NewPolicyHandler creates a new PolicyHandler.
func NewPolicyHandler() *PolicyHandler {

	return &PolicyHandler{}
}

// AddPolicy handles issuing a new policy.
func (ph *PolicyHandler) AddPolicy(w http.ResponseWriter, r *http.Request) {

	principal, err := authn.PrincipalFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	var request model.PolicyFormRequest
	if err := utils.DecodeJSONBody(r, &request); err != nil {
		utils.HandleError(w, err)
		return
	}
	if request.ClientId == "" || request.ProductType == "" ||
		request.Effective.IsZero() || request.Expiration.IsZero() {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "client_id, product_type, effective and expiration are required.",
		}, http.StatusBadRequest))
		return
	}

	now := time.Now().UTC()
	policy := model.Policy{
		PolicyId:      uuid.New().String(),
		ClientId:      request.ClientId,
		PolicyNumber:  fmt.Sprintf("POL-%d", now.UnixMilli()),
		ProductType:   request.ProductType,
		Status:        model.StatusActive,
		Premium:       request.Premium,
		Currency:      request.Currency,
		PaymentStatus: model.PaymentStatusCurrent,
		Payment: model.PolicyPayment{
			NextDueDate: request.NextDueDate,
			Frequency:   request.PaymentFrequency,
			Method:      request.PaymentMethod,
		},
		Dates: model.PolicyDates{
			Effective:  request.Effective,
			Expiration: request.Expiration,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := store.AddPolicy(policy); err != nil {
		utils.HandleError(w, err)
		return
	}

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorID:   principal.Subject,
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      policy.PolicyId,
		TargetType:    log.TargetTypePolicy,
		ActionID:      log.ActionAddPolicy,
		Data:          map[string]string{"policy_number": policy.PolicyNumber},
	})

	utils.WriteJSONResponse(w, http.StatusCreated, policy)
}

// GetPolicy handles fetching a single policy.
func (ph *PolicyHandler) GetPolicy(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.PrincipalFromRequest(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	policyId := r.PathValue("policyId")
	policy, err := store.GetPolicy(policyId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if policy == nil {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.POLICY_NOT_FOUND.Code,
			Message:     errors2.POLICY_NOT_FOUND.Message,
			Description: fmt.Sprintf("No policy exists with id %s.", policyId),
		}, http.StatusNotFound))
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, policy)
}

// GetPoliciesForClient handles listing one client's policies.
func (ph *PolicyHandler) GetPoliciesForClient(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.PrincipalFromRequest(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	policies, err := store.GetPoliciesForClient(r.PathValue("clientId"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if policies == nil {
		policies = []model.Policy{}
	}
	utils.WriteJSONResponse(w, http.StatusOK, policies)
}
