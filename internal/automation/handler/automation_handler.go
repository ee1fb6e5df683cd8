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
	"net/http"

	"github.com/coverlane/brokerage-automation-service/internal/automation/model"
	"github.com/coverlane/brokerage-automation-service/internal/automation/provider"
	"github.com/coverlane/brokerage-automation-service/internal/system/authn"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
	"github.com/coverlane/brokerage-automation-service/internal/system/utils"
)

// AutomationHandler exposes rule management and the manual trigger endpoint.
type AutomationHandler struct {
	provider provider.AutomationProviderInterface
}

// NewAutomationHandler creates a handler over the given provider.
func NewAutomationHandler(p provider.AutomationProviderInterface) *AutomationHandler {

	return &AutomationHandler{provider: p}
}

// AddAutomationRule handles adding a new rule.
func (ah *AutomationHandler) AddAutomationRule(w http.ResponseWriter, r *http.Request) {

	principal, err := authn.PrincipalFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	var request model.CreateRuleRequest
	if err := utils.DecodeJSONBody(r, &request); err != nil {
		utils.HandleError(w, err)
		return
	}

	rule, err := ah.provider.GetRulesService().AddAutomationRule(request)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorID:   principal.Subject,
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      rule.RuleId,
		TargetType:    log.TargetTypeAutomationRule,
		ActionID:      log.ActionAddAutomationRule,
		Data: map[string]string{
			"rule_name":    rule.Name,
			"trigger_type": rule.TriggerType,
		},
	})

	utils.WriteJSONResponse(w, http.StatusCreated, rule)
}

// GetAutomationRules handles fetching all rules.
func (ah *AutomationHandler) GetAutomationRules(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.PrincipalFromRequest(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	rules, err := ah.provider.GetRulesService().GetAutomationRules()
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if rules == nil {
		rules = []model.AutomationRule{}
	}
	utils.WriteJSONResponse(w, http.StatusOK, rules)
}

// GetAutomationRule handles fetching a single rule.
func (ah *AutomationHandler) GetAutomationRule(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.PrincipalFromRequest(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	ruleId := r.PathValue("ruleId")
	if ruleId == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.BAD_REQUEST, http.StatusBadRequest))
		return
	}

	rule, err := ah.provider.GetRulesService().GetAutomationRule(ruleId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, rule)
}

// PatchAutomationRule applies a partial update to a rule.
func (ah *AutomationHandler) PatchAutomationRule(w http.ResponseWriter, r *http.Request) {

	principal, err := authn.PrincipalFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	ruleId := r.PathValue("ruleId")
	if ruleId == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.BAD_REQUEST, http.StatusBadRequest))
		return
	}

	var updates map[string]interface{}
	if err := utils.DecodeJSONBody(r, &updates); err != nil {
		utils.HandleError(w, err)
		return
	}

	rulesService := ah.provider.GetRulesService()
	if err := rulesService.UpdateAutomationRule(ruleId, updates); err != nil {
		utils.HandleError(w, err)
		return
	}

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorID:   principal.Subject,
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      ruleId,
		TargetType:    log.TargetTypeAutomationRule,
		ActionID:      log.ActionUpdateAutomationRule,
	})

	rule, err := rulesService.GetAutomationRule(ruleId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, rule)
}

// DeleteAutomationRule soft-deletes a rule.
func (ah *AutomationHandler) DeleteAutomationRule(w http.ResponseWriter, r *http.Request) {

	principal, err := authn.PrincipalFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	ruleId := r.PathValue("ruleId")
	if ruleId == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.BAD_REQUEST, http.StatusBadRequest))
		return
	}

	if err := ah.provider.GetRulesService().DeleteAutomationRule(ruleId); err != nil {
		utils.HandleError(w, err)
		return
	}

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorID:   principal.Subject,
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      ruleId,
		TargetType:    log.TargetTypeAutomationRule,
		ActionID:      log.ActionDeleteAutomationRule,
	})

	utils.WriteJSONResponse(w, http.StatusNoContent, nil)
}

// TriggerAutomation synthesizes and ingests a workflow event on demand.
func (ah *AutomationHandler) TriggerAutomation(w http.ResponseWriter, r *http.Request) {

	principal, err := authn.PrincipalFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	var request model.TriggerRequest
	if err := utils.DecodeJSONBody(r, &request); err != nil {
		utils.HandleError(w, err)
		return
	}

	if err := ah.provider.GetRulesService().TriggerAutomation(request); err != nil {
		utils.HandleError(w, err)
		return
	}

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorID:   principal.Subject,
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      request.EntityId,
		TargetType:    log.TargetTypeWorkflowEvent,
		ActionID:      log.ActionManualTrigger,
		Data: map[string]string{
			"event_type":  request.EventType,
			"entity_type": request.EntityType,
		},
	})

	utils.WriteJSONResponse(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}
