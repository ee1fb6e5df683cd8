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

package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/coverlane/brokerage-automation-service/internal/automation/model"
	"github.com/coverlane/brokerage-automation-service/internal/automation/store"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
)

// RulesServiceInterface manages automation rule definitions and exposes the
// manual trigger entrypoint.
type RulesServiceInterface interface {
	AddAutomationRule(request model.CreateRuleRequest) (*model.AutomationRule, error)
	GetAutomationRules() ([]model.AutomationRule, error)
	GetAutomationRule(ruleId string) (*model.AutomationRule, error)
	UpdateAutomationRule(ruleId string, updates map[string]interface{}) error
	DeleteAutomationRule(ruleId string) error
	TriggerAutomation(request model.TriggerRequest) error
}

// RulesService is the default implementation of the RulesServiceInterface.
type RulesService struct {
	ingestor Ingestor
}

// GetRulesService creates a new instance of RulesService.
func GetRulesService(ingestor Ingestor) RulesServiceInterface {
	return &RulesService{ingestor: ingestor}
}

// AddAutomationRule validates and persists a new rule. Identity, creation
// timestamp and trigger statistics are server-assigned.
func (rs *RulesService) AddAutomationRule(request model.CreateRuleRequest) (*model.AutomationRule, error) {
	if err := validateRuleDefinition(request); err != nil {
		return nil, err
	}

	rule := model.AutomationRule{
		RuleId:       uuid.New().String(),
		Name:         request.Name,
		Description:  request.Description,
		TriggerType:  request.TriggerType,
		Conditions:   request.Conditions,
		Actions:      request.Actions,
		Enabled:      request.Enabled,
		Priority:     request.Priority,
		CreatedAt:    time.Now().UTC(),
		TriggerCount: 0,
	}
	if rule.Priority == "" {
		rule.Priority = model.PriorityMedium
	}
	if rule.Conditions == nil {
		rule.Conditions = []model.AutomationCondition{}
	}

	if err := store.AddAutomationRule(rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

// GetAutomationRules fetches all rules.
func (rs *RulesService) GetAutomationRules() ([]model.AutomationRule, error) {

	return store.GetAutomationRules()
}

// GetAutomationRule fetches a single rule.
func (rs *RulesService) GetAutomationRule(ruleId string) (*model.AutomationRule, error) {
	rule, err := store.GetAutomationRule(ruleId)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, ruleNotFoundError(ruleId)
	}
	return rule, nil
}

// updatableRuleFields lists the rule fields a partial update may touch.
var updatableRuleFields = map[string]bool{
	"name":         true,
	"description":  true,
	"trigger_type": true,
	"conditions":   true,
	"actions":      true,
	"enabled":      true,
	"priority":     true,
}

// UpdateAutomationRule applies a partial update on a rule.
func (rs *RulesService) UpdateAutomationRule(ruleId string, updates map[string]interface{}) error {
	for field := range updates {
		if !updatableRuleFields[field] {
			return errors2.NewClientError(errors2.ErrorMessage{
				Code:        errors2.FIELD_NOT_UPDATABLE.Code,
				Message:     errors2.FIELD_NOT_UPDATABLE.Message,
				Description: fmt.Sprintf("Field '%s' cannot be updated.", field),
			}, http.StatusBadRequest)
		}
	}

	rule, err := store.GetAutomationRule(ruleId)
	if err != nil {
		return err
	}
	if rule == nil {
		return ruleNotFoundError(ruleId)
	}

	return store.PatchAutomationRule(ruleId, updates)
}

// DeleteAutomationRule soft-deletes a rule: it is disabled and stamped, not
// removed, so historical results keep resolving.
func (rs *RulesService) DeleteAutomationRule(ruleId string) error {
	rule, err := store.GetAutomationRule(ruleId)
	if err != nil {
		return err
	}
	if rule == nil {
		return ruleNotFoundError(ruleId)
	}

	return store.SoftDeleteAutomationRule(ruleId)
}

// TriggerAutomation synthesizes a workflow event from a manual request and
// routes it through the same ingest path as live changes and sweeps.
func (rs *RulesService) TriggerAutomation(request model.TriggerRequest) error {
	if request.EventType == "" || request.EntityId == "" || request.EntityType == "" {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "event_type, entity_id and entity_type are required.",
		}, http.StatusBadRequest)
	}

	rs.ingestor.Ingest(model.WorkflowEventInput{
		Type:       request.EventType,
		EntityId:   request.EntityId,
		EntityType: request.EntityType,
		Data:       request.Data,
		Timestamp:  time.Now().UTC(),
	})
	return nil
}

func ruleNotFoundError(ruleId string) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.RULE_NOT_FOUND.Code,
		Message:     errors2.RULE_NOT_FOUND.Message,
		Description: fmt.Sprintf("No automation rule exists with id %s.", ruleId),
	}, http.StatusNotFound)
}
