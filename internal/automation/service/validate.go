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

	"github.com/coverlane/brokerage-automation-service/internal/automation/model"
	"github.com/coverlane/brokerage-automation-service/internal/system/constants"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
)

var validTriggerTypes = map[string]bool{
	model.TriggerDocumentUpload:       true,
	model.TriggerClaimSubmitted:       true,
	model.TriggerPolicyExpiring:       true,
	model.TriggerPaymentOverdue:       true,
	model.TriggerApplicationSubmitted: true,
}

var validOperators = map[string]bool{
	model.OperatorEquals:      true,
	model.OperatorContains:    true,
	model.OperatorGreaterThan: true,
	model.OperatorLessThan:    true,
	model.OperatorDateWithin:  true,
}

var validActionTypes = map[string]bool{
	model.ActionSendEmail:        true,
	model.ActionCreateTask:       true,
	model.ActionUpdateStatus:     true,
	model.ActionGenerateDocument: true,
	model.ActionAIReview:         true,
	model.ActionNotifyBroker:     true,
}

var validPriorities = map[string]bool{
	model.PriorityLow:    true,
	model.PriorityMedium: true,
	model.PriorityHigh:   true,
}

// validateRuleDefinition rejects malformed rules at creation time. The
// runtime pipeline stays fail-open for rules that predate stricter checks.
func validateRuleDefinition(request model.CreateRuleRequest) error {
	if request.Name == "" {
		return invalidRuleError("Rule name is required.")
	}
	if !validTriggerTypes[request.TriggerType] {
		return invalidRuleError(fmt.Sprintf("Unknown trigger type: %s.", request.TriggerType))
	}
	if request.Priority != "" && !validPriorities[request.Priority] {
		return invalidRuleError(fmt.Sprintf("Unknown priority: %s.", request.Priority))
	}
	if len(request.Actions) == 0 {
		return invalidRuleError("A rule requires at least one action.")
	}

	for i, condition := range request.Conditions {
		if condition.Field == "" {
			return invalidRuleError(fmt.Sprintf("Condition %d is missing a field path.", i))
		}
		if !validOperators[condition.Operator] {
			return invalidRuleError(fmt.Sprintf("Condition %d has unknown operator: %s.", i, condition.Operator))
		}
	}

	for i, action := range request.Actions {
		if !validActionTypes[action.Type] {
			return invalidRuleError(fmt.Sprintf("Action %d has unknown type: %s.", i, action.Type))
		}
		if err := validateActionParameters(i, action); err != nil {
			return err
		}
	}
	return nil
}

// validateActionParameters checks the per-type required parameters of one
// action.
func validateActionParameters(index int, action model.AutomationAction) error {
	params := action.Parameters
	switch action.Type {
	case model.ActionSendEmail:
		if stringParam(params, "recipient") == "" {
			return invalidRuleError(fmt.Sprintf("Action %d (send_email) requires a recipient parameter.", index))
		}
	case model.ActionUpdateStatus:
		collection := stringParam(params, "collection")
		if collection == "" || stringParam(params, "field") == "" {
			return invalidRuleError(fmt.Sprintf("Action %d (update_status) requires collection and field parameters.", index))
		}
		if _, hasValue := params["value"]; !hasValue {
			return invalidRuleError(fmt.Sprintf("Action %d (update_status) requires a value parameter.", index))
		}
		if !constants.IsPatchableCollection(collection) {
			return invalidRuleError(fmt.Sprintf("Action %d (update_status) targets non-patchable collection: %s.", index, collection))
		}
	case model.ActionGenerateDocument:
		if stringParam(params, "template") == "" {
			return invalidRuleError(fmt.Sprintf("Action %d (generate_document) requires a template parameter.", index))
		}
	case model.ActionNotifyBroker:
		if stringParam(params, "brokerId") == "" {
			return invalidRuleError(fmt.Sprintf("Action %d (notify_broker) requires a brokerId parameter.", index))
		}
	}
	return nil
}

func invalidRuleError(description string) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.INVALID_RULE_DEFINITION.Code,
		Message:     errors2.INVALID_RULE_DEFINITION.Message,
		Description: description,
	}, http.StatusBadRequest)
}
