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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coverlane/brokerage-automation-service/internal/automation/model"
)

func validCreateRequest() model.CreateRuleRequest {
	return model.CreateRuleRequest{
		Name:        "Acknowledge claims",
		TriggerType: model.TriggerClaimSubmitted,
		Conditions: []model.AutomationCondition{
			{Field: "status", Operator: model.OperatorEquals, Value: "submitted"},
		},
		Actions: []model.AutomationAction{
			{Type: model.ActionNotifyBroker, Parameters: map[string]interface{}{"brokerId": "broker-1"}},
		},
		Priority: model.PriorityHigh,
	}
}

func TestValidateRuleDefinition(t *testing.T) {
	assert.NoError(t, validateRuleDefinition(validCreateRequest()))

	tests := []struct {
		name   string
		mutate func(r *model.CreateRuleRequest)
	}{
		{
			name:   "missing name",
			mutate: func(r *model.CreateRuleRequest) { r.Name = "" },
		},
		{
			name:   "unknown trigger type",
			mutate: func(r *model.CreateRuleRequest) { r.TriggerType = "meteor_strike" },
		},
		{
			name:   "unknown priority",
			mutate: func(r *model.CreateRuleRequest) { r.Priority = "urgent" },
		},
		{
			name:   "no actions",
			mutate: func(r *model.CreateRuleRequest) { r.Actions = nil },
		},
		{
			name: "condition without field",
			mutate: func(r *model.CreateRuleRequest) {
				r.Conditions[0].Field = ""
			},
		},
		{
			name: "condition with unknown operator",
			mutate: func(r *model.CreateRuleRequest) {
				r.Conditions[0].Operator = "matches_regex"
			},
		},
		{
			name: "action with unknown type",
			mutate: func(r *model.CreateRuleRequest) {
				r.Actions[0].Type = "teleport_adjuster"
			},
		},
		{
			name: "send_email without recipient",
			mutate: func(r *model.CreateRuleRequest) {
				r.Actions = []model.AutomationAction{{Type: model.ActionSendEmail}}
			},
		},
		{
			name: "update_status without value",
			mutate: func(r *model.CreateRuleRequest) {
				r.Actions = []model.AutomationAction{{
					Type:       model.ActionUpdateStatus,
					Parameters: map[string]interface{}{"collection": "claims", "field": "status"},
				}}
			},
		},
		{
			name: "update_status on non-patchable collection",
			mutate: func(r *model.CreateRuleRequest) {
				r.Actions = []model.AutomationAction{{
					Type: model.ActionUpdateStatus,
					Parameters: map[string]interface{}{
						"collection": "system_settings",
						"field":      "status",
						"value":      "x",
					},
				}}
			},
		},
		{
			name: "generate_document without template",
			mutate: func(r *model.CreateRuleRequest) {
				r.Actions = []model.AutomationAction{{Type: model.ActionGenerateDocument}}
			},
		},
		{
			name: "notify_broker without brokerId",
			mutate: func(r *model.CreateRuleRequest) {
				r.Actions = []model.AutomationAction{{Type: model.ActionNotifyBroker}}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			request := validCreateRequest()
			tc.mutate(&request)
			assert.Error(t, validateRuleDefinition(request))
		})
	}
}
