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
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/coverlane/brokerage-automation-service/internal/automation/model"
)

func TestEvaluateConditions(t *testing.T) {
	in5Days := time.Now().UTC().Add(5 * 24 * time.Hour).Format(time.RFC3339)
	in7Days := time.Now().UTC().Add(7 * 24 * time.Hour).Format(time.RFC3339)
	in8Days := time.Now().UTC().Add(8 * 24 * time.Hour).Format(time.RFC3339)
	in40Days := time.Now().UTC().Add(40 * 24 * time.Hour).Format(time.RFC3339)
	past := time.Now().UTC().Add(-48 * time.Hour).Format(time.RFC3339)

	tests := []struct {
		name       string
		conditions []model.AutomationCondition
		data       map[string]interface{}
		expected   bool
	}{
		{
			name:       "empty conditions match any payload",
			conditions: nil,
			data:       map[string]interface{}{"status": "active"},
			expected:   true,
		},
		{
			name: "equals on string",
			conditions: []model.AutomationCondition{
				{Field: "status", Operator: model.OperatorEquals, Value: "active"},
			},
			data:     map[string]interface{}{"status": "active"},
			expected: true,
		},
		{
			name: "equals normalizes numeric types",
			conditions: []model.AutomationCondition{
				{Field: "count", Operator: model.OperatorEquals, Value: float64(5)},
			},
			data:     map[string]interface{}{"count": int32(5)},
			expected: true,
		},
		{
			name: "equals is strict across shapes",
			conditions: []model.AutomationCondition{
				{Field: "count", Operator: model.OperatorEquals, Value: "5"},
			},
			data:     map[string]interface{}{"count": float64(5)},
			expected: false,
		},
		{
			name: "contains is case insensitive",
			conditions: []model.AutomationCondition{
				{Field: "product", Operator: model.OperatorContains, Value: "AUTO"},
			},
			data:     map[string]interface{}{"product": "commercial auto insurance"},
			expected: true,
		},
		{
			name: "greater_than coerces numeric strings",
			conditions: []model.AutomationCondition{
				{Field: "amount", Operator: model.OperatorGreaterThan, Value: float64(100)},
			},
			data:     map[string]interface{}{"amount": "150"},
			expected: true,
		},
		{
			name: "greater_than fails on unconvertible values",
			conditions: []model.AutomationCondition{
				{Field: "amount", Operator: model.OperatorGreaterThan, Value: float64(100)},
			},
			data:     map[string]interface{}{"amount": "a lot"},
			expected: false,
		},
		{
			name: "less_than on numbers",
			conditions: []model.AutomationCondition{
				{Field: "amount", Operator: model.OperatorLessThan, Value: float64(100)},
			},
			data:     map[string]interface{}{"amount": float64(50)},
			expected: true,
		},
		{
			name: "date_within inside the window",
			conditions: []model.AutomationCondition{
				{Field: "expiration", Operator: model.OperatorDateWithin, Value: float64(7)},
			},
			data:     map[string]interface{}{"expiration": in5Days},
			expected: true,
		},
		{
			name: "date_within true at exactly the window boundary",
			conditions: []model.AutomationCondition{
				{Field: "expiration", Operator: model.OperatorDateWithin, Value: float64(7)},
			},
			data:     map[string]interface{}{"expiration": in7Days},
			expected: true,
		},
		{
			// The partial eighth day rounds up and falls outside the window.
			name: "date_within false one day past the boundary",
			conditions: []model.AutomationCondition{
				{Field: "expiration", Operator: model.OperatorDateWithin, Value: float64(7)},
			},
			data:     map[string]interface{}{"expiration": in8Days},
			expected: false,
		},
		{
			name: "date_within outside the window",
			conditions: []model.AutomationCondition{
				{Field: "expiration", Operator: model.OperatorDateWithin, Value: float64(7)},
			},
			data:     map[string]interface{}{"expiration": in40Days},
			expected: false,
		},
		{
			name: "date_within matches past dates",
			conditions: []model.AutomationCondition{
				{Field: "expiration", Operator: model.OperatorDateWithin, Value: float64(7)},
			},
			data:     map[string]interface{}{"expiration": past},
			expected: true,
		},
		{
			name: "date_within rejects unparsable dates",
			conditions: []model.AutomationCondition{
				{Field: "expiration", Operator: model.OperatorDateWithin, Value: float64(7)},
			},
			data:     map[string]interface{}{"expiration": "soonish"},
			expected: false,
		},
		{
			name: "unknown operator passes",
			conditions: []model.AutomationCondition{
				{Field: "status", Operator: "matches_regex", Value: ".*"},
			},
			data:     map[string]interface{}{"status": "active"},
			expected: true,
		},
		{
			name: "missing field fails equals",
			conditions: []model.AutomationCondition{
				{Field: "missing.path", Operator: model.OperatorEquals, Value: "x"},
			},
			data:     map[string]interface{}{"status": "active"},
			expected: false,
		},
		{
			name: "all conditions must hold",
			conditions: []model.AutomationCondition{
				{Field: "status", Operator: model.OperatorEquals, Value: "active"},
				{Field: "amount", Operator: model.OperatorGreaterThan, Value: float64(500)},
			},
			data:     map[string]interface{}{"status": "active", "amount": float64(100)},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, EvaluateConditions(tc.conditions, tc.data))
		})
	}
}

func TestFieldValue(t *testing.T) {
	data := map[string]interface{}{
		"status": "active",
		"payment": map[string]interface{}{
			"status": "overdue",
			"details": map[string]interface{}{
				"amount": float64(120),
			},
		},
	}

	assert.Equal(t, "active", FieldValue(data, "status"))
	assert.Equal(t, "overdue", FieldValue(data, "payment.status"))
	assert.Equal(t, float64(120), FieldValue(data, "payment.details.amount"))
	assert.Nil(t, FieldValue(data, "payment.missing"))
	assert.Nil(t, FieldValue(data, "status.nested"))
}

func TestMatchesTriggerType(t *testing.T) {
	assert.True(t, MatchesTriggerType(model.TriggerClaimSubmitted, model.EventClaimUpdated))
	assert.True(t, MatchesTriggerType(model.TriggerApplicationSubmitted, model.EventQuoteUpdated))
	assert.True(t, MatchesTriggerType(model.TriggerDocumentUpload, model.EventDocumentAdded))
	assert.True(t, MatchesTriggerType(model.TriggerPolicyExpiring, model.EventPolicyUpdated))
	assert.True(t, MatchesTriggerType(model.TriggerPaymentOverdue, model.EventPolicyUpdated))

	// Sweep-generated event types are not keys of the trigger table; rules
	// keyed on those triggers only fire on the generic policy_updated event.
	assert.False(t, MatchesTriggerType(model.TriggerPolicyExpiring, model.EventPolicyExpiring))
	assert.False(t, MatchesTriggerType(model.TriggerPaymentOverdue, model.EventPaymentOverdue))
	assert.False(t, MatchesTriggerType("unknown_trigger", model.EventPolicyUpdated))
}
