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

package model

import "time"

// Trigger types a rule can declare interest in.
const (
	TriggerDocumentUpload       = "document_upload"
	TriggerClaimSubmitted       = "claim_submitted"
	TriggerPolicyExpiring       = "policy_expiring"
	TriggerPaymentOverdue       = "payment_overdue"
	TriggerApplicationSubmitted = "application_submitted"
)

// Condition operators.
const (
	OperatorEquals      = "equals"
	OperatorContains    = "contains"
	OperatorGreaterThan = "greater_than"
	OperatorLessThan    = "less_than"
	OperatorDateWithin  = "date_within"
)

// Action types a rule can carry.
const (
	ActionSendEmail        = "send_email"
	ActionCreateTask       = "create_task"
	ActionUpdateStatus     = "update_status"
	ActionGenerateDocument = "generate_document"
	ActionAIReview         = "ai_review"
	ActionNotifyBroker     = "notify_broker"
)

// Rule priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// AutomationCondition is one predicate over the event payload. Field is a
// dot-path into the payload document.
type AutomationCondition struct {
	Field    string      `json:"field" bson:"field"`
	Operator string      `json:"operator" bson:"operator"`
	Value    interface{} `json:"value" bson:"value"`
}

// AutomationAction is one effect a rule performs when its conditions hold.
// Parameters are free-form per action type; the required keys for each type
// are checked at rule-creation time.
type AutomationAction struct {
	Type       string                 `json:"type" bson:"type"`
	Parameters map[string]interface{} `json:"parameters" bson:"parameters"`
}

// AutomationRule is a stored automation definition.
type AutomationRule struct {
	RuleId        string                `json:"id" bson:"_id"`
	Name          string                `json:"name" bson:"name"`
	Description   string                `json:"description" bson:"description"`
	TriggerType   string                `json:"trigger_type" bson:"trigger_type"`
	Conditions    []AutomationCondition `json:"conditions" bson:"conditions"`
	Actions       []AutomationAction    `json:"actions" bson:"actions"`
	Enabled       bool                  `json:"enabled" bson:"enabled"`
	Priority      string                `json:"priority" bson:"priority"`
	CreatedAt     time.Time             `json:"created_at" bson:"created_at"`
	UpdatedAt     *time.Time            `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
	LastTriggered *time.Time            `json:"last_triggered,omitempty" bson:"last_triggered,omitempty"`
	TriggerCount  int                   `json:"trigger_count" bson:"trigger_count"`
	DeletedAt     *time.Time            `json:"deleted_at,omitempty" bson:"deleted_at,omitempty"`
}
