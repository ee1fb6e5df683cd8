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

// Entity types an event can refer to.
const (
	EntityQuote    = "quote"
	EntityPolicy   = "policy"
	EntityClaim    = "claim"
	EntityCustomer = "customer"
)

// Event types produced by the change watcher and the sweep scheduler.
const (
	EventQuoteUpdated      = "quote_updated"
	EventClaimUpdated      = "claim_updated"
	EventPolicyUpdated     = "policy_updated"
	EventCustomerUpdated   = "customer_updated"
	EventDocumentAdded     = "document_added"
	EventPolicyExpiring    = "policy_expiring"
	EventPaymentOverdue    = "payment_overdue"
	EventClaimAcknowledged = "claim_acknowledged"
)

// WorkflowEventInput is an event as produced, before the store assigns an
// identity and the processed flag.
type WorkflowEventInput struct {
	Type       string                 `json:"type" bson:"type"`
	EntityId   string                 `json:"entity_id" bson:"entity_id"`
	EntityType string                 `json:"entity_type" bson:"entity_type"`
	Data       map[string]interface{} `json:"data" bson:"data"`
	Timestamp  time.Time              `json:"timestamp" bson:"timestamp"`
}

// WorkflowEvent is a persisted event. Processed transitions false to true
// exactly once; Results is written once during finalization.
type WorkflowEvent struct {
	EventId     string                 `json:"id" bson:"_id"`
	Type        string                 `json:"type" bson:"type"`
	EntityId    string                 `json:"entity_id" bson:"entity_id"`
	EntityType  string                 `json:"entity_type" bson:"entity_type"`
	Data        map[string]interface{} `json:"data" bson:"data"`
	Timestamp   time.Time              `json:"timestamp" bson:"timestamp"`
	Processed   bool                   `json:"processed" bson:"processed"`
	Results     []AutomationResult     `json:"automation_results,omitempty" bson:"automation_results,omitempty"`
	CreatedAt   time.Time              `json:"created_at" bson:"created_at"`
	ProcessedAt *time.Time             `json:"processed_at,omitempty" bson:"processed_at,omitempty"`
}

// AutomationResult records the outcome of attempting one rule's actions
// against one event. RuleName is a snapshot, not a live join.
type AutomationResult struct {
	RuleId          string    `json:"rule_id" bson:"rule_id"`
	RuleName        string    `json:"rule_name" bson:"rule_name"`
	Success         bool      `json:"success" bson:"success"`
	Error           string    `json:"error,omitempty" bson:"error,omitempty"`
	ActionsExecuted []string  `json:"actions_executed" bson:"actions_executed"`
	ExecutedAt      time.Time `json:"executed_at" bson:"executed_at"`
}
