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

// Claim statuses.
const (
	StatusSubmitted     = "submitted"
	StatusAcknowledged  = "acknowledged"
	StatusInvestigating = "investigating"
	StatusApproved      = "approved"
	StatusDenied        = "denied"
	StatusSettled       = "settled"
)

// Workflow step statuses.
const (
	StepCompleted  = "completed"
	StepInProgress = "in_progress"
	StepPending    = "pending"
)

// WorkflowStep is one stage of claim processing.
type WorkflowStep struct {
	Date   *time.Time `json:"date,omitempty" bson:"date,omitempty"`
	Status string     `json:"status" bson:"status"`
}

// ClaimWorkflow tracks claim processing stages.
type ClaimWorkflow struct {
	Acknowledgment WorkflowStep `json:"acknowledgment" bson:"acknowledgment"`
	Investigation  WorkflowStep `json:"investigation" bson:"investigation"`
}

// ClaimFormRequest is the payload for filing a claim. Identity, claim
// number, status, workflow state and timestamps are server-assigned.
type ClaimFormRequest struct {
	PolicyId      string  `json:"policy_id"`
	ClientId      string  `json:"client_id"`
	Type          string  `json:"type"`
	Description   string  `json:"description"`
	AmountClaimed float64 `json:"amount_claimed"`
}

// Claim is a filed insurance claim.
type Claim struct {
	ClaimId       string        `json:"id" bson:"_id"`
	PolicyId      string        `json:"policy_id" bson:"policy_id"`
	ClientId      string        `json:"client_id" bson:"client_id"`
	ClaimNumber   string        `json:"claim_number" bson:"claim_number"`
	Type          string        `json:"type" bson:"type"`
	Status        string        `json:"status" bson:"status"`
	Description   string        `json:"description" bson:"description"`
	AmountClaimed float64       `json:"amount_claimed" bson:"amount_claimed"`
	SubmittedAt   time.Time     `json:"submitted_at" bson:"submitted_at"`
	Workflow      ClaimWorkflow `json:"workflow" bson:"workflow"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" bson:"updated_at"`
}
