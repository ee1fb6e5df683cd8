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

package integration

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	claimmodel "github.com/coverlane/brokerage-automation-service/internal/claims/model"
	claimstore "github.com/coverlane/brokerage-automation-service/internal/claims/store"
	docmodel "github.com/coverlane/brokerage-automation-service/internal/documents/model"
	docstore "github.com/coverlane/brokerage-automation-service/internal/documents/store"
	policymodel "github.com/coverlane/brokerage-automation-service/internal/policies/model"
	policystore "github.com/coverlane/brokerage-automation-service/internal/policies/store"
	quotemodel "github.com/coverlane/brokerage-automation-service/internal/quotes/model"
	quotestore "github.com/coverlane/brokerage-automation-service/internal/quotes/store"
	taskmodel "github.com/coverlane/brokerage-automation-service/internal/tasks/model"
	taskstore "github.com/coverlane/brokerage-automation-service/internal/tasks/store"
)

func TestPolicyRoundTrip(t *testing.T) {
	now := time.Now().UTC()
	clientId := uuid.New().String()
	policy := policymodel.Policy{
		PolicyId:      uuid.New().String(),
		ClientId:      clientId,
		PolicyNumber:  "POL-1001",
		ProductType:   "general_liability",
		Status:        policymodel.StatusActive,
		Premium:       2400,
		Currency:      "USD",
		PaymentStatus: policymodel.PaymentStatusCurrent,
		Dates: policymodel.PolicyDates{
			Effective:  now,
			Expiration: now.AddDate(1, 0, 0),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, policystore.AddPolicy(policy))

	fetched, err := policystore.GetPolicy(policy.PolicyId)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "POL-1001", fetched.PolicyNumber)
	assert.Equal(t, policymodel.PaymentStatusCurrent, fetched.PaymentStatus)

	forClient, err := policystore.GetPoliciesForClient(clientId)
	require.NoError(t, err)
	require.Len(t, forClient, 1)
	assert.Equal(t, policy.PolicyId, forClient[0].PolicyId)

	missing, err := policystore.GetPolicy("no-such-policy")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestClaimRoundTrip(t *testing.T) {
	now := time.Now().UTC()
	claim := claimmodel.Claim{
		ClaimId:       uuid.New().String(),
		PolicyId:      uuid.New().String(),
		ClientId:      uuid.New().String(),
		ClaimNumber:   "CLM-2001",
		Type:          "property_damage",
		Status:        claimmodel.StatusSubmitted,
		Description:   "Water damage in the server room",
		AmountClaimed: 12500,
		SubmittedAt:   now,
		Workflow: claimmodel.ClaimWorkflow{
			Acknowledgment: claimmodel.WorkflowStep{Status: claimmodel.StepPending},
			Investigation:  claimmodel.WorkflowStep{Status: claimmodel.StepPending},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, claimstore.AddClaim(claim))

	fetched, err := claimstore.GetClaim(claim.ClaimId)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "CLM-2001", fetched.ClaimNumber)
	assert.Equal(t, claimmodel.StepPending, fetched.Workflow.Acknowledgment.Status)

	missing, err := claimstore.GetClaim("no-such-claim")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestQuoteRoundTrip(t *testing.T) {
	clientId := uuid.New().String()
	older := quotemodel.Quote{
		QuoteId:     uuid.New().String(),
		ClientId:    clientId,
		BrokerId:    "broker-1",
		ProductType: "cyber_liability",
		Status:      quotemodel.StatusDraft,
		Premium:     1800,
		Currency:    "USD",
		CreatedAt:   time.Now().UTC().Add(-time.Hour),
		UpdatedAt:   time.Now().UTC().Add(-time.Hour),
	}
	newer := older
	newer.QuoteId = uuid.New().String()
	newer.Premium = 2100
	newer.CreatedAt = time.Now().UTC()
	newer.UpdatedAt = newer.CreatedAt

	require.NoError(t, quotestore.AddQuote(older))
	require.NoError(t, quotestore.AddQuote(newer))

	fetched, err := quotestore.GetQuote(older.QuoteId)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, 1800.0, fetched.Premium)

	forClient, err := quotestore.GetQuotesForClient(clientId)
	require.NoError(t, err)
	require.Len(t, forClient, 2)
	// Newest first.
	assert.Equal(t, newer.QuoteId, forClient[0].QuoteId)
	assert.Equal(t, older.QuoteId, forClient[1].QuoteId)
}

func TestTasksForEntity(t *testing.T) {
	entityId := uuid.New().String()
	task := taskmodel.Task{
		TaskId:     uuid.New().String(),
		Title:      "Call the adjuster",
		Priority:   "high",
		AssigneeId: "broker-2",
		EntityId:   entityId,
		EntityType: "claim",
		Status:     taskmodel.StatusPending,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	require.NoError(t, taskstore.AddTask(task))

	forEntity, err := taskstore.GetTasksForEntity("claim", entityId)
	require.NoError(t, err)
	require.Len(t, forEntity, 1)
	assert.Equal(t, task.TaskId, forEntity[0].TaskId)

	forAssignee, err := taskstore.GetTasksForAssignee("broker-2")
	require.NoError(t, err)
	assert.NotEmpty(t, forAssignee)
}

func TestDocumentsForEntity(t *testing.T) {
	entityId := uuid.New().String()
	document := docmodel.Document{
		DocumentId:  uuid.New().String(),
		EntityId:    entityId,
		EntityType:  "policy",
		Template:    "renewal_notice",
		Name:        "Renewal notice",
		Type:        "pdf",
		Status:      "generated",
		URL:         "https://docs.coverlane.io/" + entityId + "/renewal_notice.pdf",
		GeneratedAt: time.Now().UTC(),
		Automated:   true,
	}
	require.NoError(t, docstore.AddDocument(document))

	forEntity, err := docstore.GetDocumentsForEntity("policy", entityId)
	require.NoError(t, err)
	require.Len(t, forEntity, 1)
	assert.Equal(t, document.DocumentId, forEntity[0].DocumentId)

	other, err := docstore.GetDocumentsForEntity("claim", entityId)
	require.NoError(t, err)
	assert.Empty(t, other)
}
