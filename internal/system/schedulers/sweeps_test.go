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

package schedulers

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	automationmodel "github.com/coverlane/brokerage-automation-service/internal/automation/model"
	claimmodel "github.com/coverlane/brokerage-automation-service/internal/claims/model"
	policymodel "github.com/coverlane/brokerage-automation-service/internal/policies/model"
)

type fakePolicySource struct {
	active  []policymodel.Policy
	overdue []policymodel.Policy
	err     error
}

func (f *fakePolicySource) ActivePolicies() ([]policymodel.Policy, error) {
	return f.active, f.err
}

func (f *fakePolicySource) ActivePoliciesWithPaymentIssues() ([]policymodel.Policy, error) {
	return f.overdue, f.err
}

type fakeClaimSource struct {
	submitted    []claimmodel.Claim
	ackErr       error
	acknowledged []string
}

func (f *fakeClaimSource) SubmittedClaims() ([]claimmodel.Claim, error) {
	return f.submitted, nil
}

func (f *fakeClaimSource) Acknowledge(claimId string) error {
	if f.ackErr != nil {
		return f.ackErr
	}
	f.acknowledged = append(f.acknowledged, claimId)
	return nil
}

type capturingIngestor struct {
	events []automationmodel.WorkflowEventInput
}

func (c *capturingIngestor) Ingest(input automationmodel.WorkflowEventInput) {
	c.events = append(c.events, input)
}

func policyExpiringIn(days int) policymodel.Policy {
	return policymodel.Policy{
		PolicyId: "pol-1",
		Status:   policymodel.StatusActive,
		Dates: policymodel.PolicyDates{
			Expiration: time.Now().UTC().Add(time.Duration(days) * 24 * time.Hour),
		},
	}
}

func TestSweepExpiringPolicies(t *testing.T) {
	inWindow := policyExpiringIn(10)
	farOut := policyExpiringIn(45)
	farOut.PolicyId = "pol-2"
	alreadyExpired := policyExpiringIn(-5)
	alreadyExpired.PolicyId = "pol-3"

	policies := &fakePolicySource{active: []policymodel.Policy{inWindow, farOut, alreadyExpired}}
	ingestor := &capturingIngestor{}
	ss := NewSweepScheduler(policies, &fakeClaimSource{}, ingestor)

	require.NoError(t, ss.SweepExpiringPolicies())

	require.Len(t, ingestor.events, 1)
	event := ingestor.events[0]
	assert.Equal(t, automationmodel.EventPolicyExpiring, event.Type)
	assert.Equal(t, "pol-1", event.EntityId)
	assert.Equal(t, automationmodel.EntityPolicy, event.EntityType)
	assert.Equal(t, 9, event.Data["days_until_expiration"])
}

func TestSweepExpiringPoliciesSourceFailure(t *testing.T) {
	policies := &fakePolicySource{err: errors.New("store down")}
	ingestor := &capturingIngestor{}
	ss := NewSweepScheduler(policies, &fakeClaimSource{}, ingestor)

	assert.Error(t, ss.SweepExpiringPolicies())
	assert.Empty(t, ingestor.events)
}

func TestSweepOverduePayments(t *testing.T) {
	pastDue := time.Now().UTC().Add(-72 * time.Hour)
	futureDue := time.Now().UTC().Add(72 * time.Hour)

	overdue := policymodel.Policy{
		PolicyId:      "pol-1",
		Status:        policymodel.StatusActive,
		PaymentStatus: "overdue",
		Payment:       policymodel.PolicyPayment{NextDueDate: &pastDue},
	}
	notYetDue := policymodel.Policy{
		PolicyId:      "pol-2",
		Status:        policymodel.StatusActive,
		PaymentStatus: "pending",
		Payment:       policymodel.PolicyPayment{NextDueDate: &futureDue},
	}
	noDueDate := policymodel.Policy{
		PolicyId:      "pol-3",
		Status:        policymodel.StatusActive,
		PaymentStatus: "pending",
	}

	policies := &fakePolicySource{overdue: []policymodel.Policy{overdue, notYetDue, noDueDate}}
	ingestor := &capturingIngestor{}
	ss := NewSweepScheduler(policies, &fakeClaimSource{}, ingestor)

	require.NoError(t, ss.SweepOverduePayments())

	require.Len(t, ingestor.events, 1)
	event := ingestor.events[0]
	assert.Equal(t, automationmodel.EventPaymentOverdue, event.Type)
	assert.Equal(t, "pol-1", event.EntityId)
	assert.Equal(t, 3, event.Data["days_overdue"])
}

func TestSweepStaleClaims(t *testing.T) {
	stale := claimmodel.Claim{
		ClaimId:     "claim-1",
		Status:      claimmodel.StatusSubmitted,
		SubmittedAt: time.Now().UTC().Add(-30 * time.Hour),
	}
	fresh := claimmodel.Claim{
		ClaimId:     "claim-2",
		Status:      claimmodel.StatusSubmitted,
		SubmittedAt: time.Now().UTC().Add(-2 * time.Hour),
	}

	claims := &fakeClaimSource{submitted: []claimmodel.Claim{stale, fresh}}
	ingestor := &capturingIngestor{}
	ss := NewSweepScheduler(&fakePolicySource{}, claims, ingestor)

	require.NoError(t, ss.SweepStaleClaims())

	assert.Equal(t, []string{"claim-1"}, claims.acknowledged)
	require.Len(t, ingestor.events, 1)
	event := ingestor.events[0]
	assert.Equal(t, automationmodel.EventClaimAcknowledged, event.Type)
	assert.Equal(t, "claim-1", event.EntityId)
	assert.Equal(t, automationmodel.EntityClaim, event.EntityType)
	assert.Equal(t, "claim-1", event.Data["_id"])
}

func TestSweepStaleClaimsAcknowledgeFailureSkipsEvent(t *testing.T) {
	stale := claimmodel.Claim{
		ClaimId:     "claim-1",
		Status:      claimmodel.StatusSubmitted,
		SubmittedAt: time.Now().UTC().Add(-30 * time.Hour),
	}

	claims := &fakeClaimSource{submitted: []claimmodel.Claim{stale}, ackErr: errors.New("store down")}
	ingestor := &capturingIngestor{}
	ss := NewSweepScheduler(&fakePolicySource{}, claims, ingestor)

	require.NoError(t, ss.SweepStaleClaims())
	assert.Empty(t, ingestor.events)
}

func TestSweepSchedulerStartStop(t *testing.T) {
	ss := NewSweepScheduler(&fakePolicySource{}, &fakeClaimSource{}, &capturingIngestor{})
	ss.Start()
	ss.Start()
	ss.Stop()
	ss.Stop()
}
