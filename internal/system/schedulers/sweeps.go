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
	"sync"
	"time"

	automationmodel "github.com/coverlane/brokerage-automation-service/internal/automation/model"
	claimmodel "github.com/coverlane/brokerage-automation-service/internal/claims/model"
	claimstore "github.com/coverlane/brokerage-automation-service/internal/claims/store"
	policymodel "github.com/coverlane/brokerage-automation-service/internal/policies/model"
	policystore "github.com/coverlane/brokerage-automation-service/internal/policies/store"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
	"github.com/coverlane/brokerage-automation-service/internal/system/metrics"
	"github.com/coverlane/brokerage-automation-service/internal/system/utils"
)

const (
	expiringPoliciesInterval = 24 * time.Hour
	overduePaymentsInterval  = 24 * time.Hour
	staleClaimsInterval      = time.Hour

	expirationWindow = 30 * 24 * time.Hour
	staleClaimMaxAge = 24 * time.Hour
)

// PolicySource supplies the policies the sweeps inspect.
type PolicySource interface {
	ActivePolicies() ([]policymodel.Policy, error)
	ActivePoliciesWithPaymentIssues() ([]policymodel.Policy, error)
}

// ClaimSource supplies and transitions the claims the sweeps inspect.
type ClaimSource interface {
	SubmittedClaims() ([]claimmodel.Claim, error)
	Acknowledge(claimId string) error
}

// Ingestor accepts workflow events produced by the sweeps.
type Ingestor interface {
	Ingest(input automationmodel.WorkflowEventInput)
}

type storePolicySource struct{}

func (storePolicySource) ActivePolicies() ([]policymodel.Policy, error) {
	return policystore.GetActivePolicies()
}

func (storePolicySource) ActivePoliciesWithPaymentIssues() ([]policymodel.Policy, error) {
	return policystore.GetActivePoliciesWithPaymentIssues()
}

type storeClaimSource struct{}

func (storeClaimSource) SubmittedClaims() ([]claimmodel.Claim, error) {
	return claimstore.GetClaimsByStatus(claimmodel.StatusSubmitted)
}

func (storeClaimSource) Acknowledge(claimId string) error {
	return claimstore.AcknowledgeClaim(claimId)
}

// SweepScheduler runs the periodic lifecycle sweeps: expiring policies and
// overdue payments once a day, stale claims once an hour.
type SweepScheduler struct {
	policies PolicySource
	claims   ClaimSource
	ingestor Ingestor

	startOnce sync.Once
	stopOnce  sync.Once
	stop      chan struct{}
	wg        sync.WaitGroup
}

// NewSweepScheduler creates a scheduler over the given sources.
func NewSweepScheduler(policies PolicySource, claims ClaimSource, ingestor Ingestor) *SweepScheduler {

	return &SweepScheduler{
		policies: policies,
		claims:   claims,
		ingestor: ingestor,
		stop:     make(chan struct{}),
	}
}

// NewDefaultSweepScheduler creates a scheduler backed by the policy and
// claim stores.
func NewDefaultSweepScheduler(ingestor Ingestor) *SweepScheduler {

	return NewSweepScheduler(storePolicySource{}, storeClaimSource{}, ingestor)
}

// Start launches the sweep loops. The first run of each sweep happens one
// full interval after startup.
func (ss *SweepScheduler) Start() {
	ss.startOnce.Do(func() {
		ss.wg.Add(3)
		go ss.loop("expiring_policies", expiringPoliciesInterval, ss.SweepExpiringPolicies)
		go ss.loop("overdue_payments", overduePaymentsInterval, ss.SweepOverduePayments)
		go ss.loop("stale_claims", staleClaimsInterval, ss.SweepStaleClaims)
		log.GetLogger().Info("Sweep scheduler started")
	})
}

// Stop halts the sweep loops and waits for any in-flight sweep to finish.
func (ss *SweepScheduler) Stop() {
	ss.stopOnce.Do(func() {
		close(ss.stop)
		ss.wg.Wait()
		log.GetLogger().Info("Sweep scheduler stopped")
	})
}

func (ss *SweepScheduler) loop(name string, interval time.Duration, sweep func() error) {
	defer ss.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ss.stop:
			return
		case <-ticker.C:
			ss.runSweep(name, sweep)
		}
	}
}

func (ss *SweepScheduler) runSweep(name string, sweep func() error) {
	logger := log.GetLogger()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Sweep panicked", log.String("sweep", name), log.Any("panic", r))
		}
	}()

	if err := sweep(); err != nil {
		logger.Error("Sweep failed", log.String("sweep", name), log.Error(err))
		return
	}
	metrics.SweepRuns.WithLabelValues(name).Inc()
}

// SweepExpiringPolicies emits a policy_expiring event for every active
// policy that expires within the next 30 days.
func (ss *SweepScheduler) SweepExpiringPolicies() error {

	policies, err := ss.policies.ActivePolicies()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	cutoff := now.Add(expirationWindow)
	for _, policy := range policies {
		expiration := policy.Dates.Expiration
		if !expiration.After(now) || expiration.After(cutoff) {
			continue
		}
		ss.emitPolicyEvent(automationmodel.EventPolicyExpiring, policy, map[string]interface{}{
			"days_until_expiration": int(expiration.Sub(now).Hours() / 24),
		})
	}
	return nil
}

// SweepOverduePayments emits a payment_overdue event for every active policy
// whose payment is not current and whose next due date has passed.
func (ss *SweepScheduler) SweepOverduePayments() error {

	policies, err := ss.policies.ActivePoliciesWithPaymentIssues()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, policy := range policies {
		dueDate := policy.Payment.NextDueDate
		if dueDate == nil || !dueDate.Before(now) {
			continue
		}
		ss.emitPolicyEvent(automationmodel.EventPaymentOverdue, policy, map[string]interface{}{
			"days_overdue": int(now.Sub(*dueDate).Hours() / 24),
		})
	}
	return nil
}

// SweepStaleClaims acknowledges claims that have sat in submitted for more
// than 24 hours and emits a claim_acknowledged event for each.
func (ss *SweepScheduler) SweepStaleClaims() error {

	claims, err := ss.claims.SubmittedClaims()
	if err != nil {
		return err
	}

	logger := log.GetLogger()
	now := time.Now().UTC()
	for _, claim := range claims {
		if now.Sub(claim.SubmittedAt) <= staleClaimMaxAge {
			continue
		}
		if err := ss.claims.Acknowledge(claim.ClaimId); err != nil {
			logger.Error("Failed to acknowledge stale claim: "+claim.ClaimId, log.Error(err))
			continue
		}

		data, err := utils.ToDocumentMap(claim)
		if err != nil {
			logger.Error("Failed to build event data for claim: "+claim.ClaimId, log.Error(err))
			data = map[string]interface{}{}
		}
		ss.ingestor.Ingest(automationmodel.WorkflowEventInput{
			Type:       automationmodel.EventClaimAcknowledged,
			EntityId:   claim.ClaimId,
			EntityType: automationmodel.EntityClaim,
			Data:       data,
			Timestamp:  now,
		})
	}
	return nil
}

func (ss *SweepScheduler) emitPolicyEvent(eventType string, policy policymodel.Policy, extra map[string]interface{}) {

	data, err := utils.ToDocumentMap(policy)
	if err != nil {
		log.GetLogger().Error("Failed to build event data for policy: "+policy.PolicyId, log.Error(err))
		data = map[string]interface{}{}
	}
	for key, value := range extra {
		data[key] = value
	}
	ss.ingestor.Ingest(automationmodel.WorkflowEventInput{
		Type:       eventType,
		EntityId:   policy.PolicyId,
		EntityType: automationmodel.EntityPolicy,
		Data:       data,
		Timestamp:  time.Now().UTC(),
	})
}
