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
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/coverlane/brokerage-automation-service/internal/automation/model"
	"github.com/coverlane/brokerage-automation-service/internal/automation/store"
	"github.com/coverlane/brokerage-automation-service/internal/system/constants"
	"github.com/coverlane/brokerage-automation-service/internal/system/database/provider"
)

func newRule() model.AutomationRule {
	now := time.Now().UTC()
	return model.AutomationRule{
		RuleId:      uuid.New().String(),
		Name:        "Acknowledge claims",
		Description: "Notify the broker when a claim comes in",
		TriggerType: model.TriggerClaimSubmitted,
		Conditions: []model.AutomationCondition{
			{Field: "status", Operator: model.OperatorEquals, Value: "submitted"},
		},
		Actions: []model.AutomationAction{
			{Type: model.ActionNotifyBroker, Parameters: map[string]interface{}{"brokerId": "broker-1"}},
		},
		Enabled:   true,
		Priority:  model.PriorityHigh,
		CreatedAt: now,
		UpdatedAt: &now,
	}
}

func TestAutomationRuleLifecycle(t *testing.T) {
	rule := newRule()
	require.NoError(t, store.AddAutomationRule(rule))

	fetched, err := store.GetAutomationRule(rule.RuleId)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, rule.Name, fetched.Name)
	assert.Equal(t, rule.TriggerType, fetched.TriggerType)
	require.Len(t, fetched.Conditions, 1)
	assert.Equal(t, "status", fetched.Conditions[0].Field)

	require.NoError(t, store.PatchAutomationRule(rule.RuleId, map[string]interface{}{"name": "Renamed rule"}))
	fetched, err = store.GetAutomationRule(rule.RuleId)
	require.NoError(t, err)
	assert.Equal(t, "Renamed rule", fetched.Name)
	require.NotNil(t, fetched.UpdatedAt)

	enabled, err := store.GetEnabledRules()
	require.NoError(t, err)
	assert.True(t, containsRule(enabled, rule.RuleId))

	require.NoError(t, store.SoftDeleteAutomationRule(rule.RuleId))

	enabled, err = store.GetEnabledRules()
	require.NoError(t, err)
	assert.False(t, containsRule(enabled, rule.RuleId))

	// Soft deleted rules stay fetchable for the audit trail.
	fetched, err = store.GetAutomationRule(rule.RuleId)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.False(t, fetched.Enabled)
	assert.NotNil(t, fetched.DeletedAt)
}

func TestRecordTriggerBookkeeping(t *testing.T) {
	rule := newRule()
	rule.TriggerCount = 3
	require.NoError(t, store.AddAutomationRule(rule))

	require.NoError(t, store.RecordTrigger(rule))

	fetched, err := store.GetAutomationRule(rule.RuleId)
	require.NoError(t, err)
	assert.Equal(t, 4, fetched.TriggerCount)
	assert.NotNil(t, fetched.LastTriggered)
}

func TestGetAutomationRuleMissing(t *testing.T) {
	fetched, err := store.GetAutomationRule("no-such-rule")
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestWorkflowEventRoundTrip(t *testing.T) {
	input := model.WorkflowEventInput{
		Type:       model.EventClaimUpdated,
		EntityId:   "claim-7",
		EntityType: model.EntityClaim,
		Data:       map[string]interface{}{"status": "submitted"},
		Timestamp:  time.Now().UTC(),
	}

	eventId, err := store.InsertEvent(input)
	require.NoError(t, err)
	require.NotEmpty(t, eventId)

	event, err := store.GetEvent(eventId)
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.False(t, event.Processed)
	assert.Equal(t, "claim-7", event.EntityId)

	results := []model.AutomationResult{
		{
			RuleId:          "r1",
			RuleName:        "Acknowledge claims",
			Success:         true,
			ActionsExecuted: []string{model.ActionNotifyBroker},
			ExecutedAt:      time.Now().UTC(),
		},
	}
	require.NoError(t, store.FinalizeEvent(eventId, results))

	event, err = store.GetEvent(eventId)
	require.NoError(t, err)
	assert.True(t, event.Processed)
	assert.NotNil(t, event.ProcessedAt)
	require.Len(t, event.Results, 1)
	assert.Equal(t, "r1", event.Results[0].RuleId)
	assert.True(t, event.Results[0].Success)
}

func TestPatchEntityFieldStampsDocument(t *testing.T) {
	ctx := context.Background()
	claims := provider.GetDatabase().Collection(constants.ClaimCollection)

	claimId := uuid.New().String()
	_, err := claims.InsertOne(ctx, bson.M{"_id": claimId, "status": "submitted"})
	require.NoError(t, err)

	require.NoError(t, store.PatchEntityField(constants.ClaimCollection, claimId, "status", "investigating"))

	var doc bson.M
	require.NoError(t, claims.FindOne(ctx, bson.M{"_id": claimId}).Decode(&doc))
	assert.Equal(t, "investigating", doc["status"])
	assert.Equal(t, true, doc["automated_update"])
	assert.NotNil(t, doc["updated_at"])
}

func containsRule(rules []model.AutomationRule, ruleId string) bool {
	for _, rule := range rules {
		if rule.RuleId == ruleId {
			return true
		}
	}
	return false
}
