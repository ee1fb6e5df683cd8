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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coverlane/brokerage-automation-service/internal/automation/model"
)

type fakeRuleSource struct {
	rules      []model.AutomationRule
	fetchErr   error
	recordErr  error
	recordedAt []string
}

func (f *fakeRuleSource) EnabledRules() ([]model.AutomationRule, error) {
	return f.rules, f.fetchErr
}

func (f *fakeRuleSource) RecordTrigger(rule model.AutomationRule) error {
	f.recordedAt = append(f.recordedAt, rule.RuleId)
	return f.recordErr
}

type fakeEventSink struct {
	insertErr error
	finalized map[string][]model.AutomationResult
}

func (f *fakeEventSink) InsertEvent(input model.WorkflowEventInput) (string, error) {
	return "evt-1", f.insertErr
}

func (f *fakeEventSink) FinalizeEvent(eventId string, results []model.AutomationResult) error {
	if f.finalized == nil {
		f.finalized = make(map[string][]model.AutomationResult)
	}
	f.finalized[eventId] = results
	return nil
}

type fakeActionRunner struct {
	failType string
	executed []string
}

func (f *fakeActionRunner) ExecuteAction(action model.AutomationAction, event model.WorkflowEventInput,
	rule model.AutomationRule) error {
	if action.Type == f.failType {
		return errors.New("action exploded")
	}
	f.executed = append(f.executed, action.Type)
	return nil
}

func claimRule(ruleId string, actions ...string) model.AutomationRule {
	rule := model.AutomationRule{
		RuleId:      ruleId,
		Name:        "rule " + ruleId,
		TriggerType: model.TriggerClaimSubmitted,
		Enabled:     true,
		Priority:    model.PriorityMedium,
	}
	for _, actionType := range actions {
		rule.Actions = append(rule.Actions, model.AutomationAction{Type: actionType})
	}
	return rule
}

func claimEvent() model.WorkflowEventInput {
	return model.WorkflowEventInput{
		Type:       model.EventClaimUpdated,
		EntityId:   "claim-1",
		EntityType: model.EntityClaim,
		Data:       map[string]interface{}{"status": "submitted"},
	}
}

func TestProcessEventExecutesMatchingRules(t *testing.T) {
	matching := claimRule("r1", model.ActionNotifyBroker, model.ActionCreateTask)
	otherTrigger := claimRule("r2", model.ActionNotifyBroker)
	otherTrigger.TriggerType = model.TriggerDocumentUpload

	rules := &fakeRuleSource{rules: []model.AutomationRule{matching, otherTrigger}}
	events := &fakeEventSink{}
	runner := &fakeActionRunner{}

	o := NewOrchestrator(4, rules, events, runner)
	o.processEvent(claimEvent())

	results := events.finalized["evt-1"]
	require.Len(t, results, 1)
	assert.Equal(t, "r1", results[0].RuleId)
	assert.True(t, results[0].Success)
	assert.Empty(t, results[0].Error)
	assert.Equal(t, []string{model.ActionNotifyBroker, model.ActionCreateTask}, results[0].ActionsExecuted)
	assert.Equal(t, []string{"r1"}, rules.recordedAt)
}

func TestProcessEventConditionFiltering(t *testing.T) {
	rule := claimRule("r1", model.ActionNotifyBroker)
	rule.Conditions = []model.AutomationCondition{
		{Field: "status", Operator: model.OperatorEquals, Value: "approved"},
	}

	rules := &fakeRuleSource{rules: []model.AutomationRule{rule}}
	events := &fakeEventSink{}
	runner := &fakeActionRunner{}

	o := NewOrchestrator(4, rules, events, runner)
	o.processEvent(claimEvent())

	require.Contains(t, events.finalized, "evt-1")
	assert.Empty(t, events.finalized["evt-1"])
	assert.Empty(t, runner.executed)
}

func TestProcessEventActionFailureIsolatesRule(t *testing.T) {
	failing := claimRule("r1", model.ActionNotifyBroker, model.ActionSendEmail, model.ActionCreateTask)
	healthy := claimRule("r2", model.ActionCreateTask)

	rules := &fakeRuleSource{rules: []model.AutomationRule{failing, healthy}}
	events := &fakeEventSink{}
	runner := &fakeActionRunner{failType: model.ActionSendEmail}

	o := NewOrchestrator(4, rules, events, runner)
	o.processEvent(claimEvent())

	results := events.finalized["evt-1"]
	require.Len(t, results, 2)

	assert.False(t, results[0].Success)
	assert.Equal(t, "action exploded", results[0].Error)
	assert.Equal(t, []string{model.ActionNotifyBroker}, results[0].ActionsExecuted)

	assert.True(t, results[1].Success)
	assert.Equal(t, []string{model.ActionCreateTask}, results[1].ActionsExecuted)

	// Only the rule whose actions all succeeded gets trigger bookkeeping.
	assert.Equal(t, []string{"r2"}, rules.recordedAt)
}

func TestProcessEventRecordTriggerFailure(t *testing.T) {
	rule := claimRule("r1", model.ActionNotifyBroker)

	rules := &fakeRuleSource{rules: []model.AutomationRule{rule}, recordErr: errors.New("store down")}
	events := &fakeEventSink{}
	runner := &fakeActionRunner{}

	o := NewOrchestrator(4, rules, events, runner)
	o.processEvent(claimEvent())

	results := events.finalized["evt-1"]
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.Equal(t, "store down", results[0].Error)
	assert.Equal(t, []string{model.ActionNotifyBroker}, results[0].ActionsExecuted)
}

func TestProcessEventRuleFetchFailure(t *testing.T) {
	rules := &fakeRuleSource{fetchErr: errors.New("store down")}
	events := &fakeEventSink{}
	runner := &fakeActionRunner{}

	o := NewOrchestrator(4, rules, events, runner)
	o.processEvent(claimEvent())

	// The event is still finalized as processed, with no results.
	require.Contains(t, events.finalized, "evt-1")
	assert.Empty(t, events.finalized["evt-1"])
}

func TestProcessEventInsertFailureSkipsPipeline(t *testing.T) {
	rules := &fakeRuleSource{rules: []model.AutomationRule{claimRule("r1", model.ActionNotifyBroker)}}
	events := &fakeEventSink{insertErr: errors.New("store down")}
	runner := &fakeActionRunner{}

	o := NewOrchestrator(4, rules, events, runner)
	o.processEvent(claimEvent())

	assert.Empty(t, events.finalized)
	assert.Empty(t, runner.executed)
}

func TestIngestDropsWhenQueueFull(t *testing.T) {
	o := NewOrchestrator(1, &fakeRuleSource{}, &fakeEventSink{}, &fakeActionRunner{})

	o.Ingest(claimEvent())
	o.Ingest(claimEvent())

	assert.Equal(t, 1, len(o.queue))
}

func TestStopDropsQueuedEvents(t *testing.T) {
	events := &fakeEventSink{}
	o := NewOrchestrator(4, &fakeRuleSource{}, events, &fakeActionRunner{})

	// Queued but never consumed; the orchestrator was never started.
	o.Ingest(claimEvent())
	o.Ingest(claimEvent())
	require.Equal(t, 2, len(o.queue))

	o.Stop()

	assert.Equal(t, 0, len(o.queue))
	assert.Empty(t, events.finalized)
}

func TestIngestAfterStopIsDropped(t *testing.T) {
	o := NewOrchestrator(4, &fakeRuleSource{}, &fakeEventSink{}, &fakeActionRunner{})
	o.Start()
	o.Stop()

	o.Ingest(claimEvent())
	assert.Equal(t, 0, len(o.queue))
}
