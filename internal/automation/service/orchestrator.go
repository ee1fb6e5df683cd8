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
	"sync"
	"time"

	"github.com/coverlane/brokerage-automation-service/internal/automation/model"
	"github.com/coverlane/brokerage-automation-service/internal/automation/store"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
	"github.com/coverlane/brokerage-automation-service/internal/system/metrics"
)

// RuleSource supplies the rules the orchestrator evaluates and receives
// trigger bookkeeping for successful executions.
type RuleSource interface {
	EnabledRules() ([]model.AutomationRule, error)
	RecordTrigger(rule model.AutomationRule) error
}

// EventSink persists events and their final results.
type EventSink interface {
	InsertEvent(input model.WorkflowEventInput) (string, error)
	FinalizeEvent(eventId string, results []model.AutomationResult) error
}

// ActionRunner executes a single automation action.
type ActionRunner interface {
	ExecuteAction(action model.AutomationAction, event model.WorkflowEventInput,
		rule model.AutomationRule) error
}

// storeRuleSource and storeEventSink adapt the document store packages.
type storeRuleSource struct{}

func (s *storeRuleSource) EnabledRules() ([]model.AutomationRule, error) {
	return store.GetEnabledRules()
}

func (s *storeRuleSource) RecordTrigger(rule model.AutomationRule) error {
	return store.RecordTrigger(rule)
}

type storeEventSink struct{}

func (s *storeEventSink) InsertEvent(input model.WorkflowEventInput) (string, error) {
	return store.InsertEvent(input)
}

func (s *storeEventSink) FinalizeEvent(eventId string, results []model.AutomationResult) error {
	return store.FinalizeEvent(eventId, results)
}

// Orchestrator ties event capture, rule matching, action execution and the
// audit trail together. Producers hand events over a buffered queue and
// never observe pipeline errors.
type Orchestrator struct {
	queue    chan model.WorkflowEventInput
	rules    RuleSource
	events   EventSink
	executor ActionRunner

	startOnce sync.Once
	stopOnce  sync.Once
	stop      chan struct{}
	wg        sync.WaitGroup
}

// NewOrchestrator builds an orchestrator with the given queue capacity.
func NewOrchestrator(queueSize int, rules RuleSource, events EventSink, executor ActionRunner) *Orchestrator {
	return &Orchestrator{
		queue:    make(chan model.WorkflowEventInput, queueSize),
		rules:    rules,
		events:   events,
		executor: executor,
		stop:     make(chan struct{}),
	}
}

// NewDefaultOrchestrator wires the orchestrator to the document store and
// the store-backed action executor.
func NewDefaultOrchestrator(queueSize int, executor ActionRunner) *Orchestrator {
	return NewOrchestrator(queueSize, &storeRuleSource{}, &storeEventSink{}, executor)
}

// Start launches the queue consumer. Safe to call once; later calls are
// no-ops.
func (o *Orchestrator) Start() {
	o.startOnce.Do(func() {
		o.wg.Add(1)
		go o.run()
		log.GetLogger().Info("Automation orchestrator started")
	})
}

// Stop closes the intake. In-flight events finish processing; events still
// queued are dropped with the same accounting Ingest applies, and new
// ingests are dropped. Idempotent.
func (o *Orchestrator) Stop() {
	o.stopOnce.Do(func() {
		close(o.stop)
		log.GetLogger().Info("Automation orchestrator stopped")
	})
	o.wg.Wait()
	o.drainQueue()
}

// drainQueue drops events that were queued but never picked up. Only called
// after the consumer has returned.
func (o *Orchestrator) drainQueue() {
	for {
		select {
		case input := <-o.queue:
			metrics.EventsDropped.Inc()
			log.GetLogger().Warn("Dropping workflow event, orchestrator is stopped",
				log.String("event_type", input.Type), log.String("entity_id", input.EntityId))
		default:
			return
		}
	}
}

// Ingest hands an event to the pipeline without blocking the producer. When
// the queue is full or the orchestrator is stopped the event is dropped and
// logged; producers never see pipeline errors.
func (o *Orchestrator) Ingest(input model.WorkflowEventInput) {
	select {
	case <-o.stop:
		metrics.EventsDropped.Inc()
		log.GetLogger().Warn("Dropping workflow event, orchestrator is stopped",
			log.String("event_type", input.Type))
		return
	default:
	}

	select {
	case o.queue <- input:
		metrics.EventsIngested.Inc()
	default:
		metrics.EventsDropped.Inc()
		log.GetLogger().Warn("Dropping workflow event, ingest queue is full",
			log.String("event_type", input.Type), log.String("entity_id", input.EntityId))
	}
}

func (o *Orchestrator) run() {
	defer o.wg.Done()
	for {
		select {
		case <-o.stop:
			return
		case input := <-o.queue:
			o.wg.Add(1)
			go func(event model.WorkflowEventInput) {
				defer o.wg.Done()
				o.processEvent(event)
			}(input)
		}
	}
}

// processEvent runs the full pipeline for one event. Every step is fallible
// and logged; a failure after persistence leaves the event unprocessed with
// no retry.
func (o *Orchestrator) processEvent(input model.WorkflowEventInput) {
	logger := log.GetLogger()

	eventId, err := o.events.InsertEvent(input)
	if err != nil {
		logger.Error("Failed to persist workflow event", log.Error(err),
			log.String("event_type", input.Type))
		return
	}

	applicable := o.applicableRules(input)

	results := make([]model.AutomationResult, 0, len(applicable))
	for _, rule := range applicable {
		result := o.executeRule(rule, input)
		if result.Success {
			metrics.RulesFired.WithLabelValues("success").Inc()
		} else {
			metrics.RulesFired.WithLabelValues("failure").Inc()
		}
		results = append(results, result)
	}

	if err := o.events.FinalizeEvent(eventId, results); err != nil {
		logger.Error("Failed to finalize workflow event", log.Error(err),
			log.String("event_id", eventId))
		return
	}
	metrics.EventsProcessed.Inc()
}

// applicableRules returns the enabled rules whose trigger type maps to the
// event type and whose every condition holds against the payload. A rule
// fetch failure yields no rules for this event.
func (o *Orchestrator) applicableRules(input model.WorkflowEventInput) []model.AutomationRule {
	rules, err := o.rules.EnabledRules()
	if err != nil {
		log.GetLogger().Error("Failed to fetch enabled rules", log.Error(err))
		return nil
	}

	var applicable []model.AutomationRule
	for _, rule := range rules {
		if !MatchesTriggerType(rule.TriggerType, input.Type) {
			continue
		}
		if !EvaluateConditions(rule.Conditions, input.Data) {
			continue
		}
		applicable = append(applicable, rule)
	}
	return applicable
}

// executeRule runs one rule's actions in order. The first action error
// aborts the remaining actions of this rule only. A trigger bookkeeping
// failure also marks the result unsuccessful.
func (o *Orchestrator) executeRule(rule model.AutomationRule, input model.WorkflowEventInput) model.AutomationResult {
	result := model.AutomationResult{
		RuleId:          rule.RuleId,
		RuleName:        rule.Name,
		Success:         true,
		ActionsExecuted: []string{},
		ExecutedAt:      time.Now().UTC(),
	}

	for _, action := range rule.Actions {
		if err := o.executor.ExecuteAction(action, input, rule); err != nil {
			result.Success = false
			result.Error = err.Error()
			return result
		}
		result.ActionsExecuted = append(result.ActionsExecuted, action.Type)
	}

	if err := o.rules.RecordTrigger(rule); err != nil {
		result.Success = false
		result.Error = err.Error()
	}
	return result
}
