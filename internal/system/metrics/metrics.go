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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "automation_events_ingested_total",
		Help: "Total number of workflow events accepted by the orchestrator.",
	})

	EventsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "automation_events_dropped_total",
		Help: "Total number of workflow events rejected due to a full ingest queue.",
	})

	EventsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "automation_events_processed_total",
		Help: "Total number of workflow events fully processed.",
	})

	RulesFired = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "automation_rules_fired_total",
		Help: "Total number of rule executions, labelled by outcome.",
	}, []string{"status"})

	ActionsExecuted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "automation_actions_executed_total",
		Help: "Total number of actions executed, labelled by type and status.",
	}, []string{"action_type", "status"})

	SweepRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "automation_sweep_runs_total",
		Help: "Total number of periodic sweep executions, labelled by sweep name.",
	}, []string{"sweep"})
)
