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

package log

import (
	"encoding/json"
	"log/slog"
	"time"
)

// AuditEvent represents a structured audit log entry
type AuditEvent struct {
	RecordedAt    string      `json:"recordedAt"`
	InitiatorID   string      `json:"initiatorId"`
	InitiatorType string      `json:"initiatorType"`
	TargetID      string      `json:"targetId"`
	TargetType    string      `json:"targetType"`
	ActionID      string      `json:"actionId"`
	Data          interface{} `json:"data,omitempty"`
}

// Audit logs an audit event with structured fields
func (l *Logger) Audit(event AuditEvent) {
	if event.RecordedAt == "" {
		event.RecordedAt = time.Now().UTC().Format(time.RFC3339)
	}

	jsonData, err := json.Marshal(event)
	if err != nil {
		l.Error("Failed to marshal audit event", Error(err))
		return
	}

	// Log at Info level with "AUDIT" prefix
	l.internal.Info("AUDIT", slog.String("audit_event", string(jsonData)))
}

// Action IDs for audit logging
const (
	// Automation rule operations
	ActionAddAutomationRule    = "add-automation-rule"
	ActionUpdateAutomationRule = "update-automation-rule"
	ActionDeleteAutomationRule = "delete-automation-rule"
	ActionManualTrigger        = "manual-automation-trigger"

	// Client operations
	ActionAddClient    = "add-client"
	ActionUpdateClient = "update-client"
	ActionDeleteClient = "delete-client"

	// Entity operations
	ActionAddQuote    = "add-quote"
	ActionAddPolicy   = "add-policy"
	ActionSubmitClaim = "submit-claim"

	// Catalog and settings operations
	ActionUpdateProductCatalog   = "update-product-catalog"
	ActionUpdateCurrencySettings = "update-currency-settings"
)

// Initiator types
const (
	InitiatorTypeUser   = "user"
	InitiatorTypeSystem = "system"
)

// Target types
const (
	TargetTypeAutomationRule = "automation-rule"
	TargetTypeWorkflowEvent  = "workflow-event"
	TargetTypeClient         = "client"
	TargetTypeQuote          = "quote"
	TargetTypePolicy         = "policy"
	TargetTypeClaim          = "claim"
	TargetTypeProductCatalog = "product-catalog"
	TargetTypeSystemSettings = "system-settings"
)
