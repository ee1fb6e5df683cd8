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

import "github.com/coverlane/brokerage-automation-service/internal/automation/model"

// triggerEventTypes maps a rule's trigger type to the event types that fire
// it. Sweep-generated policy_expiring and payment_overdue event types are
// not keys here, so rules of those trigger types only fire on the generic
// policy_updated event and must discriminate intent through conditions.
var triggerEventTypes = map[string][]string{
	model.TriggerApplicationSubmitted: {model.EventQuoteUpdated},
	model.TriggerClaimSubmitted:       {model.EventClaimUpdated},
	model.TriggerDocumentUpload:       {model.EventDocumentAdded},
	model.TriggerPolicyExpiring:       {model.EventPolicyUpdated},
	model.TriggerPaymentOverdue:       {model.EventPolicyUpdated},
}

// MatchesTriggerType reports whether an event type fires rules of the given
// trigger type. Trigger types absent from the table never match.
func MatchesTriggerType(triggerType, eventType string) bool {
	for _, candidate := range triggerEventTypes[triggerType] {
		if candidate == eventType {
			return true
		}
	}
	return false
}
