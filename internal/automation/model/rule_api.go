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

// CreateRuleRequest is the payload accepted when adding a rule. Identity,
// timestamps and trigger statistics are server-assigned.
type CreateRuleRequest struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	TriggerType string                `json:"trigger_type"`
	Conditions  []AutomationCondition `json:"conditions"`
	Actions     []AutomationAction    `json:"actions"`
	Enabled     bool                  `json:"enabled"`
	Priority    string                `json:"priority"`
}

// TriggerRequest is the payload for the manual trigger endpoint.
type TriggerRequest struct {
	EventType  string                 `json:"event_type"`
	EntityId   string                 `json:"entity_id"`
	EntityType string                 `json:"entity_type"`
	Data       map[string]interface{} `json:"data"`
}
