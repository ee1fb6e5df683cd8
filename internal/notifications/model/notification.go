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

import "time"

// NotificationTypeAutomationAlert marks notifications produced by the
// automation pipeline.
const NotificationTypeAutomationAlert = "automation_alert"

// Notification is an in-app message addressed to a broker.
type Notification struct {
	NotificationId string    `json:"id" bson:"_id"`
	Type           string    `json:"type" bson:"type"`
	Title          string    `json:"title" bson:"title"`
	Message        string    `json:"message" bson:"message"`
	Priority       string    `json:"priority" bson:"priority"`
	EntityId       string    `json:"entity_id,omitempty" bson:"entity_id,omitempty"`
	EntityType     string    `json:"entity_type,omitempty" bson:"entity_type,omitempty"`
	BrokerId       string    `json:"broker_id,omitempty" bson:"broker_id,omitempty"`
	Read           bool      `json:"read" bson:"read"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}
