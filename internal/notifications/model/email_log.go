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

// EmailLog records one outbound email send. Delivery itself is handled by an
// external mail service; this is the audit record.
type EmailLog struct {
	EmailLogId string    `json:"id" bson:"_id"`
	Type       string    `json:"type" bson:"type"`
	Recipient  string    `json:"recipient" bson:"recipient"`
	Subject    string    `json:"subject" bson:"subject"`
	Template   string    `json:"template" bson:"template"`
	EntityId   string    `json:"entity_id,omitempty" bson:"entity_id,omitempty"`
	EntityType string    `json:"entity_type,omitempty" bson:"entity_type,omitempty"`
	SentAt     time.Time `json:"sent_at" bson:"sent_at"`
	Status     string    `json:"status" bson:"status"`
}
