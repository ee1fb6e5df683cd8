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

// AIReview stores the raw output of one generated-text review together with
// the extracted recommendation lines.
type AIReview struct {
	ReviewId        string    `json:"id" bson:"_id"`
	EntityId        string    `json:"entity_id" bson:"entity_id"`
	EntityType      string    `json:"entity_type" bson:"entity_type"`
	Prompt          string    `json:"prompt" bson:"prompt"`
	Response        string    `json:"response" bson:"response"`
	Confidence      float64   `json:"confidence" bson:"confidence"`
	Recommendations []string  `json:"recommendations" bson:"recommendations"`
	ReviewedAt      time.Time `json:"reviewed_at" bson:"reviewed_at"`
	Automated       bool      `json:"automated" bson:"automated"`
}
