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

// Document is a generated-document metadata record. The rendered file lives
// behind the URL; only the metadata is stored here.
type Document struct {
	DocumentId  string    `json:"id" bson:"_id"`
	EntityId    string    `json:"entity_id" bson:"entity_id"`
	EntityType  string    `json:"entity_type" bson:"entity_type"`
	Template    string    `json:"template" bson:"template"`
	Name        string    `json:"name" bson:"name"`
	Type        string    `json:"type" bson:"type"`
	Status      string    `json:"status" bson:"status"`
	URL         string    `json:"url" bson:"url"`
	GeneratedAt time.Time `json:"generated_at" bson:"generated_at"`
	Automated   bool      `json:"automated" bson:"automated"`
}
