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

// Quote statuses.
const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
	StatusQuoted    = "quoted"
	StatusAccepted  = "accepted"
	StatusDeclined  = "declined"
)

// QuoteFormRequest is the payload for creating a quote. Identity, broker
// attribution, status and timestamps are server-assigned.
type QuoteFormRequest struct {
	ClientId       string     `json:"client_id"`
	ProductType    string     `json:"product_type"`
	Premium        float64    `json:"premium"`
	CoverageAmount float64    `json:"coverage_amount"`
	Currency       string     `json:"currency"`
	ValidUntil     *time.Time `json:"valid_until,omitempty"`
}

// Quote is a premium quotation prepared for a client.
type Quote struct {
	QuoteId        string     `json:"id" bson:"_id"`
	ClientId       string     `json:"client_id" bson:"client_id"`
	BrokerId       string     `json:"broker_id" bson:"broker_id"`
	ProductType    string     `json:"product_type" bson:"product_type"`
	Status         string     `json:"status" bson:"status"`
	Premium        float64    `json:"premium" bson:"premium"`
	CoverageAmount float64    `json:"coverage_amount" bson:"coverage_amount"`
	Currency       string     `json:"currency" bson:"currency"`
	ValidUntil     *time.Time `json:"valid_until,omitempty" bson:"valid_until,omitempty"`
	CreatedAt      time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" bson:"updated_at"`
}
