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

// Policy statuses.
const (
	StatusActive    = "active"
	StatusExpired   = "expired"
	StatusCancelled = "cancelled"
)

// PaymentStatusCurrent marks a policy with no outstanding payment.
const PaymentStatusCurrent = "current"

// PolicyDates carries the coverage window.
type PolicyDates struct {
	Effective  time.Time `json:"effective" bson:"effective"`
	Expiration time.Time `json:"expiration" bson:"expiration"`
}

// PolicyPayment carries the billing state of a policy.
type PolicyPayment struct {
	NextDueDate *time.Time `json:"next_due_date,omitempty" bson:"next_due_date,omitempty"`
	Frequency   string     `json:"frequency" bson:"frequency"`
	Method      string     `json:"method,omitempty" bson:"method,omitempty"`
}

// PolicyFormRequest is the payload for issuing a policy. Identity, policy
// number, status and timestamps are server-assigned.
type PolicyFormRequest struct {
	ClientId         string     `json:"client_id"`
	ProductType      string     `json:"product_type"`
	Premium          float64    `json:"premium"`
	Currency         string     `json:"currency"`
	Effective        time.Time  `json:"effective"`
	Expiration       time.Time  `json:"expiration"`
	PaymentFrequency string     `json:"payment_frequency,omitempty"`
	PaymentMethod    string     `json:"payment_method,omitempty"`
	NextDueDate      *time.Time `json:"next_due_date,omitempty"`
}

// Policy is an issued insurance policy.
type Policy struct {
	PolicyId      string        `json:"id" bson:"_id"`
	ClientId      string        `json:"client_id" bson:"client_id"`
	PolicyNumber  string        `json:"policy_number" bson:"policy_number"`
	ProductType   string        `json:"product_type" bson:"product_type"`
	Status        string        `json:"status" bson:"status"`
	Premium       float64       `json:"premium" bson:"premium"`
	Currency      string        `json:"currency" bson:"currency"`
	PaymentStatus string        `json:"payment_status" bson:"payment_status"`
	Payment       PolicyPayment `json:"payment" bson:"payment"`
	Dates         PolicyDates   `json:"dates" bson:"dates"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" bson:"updated_at"`
}
