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

// Client statuses.
const (
	StatusProspect = "prospect"
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Risk levels assigned by assessment.
const (
	RiskLow      = "LOW"
	RiskMedium   = "MEDIUM"
	RiskHigh     = "HIGH"
	RiskVeryHigh = "VERY_HIGH"
)

// Address is a client's postal address.
type Address struct {
	Street  string `json:"street" bson:"street"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	ZipCode string `json:"zip_code" bson:"zip_code"`
	Country string `json:"country" bson:"country"`
}

// AIInsights carries the generated-text portion of a risk assessment.
type AIInsights struct {
	Summary         string    `json:"summary" bson:"summary"`
	Confidence      float64   `json:"confidence" bson:"confidence"`
	KeyFactors      []string  `json:"key_factors" bson:"key_factors"`
	Recommendations []string  `json:"recommendations" bson:"recommendations"`
	GeneratedAt     time.Time `json:"generated_at" bson:"generated_at"`
}

// RiskAssessment is the stored risk profile of a client.
type RiskAssessment struct {
	Level       string     `json:"level" bson:"level"`
	Score       int        `json:"score" bson:"score"`
	Factors     []string   `json:"factors" bson:"factors"`
	LastUpdated time.Time  `json:"last_updated" bson:"last_updated"`
	AIInsights  AIInsights `json:"ai_insights" bson:"ai_insights"`
}

// Client is a CRM client record owned by a broker.
type Client struct {
	ClientId       string         `json:"id" bson:"_id"`
	FirstName      string         `json:"first_name" bson:"first_name"`
	LastName       string         `json:"last_name" bson:"last_name"`
	Email          string         `json:"email" bson:"email"`
	Phone          string         `json:"phone" bson:"phone"`
	BusinessName   string         `json:"business_name,omitempty" bson:"business_name,omitempty"`
	Industry       string         `json:"industry,omitempty" bson:"industry,omitempty"`
	EmployeeCount  int            `json:"employee_count,omitempty" bson:"employee_count,omitempty"`
	AnnualRevenue  float64        `json:"annual_revenue,omitempty" bson:"annual_revenue,omitempty"`
	Address        *Address       `json:"address,omitempty" bson:"address,omitempty"`
	BrokerId       string         `json:"broker_id" bson:"broker_id"`
	Status         string         `json:"status" bson:"status"`
	Tags           []string       `json:"tags" bson:"tags"`
	Notes          string         `json:"notes" bson:"notes"`
	RiskAssessment RiskAssessment `json:"risk_assessment" bson:"risk_assessment"`
	CreatedAt      time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" bson:"updated_at"`
}

// ClientFormRequest is the payload accepted when creating or updating a
// client.
type ClientFormRequest struct {
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	BusinessName  string   `json:"business_name,omitempty"`
	Industry      string   `json:"industry,omitempty"`
	EmployeeCount int      `json:"employee_count,omitempty"`
	AnnualRevenue float64  `json:"annual_revenue,omitempty"`
	Address       *Address `json:"address,omitempty"`
	Status        string   `json:"status,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

// ClientStats summarizes a broker's book of business.
type ClientStats struct {
	Total                int            `json:"total"`
	Active               int            `json:"active"`
	Prospects            int            `json:"prospects"`
	Inactive             int            `json:"inactive"`
	RiskDistribution     map[string]int `json:"risk_distribution"`
	IndustryDistribution map[string]int `json:"industry_distribution"`
	RecentlyAdded        int            `json:"recently_added"`
}
