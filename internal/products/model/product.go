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

// ProductType is one insurance product offered through the platform.
type ProductType struct {
	Value       string  `json:"value" bson:"value"`
	Label       string  `json:"label" bson:"label"`
	Description string  `json:"description" bson:"description"`
	BasePremium float64 `json:"base_premium" bson:"base_premium"`
	Category    string  `json:"category" bson:"category"`
	Active      bool    `json:"active" bson:"active"`
}

// Category groups product types for presentation.
type Category struct {
	Value string `json:"value" bson:"value"`
	Label string `json:"label" bson:"label"`
}

// ProductCatalog is the configurable set of products and categories.
type ProductCatalog struct {
	ProductTypes []ProductType `json:"product_types" bson:"product_types"`
	Categories   []Category    `json:"categories" bson:"categories"`
}

// DefaultBasePremium is used when a product type has no configured premium.
const DefaultBasePremium = 2000

// DefaultCatalog returns the built-in catalog used when no catalog has been
// stored yet.
func DefaultCatalog() ProductCatalog {
	return ProductCatalog{
		ProductTypes: []ProductType{
			{
				Value:       "general_liability",
				Label:       "General Liability",
				Description: "Protection against third-party claims of bodily injury, property damage, and personal injury",
				BasePremium: 2000,
				Category:    "liability",
				Active:      true,
			},
			{
				Value:       "professional_liability",
				Label:       "Professional Liability",
				Description: "Coverage for claims arising from professional services and advice",
				BasePremium: 3000,
				Category:    "liability",
				Active:      true,
			},
			{
				Value:       "cyber_liability",
				Label:       "Cyber Liability",
				Description: "Protection against cyber attacks, data breaches, and digital threats",
				BasePremium: 2500,
				Category:    "specialty",
				Active:      true,
			},
			{
				Value:       "directors_officers",
				Label:       "Directors & Officers",
				Description: "Protection for company directors and officers against personal liability",
				BasePremium: 4000,
				Category:    "management",
				Active:      true,
			},
			{
				Value:       "employment_practices",
				Label:       "Employment Practices",
				Description: "Coverage for employment-related claims and lawsuits",
				BasePremium: 2200,
				Category:    "liability",
				Active:      true,
			},
			{
				Value:       "commercial_property",
				Label:       "Commercial Property",
				Description: "Protection for business property and equipment",
				BasePremium: 1800,
				Category:    "property",
				Active:      true,
			},
			{
				Value:       "business_interruption",
				Label:       "Business Interruption",
				Description: "Coverage for lost income due to business interruption",
				BasePremium: 1500,
				Category:    "property",
				Active:      true,
			},
			{
				Value:       "workers_compensation",
				Label:       "Workers Compensation",
				Description: "Required coverage for employee injuries and illnesses",
				BasePremium: 3500,
				Category:    "workers_comp",
				Active:      true,
			},
			{
				Value:       "commercial_auto",
				Label:       "Commercial Auto",
				Description: "Coverage for business vehicles and drivers",
				BasePremium: 2800,
				Category:    "auto",
				Active:      true,
			},
			{
				Value:       "umbrella",
				Label:       "Umbrella Policy",
				Description: "Additional liability coverage above primary policies",
				BasePremium: 1200,
				Category:    "umbrella",
				Active:      true,
			},
		},
		Categories: []Category{
			{Value: "liability", Label: "Liability"},
			{Value: "property", Label: "Property"},
			{Value: "auto", Label: "Auto"},
			{Value: "workers_comp", Label: "Workers Compensation"},
			{Value: "specialty", Label: "Specialty"},
			{Value: "management", Label: "Management"},
			{Value: "umbrella", Label: "Umbrella"},
		},
	}
}
