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

import "strings"

// FallbackResponse returns a canned assistant reply keyed off the caller's
// role and the topic of the message. Used whenever the generated-text
// service is unconfigured or unreachable.
func FallbackResponse(message, role string) string {
	if role == "" {
		role = "visitor"
	}
	lowerMessage := strings.ToLower(message)

	switch role {
	case "admin":
		if strings.Contains(lowerMessage, "user") || strings.Contains(lowerMessage, "manage") {
			return "Admin Panel Access: You can manage users through the 'App Admin Area' in the sidebar. From there, you can view user activity, manage permissions, and configure system settings."
		}
		if strings.Contains(lowerMessage, "currency") || strings.Contains(lowerMessage, "money") {
			return "Currency Management: Configure global currency settings in App Admin Area > Currency Settings. This updates currency formatting throughout the entire application for all users."
		}
		if strings.Contains(lowerMessage, "product") || strings.Contains(lowerMessage, "insurance") {
			return "Product Management: Manage insurance product types and categories in App Admin Area > Product Types. You can add new categories, create product types, and set base premiums."
		}
		return "Admin Dashboard: As an admin, you have access to system management tools in the App Admin Area. You can manage users, configure settings, oversee business operations, and view comprehensive analytics. What specific area would you like help with?"
	case "broker":
		if strings.Contains(lowerMessage, "client") || strings.Contains(lowerMessage, "customer") {
			return "Client Management: You can manage clients through the Clients section. Create new client profiles, track their policies and quotes, and use AI-powered risk assessment to better serve them."
		}
		if strings.Contains(lowerMessage, "quote") || strings.Contains(lowerMessage, "price") {
			return "Quote Generation: Create and compare quotes using our intelligent quote system. The platform automatically compares rates across multiple carriers and provides AI-powered recommendations."
		}
		if strings.Contains(lowerMessage, "commission") || strings.Contains(lowerMessage, "revenue") {
			return "Revenue Tracking: Track your commission and revenue through the Dashboard analytics. You can view real-time performance metrics and generate detailed reports."
		}
		return "Broker Tools: As a broker, you have access to comprehensive client management, quote generation, policy administration, and business analytics tools. How can I help you grow your business today?"
	case "customer":
		if strings.Contains(lowerMessage, "policy") || strings.Contains(lowerMessage, "coverage") {
			return "Policy Access: You can view all your policies in the Policies section of your dashboard. Each policy shows coverage details, premium information, and renewal dates."
		}
		if strings.Contains(lowerMessage, "claim") || strings.Contains(lowerMessage, "file") {
			return "Claims Support: To file a claim, go to the Claims section in your dashboard. You can upload supporting documents and track the status of your claims in real-time."
		}
		if strings.Contains(lowerMessage, "payment") || strings.Contains(lowerMessage, "premium") {
			return "Payment Management: Manage your payments and view premium schedules in your dashboard. You can set up autopay or make one-time payments securely online."
		}
		return "Customer Portal: As a customer, you can manage your policies, file claims, make payments, and track coverage through your secure dashboard. What would you like help with today?"
	default:
		if strings.Contains(lowerMessage, "insurance") || strings.Contains(lowerMessage, "coverage") {
			return "Insurance Solutions: We offer comprehensive insurance solutions including Auto, Home, Life, Health, Business, and Renters insurance. Each policy is tailored to your specific needs with competitive rates."
		}
		if strings.Contains(lowerMessage, "quote") || strings.Contains(lowerMessage, "price") {
			return "Get a Quote: Getting a quote is easy! You can apply online through our 'Apply' section, or contact one of our licensed agents. Our AI-powered system provides instant comparisons across multiple carriers."
		}
		if strings.Contains(lowerMessage, "agent") || strings.Contains(lowerMessage, "broker") {
			return "Professional Support: Our licensed insurance professionals are here to help you find the right coverage. You can contact us through the Contact page or schedule a consultation online."
		}
		return "Welcome! I'm here to help you understand our insurance solutions and how our AI-powered platform can serve your needs. What specific information are you looking for?"
	}
}
