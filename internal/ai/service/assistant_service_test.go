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

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coverlane/brokerage-automation-service/internal/system/client"
	"github.com/coverlane/brokerage-automation-service/internal/system/config"
)

func TestExtractRecommendations(t *testing.T) {
	response := strings.Join([]string{
		"Summary of the assessment.",
		"We recommend increasing the deductible on this policy.",
		"- ok",
		"- Request updated financial statements from the client.",
		"• Schedule a renewal call before the expiration date.",
		"Nothing actionable here.",
	}, "\n")

	recommendations := ExtractRecommendations(response)
	require.Len(t, recommendations, 3)
	assert.Equal(t, "We recommend increasing the deductible on this policy.", recommendations[0])
	assert.Equal(t, "- Request updated financial statements from the client.", recommendations[1])
	assert.Equal(t, "• Schedule a renewal call before the expiration date.", recommendations[2])
}

func TestExtractRecommendationsCapsAtFive(t *testing.T) {
	var lines []string
	for i := 0; i < 8; i++ {
		lines = append(lines, "- This is a long enough recommendation line.")
	}

	recommendations := ExtractRecommendations(strings.Join(lines, "\n"))
	assert.Len(t, recommendations, 5)
}

func TestExtractRecommendationsEmptyResponse(t *testing.T) {
	assert.Empty(t, ExtractRecommendations("All clear."))
}

func TestDefaultReviewPrompt(t *testing.T) {
	data := map[string]interface{}{"status": "submitted", "amount": 1200}

	claimPrompt := DefaultReviewPrompt("claim", data)
	assert.Contains(t, claimPrompt, "fraud indicators")
	assert.Contains(t, claimPrompt, `"status": "submitted"`)

	assert.Contains(t, DefaultReviewPrompt("quote", data), "risk assessment")
	assert.Contains(t, DefaultReviewPrompt("policy", data), "renewal recommendations")
	assert.Contains(t, DefaultReviewPrompt("customer", data), "provide insights")
}

func TestChatResponseWithoutAPIKeyFallsBack(t *testing.T) {
	as := NewAssistantService(client.NewGroqClient(config.GenAIConfig{}))

	reply := as.ChatResponse(context.Background(), "where are my clients?", "broker")
	assert.Contains(t, reply, "Client Management")
}

func TestFallbackResponseByRole(t *testing.T) {
	assert.Contains(t, FallbackResponse("how do I manage users?", "admin"), "Admin Panel Access")
	assert.Contains(t, FallbackResponse("where are my clients?", "broker"), "Client Management")
	assert.Contains(t, FallbackResponse("how do I file a claim?", "customer"), "Claims Support")
	assert.Contains(t, FallbackResponse("tell me about insurance", ""), "Insurance Solutions")
	assert.Contains(t, FallbackResponse("hello", "visitor"), "Welcome!")
}
