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
	"encoding/json"
	"fmt"
	"strings"

	"github.com/coverlane/brokerage-automation-service/internal/system/client"
	"github.com/coverlane/brokerage-automation-service/internal/system/config"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
)

// AssistantServiceInterface is the generated-text surface the rest of the
// service consumes.
type AssistantServiceInterface interface {
	GenerateText(ctx context.Context, prompt string, opts client.GenerateOptions) (string, error)
	ChatResponse(ctx context.Context, message, role string) string
}

// AssistantService wraps the remote text-completion client with canned
// fallbacks for when the remote is unconfigured or failing.
type AssistantService struct {
	groq *client.GroqClient
}

// GetAssistantService creates a new instance of AssistantService.
func GetAssistantService() AssistantServiceInterface {
	cfg := config.GetRuntime().Config
	return &AssistantService{groq: client.NewGroqClient(cfg.GenAI)}
}

// NewAssistantService builds an assistant around an existing client. Used by
// tests and by callers that manage configuration themselves.
func NewAssistantService(groq *client.GroqClient) *AssistantService {
	return &AssistantService{groq: groq}
}

// GenerateText forwards a prompt to the remote service. Errors are wrapped
// and returned; callers decide whether to degrade.
func (as *AssistantService) GenerateText(ctx context.Context, prompt string, opts client.GenerateOptions) (string, error) {
	response, err := as.groq.GenerateText(ctx, prompt, opts)
	if err != nil {
		return "", errors2.NewServerError(errors2.GENERATED_TEXT_CALL, err)
	}
	return response, nil
}

// ChatResponse answers an interactive assistant message. The remote service
// is consulted when configured; any failure degrades to a canned reply.
func (as *AssistantService) ChatResponse(ctx context.Context, message, role string) string {
	if !as.groq.HasAPIKey() {
		return FallbackResponse(message, role)
	}

	if role == "" {
		role = "visitor"
	}
	prompt := fmt.Sprintf("User (%s): %s\n\nPlease provide a helpful response as an insurance platform AI assistant.",
		role, message)

	response, err := as.groq.GenerateText(ctx, prompt, client.GenerateOptions{
		Temperature: 0.7,
		MaxTokens:   1024,
	})
	if err != nil {
		log.GetLogger().Warn("Generated-text call failed, using fallback response", log.Error(err))
		return FallbackResponse(message, role)
	}
	return response
}

// DefaultReviewPrompt builds the per-entity-type prompt used when a review
// action carries no explicit prompt parameter.
func DefaultReviewPrompt(entityType string, data map[string]interface{}) string {
	snapshot, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		snapshot = []byte("{}")
	}

	switch entityType {
	case "quote":
		return fmt.Sprintf("Analyze this insurance quote application and provide risk assessment and recommendations:\n\n%s", snapshot)
	case "claim":
		return fmt.Sprintf("Review this insurance claim for fraud indicators and processing recommendations:\n\n%s", snapshot)
	case "policy":
		return fmt.Sprintf("Evaluate this insurance policy for renewal recommendations and risk factors:\n\n%s", snapshot)
	default:
		return fmt.Sprintf("Analyze this insurance-related data and provide insights:\n\n%s", snapshot)
	}
}

// ExtractRecommendations scans a generated response for recommendation
// looking lines: lines mentioning "recommend" or starting list markers,
// longer than ten characters, capped at five.
func ExtractRecommendations(response string) []string {
	var recommendations []string
	for _, line := range strings.Split(response, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		if !strings.Contains(lower, "recommend") &&
			!strings.Contains(trimmed, "•") && !strings.Contains(trimmed, "-") {
			continue
		}
		if len(trimmed) <= 10 {
			continue
		}
		recommendations = append(recommendations, trimmed)
		if len(recommendations) == 5 {
			break
		}
	}
	return recommendations
}
