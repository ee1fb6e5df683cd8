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
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	aiservice "github.com/coverlane/brokerage-automation-service/internal/ai/service"
	"github.com/coverlane/brokerage-automation-service/internal/clients/model"
	"github.com/coverlane/brokerage-automation-service/internal/clients/store"
	"github.com/coverlane/brokerage-automation-service/internal/system/client"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
)

// ClientServiceInterface is the CRM surface for broker clients.
type ClientServiceInterface interface {
	CreateClient(request model.ClientFormRequest, brokerId string) (*model.Client, error)
	GetClient(clientId string) (*model.Client, error)
	GetClients(brokerId string) ([]model.Client, error)
	UpdateClient(clientId string, updates map[string]interface{}) (*model.Client, error)
	DeleteClient(clientId, brokerId string) error
	GetClientStats(brokerId string) (*model.ClientStats, error)
}

// ClientService is the default implementation of the ClientServiceInterface.
type ClientService struct {
	assistant aiservice.AssistantServiceInterface
}

// GetClientService creates a new instance of ClientService.
func GetClientService() ClientServiceInterface {

	return &ClientService{assistant: aiservice.GetAssistantService()}
}

// NewClientService builds a service around an explicit assistant. Used by
// tests.
func NewClientService(assistant aiservice.AssistantServiceInterface) *ClientService {

	return &ClientService{assistant: assistant}
}

// CreateClient persists a new client with a pending risk assessment and
// kicks off the generated-text assessment in the background.
func (cs *ClientService) CreateClient(request model.ClientFormRequest, brokerId string) (*model.Client, error) {
	if request.FirstName == "" || request.LastName == "" || request.Email == "" {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "first_name, last_name and email are required.",
		}, http.StatusBadRequest)
	}

	now := time.Now().UTC()
	newClient := model.Client{
		ClientId:      uuid.New().String(),
		FirstName:     request.FirstName,
		LastName:      request.LastName,
		Email:         request.Email,
		Phone:         request.Phone,
		BusinessName:  request.BusinessName,
		Industry:      request.Industry,
		EmployeeCount: request.EmployeeCount,
		AnnualRevenue: request.AnnualRevenue,
		Address:       request.Address,
		BrokerId:      brokerId,
		Status:        request.Status,
		Tags:          request.Tags,
		Notes:         request.Notes,
		RiskAssessment: model.RiskAssessment{
			Level:       model.RiskMedium,
			Score:       50,
			Factors:     []string{},
			LastUpdated: now,
			AIInsights: model.AIInsights{
				Summary:         "Initial assessment pending",
				Confidence:      0,
				KeyFactors:      []string{},
				Recommendations: []string{},
				GeneratedAt:     now,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if newClient.Status == "" {
		newClient.Status = model.StatusProspect
	}
	if newClient.Tags == nil {
		newClient.Tags = []string{}
	}

	if err := store.AddClient(newClient); err != nil {
		return nil, err
	}

	go cs.performRiskAssessment(newClient)

	return &newClient, nil
}

// GetClient fetches a single client.
func (cs *ClientService) GetClient(clientId string) (*model.Client, error) {
	found, err := store.GetClient(clientId)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, clientNotFoundError(clientId)
	}
	return found, nil
}

// GetClients fetches a broker's book, or all clients when brokerId is empty.
func (cs *ClientService) GetClients(brokerId string) ([]model.Client, error) {

	return store.GetClients(brokerId)
}

// updatableClientFields lists the client fields a partial update may touch.
var updatableClientFields = map[string]bool{
	"first_name":     true,
	"last_name":      true,
	"email":          true,
	"phone":          true,
	"business_name":  true,
	"industry":       true,
	"employee_count": true,
	"annual_revenue": true,
	"address":        true,
	"status":         true,
	"tags":           true,
	"notes":          true,
}

// UpdateClient applies a partial update and re-runs the risk assessment
// when business details changed.
func (cs *ClientService) UpdateClient(clientId string, updates map[string]interface{}) (*model.Client, error) {
	for field := range updates {
		if !updatableClientFields[field] {
			return nil, errors2.NewClientError(errors2.ErrorMessage{
				Code:        errors2.FIELD_NOT_UPDATABLE.Code,
				Message:     errors2.FIELD_NOT_UPDATABLE.Message,
				Description: fmt.Sprintf("Field '%s' cannot be updated.", field),
			}, http.StatusBadRequest)
		}
	}

	existing, err := store.GetClient(clientId)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, clientNotFoundError(clientId)
	}

	if err := store.PatchClient(clientId, updates); err != nil {
		return nil, err
	}

	updated, err := store.GetClient(clientId)
	if err != nil {
		return nil, err
	}

	_, industryChanged := updates["industry"]
	_, revenueChanged := updates["annual_revenue"]
	_, headcountChanged := updates["employee_count"]
	if updated != nil && (industryChanged || revenueChanged || headcountChanged) {
		go cs.performRiskAssessment(*updated)
	}
	return updated, nil
}

// DeleteClient removes the client and every related record, leaving only
// the deletion log entry.
func (cs *ClientService) DeleteClient(clientId, brokerId string) error {
	existing, err := store.GetClient(clientId)
	if err != nil {
		return err
	}
	if existing == nil {
		return clientNotFoundError(clientId)
	}

	return store.DeleteClientCascade(clientId, brokerId)
}

// GetClientStats aggregates a broker's book in memory.
func (cs *ClientService) GetClientStats(brokerId string) (*model.ClientStats, error) {
	clients, err := store.GetClients(brokerId)
	if err != nil {
		return nil, err
	}

	stats := model.ClientStats{
		RiskDistribution:     map[string]int{},
		IndustryDistribution: map[string]int{},
	}
	thirtyDaysAgo := time.Now().UTC().AddDate(0, 0, -30)
	for _, c := range clients {
		stats.Total++
		switch c.Status {
		case model.StatusActive:
			stats.Active++
		case model.StatusProspect:
			stats.Prospects++
		case model.StatusInactive:
			stats.Inactive++
		}
		stats.RiskDistribution[c.RiskAssessment.Level]++
		industry := c.Industry
		if industry == "" {
			industry = "Other"
		}
		stats.IndustryDistribution[industry]++
		if c.CreatedAt.After(thirtyDaysAgo) {
			stats.RecentlyAdded++
		}
	}
	return &stats, nil
}

// performRiskAssessment asks the generated-text service for a risk profile
// and writes it back onto the client. Failures are logged and swallowed;
// the client keeps its previous assessment.
func (cs *ClientService) performRiskAssessment(c model.Client) {
	logger := log.GetLogger()

	prompt := riskAssessmentPrompt(c)
	response, err := cs.assistant.GenerateText(context.Background(), prompt, client.GenerateOptions{
		Temperature: 0.3,
		MaxTokens:   500,
	})
	if err != nil {
		logger.Error("Client risk assessment failed", log.Error(err),
			log.String("client_id", c.ClientId))
		return
	}

	assessment := model.RiskAssessment{
		Level:       riskLevelFromResponse(response),
		Score:       riskScoreFromLevel(riskLevelFromResponse(response)),
		Factors:     aiservice.ExtractRecommendations(response),
		LastUpdated: time.Now().UTC(),
		AIInsights: model.AIInsights{
			Summary:         response,
			Confidence:      0.8,
			KeyFactors:      []string{},
			Recommendations: aiservice.ExtractRecommendations(response),
			GeneratedAt:     time.Now().UTC(),
		},
	}

	if err := store.PatchClient(c.ClientId, map[string]interface{}{"risk_assessment": assessment}); err != nil {
		logger.Error("Failed to store client risk assessment", log.Error(err),
			log.String("client_id", c.ClientId))
	}
}

func riskAssessmentPrompt(c model.Client) string {
	return fmt.Sprintf("Assess the insurance risk of this client and state a risk level (LOW, MEDIUM, HIGH or VERY_HIGH) with key factors and recommendations:\n\nName: %s %s\nIndustry: %s\nEmployees: %d\nAnnual revenue: %.2f\nNotes: %s",
		c.FirstName, c.LastName, c.Industry, c.EmployeeCount, c.AnnualRevenue, c.Notes)
}

// riskLevelFromResponse scans the response for the first stated risk level.
// "VERY HIGH" is accepted with either a space or an underscore so a response
// phrased in prose is not downgraded to HIGH.
func riskLevelFromResponse(response string) string {
	upper := strings.ToUpper(response)
	if strings.Contains(upper, model.RiskVeryHigh) ||
		strings.Contains(upper, strings.ReplaceAll(model.RiskVeryHigh, "_", " ")) {
		return model.RiskVeryHigh
	}
	for _, level := range []string{model.RiskHigh, model.RiskLow} {
		if strings.Contains(upper, level) {
			return level
		}
	}
	return model.RiskMedium
}

func riskScoreFromLevel(level string) int {
	switch level {
	case model.RiskLow:
		return 25
	case model.RiskHigh:
		return 75
	case model.RiskVeryHigh:
		return 90
	default:
		return 50
	}
}

func clientNotFoundError(clientId string) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.CLIENT_NOT_FOUND.Code,
		Message:     errors2.CLIENT_NOT_FOUND.Message,
		Description: fmt.Sprintf("No client exists with id %s.", clientId),
	}, http.StatusNotFound)
}
