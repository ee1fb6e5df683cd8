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
	"math/rand"
	"time"

	"github.com/google/uuid"

	aimodel "github.com/coverlane/brokerage-automation-service/internal/ai/model"
	aiservice "github.com/coverlane/brokerage-automation-service/internal/ai/service"
	"github.com/coverlane/brokerage-automation-service/internal/automation/model"
	docmodel "github.com/coverlane/brokerage-automation-service/internal/documents/model"
	notifmodel "github.com/coverlane/brokerage-automation-service/internal/notifications/model"
	"github.com/coverlane/brokerage-automation-service/internal/system/client"
	"github.com/coverlane/brokerage-automation-service/internal/system/constants"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
	"github.com/coverlane/brokerage-automation-service/internal/system/metrics"
	taskmodel "github.com/coverlane/brokerage-automation-service/internal/tasks/model"
)

const documentBaseURL = "https://docs.coverlane.io"

// ActionExecutor dispatches automation actions against the record sink and
// the generated-text assistant.
type ActionExecutor struct {
	sink      RecordSink
	assistant aiservice.AssistantServiceInterface
}

// NewActionExecutor creates an executor over the given collaborators.
func NewActionExecutor(sink RecordSink, assistant aiservice.AssistantServiceInterface) *ActionExecutor {
	return &ActionExecutor{sink: sink, assistant: assistant}
}

// ExecuteAction runs a single action. Unknown action types are logged and
// skipped without failing the rule.
func (ae *ActionExecutor) ExecuteAction(action model.AutomationAction, event model.WorkflowEventInput,
	rule model.AutomationRule) error {

	var err error
	switch action.Type {
	case model.ActionSendEmail:
		err = ae.sendEmail(action.Parameters, event)
	case model.ActionCreateTask:
		err = ae.createTask(action.Parameters, event)
	case model.ActionUpdateStatus:
		err = ae.updateStatus(action.Parameters, event)
	case model.ActionGenerateDocument:
		err = ae.generateDocument(action.Parameters, event)
	case model.ActionAIReview:
		err = ae.performAIReview(action.Parameters, event)
	case model.ActionNotifyBroker:
		err = ae.notifyBroker(action.Parameters, event)
	default:
		log.GetLogger().Warn("Unknown automation action type, skipping",
			log.String("action_type", action.Type), log.String("rule_id", rule.RuleId))
	}

	status := "success"
	if err != nil {
		status = "failure"
	}
	metrics.ActionsExecuted.WithLabelValues(action.Type, status).Inc()
	return err
}

func (ae *ActionExecutor) sendEmail(parameters map[string]interface{}, event model.WorkflowEventInput) error {
	entry := notifmodel.EmailLog{
		EmailLogId: uuid.New().String(),
		Type:       "automated",
		Recipient:  stringParam(parameters, "recipient"),
		Subject:    stringParam(parameters, "subject"),
		Template:   stringParam(parameters, "template"),
		EntityId:   event.EntityId,
		EntityType: event.EntityType,
		SentAt:     time.Now().UTC(),
		Status:     "sent",
	}
	if err := ae.sink.AddEmailLog(entry); err != nil {
		return err
	}

	log.GetLogger().Info("Recorded automated email",
		log.String("recipient", entry.Recipient), log.String("subject", entry.Subject))
	return nil
}

func (ae *ActionExecutor) createTask(parameters map[string]interface{}, event model.WorkflowEventInput) error {
	now := time.Now().UTC()
	task := taskmodel.Task{
		TaskId:      uuid.New().String(),
		Title:       stringParam(parameters, "title"),
		Description: stringParam(parameters, "description"),
		Priority:    stringParam(parameters, "priority"),
		AssigneeId:  stringParam(parameters, "assigneeId"),
		EntityId:    event.EntityId,
		EntityType:  event.EntityType,
		Status:      taskmodel.StatusPending,
		Automated:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if task.Title == "" {
		task.Title = fmt.Sprintf("Automated task for %s %s", event.EntityType, event.EntityId)
	}
	if task.Description == "" {
		task.Description = "Task created by automation"
	}
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}
	if due, ok := toDate(parameters["dueDate"]); ok {
		task.DueDate = &due
	}

	if err := ae.sink.AddTask(task); err != nil {
		return err
	}

	log.GetLogger().Info("Created automated task", log.String("title", task.Title))
	return nil
}

func (ae *ActionExecutor) updateStatus(parameters map[string]interface{}, event model.WorkflowEventInput) error {
	collection := stringParam(parameters, "collection")
	field := stringParam(parameters, "field")
	value, hasValue := parameters["value"]

	if collection == "" || field == "" || !hasValue {
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_ACTION.Code,
			Message:     errors2.EXECUTE_ACTION.Message,
			Description: "update_status action requires collection, field and value parameters",
		}, nil)
	}
	if !constants.IsPatchableCollection(collection) {
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_ACTION.Code,
			Message:     errors2.EXECUTE_ACTION.Message,
			Description: fmt.Sprintf("collection %s is not patchable by automation", collection),
		}, nil)
	}

	return ae.sink.PatchEntityField(collection, event.EntityId, field, value)
}

func (ae *ActionExecutor) generateDocument(parameters map[string]interface{}, event model.WorkflowEventInput) error {
	template := stringParam(parameters, "template")
	document := docmodel.Document{
		DocumentId:  uuid.New().String(),
		EntityId:    event.EntityId,
		EntityType:  event.EntityType,
		Template:    template,
		Name:        stringParam(parameters, "name"),
		Type:        stringParam(parameters, "documentType"),
		Status:      "generated",
		URL:         fmt.Sprintf("%s/%s/%s.pdf", documentBaseURL, event.EntityId, template),
		GeneratedAt: time.Now().UTC(),
		Automated:   true,
	}
	if document.Name == "" {
		document.Name = "Automated Document"
	}
	if document.Type == "" {
		document.Type = "generated"
	}

	if err := ae.sink.AddDocument(document); err != nil {
		return err
	}

	log.GetLogger().Info("Generated document record",
		log.String("template", template), log.String("entity_id", event.EntityId))
	return nil
}

// performAIReview degrades gracefully: a generated-text failure is logged
// and swallowed, never failing the rule.
func (ae *ActionExecutor) performAIReview(parameters map[string]interface{}, event model.WorkflowEventInput) error {
	logger := log.GetLogger()

	prompt := stringParam(parameters, "prompt")
	if prompt == "" {
		prompt = aiservice.DefaultReviewPrompt(event.EntityType, event.Data)
	}

	response, err := ae.assistant.GenerateText(context.Background(), prompt, client.GenerateOptions{
		Temperature: 0.3,
		MaxTokens:   500,
	})
	if err != nil {
		logger.Error("Generated-text review failed", log.Error(err))
		return nil
	}

	review := aimodel.AIReview{
		ReviewId:        uuid.New().String(),
		EntityId:        event.EntityId,
		EntityType:      event.EntityType,
		Prompt:          prompt,
		Response:        response,
		Confidence:      0.7 + rand.Float64()*0.3,
		Recommendations: aiservice.ExtractRecommendations(response),
		ReviewedAt:      time.Now().UTC(),
		Automated:       true,
	}
	if err := ae.sink.AddAIReview(review); err != nil {
		logger.Error("Failed to store AI review", log.Error(err))
		return nil
	}

	logger.Info("Completed AI review",
		log.String("entity_type", event.EntityType), log.String("entity_id", event.EntityId))
	return nil
}

func (ae *ActionExecutor) notifyBroker(parameters map[string]interface{}, event model.WorkflowEventInput) error {
	notification := notifmodel.Notification{
		NotificationId: uuid.New().String(),
		Type:           notifmodel.NotificationTypeAutomationAlert,
		Title:          stringParam(parameters, "title"),
		Message:        stringParam(parameters, "message"),
		Priority:       stringParam(parameters, "priority"),
		EntityId:       event.EntityId,
		EntityType:     event.EntityType,
		BrokerId:       stringParam(parameters, "brokerId"),
		Read:           false,
		CreatedAt:      time.Now().UTC(),
	}
	if notification.Title == "" {
		notification.Title = "Automation Alert"
	}
	if notification.Message == "" {
		notification.Message = fmt.Sprintf("Automated action triggered for %s", event.EntityType)
	}
	if notification.Priority == "" {
		notification.Priority = model.PriorityMedium
	}

	if err := ae.sink.AddNotification(notification); err != nil {
		return err
	}

	log.GetLogger().Info("Sent broker notification", log.String("title", notification.Title))
	return nil
}

func stringParam(parameters map[string]interface{}, key string) string {
	value, _ := parameters[key].(string)
	return value
}
