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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aimodel "github.com/coverlane/brokerage-automation-service/internal/ai/model"
	"github.com/coverlane/brokerage-automation-service/internal/automation/model"
	docmodel "github.com/coverlane/brokerage-automation-service/internal/documents/model"
	notifmodel "github.com/coverlane/brokerage-automation-service/internal/notifications/model"
	"github.com/coverlane/brokerage-automation-service/internal/system/client"
	taskmodel "github.com/coverlane/brokerage-automation-service/internal/tasks/model"
)

type fakeSink struct {
	emails        []notifmodel.EmailLog
	tasks         []taskmodel.Task
	documents     []docmodel.Document
	reviews       []aimodel.AIReview
	notifications []notifmodel.Notification

	patchedCollection string
	patchedEntityId   string
	patchedField      string
	patchedValue      interface{}
}

func (f *fakeSink) AddEmailLog(entry notifmodel.EmailLog) error {
	f.emails = append(f.emails, entry)
	return nil
}

func (f *fakeSink) AddTask(task taskmodel.Task) error {
	f.tasks = append(f.tasks, task)
	return nil
}

func (f *fakeSink) PatchEntityField(collection, entityId, field string, value interface{}) error {
	f.patchedCollection = collection
	f.patchedEntityId = entityId
	f.patchedField = field
	f.patchedValue = value
	return nil
}

func (f *fakeSink) AddDocument(document docmodel.Document) error {
	f.documents = append(f.documents, document)
	return nil
}

func (f *fakeSink) AddAIReview(review aimodel.AIReview) error {
	f.reviews = append(f.reviews, review)
	return nil
}

func (f *fakeSink) AddNotification(notification notifmodel.Notification) error {
	f.notifications = append(f.notifications, notification)
	return nil
}

type fakeAssistant struct {
	response string
	err      error
	prompt   string
}

func (f *fakeAssistant) GenerateText(ctx context.Context, prompt string, opts client.GenerateOptions) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func (f *fakeAssistant) ChatResponse(ctx context.Context, message, role string) string {
	return f.response
}

func executorEvent() model.WorkflowEventInput {
	return model.WorkflowEventInput{
		Type:       model.EventClaimUpdated,
		EntityId:   "claim-1",
		EntityType: model.EntityClaim,
		Data:       map[string]interface{}{"status": "submitted"},
	}
}

func TestSendEmailRecordsLog(t *testing.T) {
	sink := &fakeSink{}
	executor := NewActionExecutor(sink, &fakeAssistant{})

	err := executor.ExecuteAction(model.AutomationAction{
		Type: model.ActionSendEmail,
		Parameters: map[string]interface{}{
			"recipient": "broker@coverlane.io",
			"subject":   "Claim update",
			"template":  "claim_update",
		},
	}, executorEvent(), model.AutomationRule{})

	require.NoError(t, err)
	require.Len(t, sink.emails, 1)
	entry := sink.emails[0]
	assert.Equal(t, "automated", entry.Type)
	assert.Equal(t, "sent", entry.Status)
	assert.Equal(t, "broker@coverlane.io", entry.Recipient)
	assert.Equal(t, "claim-1", entry.EntityId)
	assert.Equal(t, model.EntityClaim, entry.EntityType)
}

func TestCreateTaskAppliesDefaults(t *testing.T) {
	sink := &fakeSink{}
	executor := NewActionExecutor(sink, &fakeAssistant{})

	err := executor.ExecuteAction(model.AutomationAction{
		Type:       model.ActionCreateTask,
		Parameters: map[string]interface{}{},
	}, executorEvent(), model.AutomationRule{})

	require.NoError(t, err)
	require.Len(t, sink.tasks, 1)
	task := sink.tasks[0]
	assert.Equal(t, "Automated task for claim claim-1", task.Title)
	assert.Equal(t, "Task created by automation", task.Description)
	assert.Equal(t, model.PriorityMedium, task.Priority)
	assert.Equal(t, taskmodel.StatusPending, task.Status)
	assert.True(t, task.Automated)
	assert.NotEmpty(t, task.TaskId)
}

func TestUpdateStatusRequiresParameters(t *testing.T) {
	sink := &fakeSink{}
	executor := NewActionExecutor(sink, &fakeAssistant{})

	err := executor.ExecuteAction(model.AutomationAction{
		Type:       model.ActionUpdateStatus,
		Parameters: map[string]interface{}{"collection": "claims"},
	}, executorEvent(), model.AutomationRule{})

	assert.Error(t, err)
	assert.Empty(t, sink.patchedCollection)
}

func TestUpdateStatusRejectsUnknownCollection(t *testing.T) {
	sink := &fakeSink{}
	executor := NewActionExecutor(sink, &fakeAssistant{})

	err := executor.ExecuteAction(model.AutomationAction{
		Type: model.ActionUpdateStatus,
		Parameters: map[string]interface{}{
			"collection": "system_settings",
			"field":      "status",
			"value":      "hijacked",
		},
	}, executorEvent(), model.AutomationRule{})

	assert.Error(t, err)
	assert.Empty(t, sink.patchedCollection)
}

func TestUpdateStatusPatchesEntity(t *testing.T) {
	sink := &fakeSink{}
	executor := NewActionExecutor(sink, &fakeAssistant{})

	err := executor.ExecuteAction(model.AutomationAction{
		Type: model.ActionUpdateStatus,
		Parameters: map[string]interface{}{
			"collection": "claims",
			"field":      "status",
			"value":      "investigating",
		},
	}, executorEvent(), model.AutomationRule{})

	require.NoError(t, err)
	assert.Equal(t, "claims", sink.patchedCollection)
	assert.Equal(t, "claim-1", sink.patchedEntityId)
	assert.Equal(t, "status", sink.patchedField)
	assert.Equal(t, "investigating", sink.patchedValue)
}

func TestGenerateDocumentBuildsURL(t *testing.T) {
	sink := &fakeSink{}
	executor := NewActionExecutor(sink, &fakeAssistant{})

	err := executor.ExecuteAction(model.AutomationAction{
		Type:       model.ActionGenerateDocument,
		Parameters: map[string]interface{}{"template": "acknowledgment_letter"},
	}, executorEvent(), model.AutomationRule{})

	require.NoError(t, err)
	require.Len(t, sink.documents, 1)
	document := sink.documents[0]
	assert.Equal(t, "https://docs.coverlane.io/claim-1/acknowledgment_letter.pdf", document.URL)
	assert.Equal(t, "Automated Document", document.Name)
	assert.Equal(t, "generated", document.Type)
	assert.True(t, document.Automated)
}

func TestAIReviewStoresRecommendations(t *testing.T) {
	sink := &fakeSink{}
	assistant := &fakeAssistant{response: "Assessment complete.\n- We recommend expedited review of this claim.\n- Request supporting documents."}
	executor := NewActionExecutor(sink, assistant)

	err := executor.ExecuteAction(model.AutomationAction{
		Type:       model.ActionAIReview,
		Parameters: map[string]interface{}{},
	}, executorEvent(), model.AutomationRule{})

	require.NoError(t, err)
	require.Len(t, sink.reviews, 1)
	review := sink.reviews[0]
	assert.Equal(t, assistant.response, review.Response)
	assert.GreaterOrEqual(t, review.Confidence, 0.7)
	assert.LessOrEqual(t, review.Confidence, 1.0)
	assert.NotEmpty(t, review.Recommendations)
	assert.Contains(t, assistant.prompt, "fraud indicators")
}

func TestAIReviewFailureDoesNotFailRule(t *testing.T) {
	sink := &fakeSink{}
	executor := NewActionExecutor(sink, &fakeAssistant{err: errors.New("remote unavailable")})

	err := executor.ExecuteAction(model.AutomationAction{
		Type:       model.ActionAIReview,
		Parameters: map[string]interface{}{},
	}, executorEvent(), model.AutomationRule{})

	assert.NoError(t, err)
	assert.Empty(t, sink.reviews)
}

func TestNotifyBrokerAppliesDefaults(t *testing.T) {
	sink := &fakeSink{}
	executor := NewActionExecutor(sink, &fakeAssistant{})

	err := executor.ExecuteAction(model.AutomationAction{
		Type:       model.ActionNotifyBroker,
		Parameters: map[string]interface{}{"brokerId": "broker-9"},
	}, executorEvent(), model.AutomationRule{})

	require.NoError(t, err)
	require.Len(t, sink.notifications, 1)
	notification := sink.notifications[0]
	assert.Equal(t, "Automation Alert", notification.Title)
	assert.Equal(t, "Automated action triggered for claim", notification.Message)
	assert.Equal(t, model.PriorityMedium, notification.Priority)
	assert.Equal(t, notifmodel.NotificationTypeAutomationAlert, notification.Type)
	assert.Equal(t, "broker-9", notification.BrokerId)
	assert.False(t, notification.Read)
}

func TestUnknownActionTypeIsSkipped(t *testing.T) {
	sink := &fakeSink{}
	executor := NewActionExecutor(sink, &fakeAssistant{})

	err := executor.ExecuteAction(model.AutomationAction{
		Type: "teleport_adjuster",
	}, executorEvent(), model.AutomationRule{RuleId: "r1"})

	assert.NoError(t, err)
}
