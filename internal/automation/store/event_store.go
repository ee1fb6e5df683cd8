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

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/coverlane/brokerage-automation-service/internal/automation/model"
	"github.com/coverlane/brokerage-automation-service/internal/system/constants"
	"github.com/coverlane/brokerage-automation-service/internal/system/database/provider"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
)

func eventsCollection() *mongo.Collection {
	return provider.GetDatabase().Collection(constants.AutomationEventCollection)
}

// InsertEvent persists an incoming event with processed set false and
// returns the assigned event id.
func InsertEvent(input model.WorkflowEventInput) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	event := model.WorkflowEvent{
		EventId:    uuid.New().String(),
		Type:       input.Type,
		EntityId:   input.EntityId,
		EntityType: input.EntityType,
		Data:       input.Data,
		Timestamp:  input.Timestamp,
		Processed:  false,
		CreatedAt:  time.Now().UTC(),
	}

	if _, err := eventsCollection().InsertOne(ctx, event); err != nil {
		errorMsg := fmt.Sprintf("Failed to insert workflow event of type: %s", input.Type)
		logger.Debug(errorMsg, log.Error(err))
		return "", errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_WORKFLOW_EVENT.Code,
			Message:     errors2.ADD_WORKFLOW_EVENT.Message,
			Description: errorMsg,
		}, err)
	}
	return event.EventId, nil
}

// FinalizeEvent writes the result list onto a persisted event and flips
// processed to true. This is the only post-creation write an event receives.
func FinalizeEvent(eventId string, results []model.AutomationResult) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	update := bson.M{
		"$set": bson.M{
			"processed":          true,
			"automation_results": results,
		},
		"$currentDate": bson.M{"processed_at": true},
	}
	_, err := eventsCollection().UpdateOne(ctx, bson.M{"_id": eventId}, update)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to finalize workflow event with event_id: %s", eventId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FINALIZE_WORKFLOW_EVENT.Code,
			Message:     errors2.FINALIZE_WORKFLOW_EVENT.Message,
			Description: errorMsg,
		}, err)
	}
	return nil
}

// GetEvent fetches a persisted event by its id. Returns nil when no event
// exists for the id.
func GetEvent(eventId string) (*model.WorkflowEvent, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	var event model.WorkflowEvent
	err := eventsCollection().FindOne(ctx, bson.M{"_id": eventId}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch workflow event with event_id: %s", eventId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_WORKFLOW_EVENT.Code,
			Message:     errors2.ADD_WORKFLOW_EVENT.Message,
			Description: errorMsg,
		}, err)
	}
	return &event, nil
}
