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

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/coverlane/brokerage-automation-service/internal/system/constants"
	"github.com/coverlane/brokerage-automation-service/internal/system/database/provider"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
	"github.com/coverlane/brokerage-automation-service/internal/tasks/model"
)

const storeTimeout = 5 * time.Second

func tasksCollection() *mongo.Collection {
	return provider.GetDatabase().Collection(constants.TaskCollection)
}

// AddTask persists a new task.
func AddTask(task model.Task) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	if _, err := tasksCollection().InsertOne(ctx, task); err != nil {
		errorMsg := fmt.Sprintf("Failed to insert task: %s", task.Title)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_TASK.Code,
			Message:     errors2.ADD_TASK.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info("Task added successfully: " + task.TaskId)
	return nil
}

// GetTasksForAssignee fetches all tasks assigned to a broker.
func GetTasksForAssignee(assigneeId string) ([]model.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	cursor, err := tasksCollection().Find(ctx, bson.M{"assignee_id": assigneeId})
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch tasks for assignee: %s", assigneeId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_TASK.Code,
			Message:     errors2.GET_TASK.Message,
			Description: errorMsg,
		}, err)
	}
	defer cursor.Close(ctx)

	var tasks []model.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		errorMsg := "Failed to decode tasks"
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_TASK.Code,
			Message:     errors2.GET_TASK.Message,
			Description: errorMsg,
		}, err)
	}
	return tasks, nil
}

// GetTasksForEntity fetches all tasks attached to a domain entity.
func GetTasksForEntity(entityType, entityId string) ([]model.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	filter := bson.M{"entity_type": entityType, "entity_id": entityId}
	cursor, err := tasksCollection().Find(ctx, filter)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch tasks for entity: %s/%s", entityType, entityId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_TASK.Code,
			Message:     errors2.GET_TASK.Message,
			Description: errorMsg,
		}, err)
	}
	defer cursor.Close(ctx)

	var tasks []model.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		errorMsg := "Failed to decode tasks"
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_TASK.Code,
			Message:     errors2.GET_TASK.Message,
			Description: errorMsg,
		}, err)
	}
	return tasks, nil
}
