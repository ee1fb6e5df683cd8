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

	"github.com/coverlane/brokerage-automation-service/internal/documents/model"
	"github.com/coverlane/brokerage-automation-service/internal/system/constants"
	"github.com/coverlane/brokerage-automation-service/internal/system/database/provider"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
)

const storeTimeout = 5 * time.Second

func documentsCollection() *mongo.Collection {
	return provider.GetDatabase().Collection(constants.DocumentCollection)
}

// AddDocument persists a generated-document record.
func AddDocument(document model.Document) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	if _, err := documentsCollection().InsertOne(ctx, document); err != nil {
		errorMsg := fmt.Sprintf("Failed to insert document record: %s", document.Name)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_DOCUMENT.Code,
			Message:     errors2.ADD_DOCUMENT.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info("Document record added successfully: " + document.DocumentId)
	return nil
}

// GetDocumentsForEntity fetches document records attached to a domain entity.
func GetDocumentsForEntity(entityType, entityId string) ([]model.Document, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	filter := bson.M{"entity_type": entityType, "entity_id": entityId}
	cursor, err := documentsCollection().Find(ctx, filter)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch documents for entity: %s/%s", entityType, entityId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_DOCUMENT.Code,
			Message:     errors2.ADD_DOCUMENT.Message,
			Description: errorMsg,
		}, err)
	}
	defer cursor.Close(ctx)

	var documents []model.Document
	if err := cursor.All(ctx, &documents); err != nil {
		errorMsg := "Failed to decode document records"
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_DOCUMENT.Code,
			Message:     errors2.ADD_DOCUMENT.Message,
			Description: errorMsg,
		}, err)
	}
	return documents, nil
}
