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
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coverlane/brokerage-automation-service/internal/clients/model"
	"github.com/coverlane/brokerage-automation-service/internal/system/constants"
	"github.com/coverlane/brokerage-automation-service/internal/system/database/provider"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
)

const storeTimeout = 5 * time.Second

func clientsCollection() *mongo.Collection {
	return provider.GetDatabase().Collection(constants.ClientCollection)
}

// AddClient persists a new client record.
func AddClient(client model.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	if _, err := clientsCollection().InsertOne(ctx, client); err != nil {
		errorMsg := fmt.Sprintf("Failed to insert client: %s", client.Email)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_CLIENT.Code,
			Message:     errors2.ADD_CLIENT.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info("Client added successfully: " + client.ClientId)
	return nil
}

// GetClient fetches a client by its id. Returns nil when no client exists.
func GetClient(clientId string) (*model.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	var client model.Client
	err := clientsCollection().FindOne(ctx, bson.M{"_id": clientId}).Decode(&client)
	if err == mongo.ErrNoDocuments {
		logger.Debug("No client found for client_id: " + clientId)
		return nil, nil
	}
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch client with client_id: %s", clientId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_CLIENT.Code,
			Message:     errors2.GET_CLIENT.Message,
			Description: errorMsg,
		}, err)
	}
	return &client, nil
}

// GetClients fetches clients ordered by last update. An empty brokerId
// returns all clients; otherwise only the broker's own book.
func GetClients(brokerId string) ([]model.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	filter := bson.M{}
	if brokerId != "" {
		filter["broker_id"] = brokerId
	}
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})

	cursor, err := clientsCollection().Find(ctx, filter, opts)
	if err != nil {
		errorMsg := "Failed to fetch clients"
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_CLIENT.Code,
			Message:     errors2.GET_CLIENT.Message,
			Description: errorMsg,
		}, err)
	}
	defer cursor.Close(ctx)

	var clients []model.Client
	if err := cursor.All(ctx, &clients); err != nil {
		errorMsg := "Failed to decode clients"
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_CLIENT.Code,
			Message:     errors2.GET_CLIENT.Message,
			Description: errorMsg,
		}, err)
	}
	return clients, nil
}

// PatchClient applies partial updates to a client and stamps updated_at.
func PatchClient(clientId string, updates map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	set := bson.M{}
	for key, value := range updates {
		set[key] = value
	}
	set["updated_at"] = time.Now().UTC()

	_, err := clientsCollection().UpdateOne(ctx, bson.M{"_id": clientId}, bson.M{"$set": set})
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to update client with client_id: %s", clientId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_CLIENT.Code,
			Message:     errors2.UPDATE_CLIENT.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info("Successfully updated client with client_id: " + clientId)
	return nil
}

// DeleteClientCascade removes a client together with its quotes, policies,
// tasks and documents, and appends a deletion log record. Privacy
// regulations require the cascade and the audit entry.
func DeleteClientCascade(clientId, deletedBy string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := log.GetLogger()
	db := provider.GetDatabase()

	related := []struct {
		collection string
		filter     bson.M
	}{
		{constants.ClientCollection, bson.M{"_id": clientId}},
		{constants.QuoteCollection, bson.M{"client_id": clientId}},
		{constants.PolicyCollection, bson.M{"client_id": clientId}},
		{constants.TaskCollection, bson.M{"entity_id": clientId, "entity_type": "customer"}},
		{constants.DocumentCollection, bson.M{"entity_id": clientId, "entity_type": "customer"}},
	}
	for _, target := range related {
		if _, err := db.Collection(target.collection).DeleteMany(ctx, target.filter); err != nil {
			errorMsg := fmt.Sprintf("Failed to delete %s records for client: %s", target.collection, clientId)
			logger.Debug(errorMsg, log.Error(err))
			return errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.DELETE_CLIENT.Code,
				Message:     errors2.DELETE_CLIENT.Message,
				Description: errorMsg,
			}, err)
		}
	}

	deletionLog := bson.M{
		"client_id":  clientId,
		"deleted_by": deletedBy,
		"deleted_at": time.Now().UTC(),
		"reason":     "user_request",
	}
	if _, err := db.Collection(constants.DeletionLogCollection).InsertOne(ctx, deletionLog); err != nil {
		errorMsg := fmt.Sprintf("Failed to record deletion log for client: %s", clientId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_CLIENT.Code,
			Message:     errors2.DELETE_CLIENT.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info("Deleted client and related records: " + clientId)
	return nil
}
