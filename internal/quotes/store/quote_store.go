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

	"github.com/coverlane/brokerage-automation-service/internal/quotes/model"
	"github.com/coverlane/brokerage-automation-service/internal/system/constants"
	"github.com/coverlane/brokerage-automation-service/internal/system/database/provider"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
)

const storeTimeout = 5 * time.Second

func quotesCollection() *mongo.Collection {
	return provider.GetDatabase().Collection(constants.QuoteCollection)
}

// AddQuote persists a new quote.
func AddQuote(quote model.Quote) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	if _, err := quotesCollection().InsertOne(ctx, quote); err != nil {
		errorMsg := fmt.Sprintf("Failed to insert quote for client: %s", quote.ClientId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_QUOTE.Code,
			Message:     errors2.ADD_QUOTE.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info("Quote added successfully: " + quote.QuoteId)
	return nil
}

// GetQuote fetches a quote by its id. Returns nil when no quote exists.
func GetQuote(quoteId string) (*model.Quote, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	var quote model.Quote
	err := quotesCollection().FindOne(ctx, bson.M{"_id": quoteId}).Decode(&quote)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch quote with quote_id: %s", quoteId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_QUOTE.Code,
			Message:     errors2.GET_QUOTE.Message,
			Description: errorMsg,
		}, err)
	}
	return &quote, nil
}

// GetQuotesForClient fetches all quotes of one client, newest first.
func GetQuotesForClient(clientId string) ([]model.Quote, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := quotesCollection().Find(ctx, bson.M{"client_id": clientId}, opts)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch quotes for client: %s", clientId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_QUOTE.Code,
			Message:     errors2.GET_QUOTE.Message,
			Description: errorMsg,
		}, err)
	}
	defer cursor.Close(ctx)

	var quotes []model.Quote
	if err := cursor.All(ctx, &quotes); err != nil {
		errorMsg := "Failed to decode quotes"
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_QUOTE.Code,
			Message:     errors2.GET_QUOTE.Message,
			Description: errorMsg,
		}, err)
	}
	return quotes, nil
}
