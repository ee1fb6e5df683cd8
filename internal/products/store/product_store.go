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
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coverlane/brokerage-automation-service/internal/products/model"
	"github.com/coverlane/brokerage-automation-service/internal/system/constants"
	"github.com/coverlane/brokerage-automation-service/internal/system/database/provider"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
)

const storeTimeout = 5 * time.Second

func settingsCollection() *mongo.Collection {
	return provider.GetDatabase().Collection(constants.SystemSettingsCollection)
}

type catalogDocument struct {
	Id           string              `bson:"_id"`
	ProductTypes []model.ProductType `bson:"product_types"`
	Categories   []model.Category    `bson:"categories"`
	UpdatedAt    time.Time           `bson:"updated_at"`
}

// GetProductCatalog fetches the stored catalog. Returns nil when none has
// been stored yet.
func GetProductCatalog() (*model.ProductCatalog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	var doc catalogDocument
	err := settingsCollection().FindOne(ctx, bson.M{"_id": constants.ProductCatalogKey}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		errorMsg := "Failed to fetch the product catalog"
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_SETTINGS.Code,
			Message:     errors2.GET_SETTINGS.Message,
			Description: errorMsg,
		}, err)
	}
	return &model.ProductCatalog{ProductTypes: doc.ProductTypes, Categories: doc.Categories}, nil
}

// UpsertProductCatalog replaces the stored catalog.
func UpsertProductCatalog(catalog model.ProductCatalog) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	update := bson.M{"$set": bson.M{
		"product_types": catalog.ProductTypes,
		"categories":    catalog.Categories,
		"updated_at":    time.Now().UTC(),
	}}
	opts := options.Update().SetUpsert(true)
	_, err := settingsCollection().UpdateOne(ctx, bson.M{"_id": constants.ProductCatalogKey}, update, opts)
	if err != nil {
		errorMsg := "Failed to store the product catalog"
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_SETTINGS.Code,
			Message:     errors2.UPDATE_SETTINGS.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info("Product catalog updated")
	return nil
}
