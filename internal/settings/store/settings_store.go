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

	"github.com/coverlane/brokerage-automation-service/internal/settings/model"
	"github.com/coverlane/brokerage-automation-service/internal/system/constants"
	"github.com/coverlane/brokerage-automation-service/internal/system/database/provider"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
)

const storeTimeout = 5 * time.Second

func settingsCollection() *mongo.Collection {
	return provider.GetDatabase().Collection(constants.SystemSettingsCollection)
}

type currencyDocument struct {
	Id                  string           `bson:"_id"`
	DefaultCurrency     string           `bson:"default_currency"`
	CurrencySymbol      string           `bson:"currency_symbol"`
	CurrencyPosition    string           `bson:"currency_position"`
	DecimalPlaces       int              `bson:"decimal_places"`
	ThousandSeparator   string           `bson:"thousand_separator"`
	DecimalSeparator    string           `bson:"decimal_separator"`
	SupportedCurrencies []model.Currency `bson:"supported_currencies"`
	UpdatedAt           time.Time        `bson:"updated_at"`
}

// GetCurrencySettings fetches the stored currency settings. Returns nil when
// none have been stored yet.
func GetCurrencySettings() (*model.CurrencySettings, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	var doc currencyDocument
	err := settingsCollection().FindOne(ctx, bson.M{"_id": constants.CurrencySettingsKey}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		errorMsg := "Failed to fetch the currency settings"
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_SETTINGS.Code,
			Message:     errors2.GET_SETTINGS.Message,
			Description: errorMsg,
		}, err)
	}

	return &model.CurrencySettings{
		DefaultCurrency:     doc.DefaultCurrency,
		CurrencySymbol:      doc.CurrencySymbol,
		CurrencyPosition:    doc.CurrencyPosition,
		DecimalPlaces:       doc.DecimalPlaces,
		ThousandSeparator:   doc.ThousandSeparator,
		DecimalSeparator:    doc.DecimalSeparator,
		SupportedCurrencies: doc.SupportedCurrencies,
	}, nil
}

// UpsertCurrencySettings replaces the stored currency settings.
func UpsertCurrencySettings(settings model.CurrencySettings) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	update := bson.M{"$set": bson.M{
		"default_currency":     settings.DefaultCurrency,
		"currency_symbol":      settings.CurrencySymbol,
		"currency_position":    settings.CurrencyPosition,
		"decimal_places":       settings.DecimalPlaces,
		"thousand_separator":   settings.ThousandSeparator,
		"decimal_separator":    settings.DecimalSeparator,
		"supported_currencies": settings.SupportedCurrencies,
		"updated_at":           time.Now().UTC(),
	}}
	opts := options.Update().SetUpsert(true)
	_, err := settingsCollection().UpdateOne(ctx, bson.M{"_id": constants.CurrencySettingsKey}, update, opts)
	if err != nil {
		errorMsg := "Failed to store the currency settings"
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_SETTINGS.Code,
			Message:     errors2.UPDATE_SETTINGS.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info("Currency settings updated")
	return nil
}
