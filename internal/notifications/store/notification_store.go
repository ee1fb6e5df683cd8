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

	"github.com/coverlane/brokerage-automation-service/internal/notifications/model"
	"github.com/coverlane/brokerage-automation-service/internal/system/constants"
	"github.com/coverlane/brokerage-automation-service/internal/system/database/provider"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
)

const storeTimeout = 5 * time.Second

func notificationsCollection() *mongo.Collection {
	return provider.GetDatabase().Collection(constants.NotificationCollection)
}

// AddNotification persists a broker notification.
func AddNotification(notification model.Notification) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	if _, err := notificationsCollection().InsertOne(ctx, notification); err != nil {
		errorMsg := fmt.Sprintf("Failed to insert notification: %s", notification.Title)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_NOTIFICATION.Code,
			Message:     errors2.ADD_NOTIFICATION.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info("Notification added successfully: " + notification.NotificationId)
	return nil
}

// GetNotificationsForBroker fetches a broker's notifications, newest first.
func GetNotificationsForBroker(brokerId string) ([]model.Notification, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := notificationsCollection().Find(ctx, bson.M{"broker_id": brokerId}, opts)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch notifications for broker: %s", brokerId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_NOTIFICATION.Code,
			Message:     errors2.GET_NOTIFICATION.Message,
			Description: errorMsg,
		}, err)
	}
	defer cursor.Close(ctx)

	var notifications []model.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		errorMsg := "Failed to decode notifications"
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_NOTIFICATION.Code,
			Message:     errors2.GET_NOTIFICATION.Message,
			Description: errorMsg,
		}, err)
	}
	return notifications, nil
}

// MarkNotificationRead flips the read flag on a notification.
func MarkNotificationRead(notificationId string) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	update := bson.M{"$set": bson.M{"read": true}}
	_, err := notificationsCollection().UpdateOne(ctx, bson.M{"_id": notificationId}, update)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to mark notification read: %s", notificationId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_NOTIFICATION.Code,
			Message:     errors2.GET_NOTIFICATION.Message,
			Description: errorMsg,
		}, err)
	}
	return nil
}
