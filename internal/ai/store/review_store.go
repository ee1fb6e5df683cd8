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

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/coverlane/brokerage-automation-service/internal/ai/model"
	"github.com/coverlane/brokerage-automation-service/internal/system/constants"
	"github.com/coverlane/brokerage-automation-service/internal/system/database/provider"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
)

const storeTimeout = 5 * time.Second

func reviewsCollection() *mongo.Collection {
	return provider.GetDatabase().Collection(constants.AIReviewCollection)
}

// AddAIReview persists a completed review record.
func AddAIReview(review model.AIReview) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	if _, err := reviewsCollection().InsertOne(ctx, review); err != nil {
		errorMsg := fmt.Sprintf("Failed to insert AI review for entity: %s", review.EntityId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_AI_REVIEW.Code,
			Message:     errors2.ADD_AI_REVIEW.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info("AI review added successfully for entity: " + review.EntityId)
	return nil
}
