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

	"github.com/coverlane/brokerage-automation-service/internal/claims/model"
	"github.com/coverlane/brokerage-automation-service/internal/system/constants"
	"github.com/coverlane/brokerage-automation-service/internal/system/database/provider"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
)

const storeTimeout = 5 * time.Second

func claimsCollection() *mongo.Collection {
	return provider.GetDatabase().Collection(constants.ClaimCollection)
}

// AddClaim persists a new claim.
func AddClaim(claim model.Claim) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	if _, err := claimsCollection().InsertOne(ctx, claim); err != nil {
		errorMsg := fmt.Sprintf("Failed to insert claim: %s", claim.ClaimNumber)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_CLAIM.Code,
			Message:     errors2.ADD_CLAIM.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info("Claim added successfully: " + claim.ClaimId)
	return nil
}

// GetClaim fetches a claim by its id. Returns nil when no claim exists.
func GetClaim(claimId string) (*model.Claim, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	var claim model.Claim
	err := claimsCollection().FindOne(ctx, bson.M{"_id": claimId}).Decode(&claim)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch claim with claim_id: %s", claimId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_CLAIM.Code,
			Message:     errors2.GET_CLAIM.Message,
			Description: errorMsg,
		}, err)
	}
	return &claim, nil
}

// GetClaimsByStatus fetches all claims in a given status.
func GetClaimsByStatus(status string) ([]model.Claim, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	cursor, err := claimsCollection().Find(ctx, bson.M{"status": status})
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch claims with status: %s", status)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_CLAIM.Code,
			Message:     errors2.GET_CLAIM.Message,
			Description: errorMsg,
		}, err)
	}
	defer cursor.Close(ctx)

	var claims []model.Claim
	if err := cursor.All(ctx, &claims); err != nil {
		errorMsg := "Failed to decode claims"
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_CLAIM.Code,
			Message:     errors2.GET_CLAIM.Message,
			Description: errorMsg,
		}, err)
	}
	return claims, nil
}

// AcknowledgeClaim transitions a claim to acknowledged and stamps the
// workflow acknowledgment and investigation steps.
func AcknowledgeClaim(claimId string) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	now := time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"status":                         model.StatusAcknowledged,
		"workflow.acknowledgment.date":   now,
		"workflow.acknowledgment.status": model.StepCompleted,
		"workflow.investigation.status":  model.StepInProgress,
		"updated_at":                     now,
	}}
	_, err := claimsCollection().UpdateOne(ctx, bson.M{"_id": claimId}, update)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to acknowledge claim with claim_id: %s", claimId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_CLAIM.Code,
			Message:     errors2.UPDATE_CLAIM.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info("Acknowledged claim: " + claimId)
	return nil
}
