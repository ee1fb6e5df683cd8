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

	"github.com/coverlane/brokerage-automation-service/internal/policies/model"
	"github.com/coverlane/brokerage-automation-service/internal/system/constants"
	"github.com/coverlane/brokerage-automation-service/internal/system/database/provider"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
)

const storeTimeout = 5 * time.Second

func policiesCollection() *mongo.Collection {
	return provider.GetDatabase().Collection(constants.PolicyCollection)
}

// AddPolicy persists a new policy.
func AddPolicy(policy model.Policy) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	if _, err := policiesCollection().InsertOne(ctx, policy); err != nil {
		errorMsg := fmt.Sprintf("Failed to insert policy: %s", policy.PolicyNumber)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_POLICY.Code,
			Message:     errors2.ADD_POLICY.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info("Policy added successfully: " + policy.PolicyId)
	return nil
}

// GetPolicy fetches a policy by its id. Returns nil when no policy exists.
func GetPolicy(policyId string) (*model.Policy, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	var policy model.Policy
	err := policiesCollection().FindOne(ctx, bson.M{"_id": policyId}).Decode(&policy)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch policy with policy_id: %s", policyId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_POLICY.Code,
			Message:     errors2.GET_POLICY.Message,
			Description: errorMsg,
		}, err)
	}
	return &policy, nil
}

// GetActivePolicies fetches every active policy.
func GetActivePolicies() ([]model.Policy, error) {

	return findPolicies(bson.M{"status": model.StatusActive})
}

// GetActivePoliciesWithPaymentIssues fetches active policies whose payment
// status is anything but current.
func GetActivePoliciesWithPaymentIssues() ([]model.Policy, error) {

	return findPolicies(bson.M{
		"status":         model.StatusActive,
		"payment_status": bson.M{"$ne": model.PaymentStatusCurrent},
	})
}

// GetPoliciesForClient fetches all policies of one client.
func GetPoliciesForClient(clientId string) ([]model.Policy, error) {

	return findPolicies(bson.M{"client_id": clientId})
}

func findPolicies(filter bson.M) ([]model.Policy, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	cursor, err := policiesCollection().Find(ctx, filter)
	if err != nil {
		errorMsg := "Failed to fetch policies"
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_POLICY.Code,
			Message:     errors2.GET_POLICY.Message,
			Description: errorMsg,
		}, err)
	}
	defer cursor.Close(ctx)

	var policies []model.Policy
	if err := cursor.All(ctx, &policies); err != nil {
		errorMsg := "Failed to decode policies"
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_POLICY.Code,
			Message:     errors2.GET_POLICY.Message,
			Description: errorMsg,
		}, err)
	}
	return policies, nil
}
