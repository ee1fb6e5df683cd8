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

	"github.com/coverlane/brokerage-automation-service/internal/automation/model"
	"github.com/coverlane/brokerage-automation-service/internal/system/constants"
	"github.com/coverlane/brokerage-automation-service/internal/system/database/provider"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
)

const storeTimeout = 5 * time.Second

func rulesCollection() *mongo.Collection {
	return provider.GetDatabase().Collection(constants.AutomationRuleCollection)
}

// AddAutomationRule persists a new automation rule.
func AddAutomationRule(rule model.AutomationRule) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	if _, err := rulesCollection().InsertOne(ctx, rule); err != nil {
		errorMsg := fmt.Sprintf("Failed to insert automation rule: %s", rule.Name)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_AUTOMATION_RULE.Code,
			Message:     errors2.ADD_AUTOMATION_RULE.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info("Automation rule added successfully: " + rule.RuleId)
	return nil
}

// GetAutomationRules fetches all automation rules, soft-deleted ones included.
func GetAutomationRules() ([]model.AutomationRule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	cursor, err := rulesCollection().Find(ctx, bson.M{})
	if err != nil {
		errorMsg := "Failed to fetch automation rules"
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_AUTOMATION_RULE.Code,
			Message:     errors2.GET_AUTOMATION_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	defer cursor.Close(ctx)

	var rules []model.AutomationRule
	if err := cursor.All(ctx, &rules); err != nil {
		errorMsg := "Failed to decode automation rules"
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_AUTOMATION_RULE.Code,
			Message:     errors2.GET_AUTOMATION_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	return rules, nil
}

// GetEnabledRules fetches all rules with enabled set true, in store return
// order. The orchestrator does no further ordering.
func GetEnabledRules() ([]model.AutomationRule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	cursor, err := rulesCollection().Find(ctx, bson.M{"enabled": true})
	if err != nil {
		errorMsg := "Failed to fetch enabled automation rules"
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_AUTOMATION_RULE.Code,
			Message:     errors2.GET_AUTOMATION_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	defer cursor.Close(ctx)

	var rules []model.AutomationRule
	if err := cursor.All(ctx, &rules); err != nil {
		errorMsg := "Failed to decode enabled automation rules"
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_AUTOMATION_RULE.Code,
			Message:     errors2.GET_AUTOMATION_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	return rules, nil
}

// GetAutomationRule fetches a single rule by its id. Returns nil when no
// rule exists for the id.
func GetAutomationRule(ruleId string) (*model.AutomationRule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	var rule model.AutomationRule
	err := rulesCollection().FindOne(ctx, bson.M{"_id": ruleId}).Decode(&rule)
	if err == mongo.ErrNoDocuments {
		logger.Debug("No automation rule found for rule_id: " + ruleId)
		return nil, nil
	}
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch automation rule with rule_id: %s", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_AUTOMATION_RULE.Code,
			Message:     errors2.GET_AUTOMATION_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	return &rule, nil
}

// PatchAutomationRule applies partial updates to a rule and stamps updated_at.
func PatchAutomationRule(ruleId string, updates map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	set := bson.M{}
	for key, value := range updates {
		set[key] = value
	}
	set["updated_at"] = time.Now().UTC()

	_, err := rulesCollection().UpdateOne(ctx, bson.M{"_id": ruleId}, bson.M{"$set": set})
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to update automation rule with rule_id: %s", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_AUTOMATION_RULE.Code,
			Message:     errors2.UPDATE_AUTOMATION_RULE.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info("Successfully updated automation rule with rule_id: " + ruleId)
	return nil
}

// SoftDeleteAutomationRule disables a rule and stamps deleted_at. Rules are
// never physically removed.
func SoftDeleteAutomationRule(ruleId string) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	update := bson.M{"$set": bson.M{
		"enabled":    false,
		"deleted_at": time.Now().UTC(),
	}}
	_, err := rulesCollection().UpdateOne(ctx, bson.M{"_id": ruleId}, update)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to delete automation rule with rule_id: %s", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_AUTOMATION_RULE.Code,
			Message:     errors2.DELETE_AUTOMATION_RULE.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info("Successfully deleted automation rule with rule_id: " + ruleId)
	return nil
}

// RecordTrigger stamps last_triggered and writes the rule's trigger count as
// the caller-observed count plus one. The write is a plain set, not an atomic
// increment, so concurrent executions can lose an update. The counter is a
// soft analytics figure.
func RecordTrigger(rule model.AutomationRule) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	update := bson.M{"$set": bson.M{
		"last_triggered": time.Now().UTC(),
		"trigger_count":  rule.TriggerCount + 1,
	}}
	_, err := rulesCollection().UpdateOne(ctx, bson.M{"_id": rule.RuleId}, update)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to record trigger for rule_id: %s", rule.RuleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_AUTOMATION_RULE.Code,
			Message:     errors2.UPDATE_AUTOMATION_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	return nil
}
