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

	"github.com/coverlane/brokerage-automation-service/internal/system/database/provider"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
)

// PatchEntityField sets one named field on a document in an arbitrary
// collection, stamping updated_at and marking the write as automated. Used
// by the generic status-mutation action.
func PatchEntityField(collection, entityId, field string, value interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	logger := log.GetLogger()
	update := bson.M{"$set": bson.M{
		field:              value,
		"updated_at":       time.Now().UTC(),
		"automated_update": true,
	}}
	coll := provider.GetDatabase().Collection(collection)
	if _, err := coll.UpdateOne(ctx, bson.M{"_id": entityId}, update); err != nil {
		errorMsg := fmt.Sprintf("Failed to patch %s/%s field %s", collection, entityId, field)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.PATCH_ENTITY.Code,
			Message:     errors2.PATCH_ENTITY.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info(fmt.Sprintf("Patched %s/%s field %s", collection, entityId, field))
	return nil
}
