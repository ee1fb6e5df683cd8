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

package service

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coverlane/brokerage-automation-service/internal/automation/model"
	"github.com/coverlane/brokerage-automation-service/internal/system/constants"
	"github.com/coverlane/brokerage-automation-service/internal/system/database/provider"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
)

// Ingestor accepts workflow events without surfacing pipeline errors to the
// producer.
type Ingestor interface {
	Ingest(input model.WorkflowEventInput)
}

type watchedCollection struct {
	eventType  string
	entityType string
}

// watchedCollections maps each live-watched collection to the event it
// produces. Deletions are ignored; no deletion trigger type exists in the
// rule vocabulary.
var watchedCollections = map[string]watchedCollection{
	constants.ClientCollection: {eventType: model.EventCustomerUpdated, entityType: model.EntityCustomer},
	constants.QuoteCollection:  {eventType: model.EventQuoteUpdated, entityType: model.EntityQuote},
	constants.PolicyCollection: {eventType: model.EventPolicyUpdated, entityType: model.EntityPolicy},
	constants.ClaimCollection:  {eventType: model.EventClaimUpdated, entityType: model.EntityClaim},
}

// ChangeWatcher owns one change-stream subscription per watched collection
// and converts document changes into workflow events.
type ChangeWatcher struct {
	ingestor Ingestor

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
	wg      sync.WaitGroup
}

// NewChangeWatcher creates a watcher feeding the given ingestor.
func NewChangeWatcher(ingestor Ingestor) *ChangeWatcher {
	return &ChangeWatcher{
		ingestor: ingestor,
		cancels:  make(map[string]context.CancelFunc),
	}
}

// Start opens a change stream per watched collection. A collection whose
// stream cannot be opened is logged and skipped; the rest still run.
func (cw *ChangeWatcher) Start() {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	logger := log.GetLogger()
	for collection, target := range watchedCollections {
		if _, running := cw.cancels[collection]; running {
			continue
		}

		ctx, cancel := context.WithCancel(context.Background())
		stream, err := cw.openStream(ctx, collection)
		if err != nil {
			cancel()
			serverError := errors2.NewServerError(errors2.CHANGE_STREAM_OPEN, err)
			logger.Error("Failed to open change stream", log.Error(serverError),
				log.String("collection", collection))
			continue
		}

		cw.cancels[collection] = cancel
		cw.wg.Add(1)
		go cw.consume(ctx, stream, collection, target)
		logger.Info("Watching collection for changes", log.String("collection", collection))
	}
}

func (cw *ChangeWatcher) openStream(ctx context.Context, collection string) (*mongo.ChangeStream, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"operationType": bson.M{"$in": bson.A{"insert", "update", "replace"}},
		}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	return provider.GetDatabase().Collection(collection).Watch(ctx, pipeline, opts)
}

func (cw *ChangeWatcher) consume(ctx context.Context, stream *mongo.ChangeStream,
	collection string, target watchedCollection) {

	defer cw.wg.Done()
	defer stream.Close(context.Background())

	logger := log.GetLogger()
	for stream.Next(ctx) {
		var change struct {
			FullDocument map[string]interface{} `bson:"fullDocument"`
		}
		if err := stream.Decode(&change); err != nil {
			logger.Error("Failed to decode change stream document", log.Error(err),
				log.String("collection", collection))
			continue
		}
		if change.FullDocument == nil {
			continue
		}

		entityId, _ := change.FullDocument["_id"].(string)
		cw.ingestor.Ingest(model.WorkflowEventInput{
			Type:       target.eventType,
			EntityId:   entityId,
			EntityType: target.entityType,
			Data:       change.FullDocument,
			Timestamp:  time.Now().UTC(),
		})
	}

	if err := stream.Err(); err != nil && ctx.Err() == nil {
		logger.Error("Change stream terminated", log.Error(err),
			log.String("collection", collection))
	}
}

// Stop cancels every open subscription. Idempotent and safe to call before
// Start.
func (cw *ChangeWatcher) Stop() {
	cw.mu.Lock()
	for collection, cancel := range cw.cancels {
		cancel()
		delete(cw.cancels, collection)
	}
	cw.mu.Unlock()

	cw.wg.Wait()
	log.GetLogger().Info("Change watcher stopped")
}
