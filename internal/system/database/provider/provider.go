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

package provider

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/coverlane/brokerage-automation-service/internal/system/config"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
)

var (
	client   *mongo.Client
	database *mongo.Database
	mu       sync.RWMutex
)

// Init connects to the document store and pings it. Must be called once
// during bootstrap before any store is constructed.
func Init(cfg config.MongoConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return errors2.NewServerError(errors2.DB_CLIENT_INIT, err)
	}
	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		return errors2.NewServerError(errors2.DB_CLIENT_INIT, err)
	}

	mu.Lock()
	defer mu.Unlock()
	client = c
	database = c.Database(cfg.Database)

	log.GetLogger().Info("Connected to document store", log.String("database", cfg.Database))
	return nil
}

// GetDatabase returns the shared database handle.
func GetDatabase() *mongo.Database {
	mu.RLock()
	defer mu.RUnlock()
	if database == nil {
		panic("document store is not initialized")
	}
	return database
}

// SetTestDatabase replaces the shared database handle. Test use only.
func SetTestDatabase(db *mongo.Database) {
	mu.Lock()
	defer mu.Unlock()
	database = db
}

// Shutdown disconnects the client. Safe to call when Init never ran.
func Shutdown(ctx context.Context) error {
	mu.Lock()
	defer mu.Unlock()
	if client == nil {
		return nil
	}
	err := client.Disconnect(ctx)
	client = nil
	database = nil
	return err
}
