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
	aimodel "github.com/coverlane/brokerage-automation-service/internal/ai/model"
	aistore "github.com/coverlane/brokerage-automation-service/internal/ai/store"
	docmodel "github.com/coverlane/brokerage-automation-service/internal/documents/model"
	docstore "github.com/coverlane/brokerage-automation-service/internal/documents/store"
	notifmodel "github.com/coverlane/brokerage-automation-service/internal/notifications/model"
	notifstore "github.com/coverlane/brokerage-automation-service/internal/notifications/store"
	taskmodel "github.com/coverlane/brokerage-automation-service/internal/tasks/model"
	taskstore "github.com/coverlane/brokerage-automation-service/internal/tasks/store"

	"github.com/coverlane/brokerage-automation-service/internal/automation/store"
)

// RecordSink is the set of side-effecting writes the action executor
// performs against the rest of the system.
type RecordSink interface {
	AddEmailLog(entry notifmodel.EmailLog) error
	AddTask(task taskmodel.Task) error
	PatchEntityField(collection, entityId, field string, value interface{}) error
	AddDocument(document docmodel.Document) error
	AddAIReview(review aimodel.AIReview) error
	AddNotification(notification notifmodel.Notification) error
}

// storeSink writes through the domain stores.
type storeSink struct{}

// NewStoreSink returns the store-backed RecordSink used in production.
func NewStoreSink() RecordSink {
	return &storeSink{}
}

func (s *storeSink) AddEmailLog(entry notifmodel.EmailLog) error {
	return notifstore.AddEmailLog(entry)
}

func (s *storeSink) AddTask(task taskmodel.Task) error {
	return taskstore.AddTask(task)
}

func (s *storeSink) PatchEntityField(collection, entityId, field string, value interface{}) error {
	return store.PatchEntityField(collection, entityId, field, value)
}

func (s *storeSink) AddDocument(document docmodel.Document) error {
	return docstore.AddDocument(document)
}

func (s *storeSink) AddAIReview(review aimodel.AIReview) error {
	return aistore.AddAIReview(review)
}

func (s *storeSink) AddNotification(notification notifmodel.Notification) error {
	return notifstore.AddNotification(notification)
}
