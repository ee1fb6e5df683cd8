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

package constants

const ApiBasePath = "/api/v1"

// Collection names in the document store.
const (
	ClientCollection          = "clients"
	QuoteCollection           = "quotes"
	PolicyCollection          = "policies"
	ClaimCollection           = "claims"
	TaskCollection            = "tasks"
	NotificationCollection    = "notifications"
	EmailLogCollection        = "email_logs"
	DocumentCollection        = "documents"
	AIReviewCollection        = "ai_reviews"
	AutomationRuleCollection  = "automation_rules"
	AutomationEventCollection = "automation_events"
	SystemSettingsCollection  = "system_settings"
	DeletionLogCollection     = "deletion_logs"
)

// System settings document keys.
const (
	CurrencySettingsKey = "currency"
	ProductCatalogKey   = "product_types"
)

// DefaultQueueSize is the buffer size of the workflow event ingest queue.
const DefaultQueueSize = 256

// patchableCollections lists the collections the generic status-update
// action is allowed to target.
var patchableCollections = map[string]bool{
	ClientCollection: true,
	QuoteCollection:  true,
	PolicyCollection: true,
	ClaimCollection:  true,
	TaskCollection:   true,
}

// IsPatchableCollection reports whether the generic status-update action may
// patch documents in the given collection.
func IsPatchableCollection(collection string) bool {
	return patchableCollections[collection]
}
