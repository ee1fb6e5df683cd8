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

package handler

import (
	"net/http"

	"github.com/coverlane/brokerage-automation-service/internal/documents/model"
	"github.com/coverlane/brokerage-automation-service/internal/documents/store"
	"github.com/coverlane/brokerage-automation-service/internal/system/authn"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/utils"
)

// DocumentHandler exposes the generated-document endpoints.
type DocumentHandler struct{}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler() *DocumentHandler {

	return &DocumentHandler{}
}

// GetDocuments lists the generated-document records of one entity,
// identified by the entity_type and entity_id query parameters.
func (dh *DocumentHandler) GetDocuments(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.PrincipalFromRequest(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	entityType := r.URL.Query().Get("entity_type")
	entityId := r.URL.Query().Get("entity_id")
	if entityType == "" || entityId == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "entity_type and entity_id query parameters are required.",
		}, http.StatusBadRequest))
		return
	}

	documents, err := store.GetDocumentsForEntity(entityType, entityId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if documents == nil {
		documents = []model.Document{}
	}
	utils.WriteJSONResponse(w, http.StatusOK, documents)
}
