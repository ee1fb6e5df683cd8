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

	"github.com/coverlane/brokerage-automation-service/internal/ai/provider"
	"github.com/coverlane/brokerage-automation-service/internal/system/authn"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/utils"
)

// ChatRequest is the payload of the assistant chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the reply of the assistant chat endpoint.
type ChatResponse struct {
	Response string `json:"response"`
}

// AIHandler exposes the assistant endpoints.
type AIHandler struct {
	provider provider.AIProviderInterface
}

// NewAIHandler creates a handler over the given provider.
func NewAIHandler(p provider.AIProviderInterface) *AIHandler {

	return &AIHandler{provider: p}
}

// Chat answers a free-form user message, degrading to canned responses when
// no generation backend is configured.
func (ah *AIHandler) Chat(w http.ResponseWriter, r *http.Request) {

	principal, err := authn.PrincipalFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	var request ChatRequest
	if err := utils.DecodeJSONBody(r, &request); err != nil {
		utils.HandleError(w, err)
		return
	}
	if request.Message == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.BAD_REQUEST, http.StatusBadRequest))
		return
	}

	reply := ah.provider.GetAssistantService().ChatResponse(r.Context(), request.Message, principal.Role)
	utils.WriteJSONResponse(w, http.StatusOK, ChatResponse{Response: reply})
}
