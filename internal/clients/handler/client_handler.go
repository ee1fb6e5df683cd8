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

	"github.com/coverlane/brokerage-automation-service/internal/clients/model"
	"github.com/coverlane/brokerage-automation-service/internal/clients/provider"
	"github.com/coverlane/brokerage-automation-service/internal/system/authn"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
	"github.com/coverlane/brokerage-automation-service/internal/system/utils"
)

// ClientHandler exposes the CRM endpoints.
type ClientHandler struct {
	provider provider.ClientProviderInterface
}

// NewClientHandler creates a handler over the given provider.
func NewClientHandler(p provider.ClientProviderInterface) *ClientHandler {

	return &ClientHandler{provider: p}
}

// AddClient handles creating a new client for the calling broker.
func (ch *ClientHandler) AddClient(w http.ResponseWriter, r *http.Request) {

	principal, err := authn.PrincipalFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	var request model.ClientFormRequest
	if err := utils.DecodeJSONBody(r, &request); err != nil {
		utils.HandleError(w, err)
		return
	}

	created, err := ch.provider.GetClientService().CreateClient(request, principal.Subject)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorID:   principal.Subject,
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      created.ClientId,
		TargetType:    log.TargetTypeClient,
		ActionID:      log.ActionAddClient,
		Data:          map[string]string{"email": created.Email},
	})

	utils.WriteJSONResponse(w, http.StatusCreated, created)
}

// GetClients handles listing the caller's clients. Admins see everything.
func (ch *ClientHandler) GetClients(w http.ResponseWriter, r *http.Request) {

	principal, err := authn.PrincipalFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	brokerId := principal.Subject
	if principal.Role == "admin" {
		brokerId = ""
	}

	clients, err := ch.provider.GetClientService().GetClients(brokerId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if clients == nil {
		clients = []model.Client{}
	}
	utils.WriteJSONResponse(w, http.StatusOK, clients)
}

// GetClient handles fetching a single client.
func (ch *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.PrincipalFromRequest(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	clientId := r.PathValue("clientId")
	if clientId == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.BAD_REQUEST, http.StatusBadRequest))
		return
	}

	found, err := ch.provider.GetClientService().GetClient(clientId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, found)
}

// PatchClient applies a partial update to a client.
func (ch *ClientHandler) PatchClient(w http.ResponseWriter, r *http.Request) {

	principal, err := authn.PrincipalFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	clientId := r.PathValue("clientId")
	if clientId == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.BAD_REQUEST, http.StatusBadRequest))
		return
	}

	var updates map[string]interface{}
	if err := utils.DecodeJSONBody(r, &updates); err != nil {
		utils.HandleError(w, err)
		return
	}

	updated, err := ch.provider.GetClientService().UpdateClient(clientId, updates)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorID:   principal.Subject,
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      clientId,
		TargetType:    log.TargetTypeClient,
		ActionID:      log.ActionUpdateClient,
	})

	utils.WriteJSONResponse(w, http.StatusOK, updated)
}

// DeleteClient removes a client and all related records.
func (ch *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {

	principal, err := authn.PrincipalFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	clientId := r.PathValue("clientId")
	if clientId == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.BAD_REQUEST, http.StatusBadRequest))
		return
	}

	if err := ch.provider.GetClientService().DeleteClient(clientId, principal.Subject); err != nil {
		utils.HandleError(w, err)
		return
	}

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorID:   principal.Subject,
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      clientId,
		TargetType:    log.TargetTypeClient,
		ActionID:      log.ActionDeleteClient,
	})

	utils.WriteJSONResponse(w, http.StatusNoContent, nil)
}

// GetClientStats summarizes the caller's book of business.
func (ch *ClientHandler) GetClientStats(w http.ResponseWriter, r *http.Request) {

	principal, err := authn.PrincipalFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	stats, err := ch.provider.GetClientService().GetClientStats(principal.Subject)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, stats)
}
