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

	"github.com/coverlane/brokerage-automation-service/internal/settings/model"
	"github.com/coverlane/brokerage-automation-service/internal/settings/provider"
	"github.com/coverlane/brokerage-automation-service/internal/system/authn"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
	"github.com/coverlane/brokerage-automation-service/internal/system/utils"
)

// SettingsHandler exposes the platform settings endpoints.
type SettingsHandler struct {
	provider provider.SettingsProviderInterface
}

// NewSettingsHandler creates a handler over the given provider.
func NewSettingsHandler(p provider.SettingsProviderInterface) *SettingsHandler {

	return &SettingsHandler{provider: p}
}

// GetCurrencySettings returns the active currency settings.
func (sh *SettingsHandler) GetCurrencySettings(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.PrincipalFromRequest(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	settings := sh.provider.GetSettingsService().GetCurrencySettings()
	utils.WriteJSONResponse(w, http.StatusOK, settings)
}

// UpdateCurrencySettings replaces the currency settings. Admin only.
func (sh *SettingsHandler) UpdateCurrencySettings(w http.ResponseWriter, r *http.Request) {

	principal, err := authn.PrincipalFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if principal.Role != "admin" {
		utils.HandleError(w, errors2.NewClientError(errors2.UNAUTHORIZED, http.StatusForbidden))
		return
	}

	var settings model.CurrencySettings
	if err := utils.DecodeJSONBody(r, &settings); err != nil {
		utils.HandleError(w, err)
		return
	}

	if err := sh.provider.GetSettingsService().UpdateCurrencySettings(settings); err != nil {
		utils.HandleError(w, err)
		return
	}

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorID:   principal.Subject,
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      "currency",
		TargetType:    log.TargetTypeSystemSettings,
		ActionID:      log.ActionUpdateCurrencySettings,
	})

	utils.WriteJSONResponse(w, http.StatusOK, settings)
}
