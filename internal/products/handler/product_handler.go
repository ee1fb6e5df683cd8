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

	"github.com/coverlane/brokerage-automation-service/internal/products/model"
	"github.com/coverlane/brokerage-automation-service/internal/products/provider"
	"github.com/coverlane/brokerage-automation-service/internal/system/authn"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
	"github.com/coverlane/brokerage-automation-service/internal/system/utils"
)

// ProductHandler exposes the product catalog endpoints.
type ProductHandler struct {
	provider provider.ProductProviderInterface
}

// NewProductHandler creates a handler over the given provider.
func NewProductHandler(p provider.ProductProviderInterface) *ProductHandler {

	return &ProductHandler{provider: p}
}

// GetProductCatalog returns the full catalog.
func (ph *ProductHandler) GetProductCatalog(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.PrincipalFromRequest(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	catalog := ph.provider.GetProductService().GetCatalog()
	utils.WriteJSONResponse(w, http.StatusOK, catalog)
}

// UpdateProductCatalog replaces the catalog. Admin only.
func (ph *ProductHandler) UpdateProductCatalog(w http.ResponseWriter, r *http.Request) {

	principal, err := authn.PrincipalFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if principal.Role != "admin" {
		utils.HandleError(w, errors2.NewClientError(errors2.UNAUTHORIZED, http.StatusForbidden))
		return
	}

	var catalog model.ProductCatalog
	if err := utils.DecodeJSONBody(r, &catalog); err != nil {
		utils.HandleError(w, err)
		return
	}

	if err := ph.provider.GetProductService().UpdateCatalog(catalog); err != nil {
		utils.HandleError(w, err)
		return
	}

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorID:   principal.Subject,
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      "product_types",
		TargetType:    log.TargetTypeProductCatalog,
		ActionID:      log.ActionUpdateProductCatalog,
	})

	utils.WriteJSONResponse(w, http.StatusOK, catalog)
}
