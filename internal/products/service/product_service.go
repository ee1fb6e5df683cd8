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
	"time"

	"github.com/coverlane/brokerage-automation-service/internal/products/model"
	"github.com/coverlane/brokerage-automation-service/internal/products/store"
	"github.com/coverlane/brokerage-automation-service/internal/system/cache"
	"github.com/coverlane/brokerage-automation-service/internal/system/constants"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
)

const catalogCacheTTL = 5 * time.Minute

var catalogCache = cache.NewCache(catalogCacheTTL)

// ProductServiceInterface exposes the product catalog operations.
type ProductServiceInterface interface {
	GetCatalog() model.ProductCatalog
	GetActiveProductTypes() []model.ProductType
	GetBasePremium(productType string) float64
	UpdateCatalog(catalog model.ProductCatalog) error
}

// ProductService is the default implementation of ProductServiceInterface.
type ProductService struct{}

// GetProductService creates a new ProductService.
func GetProductService() ProductServiceInterface {

	return &ProductService{}
}

// GetCatalog returns the stored catalog, falling back to the built-in
// defaults when nothing has been stored or the lookup fails.
func (ps *ProductService) GetCatalog() model.ProductCatalog {

	if cached, ok := catalogCache.Get(constants.ProductCatalogKey); ok {
		if catalog, ok := cached.(model.ProductCatalog); ok {
			return catalog
		}
	}

	stored, err := store.GetProductCatalog()
	if err != nil {
		log.GetLogger().Warn("Falling back to the default product catalog", log.Error(err))
		return model.DefaultCatalog()
	}
	if stored == nil {
		return model.DefaultCatalog()
	}

	catalogCache.Set(constants.ProductCatalogKey, *stored)
	return *stored
}

// GetActiveProductTypes returns the catalog's active product types.
func (ps *ProductService) GetActiveProductTypes() []model.ProductType {

	catalog := ps.GetCatalog()
	active := make([]model.ProductType, 0, len(catalog.ProductTypes))
	for _, productType := range catalog.ProductTypes {
		if productType.Active {
			active = append(active, productType)
		}
	}
	return active
}

// GetBasePremium returns the configured base premium of a product type, or
// the default premium when the product type is unknown.
func (ps *ProductService) GetBasePremium(productType string) float64 {

	for _, candidate := range ps.GetActiveProductTypes() {
		if candidate.Value == productType {
			if candidate.BasePremium > 0 {
				return candidate.BasePremium
			}
			break
		}
	}
	return model.DefaultBasePremium
}

// UpdateCatalog replaces the stored catalog and refreshes the cache.
func (ps *ProductService) UpdateCatalog(catalog model.ProductCatalog) error {

	if err := store.UpsertProductCatalog(catalog); err != nil {
		return err
	}
	catalogCache.Set(constants.ProductCatalogKey, catalog)
	return nil
}
