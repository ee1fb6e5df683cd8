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

import "github.com/coverlane/brokerage-automation-service/internal/products/service"

// ProductProviderInterface hands out the product catalog service.
type ProductProviderInterface interface {
	GetProductService() service.ProductServiceInterface
}

// ProductProvider is the default implementation of ProductProviderInterface.
type ProductProvider struct{}

// NewProductProvider creates a new ProductProvider.
func NewProductProvider() ProductProviderInterface {

	return &ProductProvider{}
}

// GetProductService returns the product catalog service.
func (pp *ProductProvider) GetProductService() service.ProductServiceInterface {

	return service.GetProductService()
}
