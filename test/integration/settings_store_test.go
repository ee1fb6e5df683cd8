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

package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productmodel "github.com/coverlane/brokerage-automation-service/internal/products/model"
	productstore "github.com/coverlane/brokerage-automation-service/internal/products/store"
	settingsmodel "github.com/coverlane/brokerage-automation-service/internal/settings/model"
	settingsstore "github.com/coverlane/brokerage-automation-service/internal/settings/store"
)

func TestProductCatalogRoundTrip(t *testing.T) {
	stored, err := productstore.GetProductCatalog()
	require.NoError(t, err)
	assert.Nil(t, stored)

	catalog := productmodel.DefaultCatalog()
	catalog.ProductTypes = catalog.ProductTypes[:3]
	require.NoError(t, productstore.UpsertProductCatalog(catalog))

	stored, err = productstore.GetProductCatalog()
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Len(t, stored.ProductTypes, 3)
	assert.Equal(t, "general_liability", stored.ProductTypes[0].Value)
	assert.Len(t, stored.Categories, len(catalog.Categories))
}

func TestCurrencySettingsRoundTrip(t *testing.T) {
	settings := settingsmodel.DefaultCurrencySettings()
	settings.DefaultCurrency = "EUR"
	settings.CurrencySymbol = "€"
	settings.CurrencyPosition = settingsmodel.PositionAfter

	require.NoError(t, settingsstore.UpsertCurrencySettings(settings))

	stored, err := settingsstore.GetCurrencySettings()
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "EUR", stored.DefaultCurrency)
	assert.Equal(t, settingsmodel.PositionAfter, stored.CurrencyPosition)
	assert.Len(t, stored.SupportedCurrencies, len(settings.SupportedCurrencies))
}
