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
	"strconv"
	"strings"
	"time"

	"github.com/coverlane/brokerage-automation-service/internal/settings/model"
	"github.com/coverlane/brokerage-automation-service/internal/settings/store"
	"github.com/coverlane/brokerage-automation-service/internal/system/cache"
	"github.com/coverlane/brokerage-automation-service/internal/system/constants"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
)

const settingsCacheTTL = 5 * time.Minute

var settingsCache = cache.NewCache(settingsCacheTTL)

// SettingsServiceInterface exposes the platform settings operations.
type SettingsServiceInterface interface {
	GetCurrencySettings() model.CurrencySettings
	UpdateCurrencySettings(settings model.CurrencySettings) error
	FormatAmount(amount float64) string
}

// SettingsService is the default implementation of SettingsServiceInterface.
type SettingsService struct{}

// GetSettingsService creates a new SettingsService.
func GetSettingsService() SettingsServiceInterface {

	return &SettingsService{}
}

// GetCurrencySettings returns the stored settings, falling back to the
// built-in defaults when nothing has been stored or the lookup fails.
func (ss *SettingsService) GetCurrencySettings() model.CurrencySettings {

	if cached, ok := settingsCache.Get(constants.CurrencySettingsKey); ok {
		if settings, ok := cached.(model.CurrencySettings); ok {
			return settings
		}
	}

	stored, err := store.GetCurrencySettings()
	if err != nil {
		log.GetLogger().Warn("Falling back to the default currency settings", log.Error(err))
		return model.DefaultCurrencySettings()
	}
	if stored == nil {
		return model.DefaultCurrencySettings()
	}

	settingsCache.Set(constants.CurrencySettingsKey, *stored)
	return *stored
}

// UpdateCurrencySettings replaces the stored settings and refreshes the cache.
func (ss *SettingsService) UpdateCurrencySettings(settings model.CurrencySettings) error {

	if err := store.UpsertCurrencySettings(settings); err != nil {
		return err
	}
	settingsCache.Set(constants.CurrencySettingsKey, settings)
	return nil
}

// FormatAmount renders a monetary amount according to the current settings.
func (ss *SettingsService) FormatAmount(amount float64) string {

	settings := ss.GetCurrencySettings()
	formatted := formatNumber(amount, settings.DecimalPlaces, settings.ThousandSeparator, settings.DecimalSeparator)
	if settings.CurrencyPosition == model.PositionAfter {
		return formatted + " " + settings.CurrencySymbol
	}
	return settings.CurrencySymbol + formatted
}

func formatNumber(amount float64, decimals int, thousandSep, decimalSep string) string {

	if decimals < 0 {
		decimals = 0
	}
	raw := strconv.FormatFloat(amount, 'f', decimals, 64)

	negative := strings.HasPrefix(raw, "-")
	raw = strings.TrimPrefix(raw, "-")

	intPart := raw
	fracPart := ""
	if idx := strings.IndexByte(raw, '.'); idx >= 0 {
		intPart = raw[:idx]
		fracPart = raw[idx+1:]
	}

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	result := strings.Join(groups, thousandSep)
	if fracPart != "" {
		result += decimalSep + fracPart
	}
	if negative {
		result = "-" + result
	}
	return result
}
