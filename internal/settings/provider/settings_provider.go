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

import "github.com/coverlane/brokerage-automation-service/internal/settings/service"

// SettingsProviderInterface hands out the platform settings service.
type SettingsProviderInterface interface {
	GetSettingsService() service.SettingsServiceInterface
}

// SettingsProvider is the default implementation of SettingsProviderInterface.
type SettingsProvider struct{}

// NewSettingsProvider creates a new SettingsProvider.
func NewSettingsProvider() SettingsProviderInterface {

	return &SettingsProvider{}
}

// GetSettingsService returns the platform settings service.
func (sp *SettingsProvider) GetSettingsService() service.SettingsServiceInterface {

	return service.GetSettingsService()
}
