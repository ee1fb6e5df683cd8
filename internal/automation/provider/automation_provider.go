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

import (
	"github.com/coverlane/brokerage-automation-service/internal/automation/service"
)

// AutomationProviderInterface hands out automation services bound to the
// process-wide orchestrator.
type AutomationProviderInterface interface {
	GetRulesService() service.RulesServiceInterface
}

// AutomationProvider is the default implementation of the
// AutomationProviderInterface.
type AutomationProvider struct {
	ingestor service.Ingestor
}

// NewAutomationProvider creates a provider over the given ingestor.
func NewAutomationProvider(ingestor service.Ingestor) AutomationProviderInterface {

	return &AutomationProvider{ingestor: ingestor}
}

// GetRulesService returns the rule management service.
func (ap *AutomationProvider) GetRulesService() service.RulesServiceInterface {

	return service.GetRulesService(ap.ingestor)
}
