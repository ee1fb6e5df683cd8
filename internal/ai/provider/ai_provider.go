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

import "github.com/coverlane/brokerage-automation-service/internal/ai/service"

// AIProviderInterface hands out the assistant service.
type AIProviderInterface interface {
	GetAssistantService() service.AssistantServiceInterface
}

// AIProvider is the default implementation of AIProviderInterface.
type AIProvider struct{}

// NewAIProvider creates a new AIProvider.
func NewAIProvider() AIProviderInterface {

	return &AIProvider{}
}

// GetAssistantService returns the assistant service.
func (ap *AIProvider) GetAssistantService() service.AssistantServiceInterface {

	return service.GetAssistantService()
}
