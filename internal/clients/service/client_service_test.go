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
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coverlane/brokerage-automation-service/internal/clients/model"
	"github.com/coverlane/brokerage-automation-service/internal/system/client"
)

type stubAssistant struct{}

func (s *stubAssistant) GenerateText(ctx context.Context, prompt string, opts client.GenerateOptions) (string, error) {
	return "", errors.New("unavailable")
}

func (s *stubAssistant) ChatResponse(ctx context.Context, message, role string) string {
	return ""
}

func TestCreateClientRequiresIdentityFields(t *testing.T) {
	cs := NewClientService(&stubAssistant{})

	_, err := cs.CreateClient(model.ClientFormRequest{FirstName: "Ada"}, "broker-1")
	assert.Error(t, err)
}

func TestRiskLevelFromResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected string
	}{
		{"explicit very high", "Risk level: VERY_HIGH due to industry exposure.", model.RiskVeryHigh},
		{"very high spelled with a space", "This client is VERY HIGH risk overall.", model.RiskVeryHigh},
		{"explicit high", "This client is HIGH risk.", model.RiskHigh},
		{"explicit low", "Assessment: low risk, stable revenue.", model.RiskLow},
		{"no stated level defaults to medium", "Unable to determine a clear profile.", model.RiskMedium},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, riskLevelFromResponse(tc.response))
		})
	}
}

func TestRiskScoreFromLevel(t *testing.T) {
	assert.Equal(t, 25, riskScoreFromLevel(model.RiskLow))
	assert.Equal(t, 50, riskScoreFromLevel(model.RiskMedium))
	assert.Equal(t, 75, riskScoreFromLevel(model.RiskHigh))
	assert.Equal(t, 90, riskScoreFromLevel(model.RiskVeryHigh))
	assert.Equal(t, 50, riskScoreFromLevel("unheard_of"))
}
