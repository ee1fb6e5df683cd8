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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name        string
		amount      float64
		decimals    int
		thousandSep string
		decimalSep  string
		expected    string
	}{
		{"small amount", 42.5, 2, ",", ".", "42.50"},
		{"thousands grouped", 1234567.89, 2, ",", ".", "1,234,567.89"},
		{"european separators", 1234.5, 2, ".", ",", "1.234,50"},
		{"zero decimals", 1999.99, 0, ",", ".", "2,000"},
		{"negative amount", -12345.6, 2, ",", ".", "-12,345.60"},
		{"exact thousand", 1000, 2, ",", ".", "1,000.00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, formatNumber(tc.amount, tc.decimals, tc.thousandSep, tc.decimalSep))
		})
	}
}
