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

package model

// Currency symbol positions.
const (
	PositionBefore = "before"
	PositionAfter  = "after"
)

// Currency is one supported settlement currency.
type Currency struct {
	Code   string `json:"code" bson:"code"`
	Name   string `json:"name" bson:"name"`
	Symbol string `json:"symbol" bson:"symbol"`
}

// CurrencySettings controls how monetary amounts are rendered platform-wide.
type CurrencySettings struct {
	DefaultCurrency     string     `json:"default_currency" bson:"default_currency"`
	CurrencySymbol      string     `json:"currency_symbol" bson:"currency_symbol"`
	CurrencyPosition    string     `json:"currency_position" bson:"currency_position"`
	DecimalPlaces       int        `json:"decimal_places" bson:"decimal_places"`
	ThousandSeparator   string     `json:"thousand_separator" bson:"thousand_separator"`
	DecimalSeparator    string     `json:"decimal_separator" bson:"decimal_separator"`
	SupportedCurrencies []Currency `json:"supported_currencies" bson:"supported_currencies"`
}

// DefaultCurrencySettings returns the built-in settings used when none have
// been stored yet.
func DefaultCurrencySettings() CurrencySettings {
	return CurrencySettings{
		DefaultCurrency:   "USD",
		CurrencySymbol:    "$",
		CurrencyPosition:  PositionBefore,
		DecimalPlaces:     2,
		ThousandSeparator: ",",
		DecimalSeparator:  ".",
		SupportedCurrencies: []Currency{
			{Code: "USD", Name: "US Dollar", Symbol: "$"},
			{Code: "EUR", Name: "Euro", Symbol: "€"},
			{Code: "GBP", Name: "British Pound", Symbol: "£"},
			{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$"},
			{Code: "AUD", Name: "Australian Dollar", Symbol: "A$"},
			{Code: "AED", Name: "UAE Dirham", Symbol: "د.إ"},
			{Code: "SAR", Name: "Saudi Riyal", Symbol: "﷼"},
			{Code: "QAR", Name: "Qatari Riyal", Symbol: "﷼"},
			{Code: "KWD", Name: "Kuwaiti Dinar", Symbol: "د.ك"},
			{Code: "BHD", Name: "Bahraini Dinar", Symbol: ".د.ب"},
			{Code: "OMR", Name: "Omani Rial", Symbol: "﷼"},
			{Code: "TRY", Name: "Turkish Lira", Symbol: "₺"},
			{Code: "INR", Name: "Indian Rupee", Symbol: "₹"},
			{Code: "PKR", Name: "Pakistani Rupee", Symbol: "₨"},
		},
	}
}
