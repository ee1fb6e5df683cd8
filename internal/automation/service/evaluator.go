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
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/coverlane/brokerage-automation-service/internal/automation/model"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
)

// EvaluateConditions is a logical AND over all conditions. An empty list
// evaluates true for any payload.
func EvaluateConditions(conditions []model.AutomationCondition, data map[string]interface{}) bool {
	for _, condition := range conditions {
		if !evaluateCondition(condition, data) {
			return false
		}
	}
	return true
}

func evaluateCondition(condition model.AutomationCondition, data map[string]interface{}) bool {
	fieldValue := FieldValue(data, condition.Field)

	switch condition.Operator {
	case model.OperatorEquals:
		return equalValues(fieldValue, condition.Value)
	case model.OperatorContains:
		return strings.Contains(
			strings.ToLower(stringify(fieldValue)),
			strings.ToLower(stringify(condition.Value)))
	case model.OperatorGreaterThan:
		left, right := toNumber(fieldValue), toNumber(condition.Value)
		return left > right
	case model.OperatorLessThan:
		left, right := toNumber(fieldValue), toNumber(condition.Value)
		return left < right
	case model.OperatorDateWithin:
		fieldDate, ok := toDate(fieldValue)
		if !ok {
			return false
		}
		daysFromNow := math.Ceil(time.Until(fieldDate).Hours() / 24)
		return daysFromNow <= toNumber(condition.Value)
	default:
		// Unknown operators pass. This fails open on purpose.
		log.GetLogger().Warn("Unknown condition operator, treating as matched",
			log.String("operator", condition.Operator))
		return true
	}
}

// FieldValue follows a dot-path through nested maps and returns nil if any
// segment is absent.
func FieldValue(data map[string]interface{}, fieldPath string) interface{} {
	var current interface{} = data
	for _, key := range strings.Split(fieldPath, ".") {
		node, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}
		current = node[key]
	}
	return current
}

// equalValues compares two payload values strictly. Numeric types are
// normalized before comparison; values of differing shapes are unequal.
func equalValues(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if fa, ok := asFloat(a); ok {
		fb, ok := asFloat(b)
		return ok && fa == fb
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return false
	}
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func stringify(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// toNumber coerces a payload value to a float. Anything unconvertible
// becomes NaN, which fails every ordered comparison.
func toNumber(v interface{}) float64 {
	if f, ok := asFloat(v); ok {
		return f
	}
	switch n := v.(type) {
	case string:
		trimmed := strings.TrimSpace(n)
		if trimmed == "" {
			return 0
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	case bool:
		if n {
			return 1
		}
		return 0
	default:
		return math.NaN()
	}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func toDate(v interface{}) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, true
	case primitive.DateTime:
		return d.Time(), true
	case string:
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, d); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	case float64:
		return time.UnixMilli(int64(d)), true
	case int64:
		return time.UnixMilli(d), true
	default:
		return time.Time{}, false
	}
}
