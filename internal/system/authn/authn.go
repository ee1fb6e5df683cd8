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

package authn

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/coverlane/brokerage-automation-service/internal/system/config"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
)

// Principal identifies the authenticated caller of a request.
type Principal struct {
	Subject string
	Role    string
}

// PrincipalFromRequest validates the Authorization: Bearer token on the
// request and returns the caller identity. The token must be a JWT signed
// with the configured shared secret.
func PrincipalFromRequest(r *http.Request) (*Principal, error) {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return nil, unauthorizedError()
	}
	return validateToken(strings.TrimPrefix(header, "Bearer "))
}

func validateToken(tokenString string) (*Principal, error) {
	logger := log.GetLogger()
	secret := config.GetRuntime().Config.Auth.JWTSecret

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		logger.Debug("Token validation failed.", log.Error(err))
		return nil, unauthorizedError()
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		logger.Debug("Token does not carry a subject claim.")
		return nil, unauthorizedError()
	}

	role, _ := claims["role"].(string)
	return &Principal{Subject: subject, Role: role}, nil
}

func unauthorizedError() error {
	return errors2.NewClientError(errors2.UNAUTHORIZED, http.StatusUnauthorized)
}
