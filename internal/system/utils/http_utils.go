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

package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

// WriteJSONResponse serializes payload with the given status code.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.GetLogger().Error("Failed to encode response body", log.Error(err))
	}
}

// WriteErrorResponse writes a structured error body for a client error.
func WriteErrorResponse(w http.ResponseWriter, statusCode int, msg errors2.ErrorMessage) {
	WriteJSONResponse(w, statusCode, ErrorResponse{
		Code:        msg.Code,
		Message:     msg.Message,
		Description: msg.Description,
	})
}

// HandleError maps service layer errors onto HTTP responses. Client errors
// carry their own status code, everything else becomes a 500.
func HandleError(w http.ResponseWriter, err error) {
	var clientErr *errors2.ClientError
	if errors.As(err, &clientErr) {
		WriteErrorResponse(w, clientErr.StatusCode, clientErr.ErrorMessage)
		return
	}

	var serverErr *errors2.ServerError
	if errors.As(err, &serverErr) {
		log.GetLogger().Error("Internal server error",
			log.String("code", serverErr.Code), log.Error(serverErr.Err))
		WriteErrorResponse(w, http.StatusInternalServerError, serverErr.ErrorMessage)
		return
	}

	log.GetLogger().Error("Unclassified error", log.Error(err))
	WriteErrorResponse(w, http.StatusInternalServerError, errors2.ErrorMessage{
		Code:    "BAS-15000",
		Message: "Internal server error",
	})
}

// DecodeJSONBody reads the request body into target and reports malformed
// payloads as a bad request client error.
func DecodeJSONBody(r *http.Request, target interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return errors2.NewClientError(errors2.BAD_REQUEST, http.StatusBadRequest)
	}
	return nil
}
