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

package handler

import (
	"net/http"

	"github.com/coverlane/brokerage-automation-service/internal/notifications/model"
	"github.com/coverlane/brokerage-automation-service/internal/notifications/store"
	"github.com/coverlane/brokerage-automation-service/internal/system/authn"
	errors2 "github.com/coverlane/brokerage-automation-service/internal/system/errors"
	"github.com/coverlane/brokerage-automation-service/internal/system/utils"
)

// NotificationHandler exposes the notification inbox endpoints.
type NotificationHandler struct{}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler() *NotificationHandler {

	return &NotificationHandler{}
}

// GetNotifications lists the caller's notifications, newest first.
func (nh *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {

	principal, err := authn.PrincipalFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	notifications, err := store.GetNotificationsForBroker(principal.Subject)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if notifications == nil {
		notifications = []model.Notification{}
	}
	utils.WriteJSONResponse(w, http.StatusOK, notifications)
}

// MarkNotificationRead flags one notification as read.
func (nh *NotificationHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.PrincipalFromRequest(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	notificationId := r.PathValue("notificationId")
	if notificationId == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.BAD_REQUEST, http.StatusBadRequest))
		return
	}

	if err := store.MarkNotificationRead(notificationId); err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusNoContent, nil)
}
