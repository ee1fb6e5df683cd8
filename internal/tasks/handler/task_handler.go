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

	"github.com/coverlane/brokerage-automation-service/internal/system/authn"
	"github.com/coverlane/brokerage-automation-service/internal/system/utils"
	"github.com/coverlane/brokerage-automation-service/internal/tasks/model"
	"github.com/coverlane/brokerage-automation-service/internal/tasks/store"
)

// TaskHandler exposes the task worklist endpoints.
type TaskHandler struct{}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler() *TaskHandler {

	return &TaskHandler{}
}

// GetTasks lists the caller's tasks. When the entity_type and entity_id
// query parameters are present, the listing is scoped to that entity
// instead of the caller's worklist.
func (th *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {

	principal, err := authn.PrincipalFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	var tasks []model.Task
	entityType := r.URL.Query().Get("entity_type")
	entityId := r.URL.Query().Get("entity_id")
	if entityType != "" && entityId != "" {
		tasks, err = store.GetTasksForEntity(entityType, entityId)
	} else {
		tasks, err = store.GetTasksForAssignee(principal.Subject)
	}
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	utils.WriteJSONResponse(w, http.StatusOK, tasks)
}
