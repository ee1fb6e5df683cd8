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

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/coverlane/brokerage-automation-service/internal/system/database/provider"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
	"github.com/coverlane/brokerage-automation-service/test/setup"
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	if err := log.Init("ERROR"); err != nil {
		fmt.Println("Failed to initialize logger:", err)
		os.Exit(1)
	}

	tm, err := setup.SetupTestMongo(ctx)
	if err != nil {
		fmt.Println("Failed to start test MongoDB:", err)
		os.Exit(1)
	}

	provider.SetTestDatabase(tm.Client.Database("coverlane_test"))

	code := m.Run()

	_ = tm.Client.Disconnect(ctx)
	_ = tm.Container.Terminate(ctx)

	os.Exit(code)
}
