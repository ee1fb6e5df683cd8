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

package managers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	aihandler "github.com/coverlane/brokerage-automation-service/internal/ai/handler"
	aiprovider "github.com/coverlane/brokerage-automation-service/internal/ai/provider"
	automationhandler "github.com/coverlane/brokerage-automation-service/internal/automation/handler"
	automationprovider "github.com/coverlane/brokerage-automation-service/internal/automation/provider"
	"github.com/coverlane/brokerage-automation-service/internal/automation/service"
	claimhandler "github.com/coverlane/brokerage-automation-service/internal/claims/handler"
	clienthandler "github.com/coverlane/brokerage-automation-service/internal/clients/handler"
	clientprovider "github.com/coverlane/brokerage-automation-service/internal/clients/provider"
	documenthandler "github.com/coverlane/brokerage-automation-service/internal/documents/handler"
	notificationhandler "github.com/coverlane/brokerage-automation-service/internal/notifications/handler"
	policyhandler "github.com/coverlane/brokerage-automation-service/internal/policies/handler"
	producthandler "github.com/coverlane/brokerage-automation-service/internal/products/handler"
	productprovider "github.com/coverlane/brokerage-automation-service/internal/products/provider"
	quotehandler "github.com/coverlane/brokerage-automation-service/internal/quotes/handler"
	settingshandler "github.com/coverlane/brokerage-automation-service/internal/settings/handler"
	settingsprovider "github.com/coverlane/brokerage-automation-service/internal/settings/provider"
	"github.com/coverlane/brokerage-automation-service/internal/system/config"
	"github.com/coverlane/brokerage-automation-service/internal/system/utils"
	taskhandler "github.com/coverlane/brokerage-automation-service/internal/tasks/handler"
)

type ServiceManagerInterface interface {
	RegisterServices(apiBasePath string) error
}

type ServiceManager struct {
	mux      *http.ServeMux
	ingestor service.Ingestor
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux, ingestor service.Ingestor) ServiceManagerInterface {

	return &ServiceManager{
		mux:      mux,
		ingestor: ingestor,
	}
}

func (sm *ServiceManager) RegisterServices(apiBasePath string) error {

	automation := automationhandler.NewAutomationHandler(automationprovider.NewAutomationProvider(sm.ingestor))
	clients := clienthandler.NewClientHandler(clientprovider.NewClientProvider())
	products := producthandler.NewProductHandler(productprovider.NewProductProvider())
	settings := settingshandler.NewSettingsHandler(settingsprovider.NewSettingsProvider())
	assistant := aihandler.NewAIHandler(aiprovider.NewAIProvider())
	tasks := taskhandler.NewTaskHandler()
	notifications := notificationhandler.NewNotificationHandler()
	quotes := quotehandler.NewQuoteHandler()
	policies := policyhandler.NewPolicyHandler()
	claims := claimhandler.NewClaimHandler()
	documents := documenthandler.NewDocumentHandler()

	sm.mux.HandleFunc("POST "+apiBasePath+"/automation-rules", automation.AddAutomationRule)
	sm.mux.HandleFunc("GET "+apiBasePath+"/automation-rules", automation.GetAutomationRules)
	sm.mux.HandleFunc("GET "+apiBasePath+"/automation-rules/{ruleId}", automation.GetAutomationRule)
	sm.mux.HandleFunc("PATCH "+apiBasePath+"/automation-rules/{ruleId}", automation.PatchAutomationRule)
	sm.mux.HandleFunc("DELETE "+apiBasePath+"/automation-rules/{ruleId}", automation.DeleteAutomationRule)
	sm.mux.HandleFunc("POST "+apiBasePath+"/automation/trigger", automation.TriggerAutomation)

	sm.mux.HandleFunc("POST "+apiBasePath+"/clients", clients.AddClient)
	sm.mux.HandleFunc("GET "+apiBasePath+"/clients", clients.GetClients)
	sm.mux.HandleFunc("GET "+apiBasePath+"/clients/stats", clients.GetClientStats)
	sm.mux.HandleFunc("GET "+apiBasePath+"/clients/{clientId}", clients.GetClient)
	sm.mux.HandleFunc("PATCH "+apiBasePath+"/clients/{clientId}", clients.PatchClient)
	sm.mux.HandleFunc("DELETE "+apiBasePath+"/clients/{clientId}", clients.DeleteClient)
	sm.mux.HandleFunc("GET "+apiBasePath+"/clients/{clientId}/quotes", quotes.GetQuotesForClient)
	sm.mux.HandleFunc("GET "+apiBasePath+"/clients/{clientId}/policies", policies.GetPoliciesForClient)

	sm.mux.HandleFunc("POST "+apiBasePath+"/quotes", quotes.AddQuote)
	sm.mux.HandleFunc("GET "+apiBasePath+"/quotes/{quoteId}", quotes.GetQuote)
	sm.mux.HandleFunc("POST "+apiBasePath+"/policies", policies.AddPolicy)
	sm.mux.HandleFunc("GET "+apiBasePath+"/policies/{policyId}", policies.GetPolicy)
	sm.mux.HandleFunc("POST "+apiBasePath+"/claims", claims.SubmitClaim)
	sm.mux.HandleFunc("GET "+apiBasePath+"/claims/{claimId}", claims.GetClaim)
	sm.mux.HandleFunc("GET "+apiBasePath+"/documents", documents.GetDocuments)

	sm.mux.HandleFunc("GET "+apiBasePath+"/tasks", tasks.GetTasks)
	sm.mux.HandleFunc("GET "+apiBasePath+"/notifications", notifications.GetNotifications)
	sm.mux.HandleFunc("POST "+apiBasePath+"/notifications/{notificationId}/read", notifications.MarkNotificationRead)

	sm.mux.HandleFunc("GET "+apiBasePath+"/products", products.GetProductCatalog)
	sm.mux.HandleFunc("PUT "+apiBasePath+"/products", products.UpdateProductCatalog)

	sm.mux.HandleFunc("GET "+apiBasePath+"/settings/currency", settings.GetCurrencySettings)
	sm.mux.HandleFunc("PUT "+apiBasePath+"/settings/currency", settings.UpdateCurrencySettings)

	sm.mux.HandleFunc("POST "+apiBasePath+"/assistant/chat", assistant.Chat)

	sm.mux.Handle("GET /metrics", promhttp.Handler())
	sm.mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return nil
}

// WithCORS wraps a handler with the CORS policy from the runtime config.
func WithCORS(next http.Handler) http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func originAllowed(origin string) bool {

	for _, allowed := range config.GetRuntime().Config.Auth.CORSAllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}
