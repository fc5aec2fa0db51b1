//go:build e2e

package gatewaytest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
)

// Payment mirrors the slice of the gateway payment the app reads back.
type Payment struct {
	ID                int64  `json:"id"`
	Status            string `json:"status"`
	StatusDetail      string `json:"status_detail"`
	ExternalReference string `json:"external_reference"`
}

// FakeGateway stands in for the Mercado Pago API during e2e runs. Behavior
// toggles are safe to flip between subtests.
type FakeGateway struct {
	Server *httptest.Server

	mu sync.Mutex
	// When set, preference creation returns 500 so the checkout
	// compensation path runs.
	failPreferences bool
	preferenceSeq   int
	// Request bodies seen on /checkout/preferences, oldest first.
	preferenceBodies []map[string]any
	// Payments served by id for lookups and by external_reference for
	// searches.
	payments     map[int64]Payment
	cancelledIDs []int64
}

func New() *FakeGateway {
	g := &FakeGateway{payments: make(map[int64]Payment)}

	mux := http.NewServeMux()
	mux.HandleFunc("/users/me", g.handleMe)
	mux.HandleFunc("/oauth/token", g.handleOAuthToken)
	mux.HandleFunc("/checkout/preferences", g.handleCreatePreference)
	mux.HandleFunc("/v1/payments/search", g.handleSearch)
	mux.HandleFunc("/v1/payments/", g.handlePayment)

	g.Server = httptest.NewServer(mux)
	return g
}

func (g *FakeGateway) Close() {
	g.Server.Close()
}

func (g *FakeGateway) URL() string {
	return g.Server.URL
}

func (g *FakeGateway) FailPreferences(fail bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failPreferences = fail
}

func (g *FakeGateway) AddPayment(p Payment) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.payments[p.ID] = p
}

func (g *FakeGateway) CancelledIDs() []int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]int64(nil), g.cancelledIDs...)
}

func (g *FakeGateway) PreferenceBodies() []map[string]any {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]map[string]any(nil), g.preferenceBodies...)
}

// Reset clears recorded state between subtests.
func (g *FakeGateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failPreferences = false
	g.preferenceBodies = nil
	g.payments = make(map[int64]Payment)
	g.cancelledIDs = nil
}

func (g *FakeGateway) handleMe(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"id": 987654321, "nickname": "DOGCATIFY"})
}

func (g *FakeGateway) handleOAuthToken(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"access_token":  "APP_USR-exchanged-access-token",
		"refresh_token": "TG-exchanged-refresh-token",
		"public_key":    "APP_USR-exchanged-public-key",
		"user_id":       445566,
		"expires_in":    15552000,
	})
}

func (g *FakeGateway) handleCreatePreference(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	_ = json.NewDecoder(r.Body).Decode(&body)

	g.mu.Lock()
	g.preferenceBodies = append(g.preferenceBodies, body)
	fail := g.failPreferences
	g.preferenceSeq++
	prefID := fmt.Sprintf("123456789-pref-%04d", g.preferenceSeq)
	g.mu.Unlock()

	if fail {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "internal error"})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":                 prefID,
		"init_point":         "https://www.mercadopago.com.uy/checkout/v1/redirect?pref_id=" + prefID,
		"sandbox_init_point": "https://sandbox.mercadopago.com.uy/checkout/v1/redirect?pref_id=" + prefID,
	})
}

func (g *FakeGateway) handleSearch(w http.ResponseWriter, r *http.Request) {
	ref := r.URL.Query().Get("external_reference")

	g.mu.Lock()
	var results []Payment
	for _, p := range g.payments {
		if p.ExternalReference == ref {
			results = append(results, p)
		}
	}
	g.mu.Unlock()

	if results == nil {
		results = []Payment{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (g *FakeGateway) handlePayment(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/v1/payments/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "not found"})
		return
	}

	g.mu.Lock()
	p, ok := g.payments[id]
	if ok && r.Method == http.MethodPut {
		p.Status = "cancelled"
		g.payments[id] = p
		g.cancelledIDs = append(g.cancelledIDs, id)
	}
	g.mu.Unlock()

	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "payment not found"})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
