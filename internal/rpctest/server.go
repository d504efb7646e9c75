// Package rpctest provides a fake Solana JSON-RPC endpoint for tests.
package rpctest

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type request struct {
	ID     json.RawMessage `json:"id"`
	Method string          `json:"method"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

// Server answers JSON-RPC calls with canned results keyed by method name.
// Methods without a canned result get a JSON-RPC "method not found" error.
type Server struct {
	URL string

	mu      sync.Mutex
	results map[string]any
	calls   []string
}

// NewServer starts a fake endpoint that is closed when the test ends.
func NewServer(t *testing.T) *Server {
	t.Helper()

	s := &Server{results: make(map[string]any)}
	ts := httptest.NewServer(http.HandlerFunc(s.serveHTTP))
	t.Cleanup(ts.Close)
	s.URL = ts.URL
	return s
}

// Handle sets the result returned for method.
func (s *Server) Handle(method string, result any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[method] = result
}

// Calls returns the methods called so far, in order.
func (s *Server) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.calls = append(s.calls, req.Method)
	result, ok := s.results[req.Method]
	s.mu.Unlock()

	resp := response{JSONRPC: "2.0", ID: req.ID}
	if ok {
		resp.Result = result
	} else {
		resp.Error = &rpcError{Code: -32601, Message: "Method not found"}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Context wraps value the way account and balance results are returned.
func Context(slot uint64, value any) map[string]any {
	return map[string]any{
		"context": map[string]any{"slot": slot},
		"value":   value,
	}
}

// Version is a getVersion result.
func Version(core string) map[string]any {
	return map[string]any{"solana-core": core, "feature-set": 3746964731}
}

// Supply is a getSupply result.
func Supply(slot, total, circulating, nonCirculating uint64) map[string]any {
	return Context(slot, map[string]any{
		"total":                  total,
		"circulating":            circulating,
		"nonCirculating":         nonCirculating,
		"nonCirculatingAccounts": []string{},
	})
}

// Balance is a getBalance result.
func Balance(slot, lamports uint64) map[string]any {
	return Context(slot, lamports)
}

// ClockAccount is a getAccountInfo result holding a clock sysvar with the given fields.
func ClockAccount(contextSlot, slot uint64, unixTimestamp int64) map[string]any {
	data := make([]byte, 40)
	binary.LittleEndian.PutUint64(data[0:], slot)
	binary.LittleEndian.PutUint64(data[8:], uint64(unixTimestamp-3600))
	binary.LittleEndian.PutUint64(data[16:], 600)
	binary.LittleEndian.PutUint64(data[24:], 601)
	binary.LittleEndian.PutUint64(data[32:], uint64(unixTimestamp))

	return Context(contextSlot, map[string]any{
		"data":       []string{base64.StdEncoding.EncodeToString(data), "base64"},
		"executable": false,
		"lamports":   1169280,
		"owner":      "Sysvar1111111111111111111111111111111111111",
		"rentEpoch":  0,
		"space":      40,
	})
}

// MissingAccount is a getAccountInfo result for an account that does not exist.
func MissingAccount(contextSlot uint64) map[string]any {
	return Context(contextSlot, nil)
}
