// mock_registry.go - Mock FMCSA registry client for testing
package testutil

import (
	"context"
	"sync"

	"github.com/freightline/backend/internal/fmcsa"
)

// MockRegistry implements carrier.Registry for testing. It records every
// call so tests can assert how (and whether) the registry was queried.
type MockRegistry struct {
	mu sync.Mutex

	// Result and Err are returned from every call.
	Result *fmcsa.Carrier
	Err    error

	calls        int
	lastMCNumber string
	lastWebKey   string
}

// NewMockRegistry creates a mock registry returning the given record.
func NewMockRegistry(result *fmcsa.Carrier, err error) *MockRegistry {
	return &MockRegistry{
		Result: result,
		Err:    err,
	}
}

func (m *MockRegistry) Carrier(ctx context.Context, mcNumber, webKey string) (*fmcsa.Carrier, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	m.lastMCNumber = mcNumber
	m.lastWebKey = webKey

	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}

// Calls reports how many times the registry was queried.
func (m *MockRegistry) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// LastMCNumber returns the MC number of the most recent query.
func (m *MockRegistry) LastMCNumber() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastMCNumber
}

// LastWebKey returns the credential of the most recent query.
func (m *MockRegistry) LastWebKey() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastWebKey
}
