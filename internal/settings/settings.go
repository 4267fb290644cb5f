// Package settings manages per-user feature-connection flags: whether an
// external Git or Jira account is marked "connected". The flags are
// simulated state; no external system is contacted.
package settings

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/NishaKashyap1901/commitChronicle/internal/kv"
	"github.com/NishaKashyap1901/commitChronicle/internal/output"
)

// Integration names a connectable external system.
type Integration string

// Supported integrations.
const (
	IntegrationGit  Integration = "git"
	IntegrationJira Integration = "jira"
)

// ParseIntegration normalizes and validates an integration name.
func ParseIntegration(s string) (Integration, error) {
	switch Integration(strings.ToLower(strings.TrimSpace(s))) {
	case IntegrationGit:
		return IntegrationGit, nil
	case IntegrationJira:
		return IntegrationJira, nil
	default:
		return "", output.NewUserError(fmt.Sprintf("unknown integration %q (expected git or jira)", s))
	}
}

// Connection is the stored state for one integration.
type Connection struct {
	Connected bool   `json:"connected"`
	Account   string `json:"account,omitempty"`
}

// Connections maps integration name to its connection state.
type Connections map[Integration]Connection

// Service reads and writes per-user connection flags through the kv port.
type Service struct {
	kv kv.Store
}

// NewService creates a settings service over the given kv backend.
func NewService(backend kv.Store) *Service {
	return &Service{kv: backend}
}

// Status returns the user's connection flags. Absent or unreadable state
// is an empty set; integrations never connected are simply missing.
func (s *Service) Status(userKey string) (Connections, error) {
	data, found, err := s.kv.Get(kv.ConnectionsKey(userKey))
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to read connections", err)
	}
	if !found {
		return Connections{}, nil
	}

	var conns Connections
	if err := json.Unmarshal(data, &conns); err != nil {
		return Connections{}, nil
	}
	return conns, nil
}

// Connect marks the integration connected for the user, recording the
// account label shown in settings.
func (s *Service) Connect(userKey string, integration Integration, account string) error {
	conns, err := s.Status(userKey)
	if err != nil {
		return err
	}
	conns[integration] = Connection{Connected: true, Account: strings.TrimSpace(account)}
	return s.save(userKey, conns)
}

// Disconnect clears the integration's connected state.
func (s *Service) Disconnect(userKey string, integration Integration) error {
	conns, err := s.Status(userKey)
	if err != nil {
		return err
	}
	delete(conns, integration)
	return s.save(userKey, conns)
}

func (s *Service) save(userKey string, conns Connections) error {
	data, err := json.Marshal(conns)
	if err != nil {
		return output.NewSystemErrorWithCause("failed to serialize connections", err)
	}
	if err := s.kv.Set(kv.ConnectionsKey(userKey), data); err != nil {
		return output.NewSystemErrorWithCause("failed to write connections", err)
	}
	return nil
}
