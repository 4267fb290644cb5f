// Package auth provides the simulated authentication layer: a locally
// persisted user registry plus one hardcoded privileged account. There is
// no credential hashing and no session token; the active user's identifier
// is persisted for the timeline store and other consumers to read.
package auth

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/NishaKashyap1901/commitChronicle/internal/kv"
	"github.com/NishaKashyap1901/commitChronicle/internal/output"
)

// Typed failures surfaced to the user as notifications.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("this email is already registered")
	ErrNotLoggedIn        = errors.New("no user is logged in")
)

// User is one registry record. The password is stored in the clear; this
// layer simulates authentication for a single-machine journal.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// The built-in privileged account, always accepted regardless of the
// persisted registry.
var adminUser = User{
	Name:     "Nisha Kashyap",
	Email:    "nisha.kashyap@innogent.in",
	Password: "password123",
}

// Service manages the registry and the active-user state.
type Service struct {
	kv kv.Store
}

// NewService creates an auth service over the given kv backend.
func NewService(backend kv.Store) *Service {
	return &Service{kv: backend}
}

// Register adds a new user to the registry. All fields are required and
// the email must not already be registered (the privileged account's email
// counts as taken).
func (s *Service) Register(name, email, password string) error {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	if name == "" || email == "" || password == "" {
		return output.NewUserError("please fill in all fields")
	}

	users, err := s.registry()
	if err != nil {
		return err
	}

	if email == normalizeEmail(adminUser.Email) {
		return output.NewConflictError(ErrEmailTaken.Error())
	}
	for _, u := range users {
		if normalizeEmail(u.Email) == email {
			return output.NewConflictError(ErrEmailTaken.Error())
		}
	}

	users = append(users, User{Name: name, Email: email, Password: password})
	return s.saveRegistry(users)
}

// Login checks credentials against the registry and the privileged
// account. On success the active user's email and display name are
// persisted for later reads.
func (s *Service) Login(email, password string) (*User, error) {
	email = normalizeEmail(email)

	if email == normalizeEmail(adminUser.Email) && password == adminUser.Password {
		return s.activate(adminUser)
	}

	users, err := s.registry()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if normalizeEmail(u.Email) == email && u.Password == password {
			return s.activate(u)
		}
	}

	return nil, output.NewUserError(ErrInvalidCredentials.Error())
}

// Logout clears the active-user state.
func (s *Service) Logout() error {
	if err := s.kv.Delete(kv.KeyActiveUser); err != nil {
		return output.NewSystemErrorWithCause("failed to clear session", err)
	}
	if err := s.kv.Delete(kv.KeyActiveUserName); err != nil {
		return output.NewSystemErrorWithCause("failed to clear session", err)
	}
	return nil
}

// ActiveUser returns the persisted active user's email and display name.
// Returns ErrNotLoggedIn (as a user error) when no user is active.
func (s *Service) ActiveUser() (email, name string, err error) {
	emailBytes, found, err := s.kv.Get(kv.KeyActiveUser)
	if err != nil {
		return "", "", output.NewSystemErrorWithCause("failed to read session", err)
	}
	if !found || len(emailBytes) == 0 {
		return "", "", output.NewUserError(ErrNotLoggedIn.Error() + "; run 'chronicle login' first")
	}

	var activeEmail string
	if err := json.Unmarshal(emailBytes, &activeEmail); err != nil {
		return "", "", output.NewSystemErrorWithCause("failed to parse session", err)
	}

	nameBytes, found, err := s.kv.Get(kv.KeyActiveUserName)
	if err != nil {
		return "", "", output.NewSystemErrorWithCause("failed to read session", err)
	}
	activeName := activeEmail
	if found {
		_ = json.Unmarshal(nameBytes, &activeName)
	}

	return activeEmail, activeName, nil
}

func (s *Service) activate(u User) (*User, error) {
	emailBytes, _ := json.Marshal(u.Email)
	if err := s.kv.Set(kv.KeyActiveUser, emailBytes); err != nil {
		return nil, output.NewSystemErrorWithCause("failed to persist session", err)
	}
	nameBytes, _ := json.Marshal(u.Name)
	if err := s.kv.Set(kv.KeyActiveUserName, nameBytes); err != nil {
		return nil, output.NewSystemErrorWithCause("failed to persist session", err)
	}
	return &u, nil
}

// registry reads the persisted user list. An absent key is an empty
// registry; corrupt registry data is treated the same (the write path
// replaces it wholesale).
func (s *Service) registry() ([]User, error) {
	data, found, err := s.kv.Get(kv.KeyRegistry)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to read user registry", err)
	}
	if !found {
		return nil, nil
	}

	var users []User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, nil
	}
	return users, nil
}

func (s *Service) saveRegistry(users []User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return output.NewSystemErrorWithCause("failed to serialize user registry", err)
	}
	if err := s.kv.Set(kv.KeyRegistry, data); err != nil {
		return output.NewSystemErrorWithCause("failed to write user registry", err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
