package settings

import (
	"testing"

	"github.com/NishaKashyap1901/commitChronicle/internal/kv"
)

func TestConnectDisconnect(t *testing.T) {
	svc := NewService(kv.NewMemStore())
	user := "dev@example.com"

	if err := svc.Connect(user, IntegrationGit, "dev@github"); err != nil {
		t.Fatalf("Connect: %v", err)
	}

	conns, err := svc.Status(user)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if conn := conns[IntegrationGit]; !conn.Connected || conn.Account != "dev@github" {
		t.Errorf("git connection = %+v", conn)
	}
	if _, ok := conns[IntegrationJira]; ok {
		t.Error("jira should not be connected")
	}

	if err := svc.Disconnect(user, IntegrationGit); err != nil {
		t.Fatalf("Disconnect: %v", err)
	}
	conns, _ = svc.Status(user)
	if _, ok := conns[IntegrationGit]; ok {
		t.Error("git still connected after disconnect")
	}
}

func TestStatusScopedPerUser(t *testing.T) {
	svc := NewService(kv.NewMemStore())

	if err := svc.Connect("a@example.com", IntegrationJira, "a@jira"); err != nil {
		t.Fatal(err)
	}

	conns, err := svc.Status("b@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(conns) != 0 {
		t.Errorf("user B sees user A's connections: %+v", conns)
	}
}

func TestStatusCorruptDataIsEmpty(t *testing.T) {
	backend := kv.NewMemStore()
	if err := backend.Set(kv.ConnectionsKey("dev@example.com"), []byte("not json")); err != nil {
		t.Fatal(err)
	}

	conns, err := NewService(backend).Status("dev@example.com")
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if len(conns) != 0 {
		t.Errorf("conns = %+v, want empty", conns)
	}
}

func TestParseIntegration(t *testing.T) {
	tests := []struct {
		in      string
		want    Integration
		wantErr bool
	}{
		{"git", IntegrationGit, false},
		{"GIT", IntegrationGit, false},
		{"jira", IntegrationJira, false},
		{" Jira ", IntegrationJira, false},
		{"slack", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseIntegration(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseIntegration(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
