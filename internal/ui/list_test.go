package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/javiermolinar/pagetable/internal/client"
	"github.com/javiermolinar/pagetable/internal/config"
	"github.com/javiermolinar/pagetable/internal/server"
	"github.com/javiermolinar/pagetable/internal/store"
)

var listFixture = []json.RawMessage{
	json.RawMessage(`{"id":1,"name":"Ada Lovelace","email":"ada@example.com","phone":"555 123 4567","address":{"city":"London"},"company":{"name":"Engines"}}`),
	json.RawMessage(`{"id":2,"name":"","email":"nobody"}`),
	json.RawMessage(`{"id":3,"name":"Grace Hopper","email":"grace@example.com","address":{"city":"Arlington"},"company":{"name":"Navy"}}`),
}

func newListClient(t *testing.T) *client.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := server.New(config.ServerConfig{Addr: ":0"}, store.NewMemory(listFixture))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	c, err := client.New(ts.URL)
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}
	return c
}

func TestListUsers(t *testing.T) {
	DisableColor()
	c := newListClient(t)

	var out bytes.Buffer
	err := listUsers(context.Background(), &out, c, 1, 10, PrintOpts{Width: 120, Warnings: true})
	if err != nil {
		t.Fatalf("listUsers failed: %v", err)
	}
	got := out.String()

	for _, want := range []string{
		"Name", "Email", "Phone", "Company (City)",
		"Ada Lovelace", "ada@example.com", "+1-555-123-4567", "Engines (London)",
		"N/A", "Unknown Company (Unknown City)",
		"⚠ Invalid or missing name",
		"⚠ Invalid or missing email",
		"Grace Hopper",
		"1-3 of 3 users | 1 invalid",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	lines := strings.Split(got, "\n")
	invalidRow := -1
	for i, l := range lines {
		if strings.HasPrefix(l, "⚠ 2") {
			invalidRow = i
		}
	}
	if invalidRow < 0 {
		t.Fatalf("invalid row not marked:\n%s", got)
	}
	if !strings.Contains(lines[invalidRow+1], "Invalid or missing name") {
		t.Errorf("line after invalid row = %q, want its first warning", lines[invalidRow+1])
	}
}

func TestListUsersWithoutWarnings(t *testing.T) {
	DisableColor()
	c := newListClient(t)

	var out bytes.Buffer
	if err := listUsers(context.Background(), &out, c, 1, 10, PrintOpts{Width: 120}); err != nil {
		t.Fatalf("listUsers failed: %v", err)
	}
	if strings.Contains(out.String(), "Invalid or missing") {
		t.Errorf("warnings printed without --warnings:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "1 invalid") {
		t.Errorf("summary should still count invalid rows:\n%s", out.String())
	}
}

func TestListUsersNumbersRowsByAbsolutePosition(t *testing.T) {
	DisableColor()
	c := newListClient(t)

	var out bytes.Buffer
	if err := listUsers(context.Background(), &out, c, 2, 2, PrintOpts{Width: 120}); err != nil {
		t.Fatalf("listUsers failed: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "  3  Grace Hopper") {
		t.Errorf("expected row numbered 3:\n%s", got)
	}
	if strings.Contains(got, "Ada Lovelace") {
		t.Errorf("page 2 should not include the first record:\n%s", got)
	}
	if !strings.Contains(got, "3-3 of 3 users") {
		t.Errorf("summary wrong:\n%s", got)
	}
}

func TestListUsersPastTheEnd(t *testing.T) {
	DisableColor()
	c := newListClient(t)

	var out bytes.Buffer
	if err := listUsers(context.Background(), &out, c, 9, 10, PrintOpts{Width: 120}); err != nil {
		t.Fatalf("listUsers failed: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "No users on this page.") || !strings.Contains(got, "0 of 3 users") {
		t.Errorf("unexpected output:\n%s", got)
	}
}

func TestListUsersReportsServerError(t *testing.T) {
	c := newListClient(t)

	err := listUsers(context.Background(), &bytes.Buffer{}, c, 0, 10, PrintOpts{Width: 120})
	if err == nil {
		t.Fatal("expected error for page 0")
	}
	var statusErr *client.StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != 400 {
		t.Errorf("error = %v, want 400 status error", err)
	}
}
