package app_test

import (
	"testing"

	"plinth/internal/app"
)

func TestNewWire_ProvidesDefaults(t *testing.T) {
	w, err := app.NewWire(app.Config{
		Dir:       t.TempDir(),
		Resources: []string{"plinth.Hostname: example.org"},
	})
	if err != nil {
		t.Fatalf("wire: %v", err)
	}
	if v, ok := w.Defaults.Lookup("Hostname"); !ok || v != "example.org" {
		t.Errorf("Hostname default = %q, %v", v, ok)
	}

	r, err := w.Sessions.OpenRead("nonexistent")
	if err != nil {
		t.Fatalf("open read: %v", err)
	}
	defer r.Close()
	if v, _ := r.GetString("Hostname"); v != "example.org" {
		t.Errorf("fallback not wired into sessions: got %q", v)
	}
}

func TestNewWire_RejectsMalformedResource(t *testing.T) {
	_, err := app.NewWire(app.Config{
		Dir:       t.TempDir(),
		Resources: []string{"missing a colon"},
	})
	if err == nil {
		t.Fatal("expected an error for a malformed resource line")
	}
}
