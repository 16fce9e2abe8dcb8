package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"plinth/internal/domain"
	"plinth/internal/store"
)

func TestHostKeys_TriState(t *testing.T) {
	var h domain.HostKeyStore = store.NewHostKeys(store.Dir(t.TempDir()))

	res, err := h.Verify("h", 22, "rsa", "K1")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if res != domain.TrustAbsent {
		t.Fatalf("empty store: got %v, want absent", res)
	}

	if err := h.Add("h", 22, "rsa", "K1"); err != nil {
		t.Fatalf("add: %v", err)
	}

	if res, _ = h.Verify("h", 22, "rsa", "K1"); res != domain.TrustMatch {
		t.Errorf("same key: got %v, want match", res)
	}
	if res, _ = h.Verify("h", 22, "rsa", "K2"); res != domain.TrustMismatch {
		t.Errorf("changed key: got %v, want mismatch", res)
	}
	if res, _ = h.Verify("h", 2222, "rsa", "K1"); res != domain.TrustAbsent {
		t.Errorf("different port: got %v, want absent", res)
	}
	if res, _ = h.Verify("other", 22, "rsa", "K1"); res != domain.TrustAbsent {
		t.Errorf("different host: got %v, want absent", res)
	}
	if res, _ = h.Verify("h", 22, "dss", "K1"); res != domain.TrustAbsent {
		t.Errorf("different keytype: got %v, want absent", res)
	}
}

// The trust file is append-only and Verify stops at the first line whose
// identity matches, so an older line masks a newer one for the same host.
func TestHostKeys_FirstMatchMasksLaterLines(t *testing.T) {
	h := store.NewHostKeys(store.Dir(t.TempDir()))

	if err := h.Add("h", 22, "rsa", "K1"); err != nil {
		t.Fatalf("add K1: %v", err)
	}
	if err := h.Add("h", 22, "rsa", "K2"); err != nil {
		t.Fatalf("add K2: %v", err)
	}

	res, err := h.Verify("h", 22, "rsa", "K2")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if res != domain.TrustMismatch {
		t.Errorf("got %v, want mismatch: the stale first line must win", res)
	}
}

func TestHostKeys_AddCreatesStorageRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "fresh", "root")
	h := store.NewHostKeys(store.Dir(root))

	if err := h.Add("h", 22, "ed25519", "KEY"); err != nil {
		t.Fatalf("add into missing root: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(root, "sshhostkeys"))
	if err != nil {
		t.Fatalf("read trust file: %v", err)
	}
	if string(data) != "ed25519@22:h KEY\n" {
		t.Errorf("trust file = %q", data)
	}
}

func TestHostKeys_KeyDataComparedWhole(t *testing.T) {
	h := store.NewHostKeys(store.Dir(t.TempDir()))
	if err := h.Add("h", 22, "rsa", "K1extra"); err != nil {
		t.Fatalf("add: %v", err)
	}
	// A prefix of the stored payload is still the wrong key.
	if res, _ := h.Verify("h", 22, "rsa", "K1"); res != domain.TrustMismatch {
		t.Errorf("got %v, want mismatch for truncated key data", res)
	}
}

func TestHostKeys_Entries(t *testing.T) {
	dir := t.TempDir()
	h := store.NewHostKeys(store.Dir(dir))

	if entries, err := h.Entries(); err != nil || entries != nil {
		t.Fatalf("fresh store: got %v, %v", entries, err)
	}

	h.Add("a.example", 22, "rsa", "KA")
	h.Add("b.example", 2022, "ed25519", "KB")
	// An unparseable line is skipped, not an error.
	f, err := os.OpenFile(filepath.Join(dir, "sshhostkeys"), os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	f.WriteString("not a real line\n")
	f.Close()

	entries, err := h.Entries()
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %v", len(entries), entries)
	}
	want0 := domain.HostKeyEntry{Keytype: "rsa", Port: 22, Hostname: "a.example", KeyData: "KA"}
	if entries[0] != want0 {
		t.Errorf("entries[0] = %+v, want %+v", entries[0], want0)
	}
	if entries[1].Hostname != "b.example" || entries[1].Port != 2022 {
		t.Errorf("entries[1] = %+v", entries[1])
	}
}
