package store_test

import (
	"strings"
	"testing"

	"plinth/internal/store"
)

func TestParseRecord_Basic(t *testing.T) {
	in := "Hostname=example.org\nPortNumber=22\n"
	rec, err := store.ParseRecord(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if rec.Len() != 2 {
		t.Fatalf("got %d keys, want 2", rec.Len())
	}
	if v, ok := rec.Get("Hostname"); !ok || v != "example.org" {
		t.Errorf("Hostname = %q, %v", v, ok)
	}
	if v, ok := rec.Get("PortNumber"); !ok || v != "22" {
		t.Errorf("PortNumber = %q, %v", v, ok)
	}
}

func TestParseRecord_SkipsLinesWithoutSeparator(t *testing.T) {
	in := "garbage line\nKey=value\n\nanother one\n"
	rec, err := store.ParseRecord(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if rec.Len() != 1 {
		t.Fatalf("got %d keys, want 1", rec.Len())
	}
}

func TestParseRecord_FirstEqualsSplits(t *testing.T) {
	rec, err := store.ParseRecord(strings.NewReader("a=b=c\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v, _ := rec.Get("a"); v != "b=c" {
		t.Errorf("a = %q, want %q", v, "b=c")
	}
}

func TestParseRecord_TrimsTrailingCRLF(t *testing.T) {
	rec, err := store.ParseRecord(strings.NewReader("Key=value\r\nLast=noeol"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v, _ := rec.Get("Key"); v != "value" {
		t.Errorf("Key = %q, want %q", v, "value")
	}
	if v, ok := rec.Get("Last"); !ok || v != "noeol" {
		t.Errorf("final unterminated line: got %q, %v", v, ok)
	}
}

func TestParseRecord_DuplicateKeyLastWins(t *testing.T) {
	rec, err := store.ParseRecord(strings.NewReader("k=first\nk=second\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v, _ := rec.Get("k"); v != "second" {
		t.Errorf("k = %q, want %q", v, "second")
	}
	if rec.Len() != 1 {
		t.Errorf("got %d keys, want 1", rec.Len())
	}
}

func TestParseRecord_LongLine(t *testing.T) {
	long := strings.Repeat("x", 64*1024)
	rec, err := store.ParseRecord(strings.NewReader("big=" + long + "\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v, _ := rec.Get("big"); v != long {
		t.Errorf("long value mangled: got %d bytes, want %d", len(v), len(long))
	}
}

func TestRecord_WriteTo_InsertionOrder(t *testing.T) {
	rec := store.NewRecord()
	rec.Set("b", "2")
	rec.Set("a", "1")
	rec.Set("b", "3") // overwrite keeps position

	var sb strings.Builder
	if _, err := rec.WriteTo(&sb); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "b=3\na=1\n"
	if sb.String() != want {
		t.Errorf("got %q, want %q", sb.String(), want)
	}
}
