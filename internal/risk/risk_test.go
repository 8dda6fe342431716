package risk

import (
	"strings"
	"testing"
)

func TestNoteKnownPort(t *testing.T) {
	note, ok := Note(23)
	if !ok {
		t.Fatal("expected a note for telnet")
	}
	if !strings.Contains(note, "Telnet") {
		t.Fatalf("unexpected note for port 23: %q", note)
	}
}

func TestNoteUnknownPort(t *testing.T) {
	if note, ok := Note(8181); ok {
		t.Fatalf("expected no note for port 8181, got %q", note)
	}
}
