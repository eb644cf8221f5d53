package queue

import (
	"reflect"
	"strings"
	"testing"
)

func TestMessageRoundTrip(t *testing.T) {
	msg := Message{
		StructureID: "structure-123",
		ProjectID:   "project-9",
		ExportKey:   "exports/project-9/structure-123.json",
		RequestID:   "request-456",
		EnqueuedAt:  "2026-01-30T22:00:00Z",
		Version:     MessageVersion,
	}

	payload, err := EncodeMessage(msg)
	if err != nil {
		t.Fatalf("encode message: %v", err)
	}
	if !strings.Contains(string(payload), `"structureId":"structure-123"`) {
		t.Fatalf("unexpected payload: %s", payload)
	}

	got, err := DecodeMessage(payload)
	if err != nil {
		t.Fatalf("decode message: %v", err)
	}

	if !reflect.DeepEqual(got, msg) {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, msg)
	}
}

func TestDecodeMessageRejectsGarbage(t *testing.T) {
	if _, err := DecodeMessage([]byte("not json")); err == nil {
		t.Fatalf("expected decode error")
	}
}
