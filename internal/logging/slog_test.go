package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var m map[string]any
		if err := dec.Decode(&m); err != nil {
			t.Fatalf("decode log line: %v", err)
		}
		out = append(out, m)
	}
	return out
}

func TestNewJSON_WritesStructuredRecords(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSON(&buf)

	ctx := context.Background()
	log.Info(ctx, "hello", "k", "v")
	log.Warn(ctx, "careful")
	log.Error(ctx, "boom", "code", 500)

	lines := decodeLines(t, &buf)
	if len(lines) != 3 {
		t.Fatalf("expected 3 records, got %d", len(lines))
	}
	if lines[0]["msg"] != "hello" || lines[0]["k"] != "v" {
		t.Fatalf("unexpected first record: %v", lines[0])
	}
	if lines[2]["level"] != "ERROR" {
		t.Fatalf("expected ERROR level, got %v", lines[2]["level"])
	}
}

func TestWith_AttachesAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSON(&buf).With("module", "test")

	log.Info(context.Background(), "msg")

	lines := decodeLines(t, &buf)
	if len(lines) != 1 || lines[0]["module"] != "test" {
		t.Fatalf("expected module attribute, got %v", lines)
	}
}
