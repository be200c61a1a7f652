package timex

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	var v struct {
		TTL Duration `json:"ttl"`
	}

	if err := json.Unmarshal([]byte(`{"ttl": "24h"}`), &v); err != nil {
		t.Fatalf("string form: %v", err)
	}
	if v.TTL.Duration != 24*time.Hour {
		t.Fatalf("expected 24h, got %v", v.TTL.Duration)
	}

	if err := json.Unmarshal([]byte(`{"ttl": 1000000000}`), &v); err != nil {
		t.Fatalf("numeric form: %v", err)
	}
	if v.TTL.Duration != time.Second {
		t.Fatalf("expected 1s, got %v", v.TTL.Duration)
	}

	if err := json.Unmarshal([]byte(`{"ttl": "bogus"}`), &v); err == nil {
		t.Fatal("expected error for invalid duration string")
	}
	if err := json.Unmarshal([]byte(`{"ttl": true}`), &v); err == nil {
		t.Fatal("expected error for invalid duration type")
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration{42 * time.Minute})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"42m0s"` {
		t.Fatalf("unexpected marshal output: %s", b)
	}
}
