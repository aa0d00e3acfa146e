package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := DateOf(time.Date(2025, time.December, 25, 14, 30, 0, 0, time.UTC))

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2025-12-25"` {
		t.Fatalf("expected \"2025-12-25\", got %s", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip mismatch: got %v, want %v", back, d)
	}
}

func TestDateRejectsBadInput(t *testing.T) {
	for _, in := range []string{
		`"not-a-date"`,
		`"25-12-2025"`,
		`"2025-13-01"`,
		`"2025-12-25T00:00:00Z"`,
		`20251225`,
	} {
		var d Date
		if err := json.Unmarshal([]byte(in), &d); err == nil {
			t.Errorf("expected parse error for %s", in)
		}
	}
}

func TestEventDateNull(t *testing.T) {
	var e Event
	if err := json.Unmarshal([]byte(`{"title":"Gala","date":null}`), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e.Date != nil {
		t.Fatalf("expected absent date, got %v", e.Date)
	}

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if string(fields["date"]) != "null" {
		t.Errorf("expected date to encode as null, got %s", fields["date"])
	}
}
