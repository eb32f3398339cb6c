package idgen_test

import (
	"regexp"
	"testing"

	"github.com/flitsinc/devserve/internal/idgen"
	"github.com/google/uuid"
)

var ulidPattern = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)

func TestInstanceIsUUIDv7(t *testing.T) {
	id, err := uuid.Parse(idgen.Instance())
	if err != nil {
		t.Fatalf("parse instance id: %v", err)
	}
	if id.Version() != 7 {
		t.Fatalf("expected version 7, got %d", id.Version())
	}
}

func TestRequestIDs(t *testing.T) {
	seen := map[string]bool{}
	prev := ""
	for i := 0; i < 100; i++ {
		id := idgen.Request()
		if !ulidPattern.MatchString(id) {
			t.Fatalf("unexpected request id %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate request id %q", id)
		}
		seen[id] = true
		if prev != "" && id[:10] < prev[:10] {
			t.Fatalf("timestamp went backwards: %s after %s", id, prev)
		}
		prev = id
	}
}
