//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"
)

// DtoMap turns a request DTO into its JSON map form and applies the
// given mutations, so a test can start from a valid payload and break
// one field at a time.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal dto: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal dto: %v", err)
	}
	for _, f := range muts {
		f(m)
	}
	return m
}
