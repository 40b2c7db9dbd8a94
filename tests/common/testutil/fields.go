//go:build unit || e2e

package testutil

// Field sets key to value in a payload map; a nil value removes the
// key entirely, which is how tests model an absent field.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
