//go:build unit || e2e

package testutil

// Field overrides one key of a DtoMap body. A nil value removes the key,
// which is how required-field cases are built.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
