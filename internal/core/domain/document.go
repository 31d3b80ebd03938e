package domain

import (
	"encoding/json"
	"time"
)

// Fields holds the free-form attributes clients attach to stored documents
// beyond the ones the service understands.
type Fields map[string]any

// Without returns a copy of f with the given keys removed.
func (f Fields) Without(keys ...string) Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// String returns the value at key when it is a non-empty string.
func (f Fields) String(key string) string {
	s, _ := f[key].(string)
	return s
}

// flatten merges typed attributes over extra and encodes the result as a
// single JSON object, mirroring how the document is laid out in storage.
func flatten(extra Fields, typed map[string]any) ([]byte, error) {
	out := make(map[string]any, len(extra)+len(typed))
	for k, v := range extra {
		out[k] = v
	}
	for k, v := range typed {
		out[k] = v
	}
	return json.Marshal(out)
}

func jsonTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339Nano)
}
