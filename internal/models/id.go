package models

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

// idNamespace seeds the name-based UUIDs used as entity ids.
var idNamespace = uuid.MustParse("6f0d3c5e-8a4b-4c1e-9f6a-2b7d9e1c4a30")

// ContentID derives a stable id from the canonical JSON encoding of v.
// Equal content always yields the same id; kind keeps ids of different
// entity types apart.
func ContentID(kind string, v any) (string, error) {
	data, err := sonic.ConfigStd.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s for id: %w", kind, err)
	}
	name := append([]byte(kind+":"), data...)
	return uuid.NewSHA1(idNamespace, name).String(), nil
}
