package models

import "fmt"

// AttrKind classifies a named attribute on an entity. Property endpoints
// only resolve AttrEntity attributes; scalars and collections are rejected
// with an explicit error instead of being serialized.
type AttrKind int

const (
	AttrScalar AttrKind = iota
	AttrEntity
	AttrCollection
)

// InvalidAttributeError reports a field name the entity does not accept.
type InvalidAttributeError struct {
	Name string
}

func (e *InvalidAttributeError) Error() string {
	return fmt.Sprintf("invalid attribute: %s", e.Name)
}

// InvalidValueError reports a patch value whose JSON type does not match
// the target field.
type InvalidValueError struct {
	Name string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for attribute: %s", e.Name)
}

// Patchable is implemented by every entity. SetAttr assigns one named
// field and fails for names outside the entity's patchable set.
type Patchable interface {
	SetAttr(name string, value any) error
}

// ApplyPatch assigns a field map onto an entity, stopping at the first
// unknown key or mismatched value. Nothing is persisted here; the caller
// saves only when the whole map applied cleanly.
func ApplyPatch(e Patchable, fields map[string]any) error {
	for key, value := range fields {
		if err := e.SetAttr(key, value); err != nil {
			return err
		}
	}
	return nil
}

// JSON numbers decode as float64, so foreign keys in request bodies arrive
// that way. Negative and fractional values are rejected.
func toUint(v any) (uint, bool) {
	switch n := v.(type) {
	case float64:
		if n < 0 || n != float64(uint(n)) {
			return 0, false
		}
		return uint(n), true
	case int:
		if n < 0 {
			return 0, false
		}
		return uint(n), true
	case uint:
		return n, true
	}
	return 0, false
}
