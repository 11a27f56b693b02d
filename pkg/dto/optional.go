package dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

// OptionalUUID distinguishes an absent JSON field from an explicit null.
// Set is true whenever the field appeared in the payload; Value is nil for
// a null. Tag fields with omitzero so unset values round-trip as absent.
type OptionalUUID struct {
	Set   bool
	Value *uuid.UUID
}

func (o OptionalUUID) IsZero() bool {
	return !o.Set
}

func (o OptionalUUID) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Value)
}

func (o *OptionalUUID) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}
