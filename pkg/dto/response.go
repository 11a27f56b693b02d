package dto

// Envelope is the uniform success shape: {"success": true, "data": …}.
// Deletes omit data entirely.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

func Success(data any) Envelope {
	return Envelope{Success: true, Data: data}
}
