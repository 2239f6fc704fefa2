package models

// HealthStatus is the body of GET /healthz.
type HealthStatus struct {
	// Status is "ok" when the database answered a ping and "unavailable" otherwise.
	Status string `json:"status"`

	// Version is the configured application version, omitted when unset.
	Version string `json:"version,omitempty"`
}
