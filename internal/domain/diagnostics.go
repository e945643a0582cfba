package domain

import "context"

// Diagnostics is the payload of GET /test.
type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// StoreEnv reports which store settings were provided, without their values.
type StoreEnv struct {
	URLSet  bool
	NameSet bool
}

type HealthUsecase interface {
	// Diagnose never fails; errors are reported inside the payload.
	Diagnose(ctx context.Context) Diagnostics
}
