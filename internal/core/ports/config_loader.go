package ports

import "go.trai.ch/toolup/internal/core/domain"

// ConfigLoader defines the interface for loading the provisioning plan.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the plan file at the given path and returns a validated plan.
	Load(path string) (*domain.Plan, error)
}
