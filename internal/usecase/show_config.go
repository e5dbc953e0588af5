package usecase

import (
	"context"

	"github.com/runoshun/goalkeeper/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct {
	IgnoreGlobal bool // Skip the global config when computing the effective config
	IgnoreData   bool // Skip the data dir config when computing the effective config
}

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	Effective    *domain.Config    // Merged configuration
	GlobalConfig domain.ConfigInfo // Global config file info
	DataConfig   domain.ConfigInfo // Data dir config file info
}

// ShowConfig displays configuration file information and the effective config.
type ShowConfig struct {
	configManager domain.ConfigManager
	configLoader  domain.ConfigLoader
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(configManager domain.ConfigManager, configLoader domain.ConfigLoader) *ShowConfig {
	return &ShowConfig{
		configManager: configManager,
		configLoader:  configLoader,
	}
}

// Execute retrieves configuration file information.
func (uc *ShowConfig) Execute(_ context.Context, in ShowConfigInput) (*ShowConfigOutput, error) {
	effective, err := uc.configLoader.LoadWithOptions(domain.LoadConfigOptions{
		IgnoreGlobal: in.IgnoreGlobal,
		IgnoreData:   in.IgnoreData,
	})
	if err != nil {
		return nil, err
	}
	return &ShowConfigOutput{
		Effective:    effective,
		GlobalConfig: uc.configManager.GetGlobalConfigInfo(),
		DataConfig:   uc.configManager.GetDataConfigInfo(),
	}, nil
}
