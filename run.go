package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/0rca/buildergen/config"
	"github.com/0rca/buildergen/plugins"
)

func run(ctx context.Context, logger *zap.Logger, cfgFile string) error {
	if cfgFile == "" {
		found, err := config.FindConfigFile(".", config.DefaultFilenames)
		if err != nil {
			return fmt.Errorf("failed to find config file: %w", err)
		}
		cfgFile = found
	}

	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config file: %w", err)
	}
	logger.Debug("loaded config", zap.String("file", cfgFile), zap.String("missing", string(cfg.Missing)))

	pkg, err := cfg.LoadDescription()
	if err != nil {
		return fmt.Errorf("failed to load types: %w", err)
	}
	logger.Debug("loaded types", zap.String("package", pkg.Name), zap.Int("types", len(pkg.Structs)))

	if err := plugins.GenerateCode(ctx, cfg, pkg, logger); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}
	return nil
}
