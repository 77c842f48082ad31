package plugins

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/0rca/buildergen/config"
	"github.com/0rca/buildergen/introspection"
	"github.com/0rca/buildergen/plugins/buildergen"
)

func GenerateCode(ctx context.Context, cfg *config.Config, pkg *introspection.Package, logger *zap.Logger) error {
	////////////////////////////////////////////////////////////////////////////////////////////////////////////////////
	// buildergen Plugin

	if cfg.Output.IsDefined() {
		builderGen := buildergen.New(cfg, pkg, logger)
		if err := builderGen.Generate(ctx); err != nil {
			return fmt.Errorf("%s failed: %w", builderGen.Name(), err)
		}
	}

	return nil
}
