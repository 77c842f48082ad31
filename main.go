package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
)

const version = "0.1.0"

var (
	versionOption = flag.Bool("version", false, "buildergen version")
	verboseOption = flag.Bool("v", false, "enable debug logging")
	configOption  = flag.String("config", "", "path to the config file (default: searched upwards from the working directory)")
)

func main() {
	flag.Parse()

	if *versionOption {
		fmt.Printf("buildergen v%s\n", version)

		return
	}

	logger, err := newLogger(*verboseOption)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := run(ctx, logger, *configOption); err != nil {
		_ = logger.Sync()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	_ = logger.Sync()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
