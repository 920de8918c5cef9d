// Lustre - a deterministic colour and glass material engine
//
// Lustre converts colours between perceptual colour spaces, measures
// contrast, and evaluates glass materials into renderable surface
// properties.
//
// Copyright (c) 2026 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/lustre/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
