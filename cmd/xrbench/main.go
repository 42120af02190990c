// xrbench drives the CryptoXR primitives: throughput and cycles-per-byte
// benchmarks, the timing-leak harness, and the library self-tests.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Copyright © 2026 The CryptoXR Authors. Licensed under the Apache-2.0 license.

var rootCmd = &cobra.Command{
	Use:           "xrbench",
	Short:         "Benchmark and verification driver for the CryptoXR primitives",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("xrbench failed")
		os.Exit(1)
	}
}
