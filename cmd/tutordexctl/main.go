// Package main is the entry point for the tutordex operations CLI.
package main

import (
	"os"

	"github.com/kailas-cloud/tutordex/cmd/tutordexctl/app"
)

func main() {
	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
