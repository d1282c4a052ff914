// Package main is the entry point for the catalog fixture server.
package main

import (
	"os"

	"github.com/donaldgifford/storefront-discovery/cmd/catalog-server/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
