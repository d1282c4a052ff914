// Package main is the entry point for the spd storefront discovery CLI.
package main

import (
	"github.com/donaldgifford/storefront-discovery/cmd/spd/cmd"
)

func main() {
	cmd.Execute()
}
