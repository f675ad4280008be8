// Package main provides the entry point for the ecosse-setup CLI.
package main

import (
	"fmt"
	"os"

	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/cmd/ecosse-setup/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
