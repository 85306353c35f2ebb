package main

import (
	"os"

	"tallybook/cmd/tallybook/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
