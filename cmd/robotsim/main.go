package main

import (
	"os"

	"robotsim/cmd/robotsim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
