package main

import (
	"os"

	"github.com/azure/draftwrapper/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
