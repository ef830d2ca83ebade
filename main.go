package main

import (
	"os"

	"github.com/oselot/stitchpath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
