package main

import (
	"fmt"
	"os"

	"github.com/AEPP294/jetson-stats/cmd/jtopplot/cmd"
)

func main() {
	if err := cmd.RootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
