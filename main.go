package main

import (
	"fmt"
	"os"

	"github.com/ranfysvalle02/secure-llm-output/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
