package main

import (
	"fmt"
	"os"
	"shopping-path-service/internal/cli"
	"shopping-path-service/internal/config"
)

var version = "dev"

func main() {
	config.LoadDotenv()
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
