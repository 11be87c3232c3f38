// Command vehiclefactory runs the region vehicle factory demonstration
package main

import (
	"os"

	"github.com/vehiclefactory/vehiclefactory/pkg/cli"
)

var version = "dev"

func main() {
	cfg := cli.NewConfig()
	cfg.Version = version

	if err := cli.NewCLI(cfg).Execute(os.Args[1:]); err != nil {
		cli.PrintError(os.Stderr, err.Error())
		os.Exit(1)
	}
}
