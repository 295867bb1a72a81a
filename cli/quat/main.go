// Package main is the quat CLI command itself.
package main

import (
	"log"
	"os"

	quatcli "go.viam.com/ikmath/cli"
)

func main() {
	app := quatcli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
