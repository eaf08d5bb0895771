package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gregLibert/bit-operation/pkg/cli"
)

var (
	Version  = "dev"
	CommitID = ""
)

func main() {
	c := cli.NewCli()
	c.SetVersion(printVersion())

	if err := c.Init(); err != nil {
		log.Fatalf("Error initializing bitop: %v", err)
	}
	c.AddCommands(cli.Commands)

	if err := c.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func printVersion() string {
	if CommitID == "" {
		return Version
	}
	return fmt.Sprintf("%s-%s", Version, CommitID)
}
