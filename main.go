package main

import (
	"fmt"
	"os"

	"github.com/zeu5/robby-rl/benchmarks"
)

// main entry point, trains the robot with the parameters given on the command line
func main() {
	rootCommand := benchmarks.GetRootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
