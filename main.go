// main.go
//
// Minimal entry point that delegates CLI handling to the Cobra root command in cmd/

package main

import (
	"github.com/inference-sim/boarding-sim/cmd"
)

func main() {
	cmd.Execute()
}
