package main

import (
	"github.com/sweepproject/sweep/cmd/sweepctl/cmd"
	"github.com/sweepproject/sweep/internal/common"
)

func main() {
	common.ConfigureCommandLineLogging()
	cmd.Execute()
}
