// Command hmmweather scores and decodes activity logs against the
// Rainy/Sunny hidden Markov model.
//
//	hmmweather                              # built-in demo
//	hmmweather evaluate Walk Clean
//	hmmweather decode --method trellis Shop,Clean,Walk
package main

import (
	"os"

	"github.com/katalvlaran/lvhmm/internal/cli"
	"github.com/katalvlaran/lvhmm/internal/logger"
)

func main() {
	if err := cli.Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}
