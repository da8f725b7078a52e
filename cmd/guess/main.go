package main

import (
	"errors"
	"flag"
	"io/fs"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"guessing-toolbox/internal/cli"
	"guessing-toolbox/internal/config"
)

func main() {
	// 1. Parse command-line flags
	logLevel := flag.String("loglevel", "info", "Set logging level (debug, info, warn, error)")
	configPath := flag.String("config", "default_config.json", "Path to the benchmark configuration file")
	seed := flag.Int64("seed", 0, "Random seed (0 = time-based)")
	trials := flag.Int("trials", 0, "Override the configured trial count (0 = keep config)")
	flag.Parse()

	// 2. Set up top-level dependencies (Logger)
	log := logrus.New()
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, ForceColors: true})

	// 3. Load the benchmark configuration, falling back to the built-in
	// defaults when the default file is absent.
	benchConfig, err := config.Load(*configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && *configPath == "default_config.json" {
			log.Debugf("No %s found, using built-in defaults", *configPath)
			benchConfig = config.Default()
		} else {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	if *trials > 0 {
		benchConfig.Trials = *trials
	}

	// 4. Create the CLI, injecting the logger
	ui := cli.NewCLI(log)

	// 5. Run the application with a seeded random source for this run.
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	randSource := rand.New(rand.NewSource(*seed))
	if err := ui.Run(flag.Args(), benchConfig, randSource); err != nil {
		log.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
}
