// Command acotsp solves a TSP instance from a CSV distance table with
// MIN-MAX Ant Colony Optimization. All parameters come from a TOML config
// file; see config.go for the schema.
package main

import (
	"flag"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/schakalakka/Ant-Colony-Optimization/colony"
	"github.com/schakalakka/Ant-Colony-Optimization/csvdist"
	"github.com/schakalakka/Ant-Colony-Optimization/distmat"
)

func main() {
	configPath := flag.String("config", "acotsp.toml", "Path to configuration file")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	SetupLogger(cfg)

	grid, err := csvdist.LoadFile(cfg.CSVPath)
	if err != nil {
		log.Fatalf("Failed to load distance table %s: %v", cfg.CSVPath, err)
	}
	dist, err := distmat.New(grid)
	if err != nil {
		log.Fatalf("Invalid distance matrix: %v", err)
	}

	opts := cfg.Options()
	if cfg.LogEvery > 0 {
		every := cfg.LogEvery
		opts.OnIteration = func(iter int, iterBest, allTimeBest float64) {
			if (iter+1)%every == 0 {
				log.Infof("iteration %d: iteration best %.3f, all-time best %.3f", iter+1, iterBest, allTimeBest)
			}
		}
	}

	c, err := colony.New(dist, opts)
	if err != nil {
		log.Fatalf("Failed to construct colony: %v", err)
	}

	log.Infof("Solving %d-node instance: %d ants, top %d deposit, %d iterations, %d workers",
		dist.N(), opts.NrAnts, opts.NrBest, opts.NrIterations, opts.Parallelism)

	started := time.Now()
	res, err := c.Run()
	if err != nil {
		log.Fatalf("Run failed: %v", err)
	}

	log.Infof("Best tour length %.3f (found at iteration %d, elapsed %s)",
		res.Best.Length, res.BestIteration, time.Since(started).Round(time.Millisecond))
	log.Infof("Best tour: %v", res.Best.Vertices())
}
