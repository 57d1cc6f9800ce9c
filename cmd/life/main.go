package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"lifelab/internal/app"
	"lifelab/internal/core"
)

func main() {
	cfg, err := app.NewConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	session, err := app.NewSession(*cfg)
	if err != nil {
		log.Fatalf("session: %v", err)
	}
	session.Reseed()

	logger.Info("run started",
		"rows", cfg.Rows,
		"cols", cfg.Cols,
		"toroidal", cfg.Toroidal,
		"seed", cfg.Seed,
		"density", cfg.Density,
	)

	var pacer *core.FixedStep
	if cfg.Rate > 0 {
		pacer = core.NewFixedStep(cfg.Rate)
	}

	var last app.TickResult
	for done := 0; done < cfg.MaxGenerations; {
		if pacer != nil && !pacer.ShouldStep() {
			time.Sleep(time.Millisecond)
			continue
		}
		last = session.Tick()
		done++

		if last.Detected {
			logger.Info("period detected",
				"generation", last.Generation,
				"period", last.Period,
				"perturbations", last.Perturbations,
			)
		}
		if last.Died {
			logger.Info("grid died", "generation", last.Generation)
			break
		}
		if last.Settled {
			logger.Info("grid settled", "generation", last.Generation, "alive", last.Alive)
			break
		}
	}

	logger.Info("run finished", "generations", session.Generation(), "alive", last.Alive)
}
