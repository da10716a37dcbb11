package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/charlievieth/dynkin"
)

// initLogger configures the global zap logger. Diagnostics go to stderr so
// they never interleave with the result lines on stdout.
func initLogger(verbose bool) error {
	var config zap.Config
	if term.IsTerminal(int(os.Stderr.Fd())) {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}
	config.OutputPaths = []string{"stderr"}
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger.WithOptions(zap.AddStacktrace(zap.ErrorLevel)))
	return nil
}

func realMain(maxN, threads int, log *zap.Logger) error {
	for n := 0; n <= maxN; n++ {
		start := time.Now()
		count := dynkin.CountWorkers(n, threads)
		log.Debug("enumerated",
			zap.Int("n", n),
			zap.Uint64("count", count),
			zap.Duration("elapsed", time.Since(start)))
		if _, err := fmt.Printf("%d %d\n", n, count); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	cmd := cobra.Command{
		Use:   "dynkin",
		Short: "Count the Dynkin (λ) systems on ground sets of size 0..N",
		Args:  cobra.NoArgs,
	}
	ff := cmd.Flags()
	maxN := ff.IntP("max-n", "n", 6,
		"largest ground set size to enumerate")
	threads := ff.IntP("threads", "t", 0,
		"worker goroutines for the top-level split (0 = GOMAXPROCS)")
	verbose := ff.BoolP("verbose", "v", false, "enable debug logging")
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if *maxN < 0 || *maxN > dynkin.MaxN {
			return fmt.Errorf(`invalid argument "max-n": %d not in range [0, %d]`,
				*maxN, dynkin.MaxN)
		}
		if *threads < 0 {
			return fmt.Errorf(`invalid argument "threads": %d`, *threads)
		}
		cmd.SilenceUsage = true
		if err := initLogger(*verbose); err != nil {
			return err
		}
		logger := zap.L().Named("dynkin")
		ff.Visit(func(f *pflag.Flag) {
			logger.Debug("flag", zap.String("name", f.Name),
				zap.String("value", f.Value.String()))
		})
		workers := *threads
		if workers == 0 {
			workers = runtime.GOMAXPROCS(0)
		}
		logger.Debug("starting", zap.Int("max_n", *maxN), zap.Int("workers", workers))
		return realMain(*maxN, workers, logger)
	}
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
