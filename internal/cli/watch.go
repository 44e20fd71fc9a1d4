package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/vsa-tools/holo/internal/config"
	"github.com/vsa-tools/holo/internal/demo"
	"github.com/vsa-tools/holo/internal/logger"
)

// debounce window for editors that emit several write events per save
const watchDebounce = 200 * time.Millisecond

func newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [config-file]",
		Short: "Re-run the demonstration when a config file changes",
		Long: `Watch a demonstration config file and re-run the HRR demonstration
whenever it is written, for live exploration of parameters like
dimensionality and the number of superposed bindings. Press Ctrl+C to stop.

Examples:
  holo watch .holo.yaml
  holo watch -o json experiments/superposed.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	filename := args[0]
	log := logger.New("watch", isVerbose)

	if _, err := os.Stat(filename); err != nil {
		return fmt.Errorf("cannot watch %s: %w", filename, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer cleanupWatcher(watcher, log)

	if err := watcher.Add(filename); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filename, err)
	}

	// Initial run before the first change.
	if err := runWatchedDemo(cmd, filename, log); err != nil {
		log.Error("demonstration failed: %v", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	fmt.Fprintf(os.Stderr, "Watching %s for changes (Ctrl+C to stop)...\n", filename)

	var lastRun time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if time.Since(lastRun) < watchDebounce {
				continue
			}
			lastRun = time.Now()

			log.Debug("config changed: %s", event.Name)
			if err := runWatchedDemo(cmd, filename, log); err != nil {
				log.Error("demonstration failed: %v", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error: %v", err)

		case <-sigCh:
			fmt.Fprintln(os.Stderr, "\nStopped watching.")
			return nil
		}
	}
}

// runWatchedDemo loads the watched config file, runs the demonstration and
// prints the formatted report.
func runWatchedDemo(cmd *cobra.Command, filename string, log *logger.Logger) error {
	cfg, err := config.NewLoader().LoadConfig(filename)
	if err != nil {
		return err
	}

	start := time.Now()
	report, err := demo.NewRunner(cfg.Demo, log.WithComponent("demo")).Run()
	if err != nil {
		return err
	}
	log.InfoWithFields("demonstration re-run", []logger.Field{logger.Duration(time.Since(start))})

	output, err := formatReport(cfg, report)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(output)
	return err
}

// cleanupWatcher safely closes the watcher with error logging.
func cleanupWatcher(watcher *fsnotify.Watcher, log *logger.Logger) {
	if err := watcher.Close(); err != nil {
		log.Warn("failed to close watcher: %v", err)
	}
}
