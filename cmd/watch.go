package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/cssel/internal/config"
	"github.com/conneroisu/cssel/internal/errors"
	"github.com/conneroisu/cssel/internal/logging"
	"github.com/conneroisu/cssel/internal/server"
	"github.com/conneroisu/cssel/internal/stylesheet"
	"github.com/conneroisu/cssel/internal/validation"
	"github.com/conneroisu/cssel/internal/watcher"
)

var (
	watchFlags *StandardFlags
	watchServe bool
)

// watchCmd re-renders a document when it changes.
var watchCmd = &cobra.Command{
	Use:   "watch <document.yaml>",
	Short: "Re-render a document whenever it changes",
	Long: `Watch a YAML stylesheet document and re-render it on every change.

Without --serve the rendered CSS is written to the output file (or
stdout) after each change. With --serve a preview server hosts the
rendered CSS and pushes a reload notification to connected browsers on
each successful re-render.

Examples:
  cssel watch styles.yaml -o dist/site.css
  cssel watch styles.yaml --serve --port 3000`,
	Aliases: []string{"w"},
	Args:    cobra.ExactArgs(1),
	RunE:    runWatchCommand,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchFlags = AddStandardFlags(watchCmd, "render", "server")
	watchCmd.Flags().BoolVar(&watchServe, "serve", false, "Serve rendered CSS with live reload")
}

func runWatchCommand(cmd *cobra.Command, args []string) error {
	docPath := args[0]
	if err := validation.ValidatePath(docPath); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "config_invalid", "failed to load config")
	}
	if flagChanged(cmd.Flags(), "port") {
		cfg.Server.Port = watchFlags.Port
	}
	if flagChanged(cmd.Flags(), "host") {
		cfg.Server.Host = watchFlags.Host
	}

	logger := logging.NewLogger(logging.Options{
		Level: logging.ParseLevel(viper.GetString("log-level")),
	}).WithComponent("watch")

	opts := renderOptions(cmd, cfg, watchFlags)

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var preview *server.PreviewServer
	if watchServe {
		preview = server.New(cfg, logger)
	}

	// emit publishes one rendered result.
	emit := func(css string) error {
		if preview != nil {
			preview.SetCSS(ctx, css)
			return nil
		}
		if watchFlags.OutputFile != "" {
			if err := os.WriteFile(watchFlags.OutputFile, []byte(css), 0o644); err != nil {
				return errors.NewIOError("write_failed", "cannot write output file", err)
			}
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), css)

		return nil
	}

	render := func() error {
		css, err := renderDocument(docPath, opts)
		if err != nil {
			return err
		}

		return emit(css)
	}

	// Initial render before watching; a broken document should fail fast.
	if err := render(); err != nil {
		return err
	}

	fw, err := watcher.NewFileWatcher(time.Duration(cfg.Watch.DebounceMs) * time.Millisecond)
	if err != nil {
		return errors.NewInternalError("watcher_failed", "cannot create file watcher", err)
	}
	defer fw.Stop()

	// Watch the directory: editors often replace the file on save, which
	// would invalidate a watch on the file itself.
	absPath, err := filepath.Abs(docPath)
	if err != nil {
		return errors.NewIOError("resolve_failed", "cannot resolve document path", err)
	}

	fw.AddFilter(func(path string) bool {
		resolved, err := filepath.Abs(path)
		return err == nil && resolved == absPath
	})
	fw.AddHandler(func(events []watcher.ChangeEvent) error {
		logger.Info(ctx, "document changed", "events", len(events))

		if err := render(); err != nil {
			// Keep watching; the user can fix the document and save again.
			logger.Error(ctx, err, "re-render failed")
		}

		return nil
	})

	if err := fw.AddPath(filepath.Dir(absPath)); err != nil {
		return errors.NewIOError("watch_failed", "cannot watch document directory", err)
	}

	watchErrs := make(chan error, 8)
	go fw.Start(ctx, watchErrs)
	go func() {
		for err := range watchErrs {
			logger.Warn(ctx, err, "watch error")
		}
	}()

	logger.Info(ctx, "watching document", "path", docPath)

	if preview != nil {
		return preview.Start(ctx)
	}

	<-ctx.Done()

	return nil
}
