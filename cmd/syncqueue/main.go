package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-syncqueue/pkg/datastructs/queue"
	"github.com/huynhanx03/go-syncqueue/pkg/logger"
	"github.com/huynhanx03/go-syncqueue/pkg/queuelog"
	"github.com/huynhanx03/go-syncqueue/pkg/server"
	"github.com/huynhanx03/go-syncqueue/pkg/settings"
	"github.com/huynhanx03/go-syncqueue/pkg/workload"
)

const progName = "syncqueue"

var (
	version   string
	buildTime string
)

var v = settings.NewViper()

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("config", "c", "", "config file (yaml, json or toml)")
	runCmd.Flags().IntP("producers", "p", 1, "number of producer goroutines")
	runCmd.Flags().IntP("consumers", "n", 2, "number of consumer goroutines")
	runCmd.Flags().IntP("items", "i", 100, "items pushed by each producer")
	runCmd.Flags().StringP("listen", "l", "", "serve /stats on this host:port while running")
	runCmd.Flags().Bool("trace", false, "log every queue call at debug level")
	runCmd.Flags().Bool("debug", false, "enable debug logging")

	mustBind(v, "workload.producers", runCmd, "producers")
	mustBind(v, "workload.consumers", runCmd, "consumers")
	mustBind(v, "workload.items", runCmd, "items")
	mustBind(v, "workload.trace", runCmd, "trace")
	mustBind(v, "server.listen", runCmd, "listen")
}

func mustBind(v *viper.Viper, key string, cmd *cobra.Command, flag string) {
	if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		exit("Error returned from command", err)
	}
}

func exit(msg string, err error) {
	fmt.Fprintln(os.Stderr, "Exiting: "+msg+": "+err.Error())
	os.Exit(1)
}

var rootCmd = &cobra.Command{
	Use:           progName,
	Short:         "Blocking FIFO queue demo",
	Long:          `Runs concurrent producers and consumers against a blocking FIFO queue and logs every push, pop and wait.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version, buildTime)
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the producer/consumer workload",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		cfg, err := settings.Load(v, path)
		if err != nil {
			return err
		}
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			cfg.Logger.LogLevel = "debug"
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return run(ctx, cfg)
	},
}

func run(ctx context.Context, cfg *settings.Config) error {
	log, err := logger.New(cfg.Logger)
	if err != nil {
		return errors.Wrap(err, "failed to build logger")
	}
	defer func() { _ = log.Sync() }()

	q := queue.New(queue.WithObserver[int](queuelog.NewObserver[int](log)))

	g, gctx := errgroup.WithContext(ctx)
	serveCtx, stopServer := context.WithCancel(gctx)
	defer stopServer()

	if cfg.Server.Listen != "" {
		router := server.NewRouter(q, cfg.Server.Mode, log)
		g.Go(func() error {
			return server.Serve(serveCtx, cfg.Server.Listen, router, log)
		})
	}

	g.Go(func() error {
		defer stopServer()

		report, err := workload.Run(gctx, q, cfg.Workload, log)
		if err != nil {
			return err
		}
		log.Info("workload finished",
			zap.Int("pushed", report.Pushed),
			zap.Int("popped", report.Popped),
			zap.Int("duplicates", report.Duplicates),
			zap.Uint64("waits", report.Waits),
		)
		if report.Duplicates > 0 {
			return errors.Errorf("%d values were popped more than once", report.Duplicates)
		}
		return nil
	})

	return g.Wait()
}
