package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/boarding-sim/envserver"
)

var serveAddr string

// serveCmd exposes the environment to an external decision client
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve boarding environments over WebSocket",
	Long: "Start a WebSocket server on --addr under /env. Every connection gets its own " +
		"simulation; the --config, --rows, --seats, --baggage-fraction and --seed flags set " +
		"the defaults a reset request may override.",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()

		cfg, err := resolveConfig(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := envserver.NewServer(cfg).ListenAndServe(ctx, serveAddr); err != nil {
			logrus.Fatalf("Server error: %v", err)
		}
		logrus.Info("Server stopped.")
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "localhost:8080", "Listen address")
	serveCmd.Flags().StringVar(&configPath, "config", "", "Path to a BoardingConfig YAML file; explicit flags override its values")
	serveCmd.Flags().IntVar(&numRows, "rows", 10, "Default number of cabin rows")
	serveCmd.Flags().IntVar(&seatsPerRow, "seats", 6, "Default seats per row")
	serveCmd.Flags().Float64Var(&baggageFraction, "baggage-fraction", 1.0, "Default probability that a passenger carries luggage")
	serveCmd.Flags().Int64Var(&seed, "seed", 42, "Default seed for baggage assignment")

	rootCmd.AddCommand(serveCmd)
}
