package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/boarding-sim/storage"
)

var (
	historyDB     string
	historyLimit  int
	historyPolicy string
)

// historyCmd lists stored episode results
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List episode results stored by run --results-db",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()

		if _, err := os.Stat(historyDB); err != nil {
			logrus.Fatalf("Results database %s: %v", historyDB, err)
		}
		db, err := storage.InitSQLite(historyDB)
		if err != nil {
			logrus.Fatalf("Failed to open results database: %v", err)
		}
		defer db.Close()
		repo := storage.NewEpisodeRepository(db)

		if err := writeHistory(context.Background(), os.Stdout, repo, historyLimit, historyPolicy, numRows, seatsPerRow); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

// writeHistory prints the latest limit episodes, or the best stored episode
// of policyName on a rows x seats cabin when policyName is set.
func writeHistory(ctx context.Context, w io.Writer, repo *storage.EpisodeRepository, limit int, policyName string, rows, seats int) error {
	if policyName != "" {
		best, err := repo.Best(ctx, policyName, rows, seats)
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Fprintf(w, "No stored %s episodes on a %dx%d cabin\n", policyName, rows, seats)
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "=== Best Episode ===")
		writeRecord(w, *best)
		return nil
	}

	records, err := repo.List(ctx, limit)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "=== Episode History (%d) ===\n", len(records))
	for _, r := range records {
		writeRecord(w, r)
	}
	return nil
}

func writeRecord(w io.Writer, r storage.EpisodeRecord) {
	fmt.Fprintf(w, "%s  %s  %-13s %dx%d seed=%d decisions=%d ticks=%d reward=%.2f\n",
		r.CreatedAt.Format("2006-01-02 15:04:05"), r.ID, r.Policy, r.NumRows, r.SeatsPerRow,
		r.Seed, r.Decisions, r.Ticks, r.TotalReward)
}

func init() {
	historyCmd.Flags().StringVar(&historyDB, "results-db", "boarding.db", "SQLite file written by run --results-db")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Number of most recent episodes to list")
	historyCmd.Flags().StringVar(&historyPolicy, "best", "", "Show only the best episode of this policy")
	historyCmd.Flags().IntVar(&numRows, "rows", 10, "Cabin rows used with --best")
	historyCmd.Flags().IntVar(&seatsPerRow, "seats", 6, "Seats per row used with --best")

	rootCmd.AddCommand(historyCmd)
}
