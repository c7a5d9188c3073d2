package main

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/subcue/subcue/internal/edit"
	"github.com/subcue/subcue/pkg/caption"
)

var (
	repairWrite    bool
	repairParallel int
)

var repairCmd = &cobra.Command{
	Use:   "repair <snapshot.json> [more...]",
	Short: "Fix timing invariants in document snapshots",
	Long: `Repair checks each snapshot for duplicate frame ids, out-of-order or
overlapping frame windows, and word timings outside their frame, and fixes
what it finds. Files are processed concurrently. Without --write the fixes
are only reported, not saved.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, ctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(repairParallel)

		var mu sync.Mutex
		total := 0

		for _, path := range args {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				doc, err := caption.LoadFile(path)
				if err != nil {
					return err
				}
				repaired, adjusted := edit.RepairDocument(doc)
				if adjusted == 0 {
					slog.Info("snapshot clean", "path", path)
					return nil
				}
				slog.Info("snapshot repaired", "path", path, "adjustments", adjusted)
				mu.Lock()
				total += adjusted
				mu.Unlock()
				if repairWrite {
					return caption.SaveFile(path, repaired)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d adjustment(s) across %d file(s)\n", total, len(args))
		if total > 0 && !repairWrite {
			fmt.Fprintln(cmd.OutOrStdout(), "re-run with --write to save the fixes")
		}
		return nil
	},
}

func init() {
	repairCmd.Flags().BoolVarP(&repairWrite, "write", "w", false, "save repaired snapshots in place")
	repairCmd.Flags().IntVarP(&repairParallel, "parallel", "p", 4, "max files repaired concurrently")
	rootCmd.AddCommand(repairCmd)
}
