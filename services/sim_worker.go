package services

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// AdvanceAll runs one advancement step on several save slots of one user
// concurrently. Each slot is an independent world, so the engine's
// no-concurrent-calls-per-world rule holds; this only parallelizes across
// worlds.
func AdvanceAll(ctx context.Context, game GameService, log *slog.Logger, userID int, slots []int) error {
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, slot := range slots {
		slot := slot
		g.Go(func() error {
			_, res, err := game.Advance(gCtx, userID, slot)
			if err != nil {
				return err
			}
			if res.Pending != nil && log != nil {
				log.Info("save awaits human input",
					slog.Int("user_id", userID),
					slog.Int("slot", slot),
					slog.Int("match_id", res.Pending.ID))
			}
			return nil
		})
	}
	return g.Wait()
}
