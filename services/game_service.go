package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tylacb11-spec/lienquan-sub000/engine"
	"github.com/tylacb11-spec/lienquan-sub000/models"
	"github.com/tylacb11-spec/lienquan-sub000/repositories"
	"github.com/tylacb11-spec/lienquan-sub000/season"
)

const maxSaveSlots = 5

// Broadcaster pushes engine events to whoever is watching a save slot.
// The websocket hub implements it; tests use a nop.
type Broadcaster interface {
	BroadcastNews(room string, item models.NewsItem)
	BroadcastToast(room string, message, severity string)
}

type NopBroadcaster struct{}

func (NopBroadcaster) BroadcastNews(string, models.NewsItem) {}
func (NopBroadcaster) BroadcastToast(string, string, string) {}

// GameService is the boundary between the host surface and the season
// engine: it loads a world snapshot, runs exactly one engine call on it
// and persists the replacement snapshot. Calls for the same save must be
// serialized by the caller; snapshots make a failed call harmless.
type GameService interface {
	NewGame(ctx context.Context, userID, slot int, region, teamName string) (*models.World, error)
	State(ctx context.Context, userID, slot int) (*models.World, error)
	Advance(ctx context.Context, userID, slot int) (*models.World, *season.StepResult, error)
	ResolvePending(ctx context.Context, userID, slot int, picks []int) (*models.World, error)
	SetLineup(ctx context.Context, userID, slot int, playerIDs []int) error
	ReleasePlayer(ctx context.Context, userID, slot, playerID int) error
	SignPlayer(ctx context.Context, userID, slot, playerID int) error
	UpgradeStaff(ctx context.Context, userID, slot int) error
}

type gameService struct {
	saveRepo  repositories.SaveRepository
	rng       engine.Rand
	log       *slog.Logger
	broadcast Broadcaster
}

func NewGameService(saveRepo repositories.SaveRepository, rng engine.Rand, log *slog.Logger, broadcast Broadcaster) GameService {
	if log == nil {
		log = slog.Default()
	}
	if broadcast == nil {
		broadcast = NopBroadcaster{}
	}
	return &gameService{saveRepo: saveRepo, rng: rng, log: log, broadcast: broadcast}
}

// SaveRoom names the websocket room of one save slot.
func SaveRoom(userID, slot int) string {
	return fmt.Sprintf("save_%d_%d", userID, slot)
}

// machineFor binds a fresh machine to the save's broadcast room. Machines
// are stateless, so building one per call is cheap.
func (s *gameService) machineFor(userID, slot int) *season.Machine {
	room := SaveRoom(userID, slot)
	return season.NewMachine(s.rng, s.log,
		newsBroadcast{broadcast: s.broadcast, room: room},
		toastBroadcast{broadcast: s.broadcast, room: room})
}

type newsBroadcast struct {
	broadcast Broadcaster
	room      string
}

func (b newsBroadcast) Emit(item models.NewsItem) {
	b.broadcast.BroadcastNews(b.room, item)
}

type toastBroadcast struct {
	broadcast Broadcaster
	room      string
}

func (b toastBroadcast) Notify(message, severity string) {
	b.broadcast.BroadcastToast(b.room, message, severity)
}

func (s *gameService) NewGame(ctx context.Context, userID, slot int, region, teamName string) (*models.World, error) {
	if slot < 1 || slot > maxSaveSlots {
		return nil, ErrSlotRange
	}
	world, err := season.GenerateWorld(s.rng, region, teamName)
	if err != nil {
		return nil, ErrUnknownRegion
	}
	if err := s.store(ctx, userID, slot, world); err != nil {
		return nil, err
	}
	s.log.Info("new game created",
		slog.Int("user_id", userID),
		slog.Int("slot", slot),
		slog.String("region", region))
	return world, nil
}

func (s *gameService) State(ctx context.Context, userID, slot int) (*models.World, error) {
	return s.load(ctx, userID, slot)
}

func (s *gameService) Advance(ctx context.Context, userID, slot int) (*models.World, *season.StepResult, error) {
	world, err := s.load(ctx, userID, slot)
	if err != nil {
		return nil, nil, err
	}
	next, res, err := s.machineFor(userID, slot).Advance(world)
	if err != nil {
		return nil, nil, fmt.Errorf("advance save %d/%d: %w", userID, slot, err)
	}
	if err := s.store(ctx, userID, slot, next); err != nil {
		return nil, nil, err
	}
	return next, res, nil
}

func (s *gameService) ResolvePending(ctx context.Context, userID, slot int, picks []int) (*models.World, error) {
	world, err := s.load(ctx, userID, slot)
	if err != nil {
		return nil, err
	}
	// nil picks means auto-pick; explicit picks must cover the lineup.
	human := world.HumanTeam()
	if picks != nil && human != nil && len(picks) != len(human.Lineup()) {
		return nil, ErrInvalidPicks
	}
	next, _, err := s.machineFor(userID, slot).ResolveHuman(world, picks)
	if err != nil {
		return nil, ErrNoPendingMatch
	}
	if err := s.store(ctx, userID, slot, next); err != nil {
		return nil, err
	}
	return next, nil
}

// mutate runs a world operation that does not need the machine, storing
// the result only on success.
func (s *gameService) mutate(ctx context.Context, userID, slot int, op func(*models.World) error) error {
	world, err := s.load(ctx, userID, slot)
	if err != nil {
		return err
	}
	next := world.Clone()
	if err := op(next); err != nil {
		return err
	}
	return s.store(ctx, userID, slot, next)
}

func (s *gameService) SetLineup(ctx context.Context, userID, slot int, playerIDs []int) error {
	return s.mutate(ctx, userID, slot, func(w *models.World) error {
		return SetLineup(w, playerIDs)
	})
}

func (s *gameService) ReleasePlayer(ctx context.Context, userID, slot, playerID int) error {
	return s.mutate(ctx, userID, slot, func(w *models.World) error {
		return ReleasePlayer(w, playerID)
	})
}

func (s *gameService) SignPlayer(ctx context.Context, userID, slot, playerID int) error {
	return s.mutate(ctx, userID, slot, func(w *models.World) error {
		return SignPlayer(w, playerID)
	})
}

func (s *gameService) UpgradeStaff(ctx context.Context, userID, slot int) error {
	return s.mutate(ctx, userID, slot, func(w *models.World) error {
		return UpgradeStaff(w)
	})
}

func (s *gameService) load(ctx context.Context, userID, slot int) (*models.World, error) {
	world, err := s.saveRepo.Get(ctx, userID, slot)
	if err != nil {
		if errors.Is(err, repositories.ErrSaveNotFound) {
			return nil, ErrSaveNotFound
		}
		return nil, fmt.Errorf("load save %d/%d: %w", userID, slot, err)
	}
	return world, nil
}

func (s *gameService) store(ctx context.Context, userID, slot int, world *models.World) error {
	label := fmt.Sprintf("Year %d, %s, week %d", world.Year, world.Split, world.Week)
	if err := s.saveRepo.Upsert(ctx, userID, slot, label, world); err != nil {
		return fmt.Errorf("store save %d/%d: %w", userID, slot, err)
	}
	return nil
}
