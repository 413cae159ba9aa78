package playerdb

import (
	"context"
	"fmt"
	"strings"

	"github.com/nk-nigeria/blackjack-cli/entity"
	"go.uber.org/zap"
)

// Registry turns stored records into seated players and back.
type Registry struct {
	store           Store
	startingBalance int64
	logger          *zap.Logger
}

func NewRegistry(store Store, startingBalance int64, logger *zap.Logger) *Registry {
	if startingBalance <= 0 {
		startingBalance = entity.DefaultStartingBalance
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		store:           store,
		startingBalance: startingBalance,
		logger:          logger,
	}
}

// LookupOrCreate returns the saved player with that name, or a new one with
// the starting balance. New players are only stored by SaveAll.
func (r *Registry) LookupOrCreate(ctx context.Context, name string) (*entity.Participant, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, fmt.Errorf("player name is required")
	}
	rec, found, err := r.store.Get(ctx, name)
	if err != nil {
		return nil, false, err
	}
	if found {
		r.logger.Debug("player found", zap.String("player", name), zap.Int64("balance", rec.Balance))
		return entity.NewPlayer(name, rec.Balance), false, nil
	}
	r.logger.Debug("player created", zap.String("player", name), zap.Int64("balance", r.startingBalance))
	return entity.NewPlayer(name, r.startingBalance), true, nil
}

// SaveAll upserts every player by name.
func (r *Registry) SaveAll(ctx context.Context, players []*entity.Participant) error {
	recs := make([]Record, 0, len(players))
	for _, p := range players {
		if p == nil || p.IsDealer() {
			continue
		}
		recs = append(recs, Record{Name: p.Name(), Balance: p.Balance()})
	}
	if err := r.store.PutAll(ctx, recs); err != nil {
		return err
	}
	r.logger.Info("roster saved", zap.Int("players", len(recs)))
	return nil
}

func (r *Registry) List(ctx context.Context) ([]Record, error) {
	return r.store.List(ctx)
}

func (r *Registry) Close() error {
	return r.store.Close()
}
