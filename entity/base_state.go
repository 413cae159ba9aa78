package entity

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

const (
	MinPlayers = 1
	MaxPlayers = 4
)

// baseTableState keeps the seated players in turn order, keyed by name.
type baseTableState struct {
	MinPlayers int
	MaxPlayers int
	Players    *linkedhashmap.Map
}

func newBaseTableState(maxPlayers int) baseTableState {
	if maxPlayers <= 0 {
		maxPlayers = MaxPlayers
	}
	return baseTableState{
		MinPlayers: MinPlayers,
		MaxPlayers: maxPlayers,
		Players:    linkedhashmap.New(),
	}
}

func (s *baseTableState) AddPlayer(p *Participant) error {
	if p == nil || p.IsDealer() {
		return fmt.Errorf("seat participant: %w", ErrIllegalAction)
	}
	if _, found := s.Players.Get(p.Name()); found {
		return fmt.Errorf("seat %q twice: %w", p.Name(), ErrIllegalAction)
	}
	if s.Players.Size() >= s.MaxPlayers {
		return fmt.Errorf("seat %q at a full table of %d: %w", p.Name(), s.MaxPlayers, ErrIllegalAction)
	}
	s.Players.Put(p.Name(), p)
	return nil
}

func (s *baseTableState) RemovePlayer(name string) {
	s.Players.Remove(name)
}

func (s *baseTableState) GetPlayer(name string) *Participant {
	v, found := s.Players.Get(name)
	if !found {
		return nil
	}
	return v.(*Participant)
}

// GetPlayers returns the seated players in set-up order.
func (s *baseTableState) GetPlayers() []*Participant {
	players := make([]*Participant, 0, s.Players.Size())
	s.Players.Each(func(_ interface{}, value interface{}) {
		players = append(players, value.(*Participant))
	})
	return players
}

func (s *baseTableState) GetPlayerSize() int { return s.Players.Size() }

func (s *baseTableState) IsEnoughPlayer() bool { return s.Players.Size() >= s.MinPlayers }
