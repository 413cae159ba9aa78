package entity

type EventType string

const (
	EventSessionStarted   EventType = "session_started"
	EventPlayerJoined     EventType = "player_joined"
	EventRoundStarted     EventType = "round_started"
	EventShoeReplenished  EventType = "shoe_replenished"
	EventBetPlaced        EventType = "bet_placed"
	EventSatOut           EventType = "sat_out"
	EventHandDealt        EventType = "hand_dealt"
	EventInsurancePlaced  EventType = "insurance_placed"
	EventTurnStarted      EventType = "turn_started"
	EventSplit            EventType = "split"
	EventDoubleDown       EventType = "double_down"
	EventCardDrawn        EventType = "card_drawn"
	EventHandFinal        EventType = "hand_final"
	EventDealerRevealed   EventType = "dealer_revealed"
	EventInsuranceSettled EventType = "insurance_settled"
	EventDealerDecision   EventType = "dealer_decision"
	EventHandSettled      EventType = "hand_settled"
	EventRoundEnded       EventType = "round_ended"
	EventSessionEnded     EventType = "session_ended"
)

// Event is a structured notification for the presentation layer. Only the
// fields relevant to Type are set.
type Event struct {
	Type      EventType
	SessionID string
	RoundID   string
	Round     int
	Player    string
	Dealer    bool
	HandIndex int
	Split     bool
	Cards     []Card
	Point     Point
	HandType  HandType
	Hidden    bool
	Amount    int64
	Balance   int64
	Outcome   Outcome
	Decision  Decision
	Created   bool
	Reason    string
}

// Fields flattens the event into plain values for encoders.
func (e Event) Fields() map[string]interface{} {
	f := map[string]interface{}{
		"type": string(e.Type),
	}
	if e.SessionID != "" {
		f["session_id"] = e.SessionID
	}
	if e.RoundID != "" {
		f["round_id"] = e.RoundID
		f["round"] = e.Round
	}
	if e.Player != "" {
		f["player"] = e.Player
		f["dealer"] = e.Dealer
	}
	switch e.Type {
	case EventHandDealt, EventSplit, EventDoubleDown, EventCardDrawn, EventHandFinal, EventDealerRevealed, EventHandSettled, EventTurnStarted:
		f["hand"] = e.HandIndex
		f["cards"] = toAnySlice(Labels(e.Cards))
		if !e.Hidden {
			f["total"] = e.Point.Total
			f["hand_type"] = e.HandType.String()
		}
		f["hidden"] = e.Hidden
	}
	switch e.Type {
	case EventBetPlaced, EventInsurancePlaced, EventDoubleDown, EventSplit, EventInsuranceSettled, EventHandSettled, EventPlayerJoined, EventSatOut, EventSessionEnded:
		f["amount"] = e.Amount
		f["balance"] = e.Balance
	}
	switch e.Type {
	case EventHandSettled:
		f["outcome"] = e.Outcome.String()
	case EventInsuranceSettled:
		f["won"] = e.Amount > 0
	case EventDealerDecision:
		f["decision"] = e.Decision.String()
	case EventPlayerJoined:
		f["created"] = e.Created
	}
	if e.Reason != "" {
		f["reason"] = e.Reason
	}
	return f
}

func toAnySlice(in []string) []interface{} {
	out := make([]interface{}, 0, len(in))
	for _, s := range in {
		out = append(out, s)
	}
	return out
}
