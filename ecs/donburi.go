package ecs

import (
	"github.com/phanxgames/cardtable"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// InteractionEventType carries every resolved interaction, for any object.
var InteractionEventType = events.NewEventType[cardtable.InteractionEvent]()

// CardEvent is an interaction that resolved to a card.
type CardEvent struct {
	Type cardtable.EventType
	Card *cardtable.Card
	Key  string         // asset key of the visible side
	Pos  cardtable.Vec2 // card position after the router dispatched
	X, Y float64        // pointer, canvas-local
}

// CardEventType carries interactions on cards only.
var CardEventType = events.NewEventType[CardEvent]()

// CardState mirrors a card that has been interacted with.
type CardState struct {
	Card     *cardtable.Card
	Pos      cardtable.Vec2
	Dragging bool
	Clicks   int
	Drops    int
}

// CardComponent holds a CardState on the card's entity.
var CardComponent = donburi.NewComponentType[CardState]()

var cardQuery = donburi.NewQuery(filter.Contains(CardComponent))

// DonburiSink forwards router events into a Donburi world. Every event is
// published to InteractionEventType. Events on cards are also published to
// CardEventType and folded into the card's CardComponent, creating the
// entity on first contact.
type DonburiSink struct {
	world    donburi.World
	entities map[*cardtable.Card]donburi.Entity
}

// NewDonburiSink creates a sink backed by world.
func NewDonburiSink(world donburi.World) *DonburiSink {
	return &DonburiSink{
		world:    world,
		entities: make(map[*cardtable.Card]donburi.Entity),
	}
}

// EmitEvent implements cardtable.EventSink.
func (s *DonburiSink) EmitEvent(event cardtable.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)

	card, ok := event.Object.(*cardtable.Card)
	if !ok {
		return
	}
	s.track(card, event)

	key := cardtable.BackKey
	if card.FaceUp {
		key = cardtable.CardKey(card.Rank, card.Suit)
	}
	CardEventType.Publish(s.world, CardEvent{
		Type: event.Type,
		Card: card,
		Key:  key,
		Pos:  card.Position(),
		X:    event.X,
		Y:    event.Y,
	})
}

func (s *DonburiSink) track(card *cardtable.Card, event cardtable.InteractionEvent) {
	entry := s.entry(card)
	st := CardComponent.Get(entry)
	st.Pos = card.Position()
	switch event.Type {
	case cardtable.EventClick:
		st.Clicks++
	case cardtable.EventDragStart, cardtable.EventDrag:
		st.Dragging = true
	case cardtable.EventDragEnd:
		st.Dragging = false
		st.Drops++
	}
}

func (s *DonburiSink) entry(card *cardtable.Card) *donburi.Entry {
	if e, ok := s.entities[card]; ok && s.world.Valid(e) {
		return s.world.Entry(e)
	}
	e := s.world.Create(CardComponent)
	entry := s.world.Entry(e)
	CardComponent.SetValue(entry, CardState{Card: card})
	s.entities[card] = e
	return entry
}

// Entity returns the entity tracking card, if the card has been touched.
func (s *DonburiSink) Entity(card *cardtable.Card) (donburi.Entity, bool) {
	e, ok := s.entities[card]
	if !ok || !s.world.Valid(e) {
		return 0, false
	}
	return e, true
}

// Dragged returns the cards currently being dragged.
func (s *DonburiSink) Dragged() []*cardtable.Card {
	var out []*cardtable.Card
	cardQuery.Each(s.world, func(entry *donburi.Entry) {
		if st := CardComponent.Get(entry); st.Dragging {
			out = append(out, st.Card)
		}
	})
	return out
}
