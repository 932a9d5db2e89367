// Package ecs bridges cardtable interactions into a [Donburi] world.
//
// [NewDonburiSink] plugs into a Router as its EventSink. Every resolved
// click or drag is published to [InteractionEventType]; interactions on a
// [cardtable.Card] are also published to [CardEventType] and mirrored into a
// [CardState] component on one entity per card, so systems can query which
// cards are being dragged or how often each was clicked.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	table.Router().SetEventSink(sink)
//	ecs.CardEventType.Subscribe(world, onCard)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
