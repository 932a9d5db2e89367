// Package cardtable renders draggable, clickable playing cards with
// [Ebitengine].
//
// A [Table] owns three pieces:
//
//   - a [Registry] of objects, in registration (draw) order;
//   - a [Router], the pointer state machine that tells clicks from drags and
//     dispatches to the topmost object under the pointer;
//   - a [Loop], which on every display frame clears the canvas and calls
//     Update then Draw on each object in turn.
//
// # Quick start
//
//	table, err := cardtable.NewTable(cardtable.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	assets := cardtable.NewAssetCache(cardtable.NewFaceLoader(0, 0))
//	table.Add(cardtable.NewCard(cardtable.Vec2{X: 100, Y: 100}, cardtable.Ace, cardtable.Hearts, assets))
//	if err := cardtable.Run(table); err != nil {
//		log.Fatal(err)
//	}
//
// # Objects
//
// Anything implementing [Object] can be added. An object declares which
// interactions it accepts through [Object.Capabilities]; the router checks
// the flags before calling [Clicker] or [Dragger] methods.
//
// # Click versus drag
//
// A press arms the router and records the topmost object under the pointer.
// If the pointer then travels more than the drag threshold (5 units by
// default) on either axis, the press becomes a drag and every later move is
// delivered to that object. A press that never becomes a drag resolves to a
// click on whatever is topmost at the release position. A session is never
// both.
//
// # Assets
//
// [AssetCache] resolves textures asynchronously, one load per key. Cards
// draw nothing until their texture arrives, and nothing at all if it fails.
//
// [Ebitengine]: https://ebitengine.org
package cardtable
