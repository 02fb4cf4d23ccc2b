// Package garden holds the state of a single growing flower.
//
// The package is split along the two things that change over time:
//
//   - [Growth]: the discrete stage (Seed, Sprout, Bud, Bloom) and the
//     within-stage progress counter, advanced by watering
//   - [Particles] and [Phase]: the per-frame animation state, advanced by Tick
//
// [Garden] ties both together behind the two operations a frontend needs:
// Water, called on the user's trigger, and Tick, called once per frame.
//
// # Example
//
//	g := garden.New(garden.DefaultParams(), garden.NewGeometry(400))
//	g.Water()
//	for i := 0; i < 60; i++ {
//		g.Tick()
//	}
//
// # Thread Safety
//
// Garden is NOT safe for concurrent use. Frontends call Water and Tick from
// the same event loop, one at a time.
package garden
