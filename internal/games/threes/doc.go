// Package threes implements the rules engine of a Threes-style sliding
// tile puzzle and its adapter to the platform's Game interface.
//
// A Board holds a 4x4 grid of tiles. Moving in a direction sweeps every
// line once, leading edge first, colliding adjacent pairs: a tile slides
// into an empty neighbour, 1 and 2 join into 3, and equal tiles above 2
// double. After a successful move the next card lands on an empty cell of
// the trailing edge and a new next card is drawn from a shuffled bag of
// 1s, 2s and 3s, or rarely from a bonus bag of higher tiles once the high
// card reaches 48.
//
// All randomness comes from the Rand passed to NewBoard, so a seeded
// source makes a game fully reproducible.
package threes
