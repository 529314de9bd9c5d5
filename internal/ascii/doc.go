// Package ascii turns a solved banana-relay path into a terminal
// animation: one frame per state, showing Cammy, her load and the ground
// piles. Animations can be encoded as asciicast v2 recordings (playable
// with asciinema) or played live on a terminal.
//
// This is a pure presentation layer: it consumes a finished path and knows
// nothing about how the search produced it.
package ascii
