// Command cammy solves the banana-relay problem: Cammy the camel lives D
// positions from the market and has B bananas she wishes to sell. She must
// eat one banana per move, can carry at most C bananas at a time, but she
// can leave banana piles anywhere on the road and pick them up later. How
// many bananas can she sell?
//
// The solve command runs the parallel search and reports the optimum; the
// render command turns the optimal route into a terminal animation.
package main

func main() {
	Execute()
}
