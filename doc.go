// Package wallbreak computes shortest distances across grid mazes where the
// traveler may break through a limited number of wall cells.
//
// It exposes three entry points:
//
//   - Solve: run the search to completion and get a Result.
//   - Stepper: iterate the search one settled state at a time to drive UIs or debugging tools.
//   - SolveBidirectional and ProbeWalls: the two caller patterns built on Solve.
//
// The search runs over states made of a cell and the wall-crossing budget still
// left, so two arrivals at the same cell with different budgets never collide.
// Every move costs 1, which lets the default frontier be a plain FIFO sweep.
package wallbreak
