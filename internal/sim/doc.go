// Package sim owns the simulation state and the fixed-timestep frame
// loop.
//
// The central type is [Simulation]: bodies, their trails, and a
// [Scheduler] that converts variable wall-clock frame times into a
// whole number of constant-size physics steps. Frontends call
// [Simulation.Frame] once per displayed frame and hand the result to a
// [Renderer]; input events reach the simulation only as queued
// [Command] values, applied at the start of the next frame.
//
// Everything here runs on one goroutine. There is no locking: the
// frame loop, command application and rendering are strictly
// sequential.
package sim
