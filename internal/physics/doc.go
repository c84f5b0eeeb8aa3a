// Package physics provides the body model and central-gravity
// integration for the simulator.
//
// All motion is governed by a single dominant central mass: orbiting
// bodies feel only its pull, never each other's. The package exposes:
//
//   - [Vec2], [Body]: plain 2D state
//   - [OrbitalVelocity]: circular-orbit initialization
//   - [SemiImplicitEuler]: the fixed-timestep symplectic stepper
//
// Diagnostics for conserved quantities ([SpecificEnergy],
// [SpecificAngularMomentum]) are provided for drift monitoring.
package physics
