// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package ballmachine

import "fmt"

// CapacityError is returned by AddChamber when a deployment's chamber
// limit would be exceeded. Simulation state is left unchanged.
type CapacityError struct {
	Limit int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("ballmachine: chamber capacity %d exceeded", e.Limit)
}

// chamberProgramError records that an external chamber program panicked,
// or otherwise misbehaved, during Step. It is logged by the tick
// orchestrator and never returned to callers: the contract is that a
// misbehaving chamber degrades to a no-op for that tick, not a crash.
type chamberProgramError struct {
	chamberID int
	cause     any
}

func (e *chamberProgramError) Error() string {
	return fmt.Sprintf("ballmachine: chamber %d step failed: %v", e.chamberID, e.cause)
}

// withChamber fills in which chamber produced the error and returns the
// receiver, letting the caller (which knows the index but didn't, at the
// panic site) attribute it in one expression.
func (e *chamberProgramError) withChamber(id int) *chamberProgramError {
	e.chamberID = id
	return e
}
