// Package vehicle provides the Vehicle entity of the fleet registry.
//
// A vehicle is identified by "<Prefix>ddd" (V001 with the default prefix), has a
// type drawn from a fixed enumeration (Truck, Van, Car) and a positive whole
// capacity. Vehicles are admitted through Candidate, which runs the identifier and
// field checks in declared order and reports the first failure.
package vehicle
