// Package model contains the in-memory values exchanged by the benchmark:
// generated records and the measurements taken while filtering them.
//
// Records are created in bulk by the generator service and are never mutated
// afterwards, so a single slice can be shared by every filter strategy without
// synchronisation.
package model
