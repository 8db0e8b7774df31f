// Package core defines the shared data model consumed by the topsis and
// schedule packages: the immutable State record, criterion identifiers,
// and the derived total funding cost.
//
// A State carries the three built-in criteria as fixed fields (Score,
// CostPerHabitant, Population) plus an optional Extra map for custom
// criterion sets, so the criteria order stays a runtime parameter
// without dynamic attribute lookup.
//
// States are inputs only: nothing in this module creates, destroys or
// mutates them — results are always freshly derived structures.
package core
