// Package fundrank ranks candidate states by weighted multi-criteria
// decision analysis and schedules a constrained, multi-period budget
// across them in ranked order.
//
// 🚀 What is fundrank?
//
//	A small, deterministic, pure-computation library that brings together:
//		• Core model: the State record — named entity, criterion values, derived total cost
//		• TOPSIS ranking: vector normalization, weighted ideal/anti-ideal distances,
//		  closeness coefficients, stable descending rank
//		• Budget scheduling: greedy multi-period allocation, with or without
//		  splitting a state's cost across periods
//
// ✨ Why choose fundrank?
//
//   - Pure functions — no I/O, no globals, no retained state; every call is
//     independent and safe to run concurrently on read-only inputs
//   - Deterministic — stable tie-breaks, documented numeric fallbacks,
//     bit-identical results for identical inputs
//   - Explicit configuration — weights, polarities and criteria order are
//     plain arguments with documented defaults, never environment state
//
// Everything is organized under three subpackages:
//
//	core/     — State record, criterion identifiers, total-cost derivation
//	topsis/   — TOPSIS ranking engine (closeness-ordered results)
//	schedule/ — greedy period-budget scheduler (split and no-split policies)
//
// Typical flow:
//
//	ranked, err := topsis.Rank(states, nil)     // order by closeness
//	...
//	plan := schedule.AllowSplit(byRank, budgets) // fund in ranked order
//
// Dive into each package's doc.go and example_test.go for full walkthroughs.
//
//	go get github.com/katalvlaran/fundrank
package fundrank
