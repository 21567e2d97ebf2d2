// SPDX-License-Identifier: MIT

// Package builder assembles exchange-rate graphs for the detector: seeded
// synthetic markets and cross-rate markets derived from reference-rate
// snapshots.
//
// The package follows a functional-options design:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds the RNG, the rate generator and the cycle flag.
//   - Rate distributions (RateFn implementations):
//     – DefaultRateFn:  uniform on [0.5, 2.0].
//     – UniformRateFn:  uniform on [min, max], min > 0.
//     – ConstantRateFn: fixed user-provided rate.
//   - Constructors (Constructor closures applied by BuildGraph in order):
//     – RandomQuotes:    m random directed quotes, self pairs dropped.
//     – ProfitableCycle: a 4-currency loop whose rates multiply to 1.05.
//     – SnapshotQuotes:  every ordered pair of listed currencies, per snapshot.
//   - Entry points:
//     – RandomMarket:  RandomQuotes (+ ProfitableCycle with WithInsertedCycle).
//     – CrossRates:    SnapshotQuotes over a currency list.
//     – CurrencyList:  base currency first, then first-seen order, truncated.
//
// Guarantees:
//
//   - Determinism: the same inputs, options and seed yield identical graphs,
//     edge order included.
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors wrapped with %w and never panic.
//   - No logging and no I/O.
package builder
