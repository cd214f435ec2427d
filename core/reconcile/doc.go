// Package reconcile provides the model-agnostic pieces of a catalog reconciliation run.
//
// A run reads one primary record set and several auxiliary record sets, matches them, and
// surfaces every primary record into exactly one output lane for review. This package owns
// the parts that do not depend on the catalog being reconciled:
//
//   - Lane: the three mutually exclusive outcomes (updated, skipped, no_markup) and the
//     Classify priority rule (skipped wins over no_markup).
//   - Partitioner: ordered per-lane row collections plus the running counters reported at
//     the end of a run. A fresh Partitioner is created per run; nothing is global.
//   - LoadAll: loads auxiliary sources concurrently before any record is processed.
//   - Coalescer: collapses concurrent triggers of the same run into one execution.
//
// # Usage Example
//
//	p := reconcile.NewPartitioner[Row]()
//	lane := reconcile.Classify(skipped, noMarkup)
//	p.Add(lane, primaryRow, imageRows...)
//	summary := p.Summary()
package reconcile
