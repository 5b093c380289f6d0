// Package fulfillment holds the side-effect components of a status transition.
// Each component is bound to the repositories of one unit of work, so its writes
// commit or roll back together with the transition that invoked it.
//
// Components:
//   - SequenceAllocator: gap-free invoice numbers per resolved prefix
//   - InventoryAdjuster: stock decrement for every line item, with an explicit failure policy
//   - CouponLedger: redemption with reversal of the previous one, and finalization
//   - HistoryRecorder: append-only status audit trail
package fulfillment
