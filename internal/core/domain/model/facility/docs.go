// Package facility contains the facility aggregate and its stock-keeping satellites.
//
// A Facility is a node in the freight network: a warehouse or depot goods move
// through. Facilities own StockRecords (per-package running counters of received,
// delivered and remaining quantity), StorageSlots (physical locations a package
// can occupy) and AuditEntries (the append-only trail of every stock change).
//
// Invariants enforced here:
//   - StockRecord: quantity == deliveredQuantity + remainingQuantity, remaining >= 0
//   - StorageSlot: a slot is Occupied if and only if it references a package
//   - Facility.currentStock mirrors the sum of remaining quantity over its records
//
// Stock values only change through the mutators on StockRecord and StorageSlot,
// which are in turn only driven by receipt postings in the stock ledger service.
package facility
