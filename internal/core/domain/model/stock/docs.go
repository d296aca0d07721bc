// Package stock implements the stock ledger domain: an append-only log
// of typed, signed movements per product. On-hand quantities are derived
// by summing the log, which keeps the ledger and the derived numbers
// exactly consistent at all times.
package stock
