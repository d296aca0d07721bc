// Package production implements the production order engine: batch
// cooking runs drawn from a menu, with a two-state lifecycle
// (REGISTERED -> PROCESSED) and aggregated composition validation.
// Processing an order debits the stock ledger for every consumed raw
// product, atomically with the state transition.
package production
