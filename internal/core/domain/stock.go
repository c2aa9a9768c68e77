package domain

// StockEntry is the per-product ledger row: available units plus the
// cumulative sold counter.
type StockEntry struct {
	ProductID uint64
	Stock     int64
	SoldCount int64
}
