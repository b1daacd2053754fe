package model

// InventoryListing marks a batch as available in a store. Duplicates per
// batch are permitted; the traceability query uses the first match.
type InventoryListing struct {
	Audit
	BatchID       string  `json:"batchId" validate:"required"`
	StoreName     string  `json:"storeName" validate:"required"`
	ShelfLocation string  `json:"shelfLocation" validate:"required"`
	Price         float64 `json:"price" validate:"required,gt=0"` // currency per kg
	ExpiryDate    string  `json:"expiryDate" validate:"required"`
}
