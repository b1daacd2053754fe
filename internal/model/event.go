package model

// SupplyChainEvent records one transit step for a batch. The batch ID is
// caller-supplied and deliberately never checked against registered
// produce: real supply chains report out of order, so dangling
// references are tolerated.
type SupplyChainEvent struct {
	Audit
	BatchID   string `json:"batchId" validate:"required"`
	EventType string `json:"eventType" validate:"required"`
	Location  string `json:"location" validate:"required"`
	Details   string `json:"details"`
}
