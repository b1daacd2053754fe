package model

// ProduceRecord is a farmer's registration of one harvested lot. The
// batch ID is generated at registration time and is the key every later
// supply-chain event and retail listing refers back to.
type ProduceRecord struct {
	Audit
	BatchID     string  `json:"batchId" validate:"required,batch_id"`
	Name        string  `json:"name" validate:"required"`
	Origin      string  `json:"origin" validate:"required"`
	HarvestDate string  `json:"harvestDate" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0"` // kilograms
	Details     string  `json:"details"`
}
