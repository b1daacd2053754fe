package service

import (
	"time"

	"go-agritrace/internal/model"
	"go-agritrace/internal/store"
)

// Stage orders history entries by physical flow: farm, transit, shelf.
type Stage string

const (
	StageOrigin  Stage = "origin"
	StageTransit Stage = "transit"
	StageRetail  Stage = "retail"
)

// HistoryEntry is one step of a batch's reconstructed history. Exactly
// one of Produce, Event or Listing is set, matching the stage.
type HistoryEntry struct {
	Stage   Stage                   `json:"stage"`
	Date    time.Time               `json:"date"`
	Produce *model.ProduceRecord    `json:"produce,omitempty"`
	Event   *model.SupplyChainEvent `json:"event,omitempty"`
	Listing *model.InventoryListing `json:"listing,omitempty"`
}

// History is the query result. Found is a flag, not an error: a batch
// with no matches anywhere yields Found=false and empty Entries.
type History struct {
	BatchID string         `json:"batchId"`
	Found   bool           `json:"found"`
	Entries []HistoryEntry `json:"entries"`
}

// TraceService reconstructs the known history of one batch by joining
// the three collections on batch ID. Pure read, no side effects.
type TraceService interface {
	GetHistory(batchID string) History
}

type traceService struct {
	store *store.Store
}

func NewTraceService(st *store.Store) TraceService {
	return &traceService{store: st}
}

// GetHistory assembles the origin record (first match, if any), then all
// supply-chain events in recording order, then the retail listing (first
// match, if any). The order is semantic, farm to shelf, regardless of
// when each collection received its records. Any source matching is
// enough for Found; missing sources simply contribute nothing.
func (s *traceService) GetHistory(batchID string) History {
	h := History{BatchID: batchID, Entries: []HistoryEntry{}}

	if rec, ok := s.store.FindProduce(batchID); ok {
		h.Found = true
		h.Entries = append(h.Entries, HistoryEntry{
			Stage:   StageOrigin,
			Date:    rec.CreatedOn,
			Produce: &rec,
		})
	}

	for _, ev := range s.store.EventsFor(batchID) {
		ev := ev
		h.Found = true
		h.Entries = append(h.Entries, HistoryEntry{
			Stage: StageTransit,
			Date:  ev.CreatedOn,
			Event: &ev,
		})
	}

	if li, ok := s.store.FindListing(batchID); ok {
		h.Found = true
		h.Entries = append(h.Entries, HistoryEntry{
			Stage:   StageRetail,
			Date:    li.CreatedOn,
			Listing: &li,
		})
	}

	return h
}
