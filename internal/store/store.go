package store

import (
	"encoding/json"
	"log"
	"sync"

	"go-agritrace/internal/model"
)

// Snapshot is the persisted shape: all three collections serialized as
// one JSON object. Field names match the browser original's blob so a
// dataset exported from it loads unchanged.
type Snapshot struct {
	Produce  []model.ProduceRecord    `json:"produceData"`
	Events   []model.SupplyChainEvent `json:"supplyChainEvents"`
	Listings []model.InventoryListing `json:"retailerInventory"`
}

// Store owns the three append-only collections and writes them through
// the persistence adapter as a single unit after every mutation.
// Insertion order is preserved and is the only ordering guarantee.
type Store struct {
	mu       sync.RWMutex
	produce  []model.ProduceRecord
	events   []model.SupplyChainEvent
	listings []model.InventoryListing
	p        Persistence
}

// Open constructs a store over p and loads any persisted state. Absent
// or unparseable state degrades to three empty collections; Open never
// fails the caller.
func Open(p Persistence) *Store {
	s := &Store{p: p}
	s.Load()
	return s
}

// Load re-reads the persisted blob, replacing in-memory state. Parse and
// read errors are logged and swallowed, falling back to empty state.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.produce = nil
	s.events = nil
	s.listings = nil

	payload, present, err := s.p.Read()
	if err != nil {
		log.Printf("store: read persisted state: %v", err)
		return
	}
	if !present {
		return
	}

	var snap Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		log.Printf("store: decode persisted state, starting empty: %v", err)
		return
	}
	s.produce = snap.Produce
	s.events = snap.Events
	s.listings = snap.Listings
}

// Save serializes all three collections together and writes them as one
// unit, overwriting whatever was persisted before.
func (s *Store) Save() error {
	s.mu.RLock()
	snap := Snapshot{
		Produce:  append([]model.ProduceRecord{}, s.produce...),
		Events:   append([]model.SupplyChainEvent{}, s.events...),
		Listings: append([]model.InventoryListing{}, s.listings...),
	}
	s.mu.RUnlock()

	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.p.Write(payload)
}

// Clear resets all three collections and persists the cleared state.
// Administrative operation, not part of the primary workflow.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.produce = nil
	s.events = nil
	s.listings = nil
	s.mu.Unlock()
	return s.Save()
}

// AppendProduce appends rec and persists. The returned error is the
// persistence outcome only; the in-memory append has already happened
// and is not rolled back.
func (s *Store) AppendProduce(rec model.ProduceRecord) error {
	s.mu.Lock()
	s.produce = append(s.produce, rec)
	s.mu.Unlock()
	return s.Save()
}

// AppendEvent appends ev and persists.
func (s *Store) AppendEvent(ev model.SupplyChainEvent) error {
	s.mu.Lock()
	s.events = append(s.events, ev)
	s.mu.Unlock()
	return s.Save()
}

// AppendListing appends li and persists.
func (s *Store) AppendListing(li model.InventoryListing) error {
	s.mu.Lock()
	s.listings = append(s.listings, li)
	s.mu.Unlock()
	return s.Save()
}

// Produce returns a copy of the produce collection in insertion order.
func (s *Store) Produce() []model.ProduceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.ProduceRecord{}, s.produce...)
}

// Events returns a copy of the supply-chain event collection.
func (s *Store) Events() []model.SupplyChainEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.SupplyChainEvent{}, s.events...)
}

// Listings returns a copy of the retail inventory collection.
func (s *Store) Listings() []model.InventoryListing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.InventoryListing{}, s.listings...)
}

// FindProduce returns the first produce record for batchID. Later
// duplicates, should generation ever collide, are ignored.
func (s *Store) FindProduce(batchID string) (model.ProduceRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.produce {
		if rec.BatchID == batchID {
			return rec, true
		}
	}
	return model.ProduceRecord{}, false
}

// EventsFor returns all supply-chain events for batchID in insertion
// order.
func (s *Store) EventsFor(batchID string) []model.SupplyChainEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.SupplyChainEvent
	for _, ev := range s.events {
		if ev.BatchID == batchID {
			out = append(out, ev)
		}
	}
	return out
}

// FindListing returns the first inventory listing for batchID.
func (s *Store) FindListing(batchID string) (model.InventoryListing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, li := range s.listings {
		if li.BatchID == batchID {
			return li, true
		}
	}
	return model.InventoryListing{}, false
}
