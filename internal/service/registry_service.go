package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"go-agritrace/internal/model"
	"go-agritrace/internal/session"
	"go-agritrace/internal/store"
	"go-agritrace/internal/ws"
	"go-agritrace/pkg/batch"
	"go-agritrace/pkg/validator"
)

var ErrRoleNotAllowed = errors.New("operation not permitted for this role")

// RegistryService appends stamped records to the record store. Each
// operation is tagged for one role and rejects sessions holding another,
// even though the UI is expected to hide mismatched forms.
type RegistryService interface {
	RegisterProduce(req *model.ProduceRecord, sess session.Session) (*model.ProduceRecord, error)
	RecordSupplyChainEvent(req *model.SupplyChainEvent, sess session.Session) (*model.SupplyChainEvent, error)
	ListAvailability(req *model.InventoryListing, sess session.Session) (*model.InventoryListing, error)
	GetAllProduce() []model.ProduceRecord
	GetAllEvents() []model.SupplyChainEvent
	GetAllListings() []model.InventoryListing
}

type registryService struct {
	store *store.Store
	hub   *ws.Hub
}

func NewRegistryService(st *store.Store, hub *ws.Hub) RegistryService {
	return &registryService{store: st, hub: hub}
}

// RegisterProduce generates a fresh batch ID, stamps and appends the
// record, and returns it with the ID filled in for display. Generated
// IDs are not checked for collisions.
func (s *registryService) RegisterProduce(req *model.ProduceRecord, sess session.Session) (*model.ProduceRecord, error) {
	if sess.Role != model.RoleFarmer {
		return nil, ErrRoleNotAllowed
	}

	// Any caller-supplied batch ID is discarded; the store only ever
	// sees generated ones. Validation runs after stamping so the
	// batch_id format rule covers the generated value too.
	req.BatchID = batch.NewID()
	req.Audit = model.NewAudit(sess.Identity)

	if err := firstValidationError(req); err != nil {
		return nil, err
	}

	if err := s.store.AppendProduce(*req); err != nil {
		// In-memory state is already updated; disk lags until the
		// next successful save.
		log.Printf("registry: persist produce registration: %v", err)
	}

	s.broadcast("produce_registered", req.BatchID, sess)
	return req, nil
}

// RecordSupplyChainEvent appends a transit event for a caller-supplied
// batch ID. The ID is not checked against registered produce.
func (s *registryService) RecordSupplyChainEvent(req *model.SupplyChainEvent, sess session.Session) (*model.SupplyChainEvent, error) {
	if sess.Role != model.RoleDistributor {
		return nil, ErrRoleNotAllowed
	}
	if err := firstValidationError(req); err != nil {
		return nil, err
	}

	req.Audit = model.NewAudit(sess.Identity)

	if err := s.store.AppendEvent(*req); err != nil {
		log.Printf("registry: persist supply chain event: %v", err)
	}

	s.broadcast("event_recorded", req.BatchID, sess)
	return req, nil
}

// ListAvailability appends a retail listing for a caller-supplied batch
// ID, likewise unchecked.
func (s *registryService) ListAvailability(req *model.InventoryListing, sess session.Session) (*model.InventoryListing, error) {
	if sess.Role != model.RoleRetailer {
		return nil, ErrRoleNotAllowed
	}
	if err := firstValidationError(req); err != nil {
		return nil, err
	}

	req.Audit = model.NewAudit(sess.Identity)

	if err := s.store.AppendListing(*req); err != nil {
		log.Printf("registry: persist inventory listing: %v", err)
	}

	s.broadcast("listing_added", req.BatchID, sess)
	return req, nil
}

// Dashboard views: each role's home screen lists the full collection it
// contributes to.

func (s *registryService) GetAllProduce() []model.ProduceRecord {
	return s.store.Produce()
}

func (s *registryService) GetAllEvents() []model.SupplyChainEvent {
	return s.store.Events()
}

func (s *registryService) GetAllListings() []model.InventoryListing {
	return s.store.Listings()
}

func firstValidationError(data interface{}) error {
	if errs := validator.ValidateStruct(data); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}
	return nil
}

func (s *registryService) broadcast(action, batchID string, sess session.Session) {
	if s.hub == nil {
		return
	}
	go func() {
		payload := map[string]interface{}{
			"type":     "trace_update",
			"action":   action,
			"batch_id": batchID,
			"actor": map[string]interface{}{
				"identity": sess.Identity,
				"role":     sess.Role,
			},
		}
		msg, _ := json.Marshal(payload)
		s.hub.Broadcast <- msg
	}()
}
