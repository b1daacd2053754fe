package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-agritrace/internal/model"
	"go-agritrace/internal/store"
)

func newTrace(t *testing.T) (TraceService, *store.Store) {
	t.Helper()
	st := store.Open(store.NewMemory())
	return NewTraceService(st), st
}

func TestGetHistory_FullScenario(t *testing.T) {
	svc, st := newTrace(t)

	require.NoError(t, st.AppendProduce(model.ProduceRecord{
		Audit: model.NewAudit("alice"), BatchID: "BATCH-X1AAAA", Name: "Tomato",
		Origin: "Green Valley Farm", HarvestDate: "2026-08-28", Quantity: 120,
	}))
	require.NoError(t, st.AppendEvent(model.SupplyChainEvent{
		Audit: model.NewAudit("bob"), BatchID: "BATCH-X1AAAA", EventType: "Shipped", Location: "Depot 4",
	}))
	require.NoError(t, st.AppendEvent(model.SupplyChainEvent{
		Audit: model.NewAudit("bob"), BatchID: "BATCH-X1AAAA", EventType: "Delivered", Location: "Market District",
	}))
	require.NoError(t, st.AppendListing(model.InventoryListing{
		Audit: model.NewAudit("carol"), BatchID: "BATCH-X1AAAA", StoreName: "Market A",
		ShelfLocation: "A3", Price: 4.5, ExpiryDate: "2026-09-10",
	}))

	h := svc.GetHistory("BATCH-X1AAAA")

	assert.True(t, h.Found)
	require.Len(t, h.Entries, 4)

	assert.Equal(t, StageOrigin, h.Entries[0].Stage)
	require.NotNil(t, h.Entries[0].Produce)
	assert.Equal(t, "Tomato", h.Entries[0].Produce.Name)

	assert.Equal(t, StageTransit, h.Entries[1].Stage)
	require.NotNil(t, h.Entries[1].Event)
	assert.Equal(t, "Shipped", h.Entries[1].Event.EventType)

	assert.Equal(t, StageTransit, h.Entries[2].Stage)
	require.NotNil(t, h.Entries[2].Event)
	assert.Equal(t, "Delivered", h.Entries[2].Event.EventType)

	assert.Equal(t, StageRetail, h.Entries[3].Stage)
	require.NotNil(t, h.Entries[3].Listing)
	assert.Equal(t, "Market A", h.Entries[3].Listing.StoreName)
}

func TestGetHistory_SemanticOrderBeatsInsertionOrder(t *testing.T) {
	svc, st := newTrace(t)

	// Records arrive shelf-first: the assembled history must still read
	// farm -> transit -> shelf.
	require.NoError(t, st.AppendListing(model.InventoryListing{
		Audit: model.NewAudit("carol"), BatchID: "BATCH-X1AAAA", StoreName: "Market A",
		ShelfLocation: "A3", Price: 4.5, ExpiryDate: "2026-09-10",
	}))
	require.NoError(t, st.AppendEvent(model.SupplyChainEvent{
		Audit: model.NewAudit("bob"), BatchID: "BATCH-X1AAAA", EventType: "Shipped", Location: "Depot 4",
	}))
	require.NoError(t, st.AppendProduce(model.ProduceRecord{
		Audit: model.NewAudit("alice"), BatchID: "BATCH-X1AAAA", Name: "Tomato",
		Origin: "Green Valley Farm", HarvestDate: "2026-08-28", Quantity: 120,
	}))

	h := svc.GetHistory("BATCH-X1AAAA")

	require.Len(t, h.Entries, 3)
	assert.Equal(t, StageOrigin, h.Entries[0].Stage)
	assert.Equal(t, StageTransit, h.Entries[1].Stage)
	assert.Equal(t, StageRetail, h.Entries[2].Stage)
}

func TestGetHistory_PartialTraceability(t *testing.T) {
	svc, st := newTrace(t)

	require.NoError(t, st.AppendEvent(model.SupplyChainEvent{
		Audit: model.NewAudit("bob"), BatchID: "BATCH-ABC123", EventType: "Shipped", Location: "Depot 4",
	}))

	h := svc.GetHistory("BATCH-ABC123")

	assert.True(t, h.Found)
	require.Len(t, h.Entries, 1)
	assert.Equal(t, StageTransit, h.Entries[0].Stage)
}

func TestGetHistory_UnknownBatch(t *testing.T) {
	svc, st := newTrace(t)

	require.NoError(t, st.AppendProduce(model.ProduceRecord{
		Audit: model.NewAudit("alice"), BatchID: "BATCH-X1AAAA", Name: "Tomato",
		Origin: "Green Valley Farm", HarvestDate: "2026-08-28", Quantity: 120,
	}))

	h := svc.GetHistory("BATCH-NOPE99")

	assert.False(t, h.Found)
	assert.Empty(t, h.Entries)
	assert.NotNil(t, h.Entries)
}

func TestGetHistory_PureRead(t *testing.T) {
	svc, st := newTrace(t)

	require.NoError(t, st.AppendProduce(model.ProduceRecord{
		Audit: model.NewAudit("alice"), BatchID: "BATCH-X1AAAA", Name: "Tomato",
		Origin: "Green Valley Farm", HarvestDate: "2026-08-28", Quantity: 120,
	}))
	require.NoError(t, st.AppendEvent(model.SupplyChainEvent{
		Audit: model.NewAudit("bob"), BatchID: "BATCH-X1AAAA", EventType: "Shipped", Location: "Depot 4",
	}))

	first := svc.GetHistory("BATCH-X1AAAA")
	second := svc.GetHistory("BATCH-X1AAAA")

	assert.Equal(t, first, second)
}

func TestGetHistory_DuplicateOriginIgnored(t *testing.T) {
	svc, st := newTrace(t)

	require.NoError(t, st.AppendProduce(model.ProduceRecord{
		Audit: model.NewAudit("alice"), BatchID: "BATCH-X1AAAA", Name: "Tomato",
		Origin: "Green Valley Farm", HarvestDate: "2026-08-28", Quantity: 120,
	}))
	require.NoError(t, st.AppendProduce(model.ProduceRecord{
		Audit: model.NewAudit("alice"), BatchID: "BATCH-X1AAAA", Name: "Impostor",
		Origin: "Elsewhere", HarvestDate: "2026-08-29", Quantity: 10,
	}))

	h := svc.GetHistory("BATCH-X1AAAA")

	require.Len(t, h.Entries, 1)
	assert.Equal(t, "Tomato", h.Entries[0].Produce.Name)
}
