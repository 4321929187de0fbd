package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sm8ta/webike_inventory/internal/core/domain"
)

func validBikeRequest() BikeRequest {
	return BikeRequest{
		Model:    "Grail CF SL",
		Brand:    "Canyon",
		Price:    2899,
		Stock:    2,
		ImageURL: "https://cdn.webike.fr/grail.jpg",
		TechnicalSpecs: domain.TechnicalSpecs{
			Frame: "Carbon",
			Sizes: []string{"S", "M", "L"},
		},
	}
}

func TestBikeHandler_ListBikes(t *testing.T) {
	srv := newTestServer(t, newFakeStore(inventoryFixture()...))
	token := srv.token(t, domain.RoleUser)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"no filter", "", []string{"1", "2", "3"}},
		{"search", "?q=giant", []string{"1", "2"}},
		{"type", "?type=ROAD", []string{"1", "3"}},
		{"min price only", "?min_price=1000&max_price=", []string{"1", "3"}},
		{"unparsable bound", "?max_price=abc", []string{"1", "2", "3"}},
		{"no match", "?q=trek&type=MOUNTAIN", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.do(t, http.MethodGet, "/bikes"+tt.query, token, nil)
			require.Equal(t, http.StatusOK, rec.Code)

			var body BikeListResponse
			decode(t, rec, &body)

			ids := make([]string, 0, len(body.Bikes))
			for _, b := range body.Bikes {
				ids = append(ids, b.ID)
			}
			assert.Equal(t, tt.want, ids)
			assert.Equal(t, len(tt.want), body.Count)
			assert.Equal(t, 3, body.Total)
		})
	}
}

func TestBikeHandler_GetBike(t *testing.T) {
	srv := newTestServer(t, newFakeStore(inventoryFixture()...))
	token := srv.token(t, domain.RoleUser)

	rec := srv.do(t, http.MethodGet, "/bikes/3", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var bike domain.Bike
	decode(t, rec, &bike)
	assert.Equal(t, "Domane", bike.Model)

	rec = srv.do(t, http.MethodGet, "/bikes/99", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBikeHandler_GetBikeNewerThanSnapshot(t *testing.T) {
	store := newFakeStore(inventoryFixture()...)
	store.remote = map[string]domain.Bike{
		"7": {ID: "7", Model: "Tarmac", Brand: "Specialized", Type: domain.Road},
	}
	srv := newTestServer(t, store)

	rec := srv.do(t, http.MethodGet, "/bikes/7", srv.token(t, domain.RoleUser), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var bike domain.Bike
	decode(t, rec, &bike)
	assert.Equal(t, "Tarmac", bike.Model)
}

func TestBikeHandler_CreateBike(t *testing.T) {
	t.Run("defaults type to road", func(t *testing.T) {
		store := newFakeStore()
		srv := newTestServer(t, store)

		rec := srv.do(t, http.MethodPost, "/bikes", srv.token(t, domain.RoleAdmin), validBikeRequest())

		require.Equal(t, http.StatusCreated, rec.Code)
		require.Len(t, store.added, 1)
		assert.Equal(t, domain.Road, store.added[0].Type)
		assert.Empty(t, store.added[0].ID)

		var body InventoryStateResponse
		decode(t, rec, &body)
		assert.Equal(t, 1, body.Count)
	})

	t.Run("audits the created row id", func(t *testing.T) {
		store := newFakeStore()
		srv := newTestServer(t, store)

		rec := srv.do(t, http.MethodPost, "/bikes", srv.token(t, domain.RoleAdmin), validBikeRequest())

		require.Equal(t, http.StatusCreated, rec.Code)
		require.Len(t, srv.audit.events, 1)
		event := srv.audit.events[0]
		assert.Equal(t, domain.AuditCreate, event.Action)
		assert.Equal(t, "101", event.BikeID)
		assert.Equal(t, "42", event.UserID)
	})

	t.Run("missing model", func(t *testing.T) {
		store := newFakeStore()
		srv := newTestServer(t, store)
		req := validBikeRequest()
		req.Model = ""

		rec := srv.do(t, http.MethodPost, "/bikes", srv.token(t, domain.RoleAdmin), req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, store.added)
	})

	t.Run("invalid fields", func(t *testing.T) {
		store := newFakeStore()
		srv := newTestServer(t, store)
		req := validBikeRequest()
		req.Type = "TANDEM"
		req.Price = -5
		req.ImageURL = "not a url"

		rec := srv.do(t, http.MethodPost, "/bikes", srv.token(t, domain.RoleAdmin), req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body errorResponse
		decode(t, rec, &body)
		assert.Len(t, body.Details, 3)
		assert.Empty(t, store.added)
	})
}

func TestBikeHandler_UpdateFailure(t *testing.T) {
	store := newFakeStore(inventoryFixture()...)
	store.err = &domain.BikeError{Kind: domain.ErrUpdate, Message: "Erreur lors de la mise à jour du vélo"}
	srv := newTestServer(t, store)

	rec := srv.do(t, http.MethodPut, "/bikes/1", srv.token(t, domain.RoleCollaborator), validBikeRequest())

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	var body errorResponse
	decode(t, rec, &body)
	assert.Equal(t, "Erreur lors de la mise à jour du vélo", body.Error)
	assert.Len(t, store.State().Bikes, 3)
}

func TestBikeHandler_UpdateUsesPathID(t *testing.T) {
	store := newFakeStore(inventoryFixture()...)
	srv := newTestServer(t, store)

	rec := srv.do(t, http.MethodPut, "/bikes/2", srv.token(t, domain.RoleAdmin), validBikeRequest())

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.updated, 1)
	assert.Equal(t, "2", store.updated[0].ID)
}

func TestBikeHandler_NotConfigured(t *testing.T) {
	store := newFakeStore()
	store.err = &domain.BikeError{Kind: domain.ErrCreate, Message: "create failed", Err: domain.ErrNotConfigured}
	srv := newTestServer(t, store)

	rec := srv.do(t, http.MethodPost, "/bikes", srv.token(t, domain.RoleAdmin), validBikeRequest())

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestBikeHandler_Stats(t *testing.T) {
	srv := newTestServer(t, newFakeStore(inventoryFixture()...))

	rec := srv.do(t, http.MethodGet, "/bikes/stats?type=ROAD", srv.token(t, domain.RoleUser), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var stats domain.StockStats
	decode(t, rec, &stats)
	assert.Equal(t, 2, stats.TotalModels)
	assert.Equal(t, 11, stats.TotalUnits)
	assert.Equal(t, "28400.00", stats.InventoryValue)
	assert.Equal(t, 1, stats.LowStock)
}

func TestBikeHandler_InventoryState(t *testing.T) {
	store := newFakeStore(inventoryFixture()...)
	store.state.Error = "Erreur lors du chargement des vélos"
	srv := newTestServer(t, store)
	token := srv.token(t, domain.RoleUser)

	rec := srv.do(t, http.MethodGet, "/inventory/state", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var state InventoryStateResponse
	decode(t, rec, &state)
	assert.Equal(t, 3, state.Count)
	assert.Equal(t, "Erreur lors du chargement des vélos", state.Error)

	rec = srv.do(t, http.MethodDelete, "/inventory/error", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &state)
	assert.Empty(t, state.Error)
}

func TestBikeHandler_Refresh(t *testing.T) {
	store := newFakeStore(inventoryFixture()...)
	srv := newTestServer(t, store)

	rec := srv.do(t, http.MethodPost, "/bikes/refresh", srv.token(t, domain.RoleUser), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, store.refreshes)
}
