package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-openapi/strfmt"
	"github.com/sm8ta/webike_inventory/internal/core/domain"
	"github.com/sm8ta/webike_inventory/internal/core/ports"
	"github.com/sm8ta/webike_inventory/internal/core/services"
)

type BikeHandler struct {
	store             ports.InventoryStore
	filterer          *services.BikeFilterer
	audit             *services.AuditService
	logger            ports.LoggerPort
	metrics           ports.MetricsPort
	formats           strfmt.Registry
	lowStockThreshold int
}

type BikeRequest struct {
	Model          string                `json:"model" binding:"required" example:"Defy Advanced 2"`
	Brand          string                `json:"brand" binding:"required" example:"Giant"`
	Type           domain.BikeType       `json:"type" example:"ROAD"`
	Price          float64               `json:"price" example:"2499"`
	Stock          int                   `json:"stock" example:"4"`
	ImageURL       string                `json:"image_url,omitempty" example:"https://cdn.webike.fr/defy.jpg"`
	Description    string                `json:"description,omitempty" example:"Endurance carbon road bike"`
	TechnicalSpecs domain.TechnicalSpecs `json:"technical_specs"`
	CommercialDesc domain.CommercialDesc `json:"commercial_desc"`
}

type BikeListResponse struct {
	Bikes   []domain.Bike `json:"bikes"`
	Count   int           `json:"count"`
	Total   int           `json:"total"`
	Loading bool          `json:"loading"`
	Error   string        `json:"error,omitempty"`
}

type InventoryStateResponse struct {
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
	Count   int    `json:"count"`
	Version uint64 `json:"version"`
}

func NewBikeHandler(
	store ports.InventoryStore,
	filterer *services.BikeFilterer,
	audit *services.AuditService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
	formats strfmt.Registry,
	lowStockThreshold int,
) *BikeHandler {
	return &BikeHandler{
		store:             store,
		filterer:          filterer,
		audit:             audit,
		logger:            logger,
		metrics:           metrics,
		formats:           formats,
		lowStockThreshold: lowStockThreshold,
	}
}

func filterFromQuery(c *gin.Context) domain.BikeFilter {
	return domain.BikeFilter{
		Search:   c.Query("q"),
		Type:     domain.BikeType(c.Query("type")),
		MinPrice: c.Query("min_price"),
		MaxPrice: c.Query("max_price"),
	}
}

func stateResponse(state domain.InventoryState) InventoryStateResponse {
	return InventoryStateResponse{
		Loading: state.Loading,
		Error:   state.Error,
		Count:   len(state.Bikes),
		Version: state.Version,
	}
}

func (r BikeRequest) toBike(id string) *domain.Bike {
	return &domain.Bike{
		ID:             id,
		Model:          r.Model,
		Brand:          r.Brand,
		Type:           r.Type,
		Price:          r.Price,
		Stock:          r.Stock,
		ImageURL:       r.ImageURL,
		Description:    r.Description,
		TechnicalSpecs: r.TechnicalSpecs,
		CommercialDesc: r.CommercialDesc,
	}
}

// @Summary List bikes
// @Description Current inventory, optionally filtered
// @Tags bikes
// @Security BearerAuth
// @Produce json
// @Param q query string false "Search in model, brand and description"
// @Param type query string false "Bike type" Enums(ROAD, MOUNTAIN, GRAVEL, HYBRID, CITY, ELECTRIC, BMX)
// @Param min_price query string false "Minimum price"
// @Param max_price query string false "Maximum price"
// @Success 200 {object} BikeListResponse
// @Failure 401 {object} errorResponse
// @Router /bikes [get]
func (h *BikeHandler) ListBikes(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	state := h.store.State()
	bikes := h.filterer.Filter(state, filterFromQuery(c))

	c.JSON(http.StatusOK, BikeListResponse{
		Bikes:   bikes,
		Count:   len(bikes),
		Total:   len(state.Bikes),
		Loading: state.Loading,
		Error:   state.Error,
	})
}

// @Summary Get bike
// @Description Bike details from the loaded inventory, or from Baserow when the row is newer than the last reload
// @Tags bikes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Bike ID"
// @Success 200 {object} domain.Bike
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /bikes/{id} [get]
func (h *BikeHandler) GetBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")
	bike, err := h.store.Bike(c.Request.Context(), bikeID)
	if err != nil {
		h.logger.Warn("Bike not in inventory", map[string]interface{}{
			"bike_id": bikeID,
			"error":   err.Error(),
		})
		if errors.Is(err, domain.ErrBikeNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Bike not found")
			return
		}
		newErrorResponse(c, errorStatus(err), errorMessage(err, "Failed to get bike"))
		return
	}

	c.JSON(http.StatusOK, bike)
}

// @Summary Create bike
// @Description Adds a bike then reloads the inventory
// @Tags bikes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body BikeRequest true "Bike"
// @Success 201 {object} InventoryStateResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /bikes [post]
func (h *BikeHandler) CreateBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	userID := currentUserID(c)

	bike, ok := h.bindBike(c, "")
	if !ok {
		return
	}
	if bike.Type == "" {
		bike.Type = domain.Road
	}
	if !h.validBike(c, bike) {
		return
	}

	created, err := h.store.AddBike(c.Request.Context(), bike)
	if created != nil {
		h.audit.Record(c.Request.Context(), userID, domain.AuditCreate, created.ID, created.Model)
	}
	if err != nil {
		h.logger.Error("Failed to create bike", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		newErrorResponse(c, errorStatus(err), errorMessage(err, "Failed to create bike"))
		return
	}

	h.logger.Info("Bike created successfully", map[string]interface{}{
		"bike_id": created.ID,
		"model":   created.Model,
		"user_id": userID,
	})

	c.JSON(http.StatusCreated, stateResponse(h.store.State()))
}

// @Summary Update bike
// @Description Replaces a bike then reloads the inventory
// @Tags bikes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Bike ID"
// @Param request body BikeRequest true "Bike"
// @Success 200 {object} InventoryStateResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /bikes/{id} [put]
func (h *BikeHandler) UpdateBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	userID := currentUserID(c)
	bikeID := c.Param("id")

	bike, ok := h.bindBike(c, bikeID)
	if !ok || !h.validBike(c, bike) {
		return
	}

	if err := h.store.UpdateBike(c.Request.Context(), bike); err != nil {
		h.logger.Error("Failed to update bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		newErrorResponse(c, errorStatus(err), errorMessage(err, "Update failed"))
		return
	}

	h.audit.Record(c.Request.Context(), userID, domain.AuditUpdate, bikeID, bike.Model)
	h.logger.Info("Bike updated successfully", map[string]interface{}{
		"bike_id": bikeID,
	})

	c.JSON(http.StatusOK, stateResponse(h.store.State()))
}

// @Summary Delete bike
// @Description Removes a bike then reloads the inventory
// @Tags bikes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Bike ID"
// @Success 200 {object} successResponse
// @Failure 401 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /bikes/{id} [delete]
func (h *BikeHandler) DeleteBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	userID := currentUserID(c)
	bikeID := c.Param("id")

	var model string
	for _, bike := range h.store.State().Bikes {
		if bike.ID == bikeID {
			model = bike.Model
			break
		}
	}

	if err := h.store.DeleteBike(c.Request.Context(), bikeID); err != nil {
		h.logger.Error("Failed to delete bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		newErrorResponse(c, errorStatus(err), errorMessage(err, "Delete failed"))
		return
	}

	h.audit.Record(c.Request.Context(), userID, domain.AuditDelete, bikeID, model)
	h.logger.Info("Bike deleted successfully", map[string]interface{}{
		"bike_id": bikeID,
	})

	c.JSON(http.StatusOK, successResponse{
		Message: "Bike deleted successfully",
	})
}

// @Summary Stock statistics
// @Description Totals over the bikes matching the filter
// @Tags bikes
// @Security BearerAuth
// @Produce json
// @Param q query string false "Search in model, brand and description"
// @Param type query string false "Bike type"
// @Param min_price query string false "Minimum price"
// @Param max_price query string false "Maximum price"
// @Success 200 {object} domain.StockStats
// @Failure 401 {object} errorResponse
// @Router /bikes/stats [get]
func (h *BikeHandler) Stats(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikes := h.filterer.Filter(h.store.State(), filterFromQuery(c))
	c.JSON(http.StatusOK, services.ComputeStats(bikes, h.lowStockThreshold))
}

// @Summary Reload inventory
// @Tags inventory
// @Security BearerAuth
// @Produce json
// @Success 200 {object} InventoryStateResponse
// @Failure 401 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /bikes/refresh [post]
func (h *BikeHandler) Refresh(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if err := h.store.Refresh(c.Request.Context()); err != nil {
		newErrorResponse(c, errorStatus(err), errorMessage(err, "Failed to load bikes"))
		return
	}
	c.JSON(http.StatusOK, stateResponse(h.store.State()))
}

// @Summary Inventory state
// @Tags inventory
// @Security BearerAuth
// @Produce json
// @Success 200 {object} InventoryStateResponse
// @Failure 401 {object} errorResponse
// @Router /inventory/state [get]
func (h *BikeHandler) State(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	c.JSON(http.StatusOK, stateResponse(h.store.State()))
}

// @Summary Dismiss inventory error
// @Tags inventory
// @Security BearerAuth
// @Produce json
// @Success 200 {object} InventoryStateResponse
// @Failure 401 {object} errorResponse
// @Router /inventory/error [delete]
func (h *BikeHandler) ClearError(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	h.store.ClearError()
	c.JSON(http.StatusOK, stateResponse(h.store.State()))
}

func (h *BikeHandler) bindBike(c *gin.Context, id string) (*domain.Bike, bool) {
	var req BikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in bike request", map[string]interface{}{
			"error": err.Error(),
		})
		if details, ok := validationDetails(err); ok {
			newValidationResponse(c, "Invalid bike", details)
		} else {
			newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		}
		return nil, false
	}
	return req.toBike(id), true
}

func (h *BikeHandler) validBike(c *gin.Context, bike *domain.Bike) bool {
	if err := bike.Validate(h.formats); err != nil {
		details, _ := validationDetails(err)
		h.logger.Warn("Bike validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		newValidationResponse(c, "Invalid bike", details)
		return false
	}
	return true
}
