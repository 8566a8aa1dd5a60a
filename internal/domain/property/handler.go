package property

import (
	"errors"
	"net/http"
	"strconv"

	"estatelink/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Search godoc
// @Summary Public property search
// @Description Text, price, bedroom and geo-radius filters. Radius search
// requires both lat and lng; radius_km defaults to 10.
// @Tags Properties
// @Produce json
// @Router /properties/search [get]
func (h *Handler) Search(c *gin.Context) {
	params := &SearchParams{
		Query: c.Query("q"),
	}
	if v := c.Query("min_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			params.MinPrice = &f
		}
	}
	if v := c.Query("max_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			params.MaxPrice = &f
		}
	}
	if v := c.Query("bedrooms"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			params.Bedrooms = &n
		}
	}
	if v := c.Query("lat"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			params.Latitude = &f
		}
	}
	if v := c.Query("lng"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			params.Longitude = &f
		}
	}
	if v := c.Query("radius_km"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			params.RadiusKm = f
		}
	}
	params.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	params.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	results, err := h.service.Search(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingCoords), errors.Is(err, ErrInvalidRadius):
			response.Error(c, http.StatusBadRequest, "INVALID_SEARCH", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "search failed")
		}
		return
	}
	response.Success(c, http.StatusOK, results)
}

// Get godoc
// @Summary Get a property by id
// @Tags Properties
// @Router /properties/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
		return
	}
	response.Success(c, http.StatusOK, p)
}

// Create godoc
// @Summary List a new property (manager)
// @Tags Properties
// @Security BearerAuth
// @Router /manager/properties [post]
func (h *Handler) Create(c *gin.Context) {
	managerID := c.GetInt64("user_id")

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	p, err := h.service.Create(c.Request.Context(), managerID, &req)
	if err != nil {
		response.Error(c, http.StatusForbidden, "PLAN_LIMIT", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, p)
}

// ListMine godoc
// @Summary List the manager's own properties
// @Tags Properties
// @Security BearerAuth
// @Router /manager/properties [get]
func (h *Handler) ListMine(c *gin.Context) {
	managerID := c.GetInt64("user_id")
	props, err := h.service.ListMine(c.Request.Context(), managerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to load properties")
		return
	}
	response.Success(c, http.StatusOK, props)
}

// Update godoc
// @Summary Update a property (manager)
// @Tags Properties
// @Security BearerAuth
// @Router /manager/properties/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	managerID := c.GetInt64("user_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	p, err := h.service.Update(c.Request.Context(), managerID, id, &req)
	if err != nil {
		writePropertyError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// Delete godoc
// @Summary Delete a property (manager)
// @Tags Properties
// @Security BearerAuth
// @Router /manager/properties/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	managerID := c.GetInt64("user_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), managerID, id); err != nil {
		writePropertyError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "property deleted"})
}

// AddUnit godoc
// @Summary Add a unit to a property (manager)
// @Tags Properties
// @Security BearerAuth
// @Router /manager/properties/{id}/units [post]
func (h *Handler) AddUnit(c *gin.Context) {
	managerID := c.GetInt64("user_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	var req UnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	u, err := h.service.AddUnit(c.Request.Context(), managerID, id, &req)
	if err != nil {
		writePropertyError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, u)
}

// ListUnits godoc
// @Summary List units of a property
// @Tags Properties
// @Router /properties/{id}/units [get]
func (h *Handler) ListUnits(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	units, err := h.service.ListUnits(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to load units")
		return
	}
	response.Success(c, http.StatusOK, units)
}

// TogglePortal godoc
// @Summary Enable or disable the tenant portal (manager)
// @Tags Properties
// @Security BearerAuth
// @Router /manager/properties/{id}/portal [post]
func (h *Handler) TogglePortal(c *gin.Context) {
	managerID := c.GetInt64("user_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	p, err := h.service.TogglePortal(c.Request.Context(), managerID, id, req.Enabled)
	if err != nil {
		writePropertyError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// Inquire godoc
// @Summary Send an inquiry about a listing to its manager
// @Tags Properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} response.Response
// @Failure 400,404 {object} response.Response
// @Router /properties/{id}/inquire [post]
func (h *Handler) Inquire(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	var req InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	if err := h.service.Inquire(c.Request.Context(), c.GetInt64("user_id"), id, req.Message); err != nil {
		writePropertyError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"sent": true})
}

func writePropertyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrUnitNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrNotOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, ErrNotApproved):
		response.Error(c, http.StatusBadRequest, "NOT_APPROVED", err.Error())
	case errors.Is(err, ErrOwnProperty):
		response.Error(c, http.StatusBadRequest, "OWN_PROPERTY", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "operation failed")
	}
}
