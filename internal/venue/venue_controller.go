package venue

import (
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/kickoff/internal/common"
	"github.com/DhavalSuthar-24/kickoff/pkg/responses"
	"github.com/DhavalSuthar-24/kickoff/pkg/validator"
	"github.com/gin-gonic/gin"
)

// VenueController handles venue, field and slot HTTP requests
type VenueController struct {
	service *Service
}

// NewVenueController creates a new venue controller
func NewVenueController(service *Service) *VenueController {
	return &VenueController{service: service}
}

type PaginationInput struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=10" binding:"min=1,max=100"`
}

type ScheduleResult struct {
	Created int64 `json:"created"`
}

// CreateVenue godoc
// @Summary Create the caller's venue profile
// @Description Creates the single venue profile of the caller and grants the venue role
// @Tags venues
// @Accept json
// @Produce json
// @Param venue body CreateVenueInput true "Venue information"
// @Success 201 {object} responses.SuccessResponse{data=VenueProfile}
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 409 {object} responses.ErrorResponse "Profile already exists"
// @Router /venues [post]
// @Security Bearer
func (vc *VenueController) CreateVenue(ctx *gin.Context) {
	userID, err := common.GetUserIDFromContext(ctx)
	if err != nil {
		responses.Unauthorized(ctx, err.Error())
		return
	}

	var input CreateVenueInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.SendValidationError(ctx, validator.ParseError(err))
		return
	}

	venue, err := vc.service.CreateVenue(ctx.Request.Context(), userID, input)
	if err != nil {
		responses.FromError(ctx, err)
		return
	}
	responses.SendSuccess(ctx, http.StatusCreated, "Venue created successfully", venue)
}

// ListVenues godoc
// @Summary List venues
// @Tags venues
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Number of items per page (default: 10, max: 100)"
// @Success 200 {object} responses.PaginatedResponse{data=[]VenueProfile}
// @Router /venues [get]
func (vc *VenueController) ListVenues(ctx *gin.Context) {
	var pagination PaginationInput
	if err := ctx.ShouldBindQuery(&pagination); err != nil {
		responses.SendValidationError(ctx, validator.ParseError(err))
		return
	}

	venues, total, err := vc.service.ListVenues(ctx.Request.Context(), pagination.Page, pagination.Limit)
	if err != nil {
		responses.FromError(ctx, err)
		return
	}
	responses.SendPaginated(ctx, http.StatusOK, "", venues, total, pagination.Page, pagination.Limit)
}

// GetVenue godoc
// @Summary Get venue by ID
// @Tags venues
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} responses.SuccessResponse{data=VenueProfile}
// @Failure 404 {object} responses.ErrorResponse
// @Router /venues/{id} [get]
func (vc *VenueController) GetVenue(ctx *gin.Context) {
	venueID, ok := parseID(ctx, "id", "venue")
	if !ok {
		return
	}

	venue, err := vc.service.GetVenue(ctx.Request.Context(), venueID)
	if err != nil {
		responses.FromError(ctx, err)
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "Venue retrieved", venue)
}

// GetOwnVenue godoc
// @Summary Get the caller's venue profile
// @Tags venues
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=VenueProfile}
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /venues/me [get]
// @Security Bearer
func (vc *VenueController) GetOwnVenue(ctx *gin.Context) {
	userID, err := common.GetUserIDFromContext(ctx)
	if err != nil {
		responses.Unauthorized(ctx, err.Error())
		return
	}

	venue, err := vc.service.GetOwnVenue(ctx.Request.Context(), userID)
	if err != nil {
		responses.FromError(ctx, err)
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "Venue retrieved", venue)
}

// UpdateVenue godoc
// @Summary Update venue
// @Tags venues
// @Accept json
// @Produce json
// @Param id path int true "Venue ID"
// @Param venue body UpdateVenueInput true "Updated venue information"
// @Success 200 {object} responses.SuccessResponse{data=VenueProfile}
// @Failure 403 {object} responses.ErrorResponse "Not the owner"
// @Router /venues/{id} [put]
// @Security Bearer
func (vc *VenueController) UpdateVenue(ctx *gin.Context) {
	userID, err := common.GetUserIDFromContext(ctx)
	if err != nil {
		responses.Unauthorized(ctx, err.Error())
		return
	}
	venueID, ok := parseID(ctx, "id", "venue")
	if !ok {
		return
	}

	var input UpdateVenueInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.SendValidationError(ctx, validator.ParseError(err))
		return
	}

	venue, err := vc.service.UpdateVenue(ctx.Request.Context(), userID, venueID, input)
	if err != nil {
		responses.FromError(ctx, err)
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "Venue updated successfully", venue)
}

// CreateField godoc
// @Summary Add a field to a venue
// @Tags fields
// @Accept json
// @Produce json
// @Param id path int true "Venue ID"
// @Param field body FieldInput true "Field information"
// @Success 201 {object} responses.SuccessResponse{data=Field}
// @Failure 403 {object} responses.ErrorResponse "Not the owner"
// @Router /venues/{id}/fields [post]
// @Security Bearer
func (vc *VenueController) CreateField(ctx *gin.Context) {
	userID, err := common.GetUserIDFromContext(ctx)
	if err != nil {
		responses.Unauthorized(ctx, err.Error())
		return
	}
	venueID, ok := parseID(ctx, "id", "venue")
	if !ok {
		return
	}

	var input FieldInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.SendValidationError(ctx, validator.ParseError(err))
		return
	}

	field, err := vc.service.CreateField(ctx.Request.Context(), userID, venueID, input)
	if err != nil {
		responses.FromError(ctx, err)
		return
	}
	responses.SendSuccess(ctx, http.StatusCreated, "Field created successfully", field)
}

// ListFields godoc
// @Summary List all fields
// @Tags fields
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Field}
// @Router /fields [get]
func (vc *VenueController) ListFields(ctx *gin.Context) {
	fields, err := vc.service.ListFields(ctx.Request.Context())
	if err != nil {
		responses.FromError(ctx, err)
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "Fields retrieved", fields)
}

// GetField godoc
// @Summary Get field by ID
// @Tags fields
// @Produce json
// @Param id path int true "Field ID"
// @Success 200 {object} responses.SuccessResponse{data=Field}
// @Failure 404 {object} responses.ErrorResponse
// @Router /fields/{id} [get]
func (vc *VenueController) GetField(ctx *gin.Context) {
	fieldID, ok := parseID(ctx, "id", "field")
	if !ok {
		return
	}

	field, err := vc.service.GetField(ctx.Request.Context(), fieldID)
	if err != nil {
		responses.FromError(ctx, err)
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "Field retrieved", field)
}

// UpdateField godoc
// @Summary Update a field
// @Description Fields can only be changed until the first time slot is generated for them
// @Tags fields
// @Accept json
// @Produce json
// @Param id path int true "Field ID"
// @Param field body FieldInput true "Field information"
// @Success 200 {object} responses.SuccessResponse{data=Field}
// @Failure 403 {object} responses.ErrorResponse "Not the owner"
// @Failure 409 {object} responses.ErrorResponse "Field already has slots"
// @Router /fields/{id} [put]
// @Security Bearer
func (vc *VenueController) UpdateField(ctx *gin.Context) {
	userID, err := common.GetUserIDFromContext(ctx)
	if err != nil {
		responses.Unauthorized(ctx, err.Error())
		return
	}
	fieldID, ok := parseID(ctx, "id", "field")
	if !ok {
		return
	}

	var input FieldInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.SendValidationError(ctx, validator.ParseError(err))
		return
	}

	field, err := vc.service.UpdateField(ctx.Request.Context(), userID, fieldID, input)
	if err != nil {
		responses.FromError(ctx, err)
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "Field updated successfully", field)
}

// GenerateSchedule godoc
// @Summary Generate time slots for a field
// @Tags fields
// @Accept json
// @Produce json
// @Param id path int true "Field ID"
// @Param schedule body ScheduleInput true "Schedule window"
// @Success 201 {object} responses.SuccessResponse{data=ScheduleResult}
// @Failure 400 {object} responses.ErrorResponse "Invalid schedule"
// @Failure 403 {object} responses.ErrorResponse "Not the owner"
// @Router /fields/{id}/generate-schedule [post]
// @Security Bearer
func (vc *VenueController) GenerateSchedule(ctx *gin.Context) {
	userID, err := common.GetUserIDFromContext(ctx)
	if err != nil {
		responses.Unauthorized(ctx, err.Error())
		return
	}
	fieldID, ok := parseID(ctx, "id", "field")
	if !ok {
		return
	}

	var input ScheduleInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.SendValidationError(ctx, validator.ParseError(err))
		return
	}

	created, err := vc.service.GenerateSchedule(ctx.Request.Context(), userID, fieldID, input)
	if err != nil {
		responses.FromError(ctx, err)
		return
	}
	responses.SendSuccess(ctx, http.StatusCreated, "Schedule generated", ScheduleResult{Created: created})
}

// ListSlots godoc
// @Summary List a field's slots on a date
// @Tags fields
// @Produce json
// @Param id path int true "Field ID"
// @Param on_date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} responses.SuccessResponse{data=[]SlotView}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /fields/{id}/slots [get]
func (vc *VenueController) ListSlots(ctx *gin.Context) {
	fieldID, ok := parseID(ctx, "id", "field")
	if !ok {
		return
	}
	onDate := ctx.Query("on_date")
	if onDate == "" {
		responses.BadRequest(ctx, "on_date is required")
		return
	}

	slots, err := vc.service.ListSlotsOnDate(ctx.Request.Context(), fieldID, onDate)
	if err != nil {
		responses.FromError(ctx, err)
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "Slots retrieved", slots)
}

// SetSlotAvailability godoc
// @Summary Open or close a slot
// @Description Toggles an unbooked slot between available and unavailable
// @Tags fields
// @Accept json
// @Produce json
// @Param id path int true "Slot ID"
// @Param availability body AvailabilityInput true "Availability"
// @Success 200 {object} responses.SuccessResponse{data=SlotView}
// @Failure 409 {object} responses.ErrorResponse "Slot is booked"
// @Router /slots/{id}/availability [post]
// @Security Bearer
func (vc *VenueController) SetSlotAvailability(ctx *gin.Context) {
	userID, err := common.GetUserIDFromContext(ctx)
	if err != nil {
		responses.Unauthorized(ctx, err.Error())
		return
	}
	slotID, ok := parseID(ctx, "id", "slot")
	if !ok {
		return
	}

	var input AvailabilityInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.SendValidationError(ctx, validator.ParseError(err))
		return
	}

	slot, err := vc.service.SetSlotAvailability(ctx.Request.Context(), userID, slotID, *input.Available)
	if err != nil {
		responses.FromError(ctx, err)
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "Slot updated", slot)
}

func parseID(ctx *gin.Context, param, resource string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 32)
	if err != nil || id == 0 {
		responses.BadRequest(ctx, "invalid "+resource+" ID")
		return 0, false
	}
	return uint(id), true
}
