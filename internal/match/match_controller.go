package match

import (
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/kickoff/internal/common"
	"github.com/DhavalSuthar-24/kickoff/pkg/responses"
	"github.com/DhavalSuthar-24/kickoff/pkg/validator"
	"github.com/gin-gonic/gin"
)

// MatchController handles match-related HTTP requests
type MatchController struct {
	service *Service
}

// NewMatchController creates a new match controller
func NewMatchController(service *Service) *MatchController {
	return &MatchController{service: service}
}

// CreateMatch godoc
// @Summary Create a match on a free slot
// @Description Books the slot and seats the caller as captain
// @Tags matches
// @Accept json
// @Produce json
// @Param match body CreateMatchInput true "Match information"
// @Success 201 {object} responses.SuccessResponse{data=Match}
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 404 {object} responses.ErrorResponse "Slot not found"
// @Failure 409 {object} responses.ErrorResponse "Slot not available"
// @Router /matches [post]
// @Security Bearer
func (mc *MatchController) CreateMatch(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var input CreateMatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	match, err := mc.service.Create(c.Request.Context(), userID, input)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Match created successfully", match)
}

// ListMatches godoc
// @Summary List open matches
// @Description Active public matches, soonest first, with roster counts and price
// @Tags matches
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} responses.PaginatedResponse{data=[]MatchSummary}
// @Router /matches [get]
func (mc *MatchController) ListMatches(c *gin.Context) {
	var input ListMatchesInput
	if err := c.ShouldBindQuery(&input); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	matches, total, err := mc.service.ListActive(c.Request.Context(), input.Page, input.Limit)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", matches, total, input.Page, input.Limit)
}

// GetMatch godoc
// @Summary Get match details
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=MatchDetail}
// @Failure 404 {object} responses.ErrorResponse
// @Router /matches/{id} [get]
func (mc *MatchController) GetMatch(c *gin.Context) {
	matchID, ok := parseMatchID(c)
	if !ok {
		return
	}

	detail, err := mc.service.GetDetail(c.Request.Context(), matchID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match retrieved", detail)
}

// GetMatchByInvite godoc
// @Summary Get match details by invite code
// @Tags matches
// @Produce json
// @Param code path string true "Invite code"
// @Success 200 {object} responses.SuccessResponse{data=MatchDetail}
// @Failure 404 {object} responses.ErrorResponse
// @Router /matches/invite/{code} [get]
func (mc *MatchController) GetMatchByInvite(c *gin.Context) {
	detail, err := mc.service.GetDetailByInviteCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match retrieved", detail)
}

// JoinMatch godoc
// @Summary Join a match
// @Description Seats the caller as confirmed, or on the waitlist when the match is full
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=RosterResult}
// @Failure 409 {object} responses.ErrorResponse "Match full or not active"
// @Router /matches/{id}/join [post]
// @Security Bearer
func (mc *MatchController) JoinMatch(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	matchID, ok := parseMatchID(c)
	if !ok {
		return
	}

	result, err := mc.service.Join(c.Request.Context(), matchID, userID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	message := "Joined match"
	if result.AlreadyMember {
		message = "Already on the roster"
	}
	responses.SendSuccess(c, http.StatusOK, message, result)
}

// LeaveMatch godoc
// @Summary Leave a match
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=Match}
// @Failure 400 {object} responses.ErrorResponse "Captain cannot leave"
// @Router /matches/{id}/leave [post]
// @Security Bearer
func (mc *MatchController) LeaveMatch(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	matchID, ok := parseMatchID(c)
	if !ok {
		return
	}

	match, err := mc.service.Leave(c.Request.Context(), matchID, userID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Left match", match)
}

// CompleteMatch godoc
// @Summary Mark a match as completed
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=Match}
// @Failure 403 {object} responses.ErrorResponse "Not the captain"
// @Failure 409 {object} responses.ErrorResponse "Match is not active"
// @Router /matches/{id}/complete [post]
// @Security Bearer
func (mc *MatchController) CompleteMatch(c *gin.Context) {
	mc.transition(c, StatusCompleted, "Match completed")
}

// CancelMatch godoc
// @Summary Cancel a match
// @Description Cancels the match and frees its slot
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=Match}
// @Failure 403 {object} responses.ErrorResponse "Not the captain"
// @Failure 409 {object} responses.ErrorResponse "Match is not active"
// @Router /matches/{id}/cancel [post]
// @Security Bearer
func (mc *MatchController) CancelMatch(c *gin.Context) {
	mc.transition(c, StatusCancelled, "Match cancelled")
}

func (mc *MatchController) transition(c *gin.Context, to MatchStatus, message string) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	matchID, ok := parseMatchID(c)
	if !ok {
		return
	}

	match, err := mc.service.Transition(c.Request.Context(), matchID, userID, to)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, message, match)
}

func parseMatchID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		responses.BadRequest(c, "invalid match ID")
		return 0, false
	}
	return uint(id), true
}
