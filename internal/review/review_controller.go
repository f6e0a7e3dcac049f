package review

import (
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/kickoff/internal/common"
	"github.com/DhavalSuthar-24/kickoff/pkg/responses"
	"github.com/DhavalSuthar-24/kickoff/pkg/validator"
	"github.com/gin-gonic/gin"
)

// ReviewController handles settlement requests
type ReviewController struct {
	settler *Settler
	reviews ReviewRepository
}

func NewReviewController(settler *Settler, reviews ReviewRepository) *ReviewController {
	return &ReviewController{settler: settler, reviews: reviews}
}

// SettleMatch godoc
// @Summary Submit reviews and no-shows for a completed match
// @Description Captain only. Already recorded reviews and no-shows are skipped.
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param settlement body SettlementInput true "Reviews and no-shows"
// @Success 200 {object} responses.SuccessResponse{data=SettlementResult}
// @Failure 400 {object} responses.ErrorResponse "Invalid review"
// @Failure 403 {object} responses.ErrorResponse "Not the captain"
// @Failure 409 {object} responses.ErrorResponse "Match not completed"
// @Router /reviews/match/{id} [post]
// @Security Bearer
func (rc *ReviewController) SettleMatch(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	matchID, ok := parseMatchID(c)
	if !ok {
		return
	}

	var input SettlementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	batch, err := input.Batch()
	if err != nil {
		responses.FromError(c, err)
		return
	}

	result, err := rc.settler.Settle(c.Request.Context(), matchID, userID, batch)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Settlement processed", result)
}

// ListMatchReviews godoc
// @Summary List reviews recorded for a match
// @Tags reviews
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=[]PlayerReview}
// @Router /reviews/match/{id} [get]
func (rc *ReviewController) ListMatchReviews(c *gin.Context) {
	matchID, ok := parseMatchID(c)
	if !ok {
		return
	}
	reviews, err := rc.reviews.ListForMatch(c.Request.Context(), matchID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Reviews retrieved", reviews)
}

func parseMatchID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		responses.BadRequest(c, "invalid match ID")
		return 0, false
	}
	return uint(id), true
}
