package sport

import (
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/kickoff/pkg/responses"
	"github.com/DhavalSuthar-24/kickoff/pkg/validator"
	"github.com/gin-gonic/gin"
)

// SportController handles API requests related to the sports catalog.
type SportController struct {
	repo SportRepository
}

// NewSportController creates a new SportController.
func NewSportController(repo SportRepository) *SportController {
	return &SportController{repo: repo}
}

// CreateSport godoc
// @Summary Add a sport to the catalog
// @Description Admin only
// @Tags sports
// @Accept json
// @Produce json
// @Param sport body CreateSportRequest true "Sport creation request"
// @Success 201 {object} responses.SuccessResponse{data=Sport}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 409 {object} responses.ErrorResponse "Sport with this name already exists"
// @Router /sports [post]
// @Security Bearer
func (sc *SportController) CreateSport(c *gin.Context) {
	var req CreateSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	sport := &Sport{
		Name:              req.Name,
		Description:       req.Description,
		Icon:              req.Icon,
		DefaultMaxPlayers: req.DefaultMaxPlayers,
	}
	if err := sc.repo.CreateSport(c.Request.Context(), sport); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Sport created successfully", sport)
}

// GetAllSports godoc
// @Summary List the sports catalog
// @Tags sports
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param search query string false "Search term for name or description"
// @Success 200 {object} responses.PaginatedResponse{data=[]Sport}
// @Router /sports [get]
func (sc *SportController) GetAllSports(c *gin.Context) {
	var input ListSportsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	sports, total, err := sc.repo.GetAllSports(c.Request.Context(), input.Page, input.Limit, input.Search)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", sports, total, input.Page, input.Limit)
}

// GetSportByID godoc
// @Summary Get a sport
// @Tags sports
// @Produce json
// @Param sport_id path int true "Sport ID"
// @Success 200 {object} responses.SuccessResponse{data=Sport}
// @Failure 404 {object} responses.ErrorResponse "Sport not found"
// @Router /sports/{sport_id} [get]
func (sc *SportController) GetSportByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("sport_id"), 10, 32)
	if err != nil || id == 0 {
		responses.BadRequest(c, "invalid sport ID")
		return
	}

	sport, err := sc.repo.GetSportByID(c.Request.Context(), uint(id))
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Sport retrieved", sport)
}
