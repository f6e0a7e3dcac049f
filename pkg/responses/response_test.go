package responses

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/kickoff/internal/common"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{common.ErrSlotNotFound, http.StatusNotFound},
		{fmt.Errorf("create match: %w", common.ErrSlotNotAvailable), http.StatusConflict},
		{common.ErrForbidden, http.StatusForbidden},
		{common.ErrInvalidTransition, http.StatusConflict},
		{common.ErrCaptainCannotLeave, http.StatusBadRequest},
		{common.ErrInvalidCategory, http.StatusBadRequest},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusFor(tc.err), tc.err.Error())
	}
}

func TestFromError_DomainError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	FromError(c, fmt.Errorf("join: %w", common.ErrWaitlistClosed))

	require.Equal(t, http.StatusConflict, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "waitlist_closed", body.ErrorCode)
	assert.Equal(t, common.ErrWaitlistClosed.Message, body.Message)
}

func TestFromError_InternalErrorHidesMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	FromError(c, errors.New("pq: relation does not exist"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "pq:")
	assert.Len(t, c.Errors, 1)
}

func TestSendPaginated(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SendPaginated(c, http.StatusOK, "", []int{1, 2}, 25, 2, 10)

	var body PaginatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Pagination.TotalPages)
	assert.True(t, body.Pagination.HasNextPage)
	assert.True(t, body.Pagination.HasPrevPage)
	require.NotNil(t, body.Pagination.NextPage)
	assert.Equal(t, 3, *body.Pagination.NextPage)
}
