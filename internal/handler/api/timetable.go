package api

import (
	"net/http"

	reqdto "facility-booking/internal/handler/dto/request"
	resdto "facility-booking/internal/handler/dto/response"
	"facility-booking/internal/handler/httperr"
	"facility-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TimetableHandler struct {
	q queries.TimetableQueries
}

func NewTimetableHandler(q queries.TimetableQueries) *TimetableHandler {
	return &TimetableHandler{q: q}
}

// @Summary Get timetable
// @Description Slot grid and per-slot room availability for the coming days
// @Tags timetable
// @Produce json
// @Param days query int false "Number of days starting today"
// @Success 200 {object} resdto.TimetableResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /timetable [get]
func (h *TimetableHandler) GetTimetable(c *gin.Context) {
	var query reqdto.TimetableQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid days parameter", nil)
		return
	}

	view, err := h.q.GetTimetable(c.Request.Context(), query.Days)
	if err != nil {
		status, msg := statusFromError(err)
		httperr.AbortWithError(c, status, err, msg, nil)
		return
	}

	res, err := resdto.FromTimetableView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get room
// @Description Room with its equipment categories and size
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *TimetableHandler) GetRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetRoomDetail(c.Request.Context(), id)
	if err != nil {
		status, msg := statusFromError(err)
		httperr.AbortWithError(c, status, err, msg, nil)
		return
	}

	res, err := resdto.FromRoomDetailView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
