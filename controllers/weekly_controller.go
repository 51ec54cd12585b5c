// controllers/weekly_controller.go
package controllers

import (
	"net/http"
	"time"

	"healthtrack/services"

	"github.com/gin-gonic/gin"
)

type WeeklyController struct {
	Svc *services.WeeklyService
}

func NewWeeklyController(svc *services.WeeklyService) *WeeklyController {
	return &WeeklyController{Svc: svc}
}

func weekParam(c *gin.Context) (time.Time, bool) {
	v := c.DefaultQuery("week_start", time.Now().Format("2006-01-02"))
	d, err := time.ParseInLocation("2006-01-02", v, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week_start, use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return d, true
}

// GET /weekly?week_start=YYYY-MM-DD (any date in the target week)
func (h *WeeklyController) Get(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	date, ok := weekParam(c)
	if !ok {
		return
	}

	out, err := h.Svc.GetWeek(userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *WeeklyController) Upsert(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	date, ok := weekParam(c)
	if !ok {
		return
	}

	var up services.WeeklyUpdate
	if err := c.ShouldBindJSON(&up); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.Svc.Upsert(userID, date, up)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
