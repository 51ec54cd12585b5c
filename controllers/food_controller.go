// controllers/food_controller.go
package controllers

import (
	"net/http"

	"healthtrack/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Svc *services.FoodEntryService
}

func NewFoodController(svc *services.FoodEntryService) *FoodController {
	return &FoodController{Svc: svc}
}

// POST /daily/:date/foods — plain food entry, or from a template when
// the body carries template_id instead of nutrition fields.
func (h *FoodController) Add(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	date, ok := parseDateParam(c, "date")
	if !ok {
		return
	}

	var req struct {
		TemplateID *uint `json:"template_id"`
		services.FoodEntryInput
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.TemplateID != nil {
		fe, err := h.Svc.AddFromTemplate(userID, date, *req.TemplateID, req.MealType)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, fe)
		return
	}

	fe, err := h.Svc.Add(userID, date, req.FoodEntryInput)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fe)
}

func (h *FoodController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	date, ok := parseDateParam(c, "date")
	if !ok {
		return
	}

	entries, err := h.Svc.ListForDate(userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *FoodController) Update(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var in services.FoodEntryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fe, err := h.Svc.Update(userID, id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fe)
}

func (h *FoodController) Delete(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.Svc.Delete(userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
