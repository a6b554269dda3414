package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// ListGyms godoc
// @Summary      List gyms
// @Description  Returns all active gyms.
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   Gym
// @Failure      500  {object}  gin.H
// @Router       /gyms [get]
func (h *Handler) ListGyms(c *gin.Context) {
	gyms, err := h.repo.ListGyms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gyms"})
		return
	}

	c.JSON(http.StatusOK, gyms)
}

// GetGym godoc
// @Summary      Get gym
// @Description  Returns a single gym with its subscription plan set.
// @Tags         catalog
// @Produce      json
// @Param        gymID  path      int  true  "Gym ID"
// @Success      200    {object}  map[string]interface{}
// @Failure      400    {object}  gin.H
// @Failure      404    {object}  gin.H
// @Router       /gyms/{gymID} [get]
func (h *Handler) GetGym(c *gin.Context) {
	gymID, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gym ID"})
		return
	}

	gym, err := h.repo.GetGymByID(c.Request.Context(), gymID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gym not found"})
		return
	}

	planIDs, err := h.repo.PlanIDsForGym(c.Request.Context(), gymID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gym plans"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"gym":      gym,
		"plan_ids": planIDs,
	})
}

// ListPlans godoc
// @Summary      List subscription plans
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   Plan
// @Failure      500  {object}  gin.H
// @Router       /plans [get]
func (h *Handler) ListPlans(c *gin.Context) {
	plans, err := h.repo.ListPlans(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch plans"})
		return
	}

	c.JSON(http.StatusOK, plans)
}

// ListProducts godoc
// @Summary      List supplement products
// @Description  Returns all sellable supplement products.
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   Product
// @Failure      500  {object}  gin.H
// @Router       /products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.repo.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, products)
}
