package controllers

import (
	"errors"
	"strconv"

	"panier-api/models"
	"panier-api/services"

	"github.com/gin-gonic/gin"
)

type PanierController struct {
	service *services.PanierService
}

func NewPanierController(service *services.PanierService) *PanierController {
	return &PanierController{service: service}
}

// @Summary Get cart
// @Description Get the cart for a user. A user without a stored cart gets an empty one.
// @Tags Panier
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} models.PanierDTO
// @Failure 400 {object} models.ErrorResponse
// @Router /panier/{userId} [get]
func (ctrl *PanierController) GetPanier(c *gin.Context) {
	panier, err := ctrl.service.GetPanier(c.Request.Context(), c.Param("userId"))
	if err != nil {
		ctrl.handleError(c, err)
		return
	}
	c.JSON(200, panier)
}

// @Summary Add item to cart
// @Description Add a product to the cart. Adding an existing product accumulates its quantity and refreshes the product snapshot.
// @Tags Panier
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param item body models.AddItemRequest true "Product snapshot and quantity"
// @Success 200 {object} models.PanierDTO
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /panier/{userId}/items [post]
func (ctrl *PanierController) AddItem(c *gin.Context) {
	var req models.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request body"})
		return
	}

	panier, err := ctrl.service.AddItem(c.Request.Context(), c.Param("userId"), req)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}
	c.JSON(200, panier)
}

// @Summary Update item quantity
// @Description Set the absolute quantity of a cart item. Quantity 0 removes the item.
// @Tags Panier
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param produitId path int true "Product ID"
// @Param quantity body models.UpdateQuantityRequest true "New quantity"
// @Success 200 {object} models.PanierDTO
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /panier/{userId}/items/{produitId} [put]
func (ctrl *PanierController) UpdateItemQuantity(c *gin.Context) {
	produitID, err := strconv.Atoi(c.Param("produitId"))
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid product ID"})
		return
	}

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request body"})
		return
	}

	panier, err := ctrl.service.UpdateItemQuantity(c.Request.Context(), c.Param("userId"), produitID, req.Quantity)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}
	c.JSON(200, panier)
}

// @Summary Remove item from cart
// @Description Remove a product from the cart. Removing a product that is not in the cart is a no-op.
// @Tags Panier
// @Produce json
// @Param userId path string true "User ID"
// @Param produitId path int true "Product ID"
// @Success 200 {object} models.PanierDTO
// @Failure 400 {object} models.ErrorResponse
// @Router /panier/{userId}/items/{produitId} [delete]
func (ctrl *PanierController) RemoveItem(c *gin.Context) {
	produitID, err := strconv.Atoi(c.Param("produitId"))
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid product ID"})
		return
	}

	panier, err := ctrl.service.RemoveItem(c.Request.Context(), c.Param("userId"), produitID)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}
	c.JSON(200, panier)
}

// @Summary Clear cart
// @Description Delete the whole cart for a user. Clearing an absent cart succeeds.
// @Tags Panier
// @Param userId path string true "User ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Router /panier/{userId} [delete]
func (ctrl *PanierController) ClearPanier(c *gin.Context) {
	if err := ctrl.service.ClearPanier(c.Request.Context(), c.Param("userId")); err != nil {
		ctrl.handleError(c, err)
		return
	}
	c.Status(204)
}

func (ctrl *PanierController) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidArgument):
		c.JSON(400, models.ErrorResponse{Success: false, Message: err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(404, models.ErrorResponse{Success: false, Message: err.Error()})
	default:
		c.JSON(500, models.ErrorResponse{Success: false, Message: err.Error()})
	}
}
