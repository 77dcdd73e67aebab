package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type cartLineBody struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

func (s *Server) cartRoutes(r *gin.RouterGroup) {
	carts := r.Group("/carts")

	carts.GET("/customer/:id", func(c *gin.Context) {
		cart, err := s.store.Cart(c.Param("id"))
		reply(c, http.StatusOK, cart, err)
	})
	carts.POST("/customer/:id", func(c *gin.Context) {
		cart, err := s.store.CreateCart(c.Param("id"))
		reply(c, http.StatusOK, cart, err)
	})
	carts.POST("/customer/:id/add-item", func(c *gin.Context) {
		var body cartLineBody
		if !bind(c, &body) {
			return
		}
		cart, err := s.store.AddToCart(c.Param("id"), body.ItemID, body.Quantity)
		reply(c, http.StatusOK, cart, err)
	})
	carts.POST("/customer/:id/remove-item", func(c *gin.Context) {
		var body cartLineBody
		if !bind(c, &body) {
			return
		}
		cart, err := s.store.RemoveFromCart(c.Param("id"), body.ItemID, body.Quantity)
		reply(c, http.StatusOK, cart, err)
	})
	carts.DELETE("/customer/:id/items/:itemId", func(c *gin.Context) {
		cart, err := s.store.DeleteCartLine(c.Param("id"), c.Param("itemId"))
		reply(c, http.StatusOK, cart, err)
	})
	carts.POST("/customer/:id/checkout", func(c *gin.Context) {
		reply(c, http.StatusNoContent, nil, s.store.CheckoutCart(c.Param("id")))
	})
	carts.DELETE("/:id", func(c *gin.Context) {
		reply(c, http.StatusNoContent, nil, s.store.DeleteCart(c.Param("id")))
	})
}
