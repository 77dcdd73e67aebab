package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) orderRoutes(r *gin.RouterGroup) {
	r.POST("/orders", func(c *gin.Context) {
		var in PlaceOrder
		if !bind(c, &in) {
			return
		}
		o, err := s.store.CreateOrder(in)
		reply(c, http.StatusCreated, o, err)
	})
	r.GET("/orders/:id", func(c *gin.Context) {
		o, err := s.store.Order(c.Param("id"))
		reply(c, http.StatusOK, o, err)
	})
	r.GET("/orders/customer/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.store.CustomerOrders(c.Param("id")))
	})
	r.PUT("/orders/:id/status", func(c *gin.Context) {
		o, err := s.store.SetOrderStatus(c.Param("id"), c.Query("status"))
		reply(c, http.StatusOK, o, err)
	})
	r.POST("/orders/:id/cancel", func(c *gin.Context) {
		o, err := s.store.CancelOrder(c.Param("id"), c.Query("cancellationType"))
		reply(c, http.StatusOK, o, err)
	})
}

func (s *Server) paymentRoutes(r *gin.RouterGroup) {
	r.POST("/payments/order/:id", func(c *gin.Context) {
		p, err := s.store.CreatePayment(c.Param("id"), c.Query("paymentMethod"))
		reply(c, http.StatusCreated, p, err)
	})
	r.GET("/payments/:id", func(c *gin.Context) {
		p, err := s.store.Payment(c.Param("id"))
		reply(c, http.StatusOK, p, err)
	})
	r.POST("/payments/:id/process", func(c *gin.Context) {
		p, err := s.store.ProcessPayment(c.Param("id"))
		reply(c, http.StatusOK, p, err)
	})
	r.POST("/payments/:id/refund", func(c *gin.Context) {
		p, err := s.store.RefundPayment(c.Param("id"))
		reply(c, http.StatusOK, p, err)
	})
	r.POST("/payments/:id/cancel", func(c *gin.Context) {
		p, err := s.store.CancelPayment(c.Param("id"))
		reply(c, http.StatusOK, p, err)
	})
}
