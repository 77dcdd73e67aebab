package mockapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (s *Server) adminRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")

	admin.GET("/dashboard/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.store.Stats())
	})
	admin.GET("/orders/recent", func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
		if err != nil || limit <= 0 {
			abort(c, fail(http.StatusBadRequest, "limit must be a positive number"))
			return
		}
		c.JSON(http.StatusOK, s.store.RecentOrders(limit))
	})
	admin.GET("/revenue", func(c *gin.Context) {
		rev, err := s.store.Revenue(c.Query("period"))
		reply(c, http.StatusOK, rev, err)
	})
	admin.GET("/vendors/performance", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.store.VendorPerformance())
	})
}
