package mockapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (s *Server) catalogRoutes(r *gin.RouterGroup) {
	r.GET("/categories", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.store.Categories())
	})

	r.GET("/items", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.store.Items(nil))
	})
	r.GET("/items/:id", func(c *gin.Context) {
		it, err := s.store.Item(c.Param("id"))
		reply(c, http.StatusOK, it, err)
	})
	r.GET("/items/vendor/:id", func(c *gin.Context) {
		id := c.Param("id")
		c.JSON(http.StatusOK, s.store.Items(func(it *Item) bool { return it.VendorID == id }))
	})
	r.GET("/items/category/:name", func(c *gin.Context) {
		name := c.Param("name")
		c.JSON(http.StatusOK, s.store.Items(func(it *Item) bool {
			for _, cat := range it.Categories {
				if strings.EqualFold(cat.Name, name) {
					return true
				}
			}
			return false
		}))
	})
	r.GET("/items/search/:keyword", func(c *gin.Context) {
		kw := strings.ToLower(c.Param("keyword"))
		c.JSON(http.StatusOK, s.store.Items(func(it *Item) bool {
			return strings.Contains(strings.ToLower(it.Name), kw) ||
				strings.Contains(strings.ToLower(it.Description), kw)
		}))
	})
	r.GET("/items/cheaper-than/:price", func(c *gin.Context) {
		limit, err := decimal.NewFromString(c.Param("price"))
		if err != nil {
			abort(c, fail(http.StatusBadRequest, "Invalid price: %s", c.Param("price")))
			return
		}
		c.JSON(http.StatusOK, s.store.Items(func(it *Item) bool { return it.Price.LessThan(limit) }))
	})
	r.POST("/items", func(c *gin.Context) {
		var in ItemInput
		if !bind(c, &in) {
			return
		}
		it, err := s.store.CreateItem(in)
		reply(c, http.StatusCreated, it, err)
	})
	r.PUT("/items/:id", func(c *gin.Context) {
		var in ItemInput
		if !bind(c, &in) {
			return
		}
		it, err := s.store.UpdateItem(c.Param("id"), in)
		reply(c, http.StatusOK, it, err)
	})
	r.DELETE("/items/:id", func(c *gin.Context) {
		reply(c, http.StatusNoContent, nil, s.store.DeleteItem(c.Param("id")))
	})

	r.GET("/vendors", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.store.Vendors(nil))
	})
	r.GET("/vendors/:id", func(c *gin.Context) {
		v, err := s.store.Vendor(c.Param("id"))
		reply(c, http.StatusOK, v, err)
	})
	r.GET("/vendors/search", func(c *gin.Context) {
		kw := strings.ToLower(c.Query("keyword"))
		c.JSON(http.StatusOK, s.store.Vendors(func(v *Vendor) bool {
			return strings.Contains(strings.ToLower(v.Name), kw) ||
				strings.Contains(strings.ToLower(v.Location), kw)
		}))
	})
	r.GET("/vendors/status/:status", func(c *gin.Context) {
		status := strings.ToUpper(c.Param("status"))
		c.JSON(http.StatusOK, s.store.Vendors(func(v *Vendor) bool { return v.Status == status }))
	})
	r.POST("/vendors/:id/rating", func(c *gin.Context) {
		rating, err := strconv.Atoi(c.Query("rating"))
		if err != nil {
			abort(c, fail(http.StatusBadRequest, "Rating must be a number"))
			return
		}
		v, err := s.store.RateVendor(c.Param("id"), rating)
		reply(c, http.StatusOK, v, err)
	})
}
