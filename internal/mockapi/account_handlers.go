package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type twoFactorBody struct {
	Code   string `json:"code"`
	Secret string `json:"secret"`
}

func (s *Server) accountRoutes(r *gin.RouterGroup) {
	r.POST("/customers", func(c *gin.Context) {
		var in Signup
		if !bind(c, &in) {
			return
		}
		cust, err := s.store.Signup(in)
		reply(c, http.StatusCreated, cust, err)
	})
	r.POST("/customers/login", func(c *gin.Context) {
		var in credentials
		if !bind(c, &in) {
			return
		}
		cust, err := s.store.LoginCustomer(in.Email, in.Password)
		reply(c, http.StatusOK, cust, err)
	})
	r.POST("/vendors/login", func(c *gin.Context) {
		var in credentials
		if !bind(c, &in) {
			return
		}
		v, err := s.store.LoginVendor(in.Email, in.Password)
		reply(c, http.StatusOK, v, err)
	})
	r.POST("/admin/login", func(c *gin.Context) {
		var in struct {
			Identifier string `json:"identifier"`
			Password   string `json:"password"`
		}
		if !bind(c, &in) {
			return
		}
		name, err := s.store.LoginAdmin(in.Identifier, in.Password)
		reply(c, http.StatusOK, gin.H{"username": name}, err)
	})
	r.POST("/customers/forgot-password", func(c *gin.Context) {
		var in struct {
			Email string `json:"email"`
		}
		if !bind(c, &in) {
			return
		}
		s.store.ForgotPassword(in.Email)
		c.JSON(http.StatusOK, gin.H{"message": "If the email is registered, a reset link has been sent"})
	})
	r.POST("/customers/reset-password", func(c *gin.Context) {
		var in struct {
			Token       string `json:"token"`
			NewPassword string `json:"newPassword"`
		}
		if !bind(c, &in) {
			return
		}
		reply(c, http.StatusNoContent, nil, s.store.ResetPassword(in.Token, in.NewPassword))
	})

	tfa := r.Group("/customers/2fa")
	tfa.POST("/setup", func(c *gin.Context) {
		setup, err := s.store.SetupTwoFactor(c.Query("customerId"))
		reply(c, http.StatusOK, setup, err)
	})
	tfa.POST("/verify", func(c *gin.Context) {
		var in twoFactorBody
		if !bind(c, &in) {
			return
		}
		reply(c, http.StatusNoContent, nil, s.store.EnableTwoFactor(c.Query("customerId"), in.Code, in.Secret))
	})
	tfa.POST("/validate", func(c *gin.Context) {
		var in twoFactorBody
		if !bind(c, &in) {
			return
		}
		ok, err := s.store.ValidateTwoFactor(c.Query("customerId"), in.Code)
		reply(c, http.StatusOK, gin.H{"valid": ok}, err)
	})
	tfa.POST("/disable", func(c *gin.Context) {
		var in twoFactorBody
		if !bind(c, &in) {
			return
		}
		reply(c, http.StatusNoContent, nil, s.store.DisableTwoFactor(c.Query("customerId"), in.Code))
	})
}
