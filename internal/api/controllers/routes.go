package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, insuranceController *InsuranceController) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	plansGroup := r.Group("/plans")
	plansGroup.GET("", insuranceController.ListPlans)
	plansGroup.POST("/search", insuranceController.SearchPlans)
	plansGroup.GET("/:id", insuranceController.GetPlanDetails)

	r.GET("/compare", insuranceController.ComparePlans)
	r.GET("/providers", insuranceController.ListProviders)
	r.POST("/selections", insuranceController.SubmitSelection)
}
