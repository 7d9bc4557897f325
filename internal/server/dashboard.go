package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) GetRevenue(c *gin.Context) {
	revenue, err := s.dashboardSvc.FetchRevenue(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"revenue": revenue})
}

func (s *Server) GetLatestInvoices(c *gin.Context) {
	latest, err := s.dashboardSvc.FetchLatestInvoices(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"latest_invoices": latest})
}

func (s *Server) GetCardData(c *gin.Context) {
	cards, err := s.dashboardSvc.FetchCardData(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, cards)
}
