package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ListCustomers serves the minimal {id, name} projection for select widgets.
func (s *Server) ListCustomers(c *gin.Context) {
	fields, err := s.customerSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"customers": fields})
}

// ListCustomerTable serves the customers table with per-customer invoice
// totals, filtered by name or email.
func (s *Server) ListCustomerTable(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))

	rows, err := s.customerSvc.ListFiltered(c.Request.Context(), query)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"customers": rows, "query": query})
}
