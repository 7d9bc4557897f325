package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	invoicedomain "github.com/acmehq/invoicedesk/internal/invoice/domain"
	"github.com/gin-gonic/gin"
)

type invoiceListResponse struct {
	Invoices []invoicedomain.TableRow `json:"invoices"`
	Query    string                   `json:"query"`
	Page     int                      `json:"page"`
}

// ListInvoices serves one page of the filtered invoices table. Responses are
// cached per full request path until a mutation invalidates the listing.
func (s *Server) ListInvoices(c *gin.Context) {
	query, page := listingParams(c)

	cacheKey := listingCacheKey(query, page)
	if cached, ok := s.pages.Get(cacheKey); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	rows, err := s.invoiceSvc.List(c.Request.Context(), query, page)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	payload := invoiceListResponse{Invoices: rows, Query: query, Page: page}
	s.pages.Set(cacheKey, payload)
	c.JSON(http.StatusOK, payload)
}

// InvoicePages returns the total page count for the current filter.
func (s *Server) InvoicePages(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))

	total, err := s.invoiceSvc.Pages(c.Request.Context(), query)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"total_pages": total})
}

func (s *Server) GetInvoiceByID(c *gin.Context) {
	form, err := s.invoiceSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, form)
}

// CreateInvoice inserts a new invoice and, like a form post, sends the
// caller back to the refreshed listing.
func (s *Server) CreateInvoice(c *gin.Context) {
	var input invoicedomain.Input
	if err := c.ShouldBind(&input); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if err := s.invoiceSvc.Create(c.Request.Context(), input); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, invoicedomain.ListingPath)
}

func (s *Server) UpdateInvoice(c *gin.Context) {
	var input invoicedomain.Input
	if err := c.ShouldBind(&input); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if err := s.invoiceSvc.Update(c.Request.Context(), c.Param("id"), input); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, invoicedomain.ListingPath)
}

func (s *Server) DeleteInvoice(c *gin.Context) {
	if err := s.invoiceSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": invoicedomain.MsgDeleted})
}

func listingParams(c *gin.Context) (string, int) {
	query := strings.TrimSpace(c.Query("query"))

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	return query, page
}

func listingCacheKey(query string, page int) string {
	return fmt.Sprintf("%s?query=%s&page=%d", invoicedomain.ListingPath, query, page)
}
