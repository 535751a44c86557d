// Package handlers renders the directory's server-side pages. Each handler
// parses form or route input, calls into the booking service, and renders a
// template or redirects; nothing here talks to the store.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/brettvs/showbill/internal/booking"
)

type Handler struct {
	service *booking.Service
	logger  *zap.Logger
}

func New(service *booking.Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Home(c *gin.Context) {
	h.renderHome(c, c.Query("flash"))
}

func (h *Handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", nil)
}

// renderHome is the safe landing page after mutations; flash carries the
// outcome message.
func (h *Handler) renderHome(c *gin.Context, flash string) {
	totals, err := h.service.Totals()
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Flash":  flash,
		"Totals": totals,
	})
}

func (h *Handler) serverError(c *gin.Context, err error) {
	h.logger.Error("handler failure",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.HTML(http.StatusInternalServerError, "500.html", nil)
}
