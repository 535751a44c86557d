package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brettvs/showbill/internal/booking"
	"github.com/brettvs/showbill/internal/helpers"
)

func (h *Handler) ListShows(c *gin.Context) {
	shows, err := h.service.ListShows()
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "shows.html", gin.H{"Shows": shows})
}

func (h *Handler) NewShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "new_show.html", nil)
}

func (h *Handler) CreateShow(c *gin.Context) {
	venueID, err := helpers.StringToUint(c.PostForm("venue_id"))
	if err != nil {
		h.renderHome(c, "An error occurred. Venue id must be a number.")
		return
	}
	artistID, err := helpers.StringToUint(c.PostForm("artist_id"))
	if err != nil {
		h.renderHome(c, "An error occurred. Artist id must be a number.")
		return
	}
	outcome := h.service.CreateShow(booking.ShowInput{
		VenueID:   venueID,
		ArtistID:  artistID,
		StartTime: c.PostForm("start_time"),
	})
	h.renderHome(c, outcome.Message)
}
