package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brettvs/showbill/internal/booking"
	"github.com/brettvs/showbill/internal/helpers"
	"github.com/brettvs/showbill/internal/store"
)

func (h *Handler) ListVenues(c *gin.Context) {
	directory, err := h.service.VenuesByCity()
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "venues.html", gin.H{
		"Cities": directory.Cities,
		"Venues": directory.Venues,
	})
}

func (h *Handler) SearchVenues(c *gin.Context) {
	term := c.PostForm("search_term")
	results, err := h.service.SearchVenues(term)
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "search_venues.html", gin.H{
		"SearchTerm": term,
		"Count":      results.Count,
		"Data":       results.Data,
	})
}

func (h *Handler) ShowVenue(c *gin.Context) {
	id, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		h.NotFound(c)
		return
	}
	detail, err := h.service.VenueDetail(id, time.Now())
	if errors.Is(err, store.ErrNotFound) {
		h.NotFound(c)
		return
	}
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "show_venue.html", gin.H{
		"Venue": detail,
		"Flash": c.Query("flash"),
	})
}

func (h *Handler) NewVenueForm(c *gin.Context) {
	c.HTML(http.StatusOK, "new_venue.html", nil)
}

func (h *Handler) CreateVenue(c *gin.Context) {
	input := venueInputFromForm(c)
	outcome := h.service.CreateVenue(input)
	h.renderHome(c, outcome.Message)
}

func (h *Handler) EditVenueForm(c *gin.Context) {
	id, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		h.NotFound(c)
		return
	}
	detail, err := h.service.VenueDetail(id, time.Now())
	if errors.Is(err, store.ErrNotFound) {
		h.NotFound(c)
		return
	}
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "edit_venue.html", gin.H{"Venue": detail.Venue})
}

func (h *Handler) EditVenue(c *gin.Context) {
	id, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		h.NotFound(c)
		return
	}
	outcome := h.service.EditVenue(id, venueInputFromForm(c))
	switch outcome.Status {
	case booking.StatusSuccess:
		c.Redirect(http.StatusSeeOther,
			fmt.Sprintf("/venues/%d?flash=%s", id, url.QueryEscape(outcome.Message)))
	case booking.StatusNotFound:
		h.NotFound(c)
	default:
		h.renderHome(c, outcome.Message)
	}
}

func (h *Handler) DeleteVenue(c *gin.Context) {
	id, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		h.NotFound(c)
		return
	}
	outcome := h.service.DeleteVenue(id)
	h.renderHome(c, outcome.Message)
}

func venueInputFromForm(c *gin.Context) booking.VenueInput {
	return booking.VenueInput{
		Name:         c.PostForm("name"),
		City:         c.PostForm("city"),
		State:        c.PostForm("state"),
		Address:      c.PostForm("address"),
		Phone:        c.PostForm("phone"),
		Genre:        c.PostForm("genres"),
		FacebookLink: c.PostForm("facebook_link"),
	}
}
