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

func (h *Handler) ListArtists(c *gin.Context) {
	artists, err := h.service.ListArtists()
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "artists.html", gin.H{"Artists": artists})
}

func (h *Handler) SearchArtists(c *gin.Context) {
	term := c.PostForm("search_term")
	results, err := h.service.SearchArtists(term)
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "search_artists.html", gin.H{
		"SearchTerm": term,
		"Count":      results.Count,
		"Data":       results.Data,
	})
}

func (h *Handler) ShowArtist(c *gin.Context) {
	id, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		h.NotFound(c)
		return
	}
	detail, err := h.service.ArtistDetail(id, time.Now())
	if errors.Is(err, store.ErrNotFound) {
		h.NotFound(c)
		return
	}
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "show_artist.html", gin.H{
		"Artist": detail,
		"Flash":  c.Query("flash"),
	})
}

func (h *Handler) NewArtistForm(c *gin.Context) {
	c.HTML(http.StatusOK, "new_artist.html", nil)
}

func (h *Handler) CreateArtist(c *gin.Context) {
	outcome := h.service.CreateArtist(artistInputFromForm(c))
	h.renderHome(c, outcome.Message)
}

func (h *Handler) EditArtistForm(c *gin.Context) {
	id, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		h.NotFound(c)
		return
	}
	detail, err := h.service.ArtistDetail(id, time.Now())
	if errors.Is(err, store.ErrNotFound) {
		h.NotFound(c)
		return
	}
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "edit_artist.html", gin.H{"Artist": detail.Artist})
}

func (h *Handler) EditArtist(c *gin.Context) {
	id, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		h.NotFound(c)
		return
	}
	outcome := h.service.EditArtist(id, artistInputFromForm(c))
	switch outcome.Status {
	case booking.StatusSuccess:
		c.Redirect(http.StatusSeeOther,
			fmt.Sprintf("/artists/%d?flash=%s", id, url.QueryEscape(outcome.Message)))
	case booking.StatusNotFound:
		h.NotFound(c)
	default:
		h.renderHome(c, outcome.Message)
	}
}

func artistInputFromForm(c *gin.Context) booking.ArtistInput {
	return booking.ArtistInput{
		Name:         c.PostForm("name"),
		City:         c.PostForm("city"),
		State:        c.PostForm("state"),
		Phone:        c.PostForm("phone"),
		Genre:        c.PostForm("genres"),
		FacebookLink: c.PostForm("facebook_link"),
	}
}
