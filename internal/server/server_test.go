package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/brettvs/showbill/internal/booking"
	"github.com/brettvs/showbill/internal/handlers"
	"github.com/brettvs/showbill/internal/models"
	"github.com/brettvs/showbill/internal/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Venue{}, &models.Artist{}, &models.Show{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	st := store.New(db)
	service := booking.New(st, zap.NewNop())
	handler := handlers.New(service, zap.NewNop())

	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/*.html")
	setupRoutes(r, handler)
	return r, st
}

func postForm(t *testing.T, r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func musicalHopForm() url.Values {
	return url.Values{
		"name":          {"The Musical Hop"},
		"city":          {"San Francisco"},
		"state":         {"CA"},
		"address":       {"1015 Folsom St"},
		"phone":         {"123-123-1234"},
		"genres":        {"Jazz"},
		"facebook_link": {"https://facebook.com/hop"},
	}
}

func TestCreateVenueThenDuplicate(t *testing.T) {
	r, st := newTestRouter(t)

	w := postForm(t, r, "/venues/create", musicalHopForm())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "successfully created") {
		t.Errorf("body does not mention successful creation:\n%s", w.Body.String())
	}
	n, err := st.CountVenues()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("venue count = %d, want 1", n)
	}

	w = postForm(t, r, "/venues/create", musicalHopForm())
	if !strings.Contains(w.Body.String(), "already exists") {
		t.Errorf("duplicate submission body:\n%s", w.Body.String())
	}
	n, err = st.CountVenues()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("venue count after duplicate = %d, want 1", n)
	}
}

func TestCreateShowAppearsOnVenuePage(t *testing.T) {
	r, _ := newTestRouter(t)

	postForm(t, r, "/venues/create", musicalHopForm())
	postForm(t, r, "/artists/create", url.Values{
		"name":   {"The Wild Sax Band"},
		"city":   {"San Francisco"},
		"state":  {"CA"},
		"genres": {"Jazz"},
	})

	w := postForm(t, r, "/shows/create", url.Values{
		"venue_id":   {"1"},
		"artist_id":  {"1"},
		"start_time": {"2035-04-01 20:00:00"},
	})
	if !strings.Contains(w.Body.String(), "successfully created") {
		t.Fatalf("show creation body:\n%s", w.Body.String())
	}

	w = get(t, r, "/venues/1")
	body := w.Body.String()
	if !strings.Contains(body, "1 upcoming show(s)") {
		t.Errorf("venue page missing the upcoming show:\n%s", body)
	}
	if !strings.Contains(body, "0 past show(s)") {
		t.Errorf("future show counted as past:\n%s", body)
	}
	if !strings.Contains(body, "The Wild Sax Band") {
		t.Errorf("artist name not resolved on venue page:\n%s", body)
	}
}

func TestSearchVenuesPage(t *testing.T) {
	r, _ := newTestRouter(t)
	postForm(t, r, "/venues/create", musicalHopForm())

	w := postForm(t, r, "/venues/search", url.Values{"search_term": {"hop"}})
	body := w.Body.String()
	if !strings.Contains(body, "1 result(s)") || !strings.Contains(body, "The Musical Hop") {
		t.Errorf("search page:\n%s", body)
	}
}

func TestUnknownRouteRenders404(t *testing.T) {
	r, _ := newTestRouter(t)
	w := get(t, r, "/no/such/page")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestVenuePageForMissingIDRenders404(t *testing.T) {
	r, _ := newTestRouter(t)
	w := get(t, r, "/venues/99")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
