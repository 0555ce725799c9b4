package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func TestSession_IssuesCookieWhenMissing(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	err := Session(false)(func(c echo.Context) error {
		seen = GetSessionID(c)
		return c.NoContent(http.StatusOK)
	})(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("Expected a UUID session ID, got %q", seen)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != SessionCookieName {
		t.Fatalf("Expected %s cookie, got %v", SessionCookieName, cookies)
	}
	if cookies[0].Value != seen {
		t.Errorf("Expected cookie value %s, got %s", seen, cookies[0].Value)
	}
	if !cookies[0].HttpOnly {
		t.Error("Expected HttpOnly session cookie")
	}
}

func TestSession_ReusesExistingCookie(t *testing.T) {
	e := echo.New()
	existing := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: existing})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	_ = Session(false)(func(c echo.Context) error {
		seen = GetSessionID(c)
		return nil
	})(c)

	if seen != existing {
		t.Errorf("Expected session %s, got %s", existing, seen)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("Expected no new cookie for an existing session")
	}
}

func TestSession_ReplacesMalformedCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "not-a-uuid"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	_ = Session(false)(func(c echo.Context) error {
		seen = GetSessionID(c)
		return nil
	})(c)

	if seen == "not-a-uuid" || seen == "" {
		t.Errorf("Expected a fresh session ID, got %q", seen)
	}
}

func TestGetSessionID_Missing(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	if got := GetSessionID(c); got != "" {
		t.Errorf("Expected empty session ID, got %q", got)
	}
}
