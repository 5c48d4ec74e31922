package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func paramsFor(t *testing.T, query string) Params {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return FromContext(e.NewContext(req, rec))
}

func TestFromContextDefaults(t *testing.T) {
	p := paramsFor(t, "")
	if p.Limit != DefaultLimit {
		t.Errorf("expected default limit %d, got %d", DefaultLimit, p.Limit)
	}
	if p.Offset != 0 {
		t.Errorf("expected offset 0, got %d", p.Offset)
	}
}

func TestFromContextCapsLimit(t *testing.T) {
	p := paramsFor(t, "limit=500")
	if p.Limit != MaxLimit {
		t.Errorf("expected limit capped at %d, got %d", MaxLimit, p.Limit)
	}
}

func TestFromContextNegativeOffset(t *testing.T) {
	p := paramsFor(t, "offset=-5")
	if p.Offset != 0 {
		t.Errorf("expected offset clamped to 0, got %d", p.Offset)
	}
}

func TestFromContextExplicit(t *testing.T) {
	p := paramsFor(t, "limit=10&offset=30")
	if p.Limit != 10 || p.Offset != 30 {
		t.Errorf("unexpected params: %+v", p)
	}
}

func TestNewResponseHasMore(t *testing.T) {
	r := NewResponse(nil, 50, Params{Limit: 20, Offset: 0})
	if !r.HasMore {
		t.Error("expected has_more for first page of 50")
	}
	r = NewResponse(nil, 50, Params{Limit: 20, Offset: 40})
	if r.HasMore {
		t.Error("expected no more past last page")
	}
	if !(Params{Limit: 20, Offset: 20}).HasNext(50) {
		t.Error("expected next page at offset 20 of 50")
	}
}

func TestSQLClause(t *testing.T) {
	p := Params{Limit: 20, Offset: 40}
	if p.SQL() != "LIMIT 20 OFFSET 40" {
		t.Errorf("unexpected clause: %s", p.SQL())
	}
	if p.NextOffset() != 60 {
		t.Errorf("unexpected next offset: %d", p.NextOffset())
	}
}
