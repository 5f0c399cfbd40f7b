package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/flightlog-collective/skylog/internal/interfaces/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func newTestContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestFillJwtHeaderWithoutToken(t *testing.T) {
	header := &JwtHeader{}
	if status := fillJwtHeader(newTestContext(), nil, header); status != &ErrUnauthenticated {
		t.Errorf("fillJwtHeader() = %v; expected ErrUnauthenticated without a token", status)
	}
}

func TestFillJwtHeaderRejectsEmptyProviderId(t *testing.T) {
	ctx := newTestContext()
	// 签名合法但缺少身份声明的令牌不能触发本地用户创建
	ctx.Set("user", jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{ProviderId: "", Email: "a@example.com"}))

	header := &JwtHeader{}
	if status := fillJwtHeader(ctx, nil, header); status != &ErrUnauthenticated {
		t.Errorf("fillJwtHeader() = %v; expected ErrUnauthenticated for an empty provider id", status)
	}
	if header.Uid != "" {
		t.Errorf("header.Uid = %q; expected it untouched on rejection", header.Uid)
	}
}
