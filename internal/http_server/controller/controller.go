// Package controller
package controller

import (
	"github.com/flightlog-collective/skylog/internal/http_server/service"
	. "github.com/flightlog-collective/skylog/internal/interfaces/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// fillJwtHeader 从会话令牌解析身份并解析为本地用户, 首次请求时按需创建
func fillJwtHeader(ctx echo.Context, provisioner *service.Provisioner, header *JwtHeader) *ApiStatus {
	token, ok := ctx.Get("user").(*jwt.Token)
	if !ok {
		return &ErrUnauthenticated
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.ProviderId == "" {
		// 签名合法但缺少身份声明的令牌不能落地成本地用户
		return &ErrUnauthenticated
	}

	user, _, err := provisioner.EnsureUser(ctx.Request().Context(), claims.ProviderId, claims.Email)
	if err != nil {
		return &ErrDatabaseFail
	}

	header.Uid = user.ID
	header.ProviderId = user.ProviderId
	header.Role = user.Role
	header.Ip = ctx.RealIP()
	header.UserAgent = ctx.Request().UserAgent()
	return nil
}
