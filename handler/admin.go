package handler

import (
	"Plume/config"
	"Plume/middleware"
	"Plume/pkg/context"
	"Plume/pkg/response"
	"Plume/service"
	"Plume/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Admin struct {
	ModerationService service.IModerationService
	FeedService       service.IFeedService
	StatsService      service.IStatsService
	Config            *config.Config
}

func (h *Admin) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/admin", authorize, middleware.AdminOnly())
	g.GET("/articles", context.Wrap(h.Articles))
	g.PATCH("/articles/:id/block", context.Wrap(h.SetBlocked))
	g.PATCH("/articles/:id/block/toggle", context.Wrap(h.ToggleBlocked))
	g.GET("/users", context.Wrap(h.Users))
	g.PATCH("/users/:id/block", context.Wrap(h.SetUserBlocked))
	g.PATCH("/users/:id/block/toggle", context.Wrap(h.ToggleUserBlocked))
	g.GET("/stats", context.Wrap(h.Stats))
}

// Articles 管理端全量文章流，含封禁的
func (h *Admin) Articles(c *gin.Context) error {
	page, limit := pageQuery(c)

	feed, err := h.FeedService.ModerationFeed(c.Request.Context(), page, limit)
	if err != nil {
		return err
	}
	response.Success(c, feed)
	return nil
}

// SetBlocked 显式设置封禁位，重复设置同一状态是无操作
func (h *Admin) SetBlocked(c *gin.Context) error {
	articleID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req types.SetBlockedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	snap, err := h.ModerationService.SetBlocked(c.Request.Context(), articleID, *req.Blocked)
	if err != nil {
		return err
	}
	response.Success(c, snap)
	return nil
}

// ToggleBlocked 翻转封禁位
func (h *Admin) ToggleBlocked(c *gin.Context) error {
	articleID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	snap, err := h.ModerationService.ToggleBlocked(c.Request.Context(), articleID)
	if err != nil {
		return err
	}
	response.Success(c, snap)
	return nil
}

// Users 管理端用户列表，含封禁账号
func (h *Admin) Users(c *gin.Context) error {
	page, limit := pageQuery(c)

	list, err := h.ModerationService.Users(c.Request.Context(), page, limit)
	if err != nil {
		return err
	}
	response.Success(c, list)
	return nil
}

// SetUserBlocked 显式设置账号封禁位，重复设置同一状态是无操作
func (h *Admin) SetUserBlocked(c *gin.Context) error {
	userID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req types.SetBlockedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	result, err := h.ModerationService.SetUserBlocked(c.Request.Context(), userID, *req.Blocked)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

// ToggleUserBlocked 翻转账号封禁位
func (h *Admin) ToggleUserBlocked(c *gin.Context) error {
	userID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	result, err := h.ModerationService.ToggleUserBlocked(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

// Stats 平台统计
func (h *Admin) Stats(c *gin.Context) error {
	stats, err := h.StatsService.Overview(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, stats)
	return nil
}
