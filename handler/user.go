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

type User struct {
	UserService service.IUserService
	Config      *config.Config
}

func (h *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1")
	g.POST("/articles/:id/hide", authorize, context.Wrap(h.Hide))
	g.GET("/preferences", authorize, context.Wrap(h.ListPreferences))
	g.POST("/preferences", authorize, context.Wrap(h.AddPreference))
	g.DELETE("/preferences/:category", authorize, context.Wrap(h.RemovePreference))
}

// Hide 个人屏蔽一篇文章
func (h *User) Hide(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	articleID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.UserService.HideArticle(c.Request.Context(), userID, articleID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

// ListPreferences 当前订阅的分类
func (h *User) ListPreferences(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	categories, err := h.UserService.ListPreferences(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, types.PreferenceResponse{Categories: categories})
	return nil
}

// AddPreference 订阅分类
func (h *User) AddPreference(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.PreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.UserService.AddPreference(c.Request.Context(), userID, req.Category); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

// RemovePreference 退订分类
func (h *User) RemovePreference(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	category := c.Param("category")
	if category == "" {
		return response.NewError(http.StatusBadRequest, "缺少分类")
	}

	if err := h.UserService.RemovePreference(c.Request.Context(), userID, category); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
