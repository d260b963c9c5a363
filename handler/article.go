package handler

import (
	"Plume/config"
	"Plume/middleware"
	"Plume/models"
	"Plume/pkg/context"
	"Plume/pkg/response"
	"Plume/service"
	"Plume/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Article struct {
	ArticleService  service.IArticleService
	ReactionService service.IReactionService
	FeedService     service.IFeedService
	Config          *config.Config
}

func (h *Article) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1")
	g.GET("/explore", context.Wrap(h.Explore))
	g.GET("/articles/rank", context.Wrap(h.Rank))
	g.GET("/articles/:id", context.Wrap(h.Get))
	g.GET("/users/:id/articles", context.Wrap(h.AuthorFeed))
	g.GET("/feed", authorize, context.Wrap(h.Following))
	g.POST("/articles", authorize, context.Wrap(h.Create))
	g.PUT("/articles/:id", authorize, context.Wrap(h.Update))
	g.DELETE("/articles/:id", authorize, context.Wrap(h.Delete))
	g.POST("/articles/:id/like", authorize, context.Wrap(h.Like))
	g.POST("/articles/:id/dislike", authorize, context.Wrap(h.Dislike))
}

// Following 关注流
func (h *Article) Following(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	page, limit := pageQuery(c)

	feed, err := h.FeedService.FollowingFeed(c.Request.Context(), userID, page, limit)
	if err != nil {
		return err
	}
	response.Success(c, feed)
	return nil
}

// Explore 发现流，无需登录
func (h *Article) Explore(c *gin.Context) error {
	page, limit := pageQuery(c)

	feed, err := h.FeedService.ExploreFeed(c.Request.Context(), page, limit)
	if err != nil {
		return err
	}
	response.Success(c, feed)
	return nil
}

// AuthorFeed 作者主页流
func (h *Article) AuthorFeed(c *gin.Context) error {
	authorID, err := idParam(c, "id")
	if err != nil {
		return err
	}
	page, limit := pageQuery(c)

	feed, err := h.FeedService.AuthorFeed(c.Request.Context(), authorID, page, limit)
	if err != nil {
		return err
	}
	response.Success(c, feed)
	return nil
}

// Rank 点赞榜
func (h *Article) Rank(c *gin.Context) error {
	n, _ := strconv.Atoi(c.DefaultQuery("top", "10"))

	items, err := h.FeedService.TopLiked(c.Request.Context(), n)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

// Get 单篇详情
func (h *Article) Get(c *gin.Context) error {
	articleID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	item, err := h.FeedService.GetArticle(c.Request.Context(), articleID)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}

// Create 发布文章
func (h *Article) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	articleID, err := h.ArticleService.Publish(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"article_id": articleID})
	return nil
}

// Update 编辑文章
func (h *Article) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	articleID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req types.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.ArticleService.Update(c.Request.Context(), userID, articleID, &req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

// Delete 删除文章
func (h *Article) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	articleID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.ArticleService.Delete(c.Request.Context(), userID, context.GetRole(c), articleID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

// Like 点赞/取消点赞
func (h *Article) Like(c *gin.Context) error {
	return h.react(c, models.ReactionLike)
}

// Dislike 点踩/取消点踩
func (h *Article) Dislike(c *gin.Context) error {
	return h.react(c, models.ReactionDislike)
}

func (h *Article) react(c *gin.Context, intent uint8) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	articleID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	snap, err := h.ReactionService.React(c.Request.Context(), userID, articleID, intent)
	if err != nil {
		return err
	}
	response.Success(c, snap)
	return nil
}
