package handler

import (
	"Plume/pkg/response"
	"Plume/types"
	"strconv"

	"github.com/gin-gonic/gin"
)

// idParam 解析路径里的数字 id
func idParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, response.NewError(400, "非法的 "+name)
	}
	return id, nil
}

// pageQuery 解析分页参数，越界交给 service 层兜底
func pageQuery(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(types.DefaultPage)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(types.DefaultLimit)))
	return page, limit
}
