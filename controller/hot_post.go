package controller

import (
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/service"
)

// HotPostController 提供热门帖子榜单的查询接口，数据来源为定时刷新的 Redis 缓存。
type HotPostController struct {
	hotPostService *service.HotPostService
}

// NewHotPostController 构造函数，用于创建 HotPostController 实例
func NewHotPostController(hotPostService *service.HotPostService) *HotPostController {
	return &HotPostController{
		hotPostService: hotPostService,
	}
}

// GetHotPostsByCursor 获取热门帖子列表（游标分页）
// @Summary      获取热门帖子列表 (公开, 游标加载)
// @Description  使用游标方式获取热门帖子的分页列表。首次加载不带 last_post_id，后续请求传入上一页返回的 next_cursor。榜单按浏览量排序，由后台任务定时刷新。
// @Tags         hot-posts (热门帖子)
// @Accept       json
// @Produce      json
// @Param        last_post_id query uint64 false "上一页最后一个帖子的 ID (游标)，首次加载时省略" Format(uint64)
// @Param        pageSize query int true "每页帖子数量" Format(int) default(10) minimum(1) maximum(100)
// @Success      200 {object} vo.ListPostsByCursorResponseWrapper "热门帖子检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数格式或值"
// @Failure      500 {object} vo.BaseResponseWrapper "检索热门帖子时发生内部服务器错误"
// @Router       /api/v1/community/hot-posts [get]
func (ctrl *HotPostController) GetHotPostsByCursor(c *gin.Context) {
	var lastPostID *uint64
	if lastPostIDStr := c.Query("last_post_id"); lastPostIDStr != "" {
		id, err := strconv.ParseUint(lastPostIDStr, 10, 64)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的 last_post_id 参数格式")
			return
		}
		lastPostID = &id
	}

	pageSizeStr := c.DefaultQuery("pageSize", "10")
	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 || pageSize > 100 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的 pageSize 参数 (必须在 1-100 之间)")
		return
	}

	posts, nextCursor, serviceErr := ctrl.hotPostService.GetHotPostsByCursor(c.Request.Context(), lastPostID, pageSize)
	if serviceErr != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取热门帖子列表失败: "+serviceErr.Error())
		return
	}

	response.RespondSuccess(c, &vo.ListHotPostsByCursorResponse{
		Posts:      posts,
		NextCursor: nextCursor,
	}, "热门帖子列表获取成功")
}

// RegisterRoutes 注册 HotPostController 的路由
func (ctrl *HotPostController) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/hot-posts", ctrl.GetHotPostsByCursor) // GET /api/v1/community/hot-posts
}
