package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/community_service/service"
)

// EngagementController 承载点赞与举报这类轻交互接口
type EngagementController struct {
	likeService service.LikeService
	postService service.PostService
}

// NewEngagementController 构造函数，用于创建 EngagementController 实例
func NewEngagementController(likeService service.LikeService, postService service.PostService) *EngagementController {
	return &EngagementController{
		likeService: likeService,
		postService: postService,
	}
}

// ToggleLike 处理点赞开关的 HTTP 请求
// @Summary      点赞/取消点赞帖子 (匿名)
// @Description  以请求方的网络身份对帖子执行点赞开关：未点赞则点赞，已点赞则取消。同一身份重复点赞不会叠加计数。返回操作后的点赞状态与最新计数。
// @Tags         engagement (互动)
// @Accept       json
// @Produce      json
// @Param        post_id path uint64 true "帖子 ID" Format(uint64)
// @Success      200 {object} vo.ToggleLikeResponseWrapper "点赞状态切换成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的帖子 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "切换点赞状态时发生内部服务器错误"
// @Router       /api/v1/community/posts/{post_id}/like [post]
func (ctrl *EngagementController) ToggleLike(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的帖子 ID 格式")
		return
	}

	result, serviceErr := ctrl.likeService.ToggleLike(c.Request.Context(), postID, clientIdentityKey(c))
	if serviceErr != nil {
		if errors.Is(serviceErr, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "帖子不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "切换点赞状态失败: "+serviceErr.Error())
		return
	}

	response.RespondSuccess(c, result, "点赞状态切换成功")
}

// ReportPost 处理举报帖子的 HTTP 请求
// @Summary      举报帖子 (匿名)
// @Description  将帖子标记为被举报，等待管理员处理。重复举报不会产生额外效果。
// @Tags         engagement (互动)
// @Accept       json
// @Produce      json
// @Param        post_id path uint64 true "帖子 ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "举报成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的帖子 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "举报帖子时发生内部服务器错误"
// @Router       /api/v1/community/posts/{post_id}/report [post]
func (ctrl *EngagementController) ReportPost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的帖子 ID 格式")
		return
	}

	if serviceErr := ctrl.postService.ReportPost(c.Request.Context(), postID); serviceErr != nil {
		if errors.Is(serviceErr, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "帖子不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "举报帖子失败: "+serviceErr.Error())
		return
	}

	response.RespondSuccess[any](c, nil, "举报成功")
}

// RegisterRoutes 注册 EngagementController 的路由
func (ctrl *EngagementController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/posts/:post_id/like", ctrl.ToggleLike)   // POST /api/v1/community/posts/:post_id/like
	group.POST("/posts/:post_id/report", ctrl.ReportPost) // POST /api/v1/community/posts/:post_id/report
}
