package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/service"
)

// PostAdminController 定义了管理员操作帖子的控制器
type PostAdminController struct {
	postAdminService service.PostAdminService
	postService      service.PostService
}

// NewPostAdminController 是 PostAdminController 的构造函数
func NewPostAdminController(postAdminService service.PostAdminService, postService service.PostService) *PostAdminController {
	return &PostAdminController{
		postAdminService: postAdminService,
		postService:      postService,
	}
}

// ListPostsByCondition 按条件分页查询帖子列表 (管理员)
// @Summary      管理员按条件查询帖子列表
// @Description  管理员根据指定条件（ID、标题、分类、状态、举报/隐藏标记等）分页查询帖子列表，包含公开视图中不可见的帖子。
// @Tags         admin (管理员)
// @Accept       json
// @Produce      json
// @Param        id query uint64 false "按帖子 ID 查询" Format(uint64)
// @Param        title query string false "标题模糊匹配"
// @Param        category query int false "按分类筛选 (0:公告, 1:提问, 2:经验分享, 3:自由, 4:资料, 5:其他)" Enums(0,1,2,3,4,5)
// @Param        status query int false "按审核状态筛选 (0:待审核, 1:审核通过, 2:拒绝)" Enums(0,1,2)
// @Param        is_reported query bool false "只看被举报的帖子"
// @Param        is_hidden query bool false "按隐藏状态筛选"
// @Param        order_by query string false "排序字段 (created_at 或 updated_at)" Enums(created_at,updated_at) default(created_at)
// @Param        order_desc query bool false "是否降序排序" default(true)
// @Param        page query int true "页码 (从 1 开始)" minimum(1)
// @Param        page_size query int true "每页数量" minimum(1)
// @Success      200 {object} vo.ListPostsAdminResponseWrapper "帖子列表获取成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      500 {object} vo.BaseResponseWrapper "获取帖子列表时发生内部服务器错误"
// @Router       /api/v1/community/admin/posts [get]
func (ctrl *PostAdminController) ListPostsByCondition(c *gin.Context) {
	var req dto.ListPostsByConditionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	result, serviceErr := ctrl.postAdminService.ListPostsByCondition(c.Request.Context(), &req)
	if serviceErr != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取帖子列表失败: "+serviceErr.Error())
		return
	}

	response.RespondSuccess(c, result, "帖子列表获取成功")
}

// AuditPost 审核帖子 (管理员)
// @Summary      管理员审核帖子
// @Description  管理员更新帖子的审核状态（通过/拒绝）并可附带审核原因。被拒绝的帖子会同时被隐藏。
// @Tags         admin (管理员)
// @Accept       json
// @Produce      json
// @Param        request body dto.AuditPostRequest true "审核请求体"
// @Success      200 {object} vo.BaseResponseWrapper "帖子审核成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "审核帖子时发生内部服务器错误"
// @Router       /api/v1/community/admin/posts/audit [post]
func (ctrl *PostAdminController) AuditPost(c *gin.Context) {
	var req dto.AuditPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	if serviceErr := ctrl.postAdminService.AuditPost(c.Request.Context(), &req); serviceErr != nil {
		if errors.Is(serviceErr, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "帖子不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "审核帖子失败: "+serviceErr.Error())
		return
	}

	response.RespondSuccess[any](c, nil, "帖子审核成功")
}

// PinPost 置顶/取消置顶帖子 (管理员)
// @Summary      管理员置顶帖子
// @Description  管理员置顶或取消置顶帖子。置顶帖在公开列表中排在最前。
// @Tags         admin (管理员)
// @Accept       json
// @Produce      json
// @Param        request body dto.PinPostRequest true "置顶请求体"
// @Success      200 {object} vo.BaseResponseWrapper "置顶状态更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "更新置顶状态时发生内部服务器错误"
// @Router       /api/v1/community/admin/posts/pin [post]
func (ctrl *PostAdminController) PinPost(c *gin.Context) {
	var req dto.PinPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	if serviceErr := ctrl.postAdminService.PinPost(c.Request.Context(), &req); serviceErr != nil {
		if errors.Is(serviceErr, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "帖子不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "更新置顶状态失败: "+serviceErr.Error())
		return
	}

	response.RespondSuccess[any](c, nil, "置顶状态更新成功")
}

// HidePost 隐藏/恢复帖子 (管理员)
// @Summary      管理员隐藏帖子
// @Description  管理员隐藏或恢复展示帖子。隐藏的帖子不出现在任何公开视图中。
// @Tags         admin (管理员)
// @Accept       json
// @Produce      json
// @Param        request body dto.HidePostRequest true "隐藏请求体"
// @Success      200 {object} vo.BaseResponseWrapper "隐藏状态更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "更新隐藏状态时发生内部服务器错误"
// @Router       /api/v1/community/admin/posts/hide [post]
func (ctrl *PostAdminController) HidePost(c *gin.Context) {
	var req dto.HidePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	if serviceErr := ctrl.postAdminService.HidePost(c.Request.Context(), &req); serviceErr != nil {
		if errors.Is(serviceErr, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "帖子不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "更新隐藏状态失败: "+serviceErr.Error())
		return
	}

	response.RespondSuccess[any](c, nil, "隐藏状态更新成功")
}

// DeletePostAdmin 删除帖子 (管理员)
// @Summary      管理员删除帖子
// @Description  管理员删除指定帖子，其下的所有评论会被一并清理，并向下游广播删除事件。
// @Tags         admin (管理员)
// @Accept       json
// @Produce      json
// @Param        post_id path uint64 true "帖子 ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "帖子删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的帖子 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "删除帖子时发生内部服务器错误"
// @Router       /api/v1/community/admin/posts/{post_id} [delete]
func (ctrl *PostAdminController) DeletePostAdmin(c *gin.Context) {
	postID, parseErr := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if parseErr != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的帖子 ID 格式")
		return
	}

	if serviceErr := ctrl.postService.DeletePost(c.Request.Context(), postID); serviceErr != nil {
		if errors.Is(serviceErr, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "帖子不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "删除帖子失败: "+serviceErr.Error())
		return
	}

	response.RespondSuccess[any](c, nil, "帖子删除成功")
}

// RegisterRoutes 注册 PostAdminController 的路由
func (ctrl *PostAdminController) RegisterRoutes(group *gin.RouterGroup) {
	adminPosts := group.Group("/admin/posts")
	{
		adminPosts.GET("", ctrl.ListPostsByCondition)       // GET    /api/v1/community/admin/posts
		adminPosts.POST("/audit", ctrl.AuditPost)           // POST   /api/v1/community/admin/posts/audit
		adminPosts.POST("/pin", ctrl.PinPost)               // POST   /api/v1/community/admin/posts/pin
		adminPosts.POST("/hide", ctrl.HidePost)             // POST   /api/v1/community/admin/posts/hide
		adminPosts.DELETE("/:post_id", ctrl.DeletePostAdmin) // DELETE /api/v1/community/admin/posts/:post_id
	}
}
