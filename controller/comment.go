package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/myErrors"
	"github.com/Xushengqwer/community_service/service"
)

// CommentController 定义评论控制器的结构体
type CommentController struct {
	commentService service.CommentService
}

// NewCommentController 构造函数，用于创建 CommentController 实例
func NewCommentController(commentService service.CommentService) *CommentController {
	return &CommentController{
		commentService: commentService,
	}
}

// CreateComment 处理创建评论/回复的 HTTP 请求
// @Summary      创建评论或回复 (匿名)
// @Description  在指定帖子下匿名创建评论。parentId 留空为顶层评论，非空则为对某条评论的回复（父评论必须属于同一帖子，嵌套深度有上限）。请求中的口令是该评论后续编辑/删除的唯一凭证。
// @Tags         comments (评论)
// @Accept       json
// @Produce      json
// @Param        post_id path uint64 true "帖子 ID" Format(uint64)
// @Param        request body dto.CreateCommentRequest true "评论创建请求体"
// @Success      200 {object} vo.CommentResponseWrapper "评论创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载、父评论不属于该帖子或嵌套过深"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "创建评论时发生内部服务器错误"
// @Router       /api/v1/community/posts/{post_id}/comments [post]
func (ctrl *CommentController) CreateComment(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的帖子 ID 格式")
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	commentVO, serviceErr := ctrl.commentService.CreateComment(c.Request.Context(), postID, &req)
	if serviceErr != nil {
		switch {
		case errors.Is(serviceErr, commonerrors.ErrRepoNotFound):
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "帖子不存在")
		case errors.Is(serviceErr, myErrors.ErrParentMismatch):
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "父评论不存在或不属于该帖子")
		case errors.Is(serviceErr, myErrors.ErrDepthExceeded):
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput,
				fmt.Sprintf("评论嵌套层级超过上限（最多 %d 层）", constant.MaxCommentDepth))
		default:
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "创建评论失败: "+serviceErr.Error())
		}
		return
	}

	response.RespondSuccess(c, commentVO, "评论创建成功")
}

// ListComments 获取帖子的扁平评论列表
// @Summary      获取帖子的评论列表 (公开)
// @Description  获取指定帖子下的全部评论（含各层回复），按创建顺序排列的扁平列表。树形展示由客户端按 parent_id 重建。口令不会出现在任何响应中。
// @Tags         comments (评论)
// @Accept       json
// @Produce      json
// @Param        post_id path uint64 true "帖子 ID" Format(uint64)
// @Success      200 {object} vo.CommentListResponseWrapper "评论列表检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的帖子 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "检索评论时发生内部服务器错误"
// @Router       /api/v1/community/posts/{post_id}/comments [get]
func (ctrl *CommentController) ListComments(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的帖子 ID 格式")
		return
	}

	comments, serviceErr := ctrl.commentService.ListCommentsByPostID(c.Request.Context(), postID)
	if serviceErr != nil {
		if errors.Is(serviceErr, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "帖子不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取评论列表失败: "+serviceErr.Error())
		return
	}

	response.RespondSuccess(c, comments, "评论列表获取成功")
}

// UpdateComment 处理编辑评论的 HTTP 请求
// @Summary      编辑评论
// @Description  使用创建时设置的口令编辑评论的昵称与内容。口令不匹配时拒绝操作，评论保持原样。
// @Tags         comments (评论)
// @Accept       json
// @Produce      json
// @Param        comment_id path uint64 true "评论 ID" Format(uint64)
// @Param        request body dto.UpdateCommentRequest true "评论编辑请求体"
// @Success      200 {object} vo.CommentResponseWrapper "评论编辑成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      403 {object} vo.BaseResponseWrapper "口令不匹配"
// @Failure      404 {object} vo.BaseResponseWrapper "评论不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "编辑评论时发生内部服务器错误"
// @Router       /api/v1/community/comments/{comment_id} [put]
func (ctrl *CommentController) UpdateComment(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的评论 ID 格式")
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	commentVO, serviceErr := ctrl.commentService.UpdateComment(c.Request.Context(), commentID, &req)
	if serviceErr != nil {
		switch {
		case errors.Is(serviceErr, commonerrors.ErrRepoNotFound):
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "评论不存在")
		case errors.Is(serviceErr, myErrors.ErrSecretMismatch):
			response.RespondError(c, http.StatusForbidden, response.ErrCodeClientUnauthorized, "口令不匹配")
		default:
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "编辑评论失败: "+serviceErr.Error())
		}
		return
	}

	response.RespondSuccess(c, commentVO, "评论编辑成功")
}

// DeleteComment 处理删除评论的 HTTP 请求
// @Summary      删除评论
// @Description  使用创建时设置的口令删除评论。删除会级联清理该评论下的整棵回复子树，帖子的评论计数随之扣减。
// @Tags         comments (评论)
// @Accept       json
// @Produce      json
// @Param        comment_id path uint64 true "评论 ID" Format(uint64)
// @Param        request body dto.DeleteCommentRequest true "评论删除请求体"
// @Success      200 {object} vo.BaseResponseWrapper "评论删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      403 {object} vo.BaseResponseWrapper "口令不匹配"
// @Failure      404 {object} vo.BaseResponseWrapper "评论不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "删除评论时发生内部服务器错误"
// @Router       /api/v1/community/comments/{comment_id} [delete]
func (ctrl *CommentController) DeleteComment(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的评论 ID 格式")
		return
	}

	var req dto.DeleteCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	if serviceErr := ctrl.commentService.DeleteComment(c.Request.Context(), commentID, &req); serviceErr != nil {
		switch {
		case errors.Is(serviceErr, commonerrors.ErrRepoNotFound):
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "评论不存在")
		case errors.Is(serviceErr, myErrors.ErrSecretMismatch):
			response.RespondError(c, http.StatusForbidden, response.ErrCodeClientUnauthorized, "口令不匹配")
		default:
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "删除评论失败: "+serviceErr.Error())
		}
		return
	}

	response.RespondSuccess[any](c, nil, "评论删除成功")
}

// ListReplies 获取评论的直接子回复
// @Summary      获取评论的回复列表 (公开)
// @Description  获取指定评论的直接子回复，按创建顺序排列。
// @Tags         comments (评论)
// @Accept       json
// @Produce      json
// @Param        comment_id path uint64 true "评论 ID" Format(uint64)
// @Success      200 {object} vo.CommentListResponseWrapper "回复列表检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的评论 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "评论不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "检索回复时发生内部服务器错误"
// @Router       /api/v1/community/comments/{comment_id}/replies [get]
func (ctrl *CommentController) ListReplies(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的评论 ID 格式")
		return
	}

	replies, serviceErr := ctrl.commentService.ListReplies(c.Request.Context(), commentID)
	if serviceErr != nil {
		if errors.Is(serviceErr, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "评论不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取回复列表失败: "+serviceErr.Error())
		return
	}

	response.RespondSuccess(c, replies, "回复列表获取成功")
}

// RegisterRoutes 注册 CommentController 的路由
func (ctrl *CommentController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/posts/:post_id/comments", ctrl.CreateComment) // POST   /api/v1/community/posts/:post_id/comments
	group.GET("/posts/:post_id/comments", ctrl.ListComments)   // GET    /api/v1/community/posts/:post_id/comments

	comments := group.Group("/comments")
	{
		comments.PUT("/:comment_id", ctrl.UpdateComment)       // PUT    /api/v1/community/comments/:comment_id
		comments.DELETE("/:comment_id", ctrl.DeleteComment)    // DELETE /api/v1/community/comments/:comment_id
		comments.GET("/:comment_id/replies", ctrl.ListReplies) // GET    /api/v1/community/comments/:comment_id/replies
	}
}
