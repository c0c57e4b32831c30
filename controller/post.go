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

// PostController 定义帖子控制器的结构体
type PostController struct {
	postService     service.PostService     // 服务层接口，通过依赖注入传入
	postListService service.PostListService // 公开列表查询
}

// NewPostController 构造函数，用于创建 PostController 实例
func NewPostController(postService service.PostService, postListService service.PostListService) *PostController {
	return &PostController{
		postService:     postService,
		postListService: postListService,
	}
}

// CreatePost 处理匿名创建帖子的 HTTP 请求
// @Summary      创建新帖子 (匿名)
// @Description  匿名创建一个新帖子。不需要任何账号信息；昵称留空时由服务端随机生成。新帖子进入待审核状态。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreatePostRequest true "帖子创建请求体"
// @Success      200 {object} vo.PostDetailResponseWrapper "帖子创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      500 {object} vo.BaseResponseWrapper "创建帖子时发生内部服务器错误"
// @Router       /api/v1/community/posts [post]
func (ctrl *PostController) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	postDetailVO, serviceErr := ctrl.postService.CreatePost(c.Request.Context(), &req)
	if serviceErr != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "创建帖子失败: "+serviceErr.Error())
		return
	}

	response.RespondSuccess(c, postDetailVO, "帖子创建成功")
}

// ListPosts 获取公开帖子列表 (分页)
// @Summary      获取帖子列表 (公开)
// @Description  分页获取公开可见的帖子列表，支持标题/正文模糊搜索与分类筛选。置顶帖排在最前，隐藏帖与审核拒绝帖不出现在结果中。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        search query string false "标题/正文模糊搜索关键词 (最大长度 255)" maxLength(255)
// @Param        category query int false "帖子分类 (0:公告, 1:提问, 2:经验分享, 3:自由, 4:资料, 5:其他)" format(int32) Enums(0,1,2,3,4,5)
// @Param        page query int true "页码 (从1开始)" format(int32) minimum(1) default(1)
// @Param        pageSize query int true "每页数量" format(int32) minimum(1) maximum(100) default(10)
// @Success      200 {object} vo.ListPostPageResponseWrapper "成功响应，包含帖子列表和总记录数"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/posts [get]
func (ctrl *PostController) ListPosts(c *gin.Context) {
	var reqDTO dto.ListPostsRequest
	if err := c.ShouldBindQuery(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	listPageVO, err := ctrl.postListService.ListPosts(c.Request.Context(), &reqDTO)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取帖子列表失败: "+err.Error())
		return
	}

	response.RespondSuccess(c, listPageVO, "帖子列表获取成功")
}

// GetPostByID 处理获取帖子详情的 HTTP 请求
// @Summary      获取指定ID的帖子详情 (公开)
// @Description  通过帖子的 ID 检索特定帖子的详细信息。访问会按请求方网络身份异步累计浏览量（短时间内重复访问不重复计数）。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        post_id path uint64 true "帖子 ID" Format(uint64)
// @Success      200 {object} vo.PostDetailResponseWrapper "帖子详情检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的帖子 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在或不可见"
// @Failure      500 {object} vo.BaseResponseWrapper "检索帖子详情时发生内部服务器错误"
// @Router       /api/v1/community/posts/{post_id} [get]
func (ctrl *PostController) GetPostByID(c *gin.Context) {
	postIDStr := c.Param("post_id")
	postID, err := strconv.ParseUint(postIDStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的帖子 ID 格式")
		return
	}

	detail, err := ctrl.postService.GetPostByID(c.Request.Context(), postID, clientIdentityKey(c))
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "帖子不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索帖子详情失败: "+err.Error())
		return
	}

	response.RespondSuccess(c, detail, "帖子详情检索成功")
}

// RegisterRoutes 注册 PostController 的路由
func (ctrl *PostController) RegisterRoutes(group *gin.RouterGroup) {
	posts := group.Group("/posts")
	{
		posts.POST("", ctrl.CreatePost)          // POST /api/v1/community/posts
		posts.GET("", ctrl.ListPosts)            // GET  /api/v1/community/posts
		posts.GET("/:post_id", ctrl.GetPostByID) // GET  /api/v1/community/posts/:post_id
	}
}
