package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/Xushengqwer/go-common/core"
	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/service"
)

// Seed 通过服务层填充测试数据：帖子、评论树（含回复）与点赞。
// 走服务层而不是直接写库，保证计数、昵称合成、审核事件等逻辑与线上路径一致。
func Seed(
	ctx context.Context,
	postSvc service.PostService,
	commentSvc service.CommentService,
	likeSvc service.LikeService,
	logger *core.ZapLogger,
	numPosts int,
) {
	logger.Info("开始填充测试数据 (通过服务层)...", zap.Int("数量", numPosts))

	var wg sync.WaitGroup
	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	for i := 0; i < numPosts; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(itemIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			createReq := &dto.CreatePostRequest{
				Title:    gofakeit.Sentence(gofakeit.Number(5, 15)),
				Content:  gofakeit.Paragraph(3, 5, 20, "\n\n"),
				Category: enums.PostCategory(gofakeit.Number(0, 5)),
				Nickname: randomNickname(),
			}

			resp, err := postSvc.CreatePost(ctx, createReq)
			if err != nil {
				logger.Error(fmt.Sprintf("创建帖子 %d/%d 失败", itemIndex+1, numPosts),
					zap.Error(err),
					zap.String("title", createReq.Title))
				return
			}
			logger.Info(fmt.Sprintf("成功创建帖子 %d/%d", itemIndex+1, numPosts),
				zap.Uint64("post_id", resp.ID),
				zap.String("title", resp.Title))

			seedComments(ctx, commentSvc, logger, resp.ID)
			seedLikes(ctx, likeSvc, logger, resp.ID)
		}(i)
	}

	wg.Wait()
	logger.Info("测试数据填充完毕 (通过服务层)。")
}

// seedComments 在帖子下创建若干顶层评论，并为部分评论挂上一条回复。
func seedComments(ctx context.Context, commentSvc service.CommentService, logger *core.ZapLogger, postID uint64) {
	numComments := gofakeit.Number(0, 5)
	for j := 0; j < numComments; j++ {
		// 评论昵称是必填项，这里始终生成一个
		commentReq := &dto.CreateCommentRequest{
			Nickname: gofakeit.Username(),
			Password: gofakeit.Password(true, true, true, false, false, 10),
			Content:  gofakeit.Sentence(gofakeit.Number(5, 25)),
		}
		comment, err := commentSvc.CreateComment(ctx, postID, commentReq)
		if err != nil {
			logger.Error("创建评论失败", zap.Error(err), zap.Uint64("post_id", postID))
			continue
		}

		// 约一半的顶层评论下再挂一条回复，形成树形结构
		if gofakeit.Bool() {
			parentID := comment.ID
			replyReq := &dto.CreateCommentRequest{
				Nickname: gofakeit.Username(),
				Password: gofakeit.Password(true, true, true, false, false, 10),
				Content:  gofakeit.Sentence(gofakeit.Number(3, 15)),
				ParentID: &parentID,
			}
			if _, err := commentSvc.CreateComment(ctx, postID, replyReq); err != nil {
				logger.Error("创建回复失败", zap.Error(err), zap.Uint64("parent_id", parentID))
			}
		}
	}
}

// seedLikes 用随机生成的来访地址给帖子点赞，模拟不同身份的访客。
func seedLikes(ctx context.Context, likeSvc service.LikeService, logger *core.ZapLogger, postID uint64) {
	numLikes := gofakeit.Number(0, 8)
	for k := 0; k < numLikes; k++ {
		identityKey := gofakeit.IPv4Address()
		if _, err := likeSvc.ToggleLike(ctx, postID, identityKey); err != nil {
			logger.Error("点赞失败", zap.Error(err), zap.Uint64("post_id", postID), zap.String("identity", identityKey))
		}
	}
}

// randomNickname 大约三分之一的概率返回空串，触发发帖时服务端的随机昵称合成路径。
func randomNickname() string {
	if gofakeit.Number(0, 2) == 0 {
		return ""
	}
	return gofakeit.Username()
}
