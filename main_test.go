package main

import (
	"context"
	"testing"
	"time"

	commonConfig "github.com/Xushengqwer/go-common/config"
	sharedCore "github.com/Xushengqwer/go-common/core"
	"github.com/stretchr/testify/require"
)

func newShutdownTestLogger(t *testing.T) *sharedCore.ZapLogger {
	t.Helper()
	logger, err := sharedCore.NewZapLogger(commonConfig.ZapConfig{})
	require.NoError(t, err)
	return logger
}

// 两个任务先后停止，等待应正常返回而不是在已置 nil 的 context 上阻塞或崩溃。
func TestAwaitTaskShutdown_TasksStopSequentially(t *testing.T) {
	logger := newShutdownTestLogger(t)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	syncCtx, syncDone := context.WithCancel(context.Background())
	cacheCtx, cacheDone := context.WithCancel(context.Background())

	syncDone() // 第一个任务立即停止
	go func() {
		time.Sleep(20 * time.Millisecond)
		cacheDone() // 第二个任务稍后停止
	}()

	finished := make(chan struct{})
	go func() {
		awaitTaskShutdown(shutdownCtx, logger, syncCtx, cacheCtx)
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("等待定时任务停止未在预期时间内返回")
	}
}

// 任务迟迟不停止时，整体超时应让等待放弃并返回。
func TestAwaitTaskShutdown_TimeoutGivesUp(t *testing.T) {
	logger := newShutdownTestLogger(t)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	neverDone1, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	neverDone2, cancel2 := context.WithCancel(context.Background())
	defer cancel2()

	finished := make(chan struct{})
	go func() {
		awaitTaskShutdown(shutdownCtx, logger, neverDone1, neverDone2)
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("整体超时后等待仍未返回")
	}
}
