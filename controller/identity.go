package controller

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// clientIdentityKey 解析请求方的网络身份键。
// - 服务部署在网关/反向代理之后时，直连地址是代理的地址，
//   真实客户端地址在 X-Forwarded-For 的第一跳；没有转发头时取直连地址。
// - 这只是尽力而为的身份近似（NAT/代理下多个真实用户会共享同一地址），
//   用于点赞去重与浏览量防刷，不是安全边界。
func clientIdentityKey(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if first != "" {
			return first
		}
	}
	return c.ClientIP()
}
