package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/cachegw/pkg/logging"
)

// Recovery はパニックからの回復を行うGinミドルウェアを返す。
// パニック発生時にパニック値とスタックトレースをログに出力し、
// ボディなしの500を返す。
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logging.Errorf("パニックから回復: %s %s: %v\n%s",
					c.Request.Method, c.Request.URL.Path, r, debug.Stack())
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}
