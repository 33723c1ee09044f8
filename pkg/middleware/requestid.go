package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID はリクエストIDを伝播するHTTPヘッダーのキー。
const HeaderRequestID = "X-Request-ID"

// contextKeyRequestID はGinコンテキストにリクエストIDを保存するキー。
const contextKeyRequestID = "request_id"

// RequestID はリクエストごとに相関IDを付与するGinミドルウェアを返す。
// クライアントがX-Request-IDヘッダーを送ってきた場合はその値を引き継ぎ、
// 無ければUUIDを新規に採番する。IDはレスポンスヘッダーにも設定される。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(contextKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// GetRequestID はコンテキストからリクエストIDを取得する。
// RequestIDミドルウェアを経由していない場合は空文字列を返す。
func GetRequestID(c *gin.Context) string {
	return c.GetString(contextKeyRequestID)
}
