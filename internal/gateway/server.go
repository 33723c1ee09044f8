package gateway

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/cachegw/pkg/kvstore"
	"github.com/nao1215/cachegw/pkg/logging"
	"github.com/nao1215/cachegw/pkg/middleware"
)

// Server はキャッシュゲートウェイサービスのHTTPサーバー。
// 起動後は変更されず、全ハンドラから読み取り専用で共有される。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// store は外部キーバリューストアへのクライアント。
	store *kvstore.Client
}

// NewServer は新しいゲートウェイサーバーを生成する。
// ストアへの接続URLはSTORE_URL環境変数で指定する
// （デフォルト: "redis://redis:6379"）。
func NewServer(port string) (*Server, error) {
	store, err := kvstore.New(getEnvOr("STORE_URL", "redis://redis:6379"))
	if err != nil {
		return nil, fmt.Errorf("ストアクライアントの生成に失敗: %w", err)
	}

	frontendURL := getEnvOr("FRONTEND_URL", "*")

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS([]string{frontendURL}))

	s := &Server{
		router: router,
		port:   port,
		store:  store,
	}
	s.setupRoutes()

	return s, nil
}

// Run はHTTPサーバーを起動する。全インターフェースにバインドする。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// Close はストアへの接続を閉じる。
func (s *Server) Close() error {
	return s.store.Close()
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes() {
	// エントリ登録
	s.router.POST("/cache", s.handleSetCache())
	// エントリ取得
	s.router.GET("/cache/:key", s.handleGetCache())

	// ヘルスチェック。ストアの到達性に関係なく常に200を返す。
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "cache-gateway"})
	})
}

// setCacheRequest はエントリ登録リクエストのJSON構造。
type setCacheRequest struct {
	// Key はエントリの識別子。必須。
	Key string `json:"key" binding:"required"`
	// Value は保存する値。必須。
	Value string `json:"value" binding:"required"`
	// TTL は有効期限（秒）。省略またはnullの場合は無期限。
	// 指定する場合は正の値でなければならない。
	TTL *uint64 `json:"ttl" binding:"omitempty,gt=0"`
}

// handleSetCache はエントリをストアに保存するハンドラを返す。
// TTLが指定されていれば有効期限付きで保存し、期限経過後の削除は
// ストア側に委ねる。失敗時はリトライせず、ボディなしのステータス
// のみを返す。
func (s *Server) handleSetCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setCacheRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logging.Warnf("不正なエントリ登録リクエスト: %v", err)
			c.Status(http.StatusBadRequest)
			return
		}

		var ttl time.Duration
		if req.TTL != nil {
			ttl = time.Duration(*req.TTL) * time.Second
		}

		if err := s.store.Set(c.Request.Context(), req.Key, req.Value, ttl); err != nil {
			logging.Errorf("エントリの保存に失敗: key=%s, error=%v", req.Key, err)
			c.Status(http.StatusInternalServerError)
			return
		}

		logging.Infof("エントリを保存しました: key=%s", req.Key)
		c.Status(http.StatusOK)
	}
}

// handleGetCache はストアからエントリを取得するハンドラを返す。
// 成功時は値をJSON文字列としてボディに返す。キー不在は404、
// それ以外の失敗は500とし、エラーボディは返さない。
func (s *Server) handleGetCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")

		value, err := s.store.Get(c.Request.Context(), key)
		if err != nil {
			if errors.Is(err, kvstore.ErrNotFound) {
				logging.Infof("エントリが存在しません: key=%s", key)
				c.Status(http.StatusNotFound)
				return
			}
			logging.Errorf("エントリの取得に失敗: key=%s, error=%v", key, err)
			c.Status(http.StatusInternalServerError)
			return
		}

		logging.Infof("エントリを取得しました: key=%s", key)
		c.JSON(http.StatusOK, value)
	}
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
