// キャッシュゲートウェイサービスのエントリポイント。
// HTTPのset/get操作を外部キーバリューストアへのコマンドに変換する。
// ログの詳細度はLOG_LEVEL環境変数（デフォルト: info）で制御する。
package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/cachegw/internal/gateway"
	"github.com/nao1215/cachegw/pkg/logging"
)

func main() {
	logging.InitFromEnv()
	if logging.ParseLevel(os.Getenv("LOG_LEVEL")) != logging.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	server, err := gateway.NewServer(port)
	if err != nil {
		log.Fatalf("ゲートウェイサーバーの初期化に失敗: %v", err)
	}

	log.Printf("キャッシュゲートウェイサービスを起動します: :%s", port)
	if err := server.Run(); err != nil {
		log.Fatalf("キャッシュゲートウェイサービスの起動に失敗: %v", err)
	}
}
