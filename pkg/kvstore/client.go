package kvstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound は指定されたキーがストアに存在しないことを示す。
var ErrNotFound = errors.New("kvstore: キーが存在しません")

// Client は外部キーバリューストアへのクライアント。
// 内部のgo-redisクライアントがコネクションプールを保持するため、
// プロセス全体で1つ生成して全ハンドラで共有する。
type Client struct {
	// rdb は内部で使用するRedisクライアント。
	rdb *redis.Client
}

// New は新しいストアクライアントを生成する。
// urlには接続先ストアのURL（例: "redis://redis:6379"）を指定する。
// この時点では接続せず、最初のコマンド発行時に接続される。
func New(url string) (*Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("ストアURLの解析に失敗: %w", err)
	}
	return &Client{rdb: redis.NewClient(opts)}, nil
}

// Set はキーに値を保存する。
// ttlが正の値の場合は有効期限付きで保存し、期限経過後はストア側が
// 自動的にエントリを削除する。ttlが0の場合は無期限に保存する。
func (c *Client) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("setコマンドの実行に失敗: %w", err)
	}
	return nil
}

// Get はキーに対応する値を取得する。
// キーが存在しない場合はErrNotFoundを返す。
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	value, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if isNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("getコマンドの実行に失敗: %w", err)
	}
	return value, nil
}

// Close はストアへの接続を閉じる。
func (c *Client) Close() error {
	return c.rdb.Close()
}

// isNotFound はストアのエラーがキー不在を示すかどうかを判定する。
// go-redisはredis.Nilを返すためまず型で判定し、キー不在を
// "no such key" というエラー文字列で返す互換ストアのために
// 文字列照合へフォールバックする。
func isNotFound(err error) bool {
	if errors.Is(err, redis.Nil) {
		return true
	}
	return strings.Contains(err.Error(), "no such key")
}
