// Package gateway はキャッシュゲートウェイサービスの内部実装を提供する。
//
// HTTPリクエストを外部キーバリューストアへのコマンドに変換する
// ステートレスなプロトコル変換層であり、値を自身のメモリに保持しない。
// 有効期限（TTL）による自動削除や永続化はすべてストア側に委ねる。
//
// 主な機能:
//   - エントリの登録（POST /cache、TTL指定可）
//   - エントリの取得（GET /cache/:key）
//   - ヘルスチェック（GET /health、ストアに依存しない）
package gateway
