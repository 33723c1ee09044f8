// Package middleware はGinベースのHTTP APIで使用する共通ミドルウェアを提供する。
//
// パニックリカバリ、CORS設定、リクエストID付与など、
// ゲートウェイの全エンドポイントで共通して使用するミドルウェアを含む。
package middleware
