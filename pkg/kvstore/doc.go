// Package kvstore は外部キーバリューストアへのクライアントを提供する。
//
// Redisプロトコルを話すストアに対してset/getコマンドを発行する薄い
// ラッパーであり、接続プーリングは内部のgo-redisクライアントに委ねる。
// キーが存在しない場合はErrNotFoundを返すため、呼び出し側は
// errors.Isで判定できる。
package kvstore
