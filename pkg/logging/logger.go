// Package logging はレベル付きのログ出力を提供する。
//
// LOG_LEVEL環境変数（debug/info/warn/error、デフォルトはinfo）で
// 出力する最低レベルを制御する。出力先は標準出力。
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// envLogLevel は出力レベルを設定する環境変数のキー。
const envLogLevel = "LOG_LEVEL"

// Level はログの重要度を表す。
type Level int

const (
	// LevelDebug は開発時の詳細情報。
	LevelDebug Level = iota
	// LevelInfo は通常運用の記録。
	LevelInfo
	// LevelWarn は継続可能な異常。
	LevelWarn
	// LevelError はリクエストを失敗させた異常。
	LevelError
)

// String はレベルのログ接頭辞を返す。
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

var (
	std      = log.New(os.Stdout, "", log.Ldate|log.Ltime|log.Lmicroseconds)
	minLevel = LevelInfo
)

// ParseLevel は文字列をLevelに変換する。未知の値はLevelInfoとして扱う。
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// InitFromEnv はLOG_LEVEL環境変数から出力レベルを初期化する。
// 起動時に一度だけ呼び出す。未設定の場合はinfoになる。
func InitFromEnv() {
	minLevel = ParseLevel(os.Getenv(envLogLevel))
}

// SetLevel は出力する最低レベルを設定する。
func SetLevel(l Level) {
	minLevel = l
}

// SetOutput はログの出力先を変更する。テスト用。
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// Debugf はデバッグレベルのログを出力する。
func Debugf(format string, args ...any) { write(LevelDebug, format, args...) }

// Infof は情報レベルのログを出力する。
func Infof(format string, args ...any) { write(LevelInfo, format, args...) }

// Warnf は警告レベルのログを出力する。
func Warnf(format string, args ...any) { write(LevelWarn, format, args...) }

// Errorf はエラーレベルのログを出力する。
func Errorf(format string, args ...any) { write(LevelError, format, args...) }

func write(l Level, format string, args ...any) {
	if l < minLevel {
		return
	}
	std.Printf("[%s] %s", l, fmt.Sprintf(format, args...))
}
