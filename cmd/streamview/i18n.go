// Package main provides localization for the streamview CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Decode H.264 streams and present them at a fixed rate.": "H.264ストリームをデコードし、固定レートで表示します。",

		// Play command
		"Decode an H.264 stream and present it.":                "H.264ストリームをデコードして表示",
		"Input file (fragmented MP4 or raw Annex B stream).":    "入力ファイル（フラグメントMP4またはAnnex Bストリーム）",
		"Write the final frame as PNG (headless mode only).":    "最終フレームをPNGとして保存（ヘッドレスモードのみ）",
		"Present in a desktop window instead of headless.":      "ヘッドレスの代わりにデスクトップウィンドウで表示",
		"Presentation rate in frames per second (default: 30).": "表示レート（フレーム毎秒、デフォルト: 30）",
		"Decoded stream width in pixels.":                       "デコードされるストリームの幅（ピクセル）",
		"Decoded stream height in pixels.":                      "デコードされるストリームの高さ（ピクセル）",
		"Headless surface width (default: 1280).":               "ヘッドレスサーフェスの幅（デフォルト: 1280）",
		"Headless surface height (default: 720).":               "ヘッドレスサーフェスの高さ（デフォルト: 720）",
		"Letterbox bar color (hex, e.g., #000000).":             "レターボックスの帯の色（16進数、例: #000000）",
		"Path to a YAML configuration file.":                    "YAML設定ファイルのパス",

		// Version command
		"Show version information.":  "バージョン情報を表示",
		"streamview (Go) version %s": "streamview (Go版) バージョン %s",

		// Logging flags
		"Log level (debug, info, warn, error).": "ログレベル（debug, info, warn, error）",
		"Suppress all log output.":              "全てのログ出力を抑制",

		// Runtime messages
		"Playing %s...":                                        "%s を再生中...",
		"Interrupted, shutting down...":                        "中断されました。シャットダウン中...",
		"Snapshot saved to %s":                                 "スナップショットを %s に保存しました",
		"stream dimensions unknown, pass --width and --height": "ストリームの寸法が不明です。--width と --height を指定してください",
	})
}
