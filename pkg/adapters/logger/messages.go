package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Session level messages (info)
		"Playing %s...":                                     "%s を再生中...",
		"Snapshot saved to %s":                              "スナップショットを %s に保存しました",
		"Interrupted, shutting down...":                     "中断されました。シャットダウン中...",
		"Playback finished: %d units submitted, %d dropped": "再生完了: %d ユニット送信, %d ドロップ",

		// Renderer
		"Decoder initialized: %dx%d at %d fps": "デコーダ初期化完了: %dx%d, %d fps",
		"Presentation started":                 "表示を開始しました",
		"Presentation stopped":                 "表示を停止しました",
		"Decode failed: %s":                    "デコードに失敗しました: %s",

		// Player
		"Unit dropped by decoder": "デコーダがユニットを拒否しました",
		"Stopping renderer: %s":   "レンダラ停止中: %s",
	})
}
