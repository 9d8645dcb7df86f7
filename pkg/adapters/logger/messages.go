package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Starting validation run for %s":            "%s の検証実行を開始します",
		"Probing %d pages":                          "%d ページを検証中",
		"Validation completed: %d/%d checks passed": "検証完了: %d/%d 件のチェックに合格",
		"Report saved to %s":                        "レポートを %s に保存しました",
		"Summary saved to %s":                       "サマリーを %s に保存しました",
		"Interrupted, shutting down...":             "中断されました。シャットダウン中...",

		// Probe stage (browser component)
		"Launching browser":                  "ブラウザを起動中",
		"Launching browser in headless mode": "ヘッドレスモードでブラウザを起動中",
		"Launching browser in visible mode":  "表示モードでブラウザを起動中",
		"Navigating to %s":                   "%s へ移動中",
		"Page %q loaded in %.0f ms":          "ページ %q が %.0f ms で読み込まれました",
		"Check passed: %s":                   "チェック合格: %s",
		"Check failed: %s":                   "チェック不合格: %s",
		"Check skipped: %s":                  "チェックをスキップ: %s",
		"Captured screenshot %q":             "スクリーンショット %q を取得しました",
		"Browser closed":                     "ブラウザを閉じました",

		// Metrics collector
		"Discarding unfinished interaction %q": "未完了のインタラクション %q を破棄します",
		"Component %q loaded in %.1f ms":       "コンポーネント %q が %.1f ms で読み込まれました",
		"Element %q rendered in %.1f ms":       "要素 %q が %.1f ms で描画されました",

		// Banner stage
		"Generating status banner": "ステータスバナーを生成中",
		"Banner generated: %dx%d":  "バナー生成完了: %dx%d",

		// Report assembly and rendering
		"Assembling report":                     "レポートを組み立て中",
		"Rendering report":                      "レポートを描画中",
		"Screenshot %q added (%d total)":        "スクリーンショット %q を追加しました (計 %d 件)",
		"Report rendered: %d bytes, %d screenshots": "レポート描画完了: %d バイト, スクリーンショット %d 件",

		// Warnings
		"No element timings reported by page %q":    "ページ %q から要素タイミングが報告されませんでした",
		"Failed to capture screenshot of %q: %s":    "%q のスクリーンショット取得に失敗しました: %s",

		// Errors
		"Failed to launch browser: %s":  "ブラウザの起動に失敗しました: %s",
		"Failed to generate banner: %s": "バナーの生成に失敗しました: %s",
		"Failed to navigate: %s":        "ページ移動に失敗しました: %s",
		"Failed to render report: %s":   "レポートの描画に失敗しました: %s",
		"Failed to write output: %s":    "出力の書き込みに失敗しました: %s",
	})
}
