// Package main provides localization for the valreport CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Run page validation suites and build self-contained HTML reports.": "ページ検証スイートを実行し、自己完結型のHTMLレポートを生成します。",

		// Run command
		"Run a validation suite and write the HTML report.": "検証スイートを実行してHTMLレポートを書き出します。",

		// Render command
		"Render the HTML report from a saved session file.": "保存されたセッションファイルからHTMLレポートを描画します。",

		// Version command
		"Show version information.": "バージョン情報を表示します。",
		"valreport version %s":      "valreport バージョン %s",
	})
}
