package ui

import (
	"html/template"
	"net/http"
	"sync"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// guideMarkdown is the setup guide shown at /guide. It mirrors the
// configuration the server reads at startup.
const guideMarkdown = `# 設定ガイド

このアプリを動作させるには、環境変数（または ` + "`.env`" + ` ファイル）に以下の設定が必要です。

## 1. GOOGLE_SHEETS_CREDENTIALS

GoogleサービスアカウントのJSONキーをそのまま文字列として設定します。
サービスアカウントには対象スプレッドシートの閲覧権限を付与してください。

## 2. GOOGLE_SHEET_SPREADSHEET_ID

フォーム回答が記録されているスプレッドシートのIDです。
スプレッドシートURLの ` + "`/d/`" + ` と ` + "`/edit`" + ` の間の部分を使います。

## 3. GOOGLE_SHEET_WORKSHEET_NAME（省略可）

回答が記録されているワークシートの名前。既定値は「フォームの回答 1」です。

## 4. GOOGLE_FORM_URL（省略可）

トップページに表示する入力用GoogleフォームのURLです。

## 5. CARD_TEMPLATE_PATH（省略可）

Excelテンプレートのパス。既定値は ` + "`授業カード.xlsm`" + ` で、
サーバーと同じディレクトリに配置します。

## ローカルファイルから読み込む場合

` + "`RESPONSES_FILE`" + ` にxlsx/csvファイルのパスを設定すると、
Google Sheetsの代わりにそのファイルから回答を読み込みます。
この場合、認証情報の設定は不要です。
`

var (
	guideOnce sync.Once
	guideHTML template.HTML
)

// renderGuide converts the guide markdown to HTML once.
func renderGuide() template.HTML {
	guideOnce.Do(func() {
		p := parser.NewWithExtensions(parser.CommonExtensions)
		renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
		guideHTML = template.HTML(markdown.ToHTML([]byte(guideMarkdown), p, renderer))
	})
	return guideHTML
}

// handleGuide renders the setup guide page.
func (a *App) handleGuide(w http.ResponseWriter, r *http.Request) {
	a.renderTemplate(w, "guide.html", map[string]interface{}{
		"Guide": renderGuide(),
	})
}
