package excel

// CellMappings pairs each form field with its cell in the 授業カード
// template. The table is fixed by the template layout, not derived from
// data; adjust it when the template changes.
var CellMappings = map[string]string{
	"タイムスタンプ":                  "A2",
	"単元名":                         "B2",
	"キャッチコピー":                  "C2",
	"ねらい":                         "D2",
	"対象学年":                       "E2",
	"障害種別":                       "F2",
	"時間":                           "G2",
	"準備物":                         "H2",
	"導入の流れ":                     "I2",
	"活動の流れ":                     "J2",
	"振り返りの流れ":                 "K2",
	"指導のポイント":                 "L2",
	"ハッシュタグ":                   "M2",
	"メイン画像URL":                  "N2",
	"教材写真URL":                    "O2",
	"動画リンク":                     "P2",
	"指導案WordファイルURL":          "Q2",
	"指導案PDFファイルURL":           "R2",
	"授業資料PowerPointファイルURL":  "S2",
	"評価シートExcelファイルURL":     "T2",
	"ICT活用有無":                    "U2",
	"教科":                           "V2",
	"学習集団の単位":                 "W2",
	"単元内の授業タイトル":           "X2",
	"単元内での並び順":               "Y2",
}
