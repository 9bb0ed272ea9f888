package card

// Form field names as they appear in the response sheet header row.
const (
	FieldTimestamp   = "タイムスタンプ"
	FieldUnitName    = "単元名"
	FieldLessonTitle = "単元内の授業タイトル"
	FieldOrder       = "単元内での並び順"
	FieldICTUse      = "ICT活用有無"
	FieldHashtags    = "ハッシュタグ"
)

// OrderSentinel is written for the ordering field when its raw value
// does not parse as an integer.
const OrderSentinel = 9999

// Normalized tokens for the ICT-usage field.
const (
	ICTUsed    = "あり"
	ICTNotUsed = "なし"
)

// flowFields are the semicolon-delimited list fields.
var flowFields = map[string]bool{
	"導入の流れ":   true,
	"活動の流れ":   true,
	"振り返りの流れ": true,
	"指導のポイント": true,
	"教材写真URL":  true,
}

// IsFlowField reports whether the field holds a semicolon-delimited list.
func IsFlowField(name string) bool {
	return flowFields[name]
}

// IsTagField reports whether the field holds comma-delimited tags.
func IsTagField(name string) bool {
	return name == FieldHashtags
}

// ListSeparator returns the join separator for a field's list values:
// comma for the tag field, semicolon for everything else.
func ListSeparator(name string) string {
	if IsTagField(name) {
		return ","
	}
	return ";"
}
