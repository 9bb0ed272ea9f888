package card

import (
	"fmt"
	"strings"
)

// SelectionLabel builds the picker line for a record:
// "[timestamp] unit - lesson title", with placeholders for missing fields.
func SelectionLabel(r Record) string {
	timestamp := r.Get(FieldTimestamp).Str
	if timestamp == "" {
		timestamp = "日時不明"
	}
	unit := r.Get(FieldUnitName).Str
	if unit == "" {
		unit = "単元名なし"
	}
	title := r.Get(FieldLessonTitle).Str
	if title == "" {
		title = "授業タイトルなし"
	}
	return fmt.Sprintf("[%s] %s - %s", timestamp, unit, title)
}

// DownloadFilename derives the output filename for a filled card:
// "{unit}_授業カード_{YYYYMMDD}{ext}". The unit name has path-unsafe
// characters replaced, and the date comes from the timestamp's date
// part with hyphens stripped.
func DownloadFilename(r Record, ext string) string {
	unit := r.Get(FieldUnitName).Str
	if unit == "" {
		unit = "授業カード"
	}
	unit = sanitizeFilename(unit)

	timestamp := r.Get(FieldTimestamp).Str
	date, _, _ := strings.Cut(timestamp, " ")
	date = strings.ReplaceAll(date, "-", "")

	return fmt.Sprintf("%s_授業カード_%s%s", unit, date, ext)
}

// sanitizeFilename replaces path-unsafe characters with underscores.
func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		if r < 0x20 {
			return '_'
		}
		return r
	}, name)
}
