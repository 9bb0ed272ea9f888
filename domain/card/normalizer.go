package card

import (
	"fmt"
	"strconv"
	"strings"
)

// Normalize converts raw sheet rows into typed records. headers is the
// sheet's first row; rows are the data rows below it. Rows whose every
// cell is blank are dropped and do not consume a generated-id index.
// An empty header sequence yields an empty result.
func Normalize(headers []string, rows [][]string) []Record {
	if len(headers) == 0 {
		return nil
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}

		fields := make(map[string]Value, len(headers))
		for i, header := range headers {
			cell := ""
			if i < len(row) {
				cell = strings.TrimSpace(row[i])
			}
			fields[header] = coerce(header, cell)
		}

		index := len(records)
		records = append(records, Record{
			GeneratedID: generatedID(fields, index),
			Fields:      fields,
		})
	}

	return records
}

// coerce applies the field-class parsing rule to one trimmed cell.
// Every rule has a fallback; malformed cells never fail the row.
func coerce(header, cell string) Value {
	switch {
	case IsFlowField(header):
		return ListValue(splitList(cell, ";"))
	case IsTagField(header):
		return ListValue(splitList(cell, ","))
	case header == FieldOrder:
		n, err := strconv.Atoi(cell)
		if err != nil {
			return IntValue(OrderSentinel)
		}
		return IntValue(n)
	case header == FieldICTUse:
		return StringValue(normalizeICTUse(cell))
	default:
		return StringValue(cell)
	}
}

// splitList splits a delimited cell, trimming pieces and dropping
// empties. An empty cell yields an empty list, not [""].
func splitList(cell, sep string) []string {
	items := []string{}
	if cell == "" {
		return items
	}
	for _, piece := range strings.Split(cell, sep) {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			items = append(items, piece)
		}
	}
	return items
}

// normalizeICTUse maps boolean-like spellings to あり/なし. Unknown
// spellings pass through unchanged; the form historically allowed free
// text here and stricter handling would reject real responses.
func normalizeICTUse(cell string) string {
	switch strings.ToLower(cell) {
	case "true", "はい":
		return ICTUsed
	case "false", "いいえ":
		return ICTNotUsed
	default:
		return cell
	}
}

// generatedID derives the record's synthetic identifier from its
// timestamp field and position in the output sequence.
func generatedID(fields map[string]Value, index int) string {
	timestamp := ""
	if v, ok := fields[FieldTimestamp]; ok {
		timestamp = v.Str
	}
	if timestamp == "" {
		timestamp = fmt.Sprintf("no_timestamp_%d", index)
	}
	return fmt.Sprintf("gs_%s_%d", timestamp, index)
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
