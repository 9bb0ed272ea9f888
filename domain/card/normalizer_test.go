package card

import (
	"reflect"
	"testing"
)

func TestNormalize_EndToEnd(t *testing.T) {
	headers := []string{"タイムスタンプ", "単元名", "導入の流れ"}
	rows := [][]string{
		{"2024-01-01 10:00", "算数の授業", "導入A; 導入B"},
	}

	records := Normalize(headers, rows)
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}

	rec := records[0]
	if rec.GeneratedID != "gs_2024-01-01 10:00_0" {
		t.Errorf("Unexpected generated ID: %q", rec.GeneratedID)
	}
	if got := rec.Get("単元名").Str; got != "算数の授業" {
		t.Errorf("Unexpected unit name: %q", got)
	}
	flow := rec.Get("導入の流れ")
	if flow.Kind != KindList {
		t.Fatalf("Expected list value for flow field, got kind %d", flow.Kind)
	}
	if !reflect.DeepEqual(flow.List, []string{"導入A", "導入B"}) {
		t.Errorf("Unexpected flow list: %v", flow.List)
	}
}

func TestNormalize_BlankRowsDropped(t *testing.T) {
	headers := []string{"タイムスタンプ", "単元名", "導入の流れ"}
	rows := [][]string{
		{"2024-01-01 10:00", "国語", "a"},
		{"", "", ""},
		{"  ", "\t", " "},
		{"2024-01-02 09:00", "理科", "b"},
	}

	records := Normalize(headers, rows)
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	// Blank rows must not consume an index.
	if records[0].GeneratedID != "gs_2024-01-01 10:00_0" {
		t.Errorf("Unexpected first ID: %q", records[0].GeneratedID)
	}
	if records[1].GeneratedID != "gs_2024-01-02 09:00_1" {
		t.Errorf("Unexpected second ID: %q", records[1].GeneratedID)
	}
}

func TestNormalize_SecondRowBlank(t *testing.T) {
	headers := []string{"a", "b", "c"}
	rows := [][]string{
		{"1", "2", "3"},
		{"", "", ""},
	}

	records := Normalize(headers, rows)
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
}

func TestNormalize_EmptyHeaders(t *testing.T) {
	records := Normalize(nil, [][]string{{"a", "b"}})
	if len(records) != 0 {
		t.Errorf("Expected no records for empty headers, got %d", len(records))
	}
}

func TestNormalize_MissingTrailingCells(t *testing.T) {
	headers := []string{"タイムスタンプ", "単元名", "ねらい"}
	rows := [][]string{
		{"2024-01-01 10:00"},
	}

	records := Normalize(headers, rows)
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	rec := records[0]
	for _, field := range []string{"単元名", "ねらい"} {
		v, ok := rec.Fields[field]
		if !ok {
			t.Errorf("Field %q missing from record", field)
			continue
		}
		if v.Str != "" {
			t.Errorf("Expected empty string for %q, got %q", field, v.Str)
		}
	}
}

func TestNormalize_MissingTimestamp(t *testing.T) {
	headers := []string{"単元名"}
	rows := [][]string{
		{"図工"},
	}

	records := Normalize(headers, rows)
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0].GeneratedID != "gs_no_timestamp_0_0" {
		t.Errorf("Unexpected fallback ID: %q", records[0].GeneratedID)
	}
}

func TestNormalize_FlowFieldSplitting(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"spaced pieces", "a; b ;c", []string{"a", "b", "c"}},
		{"empty input", "", []string{}},
		{"empty pieces dropped", "a;;b;", []string{"a", "b"}},
		{"single item", "導入A", []string{"導入A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := Normalize([]string{"導入の流れ"}, [][]string{{tt.raw}})
			if tt.raw == "" {
				// A single empty cell is a blank row.
				if len(records) != 0 {
					t.Fatalf("Expected blank row to be dropped, got %d records", len(records))
				}
				return
			}
			got := records[0].Get("導入の流れ").List
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalize_EmptyListFieldWithOtherData(t *testing.T) {
	headers := []string{"単元名", "導入の流れ", "ハッシュタグ"}
	records := Normalize(headers, [][]string{{"体育", "", ""}})
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if got := rec.Get("導入の流れ").List; len(got) != 0 {
		t.Errorf("Expected empty flow list, got %v", got)
	}
	if got := rec.Get("ハッシュタグ").List; len(got) != 0 {
		t.Errorf("Expected empty tag list, got %v", got)
	}
}

func TestNormalize_TagFieldCommaSplit(t *testing.T) {
	records := Normalize([]string{"単元名", "ハッシュタグ"}, [][]string{{"音楽", "#楽器, #合奏 ,#鑑賞"}})
	got := records[0].Get("ハッシュタグ").List
	want := []string{"#楽器", "#合奏", "#鑑賞"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tag split = %v, want %v", got, want)
	}
}

func TestNormalize_OrderField(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"valid integer", "12", 12},
		{"non-numeric", "abc", OrderSentinel},
		{"empty", "", OrderSentinel},
		{"float", "3.5", OrderSentinel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := Normalize([]string{"単元名", "単元内での並び順"}, [][]string{{"社会", tt.raw}})
			if len(records) != 1 {
				t.Fatalf("Expected 1 record, got %d", len(records))
			}
			v := records[0].Get("単元内での並び順")
			if v.Kind != KindInt {
				t.Fatalf("Expected int value, got kind %d", v.Kind)
			}
			if v.Int != tt.want {
				t.Errorf("Order(%q) = %d, want %d", tt.raw, v.Int, tt.want)
			}
		})
	}
}

func TestNormalize_ICTUseField(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"true", ICTUsed},
		{"TRUE", ICTUsed},
		{"はい", ICTUsed},
		{"false", ICTNotUsed},
		{"いいえ", ICTNotUsed},
		{"maybe", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			records := Normalize([]string{"ICT活用有無"}, [][]string{{tt.raw}})
			if got := records[0].Get("ICT活用有無").Str; got != tt.want {
				t.Errorf("ICTUse(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
