package tabular_test

import (
	"strings"
	"testing"

	"github.com/naborsk/racequiz/internal/tabular"
)

func TestDecodeSuffixesRepeatedHeaders(t *testing.T) {
	input := "org_id,Вопрос,Неверный ответ,Неверный ответ,Неверный ответ\n" +
		"q-1,текст,a,b,c\n"

	records, err := tabular.Decode(strings.NewReader(input), ',')
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec["Неверный ответ"] != "a" || rec["Неверный ответ.1"] != "b" || rec["Неверный ответ.2"] != "c" {
		t.Fatalf("repeated headers not suffixed: %+v", rec)
	}
}

func TestDecodeSemicolonSeparator(t *testing.T) {
	input := "Группа;Номер участника;Баллы\nM;12;5\nW;13;7\n"

	records, err := tabular.Decode(strings.NewReader(input), ';')
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0]["Номер участника"] != "12" || records[1]["Баллы"] != "7" {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestDecodeShortRowsAndEmptyInput(t *testing.T) {
	records, err := tabular.Decode(strings.NewReader(""), ',')
	if err != nil {
		t.Fatalf("decode empty input: %v", err)
	}
	if records != nil {
		t.Fatalf("expected no records for empty input, got %+v", records)
	}

	records, err = tabular.Decode(strings.NewReader("a,b,c\n1,2\n"), ',')
	if err != nil {
		t.Fatalf("decode short row: %v", err)
	}
	if records[0]["c"] != "" {
		t.Fatalf("missing cell must map to empty string, got %q", records[0]["c"])
	}
}
