package edne

import (
	"errors"
	"testing"
)

func TestDecodeISO88591_Basic(t *testing.T) {
	got, err := DecodeISO88591([]byte("Hello World"))
	if err != nil {
		t.Fatalf("DecodeISO88591 error: %v", err)
	}
	if got != "Hello World" {
		t.Errorf("got %q, want %q", got, "Hello World")
	}
}

func TestDecodeISO88591_Accents(t *testing.T) {
	// "São Paulo" in ISO-8859-1: 0xE3 is ã.
	bts := []byte{0x53, 0xE3, 0x6F, 0x20, 0x50, 0x61, 0x75, 0x6C, 0x6F}
	got, err := DecodeISO88591(bts)
	if err != nil {
		t.Fatalf("DecodeISO88591 error: %v", err)
	}
	if got != "São Paulo" {
		t.Errorf("got %q, want %q", got, "São Paulo")
	}
}

func TestDecodeISO88591_AllByteValues(t *testing.T) {
	bts := make([]byte, 256)
	for i := range bts {
		bts[i] = byte(i)
	}
	got, err := DecodeISO88591(bts)
	if err != nil {
		t.Fatalf("DecodeISO88591 error: %v", err)
	}
	runes := []rune(got)
	if len(runes) != 256 {
		t.Fatalf("got %d runes, want 256", len(runes))
	}
	for i, r := range runes {
		if r != rune(i) {
			t.Errorf("byte 0x%02X decoded to U+%04X, want U+%04X", i, r, i)
		}
	}
}

func TestLines_SkipsBlankKeepsNumbers(t *testing.T) {
	content := "line1\n\nline2\n  \nline3"
	type numbered struct {
		no   int
		text string
	}
	var got []numbered
	for no, text := range lines(content) {
		got = append(got, numbered{no, text})
	}
	want := []numbered{{1, "line1"}, {3, "line2"}, {5, "line3"}}
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLines_CRLF(t *testing.T) {
	var got []string
	for _, text := range lines("a\r\nb\r\n") {
		got = append(got, text)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("got %v, want [a b]", got)
	}
}

func TestLines_Restartable(t *testing.T) {
	seq := lines("a\nb")
	for range 2 {
		var count int
		for range seq {
			count++
		}
		if count != 2 {
			t.Fatalf("got %d lines, want 2", count)
		}
	}
}

func TestSplitFields(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"field1@field2@field3", []string{"field1", "field2", "field3"}},
		{"field1@field2@", []string{"field1", "field2", ""}},
		{"field1@@field3", []string{"field1", "", "field3"}},
		{"", []string{""}},
	}
	for _, tt := range tests {
		got := splitFields(tt.line)
		if len(got) != len(tt.want) {
			t.Errorf("splitFields(%q) = %v, want %v", tt.line, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("splitFields(%q)[%d] = %q, want %q", tt.line, i, got[i], tt.want[i])
			}
		}
	}
}

func TestSplitFieldsChecked_WrongCount(t *testing.T) {
	_, err := splitFieldsChecked("a@b", 3, 7)
	var fcErr *FieldCountError
	if !errors.As(err, &fcErr) {
		t.Fatalf("got %v, want *FieldCountError", err)
	}
	if fcErr.Expected != 3 || fcErr.Got != 2 || fcErr.Line != 7 {
		t.Errorf("got %+v, want Expected=3 Got=2 Line=7", fcErr)
	}
}

func TestSplitFieldsChecked_Success(t *testing.T) {
	fields, err := splitFieldsChecked("a@b@c", 3, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fields) != 3 {
		t.Errorf("got %d fields, want 3", len(fields))
	}
}

func TestRequiredField(t *testing.T) {
	got, err := requiredField(" value ", "f", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Content is returned untrimmed.
	if got != " value " {
		t.Errorf("got %q, want %q", got, " value ")
	}

	_, err = requiredField("  ", "test_field", 4)
	var emptyErr *EmptyFieldError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("got %v, want *EmptyFieldError", err)
	}
	if emptyErr.Field != "test_field" || emptyErr.Line != 4 {
		t.Errorf("got %+v, want Field=test_field Line=4", emptyErr)
	}
}

func TestOptionalField(t *testing.T) {
	if got, ok := optionalField("value"); !ok || got != "value" {
		t.Errorf("optionalField(value) = %q, %v", got, ok)
	}
	if _, ok := optionalField("  "); ok {
		t.Error("optionalField of blank input should report absent")
	}
}

func TestParseNumber(t *testing.T) {
	got, err := parseNumber[uint32](" 12345 ", "id", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 12345 {
		t.Errorf("got %d, want 12345", got)
	}

	_, err = parseNumber[uint32]("abc", "id", 9)
	var numErr *InvalidNumberError
	if !errors.As(err, &numErr) {
		t.Fatalf("got %v, want *InvalidNumberError", err)
	}
	if numErr.Field != "id" || numErr.Value != "abc" || numErr.Line != 9 {
		t.Errorf("got %+v, want Field=id Value=abc Line=9", numErr)
	}
}

func TestParseOptionalNumber(t *testing.T) {
	got, ok, err := parseOptionalNumber[uint32]("12345", "id", 1)
	if err != nil || !ok || got != 12345 {
		t.Errorf("got (%d, %v, %v), want (12345, true, nil)", got, ok, err)
	}

	_, ok, err = parseOptionalNumber[uint32]("", "id", 1)
	if err != nil || ok {
		t.Errorf("empty field: got (ok=%v, err=%v), want absent with no error", ok, err)
	}

	_, _, err = parseOptionalNumber[uint32]("x1", "id", 2)
	if err == nil {
		t.Error("non-empty bad text should fail")
	}
}

func TestParse_Idempotent(t *testing.T) {
	input := []byte("16@AC@Rio Branco@@1@M@@Rio Branco@1200401\n13@AC@Placido de Castro@69928000@0@M@@Placido Castro@1200385")

	first, err := ParseLocalities(input)
	if err != nil {
		t.Fatal(err)
	}
	second, err := ParseLocalities(input)
	if err != nil {
		t.Fatal(err)
	}

	if first.Len() != second.Len() {
		t.Fatalf("lengths differ: %d vs %d", first.Len(), second.Len())
	}
	for id, rec := range first.All() {
		other, ok := second.Get(id)
		if !ok {
			t.Fatalf("second parse is missing %v", id)
		}
		if rec != other {
			t.Errorf("records for %v differ: %+v vs %+v", id, rec, other)
		}
	}
}
