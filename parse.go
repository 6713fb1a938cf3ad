package edne

import (
	"iter"
	"strconv"
	"strings"
)

// lines yields (1-based line number, text) pairs over decoded content,
// skipping lines that are blank after trimming. Line numbers count the
// skipped lines too, so errors point at the true source line. The
// sequence is restartable: each range starts from the first line.
func lines(content string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, line := range strings.Split(content, "\n") {
			line = strings.TrimSuffix(line, "\r")
			if strings.TrimSpace(line) == "" {
				continue
			}
			if !yield(i+1, line) {
				return
			}
		}
	}
}

// splitFields splits one record line on the field separator. Internal
// empty fields are preserved and a trailing separator yields a trailing
// empty field.
func splitFields(line string) []string {
	return strings.Split(line, FieldSeparator)
}

// splitFieldsChecked splits a line and enforces the record kind's exact
// field count.
func splitFieldsChecked(line string, expected, lineNo int) ([]string, error) {
	fields := splitFields(line)
	if len(fields) != expected {
		return nil, &FieldCountError{Expected: expected, Got: len(fields), Line: lineNo}
	}
	return fields, nil
}

// requiredField returns the field content, failing when it is empty
// after trimming. The returned value keeps the original, untrimmed
// text.
func requiredField(field, name string, lineNo int) (string, error) {
	if strings.TrimSpace(field) == "" {
		return "", &EmptyFieldError{Field: name, Line: lineNo}
	}
	return field, nil
}

// optionalField returns the field content and true, or ok=false when
// the field is empty after trimming.
func optionalField(field string) (string, bool) {
	if strings.TrimSpace(field) == "" {
		return "", false
	}
	return field, true
}

// unsigned constrains the numeric field helpers to the unsigned types
// used by eDNE identifiers.
type unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// parseNumber parses a required numeric field as an unsigned decimal.
func parseNumber[T unsigned](field, name string, lineNo int) (T, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(field), 10, 64)
	if err != nil {
		return 0, &InvalidNumberError{Field: name, Value: field, Line: lineNo}
	}
	return T(v), nil
}

// parseOptionalNumber parses an optional numeric field. An empty field
// yields ok=false with no error; non-empty text must parse.
func parseOptionalNumber[T unsigned](field, name string, lineNo int) (T, bool, error) {
	if _, ok := optionalField(field); !ok {
		return 0, false, nil
	}
	v, err := parseNumber[T](field, name, lineNo)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

// recordKind describes how one eDNE record kind maps a field slice to
// a typed record: its fixed field count, the field-to-record mapping,
// and the record's own key.
type recordKind[K comparable, R any] struct {
	fieldCount int
	parse      func(fields []string, lineNo int) (R, error)
	key        func(R) K
}

// parseKind runs the shared parse loop for one record kind over decoded
// content. The first malformed line aborts the whole source.
func parseKind[K comparable, R any](kind recordKind[K, R], content string) (*Collection[K, R], error) {
	col := newCollection[K, R](0)
	for lineNo, line := range lines(content) {
		fields, err := splitFieldsChecked(line, kind.fieldCount, lineNo)
		if err != nil {
			return nil, err
		}
		rec, err := kind.parse(fields, lineNo)
		if err != nil {
			return nil, err
		}
		col.Insert(kind.key(rec), rec)
	}
	return col, nil
}

// parseKindBytes decodes ISO-8859-1 bytes and parses one record kind.
func parseKindBytes[K comparable, R any](kind recordKind[K, R], b []byte) (*Collection[K, R], error) {
	content, err := DecodeISO88591(b)
	if err != nil {
		return nil, err
	}
	return parseKind(kind, content)
}
