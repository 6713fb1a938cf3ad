// Package edne parses Brazilian National Address Directory (eDNE) files
// and builds an in-memory CEP lookup index from them.
//
// eDNE files are fixed-schema text files encoded in ISO-8859-1. Each
// line is one record and fields are separated by the '@' character.
// Six record kinds exist: localities, neighborhoods, addresses
// (streets), big users, operational units and community postal boxes
// (CPCs). Each kind has its own parse entry point returning a typed
// collection, e.g.:
//
//	bts, err := os.ReadFile("LOG_LOCALIDADE.TXT")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	localities, err := edne.ParseLocalities(bts)
//
// A Builder accumulates collections and merges them into a CEPLookup,
// which maps an 8-digit CEP to a display-ready address summary:
//
//	b := edne.NewBuilder()
//	b.AddLocalities(localities)
//	b.AddAddresses(addresses)
//	lookup := b.Build()
//	info, ok := lookup.Lookup("69918703")
//
// Parsing is fail-fast: the first malformed line aborts the whole
// source with an error carrying the 1-based line number and, where
// applicable, the offending field name. All types are safe for
// concurrent reads once built; none support concurrent mutation.
package edne

import (
	"golang.org/x/text/encoding/charmap"
)

// FieldSeparator separates fields within an eDNE record line.
const FieldSeparator = "@"

// DecodeISO88591 converts ISO-8859-1 encoded bytes to a UTF-8 string.
// Every byte value 0x00-0xFF maps to the Unicode code point of the same
// value, so decoding succeeds for any input; the error return is kept
// for parity with the parse entry points that consume it.
func DecodeISO88591(b []byte) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", &EncodingError{Cause: err}
	}
	return string(out), nil
}
