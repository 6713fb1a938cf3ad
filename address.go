package edne

import "strings"

// StreetTypeIndicator says whether an address's street type label
// should be concatenated with its name for display (LOG_STA_TLO).
type StreetTypeIndicator uint8

const (
	// StreetTypeIndicatorUnset marks an absent indicator field.
	StreetTypeIndicatorUnset StreetTypeIndicator = iota
	// StreetTypeIndicatorYes prepends the street type (code "S").
	StreetTypeIndicatorYes
	// StreetTypeIndicatorNo uses the bare name (code "N").
	StreetTypeIndicatorNo
)

// ParseStreetTypeIndicator parses the S/N indicator code,
// case-insensitively.
func ParseStreetTypeIndicator(s string) (StreetTypeIndicator, error) {
	switch trimmed := strings.ToUpper(strings.TrimSpace(s)); trimmed {
	case "S":
		return StreetTypeIndicatorYes, nil
	case "N":
		return StreetTypeIndicatorNo, nil
	default:
		return 0, &CodeError{Enum: "street type indicator", Code: trimmed}
	}
}

func (i StreetTypeIndicator) String() string {
	switch i {
	case StreetTypeIndicatorYes:
		return "S"
	case StreetTypeIndicatorNo:
		return "N"
	}
	return ""
}

// Address is one LOG_LOGRADOURO record: a named street, avenue or
// similar within a street-coded locality. The locality and
// neighborhood identifiers are foreign keys resolved at merge time; a
// street may span two neighborhoods, in which case NeighborhoodEndID
// is set.
type Address struct {
	ID                  AddressID
	UF                  UF
	LocalityID          LocalityID
	NeighborhoodStartID NeighborhoodID
	NeighborhoodEndID   NeighborhoodID // zero when the street stays in one neighborhood
	Name                string
	Complement          string // empty when absent
	CEP                 string
	// StreetType is the free-text type label, e.g. "Rua", "Avenida".
	StreetType   string
	Indicator    StreetTypeIndicator
	Abbreviation string // empty when absent
}

// DisplayName returns the address text used in lookup entries: the
// street type concatenated with the name when the indicator is
// affirmative, the bare name otherwise.
func (a Address) DisplayName() string {
	if a.Indicator == StreetTypeIndicatorYes {
		return a.StreetType + " " + a.Name
	}
	return a.Name
}

const addressFieldCount = 11

var addressKind = recordKind[AddressID, Address]{
	fieldCount: addressFieldCount,
	parse:      parseAddressFields,
	key:        func(a Address) AddressID { return a.ID },
}

// ParseAddresses parses LOG_LOGRADOURO content from ISO-8859-1 bytes.
func ParseAddresses(b []byte) (*Addresses, error) {
	return parseKindBytes(addressKind, b)
}

// ParseAddressesString parses LOG_LOGRADOURO content from UTF-8 text.
func ParseAddressesString(s string) (*Addresses, error) {
	return parseKind(addressKind, s)
}

func parseAddressFields(fields []string, lineNo int) (Address, error) {
	var a Address

	idText, err := requiredField(fields[0], "LOG_NU", lineNo)
	if err != nil {
		return a, err
	}
	if a.ID, err = ParseAddressID(idText); err != nil {
		return a, invalidValue("LOG_NU", idText, lineNo, err)
	}

	ufText, err := requiredField(fields[1], "UFE_SG", lineNo)
	if err != nil {
		return a, err
	}
	if a.UF, err = ParseUF(ufText); err != nil {
		return a, invalidValue("UFE_SG", ufText, lineNo, err)
	}

	locText, err := requiredField(fields[2], "LOC_NU", lineNo)
	if err != nil {
		return a, err
	}
	if a.LocalityID, err = ParseLocalityID(locText); err != nil {
		return a, invalidValue("LOC_NU", locText, lineNo, err)
	}

	startText, err := requiredField(fields[3], "BAI_NU_INI", lineNo)
	if err != nil {
		return a, err
	}
	if a.NeighborhoodStartID, err = ParseNeighborhoodID(startText); err != nil {
		return a, invalidValue("BAI_NU_INI", startText, lineNo, err)
	}

	if endText, ok := optionalField(fields[4]); ok {
		if a.NeighborhoodEndID, err = ParseNeighborhoodID(endText); err != nil {
			return a, invalidValue("BAI_NU_FIM", endText, lineNo, err)
		}
	}

	if a.Name, err = requiredField(fields[5], "LOG_NO", lineNo); err != nil {
		return a, err
	}

	a.Complement, _ = optionalField(fields[6])

	if a.CEP, err = requiredField(fields[7], "CEP", lineNo); err != nil {
		return a, err
	}

	if a.StreetType, err = requiredField(fields[8], "TLO_TX", lineNo); err != nil {
		return a, err
	}

	if indText, ok := optionalField(fields[9]); ok {
		if a.Indicator, err = ParseStreetTypeIndicator(indText); err != nil {
			return a, invalidValue("LOG_STA_TLO", indText, lineNo, err)
		}
	}

	a.Abbreviation, _ = optionalField(fields[10])
	return a, nil
}
