package edne

import "strings"

// PostBoxIndicator says whether an operational unit offers post-box
// service (UOP_IN_CP).
type PostBoxIndicator uint8

const (
	// PostBoxNo means no post boxes (code "N").
	PostBoxNo PostBoxIndicator = iota
	// PostBoxYes means post boxes are available (code "S").
	PostBoxYes
)

// ParsePostBoxIndicator parses the S/N indicator code,
// case-insensitively.
func ParsePostBoxIndicator(s string) (PostBoxIndicator, error) {
	switch trimmed := strings.ToUpper(strings.TrimSpace(s)); trimmed {
	case "S":
		return PostBoxYes, nil
	case "N":
		return PostBoxNo, nil
	default:
		return 0, &CodeError{Enum: "post box indicator", Code: trimmed}
	}
}

func (i PostBoxIndicator) String() string {
	if i == PostBoxYes {
		return "S"
	}
	return "N"
}

// OperationalUnit is one LOG_UNID_OPER record: a post office, franchise
// or distribution center. StreetID is zero when the owning locality is
// not street-coded.
type OperationalUnit struct {
	ID             OperationalUnitID
	UF             UF
	LocalityID     LocalityID
	NeighborhoodID NeighborhoodID
	StreetID       AddressID // zero when absent
	Name           string
	AddressText    string
	CEP            string
	PostBox        PostBoxIndicator
	Abbreviation   string // empty when absent
}

const operationalUnitFieldCount = 10

var operationalUnitKind = recordKind[OperationalUnitID, OperationalUnit]{
	fieldCount: operationalUnitFieldCount,
	parse:      parseOperationalUnitFields,
	key:        func(u OperationalUnit) OperationalUnitID { return u.ID },
}

// ParseOperationalUnits parses LOG_UNID_OPER content from ISO-8859-1
// bytes.
func ParseOperationalUnits(b []byte) (*OperationalUnits, error) {
	return parseKindBytes(operationalUnitKind, b)
}

// ParseOperationalUnitsString parses LOG_UNID_OPER content from UTF-8
// text.
func ParseOperationalUnitsString(s string) (*OperationalUnits, error) {
	return parseKind(operationalUnitKind, s)
}

func parseOperationalUnitFields(fields []string, lineNo int) (OperationalUnit, error) {
	var u OperationalUnit

	idText, err := requiredField(fields[0], "UOP_NU", lineNo)
	if err != nil {
		return u, err
	}
	if u.ID, err = ParseOperationalUnitID(idText); err != nil {
		return u, invalidValue("UOP_NU", idText, lineNo, err)
	}

	ufText, err := requiredField(fields[1], "UFE_SG", lineNo)
	if err != nil {
		return u, err
	}
	if u.UF, err = ParseUF(ufText); err != nil {
		return u, invalidValue("UFE_SG", ufText, lineNo, err)
	}

	locText, err := requiredField(fields[2], "LOC_NU", lineNo)
	if err != nil {
		return u, err
	}
	if u.LocalityID, err = ParseLocalityID(locText); err != nil {
		return u, invalidValue("LOC_NU", locText, lineNo, err)
	}

	baiText, err := requiredField(fields[3], "BAI_NU", lineNo)
	if err != nil {
		return u, err
	}
	if u.NeighborhoodID, err = ParseNeighborhoodID(baiText); err != nil {
		return u, invalidValue("BAI_NU", baiText, lineNo, err)
	}

	if logText, ok := optionalField(fields[4]); ok {
		if u.StreetID, err = ParseAddressID(logText); err != nil {
			return u, invalidValue("LOG_NU", logText, lineNo, err)
		}
	}

	if u.Name, err = requiredField(fields[5], "UOP_NO", lineNo); err != nil {
		return u, err
	}

	if u.AddressText, err = requiredField(fields[6], "UOP_ENDERECO", lineNo); err != nil {
		return u, err
	}

	if u.CEP, err = requiredField(fields[7], "CEP", lineNo); err != nil {
		return u, err
	}

	cpText, err := requiredField(fields[8], "UOP_IN_CP", lineNo)
	if err != nil {
		return u, err
	}
	if u.PostBox, err = ParsePostBoxIndicator(cpText); err != nil {
		return u, invalidValue("UOP_IN_CP", cpText, lineNo, err)
	}

	u.Abbreviation, _ = optionalField(fields[9])
	return u, nil
}
