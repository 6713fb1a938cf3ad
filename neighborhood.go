package edne

// Neighborhood is one LOG_BAIRRO record: a named subdivision of a
// locality. LocalityID is a foreign key resolved by lookup at merge
// time, not a live reference.
type Neighborhood struct {
	ID           NeighborhoodID
	UF           UF
	LocalityID   LocalityID
	Name         string
	Abbreviation string // empty when absent
}

const neighborhoodFieldCount = 5

var neighborhoodKind = recordKind[NeighborhoodID, Neighborhood]{
	fieldCount: neighborhoodFieldCount,
	parse:      parseNeighborhoodFields,
	key:        func(n Neighborhood) NeighborhoodID { return n.ID },
}

// ParseNeighborhoods parses LOG_BAIRRO content from ISO-8859-1 bytes.
func ParseNeighborhoods(b []byte) (*Neighborhoods, error) {
	return parseKindBytes(neighborhoodKind, b)
}

// ParseNeighborhoodsString parses LOG_BAIRRO content from UTF-8 text.
func ParseNeighborhoodsString(s string) (*Neighborhoods, error) {
	return parseKind(neighborhoodKind, s)
}

func parseNeighborhoodFields(fields []string, lineNo int) (Neighborhood, error) {
	var n Neighborhood

	idText, err := requiredField(fields[0], "BAI_NU", lineNo)
	if err != nil {
		return n, err
	}
	if n.ID, err = ParseNeighborhoodID(idText); err != nil {
		return n, invalidValue("BAI_NU", idText, lineNo, err)
	}

	ufText, err := requiredField(fields[1], "UFE_SG", lineNo)
	if err != nil {
		return n, err
	}
	if n.UF, err = ParseUF(ufText); err != nil {
		return n, invalidValue("UFE_SG", ufText, lineNo, err)
	}

	locText, err := requiredField(fields[2], "LOC_NU", lineNo)
	if err != nil {
		return n, err
	}
	if n.LocalityID, err = ParseLocalityID(locText); err != nil {
		return n, invalidValue("LOC_NU", locText, lineNo, err)
	}

	if n.Name, err = requiredField(fields[3], "BAI_NO", lineNo); err != nil {
		return n, err
	}

	n.Abbreviation, _ = optionalField(fields[4])
	return n, nil
}
