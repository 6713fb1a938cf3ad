package edne

// CPC is one LOG_CPC record: a community postal box serving an area
// without home delivery. CPCs carry no neighborhood or street
// reference.
type CPC struct {
	ID          CPCID
	UF          UF
	LocalityID  LocalityID
	Name        string
	AddressText string
	CEP         string
}

const cpcFieldCount = 6

var cpcKind = recordKind[CPCID, CPC]{
	fieldCount: cpcFieldCount,
	parse:      parseCPCFields,
	key:        func(c CPC) CPCID { return c.ID },
}

// ParseCPCs parses LOG_CPC content from ISO-8859-1 bytes.
func ParseCPCs(b []byte) (*CPCs, error) {
	return parseKindBytes(cpcKind, b)
}

// ParseCPCsString parses LOG_CPC content from UTF-8 text.
func ParseCPCsString(s string) (*CPCs, error) {
	return parseKind(cpcKind, s)
}

func parseCPCFields(fields []string, lineNo int) (CPC, error) {
	var c CPC

	idText, err := requiredField(fields[0], "CPC_NU", lineNo)
	if err != nil {
		return c, err
	}
	if c.ID, err = ParseCPCID(idText); err != nil {
		return c, invalidValue("CPC_NU", idText, lineNo, err)
	}

	ufText, err := requiredField(fields[1], "UFE_SG", lineNo)
	if err != nil {
		return c, err
	}
	if c.UF, err = ParseUF(ufText); err != nil {
		return c, invalidValue("UFE_SG", ufText, lineNo, err)
	}

	locText, err := requiredField(fields[2], "LOC_NU", lineNo)
	if err != nil {
		return c, err
	}
	if c.LocalityID, err = ParseLocalityID(locText); err != nil {
		return c, invalidValue("LOC_NU", locText, lineNo, err)
	}

	if c.Name, err = requiredField(fields[3], "CPC_NO", lineNo); err != nil {
		return c, err
	}

	if c.AddressText, err = requiredField(fields[4], "CPC_ENDERECO", lineNo); err != nil {
		return c, err
	}

	if c.CEP, err = requiredField(fields[5], "CEP", lineNo); err != nil {
		return c, err
	}

	return c, nil
}
