package edne

// BigUser is one LOG_GRANDE_USUARIO record: a high-mail-volume
// addressee (company, institution) with its own dedicated CEP.
// StreetID is zero when the owning locality is not street-coded; the
// big user's own AddressText substitutes in that case.
type BigUser struct {
	ID             BigUserID
	UF             UF
	LocalityID     LocalityID
	NeighborhoodID NeighborhoodID
	StreetID       AddressID // zero when absent
	Name           string
	AddressText    string
	CEP            string
	Abbreviation   string // empty when absent
}

const bigUserFieldCount = 9

var bigUserKind = recordKind[BigUserID, BigUser]{
	fieldCount: bigUserFieldCount,
	parse:      parseBigUserFields,
	key:        func(u BigUser) BigUserID { return u.ID },
}

// ParseBigUsers parses LOG_GRANDE_USUARIO content from ISO-8859-1
// bytes.
func ParseBigUsers(b []byte) (*BigUsers, error) {
	return parseKindBytes(bigUserKind, b)
}

// ParseBigUsersString parses LOG_GRANDE_USUARIO content from UTF-8
// text.
func ParseBigUsersString(s string) (*BigUsers, error) {
	return parseKind(bigUserKind, s)
}

func parseBigUserFields(fields []string, lineNo int) (BigUser, error) {
	var u BigUser

	idText, err := requiredField(fields[0], "GRU_NU", lineNo)
	if err != nil {
		return u, err
	}
	if u.ID, err = ParseBigUserID(idText); err != nil {
		return u, invalidValue("GRU_NU", idText, lineNo, err)
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

	if u.Name, err = requiredField(fields[5], "GRU_NO", lineNo); err != nil {
		return u, err
	}

	if u.AddressText, err = requiredField(fields[6], "GRU_ENDERECO", lineNo); err != nil {
		return u, err
	}

	if u.CEP, err = requiredField(fields[7], "CEP", lineNo); err != nil {
		return u, err
	}

	u.Abbreviation, _ = optionalField(fields[8])
	return u, nil
}
