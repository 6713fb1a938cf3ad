package edne

import "strings"

// LocalitySituation is the street-level coding status of a locality
// (LOC_IN_SIT).
type LocalitySituation uint8

const (
	// SituationNotCoded means addresses resolve to the locality's own
	// general CEP (code "0").
	SituationNotCoded LocalitySituation = iota
	// SituationCoded means the locality is coded at street level
	// (code "1").
	SituationCoded
	// SituationDistrictOrVillage marks a district or village inserted
	// in street-level coding (code "2").
	SituationDistrictOrVillage
	// SituationCodingInProgress marks a locality whose street-level
	// coding is underway (code "3").
	SituationCodingInProgress
)

// ParseLocalitySituation matches the single-digit situation code
// literally after trimming.
func ParseLocalitySituation(s string) (LocalitySituation, error) {
	switch trimmed := strings.TrimSpace(s); trimmed {
	case "0":
		return SituationNotCoded, nil
	case "1":
		return SituationCoded, nil
	case "2":
		return SituationDistrictOrVillage, nil
	case "3":
		return SituationCodingInProgress, nil
	default:
		return 0, &CodeError{Enum: "locality situation", Code: trimmed}
	}
}

func (s LocalitySituation) String() string {
	switch s {
	case SituationNotCoded:
		return "0"
	case SituationCoded:
		return "1"
	case SituationDistrictOrVillage:
		return "2"
	case SituationCodingInProgress:
		return "3"
	}
	return "?"
}

// LocalityType classifies a locality (LOC_IN_TIPO_LOC).
type LocalityType uint8

const (
	// LocalityDistrict is a district (code "D").
	LocalityDistrict LocalityType = iota + 1
	// LocalityMunicipality is a municipality (code "M").
	LocalityMunicipality
	// LocalityVillage is a village or settlement (code "P").
	LocalityVillage
)

// ParseLocalityType parses the D/M/P locality type code,
// case-insensitively.
func ParseLocalityType(s string) (LocalityType, error) {
	switch trimmed := strings.ToUpper(strings.TrimSpace(s)); trimmed {
	case "D":
		return LocalityDistrict, nil
	case "M":
		return LocalityMunicipality, nil
	case "P":
		return LocalityVillage, nil
	default:
		return 0, &CodeError{Enum: "locality type", Code: trimmed}
	}
}

func (t LocalityType) String() string {
	switch t {
	case LocalityDistrict:
		return "D"
	case LocalityMunicipality:
		return "M"
	case LocalityVillage:
		return "P"
	}
	return "?"
}

// Locality is one LOG_LOCALIDADE record: a municipality, district or
// village. Records are immutable once parsed.
type Locality struct {
	ID   LocalityID
	UF   UF
	Name string
	// CEP is the locality's general postal code; meaningful only when
	// Situation is SituationNotCoded, empty otherwise.
	CEP       string
	Situation LocalitySituation
	Type      LocalityType
	// SubordinateTo links a subordinate locality to its parent; zero
	// when the locality is top-level.
	SubordinateTo LocalityID
	Abbreviation  string // empty when absent
	IBGECode      string // empty when absent
}

const localityFieldCount = 9

var localityKind = recordKind[LocalityID, Locality]{
	fieldCount: localityFieldCount,
	parse:      parseLocalityFields,
	key:        func(l Locality) LocalityID { return l.ID },
}

// ParseLocalities parses LOG_LOCALIDADE content from ISO-8859-1 bytes.
func ParseLocalities(b []byte) (*Localities, error) {
	return parseKindBytes(localityKind, b)
}

// ParseLocalitiesString parses LOG_LOCALIDADE content from UTF-8 text.
func ParseLocalitiesString(s string) (*Localities, error) {
	return parseKind(localityKind, s)
}

func parseLocalityFields(fields []string, lineNo int) (Locality, error) {
	var loc Locality

	idText, err := requiredField(fields[0], "LOC_NU", lineNo)
	if err != nil {
		return loc, err
	}
	if loc.ID, err = ParseLocalityID(idText); err != nil {
		return loc, invalidValue("LOC_NU", idText, lineNo, err)
	}

	ufText, err := requiredField(fields[1], "UFE_SG", lineNo)
	if err != nil {
		return loc, err
	}
	if loc.UF, err = ParseUF(ufText); err != nil {
		return loc, invalidValue("UFE_SG", ufText, lineNo, err)
	}

	if loc.Name, err = requiredField(fields[2], "LOC_NO", lineNo); err != nil {
		return loc, err
	}

	loc.CEP, _ = optionalField(fields[3])

	sitText, err := requiredField(fields[4], "LOC_IN_SIT", lineNo)
	if err != nil {
		return loc, err
	}
	if loc.Situation, err = ParseLocalitySituation(sitText); err != nil {
		return loc, invalidValue("LOC_IN_SIT", sitText, lineNo, err)
	}

	typeText, err := requiredField(fields[5], "LOC_IN_TIPO_LOC", lineNo)
	if err != nil {
		return loc, err
	}
	if loc.Type, err = ParseLocalityType(typeText); err != nil {
		return loc, invalidValue("LOC_IN_TIPO_LOC", typeText, lineNo, err)
	}

	if subText, ok := optionalField(fields[6]); ok {
		if loc.SubordinateTo, err = ParseLocalityID(subText); err != nil {
			return loc, invalidValue("LOC_NU_SUB", subText, lineNo, err)
		}
	}

	loc.Abbreviation, _ = optionalField(fields[7])
	loc.IBGECode, _ = optionalField(fields[8])
	return loc, nil
}
