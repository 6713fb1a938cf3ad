package edne

import "strings"

// UF is one of the 27 Brazilian federative units (UFE_SG). The zero
// value is not a valid UF. Values order by the official Correios
// sequence, giving deterministic grouping in reports.
type UF uint8

const (
	AC UF = iota + 1
	AL
	AP
	AM
	BA
	CE
	DF
	ES
	GO
	MA
	MT
	MS
	MG
	PA
	PB
	PR
	PE
	PI
	RJ
	RN
	RS
	RO
	RR
	SC
	SP
	SE
	TO
)

const ufCount = 27

// ufCodes and ufNames are parallel tables indexed by UF.
var ufCodes = [ufCount + 1]string{
	AC: "AC", AL: "AL", AP: "AP", AM: "AM", BA: "BA", CE: "CE",
	DF: "DF", ES: "ES", GO: "GO", MA: "MA", MT: "MT", MS: "MS",
	MG: "MG", PA: "PA", PB: "PB", PR: "PR", PE: "PE", PI: "PI",
	RJ: "RJ", RN: "RN", RS: "RS", RO: "RO", RR: "RR", SC: "SC",
	SP: "SP", SE: "SE", TO: "TO",
}

var ufNames = [ufCount + 1]string{
	AC: "Acre", AL: "Alagoas", AP: "Amapá", AM: "Amazonas",
	BA: "Bahia", CE: "Ceará", DF: "Distrito Federal",
	ES: "Espírito Santo", GO: "Goiás", MA: "Maranhão",
	MT: "Mato Grosso", MS: "Mato Grosso do Sul", MG: "Minas Gerais",
	PA: "Pará", PB: "Paraíba", PR: "Paraná", PE: "Pernambuco",
	PI: "Piauí", RJ: "Rio de Janeiro", RN: "Rio Grande do Norte",
	RS: "Rio Grande do Sul", RO: "Rondônia", RR: "Roraima",
	SC: "Santa Catarina", SP: "São Paulo", SE: "Sergipe",
	TO: "Tocantins",
}

var ufByCode = func() map[string]UF {
	m := make(map[string]UF, ufCount)
	for uf := AC; uf <= TO; uf++ {
		m[ufCodes[uf]] = uf
	}
	return m
}()

// ParseUF parses a two-letter federative unit code, case-insensitively.
// It fails with ErrUFEmpty for blank input, *UFLengthError when the
// trimmed length is not 2, and *UFCodeError for an unknown code.
func ParseUF(s string) (UF, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, ErrUFEmpty
	}
	if len(trimmed) != 2 {
		return 0, &UFLengthError{Length: len(trimmed)}
	}
	code := strings.ToUpper(trimmed)
	uf, ok := ufByCode[code]
	if !ok {
		return 0, &UFCodeError{Code: code}
	}
	return uf, nil
}

// String returns the two-letter code, e.g. "SP".
func (uf UF) String() string {
	if uf < AC || uf > TO {
		return "UF(invalid)"
	}
	return ufCodes[uf]
}

// Name returns the federative unit's full name, e.g. "São Paulo".
func (uf UF) Name() string {
	if uf < AC || uf > TO {
		return ""
	}
	return ufNames[uf]
}

// AllUFs returns the 27 federative units in their canonical order.
func AllUFs() []UF {
	ufs := make([]UF, 0, ufCount)
	for uf := AC; uf <= TO; uf++ {
		ufs = append(ufs, uf)
	}
	return ufs
}
