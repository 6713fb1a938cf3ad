package edne

import (
	"errors"
	"testing"
)

const operationalUnitSample = `48437@AC@11059@51784@@AGC Campinas@Rua Kaxinawás, s/n@69929970@N@AGC Campinas
4124@AC@16@47@1@AC Rio Branco@Rua Nelson Mesquita, 100@69918970@S@AC Rio Branco`

func TestParseOperationalUnits_Sample(t *testing.T) {
	units, err := ParseOperationalUnitsString(operationalUnitSample)
	if err != nil {
		t.Fatal(err)
	}
	if units.Len() != 2 {
		t.Errorf("got %d operational units, want 2", units.Len())
	}

	u, ok := units.Get(48437)
	if !ok {
		t.Fatal("operational unit 48437 not found")
	}
	want := OperationalUnit{
		ID:             48437,
		UF:             AC,
		LocalityID:     11059,
		NeighborhoodID: 51784,
		Name:           "AGC Campinas",
		AddressText:    "Rua Kaxinawás, s/n",
		CEP:            "69929970",
		PostBox:        PostBoxNo,
		Abbreviation:   "AGC Campinas",
	}
	if u != want {
		t.Errorf("got %+v, want %+v", u, want)
	}
}

func TestParseOperationalUnits_PostBoxAndStreetRef(t *testing.T) {
	units, err := ParseOperationalUnitsString(operationalUnitSample)
	if err != nil {
		t.Fatal(err)
	}
	u, _ := units.Get(4124)
	if u.PostBox != PostBoxYes {
		t.Errorf("PostBox = %v, want PostBoxYes", u.PostBox)
	}
	if u.StreetID != 1 {
		t.Errorf("StreetID = %v, want 1", u.StreetID)
	}
}

func TestParsePostBoxIndicator(t *testing.T) {
	tests := []struct {
		input string
		want  PostBoxIndicator
	}{
		{"S", PostBoxYes},
		{"N", PostBoxNo},
		{"s", PostBoxYes},
		{" N ", PostBoxNo},
	}
	for _, tt := range tests {
		got, err := ParsePostBoxIndicator(tt.input)
		if err != nil {
			t.Fatalf("ParsePostBoxIndicator(%q) error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParsePostBoxIndicator(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	_, err := ParsePostBoxIndicator("")
	var codeErr *CodeError
	if !errors.As(err, &codeErr) {
		t.Fatalf("got %v, want *CodeError", err)
	}
}

func TestParseOperationalUnits_MissingIndicator(t *testing.T) {
	_, err := ParseOperationalUnitsString("48437@AC@11059@51784@@AGC Campinas@Rua Kaxinawás, s/n@69929970@@AGC Campinas")
	var emptyErr *EmptyFieldError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("got %v, want *EmptyFieldError", err)
	}
	if emptyErr.Field != "UOP_IN_CP" {
		t.Errorf("Field = %q, want UOP_IN_CP", emptyErr.Field)
	}
}

func TestParseOperationalUnits_FieldCountError(t *testing.T) {
	_, err := ParseOperationalUnitsString("48437@AC@11059")
	var fcErr *FieldCountError
	if !errors.As(err, &fcErr) {
		t.Fatalf("got %v, want *FieldCountError", err)
	}
	if fcErr.Expected != 10 || fcErr.Got != 3 {
		t.Errorf("got Expected=%d Got=%d, want 10 and 3", fcErr.Expected, fcErr.Got)
	}
}
