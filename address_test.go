package edne

import (
	"errors"
	"testing"
)

const addressSample = `1@AC@16@47@@Nelson Mesquita@@69918703@Rua@S@R Nelson Mesquita
2@AC@16@47@@Catorze de Agosto@@69918704@Travessa@S@Tv Catorze de Agosto
3@AC@16@49922@@Valdomiro Lopes@de 2200 ao fim - lado par@69919958@Rua@S@R Valdomiro Lopes`

func TestParseAddresses_Sample(t *testing.T) {
	addresses, err := ParseAddressesString(addressSample)
	if err != nil {
		t.Fatal(err)
	}
	if addresses.Len() != 3 {
		t.Errorf("got %d addresses, want 3", addresses.Len())
	}

	a, ok := addresses.Get(1)
	if !ok {
		t.Fatal("address 1 not found")
	}
	want := Address{
		ID:                  1,
		UF:                  AC,
		LocalityID:          16,
		NeighborhoodStartID: 47,
		Name:                "Nelson Mesquita",
		CEP:                 "69918703",
		StreetType:          "Rua",
		Indicator:           StreetTypeIndicatorYes,
		Abbreviation:        "R Nelson Mesquita",
	}
	if a != want {
		t.Errorf("got %+v, want %+v", a, want)
	}
}

func TestParseAddresses_Complement(t *testing.T) {
	addresses, err := ParseAddressesString(addressSample)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := addresses.Get(3)
	if a.Complement != "de 2200 ao fim - lado par" {
		t.Errorf("Complement = %q", a.Complement)
	}
}

func TestParseAddresses_NeighborhoodSpan(t *testing.T) {
	addresses, err := ParseAddressesString("8@AC@16@47@49922@Isaura Parente@@69918710@Avenida@S@Av Isaura Parente")
	if err != nil {
		t.Fatal(err)
	}
	a, _ := addresses.Get(8)
	if a.NeighborhoodStartID != 47 || a.NeighborhoodEndID != 49922 {
		t.Errorf("got span %d..%d, want 47..49922", a.NeighborhoodStartID, a.NeighborhoodEndID)
	}
}

func TestAddressDisplayName(t *testing.T) {
	tests := []struct {
		name string
		addr Address
		want string
	}{
		{"prepends type", Address{Name: "Nelson Mesquita", StreetType: "Rua", Indicator: StreetTypeIndicatorYes}, "Rua Nelson Mesquita"},
		{"bare name", Address{Name: "Vinte e Um de Abril", StreetType: "Rua", Indicator: StreetTypeIndicatorNo}, "Vinte e Um de Abril"},
		{"unset indicator", Address{Name: "Beco do Mota", StreetType: "Beco", Indicator: StreetTypeIndicatorUnset}, "Beco do Mota"},
	}
	for _, tt := range tests {
		if got := tt.addr.DisplayName(); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestParseStreetTypeIndicator(t *testing.T) {
	tests := []struct {
		input string
		want  StreetTypeIndicator
	}{
		{"S", StreetTypeIndicatorYes},
		{"N", StreetTypeIndicatorNo},
		{"s", StreetTypeIndicatorYes},
		{" n ", StreetTypeIndicatorNo},
	}
	for _, tt := range tests {
		got, err := ParseStreetTypeIndicator(tt.input)
		if err != nil {
			t.Fatalf("ParseStreetTypeIndicator(%q) error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseStreetTypeIndicator(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	_, err := ParseStreetTypeIndicator("X")
	var codeErr *CodeError
	if !errors.As(err, &codeErr) {
		t.Fatalf("got %v, want *CodeError", err)
	}
}

func TestParseAddresses_FieldCountError(t *testing.T) {
	_, err := ParseAddressesString("1@AC@16@47@@Nelson Mesquita@@69918703@Rua@S")
	var fcErr *FieldCountError
	if !errors.As(err, &fcErr) {
		t.Fatalf("got %v, want *FieldCountError", err)
	}
	if fcErr.Expected != 11 || fcErr.Got != 10 {
		t.Errorf("got Expected=%d Got=%d, want 11 and 10", fcErr.Expected, fcErr.Got)
	}
}

func TestParseAddresses_MissingCEP(t *testing.T) {
	_, err := ParseAddressesString("1@AC@16@47@@Nelson Mesquita@@@Rua@S@R Nelson Mesquita")
	var emptyErr *EmptyFieldError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("got %v, want *EmptyFieldError", err)
	}
	if emptyErr.Field != "CEP" {
		t.Errorf("Field = %q, want CEP", emptyErr.Field)
	}
}
