package edne

import (
	"strconv"
	"strings"
)

// Entity identifiers are opaque positive 32-bit values; the zero value
// marks an absent optional reference and is rejected by construction.
type (
	// LocalityID identifies a locality (LOC_NU).
	LocalityID uint32
	// NeighborhoodID identifies a neighborhood (BAI_NU).
	NeighborhoodID uint32
	// AddressID identifies a street-level address (LOG_NU). Street
	// references on big users and operational units use the same
	// identifier space.
	AddressID uint32
	// BigUserID identifies a big user (GRU_NU).
	BigUserID uint32
	// OperationalUnitID identifies an operational unit (UOP_NU).
	OperationalUnitID uint32
	// CPCID identifies a community postal box (CPC_NU).
	CPCID uint32
)

// parseID trims and parses an identifier's decimal text, then rejects
// the zero value.
func parseID(s, kind string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, &IDError{Kind: kind, Value: s}
	}
	if v == 0 {
		return 0, &IDError{Kind: kind, Zero: true}
	}
	return uint32(v), nil
}

func newID(v uint32, kind string) (uint32, error) {
	if v == 0 {
		return 0, &IDError{Kind: kind, Zero: true}
	}
	return v, nil
}

func idString(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}

// NewLocalityID validates a raw locality identifier.
func NewLocalityID(v uint32) (LocalityID, error) {
	u, err := newID(v, "locality")
	return LocalityID(u), err
}

// ParseLocalityID parses a locality identifier from decimal text.
func ParseLocalityID(s string) (LocalityID, error) {
	u, err := parseID(s, "locality")
	return LocalityID(u), err
}

func (id LocalityID) String() string { return idString(uint32(id)) }

// NewNeighborhoodID validates a raw neighborhood identifier.
func NewNeighborhoodID(v uint32) (NeighborhoodID, error) {
	u, err := newID(v, "neighborhood")
	return NeighborhoodID(u), err
}

// ParseNeighborhoodID parses a neighborhood identifier from decimal
// text.
func ParseNeighborhoodID(s string) (NeighborhoodID, error) {
	u, err := parseID(s, "neighborhood")
	return NeighborhoodID(u), err
}

func (id NeighborhoodID) String() string { return idString(uint32(id)) }

// NewAddressID validates a raw address identifier.
func NewAddressID(v uint32) (AddressID, error) {
	u, err := newID(v, "address")
	return AddressID(u), err
}

// ParseAddressID parses an address identifier from decimal text.
func ParseAddressID(s string) (AddressID, error) {
	u, err := parseID(s, "address")
	return AddressID(u), err
}

func (id AddressID) String() string { return idString(uint32(id)) }

// NewBigUserID validates a raw big user identifier.
func NewBigUserID(v uint32) (BigUserID, error) {
	u, err := newID(v, "big user")
	return BigUserID(u), err
}

// ParseBigUserID parses a big user identifier from decimal text.
func ParseBigUserID(s string) (BigUserID, error) {
	u, err := parseID(s, "big user")
	return BigUserID(u), err
}

func (id BigUserID) String() string { return idString(uint32(id)) }

// NewOperationalUnitID validates a raw operational unit identifier.
func NewOperationalUnitID(v uint32) (OperationalUnitID, error) {
	u, err := newID(v, "operational unit")
	return OperationalUnitID(u), err
}

// ParseOperationalUnitID parses an operational unit identifier from
// decimal text.
func ParseOperationalUnitID(s string) (OperationalUnitID, error) {
	u, err := parseID(s, "operational unit")
	return OperationalUnitID(u), err
}

func (id OperationalUnitID) String() string { return idString(uint32(id)) }

// NewCPCID validates a raw CPC identifier.
func NewCPCID(v uint32) (CPCID, error) {
	u, err := newID(v, "CPC")
	return CPCID(u), err
}

// ParseCPCID parses a CPC identifier from decimal text.
func ParseCPCID(s string) (CPCID, error) {
	u, err := parseID(s, "CPC")
	return CPCID(u), err
}

func (id CPCID) String() string { return idString(uint32(id)) }
