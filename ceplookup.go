package edne

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// CEPKind tags which record kind produced a lookup entry.
type CEPKind uint8

const (
	// CEPUncodedLocality is a locality's general CEP.
	CEPUncodedLocality CEPKind = iota + 1
	// CEPStreet is a street-level address CEP.
	CEPStreet
	// CEPBigUser is a big user's dedicated CEP.
	CEPBigUser
	// CEPOperationalUnit is a post office or distribution center CEP.
	CEPOperationalUnit
	// CEPCPC is a community postal box CEP.
	CEPCPC
)

func (k CEPKind) String() string {
	switch k {
	case CEPUncodedLocality:
		return "uncoded locality"
	case CEPStreet:
		return "street"
	case CEPBigUser:
		return "big user"
	case CEPOperationalUnit:
		return "operational unit"
	case CEPCPC:
		return "CPC"
	}
	return "unknown"
}

// CEPInfo is the denormalized, display-ready address summary for one
// CEP.
type CEPInfo struct {
	CEP          string
	UF           UF
	Locality     string
	Neighborhood string // empty when the entry has no neighborhood
	Address      string // empty for entries without street-level addressing
	Complement   string // qualifier text; the owning entity's name for big users, units and CPCs
	Kind         CEPKind
}

// CEPLookup maps CEPs to address summaries. It is read-only once built
// and safe for concurrent use.
type CEPLookup struct {
	entries map[string]CEPInfo
}

// Lookup returns the entry for a CEP.
func (l *CEPLookup) Lookup(cep string) (CEPInfo, bool) {
	info, ok := l.entries[cep]
	return info, ok
}

// Len returns the number of indexed CEPs.
func (l *CEPLookup) Len() int {
	return len(l.entries)
}

// ByUF returns every entry for a federative unit, ordered by CEP.
func (l *CEPLookup) ByUF(uf UF) []CEPInfo {
	var out []CEPInfo
	for _, info := range l.entries {
		if info.UF == uf {
			out = append(out, info)
		}
	}
	sortByCEP(out)
	return out
}

// ByLocality returns every entry whose locality name matches exactly,
// ordered by CEP.
func (l *CEPLookup) ByLocality(name string) []CEPInfo {
	var out []CEPInfo
	for _, info := range l.entries {
		if info.Locality == name {
			out = append(out, info)
		}
	}
	sortByCEP(out)
	return out
}

// maxFuzzyDistance caps SearchOptions.FuzzyDistance so a careless
// caller cannot turn the scan into an everything-matches pass.
const maxFuzzyDistance = 3

// SearchOptions configures SearchLocality behavior.
type SearchOptions struct {
	// FuzzyDistance is the maximum Levenshtein edit distance for a
	// locality name to match; 0 means exact case-insensitive matching.
	FuzzyDistance int
}

// SearchLocality returns entries whose locality name matches the query
// case-insensitively, ordered by CEP. With a positive FuzzyDistance,
// names within that edit distance also match.
func (l *CEPLookup) SearchLocality(name string, opts ...SearchOptions) []CEPInfo {
	var options SearchOptions
	if len(opts) > 0 {
		options = opts[0]
	}
	if options.FuzzyDistance > maxFuzzyDistance {
		options.FuzzyDistance = maxFuzzyDistance
	}

	var out []CEPInfo
	for _, info := range l.entries {
		if matchLocalityName(name, info.Locality, options.FuzzyDistance) {
			out = append(out, info)
		}
	}
	sortByCEP(out)
	return out
}

// matchLocalityName compares two locality names with optional edit
// distance tolerance.
func matchLocalityName(query, candidate string, maxDist int) bool {
	if maxDist == 0 {
		return strings.EqualFold(query, candidate)
	}
	dist := levenshtein.ComputeDistance(
		strings.ToLower(query),
		strings.ToLower(candidate),
	)
	return dist <= maxDist
}

func sortByCEP(infos []CEPInfo) {
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].CEP < infos[j].CEP
	})
}

// Builder accumulates entity collections and merges them into a
// CEPLookup. Collections may be added in any order and in multiple
// batches (e.g. per-UF address files); only Build is order-sensitive.
type Builder struct {
	localities       map[LocalityID]Locality
	neighborhoods    map[NeighborhoodID]Neighborhood
	addresses        map[AddressID]Address
	bigUsers         map[BigUserID]BigUser
	operationalUnits map[OperationalUnitID]OperationalUnit
	cpcs             map[CPCID]CPC
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		localities:       make(map[LocalityID]Locality),
		neighborhoods:    make(map[NeighborhoodID]Neighborhood),
		addresses:        make(map[AddressID]Address),
		bigUsers:         make(map[BigUserID]BigUser),
		operationalUnits: make(map[OperationalUnitID]OperationalUnit),
		cpcs:             make(map[CPCID]CPC),
	}
}

// AddLocalities accumulates a locality collection.
func (b *Builder) AddLocalities(ls *Localities) {
	for id, l := range ls.All() {
		b.localities[id] = l
	}
}

// AddNeighborhoods accumulates a neighborhood collection.
func (b *Builder) AddNeighborhoods(ns *Neighborhoods) {
	for id, n := range ns.All() {
		b.neighborhoods[id] = n
	}
}

// AddAddresses accumulates an address collection.
func (b *Builder) AddAddresses(as *Addresses) {
	for id, a := range as.All() {
		b.addresses[id] = a
	}
}

// AddBigUsers accumulates a big user collection.
func (b *Builder) AddBigUsers(us *BigUsers) {
	for id, u := range us.All() {
		b.bigUsers[id] = u
	}
}

// AddOperationalUnits accumulates an operational unit collection.
func (b *Builder) AddOperationalUnits(us *OperationalUnits) {
	for id, u := range us.All() {
		b.operationalUnits[id] = u
	}
}

// AddCPCs accumulates a CPC collection.
func (b *Builder) AddCPCs(cs *CPCs) {
	for id, c := range cs.All() {
		b.cpcs[id] = c
	}
}

// Stats reports how many records of each kind the builder holds.
type Stats struct {
	Localities       int
	Neighborhoods    int
	Addresses        int
	BigUsers         int
	OperationalUnits int
	CPCs             int
}

// Stats returns the builder's accumulated record counts.
func (b *Builder) Stats() Stats {
	return Stats{
		Localities:       len(b.localities),
		Neighborhoods:    len(b.neighborhoods),
		Addresses:        len(b.addresses),
		BigUsers:         len(b.bigUsers),
		OperationalUnits: len(b.operationalUnits),
		CPCs:             len(b.cpcs),
	}
}

// Build merges the accumulated collections into a CEPLookup following
// the Correios precedence order: uncoded localities, then streets,
// then big users, then operational units, then CPCs. A later stage's
// entry overwrites an earlier stage's entry for the same CEP, so the
// most specific source wins. Within one stage, when two records of the
// same kind share a CEP, which one survives is unspecified.
//
// Build consumes the builder; it must not be reused afterwards.
func (b *Builder) Build() *CEPLookup {
	lookup := &CEPLookup{
		entries: make(map[string]CEPInfo,
			len(b.localities)+len(b.addresses)+len(b.bigUsers)+
				len(b.operationalUnits)+len(b.cpcs)),
	}

	// Stage 1: uncoded localities (general CEPs). A subordinate
	// locality borrows its parent's name for the neighborhood field;
	// the subordination chain resolves one level only.
	for _, loc := range b.localities {
		if loc.CEP == "" {
			continue
		}
		var neighborhood string
		if loc.SubordinateTo != 0 {
			if parent, ok := b.localities[loc.SubordinateTo]; ok {
				neighborhood = parent.Name
			}
		}
		lookup.entries[loc.CEP] = CEPInfo{
			CEP:          loc.CEP,
			UF:           loc.UF,
			Locality:     loc.Name,
			Neighborhood: neighborhood,
			Kind:         CEPUncodedLocality,
		}
	}

	// Stage 2: streets. Unresolved foreign keys are tolerated: the
	// locality name falls back to empty, the neighborhood stays unset.
	for _, addr := range b.addresses {
		var locality, neighborhood string
		if loc, ok := b.localities[addr.LocalityID]; ok {
			locality = loc.Name
		}
		if n, ok := b.neighborhoods[addr.NeighborhoodStartID]; ok {
			neighborhood = n.Name
		}
		lookup.entries[addr.CEP] = CEPInfo{
			CEP:          addr.CEP,
			UF:           addr.UF,
			Locality:     locality,
			Neighborhood: neighborhood,
			Address:      addr.DisplayName(),
			Complement:   addr.Complement,
			Kind:         CEPStreet,
		}
	}

	// Stage 3: big users. The entity's own name rides in the
	// complement field; its address text is the display address.
	for _, user := range b.bigUsers {
		var locality, neighborhood string
		if loc, ok := b.localities[user.LocalityID]; ok {
			locality = loc.Name
		}
		if n, ok := b.neighborhoods[user.NeighborhoodID]; ok {
			neighborhood = n.Name
		}
		lookup.entries[user.CEP] = CEPInfo{
			CEP:          user.CEP,
			UF:           user.UF,
			Locality:     locality,
			Neighborhood: neighborhood,
			Address:      user.AddressText,
			Complement:   user.Name,
			Kind:         CEPBigUser,
		}
	}

	// Stage 4: operational units, same shape as stage 3.
	for _, unit := range b.operationalUnits {
		var locality, neighborhood string
		if loc, ok := b.localities[unit.LocalityID]; ok {
			locality = loc.Name
		}
		if n, ok := b.neighborhoods[unit.NeighborhoodID]; ok {
			neighborhood = n.Name
		}
		lookup.entries[unit.CEP] = CEPInfo{
			CEP:          unit.CEP,
			UF:           unit.UF,
			Locality:     locality,
			Neighborhood: neighborhood,
			Address:      unit.AddressText,
			Complement:   unit.Name,
			Kind:         CEPOperationalUnit,
		}
	}

	// Stage 5: CPCs, no neighborhood concept.
	for _, cpc := range b.cpcs {
		var locality string
		if loc, ok := b.localities[cpc.LocalityID]; ok {
			locality = loc.Name
		}
		lookup.entries[cpc.CEP] = CEPInfo{
			CEP:        cpc.CEP,
			UF:         cpc.UF,
			Locality:   locality,
			Address:    cpc.AddressText,
			Complement: cpc.Name,
			Kind:       CEPCPC,
		}
	}

	// Consumed: drop the accumulated collections.
	b.localities = nil
	b.neighborhoods = nil
	b.addresses = nil
	b.bigUsers = nil
	b.operationalUnits = nil
	b.cpcs = nil

	return lookup
}
