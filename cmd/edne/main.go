// Command edne parses eDNE source files and answers CEP queries.
//
// Usage:
//
//	edne <type> <file>          parse one file and print a summary
//	edne build-index [dir]      build the CEP index and print statistics
//	edne lookup [dir] <cep>     resolve one CEP
//
// Types: locality, neighborhood, address, biguser, opunit, cpc.
// The data directory defaults to EDNE_DATA_DIR (a .env file is loaded
// when present) and must contain the Correios log/ layout.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/brdata-dev/edne"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "build-index":
		dir := dataDir(args[1:])
		lookup := buildIndex(sugar, dir)
		printIndexStats(lookup)
	case "lookup":
		rest := args[1:]
		if len(rest) == 0 {
			fmt.Fprintln(os.Stderr, "lookup requires a CEP")
			printUsage()
			os.Exit(1)
		}
		cep := rest[len(rest)-1]
		dir := dataDir(rest[:len(rest)-1])
		lookup := buildIndex(sugar, dir)
		printLookup(lookup, cep)
	default:
		if len(args) != 2 {
			printUsage()
			os.Exit(1)
		}
		parseOne(sugar, args[0], args[1])
	}
}

func printUsage() {
	prog := os.Args[0]
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [args]\n\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintf(os.Stderr, "  %s <type> <path-to-file>    parse a single file\n", prog)
	fmt.Fprintf(os.Stderr, "  %s build-index [data-dir]   build the CEP lookup index\n", prog)
	fmt.Fprintf(os.Stderr, "  %s lookup [data-dir] <cep>  resolve a CEP\n\n", prog)
	fmt.Fprintln(os.Stderr, "Types: locality, neighborhood, address, biguser, opunit, cpc")
	fmt.Fprintln(os.Stderr, "The data directory falls back to EDNE_DATA_DIR.")
}

// dataDir picks the data directory from the arguments or the
// environment.
func dataDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if dir := os.Getenv("EDNE_DATA_DIR"); dir != "" {
		return dir
	}
	fmt.Fprintln(os.Stderr, "no data directory given and EDNE_DATA_DIR is unset")
	os.Exit(1)
	return ""
}

func buildIndex(sugar *zap.SugaredLogger, dir string) *edne.CEPLookup {
	sugar.Infow("loading eDNE data", "dir", dir)

	builder, err := edne.LoadDirectory(dir)
	if err != nil {
		sugar.Fatalf("loading data: %v", err)
	}

	stats := builder.Stats()
	sugar.Infow("data loaded",
		"localities", stats.Localities,
		"neighborhoods", stats.Neighborhoods,
		"addresses", stats.Addresses,
		"big_users", stats.BigUsers,
		"operational_units", stats.OperationalUnits,
		"cpcs", stats.CPCs,
	)

	lookup := builder.Build()
	sugar.Infow("index built", "ceps", lookup.Len())
	return lookup
}

func printIndexStats(lookup *edne.CEPLookup) {
	fmt.Printf("Total CEPs indexed: %d\n\n", lookup.Len())
	fmt.Println("CEPs by UF:")
	for _, uf := range edne.AllUFs() {
		if n := len(lookup.ByUF(uf)); n > 0 {
			fmt.Printf("  %s: %8d\n", uf, n)
		}
	}
}

func printLookup(lookup *edne.CEPLookup, cep string) {
	info, ok := lookup.Lookup(cep)
	if !ok {
		fmt.Printf("CEP not found: %s\n", cep)
		fmt.Println("The CEP may not exist or the data files may be incomplete.")
		os.Exit(1)
	}

	fmt.Printf("CEP:          %s\n", info.CEP)
	fmt.Printf("UF:           %s (%s)\n", info.UF, info.UF.Name())
	fmt.Printf("Locality:     %s\n", info.Locality)
	if info.Neighborhood != "" {
		fmt.Printf("Neighborhood: %s\n", info.Neighborhood)
	}
	if info.Address != "" {
		fmt.Printf("Address:      %s\n", info.Address)
	}
	if info.Complement != "" {
		fmt.Printf("Complement:   %s\n", info.Complement)
	}
	fmt.Printf("Type:         %s\n", kindLabel(info.Kind))
}

func kindLabel(kind edne.CEPKind) string {
	switch kind {
	case edne.CEPUncodedLocality:
		return "Uncoded Locality (General CEP)"
	case edne.CEPStreet:
		return "Street/Address"
	case edne.CEPBigUser:
		return "Big User"
	case edne.CEPOperationalUnit:
		return "Operational Unit"
	case edne.CEPCPC:
		return "Community Postal Box (CPC)"
	}
	return "Unknown"
}

// parseOne parses a single source file and prints a short summary.
func parseOne(sugar *zap.SugaredLogger, kind, path string) {
	bts, err := os.ReadFile(path)
	if err != nil {
		sugar.Fatalf("reading %s: %v", path, err)
	}

	var count int
	switch kind {
	case "locality", "localidade":
		col, err := edne.ParseLocalities(bts)
		exitOnParseError(sugar, path, err)
		count = col.Len()
	case "neighborhood", "bairro":
		col, err := edne.ParseNeighborhoods(bts)
		exitOnParseError(sugar, path, err)
		count = col.Len()
	case "address", "logradouro", "street":
		col, err := edne.ParseAddresses(bts)
		exitOnParseError(sugar, path, err)
		count = col.Len()
	case "biguser", "big-user", "grande-usuario":
		col, err := edne.ParseBigUsers(bts)
		exitOnParseError(sugar, path, err)
		count = col.Len()
	case "opunit", "operational-unit", "unidade-operacional":
		col, err := edne.ParseOperationalUnits(bts)
		exitOnParseError(sugar, path, err)
		count = col.Len()
	case "cpc":
		col, err := edne.ParseCPCs(bts)
		exitOnParseError(sugar, path, err)
		count = col.Len()
	default:
		fmt.Fprintf(os.Stderr, "unknown type '%s'\n\n", kind)
		printUsage()
		os.Exit(1)
	}

	fmt.Printf("Parsed %d %s records from %s\n", count, kind, path)
}

func exitOnParseError(sugar *zap.SugaredLogger, path string, err error) {
	if err != nil {
		sugar.Fatalf("parsing %s: %v", path, err)
	}
}
