package edne

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
)

// File names used by the Correios eDNE distribution under <dir>/log/.
const (
	LocalityFile        = "LOG_LOCALIDADE.TXT"
	NeighborhoodFile    = "LOG_BAIRRO.TXT"
	BigUserFile         = "LOG_GRANDE_USUARIO.TXT"
	OperationalUnitFile = "LOG_UNID_OPER.TXT"
	CPCFile             = "LOG_CPC.TXT"
)

// AddressFile returns the per-UF street file name, e.g.
// "LOG_LOGRADOURO_SP.TXT".
func AddressFile(uf UF) string {
	return fmt.Sprintf("LOG_LOGRADOURO_%s.TXT", uf)
}

// LoadDirectory parses every eDNE file found under dir (expected
// layout: dir/log/LOG_*.TXT, with one street file per UF) and returns
// a Builder holding the accumulated collections. Missing files are
// skipped, so a partial install covering a subset of UFs loads fine.
// Files are parsed concurrently; the first parse or read failure
// aborts the load with the file path wrapped into the error.
func LoadDirectory(dir string) (*Builder, error) {
	b := NewBuilder()
	logDir := filepath.Join(dir, "log")

	var mu sync.Mutex
	var g errgroup.Group

	g.Go(func() error {
		ls, err := loadFile(filepath.Join(logDir, LocalityFile), ParseLocalities)
		if err != nil || ls == nil {
			return err
		}
		mu.Lock()
		defer mu.Unlock()
		b.AddLocalities(ls)
		return nil
	})

	g.Go(func() error {
		ns, err := loadFile(filepath.Join(logDir, NeighborhoodFile), ParseNeighborhoods)
		if err != nil || ns == nil {
			return err
		}
		mu.Lock()
		defer mu.Unlock()
		b.AddNeighborhoods(ns)
		return nil
	})

	for _, uf := range AllUFs() {
		path := filepath.Join(logDir, AddressFile(uf))
		g.Go(func() error {
			as, err := loadFile(path, ParseAddresses)
			if err != nil || as == nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			b.AddAddresses(as)
			return nil
		})
	}

	g.Go(func() error {
		us, err := loadFile(filepath.Join(logDir, BigUserFile), ParseBigUsers)
		if err != nil || us == nil {
			return err
		}
		mu.Lock()
		defer mu.Unlock()
		b.AddBigUsers(us)
		return nil
	})

	g.Go(func() error {
		us, err := loadFile(filepath.Join(logDir, OperationalUnitFile), ParseOperationalUnits)
		if err != nil || us == nil {
			return err
		}
		mu.Lock()
		defer mu.Unlock()
		b.AddOperationalUnits(us)
		return nil
	})

	g.Go(func() error {
		cs, err := loadFile(filepath.Join(logDir, CPCFile), ParseCPCs)
		if err != nil || cs == nil {
			return err
		}
		mu.Lock()
		defer mu.Unlock()
		b.AddCPCs(cs)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return b, nil
}

// loadFile reads and parses one source file. A missing file yields
// (nil, nil).
func loadFile[C any](path string, parse func([]byte) (*C, error)) (*C, error) {
	bts, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	col, err := parse(bts)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return col, nil
}
