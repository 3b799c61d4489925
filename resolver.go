package stockframe

import (
	"path/filepath"
	"strings"
)

// DefaultDataDir is the directory series files are looked up in when none is configured.
const DefaultDataDir = "data"

// Resolver maps a symbol to the file holding its series.
type Resolver struct {
	Dir string // Base directory, DefaultDataDir if empty.
	Ext string // File extension without the dot, "csv" if empty.
}

// Path returns "<Dir>/<symbol>.<Ext>". The symbol is not validated.
func (r Resolver) Path(symbol string) string {
	return filepath.Join(r.dir(), symbol+"."+r.ext())
}

func (r Resolver) dir() string {
	if r.Dir == "" {
		return DefaultDataDir
	}
	return r.Dir
}

func (r Resolver) ext() string {
	if r.Ext == "" {
		return "csv"
	}
	return strings.TrimPrefix(r.Ext, ".")
}

// SymbolToPath returns the CSV file path of a symbol in dir.
func SymbolToPath(symbol, dir string) string { return Resolver{Dir: dir}.Path(symbol) }
