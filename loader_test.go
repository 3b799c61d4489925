package stockframe

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/stockframe/date"
)

func TestResolverPath(t *testing.T) {
	testCases := []struct {
		name     string
		resolver Resolver
		symbol   string
		want     string
	}{
		{"defaults", Resolver{}, "SPY", filepath.Join("data", "SPY.csv")},
		{"custom dir", Resolver{Dir: "prices"}, "IBM", filepath.Join("prices", "IBM.csv")},
		{"json with dot", Resolver{Dir: "/tmp", Ext: ".json"}, "GLD", filepath.Join("/tmp", "GLD.json")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.resolver.Path(tc.symbol); got != tc.want {
				t.Errorf("Path(%q) = %q want %q", tc.symbol, got, tc.want)
			}
		})
	}
	if got, want := SymbolToPath("AAPL", "data"), filepath.Join("data", "AAPL.csv"); got != want {
		t.Errorf("SymbolToPath() = %q want %q", got, want)
	}
}

func TestReadCSV(t *testing.T) {
	content := `Date,Open,High,Low,Close,Adj Close,Volume
2010-01-26,114.01,114.90,112.86,113.25,99.74,273339200
2010-01-25,113.30,114.14,112.84,113.54,100.00,187860100
2010-01-22,114.49,115.13,111.56,111.69,nan,344560900
`
	s, err := ReadCSV("SPY", strings.NewReader(content), CSVOptions{})
	if err != nil {
		t.Fatalf("ReadCSV() unexpected error = %v", err)
	}
	if s.ID != "SPY" || s.Name != "Adj Close" {
		t.Errorf("ReadCSV() = %q/%q want SPY/Adj Close", s.ID, s.Name)
	}
	days := s.Dates()
	if len(days) != 3 || days[0] != date.New(2010, 1, 22) || days[2] != date.New(2010, 1, 26) {
		t.Errorf("ReadCSV() dates = %v, want 3 sorted dates", days)
	}
	if !s.Get(date.New(2010, 1, 22)).IsMissing() {
		t.Errorf("ReadCSV() 'nan' must be read as missing")
	}
	if v, ok := s.Get(date.New(2010, 1, 25)).Get(); !ok || v != 100 {
		t.Errorf("ReadCSV() 2010-01-25 = %v, %v want 100, true", v, ok)
	}

	s, err = ReadCSV("SPY", strings.NewReader(content), CSVOptions{ValueColumn: "Close"})
	if err != nil {
		t.Fatalf("ReadCSV(Close) unexpected error = %v", err)
	}
	if v, _ := s.Get(date.New(2010, 1, 22)).Get(); v != 111.69 {
		t.Errorf("ReadCSV(Close) 2010-01-22 = %v want 111.69", v)
	}
}

func TestReadCSVErrors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		opts    CSVOptions
		column  string
		line    int
	}{
		{"missing value column", "Date,Close\n2010-01-04,1\n", CSVOptions{}, "Adj Close", 1},
		{"missing date column", "Day,Adj Close\n2010-01-04,1\n", CSVOptions{}, "Date", 1},
		{"empty", "", CSVOptions{}, "Date", 1},
		{"bad number", "Date,Adj Close\n2010-01-04,1\n2010-01-05,one\n", CSVOptions{}, "Adj Close", 3},
		{"bad date", "Date,Adj Close\n01/04/2010,1\n", CSVOptions{}, "Date", 2},
		{"short record", "Date,Close,Adj Close\n2010-01-04,1\n", CSVOptions{}, "Adj Close", 2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadCSV("X", strings.NewReader(tc.content), tc.opts)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("ReadCSV() error = %v want a *ParseError", err)
			}
			if perr.Column != tc.column || perr.Line != tc.line {
				t.Errorf("ReadCSV() error at %d/%q want %d/%q: %v", perr.Line, perr.Column, tc.line, tc.column, err)
			}
		})
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV("NOPE", filepath.Join(t.TempDir(), "NOPE.csv"), CSVOptions{})
	var rerr *ReadError
	if !errors.As(err, &rerr) {
		t.Fatalf("LoadCSV() error = %v want a *ReadError", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadCSV() error = %v want fs.ErrNotExist", err)
	}
}

func TestReadJSON(t *testing.T) {
	content := `[
	{"date": "2024-02-13", "close": 668.445, "adjusted_close": 67.705},
	{"date": "2024-02-12", "close": 680.1, "adjusted_close": null},
	{"date": "2024-02-14", "close": 690.2, "adjusted_close": "69.1"}
]`
	s, err := ReadJSON("NVD", strings.NewReader(content), JSONOptions{})
	if err != nil {
		t.Fatalf("ReadJSON() unexpected error = %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("ReadJSON() Len() = %d want 3", s.Len())
	}
	if !s.Get(date.New(2024, 2, 12)).IsMissing() {
		t.Errorf("ReadJSON() null must be read as missing")
	}
	if v, _ := s.Get(date.New(2024, 2, 14)).Get(); v != 69.1 {
		t.Errorf("ReadJSON() quoted number = %v want 69.1", v)
	}

	s, err = ReadJSON("NVD", strings.NewReader(content), JSONOptions{ValuePath: "$.close"})
	if err != nil {
		t.Fatalf("ReadJSON(close) unexpected error = %v", err)
	}
	if v, _ := s.Get(date.New(2024, 2, 13)).Get(); v != 668.445 {
		t.Errorf("ReadJSON(close) = %v want 668.445", v)
	}

	_, err = ReadJSON("NVD", strings.NewReader(`{"date": "2024-02-13"}`), JSONOptions{ItemsPath: "$.date"})
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Errorf("ReadJSON(non list) error = %v want a *ParseError", err)
	}

	_, err = ReadJSON("NVD", strings.NewReader(content), JSONOptions{ValuePath: "$.adj"})
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("ReadJSON(unknown value) error = %v want ErrMissingColumn", err)
	}
}

func TestFileLoaderJSON(t *testing.T) {
	dir := t.TempDir()
	content := `[{"date": "2010-01-04", "adjusted_close": 1.5}]`
	if err := os.WriteFile(filepath.Join(dir, "EURUSD.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	l := FileLoader{Resolver: Resolver{Dir: dir, Ext: "json"}}
	s, err := l.Load("EURUSD")
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}
	if v, _ := s.Get(date.New(2010, 1, 4)).Get(); v != 1.5 {
		t.Errorf("Load() = %v want 1.5", v)
	}
}
