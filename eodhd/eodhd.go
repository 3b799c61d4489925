// Package eodhd downloads end-of-day prices from eodhd.com and stores them as price files
// the stockframe loader can read.
package eodhd

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/etnz/stockframe"
	"github.com/etnz/stockframe/date"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the root of the EODHD API.
const DefaultBaseURL = "https://eodhd.com/api"

// ErrNoAPIKey is returned when fetching without an API key.
var ErrNoAPIKey = errors.New("EODHD API key is not set. Use -eodhd-api-key flag or EODHD_API_KEY environment variable")

// Client fetches prices from EODHD.
type Client struct {
	APIKey   string
	BaseURL  string       // DefaultBaseURL if empty.
	Exchange string       // Exchange suffix appended to symbols without one, "US" if empty.
	HTTP     *http.Client // A daily caching client if nil.
}

// Ticker returns the EODHD ticker of a symbol, typically "SYMBOL.EXCHANGECODE".
func (c *Client) Ticker(symbol string) string {
	if strings.Contains(symbol, ".") {
		return symbol
	}
	exchange := c.Exchange
	if exchange == "" {
		exchange = "US"
	}
	return symbol + "." + exchange
}

// Fetch returns the adjusted close series of a symbol over r.
func (c *Client) Fetch(ctx context.Context, symbol string, r date.Range) (*stockframe.Series, error) {
	if c.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	client := c.HTTP
	if client == nil {
		client = NewDailyCachingClient("")
	}

	// https://eodhd.com/api/eod/NVD.F?api_token=demo&fmt=json
	// [
	//
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	  },
	//
	// bounds are included in the response, and time is limited to 1 year with free subscription.
	query := url.Values{}
	query.Set("fmt", "json")
	query.Set("api_token", c.APIKey)
	query.Set("from", r.From.String())
	query.Set("to", r.To.String())
	addr := fmt.Sprintf("%s/eod/%s?%s", base, url.PathEscape(c.Ticker(symbol)), query.Encode())

	body, err := get(ctx, client, addr)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch %s: %w", symbol, err)
	}
	s, err := stockframe.ReadJSON(symbol, bytes.NewReader(body), stockframe.JSONOptions{})
	if err != nil {
		return nil, fmt.Errorf("cannot read %s prices: %w", symbol, err)
	}
	return s.Rename(stockframe.DefaultValueColumn), nil
}

// WriteCSV writes a series as a "Date,<name>" price file, oldest first.
// Missing values are written as "nan".
func WriteCSV(w io.Writer, s *stockframe.Series) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{stockframe.DefaultDateColumn, s.Name}); err != nil {
		return err
	}
	for on, v := range s.Values() {
		cell := "nan"
		if x, ok := v.Get(); ok {
			cell = decimal.NewFromFloat(x).String()
		}
		if err := cw.Write([]string{on.String(), cell}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Save fetches a symbol and writes it to the path the resolver gives.
func (c *Client) Save(ctx context.Context, resolver stockframe.Resolver, symbol string, r date.Range) (path string, n int, err error) {
	s, err := c.Fetch(ctx, symbol, r)
	if err != nil {
		return "", 0, err
	}
	path = resolver.Path(symbol)
	f, err := os.Create(path)
	if err != nil {
		return "", 0, err
	}
	if err := WriteCSV(f, s); err != nil {
		f.Close()
		return "", 0, fmt.Errorf("cannot write %s: %w", path, err)
	}
	return path, s.Len(), f.Close()
}
