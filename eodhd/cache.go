package eodhd

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"

	"github.com/etnz/stockframe/date"
)

// dailyCache is an http.RoundTripper keeping successful responses on disk for the current
// day.
type dailyCache struct {
	next http.RoundTripper
	dir  string // os.TempDir() if empty
}

func (c *dailyCache) RoundTrip(req *http.Request) (*http.Response, error) {
	path := c.path(req)
	if resp, err := c.load(path, req); err == nil {
		log.Printf("%v %v%v (cached)", req.Method, req.URL.Host, req.URL.Path)
		return resp, nil
	}

	resp, err := c.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}
	if err := c.store(path, resp); err != nil {
		log.Printf("cannot cache %v%v (ignored): %v", req.URL.Host, req.URL.Path, err)
	}
	return resp, nil
}

// path returns the cache file of a request, the day is part of the key.
func (c *dailyCache) path(req *http.Request) string {
	key := fmt.Sprintf("%s %s %s", date.Today(), req.Method, req.URL)
	dir := c.dir
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, fmt.Sprintf("eodhd-%x", sha1.Sum([]byte(key))))
}

func (c *dailyCache) load(path string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
}

// store dumps the response to path. The body is read and replaced, so resp stays usable.
func (c *dailyCache) store(path string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(path, content, 0644)
}

// NewDailyCachingClient returns an http.Client caching responses on disk for the day.
// Cache files are written to dir, or the system temporary directory if dir is empty.
func NewDailyCachingClient(dir string) *http.Client {
	return &http.Client{Transport: &dailyCache{next: http.DefaultTransport, dir: dir}}
}

// get returns the body of a successful GET on addr.
func get(ctx context.Context, client *http.Client, addr string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %v%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
