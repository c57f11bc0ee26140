package pipeview

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/ferama/rospo-pipes/pkg/conf"
	"github.com/ferama/rospo-pipes/pkg/logger"
	"github.com/ferama/rospo-pipes/pkg/utils"
)

// PipesPath is the web api collection resource listing all the pipes
const PipesPath = "/api/pipes/"

// the web api never sends big payloads: cap what we read
const maxBodySize = 8 << 20

var fetchLog = logger.NewLogger("[FETCH] ", logger.Blue)

// Doer sends an http request. *http.Client satisfies it
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// PipeFetcher retrieves the authoritative pipes list. ok is false when
// the api answered with no data at all
type PipeFetcher interface {
	FetchAll(ctx context.Context) (records []Record, ok bool, err error)
}

// TransportError is returned when the pipes list cannot be retrieved
type TransportError struct {
	// one of "request", "status", "decode"
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Op == "status" {
		return fmt.Sprintf("GET %s: unexpected status %d: %s", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("GET %s: %s: %s", e.URL, e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Fetcher reads the pipes list from the rospo web api
type Fetcher struct {
	url    string
	client Doer
	log    *log.Logger
}

// NewFetcher builds a Fetcher. If client is nil an http.Client honouring
// the conf timeout is used
func NewFetcher(c *conf.WebClientConf, client Doer) (*Fetcher, error) {
	if c == nil {
		c = conf.DefaultWebClientConf()
	}
	base, err := c.GetBaseURL()
	if err != nil {
		return nil, err
	}
	if client == nil {
		client = &http.Client{Timeout: c.Timeout}
	}
	return &Fetcher{
		url:    utils.JoinURLPath(base, PipesPath),
		client: client,
		log:    fetchLog,
	}, nil
}

// URL returns the collection resource url
func (f *Fetcher) URL() string {
	return f.url
}

// FetchAll issues a GET against the pipes collection. A null or empty
// body is not an error: it is reported with ok == false
func (f *Fetcher) FetchAll(ctx context.Context) ([]Record, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, false, &TransportError{Op: "request", URL: f.url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	f.log.Printf("GET %s", f.url)
	res, err := f.client.Do(req)
	if err != nil {
		return nil, false, &TransportError{Op: "request", URL: f.url, Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		return nil, false, &TransportError{Op: "request", URL: f.url, StatusCode: res.StatusCode, Err: err}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, false, &TransportError{
			Op:         "status",
			URL:        f.url,
			StatusCode: res.StatusCode,
			Err:        errors.New(apiErrorMessage(body, res.Status)),
		}
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		f.log.Println("no data")
		return nil, false, nil
	}

	var records []Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, false, &TransportError{Op: "decode", URL: f.url, StatusCode: res.StatusCode, Err: err}
	}
	if records == nil {
		records = []Record{}
	}
	f.log.Printf("got %d pipes", len(records))
	return records, true, nil
}

// the web api reports failures as {"error": "..."}
func apiErrorMessage(body []byte, fallback string) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return fallback
}
