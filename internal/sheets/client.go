package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// Snapshot is one full fetch of a sheet, header rows included. Rows are not
// required to be rectangular; missing trailing cells read as empty.
type Snapshot struct {
	Sheet string
	Data  [][]string
}

type UploadRequest struct {
	Base64Data string
	FileName   string
	MimeType   string
	FolderID   string
}

//go:generate mockgen -source=client.go -destination=mock/client_mock.go -package=mock
type Client interface {
	Fetch(ctx context.Context, sheet string) (Snapshot, error)
	Insert(ctx context.Context, sheet string, row []string) error
	// UpdateRow overwrites an entire row. rowIndex is 1-based, as the store
	// counts it.
	UpdateRow(ctx context.Context, sheet string, rowIndex int, row []string) error
	// UpdateCell overwrites a single cell. Both indexes are 1-based.
	UpdateCell(ctx context.Context, sheet string, rowIndex, colIndex int, value string) error
	UploadFile(ctx context.Context, req UploadRequest) (string, error)
}

type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
	// RequestsPerSecond throttles outbound calls; the upstream Apps-Script
	// style endpoint rejects bursts well below normal HTTP expectations.
	RequestsPerSecond float64
	Burst             int
}

type httpClient struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	fetches singleflight.Group
	logger  *zap.Logger
}

func NewClient(cfg ClientConfig, logger ...*zap.Logger) Client {
	l := zap.L().Named("sheets.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("sheets.client")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 10
	}

	return &httpClient{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		logger:  l,
	}
}

// serviceReply is the wire envelope of every store response.
type serviceReply struct {
	Success bool            `json:"success"`
	Data    [][]json.RawMessage `json:"data,omitempty"`
	FileURL string          `json:"fileUrl,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func (c *httpClient) Fetch(ctx context.Context, sheet string) (Snapshot, error) {
	// Concurrent fetches of the same sheet collapse into one round-trip.
	v, err, _ := c.fetches.Do(sheet, func() (any, error) {
		return c.fetch(ctx, sheet)
	})
	if err != nil {
		return Snapshot{}, err
	}
	return v.(Snapshot), nil
}

func (c *httpClient) fetch(ctx context.Context, sheet string) (Snapshot, error) {
	q := url.Values{}
	q.Set("sheet", sheet)
	q.Set("action", "fetch")

	reply, err := c.do(ctx, sheet, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Snapshot{}, err
	}

	data := make([][]string, len(reply.Data))
	for i, row := range reply.Data {
		cells := make([]string, len(row))
		for j, raw := range row {
			cells[j] = decodeCell(raw)
		}
		data[i] = cells
	}

	c.logger.Debug("sheet fetched",
		zap.String("sheet", sheet),
		zap.Int("rows", len(data)),
	)
	return Snapshot{Sheet: sheet, Data: data}, nil
}

func (c *httpClient) Insert(ctx context.Context, sheet string, row []string) error {
	rowData, err := json.Marshal(row)
	if err != nil {
		return UpstreamError(sheet, err)
	}

	form := url.Values{}
	form.Set("sheetName", sheet)
	form.Set("action", "insert")
	form.Set("rowData", string(rowData))

	_, err = c.do(ctx, sheet, http.MethodPost, c.baseURL, form)
	if err != nil {
		return err
	}
	c.logger.Debug("row inserted", zap.String("sheet", sheet))
	return nil
}

func (c *httpClient) UpdateRow(ctx context.Context, sheet string, rowIndex int, row []string) error {
	rowData, err := json.Marshal(row)
	if err != nil {
		return UpstreamError(sheet, err)
	}

	form := url.Values{}
	form.Set("sheetName", sheet)
	form.Set("action", "update")
	form.Set("rowIndex", strconv.Itoa(rowIndex))
	form.Set("rowData", string(rowData))

	_, err = c.do(ctx, sheet, http.MethodPost, c.baseURL, form)
	if err != nil {
		return err
	}
	c.logger.Debug("row updated",
		zap.String("sheet", sheet),
		zap.Int("row_index", rowIndex),
	)
	return nil
}

func (c *httpClient) UpdateCell(ctx context.Context, sheet string, rowIndex, colIndex int, value string) error {
	form := url.Values{}
	form.Set("sheetName", sheet)
	form.Set("action", "updateCell")
	form.Set("rowIndex", strconv.Itoa(rowIndex))
	form.Set("columnIndex", strconv.Itoa(colIndex))
	form.Set("value", value)

	_, err := c.do(ctx, sheet, http.MethodPost, c.baseURL, form)
	return err
}

func (c *httpClient) UploadFile(ctx context.Context, req UploadRequest) (string, error) {
	form := url.Values{}
	form.Set("action", "uploadFile")
	form.Set("base64Data", req.Base64Data)
	form.Set("fileName", req.FileName)
	form.Set("mimeType", req.MimeType)
	form.Set("folderId", req.FolderID)

	reply, err := c.do(ctx, "uploadFile", http.MethodPost, c.baseURL, form)
	if err != nil {
		return "", err
	}
	if reply.FileURL == "" {
		return "", UpstreamError("uploadFile", errors.New("upload succeeded without a file url"))
	}
	return reply.FileURL, nil
}

func (c *httpClient) do(ctx context.Context, sheet, method, rawURL string, form url.Values) (serviceReply, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return serviceReply{}, UpstreamError(sheet, err)
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return serviceReply{}, UpstreamError(sheet, err)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("store request failed",
			zap.String("sheet", sheet),
			zap.Error(err),
		)
		return serviceReply{}, UpstreamError(sheet, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("store returned non-2xx",
			zap.String("sheet", sheet),
			zap.Int("status", resp.StatusCode),
		)
		return serviceReply{}, UpstreamError(sheet, fmt.Errorf("http status %d", resp.StatusCode))
	}

	var reply serviceReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return serviceReply{}, UpstreamError(sheet, err)
	}
	if !reply.Success {
		c.logger.Warn("store reported failure",
			zap.String("sheet", sheet),
			zap.String("error", reply.Error),
		)
		return serviceReply{}, UpstreamError(sheet, errors.New(reply.Error))
	}
	return reply, nil
}

// decodeCell tolerates the store's loose cell typing: strings, numbers,
// booleans and nulls all project to their string form. Numbers decode as
// json.Number so long ids and amounts keep every digit instead of collapsing
// into float64 exponent notation.
func decodeCell(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil || v == nil {
		return ""
	}
	switch t := v.(type) {
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
