// Package gateway is the client for the remote spreadsheet web app. The
// remote side exposes a single RPC-style endpoint accepting a JSON body of
// {action, payload} and answering with JSON.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/slimcoreui/preorder-admin/internal/engine"
	"github.com/slimcoreui/preorder-admin/internal/model"
)

// RPC action names understood by the remote store.
const (
	actionGetData    = "getData"
	actionUpdate     = "updateOrder"
	actionCsv        = "getCsvData"
	actionRecentLogs = "getRecentLogs"
	actionPing       = "serverPing"
)

// Client issues RPC calls against the configured endpoint. It carries no
// retry or backoff logic; callers decide how to degrade.
type Client struct {
	httpClient *http.Client
	url        string
}

// NewClient creates a gateway client for the given web app URL.
func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type rpcRequest struct {
	Payload any    `json:"payload"`
	Action  string `json:"action"`
}

// Call posts {action, payload} to the endpoint and returns the raw JSON
// response. Network, HTTP and decode failures all surface as errors.
func (c *Client) Call(ctx context.Context, action string, payload any) (json.RawMessage, error) {
	body, err := json.Marshal(rpcRequest{Action: action, Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", action, err)
	}
	req.Header.Set("Content-Type", "application/json")

	slog.Debug("Calling remote store", "action", action)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s call failed: %w", action, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("remote store error on %s: %d - %s", action, resp.StatusCode, string(snippet))
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", action, err)
	}
	return raw, nil
}

// FetchOrders retrieves the full record set and derives the logic status of
// every record at ingestion time.
func (c *Client) FetchOrders(ctx context.Context) ([]model.Order, error) {
	raw, err := c.Call(ctx, actionGetData, nil)
	if err != nil {
		return nil, err
	}

	var orders []model.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode order list: %w", err)
	}

	model.NormalizeAll(orders)
	return orders, nil
}

// UpdateOrder pushes a committed edit to the remote store. Anything other
// than a literal "SUCCESS" response is an error, including error strings
// carried inside an otherwise successful response.
func (c *Client) UpdateOrder(ctx context.Context, update engine.Update) error {
	raw, err := c.Call(ctx, actionUpdate, update)
	if err != nil {
		return err
	}

	var result string
	if err := json.Unmarshal(raw, &result); err != nil {
		return fmt.Errorf("unexpected updateOrder response: %s", string(raw))
	}
	if result != "SUCCESS" {
		return fmt.Errorf("remote sync rejected: %s", result)
	}
	return nil
}

// FetchCSV retrieves the server-rendered CSV export blob.
func (c *Client) FetchCSV(ctx context.Context) (string, error) {
	raw, err := c.Call(ctx, actionCsv, nil)
	if err != nil {
		return "", err
	}

	var csv string
	if err := json.Unmarshal(raw, &csv); err != nil {
		return "", fmt.Errorf("failed to decode csv blob: %w", err)
	}
	return csv, nil
}

// EditLog is one remote edit-history entry, most recent first.
type EditLog struct {
	Time    string
	OrderID string
	Detail  string
}

// UnmarshalJSON decodes the wire form, a [timestamp, id, detail] triple.
func (l *EditLog) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var parts []any
	if err := dec.Decode(&parts); err != nil {
		return err
	}
	field := func(i int) string {
		if i >= len(parts) || parts[i] == nil {
			return ""
		}
		if s, ok := parts[i].(string); ok {
			return s
		}
		return fmt.Sprint(parts[i])
	}
	l.Time = field(0)
	l.OrderID = field(1)
	l.Detail = field(2)
	return nil
}

// RecentLogs retrieves the remote edit history.
func (c *Client) RecentLogs(ctx context.Context) ([]EditLog, error) {
	raw, err := c.Call(ctx, actionRecentLogs, nil)
	if err != nil {
		return nil, err
	}

	var logs []EditLog
	if err := json.Unmarshal(raw, &logs); err != nil {
		return nil, fmt.Errorf("failed to decode edit logs: %w", err)
	}
	return logs, nil
}

// Ping issues the keep-alive call. The response body is ignored.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Call(ctx, actionPing, nil)
	return err
}
