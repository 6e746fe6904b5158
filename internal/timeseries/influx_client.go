package timeseries

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/domain"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InfluxConfig connection settings for the time-series store.
type InfluxConfig struct {
	URL         string
	Database    string
	Measurement string
	Token       string
	Timeout     time.Duration
	RetryCount  int
}

// queryResponse body of InfluxDB /query.
type queryResponse struct {
	Results []statementResult `json:"results"`
	Error   string            `json:"error,omitempty"`
}

type statementResult struct {
	StatementID int      `json:"statement_id"`
	Series      []series `json:"series,omitempty"`
	Error       string   `json:"error,omitempty"`
}

type series struct {
	Name    string            `json:"name"`
	Tags    map[string]string `json:"tags,omitempty"`
	Columns []string          `json:"columns"`
	Values  [][]any           `json:"values"`
}

// InfluxClient reads the latest register values of a node from InfluxDB over HTTP.
type InfluxClient struct {
	httpClient  *resty.Client
	database    string
	measurement string
	logger      *zap.Logger
}

// NewInfluxClient creates an InfluxDB client.
func NewInfluxClient(cfg InfluxConfig, logger *zap.Logger) *InfluxClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Accept", "application/json")
	if cfg.Token != "" {
		client.SetHeader("Authorization", "Token "+cfg.Token)
	}

	measurement := cfg.Measurement
	if measurement == "" {
		measurement = "current_raw_scan_data"
	}

	return &InfluxClient{
		httpClient:  client,
		database:    cfg.Database,
		measurement: measurement,
		logger:      logger,
	}
}

// GetCurrentRawScanData returns the most recent value of every register of a node,
// sorted by address.
func (c *InfluxClient) GetCurrentRawScanData(ctx context.Context, nodeID string, assetID uuid.UUID, customerID string) ([]domain.CurrentScanValue, error) {
	q := buildLastValueQuery(c.measurement, nodeID, assetID, customerID)

	var result queryResponse
	var errBody queryResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"db": c.database,
			"q":  q,
		}).
		ForceContentType("application/json").
		SetResult(&result).
		SetError(&errBody).
		Get("/query")
	if err != nil {
		c.logger.Error("Influx query failed",
			zap.String("node_id", nodeID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to query influx: %w", err)
	}

	if resp.IsError() {
		msg := errBody.Error
		if msg == "" {
			msg = strings.TrimSpace(resp.String())
		}
		return nil, fmt.Errorf("influx query returned status %d: %s", resp.StatusCode(), msg)
	}
	if result.Error != "" {
		return nil, fmt.Errorf("influx query error: %s", result.Error)
	}

	var out []domain.CurrentScanValue
	for _, r := range result.Results {
		if r.Error != "" {
			return nil, fmt.Errorf("influx statement %d error: %s", r.StatementID, r.Error)
		}
		for _, s := range r.Series {
			v, ok := c.seriesToValue(nodeID, s)
			if ok {
				out = append(out, v)
			}
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Address < out[j].Address })

	c.logger.Debug("Influx current values loaded",
		zap.String("node_id", nodeID),
		zap.Int("count", len(out)),
	)
	return out, nil
}

func (c *InfluxClient) seriesToValue(nodeID string, s series) (domain.CurrentScanValue, bool) {
	address, err := strconv.Atoi(s.Tags["address"])
	if err != nil {
		c.logger.Warn("Skipping influx series without numeric address tag",
			zap.String("node_id", nodeID),
			zap.String("address", s.Tags["address"]),
		)
		return domain.CurrentScanValue{}, false
	}
	if len(s.Values) == 0 {
		return domain.CurrentScanValue{}, false
	}

	row := s.Values[0]
	v := domain.CurrentScanValue{NodeID: nodeID, Address: address}
	for i, col := range s.Columns {
		if i >= len(row) {
			break
		}
		switch col {
		case "time":
			v.UpdatedAt = parseTime(row[i])
		case "value":
			v.Value = parseFloat(row[i])
		case "string_value":
			v.StringValue = parseString(row[i])
		}
	}
	return v, true
}

// buildLastValueQuery InfluxQL selecting the last value per address.
func buildLastValueQuery(measurement, nodeID string, assetID uuid.UUID, customerID string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `SELECT last("value") AS "value", last("string_value") AS "string_value" FROM %s`, quoteIdent(measurement))
	fmt.Fprintf(&b, ` WHERE "node_id" = %s AND "asset_id" = %s`, quoteLiteral(nodeID), quoteLiteral(assetID.String()))
	if customerID != "" {
		fmt.Fprintf(&b, ` AND "customer_id" = %s`, quoteLiteral(customerID))
	}
	b.WriteString(` GROUP BY "address"`)
	return b.String()
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func quoteLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return `'` + strings.ReplaceAll(s, `'`, `\'`) + `'`
}

func parseTime(v any) *time.Time {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}

func parseFloat(v any) *float64 {
	switch x := v.(type) {
	case float64:
		return &x
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return nil
		}
		return &f
	case bool:
		f := 0.0
		if x {
			f = 1
		}
		return &f
	}
	return nil
}

func parseString(v any) *string {
	switch x := v.(type) {
	case string:
		return &x
	case float64:
		s := strconv.FormatFloat(x, 'f', -1, 64)
		return &s
	}
	return nil
}
