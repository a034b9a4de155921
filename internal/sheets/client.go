package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/Veraticus/marksman/internal/common"
	"github.com/Veraticus/marksman/internal/ledger"
	"github.com/Veraticus/marksman/internal/model"
	"github.com/Veraticus/marksman/internal/service"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client implements service.Ledger on top of a Google Sheets tab.
type Client struct {
	service *sheets.Service
	logger  *slog.Logger
	config  Config
}

// NewClient creates a ledger client authenticated from config.
func NewClient(ctx context.Context, config Config, logger *slog.Logger) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}

	srv, err := createSheetsService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return NewClientWithService(srv, config, logger), nil
}

// NewClientWithService wraps an already configured Sheets service.
func NewClientWithService(srv *sheets.Service, config Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		service: srv,
		config:  config,
		logger:  logger.With("component", "sheets", "spreadsheet_id", config.SpreadsheetID),
	}
}

// createSheetsService creates a Google Sheets API service.
func createSheetsService(ctx context.Context, config Config) (*sheets.Service, error) {
	var tokenSource oauth2.TokenSource

	if config.ServiceAccountPath != "" {
		// Use service account authentication
		jsonKey, err := os.ReadFile(config.ServiceAccountPath) // #nosec G304
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file: %w", err)
		}

		jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse service account key: %w", err)
		}

		tokenSource = jwtConfig.TokenSource(ctx)
	} else {
		// Use OAuth2 authentication
		client := &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{sheets.SpreadsheetsScope},
		}

		token := &oauth2.Token{
			RefreshToken: config.RefreshToken,
			TokenType:    "Bearer",
		}

		tokenSource = client.TokenSource(ctx, token)
	}

	httpClient := oauth2.NewClient(ctx, tokenSource)
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}

	return srv, nil
}

func (c *Client) retryOptions() service.RetryOptions {
	return service.RetryOptions{
		MaxAttempts:  c.config.RetryAttempts,
		InitialDelay: c.config.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
}

// FetchTransactions implements service.LedgerSource. Dates come back as
// serial numbers and amounts as plain numbers.
func (c *Client) FetchTransactions(ctx context.Context) ([]model.Transaction, error) {
	rng := A1Range(c.config.SheetName, fmt.Sprintf("%s%d:%s", ledger.ColumnAccount, model.FirstDataRow, ledger.ColumnCategory))

	var resp *sheets.ValueRange
	err := common.WithRetry(ctx, func(ctx context.Context) error {
		var err error
		resp, err = c.service.Spreadsheets.Values.Get(c.config.SpreadsheetID, rng).
			ValueRenderOption("UNFORMATTED_VALUE").
			DateTimeRenderOption("SERIAL_NUMBER").
			Context(ctx).
			Do()
		return classifyError(err)
	}, c.retryOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", common.ErrFetch, rng, err)
	}

	transactions, err := ledger.DecodeRows(resp.Values)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetched ledger rows", "range", rng, "rows", len(transactions))
	return transactions, nil
}

// ApplyAnnotations implements service.LedgerSink. Every annotation becomes a
// single-cell update; updates are sent in batches of Config.BatchSize.
func (c *Client) ApplyAnnotations(ctx context.Context, kind service.AnnotationKind, rows []model.Annotation) error {
	column, err := ledger.ColumnFor(kind)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrWrite, err)
	}
	if len(rows) == 0 {
		return nil
	}

	data := make([]*sheets.ValueRange, 0, len(rows))
	for _, a := range rows {
		data = append(data, &sheets.ValueRange{
			Range:  A1Range(c.config.SheetName, fmt.Sprintf("%s%d", column, a.Row)),
			Values: [][]any{{ledger.CellValue(kind, a.Transaction)}},
		})
	}

	written := 0
	for start := 0; start < len(data); start += c.config.BatchSize {
		end := min(start+c.config.BatchSize, len(data))
		batch := data[start:end]

		err := common.WithRetry(ctx, func(ctx context.Context) error {
			_, err := c.service.Spreadsheets.Values.BatchUpdate(c.config.SpreadsheetID, &sheets.BatchUpdateValuesRequest{
				ValueInputOption: "RAW",
				Data:             batch,
			}).Context(ctx).Do()
			return classifyError(err)
		}, c.retryOptions())
		if err != nil {
			return fmt.Errorf("%w: %s annotations %d-%d of %d (%d already written): %w",
				common.ErrWrite, kind, start+1, end, len(data), written, err)
		}

		written += len(batch)
		c.logger.Debug("wrote batch", "kind", kind, "cells", len(batch), "written", written)
	}

	return nil
}

// classifyError marks throttling and server-side failures as retryable.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests:
			return fmt.Errorf("%w: %w", common.ErrRateLimit, err)
		case apiErr.Code >= http.StatusInternalServerError:
			return &common.RetryableError{Err: err, Retryable: true}
		}
	}

	return err
}
