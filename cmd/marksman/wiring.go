package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/marksman/internal/category"
	"github.com/Veraticus/marksman/internal/config"
	"github.com/Veraticus/marksman/internal/notify"
	"github.com/Veraticus/marksman/internal/service"
	"github.com/Veraticus/marksman/internal/sheets"
	"github.com/Veraticus/marksman/internal/xlsx"
)

// newLedger builds the ledger backend selected by ledger.backend.
func newLedger(ctx context.Context, logger *slog.Logger) (service.Ledger, error) {
	ledgerCfg, err := config.LoadLedgerConfig()
	if err != nil {
		return nil, err
	}

	switch ledgerCfg.Backend {
	case config.BackendXLSX:
		return xlsx.NewLedger(ledgerCfg.XLSXPath, ledgerCfg.Sheet, logger), nil
	default:
		sheetsCfg, err := config.LoadSheetsConfig()
		if err != nil {
			return nil, err
		}
		client, err := sheets.NewClient(ctx, *sheetsCfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create Google Sheets client: %w", err)
		}
		return client, nil
	}
}

// newKeywordSource returns nil when no keyword map is configured.
func newKeywordSource(logger *slog.Logger) service.KeywordMapSource {
	location := config.KeywordMapLocation()
	if location == "" {
		return nil
	}

	source, err := category.NewSource(location)
	if err != nil {
		logger.Warn("Ignoring keyword map", "location", location, "error", err)
		return nil
	}
	return source
}

// newNotifier returns nil when Discord is not configured.
func newNotifier(logger *slog.Logger) (service.Notifier, error) {
	discordCfg := config.LoadDiscordConfig()
	if !discordCfg.Enabled() {
		return nil, nil
	}
	return notify.NewDiscord(discordCfg.BotToken, discordCfg.ChannelID, logger)
}
