// Package config loads marksman settings from viper, falling back to the
// environment variables the individual integrations document.
package config

import (
	"fmt"
	"os"

	"github.com/Veraticus/marksman/internal/common"
	"github.com/Veraticus/marksman/internal/sheets"
	"github.com/spf13/viper"
)

// LoadSheetsConfig loads Google Sheets configuration from Viper and environment variables.
// It follows this precedence:
// 1. Viper configuration (from config file or MARKSMAN_ env vars)
// 2. Direct environment variables (GOOGLE_SHEETS_*, GOOGLE_APPLICATION_CREDENTIALS)
// 3. Default values
func LoadSheetsConfig() (*sheets.Config, error) {
	config := sheets.DefaultConfig()

	// Load from Viper first
	if v := viper.GetString("sheets.service_account_path"); v != "" {
		config.ServiceAccountPath = ExpandPath(v)
	}
	if v := viper.GetString("sheets.client_id"); v != "" {
		config.ClientID = v
	}
	if v := viper.GetString("sheets.client_secret"); v != "" {
		config.ClientSecret = v
	}
	if v := viper.GetString("sheets.refresh_token"); v != "" {
		config.RefreshToken = v
	}
	if v := viper.GetString("sheets.spreadsheet_id"); v != "" {
		config.SpreadsheetID = v
	}
	if v := viper.GetString("ledger.sheet"); v != "" {
		config.SheetName = v
	}
	if viper.IsSet("sheets.batch_size") {
		config.BatchSize = viper.GetInt("sheets.batch_size")
	}
	if viper.IsSet("sheets.retry_attempts") {
		config.RetryAttempts = viper.GetInt("sheets.retry_attempts")
	}
	if viper.IsSet("sheets.retry_delay") {
		config.RetryDelay = viper.GetDuration("sheets.retry_delay")
	}

	// Fall back to direct environment variables
	if config.ServiceAccountPath == "" {
		if v := os.Getenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH"); v != "" {
			config.ServiceAccountPath = ExpandPath(v)
		}
	}
	if config.ServiceAccountPath == "" && config.RefreshToken == "" && os.Getenv("GOOGLE_SHEETS_REFRESH_TOKEN") == "" {
		if v := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); v != "" {
			config.ServiceAccountPath = ExpandPath(v)
		}
	}
	if config.ClientID == "" {
		config.ClientID = os.Getenv("GOOGLE_SHEETS_CLIENT_ID")
	}
	if config.ClientSecret == "" {
		config.ClientSecret = os.Getenv("GOOGLE_SHEETS_CLIENT_SECRET")
	}
	if config.RefreshToken == "" {
		config.RefreshToken = os.Getenv("GOOGLE_SHEETS_REFRESH_TOKEN")
	}
	if config.SpreadsheetID == "" {
		config.SpreadsheetID = os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID")
	}
	if config.SheetName == sheets.DefaultSheetName {
		if v := os.Getenv("GOOGLE_SHEETS_SHEET_NAME"); v != "" {
			config.SheetName = v
		}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: google sheets: %v", common.ErrInvalidConfig, err)
	}

	return &config, nil
}
