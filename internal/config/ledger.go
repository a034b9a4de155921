package config

import (
	"fmt"
	"strings"

	"github.com/Veraticus/marksman/internal/common"
	"github.com/spf13/viper"
)

// Ledger backends.
const (
	BackendSheets = "sheets"
	BackendXLSX   = "xlsx"
)

// LedgerConfig selects where the ledger lives.
type LedgerConfig struct {
	Backend  string
	XLSXPath string
	Sheet    string
}

// LoadLedgerConfig reads the ledger.* keys. The backend defaults to Google
// Sheets.
func LoadLedgerConfig() (LedgerConfig, error) {
	cfg := LedgerConfig{
		Backend:  strings.ToLower(strings.TrimSpace(viper.GetString("ledger.backend"))),
		XLSXPath: ExpandPath(viper.GetString("ledger.xlsx_path")),
		Sheet:    viper.GetString("ledger.sheet"),
	}
	if cfg.Backend == "" {
		cfg.Backend = BackendSheets
	}

	switch cfg.Backend {
	case BackendSheets:
	case BackendXLSX:
		if cfg.XLSXPath == "" {
			return cfg, fmt.Errorf("%w: ledger.xlsx_path is required for the xlsx backend", common.ErrMissingConfig)
		}
	default:
		return cfg, fmt.Errorf("%w: unknown ledger backend %q (want %s or %s)",
			common.ErrInvalidConfig, cfg.Backend, BackendSheets, BackendXLSX)
	}

	return cfg, nil
}
