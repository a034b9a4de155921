package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// KeywordMapLocation returns where the keyword map lives: a local path or a
// gs:// URI. It reads categories.map and falls back to CATEGORY_MAP_FILE.
// An empty result means no keyword map is configured.
func KeywordMapLocation() string {
	location := viper.GetString("categories.map")
	if location == "" {
		location = os.Getenv("CATEGORY_MAP_FILE")
	}
	location = strings.TrimSpace(location)

	if strings.HasPrefix(location, "gs://") {
		return location
	}
	return ExpandPath(location)
}
