package config

import (
	"os"

	"github.com/spf13/viper"
)

// DiscordConfig holds the credentials for posting run summaries.
type DiscordConfig struct {
	BotToken  string
	ChannelID string
}

// Enabled reports whether both the token and the channel are set.
func (c DiscordConfig) Enabled() bool {
	return c.BotToken != "" && c.ChannelID != ""
}

// LoadDiscordConfig reads notify.discord.* with DISCORD_BOT_TOKEN and
// DISCORD_CHANNEL_ID as fallbacks.
func LoadDiscordConfig() DiscordConfig {
	cfg := DiscordConfig{
		BotToken:  viper.GetString("notify.discord.bot_token"),
		ChannelID: viper.GetString("notify.discord.channel_id"),
	}
	if cfg.BotToken == "" {
		cfg.BotToken = os.Getenv("DISCORD_BOT_TOKEN")
	}
	if cfg.ChannelID == "" {
		cfg.ChannelID = os.Getenv("DISCORD_CHANNEL_ID")
	}
	return cfg
}
