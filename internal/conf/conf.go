package conf

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const defaultBannerURL = "https://raw.githubusercontent.com/afrinode-dev/UserBot/refs/heads/main/bot.png"

// Config represents application configuration
type Config struct {
	// Telegram configuration
	Telegram TelegramConfig

	// Forwarding configuration
	Forward ForwardConfig

	// Replies configuration (loaded from YAML, defaults built in)
	Replies *RepliesConfig

	// Data directory for session, sources and state files
	DataDir string

	// Debug mode
	Debug bool
}

// TelegramConfig contains the MTProto client configuration
type TelegramConfig struct {
	AppID       int32
	AppHash     string
	SessionFile string

	// StringSession takes precedence over the session file when set,
	// for headless hosts (see cmd/session-gen).
	StringSession string
}

// ForwardConfig contains forwarding configuration
type ForwardConfig struct {
	DestChat  string
	AdminID   string
	BannerURL string

	// InitialSources is only used when no persisted registry exists yet.
	InitialSources []string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}

	appID := 0
	if val := os.Getenv("API_ID"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			appID = parsed
		}
	}

	sessionFile := os.Getenv("SESSION_FILE")
	if sessionFile == "" {
		sessionFile = filepath.Join(dataDir, ".session")
	}

	var initial []string
	if val := os.Getenv("SOURCES"); val != "" {
		for _, id := range strings.Split(val, ",") {
			if id = strings.TrimSpace(id); id != "" {
				initial = append(initial, id)
			}
		}
	}

	bannerURL := os.Getenv("BANNER_URL")
	if bannerURL == "" {
		bannerURL = defaultBannerURL
	}

	replies, err := LoadRepliesConfig(os.Getenv("REPLIES_CONFIG_PATH"))
	if err != nil {
		fmt.Printf("[Config] Failed to load replies config, using defaults: %v\n", err)
		replies = DefaultRepliesConfig()
	}

	return &Config{
		Telegram: TelegramConfig{
			AppID:         int32(appID),
			AppHash:       os.Getenv("API_HASH"),
			SessionFile:   sessionFile,
			StringSession: os.Getenv("STRING_SESSION"),
		},
		Forward: ForwardConfig{
			DestChat:       strings.TrimSpace(os.Getenv("DEST_CHAT")),
			AdminID:        strings.TrimSpace(os.Getenv("ADMIN_ID")),
			BannerURL:      bannerURL,
			InitialSources: initial,
		},
		Replies: replies,
		DataDir: dataDir,
		Debug:   os.Getenv("DEBUG") == "true",
	}
}

// SourcesFile returns the path of the persisted registry.
func (c *Config) SourcesFile() string {
	return filepath.Join(c.DataDir, "sources.json")
}

// StateDBPath returns the path of the sqlite state store.
func (c *Config) StateDBPath() string {
	return filepath.Join(c.DataDir, "state.db")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Telegram.AppID == 0 || c.Telegram.AppHash == "" {
		return &ConfigError{Field: "API_ID/API_HASH", Message: "required"}
	}
	if c.Forward.DestChat == "" {
		return &ConfigError{Field: "DEST_CHAT", Message: "required"}
	}
	if c.Forward.AdminID == "" {
		return &ConfigError{Field: "ADMIN_ID", Message: "required"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
