package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	permSecret    os.FileMode = 0o600 // config holds API keys
	permDirectory os.FileMode = 0o755
)

// starterYAML is the commented starting point written by "config init".
const starterYAML = `# Filmboard configuration.
# Every value can be overridden with a FILMBOARD_* environment variable;
# a .env file in the working directory is loaded at startup.

tmdb:
  # API key from https://www.themoviedb.org/settings/api (required).
  # Env: FILMBOARD_TMDB_API_KEY
  api_key: "your-tmdb-api-key"
  # Language for search results. Env: FILMBOARD_TMDB_LANGUAGE
  language: "en-US"

# Telegram frontend. Remove this section if you only use the TUI or MCP.
telegram:
  # Bot token from @BotFather. Env: FILMBOARD_TELEGRAM_BOT_TOKEN
  bot_token: "your-telegram-bot-token"
  # Telegram user IDs allowed to talk to the bot. Empty allows everyone.
  allowed_user_ids: []

app:
  # One of: debug, info, warn, error. Env: FILMBOARD_LOG_LEVEL
  log_level: "info"
`

// WriteStarter writes a commented starter config to path, creating parent
// directories as needed. It refuses to overwrite an existing file unless
// overwrite is set.
func WriteStarter(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("file already exists: %s (use --force to replace)", path)
		}
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, permDirectory); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(starterYAML), permSecret); err != nil {
		return fmt.Errorf("write file %s: %w", path, err)
	}
	return nil
}
