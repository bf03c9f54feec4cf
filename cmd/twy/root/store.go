package root

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"twelveweeks/internal/config"
	"twelveweeks/internal/engine"
	"twelveweeks/internal/storage"
)

func openStore() (storage.Store, *config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	path, err := cfg.StorePath()
	if err != nil {
		return nil, nil, nil, err
	}
	store, err := storage.NewByEngine(cfg.Storage.Engine, path)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() {
		_ = store.Close()
	}
	return store, cfg, cleanup, nil
}

func openService() (*engine.Service, *config.Config, func(), error) {
	store, cfg, cleanup, err := openStore()
	if err != nil {
		return nil, nil, nil, err
	}
	return engine.NewService(store), cfg, cleanup, nil
}

// resolveDate returns the --date flag value, or today in the configured
// timezone when the flag is empty.
func resolveDate(date string, cfg *config.Config) (string, error) {
	if date != "" {
		return date, nil
	}
	return engine.CurrentLocalDate(cfg.Timezone)
}

// confirm asks a destructive-action yes/no question. Anything but y/yes
// declines and leaves state untouched.
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s (y/N) ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
