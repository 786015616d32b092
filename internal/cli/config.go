// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeranaias/cookbot-tui/internal/config"
)

func newConfigCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change configuration",
		Long: `Configuration lives in ~/.cookbot/config.toml (or the file given with
--config). BACKEND_URI and COOKBOT_* environment variables override it.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprint(cmd.OutOrStdout(), e.cfg.String())
				return nil
			},
		},
		&cobra.Command{
			Use:     "get KEY",
			Short:   "Print one setting",
			Example: `  cookbot config get backend.url`,
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := e.cfg.Get(args[0])
				if err != nil {
					return &UsageError{Message: err.Error()}
				}
				if list, ok := v.([]string); ok {
					v = strings.Join(list, ",")
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			},
		},
		&cobra.Command{
			Use:     "set KEY VALUE",
			Short:   "Change one setting in the config file",
			Example: `  cookbot config set ui.theme light`,
			Args:    cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := e.writablePath()
				if err != nil {
					return err
				}
				if err := setConfigValue(path, args[0], args[1]); err != nil {
					return err
				}
				newPrinter(cmd.OutOrStdout()).Success(fmt.Sprintf("Set %s = %s in %s", args[0], args[1], path))
				return nil
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := e.writablePath()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "keys",
			Short: "List every settable key",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, key := range config.GetAllKeys() {
					fmt.Fprintln(cmd.OutOrStdout(), key)
				}
				return nil
			},
		},
	)
	return cmd
}

// writablePath is --config when given, otherwise the default TOML file.
func (e *env) writablePath() (string, error) {
	if e.flags.configPath != "" {
		return e.flags.configPath, nil
	}
	return config.ConfigPathTOML()
}

// setConfigValue updates one key in the file at path. Only file contents
// are written back; environment overrides are not persisted.
func setConfigValue(path, key, value string) error {
	cfg := config.Default()
	isJSON := strings.HasSuffix(path, ".json")

	load := config.LoadTOML
	if isJSON {
		load = config.LoadJSON
	}
	if _, err := os.Stat(path); err == nil {
		if err := load(cfg, path); err != nil {
			return err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}

	if err := cfg.Set(key, value); err != nil {
		return &UsageError{Message: err.Error()}
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	if isJSON {
		return config.SaveJSON(cfg, path)
	}
	return config.SaveTOML(cfg, path)
}
