// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - The "config" command.

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/Poizon7/spectrum/internal/config"
)

func (a *App) runConfig(args Args) (interface{}, error) {
	p := NewArgParser(args.Raw, "force")

	path := args.ConfigPath
	if path == "" {
		var err error
		if path, err = config.ConfigPathTOML(); err != nil {
			return nil, NewCommandError("config", "path", err)
		}
	}

	switch p.Subcommand() {
	case "", "show":
		return a.configShow(path)
	case "path":
		a.printf("%s\n", path)
		return ConfigData{Path: path}, nil
	case "init":
		return a.configInit(path, p.BoolFlag("force"))
	case "get":
		return a.configGet(path, p.Positional(1))
	case "set":
		return a.configSet(path, p.Positional(1), JoinPositionalArgs(p, 2))
	default:
		return nil, subcommandError("config", p.Subcommand(), "show", "path", "init", "get", "set")
	}
}

func (a *App) configShow(path string) (interface{}, error) {
	values := make(map[string]interface{})

	a.printf("%s\n", TitleStyle.Render("Configuration"))
	a.printf("%s%s\n\n", RenderLabel("File:"), DimStyle.Render(path))
	for _, key := range config.GetAllKeys() {
		v, err := a.cfg.Get(key)
		if err != nil {
			return nil, NewCommandError("config", "show", err)
		}
		values[key] = v
		a.printf("%s%s\n", RenderLabel(key), ValueStyle.Render(fmt.Sprint(v)))
	}
	return ConfigData{Path: path, Values: values}, nil
}

func (a *App) configInit(path string, force bool) (interface{}, error) {
	if _, err := os.Stat(path); err == nil && !force {
		return nil, NewUsageError("config init", path, "file exists (use --force to overwrite)")
	}
	if err := config.SaveTOML(config.Default(), path); err != nil {
		return nil, NewCommandError("config", "init", err)
	}
	a.log.Info("wrote default config", "path", path)
	a.printf("%s wrote %s\n", SuccessStyle.Render("[OK]"), path)
	return ConfigData{Path: path}, nil
}

func (a *App) configGet(path, key string) (interface{}, error) {
	if key == "" {
		return nil, NewUsageErrorWithExample("key", "", "required", "spectrum config get aes.key_bits")
	}
	v, err := a.cfg.Get(key)
	if err != nil {
		return nil, NewUsageError("key", key, err.Error())
	}
	a.printf("%v\n", v)
	return ConfigData{Path: path, Values: map[string]interface{}{key: v}}, nil
}

// configSet edits the file on disk, not the environment-adjusted view.
func (a *App) configSet(path, key, value string) (interface{}, error) {
	if key == "" || value == "" {
		return nil, NewUsageErrorWithExample("key", key, "a key and a value are required", "spectrum config set aes.key_bits 128")
	}

	cfg := config.Default()
	if _, err := os.Stat(path); err == nil {
		var loadErr error
		if strings.HasSuffix(path, ".json") {
			loadErr = config.LoadJSON(cfg, path)
		} else {
			loadErr = config.LoadTOML(cfg, path)
		}
		if loadErr != nil {
			return nil, NewCommandError("config", "set", loadErr)
		}
	}

	if err := cfg.Set(key, value); err != nil {
		return nil, NewUsageError("key", key, err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return nil, NewUsageError(key, value, err.Error())
	}

	var err error
	if strings.HasSuffix(path, ".json") {
		err = config.SaveJSON(cfg, path)
	} else {
		err = config.SaveTOML(cfg, path)
	}
	if err != nil {
		return nil, NewCommandError("config", "set", err)
	}

	v, _ := cfg.Get(key)
	a.printf("%s %s = %v\n", SuccessStyle.Render("[OK]"), key, v)
	return ConfigData{Path: path, Values: map[string]interface{}{key: v}}, nil
}
