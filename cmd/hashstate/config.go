// Copyright 2025 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.


package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func setFlagsFromConfigFile(ctx *cli.Context, filePath string) error {
	fileExtension := filepath.Ext(filePath)

	fileConfig := make(map[string]interface{})

	if fileExtension == ".yaml" {
		yamlFile, err := os.ReadFile(filePath)
		if err != nil {
			return err
		}
		err = yaml.Unmarshal(yamlFile, fileConfig)
		if err != nil {
			return err
		}
	} else if fileExtension == ".toml" {
		tomlFile, err := os.ReadFile(filePath)
		if err != nil {
			return err
		}
		err = toml.Unmarshal(tomlFile, &fileConfig)
		if err != nil {
			return err
		}
	} else {
		return errors.New("config files only accepted are .yaml and .toml")
	}
	known := definedFlags(ctx)
	// flags given on the command line win over the file, keys of other
	// commands are skipped
	for key, value := range fileConfig {
		if _, ok := known[key]; !ok || ctx.IsSet(key) {
			continue
		}
		if reflect.ValueOf(value).Kind() == reflect.Slice {
			sliceInterface := value.([]interface{})
			s := make([]string, len(sliceInterface))
			for i, v := range sliceInterface {
				s[i] = fmt.Sprintf("%v", v)
			}
			if err := ctx.Set(key, strings.Join(s, ",")); err != nil {
				return fmt.Errorf("failed setting %s flag with values=%s error=%w", key, s, err)
			}
		} else {
			if err := ctx.Set(key, fmt.Sprintf("%v", value)); err != nil {
				return fmt.Errorf("failed setting %s flag with value=%v error=%w", key, value, err)
			}
		}
	}
	return nil
}

func definedFlags(ctx *cli.Context) map[string]struct{} {
	names := make(map[string]struct{})
	add := func(flags []cli.Flag) {
		for _, f := range flags {
			for _, name := range f.Names() {
				names[name] = struct{}{}
			}
		}
	}
	add(ctx.App.Flags)
	for _, c := range ctx.Lineage() {
		if c.Command != nil {
			add(c.Command.Flags)
		}
	}
	return names
}

// applyConfigFile runs before every command so that command flags can be
// preset from the file too.
func applyConfigFile(ctx *cli.Context) error {
	if path := ctx.String(ConfigFlag.Name); path != "" {
		return setFlagsFromConfigFile(ctx, path)
	}
	return nil
}
