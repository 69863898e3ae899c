// Copyright 2023 Vellum Project
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"github.com/BurntSushi/toml"

	"github.com/vellumdb/vellum/pkg/common/moerr"
	"github.com/vellumdb/vellum/pkg/logutil"
)

// Configuration is the process configuration of vellum tooling.
type Configuration struct {
	Log logutil.LogConfig `toml:"log"`
}

// Default returns a Configuration with all defaults applied.
func Default() Configuration {
	var cfg Configuration
	cfg.Log.Adjust()
	return cfg
}

// Load reads a toml configuration file and applies defaults on top of
// absent fields.
func Load(path string) (Configuration, error) {
	var cfg Configuration
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, moerr.NewInvalidInputNoCtx("config file %s: %s", path, err)
	}
	cfg.Log.Adjust()
	return cfg, nil
}
