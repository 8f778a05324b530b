/*
Copyright © 2026 masteryyh <yyh991013@163.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/masteryyh/promoadmin/pkg/utils/pagination"
	"github.com/pterm/pterm"
	"github.com/spf13/viper"
)

// CLIConfig points the CLI at a promoadmin server.
type CLIConfig struct {
	BaseURL  string `mapstructure:"baseUrl"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`

	// PageSize is the default limit for list commands
	PageSize int `mapstructure:"pageSize"`

	// Strict is the default for window --strict
	Strict bool `mapstructure:"strict"`
}

const defaultBaseURL = "http://localhost:8080"

func defaultCLIConfig() *CLIConfig {
	return &CLIConfig{
		BaseURL:  defaultBaseURL,
		PageSize: pagination.DefaultPageSize,
	}
}

var cliConfig *CLIConfig

func loadCLIConfig() error {
	v := viper.New()
	v.SetConfigName("cli-config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("PROMOADMIN_CLI")
	v.AutomaticEnv()
	v.SetDefault("baseUrl", defaultBaseURL)
	v.SetDefault("pageSize", pagination.DefaultPageSize)

	homeDir, err := os.UserHomeDir()
	if err == nil {
		v.AddConfigPath(filepath.Join(homeDir, ".promoadmin"))
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading CLI config file: %w", err)
		}
	}

	cliConfig = &CLIConfig{}
	if err := v.Unmarshal(cliConfig); err != nil {
		return fmt.Errorf("unable to decode CLI config: %w", err)
	}

	return nil
}

func GetCLIConfig() *CLIConfig {
	if cliConfig == nil {
		if err := loadCLIConfig(); err != nil {
			pterm.Warning.Printf("failed to load CLI config, using defaults: %v\n", err)
			cliConfig = defaultCLIConfig()
		}
	}
	return cliConfig
}
