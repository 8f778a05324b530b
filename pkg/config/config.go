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

package config

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/masteryyh/promoadmin/pkg/utils"
	"github.com/masteryyh/promoadmin/pkg/utils/pagination"
	"github.com/spf13/viper"
)

type ConfigManager struct {
	cfg    *AppConfig
	vipers *viper.Viper

	// pagination is the live copy of cfg.Pagination, swapped on config reload
	mu         sync.RWMutex
	pagination PaginationConfig

	reloadMu    sync.Mutex
	reloadTimer *time.Timer
}

func NewConfigManager() *ConfigManager {
	return &ConfigManager{
		cfg:    &AppConfig{},
		vipers: viper.New(),
	}
}

func (cm *ConfigManager) GetConfig() *AppConfig {
	return cm.cfg
}

func (cm *ConfigManager) Validate() error {
	if err := cm.cfg.Validate(); err != nil {
		return err
	}
	cm.setPagination(*cm.cfg.Pagination)
	return nil
}

// Pagination returns the current pagination settings, including hot-reloaded changes.
func (cm *ConfigManager) Pagination() PaginationConfig {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.pagination
}

func (cm *ConfigManager) PaginationOptions() pagination.Options {
	p := cm.Pagination()
	return p.Options()
}

func (cm *ConfigManager) setPagination(p PaginationConfig) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.pagination = p
}

const reloadDebounce = 100 * time.Millisecond

// Watch reloads the pagination section whenever the config file, one of its
// promoadmin.*.yaml fragments or an included file changes, until ctx is done.
// Other sections need a restart.
func (cm *ConfigManager) Watch(ctx context.Context) {
	configFile := cm.vipers.ConfigFileUsed()
	if configFile == "" {
		return
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Warn("failed to create config watcher, hot reload disabled", "error", err)
		return
	}

	for _, dir := range cm.watchedDirs(configFile) {
		if err := watcher.Add(dir); err != nil {
			slog.Warn("failed to watch config directory", "dir", dir, "error", err)
		}
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				if !cm.isWatchedConfig(configFile, event.Name) {
					continue
				}
				cm.scheduleReload(event.Name)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("config watcher error", "error", err)
			}
		}
	}()
}

// watchedDirs returns the config directory and the directories of included files.
func (cm *ConfigManager) watchedDirs(configFile string) []string {
	dirs := []string{filepath.Dir(configFile)}
	includes, err := cm.resolveIncludes(filepath.Dir(configFile))
	if err != nil {
		return dirs
	}
	for _, inc := range includes {
		dirs = append(dirs, filepath.Dir(inc))
	}
	slices.Sort(dirs)
	return slices.Compact(dirs)
}

func (cm *ConfigManager) isWatchedConfig(configFile, name string) bool {
	name = filepath.Clean(name)
	if name == filepath.Clean(configFile) {
		return true
	}

	dir := filepath.Dir(configFile)
	if filepath.Dir(name) == filepath.Clean(dir) {
		base := strings.TrimSuffix(filepath.Base(configFile), filepath.Ext(configFile))
		for _, ext := range []string{".yaml", ".yml"} {
			if ok, _ := filepath.Match(base+".*"+ext, filepath.Base(name)); ok {
				return true
			}
		}
	}

	cm.reloadMu.Lock()
	includes, err := cm.resolveIncludes(dir)
	cm.reloadMu.Unlock()
	if err != nil {
		// a broken include list is reported by the reload itself
		return true
	}
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	return slices.Contains(includes, abs)
}

func (cm *ConfigManager) scheduleReload(file string) {
	cm.reloadMu.Lock()
	defer cm.reloadMu.Unlock()

	if cm.reloadTimer != nil {
		cm.reloadTimer.Stop()
	}
	cm.reloadTimer = time.AfterFunc(reloadDebounce, func() {
		if err := cm.reloadPagination(); err != nil {
			slog.Warn("failed to reload pagination config, keeping previous settings", "file", file, "error", err)
			return
		}
		slog.Info("pagination config reloaded", "file", file, "strictOverflowCompensation", cm.Pagination().StrictOverflowCompensation)
	})
}

// reloadPagination re-reads the config file and everything merged into it.
// Reloads are serialized since viper is not safe for concurrent use.
func (cm *ConfigManager) reloadPagination() error {
	cm.reloadMu.Lock()
	defer cm.reloadMu.Unlock()

	if err := cm.vipers.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	if err := cm.mergeAdditionalConfigs(); err != nil {
		return err
	}

	var p PaginationConfig
	if err := cm.vipers.UnmarshalKey("pagination", &p); err != nil {
		return fmt.Errorf("unable to decode pagination config: %w", err)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	cm.setPagination(p)
	return nil
}

func (cm *ConfigManager) BindEnvVariables() {
	cm.vipers.SetEnvPrefix("PROMOADMIN")
	cm.vipers.AutomaticEnv()
	cm.vipers.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envs := map[string]string{
		"port":                                  "PROMOADMIN_PORT",
		"debug":                                 "PROMOADMIN_DEBUG",
		"auth.enabled":                          "PROMOADMIN_AUTH_ENABLED",
		"auth.username":                         "PROMOADMIN_AUTH_USERNAME",
		"auth.password":                         "PROMOADMIN_AUTH_PASSWORD",
		"upstreams.promotions.baseUrl":          "PROMOADMIN_PROMOTIONS_URL",
		"upstreams.promotions.token":            "PROMOADMIN_PROMOTIONS_TOKEN",
		"upstreams.auth.baseUrl":                "PROMOADMIN_AUTH_URL",
		"upstreams.auth.token":                  "PROMOADMIN_AUTH_TOKEN",
		"upstreams.storage.baseUrl":             "PROMOADMIN_STORAGE_URL",
		"pagination.strictOverflowCompensation": "PROMOADMIN_PAGINATION_STRICT",
	}

	for key, env := range envs {
		cm.vipers.BindEnv(key, env)
	}
}

func (cm *ConfigManager) SetDefaults() {
	cm.vipers.SetDefault("port", 8080)
	cm.vipers.SetDefault("upstreams.promotions.baseUrl", "http://localhost:3001")
	cm.vipers.SetDefault("upstreams.auth.baseUrl", "http://localhost:3000")
	cm.vipers.SetDefault("upstreams.promotions.timeout", "15s")
	cm.vipers.SetDefault("upstreams.auth.timeout", "15s")
	cm.vipers.SetDefault("pagination.defaultLimit", pagination.DefaultPageSize)
	cm.vipers.SetDefault("pagination.maxLimit", pagination.MaxPageSize)
	cm.vipers.SetDefault("pagination.strictOverflowCompensation", false)
}

func (cm *ConfigManager) LoadConfig(configPaths ...string) error {
	cm.SetDefaults()

	cm.vipers.SetConfigName("promoadmin")
	cm.vipers.SetConfigType("yaml")

	defaultPaths := []string{
		".",
		"./config",
		"./configs",
		"/etc/promoadmin",
		"$HOME/.promoadmin",
	}

	allPaths := append(configPaths, defaultPaths...)
	for _, path := range allPaths {
		cm.vipers.AddConfigPath(path)
	}

	if err := cm.vipers.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Warn("no config file found, using defaults")
		} else {
			return fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		slog.Info("using config file", "file", cm.vipers.ConfigFileUsed())
	}

	if err := cm.mergeAdditionalConfigs(); err != nil {
		return err
	}

	if err := cm.vipers.Unmarshal(cm.cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return nil
}

func (cm *ConfigManager) mergeAdditionalConfigs() error {
	configFile := cm.vipers.ConfigFileUsed()
	if configFile == "" {
		return nil
	}

	dir := filepath.Dir(configFile)

	fragments, err := cm.discoverFragments(configFile)
	if err != nil {
		return err
	}

	includeFragments, err := cm.resolveIncludes(dir)
	if err != nil {
		return err
	}

	seen := map[string]struct{}{}
	ordered := make([]string, 0, len(fragments)+len(includeFragments))

	appendUnique := func(paths []string) {
		for _, p := range paths {
			clean := filepath.Clean(p)
			if clean == filepath.Clean(configFile) {
				continue
			}
			if _, ok := seen[clean]; ok {
				continue
			}
			seen[clean] = struct{}{}
			ordered = append(ordered, clean)
		}
	}

	appendUnique(fragments)
	appendUnique(includeFragments)

	for _, fragment := range ordered {
		if err := cm.mergeConfigFile(fragment); err != nil {
			return err
		}
		slog.Info("merged config fragment", "file", fragment)
	}

	return nil
}

func (cm *ConfigManager) discoverFragments(configFile string) ([]string, error) {
	dir := filepath.Dir(configFile)
	base := strings.TrimSuffix(filepath.Base(configFile), filepath.Ext(configFile))

	patterns := []string{
		filepath.Join(dir, fmt.Sprintf("%s.*.yaml", base)),
		filepath.Join(dir, fmt.Sprintf("%s.*.yml", base)),
	}

	var matches []string
	for _, pattern := range patterns {
		globbed, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q failed: %w", pattern, err)
		}
		if len(globbed) == 0 {
			continue
		}
		sort.Strings(globbed)
		matches = append(matches, globbed...)
	}

	return matches, nil
}

func (cm *ConfigManager) resolveIncludes(baseDir string) ([]string, error) {
	includes := cm.vipers.GetStringSlice("include")
	if len(includes) == 0 {
		return nil, nil
	}

	baseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config directory: %w", err)
	}

	resolved := make([]string, 0, len(includes))
	for _, inc := range includes {
		if strings.TrimSpace(inc) == "" {
			continue
		}

		candidate, err := utils.ResolvePath(baseDir, inc)
		if err != nil {
			return nil, fmt.Errorf("invalid include %q: %w", inc, err)
		}
		if !filepath.IsAbs(inc) {
			contained, err := utils.PathContained(baseDir, candidate)
			if err != nil || !contained {
				return nil, fmt.Errorf("relative include %q escapes the config directory", inc)
			}
		}

		info, err := os.Stat(candidate)
		if err != nil {
			return nil, fmt.Errorf("include file %q not accessible: %w", candidate, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("include path %q is a directory", candidate)
		}

		resolved = append(resolved, candidate)
	}

	return resolved, nil
}

func (cm *ConfigManager) mergeConfigFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config fragment %q: %w", path, err)
	}

	fragment := viper.New()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		fragment.SetConfigType("yaml")
	case ".json":
		fragment.SetConfigType("json")
	case ".toml":
		fragment.SetConfigType("toml")
	default:
		return fmt.Errorf("unsupported config fragment type %q for file %s", ext, path)
	}

	if err := fragment.ReadConfig(bytes.NewReader(content)); err != nil {
		return fmt.Errorf("failed to parse config fragment %q: %w", path, err)
	}

	if err := cm.vipers.MergeConfigMap(fragment.AllSettings()); err != nil {
		return fmt.Errorf("failed to merge config fragment %q: %w", path, err)
	}

	return nil
}

var (
	globalConfigManager *ConfigManager
	once                sync.Once
)

func Init(files ...string) error {
	var err error
	once.Do(func() {
		globalConfigManager = NewConfigManager()
		globalConfigManager.BindEnvVariables()

		if err = globalConfigManager.LoadConfig(files...); err != nil {
			return
		}

		err = globalConfigManager.Validate()
	})
	return err
}

func GetConfigManager() *ConfigManager {
	return globalConfigManager
}
