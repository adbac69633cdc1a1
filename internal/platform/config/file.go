package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

type fileConfig struct {
	Server struct {
		Addr           string `toml:"addr"`
		ReadTimeout    string `toml:"read_timeout"`
		WriteTimeout   string `toml:"write_timeout"`
		IdleTimeout    string `toml:"idle_timeout"`
		RequestTimeout string `toml:"request_timeout"`
	} `toml:"server"`
	Site struct {
		Title       string `toml:"title"`
		Lang        string `toml:"lang"`
		BasePath    string `toml:"base_path"`
		DefaultPage string `toml:"default_page"`
		ContentDir  string `toml:"content_dir"`
		Environment string `toml:"environment"`
	} `toml:"site"`
	Export struct {
		Dir string `toml:"dir"`
	} `toml:"export"`
	Publish struct {
		Bucket string `toml:"bucket"`
		Prefix string `toml:"prefix"`
	} `toml:"publish"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

// loadConfigFile decodes a TOML config file into the same keys the environment uses.
func loadConfigFile(path string) (map[string]string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("config: %s: unknown keys [%s]", path, strings.Join(keys, ", "))
	}

	fields := []struct {
		key   []string
		env   string
		value string
	}{
		{[]string{"server", "addr"}, EnvHTTPAddr, raw.Server.Addr},
		{[]string{"server", "read_timeout"}, EnvReadTimeout, raw.Server.ReadTimeout},
		{[]string{"server", "write_timeout"}, EnvWriteTimeout, raw.Server.WriteTimeout},
		{[]string{"server", "idle_timeout"}, EnvIdleTimeout, raw.Server.IdleTimeout},
		{[]string{"server", "request_timeout"}, EnvRequestTimeout, raw.Server.RequestTimeout},
		{[]string{"site", "title"}, EnvSiteTitle, raw.Site.Title},
		{[]string{"site", "lang"}, EnvSiteLang, raw.Site.Lang},
		{[]string{"site", "base_path"}, EnvBasePath, raw.Site.BasePath},
		{[]string{"site", "default_page"}, EnvDefaultPage, raw.Site.DefaultPage},
		{[]string{"site", "content_dir"}, EnvContentDir, raw.Site.ContentDir},
		{[]string{"site", "environment"}, EnvEnvironment, raw.Site.Environment},
		{[]string{"export", "dir"}, EnvExportDir, raw.Export.Dir},
		{[]string{"publish", "bucket"}, EnvPublishBucket, raw.Publish.Bucket},
		{[]string{"publish", "prefix"}, EnvPublishPrefix, raw.Publish.Prefix},
		{[]string{"log", "level"}, EnvLogLevel, raw.Log.Level},
	}

	values := make(map[string]string, len(fields))
	for _, f := range fields {
		if meta.IsDefined(f.key...) {
			values[f.env] = f.value
		}
	}
	return values, nil
}
