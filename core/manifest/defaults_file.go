package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v2"
)

// LoadDefaults reads a flat string-to-string mapping from a JSON, TOML, or
// YAML file and returns it as overrides sorted by key, so that applying a
// file always produces the same manifest. JSON files may carry comments and
// trailing commas. Explicit -D overrides are applied after file defaults and
// win on duplicate keys.
func LoadDefaults(path string) ([]Override, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read defaults file %s: %w", path, err)
	}

	values := map[string]string{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("error reading %s as TOML: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("error reading %s as YAML: %w", path, err)
		}
	case ".json", ".jsonc":
		jsonBytes, err := standardizeJSON(data)
		if err != nil {
			return nil, fmt.Errorf("error reading %s as JSON: %w", path, err)
		}
		if err := json.Unmarshal(jsonBytes, &values); err != nil {
			return nil, fmt.Errorf("error reading %s as JSON: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported defaults file format: %s", path)
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	overrides := make([]Override, 0, len(keys))
	for _, key := range keys {
		overrides = append(overrides, Override{Key: key, Value: values[key]})
	}

	return overrides, nil
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
