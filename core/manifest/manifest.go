package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Version is the manifest format version understood by the runtime that
// consumes manifest.json.
const Version = "1.0"

// Manifest is the persisted record of default configuration values for a
// system container. Keys in DefaultValues keep their insertion order so that
// repeated runs serialize to stable, diffable output.
type Manifest struct {
	Version       string                                 `json:"version"`
	DefaultValues *orderedmap.OrderedMap[string, string] `json:"defaultValues"`
}

func New() *Manifest {
	return &Manifest{
		Version:       Version,
		DefaultValues: orderedmap.New[string, string](),
	}
}

// Set assigns a default value. A duplicate key keeps its original position
// and takes the new value.
func (m *Manifest) Set(key, value string) {
	m.DefaultValues.Set(key, value)
}

func (m *Manifest) Get(key string) (string, bool) {
	return m.DefaultValues.Get(key)
}

// Apply assigns each override in order, so a later duplicate key wins.
func (m *Manifest) Apply(overrides []Override) {
	for _, override := range overrides {
		m.Set(override.Key, override.Value)
	}
}

// Values returns the default values as a plain map for order-independent
// comparisons.
func (m *Manifest) Values() map[string]string {
	values := map[string]string{}
	for pair := m.DefaultValues.Oldest(); pair != nil; pair = pair.Next() {
		values[pair.Key] = pair.Value
	}
	return values
}

// Serialize renders the manifest as 4-space indented JSON. This format is
// the persisted contract that downstream consumers parse.
func (m *Manifest) Serialize() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize manifest: %w", err)
	}
	return data, nil
}

// Parse reads a serialized manifest back into memory, preserving the key
// order found in the document.
func Parse(data []byte) (*Manifest, error) {
	m := New()
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return m, nil
}

type schemaDocument struct {
	Version       string            `json:"version" jsonschema:"description=The manifest format version,enum=1.0"`
	DefaultValues map[string]string `json:"defaultValues" jsonschema:"description=Default configuration values for the system container"`
}

func GetJsonSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{
		DoNotReference: true,
		Anonymous:      true,
	}

	schema := r.Reflect(&schemaDocument{})
	return schema
}
