package ddl

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// Load reads a JSON-with-comments DDL AST fixture from path and decodes
// it into a Node tree. Pass location.MustNewSourceID("file:"+path) (or
// similar) to Compile via WithSourceID if the resulting refs' spans
// should identify path as their source.
func Load(path string, opts ...Option) (*Node, error) {
	cfg := defaultConfig()
	applyOptions(cfg, opts)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	cfg.logger.Debug("loading ddl fixture", "path", path)
	return LoadBytes(content)
}

// LoadBytes decodes a JSON-with-comments DDL AST fixture already held
// in memory, stripping comments via jsonc.ToJSON before handing the
// result to encoding/json.
func LoadBytes(content []byte) (*Node, error) {
	clean := jsonc.ToJSON(content)
	var node Node
	if err := json.Unmarshal(clean, &node); err != nil {
		return nil, fmt.Errorf("decode ddl AST: %w", err)
	}
	return &node, nil
}

// LoadString is LoadBytes over a string, for inline fixtures in tests.
func LoadString(source string) (*Node, error) {
	return LoadBytes([]byte(source))
}
