package lexicon

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML lexicon definition from path and builds it
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	return Parse(data)
}

// Parse builds a lexicon from YAML bytes. Unknown fields are rejected.
func Parse(data []byte) (*Lexicon, error) {
	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("%w: decode yaml: %v", ErrInvalidLexicon, err)
	}
	return New(def)
}

// LoadOrDefault loads the lexicon at path, or returns the built-in lexicon when path is empty
func LoadOrDefault(path string) (*Lexicon, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Export writes the lexicon definition as YAML
func (l *Lexicon) Export(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(l.Definition()); err != nil {
		return fmt.Errorf("encode lexicon: %w", err)
	}
	return enc.Close()
}
