package producttype

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Entry links a collection handle to a product type.
type Entry struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// Mapping is an ordered list of entries. The first entry whose collection a product
// belongs to wins.
type Mapping []Entry

type mappingFile struct {
	Types Mapping `yaml:"types"`
}

// ParseMapping decodes a mapping document. Entries without a code are rejected; entries
// without a name are named after their handle ("led-strips" becomes "Led Strips").
func ParseMapping(data []byte) (Mapping, error) {
	var doc mappingFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshaling product types: %w", err)
	}

	caser := cases.Title(language.English)
	for i, e := range doc.Types {
		e.Code = strings.TrimSpace(e.Code)
		if e.Code == "" {
			return nil, fmt.Errorf("product type %d has no code", i)
		}
		if strings.TrimSpace(e.Name) == "" {
			e.Name = caser.String(strings.NewReplacer("-", " ", "_", " ").Replace(e.Code))
		}
		doc.Types[i] = e
	}

	return doc.Types, nil
}

// LoadMapping reads and parses a mapping file.
func LoadMapping(path string) (Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading product types from %s: %w", path, err)
	}
	return ParseMapping(data)
}

// Resolve returns the type of the first entry whose code is among the collections.
func (m Mapping) Resolve(collections []string) (string, bool) {
	for _, e := range m {
		for _, c := range collections {
			if c == e.Code {
				return e.Name, true
			}
		}
	}
	return "", false
}

// SplitCollections splits a comma separated collection list and trims each handle.
func SplitCollections(raw string) []string {
	parts := strings.Split(raw, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
