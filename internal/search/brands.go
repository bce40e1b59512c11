package search

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed brands.yaml
var defaultBrandsYAML []byte

var ErrEmptyBrandTable = errors.New("brand table has no entries")

// BrandEntry es una marca canónica con sus alias en minúsculas
type BrandEntry struct {
	Code    string   `yaml:"code" json:"code"`
	Group   string   `yaml:"group,omitempty" json:"group,omitempty"`
	Aliases []string `yaml:"aliases" json:"aliases"`
}

// BrandTable es la tabla de sinónimos de marcas; de solo lectura tras cargarse
type BrandTable struct {
	version int
	entries []BrandEntry
	byCode  map[string]int
}

type brandFile struct {
	Version int          `yaml:"version"`
	Brands  []BrandEntry `yaml:"brands"`
}

// DefaultBrandTable carga la tabla embebida en el binario
func DefaultBrandTable() *BrandTable {
	t, err := ParseBrandTable(defaultBrandsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded brand table: %v", err))
	}
	return t
}

// LoadBrandTableFile carga una tabla desde disco; vacío = tabla embebida
func LoadBrandTableFile(path string) (*BrandTable, error) {
	if path == "" {
		return DefaultBrandTable(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open brand table: %w", err)
	}
	defer f.Close()
	return LoadBrandTable(f)
}

func LoadBrandTable(r io.Reader) (*BrandTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read brand table: %w", err)
	}
	return ParseBrandTable(data)
}

func ParseBrandTable(data []byte) (*BrandTable, error) {
	var file brandFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse brand table: %w", err)
	}
	if len(file.Brands) == 0 {
		return nil, ErrEmptyBrandTable
	}

	t := &BrandTable{
		version: file.Version,
		entries: make([]BrandEntry, 0, len(file.Brands)),
		byCode:  make(map[string]int, len(file.Brands)),
	}
	for _, e := range file.Brands {
		code := strings.TrimSpace(e.Code)
		if code == "" {
			return nil, fmt.Errorf("parse brand table: entry without code")
		}
		if _, dup := t.byCode[code]; dup {
			return nil, fmt.Errorf("parse brand table: duplicate code %q", code)
		}
		aliases := make([]string, 0, len(e.Aliases))
		for _, a := range e.Aliases {
			if a = strings.ToLower(strings.TrimSpace(a)); a != "" {
				aliases = append(aliases, a)
			}
		}
		t.byCode[code] = len(t.entries)
		t.entries = append(t.entries, BrandEntry{Code: code, Group: e.Group, Aliases: aliases})
	}
	return t, nil
}

func (t *BrandTable) Version() int { return t.version }

func (t *BrandTable) Len() int { return len(t.entries) }

// Entries devuelve una copia de las entradas en orden de definición
func (t *BrandTable) Entries() []BrandEntry {
	out := make([]BrandEntry, len(t.entries))
	for i, e := range t.entries {
		e.Aliases = append([]string(nil), e.Aliases...)
		out[i] = e
	}
	return out
}

// Aliases devuelve los alias de un código canónico
func (t *BrandTable) Aliases(code string) []string {
	i, ok := t.byCode[code]
	if !ok {
		return nil
	}
	return append([]string(nil), t.entries[i].Aliases...)
}

// CodesMatching devuelve los códigos con algún alias que contiene el término
func (t *BrandTable) CodesMatching(term string) map[string]bool {
	codes := map[string]bool{}
	if term == "" {
		return codes
	}
	for _, e := range t.entries {
		for _, a := range e.Aliases {
			if strings.Contains(a, term) {
				codes[e.Code] = true
				break
			}
		}
	}
	return codes
}

// Resolve traduce una etiqueta libre ("Stone Island", "ysl") a su código canónico;
// si no se reconoce devuelve la etiqueta tal cual
func (t *BrandTable) Resolve(label string) string {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return trimmed
	}
	if _, ok := t.byCode[trimmed]; ok {
		return trimmed
	}
	lower := strings.ToLower(trimmed)
	asCode := strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_").Replace(trimmed))
	for _, e := range t.entries {
		if e.Code == asCode {
			return e.Code
		}
		for _, a := range e.Aliases {
			if a == lower {
				return e.Code
			}
		}
	}
	return trimmed
}

// AliasCode devuelve el código cuya lista de alias contiene exactamente la palabra
func (t *BrandTable) AliasCode(word string) (string, bool) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return "", false
	}
	for _, e := range t.entries {
		for _, a := range e.Aliases {
			if a == word {
				return e.Code, true
			}
		}
	}
	return "", false
}
