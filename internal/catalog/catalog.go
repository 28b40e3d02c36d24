// Package catalog holds the interpretive text attached to chart placements.
//
// The tables ship embedded as YAML and may be replaced by a file on disk.
// Parse checks that every sign and mansion is covered in both fortnights, so
// lookups on a loaded Catalog only miss for out-of-range values.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"jyotish-service/internal/domain"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

// Role selects which of a sign's three descriptions to read.
type Role string

const (
	RoleSun       Role = "sun"
	RoleMoon      Role = "moon"
	RoleAscendant Role = "ascendant"
)

type SignText struct {
	Name      string `yaml:"name"`
	Element   string `yaml:"element"`
	Trait     string `yaml:"trait"`
	Sun       string `yaml:"sun"`
	Moon      string `yaml:"moon"`
	Ascendant string `yaml:"ascendant"`
}

type NakshatraText struct {
	Name  string `yaml:"name"`
	Trait string `yaml:"trait"`
}

// Bird is one of the five Pancha Pakshi birds.
type Bird struct {
	Name        string `yaml:"name"`
	Sanskrit    string `yaml:"sanskrit"`
	Element     string `yaml:"element"`
	Description string `yaml:"description"`
}

type Element struct {
	Name       string   `yaml:"name"`
	StringType string   `yaml:"string_type"`
	Phrases    []string `yaml:"phrases"`
}

type StringType struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type rulerEntry struct {
	Bird       string   `yaml:"bird"`
	Nakshatras []string `yaml:"nakshatras"`
}

type document struct {
	Signs        []SignText              `yaml:"signs"`
	Nakshatras   []NakshatraText         `yaml:"nakshatras"`
	Birds        []Bird                  `yaml:"birds"`
	Rulers       map[string][]rulerEntry `yaml:"rulers"`
	Elements     []Element               `yaml:"elements"`
	StringTypes  []StringType            `yaml:"string_types"`
	Significance string                  `yaml:"significance"`
}

// Catalog is immutable after Parse and safe for concurrent use.
type Catalog struct {
	signs       map[domain.Sign]SignText
	nakshatras  map[domain.Nakshatra]NakshatraText
	birds       map[string]Bird
	birdOrder   []Bird
	rulers      map[domain.Paksha]map[domain.Nakshatra]string
	elements    map[string]Element
	stringTypes map[string]StringType
	stringOrder []StringType

	significance string
}

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return Parse(embedded)
})

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return defaultCatalog()
}

// Open loads the catalog at path, or the embedded one when path is empty.
func Open(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: read %q: %w", path, err)
	}

	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("open catalog %q: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc document

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse catalog: decode yaml: %w", err)
	}

	c := &Catalog{
		signs:        make(map[domain.Sign]SignText, len(doc.Signs)),
		nakshatras:   make(map[domain.Nakshatra]NakshatraText, len(doc.Nakshatras)),
		birds:        make(map[string]Bird, len(doc.Birds)),
		birdOrder:    doc.Birds,
		rulers:       make(map[domain.Paksha]map[domain.Nakshatra]string, 2),
		elements:     make(map[string]Element, len(doc.Elements)),
		stringTypes:  make(map[string]StringType, len(doc.StringTypes)),
		stringOrder:  doc.StringTypes,
		significance: doc.Significance,
	}

	for _, s := range doc.StringTypes {
		if s.Name == "" || s.Description == "" {
			return nil, errors.New("parse catalog: string type needs name and description")
		}
		c.stringTypes[s.Name] = s
	}

	for _, e := range doc.Elements {
		if _, ok := c.stringTypes[e.StringType]; !ok {
			return nil, fmt.Errorf("parse catalog: element %q: unknown string type %q", e.Name, e.StringType)
		}
		if len(e.Phrases) == 0 {
			return nil, fmt.Errorf("parse catalog: element %q has no phrases", e.Name)
		}
		c.elements[e.Name] = e
	}

	for _, b := range doc.Birds {
		if _, ok := c.elements[b.Element]; !ok {
			return nil, fmt.Errorf("parse catalog: bird %q: unknown element %q", b.Name, b.Element)
		}
		c.birds[b.Name] = b
	}

	for _, s := range doc.Signs {
		sign, ok := domain.ParseSign(s.Name)
		if !ok {
			return nil, fmt.Errorf("parse catalog: unknown sign %q", s.Name)
		}
		if _, dup := c.signs[sign]; dup {
			return nil, fmt.Errorf("parse catalog: sign %q listed twice", s.Name)
		}
		if _, ok := c.elements[s.Element]; !ok {
			return nil, fmt.Errorf("parse catalog: sign %q: unknown element %q", s.Name, s.Element)
		}
		if s.Trait == "" || s.Sun == "" || s.Moon == "" || s.Ascendant == "" {
			return nil, fmt.Errorf("parse catalog: sign %q is missing text", s.Name)
		}
		c.signs[sign] = s
	}
	for _, s := range domain.AllSigns() {
		if _, ok := c.signs[s]; !ok {
			return nil, fmt.Errorf("parse catalog: sign %s missing", s)
		}
	}

	for _, n := range doc.Nakshatras {
		nak, ok := domain.ParseNakshatra(n.Name)
		if !ok {
			return nil, fmt.Errorf("parse catalog: unknown nakshatra %q", n.Name)
		}
		c.nakshatras[nak] = n
	}
	for _, n := range domain.AllNakshatras() {
		if _, ok := c.nakshatras[n]; !ok {
			return nil, fmt.Errorf("parse catalog: nakshatra %s missing", n)
		}
	}

	if err := c.loadRulers(doc.Rulers); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	return c, nil
}

// loadRulers requires each fortnight to assign every mansion exactly one bird.
func (c *Catalog) loadRulers(rulers map[string][]rulerEntry) error {
	for name, entries := range rulers {
		p, ok := domain.ParsePaksha(name)
		if !ok {
			return fmt.Errorf("rulers: unknown paksha %q", name)
		}

		table := make(map[domain.Nakshatra]string, 27)
		for _, e := range entries {
			if _, ok := c.birds[e.Bird]; !ok {
				return fmt.Errorf("rulers %s: unknown bird %q", name, e.Bird)
			}
			for _, n := range e.Nakshatras {
				nak, ok := domain.ParseNakshatra(n)
				if !ok {
					return fmt.Errorf("rulers %s: unknown nakshatra %q", name, n)
				}
				if prev, dup := table[nak]; dup {
					return fmt.Errorf("rulers %s: %s assigned to both %s and %s", name, nak, prev, e.Bird)
				}
				table[nak] = e.Bird
			}
		}
		c.rulers[p] = table
	}

	for _, p := range []domain.Paksha{domain.Shukla, domain.Krishna} {
		table, ok := c.rulers[p]
		if !ok {
			return fmt.Errorf("rulers: %s missing", p)
		}
		for _, n := range domain.AllNakshatras() {
			if _, ok := table[n]; !ok {
				return fmt.Errorf("rulers %s: %s has no bird", p, n)
			}
		}
	}

	return nil
}

func (c *Catalog) Sign(s domain.Sign) (SignText, bool) {
	t, ok := c.signs[s]
	return t, ok
}

// SignDescription returns the sign's text for one of the three roles.
func (c *Catalog) SignDescription(s domain.Sign, role Role) (string, bool) {
	t, ok := c.signs[s]
	if !ok {
		return "", false
	}

	switch role {
	case RoleSun:
		return t.Sun, true
	case RoleMoon:
		return t.Moon, true
	case RoleAscendant:
		return t.Ascendant, true
	}
	return "", false
}

func (c *Catalog) Nakshatra(n domain.Nakshatra) (NakshatraText, bool) {
	t, ok := c.nakshatras[n]
	return t, ok
}

// RulingBird returns the bird governing a mansion in the given fortnight.
func (c *Catalog) RulingBird(p domain.Paksha, n domain.Nakshatra) (Bird, bool) {
	name, ok := c.rulers[p][n]
	if !ok {
		return Bird{}, false
	}
	return c.Bird(name)
}

func (c *Catalog) Bird(name string) (Bird, bool) {
	b, ok := c.birds[name]
	return b, ok
}

// Birds lists the birds in catalog order.
func (c *Catalog) Birds() []Bird {
	return append([]Bird(nil), c.birdOrder...)
}

func (c *Catalog) Element(name string) (Element, bool) {
	e, ok := c.elements[name]
	return e, ok
}

func (c *Catalog) StringType(name string) (StringType, bool) {
	s, ok := c.stringTypes[name]
	return s, ok
}

// StringTypes lists the string types in catalog order.
func (c *Catalog) StringTypes() []StringType {
	return append([]StringType(nil), c.stringOrder...)
}

// Significance explains the roles of the Sun, Moon and Ascendant signs.
func (c *Catalog) Significance() string {
	return c.significance
}
