// Package docgen generates the synthetic XML documents stored in archives.
package docgen

import (
	"encoding/xml"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Document is one generated record: a root element carrying id and level
// variables plus a batch of named objects. Documents are immutable once
// generated and exist only in memory or inside an archive.
type Document struct {
	XMLName xml.Name  `xml:"root"`
	Vars    []Var     `xml:"var"`
	Objects ObjectSet `xml:"objects"`
}

// Var is a named scalar variable on the document root.
type Var struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// ObjectSet wraps the document's object children.
type ObjectSet struct {
	Objects []Object `xml:"object"`
}

// Object is a single named child entry.
type Object struct {
	Name string `xml:"name,attr"`
}

// Var returns the value of the named root variable and whether it is present.
func (d Document) Var(name string) (string, bool) {
	for _, v := range d.Vars {
		if v.Name == name {
			return v.Value, true
		}
	}
	return "", false
}

// Generation bounds, inclusive.
const (
	minLevel   = 1
	maxLevel   = 100
	minObjects = 1
	maxObjects = 10
)

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Config configures document generation.
type Config struct {
	// Seed for reproducible generation. 0 = derive from the clock.
	Seed int64
}

// Generator produces random documents. Not safe for concurrent use;
// give each worker its own instance.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a new document generator.
func NewGenerator(cfg Config) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Document returns one freshly generated document. The id is a UUID drawn
// from the generator's rng, so a fixed seed reproduces the full stream.
func (g *Generator) Document() Document {
	id := uuid.Must(uuid.NewRandomFromReader(g.rng))

	objects := make([]Object, minObjects+g.rng.Intn(maxObjects-minObjects+1))
	for i := range objects {
		objects[i] = Object{Name: g.letter()}
	}

	return Document{
		Vars: []Var{
			{Name: "id", Value: id.String()},
			{Name: "level", Value: strconv.Itoa(minLevel + g.rng.Intn(maxLevel-minLevel+1))},
		},
		Objects: ObjectSet{Objects: objects},
	}
}

// MarshalDocument generates one document and serializes it to its wire form.
func (g *Generator) MarshalDocument() ([]byte, error) {
	return xml.MarshalIndent(g.Document(), "", "  ")
}

func (g *Generator) letter() string {
	return string(letters[g.rng.Intn(len(letters))])
}
