package corpus

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/questions.json
var embeddedQuestions []byte

// Question is an immutable text prompt. Index is its stable position in the
// corpus and serves as its identity.
type Question struct {
	Index int
	Text  string
}

// Corpus is the ordered, read-only list of candidate questions.
type Corpus struct {
	questions []Question
}

// New builds a corpus from raw prompts, preserving order.
func New(texts []string) *Corpus {
	qs := make([]Question, len(texts))
	for i, t := range texts {
		qs[i] = Question{Index: i, Text: t}
	}
	return &Corpus{questions: qs}
}

// Len returns the number of questions in the corpus.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.questions)
}

// Questions returns a copy of all questions in corpus order.
func (c *Corpus) Questions() []Question {
	if c == nil {
		return nil
	}
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// Load reads a corpus from path. An empty path loads the embedded default.
// JSON and YAML files are accepted; both must be a flat list of strings.
func Load(path string) (*Corpus, error) {
	if path == "" {
		return parseJSON(embeddedQuestions)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(data)
	case ".json", "":
		return parseJSON(data)
	default:
		return nil, fmt.Errorf("unsupported corpus format %q", filepath.Ext(path))
	}
}

func parseJSON(data []byte) (*Corpus, error) {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return fromDocument(doc)
}

func parseYAML(data []byte) (*Corpus, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	// Round-trip through JSON so the validator sees JSON-native types.
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("convert YAML: %w", err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("convert YAML: %w", err)
	}
	return fromDocument(doc)
}

func fromDocument(doc any) (*Corpus, error) {
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	items, _ := doc.([]any)
	texts := make([]string, 0, len(items))
	for _, it := range items {
		texts = append(texts, it.(string))
	}
	return New(texts), nil
}
