// Package codec reads and writes roadmap documents. Every decode is checked
// against the roadmap JSON schema and the id uniqueness rules before a
// domain.Roadmap is produced.
package codec

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/alexanderramin/roadtrack/internal/domain"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed roadmap.schema.json
var schemaJSON string

const schemaURL = "roadmap.schema.json"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("adding roadmap schema: %w", err)
	}
	return compiler.Compile(schemaURL)
})

// Problem is a single validation failure located by a slash-separated path.
type Problem struct {
	Path    string
	Message string
}

func (p Problem) String() string {
	if p.Path == "" {
		return p.Message
	}
	return p.Path + ": " + p.Message
}

// InvalidDocumentError lists everything wrong with a roadmap document.
type InvalidDocumentError struct {
	Problems []Problem
}

func (e *InvalidDocumentError) Error() string {
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = p.String()
	}
	return "invalid roadmap document: " + strings.Join(parts, "; ")
}

// Decode parses and validates a roadmap document.
func Decode(r io.Reader) (*domain.Roadmap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading roadmap document: %w", err)
	}
	return DecodeBytes(data)
}

// DecodeBytes parses and validates a roadmap document held in memory.
func DecodeBytes(data []byte) (*domain.Roadmap, error) {
	schema, err := compiledSchema()
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing roadmap JSON: %w", err)
	}
	if err := schema.Validate(raw); err != nil {
		return nil, &InvalidDocumentError{Problems: schemaProblems(err)}
	}

	var rm domain.Roadmap
	if err := json.Unmarshal(data, &rm); err != nil {
		return nil, fmt.Errorf("decoding roadmap: %w", err)
	}
	if problems := checkIDs(&rm); len(problems) > 0 {
		return nil, &InvalidDocumentError{Problems: problems}
	}
	return &rm, nil
}

// Encode serializes a roadmap as compact JSON.
func Encode(rm *domain.Roadmap) ([]byte, error) {
	normalized := rm.Normalized()
	data, err := json.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("encoding roadmap: %w", err)
	}
	return data, nil
}

// Format selects the output encoding for Write.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported format %q (expected json or yaml)", s)
}

// Write renders a roadmap in the requested format for export.
func Write(w io.Writer, rm *domain.Roadmap, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rm); err != nil {
			return fmt.Errorf("encoding roadmap as yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		data, err := Encode(rm)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return fmt.Errorf("indenting roadmap: %w", err)
		}
		buf.WriteByte('\n')
		_, err = buf.WriteTo(w)
		return err
	}
	return fmt.Errorf("unsupported format %q", format)
}

func checkIDs(rm *domain.Roadmap) []Problem {
	var problems []Problem
	phaseSeen := make(map[int]bool, len(rm.Phases))
	for i, p := range rm.Phases {
		if phaseSeen[p.ID] {
			problems = append(problems, Problem{
				Path:    fmt.Sprintf("phases/%d/id", i),
				Message: fmt.Sprintf("duplicate phase id %d", p.ID),
			})
		}
		phaseSeen[p.ID] = true

		taskSeen := make(map[string]bool, len(p.Tasks))
		for j, t := range p.Tasks {
			if taskSeen[t.ID] {
				problems = append(problems, Problem{
					Path:    fmt.Sprintf("phases/%d/tasks/%d/id", i, j),
					Message: fmt.Sprintf("duplicate task id %q in phase %d", t.ID, p.ID),
				})
			}
			taskSeen[t.ID] = true
		}
	}
	return problems
}

func schemaProblems(err error) []Problem {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []Problem{{Message: err.Error()}}
	}
	var problems []Problem
	collectSchemaProblems(ve, &problems)
	return problems
}

func collectSchemaProblems(ve *jsonschema.ValidationError, out *[]Problem) {
	if len(ve.Causes) == 0 {
		*out = append(*out, Problem{
			Path:    strings.TrimPrefix(ve.InstanceLocation, "/"),
			Message: ve.Message,
		})
		return
	}
	for _, cause := range ve.Causes {
		collectSchemaProblems(cause, out)
	}
}
