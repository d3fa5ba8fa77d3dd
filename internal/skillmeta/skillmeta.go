package skillmeta

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FileName is the metadata file probed inside a skill checkout.
const FileName = "skill.yaml"

//go:embed schema/skill.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// Meta holds the parsed metadata values.
type Meta struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Author      string   `yaml:"author"`
	Version     string   `yaml:"version"`
	Tags        []string `yaml:"tags"`
}

// Issue is a single schema validation error.
type Issue struct {
	Path    string // instance location, e.g. "/tags/0"
	Message string
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("skill.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("skill.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Load reads skill.yaml from a checkout directory. Returns (nil, nil, nil)
// when the file does not exist.
func Load(dir string) (*Meta, []Issue, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if os.IsNotExist(err) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", FileName, err)
	}
	return Parse(data)
}

// Parse decodes metadata YAML and validates it against the embedded schema.
// Schema violations come back as issues; the meta is also returned when it
// still decodes despite them. The error return is for malformed YAML or
// schema compilation problems.
func Parse(data []byte) (*Meta, []Issue, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	issues, err := validate(raw)
	if err != nil {
		return nil, nil, err
	}

	var meta Meta
	if err := yaml.Unmarshal(data, &meta); err != nil {
		// A type mismatch the schema already flagged also breaks the typed
		// decode; the issues are the useful signal, so surface them.
		if len(issues) > 0 {
			return nil, issues, nil
		}
		return nil, nil, fmt.Errorf("decoding %s: %w", FileName, err)
	}
	return &meta, issues, nil
}

func validate(raw interface{}) ([]Issue, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil, nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	var issues []Issue
	collectIssues(validationErr, &issues)
	if len(issues) == 0 {
		issues = []Issue{{Message: validationErr.Error()}}
	}
	return issues, nil
}

// collectIssues walks the error tree and keeps leaf-level issues that name
// a concrete keyword; container errors (allOf, $ref) are noise.
func collectIssues(ve *jsonschema.ValidationError, issues *[]Issue) {
	if len(ve.Causes) == 0 {
		keyword := ""
		if ve.ErrorKind != nil {
			kwPath := ve.ErrorKind.KeywordPath()
			if len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
		}
		if keyword == "" || keyword == "allOf" || keyword == "oneOf" || keyword == "$ref" {
			return
		}

		path := ""
		if len(ve.InstanceLocation) > 0 {
			path = "/" + strings.Join(ve.InstanceLocation, "/")
		}

		msg := ""
		if ve.ErrorKind != nil {
			msg = ve.ErrorKind.LocalizedString(printer)
		}

		*issues = append(*issues, Issue{Path: path, Message: msg})
		return
	}

	for _, cause := range ve.Causes {
		collectIssues(cause, issues)
	}
}
