// Package contextfile loads the conversion contexts used by the lambda demo
// driver from a YAML document. Either section may be omitted; callers fall
// back to their own tables for the missing half.
package contextfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gitrdm/gokanlambda/pkg/lambda"
)

// ErrNegative is returned when a document assigns a negative slot or level.
var ErrNegative = errors.New("negative slot or level")

// File holds the contexts found in a document; a nil field means the
// section was absent.
type File struct {
	Named    *lambda.NameContext
	Nameless *lambda.IndexContext
}

type namedSection struct {
	Free   map[string]int `yaml:"free"`
	Levels map[string]int `yaml:"levels"`
}

type namelessSection struct {
	Free   map[int]string `yaml:"free"`
	Levels map[int]string `yaml:"levels"`
}

type document struct {
	Named    *namedSection    `yaml:"named"`
	Nameless *namelessSection `yaml:"nameless"`
}

// Load reads and decodes the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("contextfile: %w", err)
	}
	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("contextfile: %s: %w", path, err)
	}
	return f, nil
}

// Decode reads one YAML document from r. Unknown keys are rejected.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	f := &File{}
	if s := doc.Named; s != nil {
		for name, v := range s.Free {
			if v < 0 {
				return nil, fmt.Errorf("%w: named.free[%s] = %d", ErrNegative, name, v)
			}
		}
		for name, v := range s.Levels {
			if v < 0 {
				return nil, fmt.Errorf("%w: named.levels[%s] = %d", ErrNegative, name, v)
			}
		}
		f.Named = &lambda.NameContext{Free: s.Free, Levels: s.Levels}
	}
	if s := doc.Nameless; s != nil {
		for k := range s.Free {
			if k < 0 {
				return nil, fmt.Errorf("%w: nameless.free key %d", ErrNegative, k)
			}
		}
		for k := range s.Levels {
			if k < 0 {
				return nil, fmt.Errorf("%w: nameless.levels key %d", ErrNegative, k)
			}
		}
		f.Nameless = &lambda.IndexContext{Free: s.Free, Levels: s.Levels}
	}
	return f, nil
}
