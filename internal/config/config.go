// Package config loads flag defaults from a geiger configuration file.
//
// A configuration file is either TOML (geiger.toml) or YAML (geiger.yaml,
// geiger.yml). Keys are the long flag names of the tree command:
//
//	format = "{p} ({l})"
//	include-tests = true
//	output-format = "Ascii"
//	color = "never"
//
// File values only replace flag defaults; flags given on the command line
// always win.
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/geiger/pkg/errors"
)

// FileNames lists the configuration file names searched for, in order.
var FileNames = []string{"geiger.toml", "geiger.yaml", "geiger.yml"}

// File is the content of a configuration file. Nil fields were not set.
type File struct {
	All          *bool   `toml:"all" yaml:"all"`
	Invert       *bool   `toml:"invert" yaml:"invert"`
	Format       *string `toml:"format" yaml:"format"`
	IncludeTests *bool   `toml:"include-tests" yaml:"include-tests"`
	PrefixDepth  *bool   `toml:"prefix-depth" yaml:"prefix-depth"`
	NoIndent     *bool   `toml:"no-indent" yaml:"no-indent"`
	OutputFormat *string `toml:"output-format" yaml:"output-format"`
	Color        *string `toml:"color" yaml:"color"`

	// Path is the file the values were read from.
	Path string `toml:"-" yaml:"-"`
}

// Find locates a configuration file by walking up from startDir.
// It returns "" and no error when there is none.
func Find(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Load reads the configuration file at path. The format is chosen by the
// file extension.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	f := &File{Path: path}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = decodeTOML(data, f)
	case ".yaml", ".yml":
		err = decodeYAML(data, f)
	default:
		err = fmt.Errorf("unsupported config file extension %q", ext)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config file %s", path)
	}
	return f, nil
}

func decodeTOML(data []byte, f *File) error {
	md, err := toml.Decode(string(data), f)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return nil
}

func decodeYAML(data []byte, f *File) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && !stderrors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Values returns the set values keyed by flag name.
func (f *File) Values() map[string]string {
	vals := make(map[string]string)
	setBool := func(name string, v *bool) {
		if v != nil {
			vals[name] = strconv.FormatBool(*v)
		}
	}
	setString := func(name string, v *string) {
		if v != nil {
			vals[name] = *v
		}
	}
	setBool("all", f.All)
	setBool("invert", f.Invert)
	setString("format", f.Format)
	setBool("include-tests", f.IncludeTests)
	setBool("prefix-depth", f.PrefixDepth)
	setBool("no-indent", f.NoIndent)
	setString("output-format", f.OutputFormat)
	setString("color", f.Color)
	return vals
}

// Apply sets every flag in flags that the file configures and the command
// line did not. Flags unknown to flags are ignored. A value the flag
// rejects is an ErrCodeInvalidConfig error.
func (f *File) Apply(flags *pflag.FlagSet) error {
	vals := f.Values()
	var firstErr error
	flags.VisitAll(func(fl *pflag.Flag) {
		v, ok := vals[fl.Name]
		if !ok || fl.Changed || firstErr != nil {
			return
		}
		if err := fl.Value.Set(v); err != nil {
			firstErr = errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s: %s", f.Path, fl.Name)
		}
	})
	return firstErr
}
