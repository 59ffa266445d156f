package modelfile

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/archiview/pkg/errors"
)

// Format is a model file syntax.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Decoder decodes one format into a File.
type Decoder interface {
	Decode(r io.Reader, f *File) error
}

type tomlDecoder struct{}

func (tomlDecoder) Decode(r io.Reader, f *File) error {
	md, err := toml.NewDecoder(r).Decode(f)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.New(errors.ErrCodeInvalidFormat, "unknown key %q", undecoded[0].String())
	}
	return nil
}

type yamlDecoder struct{}

func (yamlDecoder) Decode(r io.Reader, f *File) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && err != io.EOF {
		return err
	}
	return nil
}

var decoders = map[Format]Decoder{
	FormatTOML: tomlDecoder{},
	FormatYAML: yamlDecoder{},
}

// FormatFor returns the format implied by a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported model file %q (use .toml, .yaml or .yml)", path)
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown model format %q", s)
}

// Decode reads a single file without resolving includes.
func Decode(r io.Reader, format Format) (*File, error) {
	dec, ok := decoders[format]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown model format %q", format)
	}
	var f File
	if err := dec.Decode(r, &f); err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s", format)
	}
	return &f, nil
}

// Load reads path and everything it includes.
func Load(path string) (*File, error) {
	return load(path, map[string]bool{})
}

func load(path string, loading map[string]bool) (*File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", path)
	}
	if loading[abs] {
		return nil, errors.New(errors.ErrCodeInvalidInput, "include cycle through %s", path)
	}
	loading[abs] = true
	defer delete(loading, abs)

	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "model file %s not found", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer fh.Close()

	f, err := Decode(fh, format)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}

	// Includes are merged in reverse so the first include ends up first.
	dir := filepath.Dir(path)
	for i := len(f.Include) - 1; i >= 0; i-- {
		inc := f.Include[i]
		if err := errors.ValidatePath(inc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "%s: include %q", path, inc)
		}
		sub, err := load(filepath.Join(dir, inc), loading)
		if err != nil {
			return nil, err
		}
		f.merge(sub)
	}
	f.Include = nil
	return f, nil
}
