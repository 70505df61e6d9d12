package loader

import (
	"context"
	"errors"
	"io/fs"

	"github.com/goliatone/go-luatable/pkg/source"
	"github.com/goliatone/go-luatable/pkg/table"
)

// Loader implements source.Loader for delimited text read from disk or an
// fs.FS. Construction helpers live in the top-level luatable package.
type Loader struct {
	fs    fs.FS
	warn  func(*table.MalformedRowError)
	comma rune
}

// Ensure the implementation satisfies the public interface.
var _ source.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options source.LoaderOptions) *Loader {
	comma := options.Comma
	if comma == 0 {
		comma = ','
	}
	return &Loader{
		fs:    options.FileSystem,
		warn:  options.Warn,
		comma: comma,
	}
}

// Load reads src fully and parses it against schema.
func (l *Loader) Load(ctx context.Context, src source.Source, schema table.Schema) (source.Result, error) {
	if src == nil {
		return source.Result{}, errors.New("source loader: source is nil")
	}
	if err := schema.Validate(); err != nil {
		return source.Result{}, err
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case source.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case source.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	default:
		err = errors.New("source loader: unsupported source kind")
	}
	if err != nil {
		return source.Result{}, err
	}

	return parse(src.Location(), data, schema, l.comma, l.warn)
}
