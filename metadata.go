package fa2tex

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-fa2tex/internal/yamlutil"
)

// Default descriptor location inside a release tree.
const (
	DefaultMetadataDir  = "metadata"
	DefaultMetadataFile = "icons.yml"
)

// MetadataOptions locate the icon descriptor inside an extracted tree.
type MetadataOptions struct {
	Dir  string // directory name searched for, default "metadata"
	File string // descriptor file name, default "icons.yml"
}

func (o MetadataOptions) withDefaults() MetadataOptions {
	if o.Dir == "" {
		o.Dir = DefaultMetadataDir
	}
	if o.File == "" {
		o.File = DefaultMetadataFile
	}
	return o
}

// FindDescriptor returns the path of the icon descriptor under root.
// Every directory named opts.Dir that holds opts.File is a candidate; the
// shallowest wins, ties going to the lexically first path.
func FindDescriptor(root string, opts MetadataOptions, logger *slog.Logger) (string, error) {
	opts = opts.withDefaults()
	logger = orDiscard(logger)

	var candidates []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || d.Name() != opts.Dir {
			return nil
		}
		descriptor := filepath.Join(path, opts.File)
		if info, err := os.Stat(descriptor); err == nil && info.Mode().IsRegular() {
			candidates = append(candidates, descriptor)
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("searching %s: %w", root, err)
	}

	if len(candidates) == 0 {
		return "", &MetadataNotFoundError{Path: filepath.Join(root, opts.Dir, opts.File)}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return depth(candidates[i]) < depth(candidates[j])
	})
	if len(candidates) > 1 && depth(candidates[0]) == depth(candidates[1]) {
		logger.Warn("several icon descriptors found, using the first",
			"using", candidates[0], "also", candidates[1])
	}

	return candidates[0], nil
}

func depth(path string) int {
	return strings.Count(filepath.ToSlash(filepath.Clean(path)), "/")
}

// LoadCatalog locates and parses the icon descriptor under root.
func LoadCatalog(root string, opts MetadataOptions, logger *slog.Logger) (*IconCatalog, error) {
	path, err := FindDescriptor(root, opts, logger)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path found inside the extracted tree
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MetadataNotFoundError{Path: path}
		}
		return nil, &MetadataParseError{Path: path, Err: err}
	}

	return ParseCatalog(data, path, logger)
}

// ParseCatalog parses an icon descriptor: a mapping of icon identifiers to
// objects carrying at least "unicode" and "styles". Unknown fields are
// ignored and unknown style labels are dropped with a warning. The catalog
// keeps the descriptor's key order. path is only used in error messages.
func ParseCatalog(data []byte, path string, logger *slog.Logger) (*IconCatalog, error) {
	logger = orDiscard(logger)

	doc, err := yamlutil.UnmarshalOrdered(data)
	if err != nil {
		return nil, &MetadataParseError{Path: path, Err: err}
	}

	unknownStyles := make(map[string]int)
	entries := make([]IconEntry, 0, len(doc))
	for _, item := range doc {
		id := scalarString(item.Key)
		entry, err := parseIconEntry(id, item.Value, unknownStyles)
		if err != nil {
			return nil, &MetadataParseError{Path: path, Key: id, Err: err}
		}
		entries = append(entries, entry)
	}

	labels := make([]string, 0, len(unknownStyles))
	for label := range unknownStyles {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		logger.Warn("ignoring unknown style", "style", label, "icons", unknownStyles[label])
	}

	catalog, err := NewIconCatalog(entries)
	if err != nil {
		return nil, &MetadataParseError{Path: path, Err: err}
	}

	logger.Debug("loaded icon metadata", "path", path, "icons", catalog.Len())
	return catalog, nil
}

func parseIconEntry(id string, value any, unknownStyles map[string]int) (IconEntry, error) {
	fields, ok := value.(yamlutil.MapSlice)
	if !ok {
		return IconEntry{}, fmt.Errorf("entry is %T, want a mapping", value)
	}

	entry := IconEntry{ID: id, Label: id}

	if v, ok := yamlutil.Lookup(fields, "label"); ok && v != nil {
		if label := scalarString(v); label != "" {
			entry.Label = label
		}
	}

	raw, ok := yamlutil.Lookup(fields, "unicode")
	if !ok || raw == nil {
		return IconEntry{}, errors.New("missing unicode")
	}
	cp, err := parseCodePoint(scalarString(raw))
	if err != nil {
		return IconEntry{}, err
	}
	entry.Unicode = cp

	styles, err := stringList(fields, "styles")
	if err != nil {
		return IconEntry{}, err
	}
	for _, label := range styles {
		s, ok := ParseStyle(label)
		if !ok {
			unknownStyles[label]++
			continue
		}
		entry.Styles = entry.Styles.With(s)
	}

	free, err := stringList(fields, "free")
	if err != nil {
		return IconEntry{}, err
	}
	if _, declared := yamlutil.Lookup(fields, "free"); declared {
		var set StyleSet
		for _, label := range free {
			if s, ok := ParseStyle(label); ok {
				set = set.With(s)
			}
		}
		entry.Free = set.Intersect(entry.Styles)
	} else {
		for _, s := range entry.Styles.Styles() {
			if !s.ProOnly() {
				entry.Free = entry.Free.With(s)
			}
		}
	}

	categories, err := stringList(fields, "categories")
	if err != nil {
		return IconEntry{}, err
	}
	entry.Categories = categories

	return entry, nil
}

// parseCodePoint reads a hexadecimal code point such as "f164".
func parseCodePoint(s string) (rune, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	if s == "" {
		return 0, errors.New("empty unicode")
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid unicode %q", s)
	}
	r := rune(n)
	if r == 0 || !utf8.ValidRune(r) {
		return 0, fmt.Errorf("invalid unicode %q", s)
	}
	return r, nil
}

// stringList reads an optional sequence of scalars.
func stringList(fields yamlutil.MapSlice, key string) ([]string, error) {
	v, ok := yamlutil.Lookup(fields, key)
	if !ok || v == nil {
		return nil, nil
	}
	seq, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s is %T, want a list", key, v)
	}
	out := make([]string, 0, len(seq))
	for _, item := range seq {
		out = append(out, scalarString(item))
	}
	return out, nil
}

// scalarString renders a decoded YAML scalar as text. Numeric-looking
// values such as the code point 30 or the icon key 500 decode as numbers.
func scalarString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
