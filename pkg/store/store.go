package store

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/arthur-debert/pypath/pkg/errors"
	"github.com/arthur-debert/pypath/pkg/filesystem"
	"github.com/arthur-debert/pypath/pkg/logging"
	"github.com/arthur-debert/pypath/pkg/paths"
	"github.com/arthur-debert/pypath/pkg/searchpath"
)

const (
	// DefaultFileMode is used for the path file when Options.FileMode is zero
	DefaultFileMode fs.FileMode = 0644

	tempSuffix = ".tmp"
)

// Entry is a path list item with its 0-based position.
type Entry struct {
	Index int    `json:"index"`
	Path  string `json:"path"`
}

// Options configures a Store.
type Options struct {
	// FS defaults to the OS filesystem.
	FS filesystem.FS

	// PathFile is the backing file. Relative paths are made absolute.
	PathFile string

	// Getwd supplies the working directory for empty and relative
	// arguments. Defaults to os.Getwd.
	Getwd func() (string, error)

	// Sink is told about every successful add and delete. Defaults to a
	// no-op sink.
	Sink searchpath.Sink

	// AtomicWrite writes a temporary sibling file and renames it over the
	// path file.
	AtomicWrite bool

	// FileMode defaults to DefaultFileMode.
	FileMode fs.FileMode
}

// Store loads, mutates and saves the path list.
type Store struct {
	fs       filesystem.FS
	pathFile string
	getwd    func() (string, error)
	sink     searchpath.Sink
	atomic   bool
	mode     fs.FileMode
}

// New creates a Store and touches the path file into existence if it is
// missing.
func New(opts Options) (*Store, error) {
	s := &Store{
		fs:     opts.FS,
		getwd:  opts.Getwd,
		sink:   opts.Sink,
		atomic: opts.AtomicWrite,
		mode:   opts.FileMode,
	}
	if s.fs == nil {
		s.fs = filesystem.NewOS()
	}
	if s.getwd == nil {
		s.getwd = os.Getwd
	}
	if s.sink == nil {
		s.sink = searchpath.NopSink()
	}
	if s.mode == 0 {
		s.mode = DefaultFileMode
	}

	if opts.PathFile == "" {
		return nil, errors.New(errors.ErrInvalidInput, "path file location is required")
	}
	if filepath.IsAbs(opts.PathFile) {
		s.pathFile = filepath.Clean(opts.PathFile)
	} else {
		cwd, err := s.cwd()
		if err != nil {
			return nil, err
		}
		s.pathFile = paths.Normalize(opts.PathFile, cwd)
	}

	if err := s.touch(); err != nil {
		return nil, err
	}
	return s, nil
}

// PathFile returns the absolute location of the backing file.
func (s *Store) PathFile() string {
	return s.pathFile
}

func (s *Store) touch() error {
	info, err := s.fs.Stat(s.pathFile)
	if err == nil {
		if info.IsDir() {
			return errors.Newf(errors.ErrStorage, "path file %s is a directory", s.pathFile)
		}
		return nil
	}

	logger := logging.GetLogger("store")
	logger.Debug().Str("path", s.pathFile).Msg("Creating empty path file")

	if err := s.fs.MkdirAll(filepath.Dir(s.pathFile), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory for %s", s.pathFile)
	}
	if err := s.fs.WriteFile(s.pathFile, nil, s.mode); err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "failed to create path file %s", s.pathFile)
	}
	return nil
}

// Load reads the path list. Lines are trimmed and blank lines dropped.
func (s *Store) Load() ([]string, error) {
	data, err := s.fs.ReadFile(s.pathFile)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStorage, "failed to read path file %s", s.pathFile)
	}

	var list []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		list = append(list, line)
	}
	return list, nil
}

// Save overwrites the path file with one entry per line.
func (s *Store) Save(list []string) error {
	logger := logging.GetLogger("store")
	done := logging.LogOperationStart(logger, "save")
	defer done()

	data := []byte(strings.Join(list, "\n"))

	if !s.atomic {
		if err := s.fs.WriteFile(s.pathFile, data, s.mode); err != nil {
			return errors.Wrapf(err, errors.ErrStorage, "failed to write path file %s", s.pathFile)
		}
		return nil
	}

	tempPath := s.pathFile + tempSuffix
	if err := s.fs.WriteFile(tempPath, data, s.mode); err != nil {
		_ = s.fs.Remove(tempPath)
		return errors.Wrapf(err, errors.ErrStorage, "failed to write %s", tempPath)
	}
	if err := s.fs.Rename(tempPath, s.pathFile); err != nil {
		_ = s.fs.Remove(tempPath)
		return errors.Wrapf(err, errors.ErrStorage, "failed to replace path file %s", s.pathFile)
	}
	return nil
}

// Add appends path, or the working directory when path is empty. The path
// must be an existing directory that is not already listed. It returns the
// absolute path that was stored.
func (s *Store) Add(path string) (string, error) {
	logger := logging.GetLogger("store")

	list, err := s.Load()
	if err != nil {
		return "", err
	}
	cwd, err := s.cwd()
	if err != nil {
		return "", err
	}

	abs := paths.Normalize(path, cwd)
	if slices.Contains(list, abs) {
		return "", errors.Newf(errors.ErrDuplicate, "'%s' is already in the user path.", abs).
			WithDetail("path", abs)
	}
	if !filesystem.IsDir(s.fs, abs) {
		return "", errors.Newf(errors.ErrInvalidPath, "'%s' does not exist.", abs).
			WithDetail("path", abs)
	}

	list = append(list, abs)
	if err := s.Save(list); err != nil {
		return "", err
	}
	s.sink.Append(abs)

	logger.Info().Str("path", abs).Int("count", len(list)).Msg("Added path")
	return abs, nil
}

// Delete removes the entry token resolves to and returns it.
func (s *Store) Delete(token string) (string, error) {
	logger := logging.GetLogger("store")

	list, err := s.Load()
	if err != nil {
		return "", err
	}
	target, err := s.resolve(list, token)
	if err != nil {
		return "", err
	}

	i := slices.Index(list, target)
	if i < 0 {
		return "", errors.Newf(errors.ErrNotFound, "'%s' is not in the user path. Cannot delete.", target).
			WithDetail("path", target)
	}

	list = slices.Delete(list, i, i+1)
	if err := s.Save(list); err != nil {
		return "", err
	}
	s.sink.Remove(target)

	logger.Info().Str("path", target).Int("count", len(list)).Msg("Deleted path")
	return target, nil
}

// Resolve turns an argument into the absolute path it denotes, using the
// current list for index arguments.
func (s *Store) Resolve(token string) (string, error) {
	list, err := s.Load()
	if err != nil {
		return "", err
	}
	return s.resolve(list, token)
}

// ListCustom returns the persisted entries. An empty list is reported as an
// ErrNoPathsDefined error rather than an empty slice.
func (s *Store) ListCustom() ([]Entry, error) {
	list, err := s.Load()
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, errors.New(errors.ErrNoPathsDefined, "No user paths are defined.")
	}

	entries := make([]Entry, len(list))
	for i, p := range list {
		entries[i] = Entry{Index: i, Path: p}
	}
	return entries, nil
}

func (s *Store) resolve(list []string, token string) (string, error) {
	if index, ok := parseIndex(token); ok {
		if index < 0 {
			return "", errors.Newf(errors.ErrIndexOutOfRange, "Index %d is not a valid user path index.", index).
				WithDetail("index", index).
				WithDetail("count", len(list))
		}
		if index >= len(list) {
			return "", errors.Newf(errors.ErrIndexOutOfRange, "Index %d exceeds the number of known user paths.", index).
				WithDetail("index", index).
				WithDetail("count", len(list))
		}
		return list[index], nil
	}

	cwd, err := s.cwd()
	if err != nil {
		return "", err
	}
	return paths.Normalize(token, cwd), nil
}

func (s *Store) cwd() (string, error) {
	cwd, err := s.getwd()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrWorkingDirectory, "failed to get working directory")
	}
	return cwd, nil
}
