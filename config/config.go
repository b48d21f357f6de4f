package config

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/jxsl13/cchmod/model"
)

var ErrUsage = errors.New("usage error")

// Config holds the options of the root conversion command.
type Config struct {
	Num   bool   `koanf:"num" short:"n" description:"output the octal form"`
	Sym   bool   `koanf:"sym" short:"s" description:"output the symbolic form"`
	Input string `koanf:"input"`

	Format model.Format `koanf:"-"`
}

func (c *Config) Validate() error {
	f, err := outputFormat(c.Num, c.Sym)
	if err != nil {
		return err
	}
	c.Format = f
	return nil
}

// ListConfig holds the options of the ls command.
type ListConfig struct {
	Num       bool   `koanf:"num" short:"n" description:"output the octal form"`
	Sym       bool   `koanf:"sym" short:"s" description:"output the symbolic form"`
	DirsOnly  bool   `koanf:"dirs" short:"d" description:"only list directories"`
	FilesOnly bool   `koanf:"files" short:"f" description:"only list files or symlinks"`
	Exclude   string `koanf:"exclude" short:"e" description:"exclude file paths matching regular expression"`
	Include   string `koanf:"include" short:"i" description:"include file paths matching regular expression"`
	Root      string `koanf:"root"`

	Format       model.Format            `koanf:"-"`
	Match        func(f model.File) bool `koanf:"-"`
	ExcludeRegex *regexp.Regexp          `koanf:"-"`
	IncludeRegex *regexp.Regexp          `koanf:"-"`
}

func (c *ListConfig) Validate() error {
	f, err := outputFormat(c.Num, c.Sym)
	if err != nil {
		return err
	}
	c.Format = f

	if c.Root == "" {
		return fmt.Errorf("%w: missing directory or archive", ErrUsage)
	}

	var kind func(f model.File) bool
	switch {
	case c.DirsOnly && c.FilesOnly:
		return fmt.Errorf("%w: may only define -d or -f, not both", ErrUsage)
	case c.DirsOnly:
		kind = model.File.IsDir
	case c.FilesOnly:
		kind = func(f model.File) bool {
			return !f.IsDir()
		}
	default:
		kind = func(model.File) bool {
			return true
		}
	}

	c.ExcludeRegex, err = compile(c.Exclude)
	if err != nil {
		return fmt.Errorf("invalid exclude regex: %w", err)
	}
	c.IncludeRegex, err = compile(c.Include)
	if err != nil {
		return fmt.Errorf("invalid include regex: %w", err)
	}

	c.Match = func(f model.File) bool {
		if !kind(f) {
			return false
		}
		if c.ExcludeRegex != nil && c.ExcludeRegex.MatchString(f.Path) {
			return false
		}
		return c.IncludeRegex == nil || c.IncludeRegex.MatchString(f.Path)
	}
	return nil
}

func outputFormat(num, sym bool) (model.Format, error) {
	switch {
	case num && sym:
		return 0, fmt.Errorf("%w: --num and --sym are exclusive", ErrUsage)
	case num:
		return model.FormatNum, nil
	case sym:
		return model.FormatSym, nil
	default:
		return 0, fmt.Errorf("%w: --num or --sym must be supplied", ErrUsage)
	}
}

// compile returns nil for an empty expression, which disables the filter.
func compile(expr string) (*regexp.Regexp, error) {
	if expr == "" {
		return nil, nil
	}
	return regexp.Compile(expr)
}
