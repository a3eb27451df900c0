package cave

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrMalformedLine reports a line that is not of the form label:value.
	ErrMalformedLine = errors.New("expected label:value")
	// ErrUnknownKey reports a label outside the config schema.
	ErrUnknownKey = errors.New("unknown key")
	// ErrDuplicateKey reports a label given more than once.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrMissingKey reports a required label that never appeared.
	ErrMissingKey = errors.New("missing key")
	// ErrNotInteger reports a value that does not parse as an integer.
	ErrNotInteger = errors.New("not an integer")
	// ErrOutOfRange reports a value outside the allowed range for its key.
	ErrOutOfRange = errors.New("out of range")
)

// ConfigLoadError describes why a config source could not be turned into a
// valid Config.
type ConfigLoadError struct {
	Path string // empty when reading from a bare reader
	Line int    // 1-based, zero when not tied to a line
	Key  string // empty when not tied to a key
	Err  error
}

func (e *ConfigLoadError) Error() string {
	var b strings.Builder
	b.WriteString("config")
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, ":%d", e.Line)
	}
	if e.Key != "" {
		fmt.Fprintf(&b, ": %s", e.Key)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ConfigLoadError) Unwrap() error { return e.Err }

var requiredKeys = []string{KeyFPS, KeySquareSize, KeyMapWidth, KeyMapHeight, KeyWallDensity, KeyIterations}

// LoadConfig reads and validates a labelled config file.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, &ConfigLoadError{Path: path, Err: err}
	}
	defer f.Close()

	cfg, err := ParseConfig(f)
	if err != nil {
		var le *ConfigLoadError
		if errors.As(err, &le) {
			le.Path = path
			return Config{}, le
		}
		return Config{}, &ConfigLoadError{Path: path, Err: err}
	}
	return cfg, nil
}

// ParseConfig reads label:value lines from r. Labels are case-insensitive;
// blank lines and lines starting with '#' are skipped. Every key except seed
// is required.
func ParseConfig(r io.Reader) (Config, error) {
	var cfg Config
	seen := make(map[string]int)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		label, value, ok := strings.Cut(line, ":")
		key := strings.ToLower(strings.TrimSpace(label))
		if !ok || key == "" {
			return Config{}, &ConfigLoadError{Line: lineNo, Err: fmt.Errorf("%w: %q", ErrMalformedLine, line)}
		}
		if prev, dup := seen[key]; dup {
			return Config{}, &ConfigLoadError{Line: lineNo, Key: key, Err: fmt.Errorf("%w (first on line %d)", ErrDuplicateKey, prev)}
		}
		seen[key] = lineNo
		if err := cfg.set(key, strings.TrimSpace(value)); err != nil {
			return Config{}, &ConfigLoadError{Line: lineNo, Key: key, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return Config{}, &ConfigLoadError{Line: lineNo, Err: err}
	}
	for _, key := range requiredKeys {
		if _, ok := seen[key]; !ok {
			return Config{}, &ConfigLoadError{Key: key, Err: ErrMissingKey}
		}
	}
	if err := cfg.Validate(); err != nil {
		var le *ConfigLoadError
		if errors.As(err, &le) {
			le.Line = seen[le.Key]
		}
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) set(key, value string) error {
	if key == KeySeed {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrNotInteger, value)
		}
		c.Seed = parsed
		return nil
	}

	var dst *int
	switch key {
	case KeyFPS:
		dst = &c.TickRate
	case KeySquareSize:
		dst = &c.CellSize
	case KeyMapWidth:
		dst = &c.Width
	case KeyMapHeight:
		dst = &c.Height
	case KeyWallDensity:
		dst = &c.WallDensity
	case KeyIterations:
		dst = &c.Iterations
	default:
		return ErrUnknownKey
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrNotInteger, value)
	}
	*dst = parsed
	return nil
}
