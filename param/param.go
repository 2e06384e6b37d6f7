/*package param reads keyed parameter files for cosmobg.

Parameter files are flat ini files, one "name = value" pair per line, with
'#' and ';' comments. Every accessor distinguishes between required keys,
whose absence is a fatal configuration error naming the key, and optional
keys, which fall back to an explicit default.
*/
package param

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Map is a read-only view of the parameters in a single file.
type Map struct {
	section *ini.Section
}

// Load parses the parameter file at path.
func Load(path string) (*Map, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("could not read parameter file %s: %v", path, err)
	}
	return &Map{section: file.Section("")}, nil
}

// FromKeys builds a Map from an in-memory key -> value table. It exists so
// tests and embedding programs don't need to touch the file system.
func FromKeys(keys map[string]string) *Map {
	file := ini.Empty()
	sec := file.Section("")
	for k, v := range keys {
		sec.Key(k).SetValue(v)
	}
	return &Map{section: sec}
}

// Has returns whether key is present.
func (m *Map) Has(key string) bool {
	return m.section.HasKey(key)
}

// Float returns the value of a required float key.
func (m *Map) Float(key string) (float64, error) {
	if !m.section.HasKey(key) {
		return 0, fmt.Errorf("required parameter '%s' is missing", key)
	}
	f, err := m.section.Key(key).Float64()
	if err != nil {
		return 0, fmt.Errorf(
			"parameter '%s' has value '%s', which is not a number",
			key, m.section.Key(key).String(),
		)
	}
	return f, nil
}

// FloatDefault returns the value of an optional float key, or def if the key
// is absent. A present but malformed value is still an error.
func (m *Map) FloatDefault(key string, def float64) (float64, error) {
	if !m.section.HasKey(key) {
		return def, nil
	}
	return m.Float(key)
}

// Int returns the value of a required integer key.
func (m *Map) Int(key string) (int, error) {
	if !m.section.HasKey(key) {
		return 0, fmt.Errorf("required parameter '%s' is missing", key)
	}
	i, err := m.section.Key(key).Int()
	if err != nil {
		return 0, fmt.Errorf(
			"parameter '%s' has value '%s', which is not an integer",
			key, m.section.Key(key).String(),
		)
	}
	return i, nil
}

// IntDefault returns the value of an optional integer key.
func (m *Map) IntDefault(key string, def int) (int, error) {
	if !m.section.HasKey(key) {
		return def, nil
	}
	return m.Int(key)
}

// String returns the value of a required string key.
func (m *Map) String(key string) (string, error) {
	if !m.section.HasKey(key) {
		return "", fmt.Errorf("required parameter '%s' is missing", key)
	}
	return m.section.Key(key).String(), nil
}

// StringDefault returns the value of an optional string key.
func (m *Map) StringDefault(key, def string) string {
	if !m.section.HasKey(key) {
		return def
	}
	return m.section.Key(key).String()
}
