package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/surplus-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport writes the comparison in the given format to timestamped files in dir
// and returns the paths written. "all" writes every registered format.
func GenerateReport(results *domain.ScenarioComparison, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var written []string
		for _, name := range AvailableFormatterNames() {
			path, err := WriteFormatted(GetFormatterByName(name), results, dir)
			if err != nil {
				return written, fmt.Errorf("%s report: %w", name, err)
			}
			written = append(written, path)
		}
		return written, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return nil, fmt.Errorf("%w: %q. Try one of: %s, all (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	path, err := WriteFormatted(f, results, dir)
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// SaveConfiguration writes a configuration as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0o644)
}
