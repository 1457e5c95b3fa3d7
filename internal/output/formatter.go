package output

import (
	"github.com/mashkanta/mashkanta/internal/domain"
)

// Formatter renders a set of scenario summaries in one output format.
type Formatter interface {
	Name() string
	Format(summaries []domain.ScenarioSummary) ([]byte, error)
}

var formatters = []Formatter{
	CSVSummarizer{},
	ConsoleFormatter{},
	JSONFormatter{},
}

// GetFormatterByName returns the named formatter, or nil if none matches.
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}
