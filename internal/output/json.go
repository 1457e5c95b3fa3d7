package output

import (
	"encoding/json"

	"github.com/mashkanta/mashkanta/internal/domain"
)

// JSONFormatter renders the summaries as indented JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(summaries []domain.ScenarioSummary) ([]byte, error) {
	return json.MarshalIndent(summaries, "", "  ")
}
