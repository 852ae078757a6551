package presenter

import (
	"encoding/json"
	"io"

	"github.com/YoshitsuguKoike/filerepo/internal/application/port/output"
	"github.com/YoshitsuguKoike/filerepo/internal/domain/repository"
)

// JSONPresenter implements output.Presenter for JSON output
// Formats all output as JSON for programmatic consumption
type JSONPresenter struct {
	output io.Writer
}

// NewJSONPresenter creates a new JSON presenter
func NewJSONPresenter(output io.Writer) output.Presenter {
	return &JSONPresenter{output: output}
}

// PresentSuccess presents a successful result as JSON
func (p *JSONPresenter) PresentSuccess(message string, data interface{}) error {
	result := map[string]interface{}{
		"success": true,
		"message": message,
		"data":    data,
	}
	return p.encode(result)
}

// PresentError presents an error as JSON
func (p *JSONPresenter) PresentError(err error) error {
	result := map[string]interface{}{
		"success": false,
		"error":   err.Error(),
	}
	if nf, ok := repository.AsNotFound(err); ok {
		result["not_found"] = map[string]interface{}{
			"entity": nf.Entity,
			"id":     nf.ID,
		}
	}
	return p.encode(result)
}

func (p *JSONPresenter) encode(v interface{}) error {
	enc := json.NewEncoder(p.output)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
