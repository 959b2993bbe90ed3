package inline

import (
	"encoding/json"
	"io"

	"github.com/invopop/jsonschema"
	"github.com/vidsel/vidsel/source"
	"github.com/vidsel/vidsel/youtube"
)

// Result is the outcome for a single identifier.
type Result struct {
	// ID as given on the command line, after URL normalization.
	ID string `json:"id"`
	// Video is the selected stream. Absent on failure.
	Video *source.Video `json:"video,omitempty"`
	// Response is the decoded player response, only with --full.
	Response *youtube.StreamResponse `json:"response,omitempty"`
	// Error describes why the identifier could not be resolved.
	Error string `json:"error,omitempty"`

	err error
}

type Output struct {
	Result []*Result `json:"result"`
}

func writeJson(out io.Writer, results []*Result) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(&Output{Result: results})
}

// JsonSchema describes the document written by Run in JSON mode.
func JsonSchema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
	}
	return reflector.Reflect(&Output{})
}
