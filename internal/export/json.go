package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/wavesim/internal/runner"
	"github.com/san-kum/wavesim/internal/storage"
)

type ExportData struct {
	ID      string             `json:"id"`
	Frames  int                `json:"frames"`
	FPS     float64            `json:"fps"`
	Probe   int                `json:"probe"`
	Steps   int                `json:"steps"`
	Times   []float64          `json:"times"`
	States  [][]float64        `json:"states"`
	Metrics map[string]float64 `json:"metrics"`
}

// WriteJSON emits a stored run as indented JSON.
func WriteJSON(w io.Writer, meta *storage.RunMetadata, result *runner.Result) error {
	data := ExportData{
		ID:      meta.ID,
		Frames:  meta.Frames,
		FPS:     meta.FPS,
		Probe:   meta.Probe,
		Steps:   len(result.Times),
		Times:   result.Times,
		States:  make([][]float64, len(result.States)),
		Metrics: result.Metrics,
	}

	for i, s := range result.States {
		data.States[i] = s
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
