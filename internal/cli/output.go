package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvrank/pagerank"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type scoreLine struct {
	ID    string  `json:"id" yaml:"id"`
	Score float64 `json:"score" yaml:"score"`
}

// report is the machine-readable form of a Result. Nodes keep index order.
type report struct {
	Nodes              []scoreLine `json:"nodes" yaml:"nodes"`
	Iterations         int         `json:"iterations" yaml:"iterations"`
	Converged          bool        `json:"converged" yaml:"converged"`
	FinalDelta         float64     `json:"final_delta" yaml:"final_delta"`
	Damping            float64     `json:"damping" yaml:"damping"`
	Tolerance          float64     `json:"tolerance" yaml:"tolerance"`
	MaxIterations      int         `json:"max_iterations" yaml:"max_iterations"`
	ConvergenceHistory []float64   `json:"convergence_history,omitempty" yaml:"convergence_history,omitempty"`
}

func newReport(res *pagerank.Result, history bool) report {
	rep := report{
		Nodes:         make([]scoreLine, len(res.Nodes)),
		Iterations:    res.NumIterations,
		Converged:     res.Converged,
		FinalDelta:    res.FinalDelta(),
		Damping:       res.Damping,
		Tolerance:     res.Tolerance,
		MaxIterations: res.MaxIterations,
	}
	for i, id := range res.Nodes {
		rep.Nodes[i] = scoreLine{ID: id, Score: res.Scores[i]}
	}
	if history {
		rep.ConvergenceHistory = res.ConvergenceHistory
	}

	return rep
}

func render(w io.Writer, format string, res *pagerank.Result, history bool) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newReport(res, history))
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newReport(res, history)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeText(w, res, history)
	}
}

// writeText prints "id  score" per vertex in index order, then the
// convergence verdict and optionally the delta trace.
func writeText(w io.Writer, res *pagerank.Result, history bool) error {
	width := 0
	for _, id := range res.Nodes {
		width = max(width, len(id))
	}

	var buf bytes.Buffer
	for i, id := range res.Nodes {
		fmt.Fprintf(&buf, "%-*s  %.6f\n", width, id, res.Scores[i])
	}
	if res.Converged {
		fmt.Fprintf(&buf, "Converged in %d iterations\n", res.NumIterations)
	} else {
		fmt.Fprintf(&buf, "Stopped after %d iterations (not converged)\n", res.NumIterations)
	}
	if history {
		buf.WriteString("Convergence history:\n")
		for i, d := range res.ConvergenceHistory {
			fmt.Fprintf(&buf, "  %4d  %.6e\n", i+1, d)
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}
