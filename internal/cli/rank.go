package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvrank/core"
	"github.com/katalvlaran/lvrank/graphfile"
	"github.com/katalvlaran/lvrank/internal/telemetry"
	"github.com/katalvlaran/lvrank/pagerank"
)

func (a *app) rankCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rank FILE",
		Short: "Rank the graph described by a JSON or YAML document",
		Example: `  lvrank rank graph.json
  lvrank rank graph.yaml --damping 0.9 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := graphfile.Load(args[0])
			if err != nil {
				return err
			}
			g, err := doc.Build(a.logger)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			a.logger.Info("graph loaded",
				"file", args[0],
				"nodes", g.VertexCount(),
				"edges", g.EdgeCount())

			return a.rank(cmd.Context(), "rank", g, doc.Options())
		},
	}
}

// rank submits g to a fresh session, computes and renders the result.
func (a *app) rank(ctx context.Context, source string, g *core.Graph, fileOpts []pagerank.Option) error {
	ctx, span := telemetry.Tracer(tracerName).Start(ctx, "lvrank."+source,
		trace.WithAttributes(attribute.String("lvrank.output", a.v.GetString(keyOutput))))
	defer span.End()

	key, err := a.sessions.Submit("", g)
	if err != nil {
		return err
	}
	res, err := a.sessions.Compute(ctx, key, a.engineOptions(fileOpts)...)
	if err != nil {
		return err
	}
	a.logger.Info("pagerank finished",
		"session", key,
		"iterations", res.NumIterations,
		"converged", res.Converged,
		"final_delta", res.FinalDelta())

	return render(a.out, a.v.GetString(keyOutput), res, a.v.GetBool(keyHistory))
}
