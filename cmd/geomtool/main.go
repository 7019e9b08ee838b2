// Command geomtool is a small driver around the geom2d library: it reads a set of points as JSON
// from stdin and writes either their Delaunay triangulation or their Voronoi tessellation to
// stdout as JSON, in the same spirit as the upstream genlinesegments generator.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/anvilgeo/geom2d"
	"github.com/anvilgeo/geom2d/options"
)

// inputPoint is the JSON shape read from stdin: an array of {"x":.., "y":..} objects.
type inputPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func main() {
	cmd := &cli.Command{
		Name:  "geomtool",
		Usage: "Computes a Delaunay triangulation or Voronoi tessellation of points read from stdin as JSON",
		Commands: []*cli.Command{
			triangulateCommand(),
			voronoiCommand(),
		},
		HideVersion: true,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// readPoints decodes a JSON point array from path, or from stdin if path is empty.
func readPoints(path string) ([]geom2d.Point[float64], error) {
	r := io.Reader(os.Stdin)
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening points file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var raw []inputPoint
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding input points: %w", err)
	}
	points := make([]geom2d.Point[float64], len(raw))
	for i, p := range raw {
		points[i] = geom2d.NewPoint(p.X, p.Y)
	}
	return points, nil
}

func pointsFileFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "points-file",
		Usage:    "read the input point array from this file instead of stdin",
		OnlyOnce: true,
	}
}

func triangulateCommand() *cli.Command {
	return &cli.Command{
		Name:  "triangulate",
		Usage: "Prints the Delaunay triangulation of the input points",
		Flags: []cli.Flag{
			&cli.FloatFlag{Name: "epsilon", Usage: "tolerance for coincident-point comparisons", Value: 1e-7, OnlyOnce: true},
			pointsFileFlag(),
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			points, err := readPoints(cmd.String("points-file"))
			if err != nil {
				return err
			}

			triangles, err := geom2d.Triangulate(points, options.WithEpsilon(cmd.Float("epsilon")))
			if err != nil {
				return fmt.Errorf("triangulating: %w", err)
			}

			type triangleOut struct {
				Vertices [3]inputPoint `json:"vertices"`
			}
			out := make([]triangleOut, len(triangles))
			for i, dt := range triangles {
				tri := dt.Triangle()
				for v := 0; v < 3; v++ {
					out[i].Vertices[v] = inputPoint{X: tri.Vertex(v).X(), Y: tri.Vertex(v).Y()}
				}
			}
			return json.NewEncoder(os.Stdout).Encode(out)
		},
	}
}

func voronoiCommand() *cli.Command {
	return &cli.Command{
		Name:  "voronoi",
		Usage: "Prints the Voronoi tessellation of the input points",
		Flags: []cli.Flag{
			&cli.FloatFlag{Name: "epsilon", Usage: "tolerance for coincident-point comparisons", Value: 1e-7, OnlyOnce: true},
			&cli.FloatFlag{Name: "border-offset", Usage: "inflate the default bounding-box border by this amount", OnlyOnce: true},
			&cli.BoolFlag{Name: "parallel", Usage: "build tiles concurrently", OnlyOnce: true},
			pointsFileFlag(),
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			points, err := readPoints(cmd.String("points-file"))
			if err != nil {
				return err
			}

			opts := []options.GeometryOptionsFunc{options.WithEpsilon(cmd.Float("epsilon"))}
			if cmd.IsSet("border-offset") {
				opts = append(opts, options.WithBorderOffset(cmd.Float("border-offset")))
			}
			if cmd.Bool("parallel") {
				opts = append(opts, options.WithParallelTiles(true))
			}

			tiles, err := geom2d.VoronoiTessellate(points, opts...)
			if err != nil {
				return fmt.Errorf("tessellating: %w", err)
			}

			type tileOut struct {
				Seed    inputPoint   `json:"seed"`
				Outline []inputPoint `json:"outline"`
			}
			out := make([]tileOut, len(tiles))
			for i, tile := range tiles {
				verts := tile.Outline().Vertices()
				outline := make([]inputPoint, len(verts))
				for v, p := range verts {
					outline[v] = inputPoint{X: p.X(), Y: p.Y()}
				}
				out[i] = tileOut{
					Seed:    inputPoint{X: tile.Seed().X(), Y: tile.Seed().Y()},
					Outline: outline,
				}
			}
			return json.NewEncoder(os.Stdout).Encode(out)
		},
	}
}
