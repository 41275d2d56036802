package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/movetk-go/movetk/geoproj"
	"github.com/movetk-go/movetk/kernel"
	"github.com/movetk-go/movetk/outlier"
	"github.com/movetk-go/movetk/simplify"
	"github.com/movetk-go/movetk/trajectory"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "movetkgen",
		Usage:     "Generates a random trajectory, simplifies it and filters outliers, printing the result as JSON",
		UsageText: "movetkgen --number <value> --epsilon <value> --maxspeed <value>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "number",
				Usage:    "The number of probes to generate",
				Value:    20,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(v int64) error {
					if v <= 1 {
						return fmt.Errorf("number must be greater than one")
					}
					return nil
				},
			},
			&cli.FloatFlag{
				Name:     "epsilon",
				Usage:    "The Douglas-Peucker simplification tolerance, in metres",
				Value:    5.0,
				Aliases:  []string{"e"},
				OnlyOnce: true,
			},
			&cli.FloatFlag{
				Name:     "maxspeed",
				Usage:    "The outlier-rejection speed bound, in metres/second",
				Value:    50.0,
				Aliases:  []string{"v"},
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      app,
		Authors:     []any{"https://github.com/movetk-go/movetk"},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func app(_ context.Context, cmd *cli.Command) error {
	n := cmd.Int("number")
	epsilon := cmd.Float("epsilon")
	maxSpeed := cmd.Float("maxspeed")

	probes := randomWalk(int(n))

	consistent := outlier.GeographicSpeedBound(maxSpeed)
	kept, err := outlier.Greedy(probes, consistent)
	if err != nil {
		return err
	}
	filtered := make([]trajectory.Probe, len(kept))
	for i, idx := range kept {
		filtered[i] = probes[idx]
	}

	ref := geoproj.NewLocalReference(filtered[0].Lat, filtered[0].Lon)
	points := make([]kernel.Point[float64], len(filtered))
	for i, p := range filtered {
		x, y := ref.Project(p.Lat, p.Lon)
		points[i] = kernel.NewPoint2(x, y)
	}
	simplified, err := simplify.DouglasPeucker(points, epsilon)
	if err != nil {
		return err
	}

	out := make([][2]float64, len(simplified))
	for i, p := range simplified {
		lat, lon := ref.Inverse(p.Y(), p.X())
		out[i] = [2]float64{lat, lon}
	}
	b, err := json.Marshal(out)
	if err != nil {
		return err
	}
	fmt.Print(string(b))
	return nil
}

// randomWalk generates a simple random-walk trajectory of n probes
// starting near the Utrecht city centre, one sample per second.
func randomWalk(n int) []trajectory.Probe {
	lat, lon := 52.0907, 5.1214
	probes := make([]trajectory.Probe, n)
	for i := 0; i < n; i++ {
		lat += (rand.Float64() - 0.5) * 0.0005
		lon += (rand.Float64() - 0.5) * 0.0005
		probes[i] = trajectory.NewProbe(lat, lon, float64(i))
	}
	return probes
}
