package service

import (
	"context"

	"github.com/wricardo/gridsearch/game/config"
	"github.com/wricardo/gridsearch/game/grid"
	"github.com/wricardo/gridsearch/game/puzzles/beam"
	"github.com/wricardo/gridsearch/game/puzzles/galaxy"
	"github.com/wricardo/gridsearch/game/puzzles/garden"
	"github.com/wricardo/gridsearch/game/puzzles/heatloss"
	"github.com/wricardo/gridsearch/game/puzzles/network"
	"github.com/wricardo/gridsearch/game/puzzles/pipes"
	"github.com/wricardo/gridsearch/game/puzzles/platform"
	"github.com/wricardo/gridsearch/game/puzzles/pulse"
	"github.com/wricardo/gridsearch/game/puzzles/schematic"
	"github.com/wricardo/gridsearch/game/puzzles/springs"
)

// Builtin returns the puzzles shipped with the module
func Builtin() []*Puzzle {
	return []*Puzzle{
		{
			Name:        "heatloss",
			Description: "Least heat loss routing a crucible from the top-left to the bottom-right block",
			Parts:       []string{"crucible", "ultra"},
			Solve:       solveHeatLoss,
		},
		{
			Name:        "beam",
			Description: "Tiles energized by a beam through mirrors and splitters",
			Parts:       []string{"top_left", "best_edge"},
			Solve:       solveBeam,
		},
		{
			Name:        "pipes",
			Description: "Farthest loop tile from the start and tiles enclosed by the loop",
			Parts:       []string{"farthest", "enclosed"},
			Solve:       solvePipes,
		},
		{
			Name:        "garden",
			Description: "Garden plots reachable in an exact number of steps",
			Parts:       []string{"reachable"},
			Solve:       solveGarden,
		},
		{
			Name:        "galaxy",
			Description: "Sum of pairwise galaxy distances in an expanding universe",
			Parts:       []string{"doubled", "expanded"},
			Solve:       solveGalaxy,
		},
		{
			Name:        "platform",
			Description: "North beam load after tilting and after spin cycles",
			Parts:       []string{"north_load", "spin_load"},
			Solve:       solvePlatform,
		},
		{
			Name:        "springs",
			Description: "Damaged spring arrangements matching condition records",
			Parts:       []string{"arrangements", "unfolded"},
			Solve:       solveSprings,
		},
		{
			Name:        "pulse",
			Description: "Low pulses times high pulses after pushing the button",
			Parts:       []string{"pulses"},
			Solve:       solvePulse,
		},
		{
			Name:        "network",
			Description: "Steps through a left/right node network, alone from AAA and as ghosts from every **A node",
			Parts:       []string{"camel", "ghosts"},
			Solve:       solveNetwork,
		},
		{
			Name:        "schematic",
			Description: "Sum of part numbers next to symbols and of gear ratios in an engine schematic",
			Parts:       []string{"part_numbers", "gear_ratios"},
			Solve:       solveSchematic,
		},
	}
}

// DefaultRegistry returns a registry holding every builtin puzzle
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, p := range Builtin() {
		if err := r.Register(p); err != nil {
			panic(err)
		}
	}
	return r
}

func solveHeatLoss(_ context.Context, lines []string, params *config.Params) ([]Answer, error) {
	m, err := heatloss.Parse(lines)
	if err != nil {
		return nil, err
	}

	standard, err := m.MinimalHeatLoss(heatloss.Crucible(params.Crucible))
	if err != nil {
		return nil, err
	}
	ultra, err := m.MinimalHeatLoss(heatloss.Crucible(params.UltraCrucible))
	if err != nil {
		return nil, err
	}
	return []Answer{{"crucible", standard}, {"ultra", ultra}}, nil
}

func solveBeam(_ context.Context, lines []string, _ *config.Params) ([]Answer, error) {
	c, err := beam.Parse(lines)
	if err != nil {
		return nil, err
	}

	first := c.Energize(beam.Ray{Pos: grid.Position{}, Dir: grid.Right})
	_, best := c.MaxEnergized()
	return []Answer{{"top_left", first}, {"best_edge", best}}, nil
}

func solvePipes(_ context.Context, lines []string, _ *config.Params) ([]Answer, error) {
	f, err := pipes.Parse(lines)
	if err != nil {
		return nil, err
	}

	farthest, err := f.FarthestPoint()
	if err != nil {
		return nil, err
	}
	enclosed, err := f.Enclosed()
	if err != nil {
		return nil, err
	}
	return []Answer{{"farthest", farthest}, {"enclosed", enclosed}}, nil
}

func solveGarden(_ context.Context, lines []string, params *config.Params) ([]Answer, error) {
	g, err := garden.Parse(lines)
	if err != nil {
		return nil, err
	}
	return []Answer{{"reachable", g.Reachable(params.GardenSteps)}}, nil
}

func solveGalaxy(_ context.Context, lines []string, params *config.Params) ([]Answer, error) {
	img, err := galaxy.Parse(lines)
	if err != nil {
		return nil, err
	}
	doubled, err := img.SumOfDistances(2)
	if err != nil {
		return nil, err
	}
	expanded, err := img.SumOfDistances(params.ExpansionFactor)
	if err != nil {
		return nil, err
	}
	return []Answer{{"doubled", doubled}, {"expanded", expanded}}, nil
}

func solvePlatform(_ context.Context, lines []string, params *config.Params) ([]Answer, error) {
	p, err := platform.Parse(lines)
	if err != nil {
		return nil, err
	}
	return []Answer{
		{"north_load", p.TiltNorth().Load()},
		{"spin_load", p.SpinLoad(params.SpinCycles)},
	}, nil
}

func solveSprings(_ context.Context, lines []string, params *config.Params) ([]Answer, error) {
	records, err := springs.Parse(lines)
	if err != nil {
		return nil, err
	}
	arrangements, err := springs.Total(records, 1)
	if err != nil {
		return nil, err
	}
	unfolded, err := springs.Total(records, params.UnfoldCopies)
	if err != nil {
		return nil, err
	}
	return []Answer{{"arrangements", arrangements}, {"unfolded", unfolded}}, nil
}

func solvePulse(_ context.Context, lines []string, params *config.Params) ([]Answer, error) {
	n, err := pulse.Parse(lines)
	if err != nil {
		return nil, err
	}
	return []Answer{{"pulses", n.Press(params.ButtonPresses).Product()}}, nil
}

// solveNetwork skips the camel part for networks without an AAA node, which
// only describe ghosts.
func solveNetwork(_ context.Context, lines []string, _ *config.Params) ([]Answer, error) {
	m, err := network.Parse(lines)
	if err != nil {
		return nil, err
	}

	var answers []Answer
	if m.Has(network.Entry) {
		camel, err := m.CamelSteps()
		if err != nil {
			return nil, err
		}
		answers = append(answers, Answer{"camel", camel})
	}

	ghosts, err := m.GhostSteps()
	if err != nil {
		return nil, err
	}
	return append(answers, Answer{"ghosts", ghosts}), nil
}

func solveSchematic(_ context.Context, lines []string, _ *config.Params) ([]Answer, error) {
	s, err := schematic.Parse(lines)
	if err != nil {
		return nil, err
	}

	parts, err := schematic.Sum(s.PartNumbers())
	if err != nil {
		return nil, err
	}
	ratios, err := s.GearRatios()
	if err != nil {
		return nil, err
	}
	gears, err := schematic.Sum(ratios)
	if err != nil {
		return nil, err
	}
	return []Answer{{"part_numbers", parts}, {"gear_ratios", gears}}, nil
}
