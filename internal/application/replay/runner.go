package replay

import (
	"fmt"

	"github.com/younwookim/dodgeball/internal/application/system"
	"github.com/younwookim/dodgeball/internal/domain/entity"
	"github.com/younwookim/dodgeball/internal/infrastructure/config"
)

// Result summarizes a re-simulated run.
type Result struct {
	Outcome system.Outcome
	Cause   system.Cause
	Ticks   int
	Health  float64
	Energy  float64
	// Cues counts sound events by cue.
	Cues map[system.Cue]int
}

// Run steps a fresh simulation of level with the recorded seed, inputs and
// frame deltas. It stops at the first tick that ends the level or when the
// recording runs out. tuning must already carry the level's rule overrides.
func Run(data *ReplayData, tuning *config.TuningConfig, level *entity.Level) (Result, error) {
	if data.Level != level.Name {
		return Result{}, fmt.Errorf("replay is for level %q, got %q", data.Level, level.Name)
	}

	replayer := NewReplayer(*data)
	sim := system.NewSimulation(tuning, level, system.NewSource(replayer.Seed()))
	res := Result{Cues: make(map[system.Cue]int)}

	for {
		input, dt, ok := replayer.GetInput()
		if !ok {
			break
		}

		step := sim.Step(input, dt)
		for _, ev := range step.Events {
			if s, ok := ev.(system.SoundEvent); ok {
				res.Cues[s.Cue]++
			}
		}
		if step.Outcome != system.OutcomeRunning {
			res.Cause = step.Cause
			break
		}
	}

	gauges := sim.Resources()
	res.Outcome = sim.Outcome()
	res.Ticks = sim.Tick()
	res.Health = gauges.Health
	res.Energy = gauges.Energy
	return res, nil
}
