package actions

import "github.com/mrjones-game/life-server/internal/domain/player"

// A shift is tiring. The wage already sits on the state, denormalized
// from the job title at hire time.
const workTiredness = 15

func registerWorkplace(c *Catalog) {
	c.register(Definition{
		Key:      "work",
		Location: "workplace",
		Label:    "Work",
		Description: "Go to work and earn money based on your current job and wage. " +
			"Increases tiredness. Requires having a job first.",
		Check: func(s *player.State, _ Params) string {
			if s.CurrentJob == player.JobUnemployed {
				return "You need to get a job first!"
			}
			return ""
		},
		Execute: func(s *player.State, _ Params) Outcome {
			if s.CurrentJob == player.JobUnemployed {
				return fail("You need to get a job first!")
			}
			s.ApplyDelta(s.JobWage, 0, workTiredness, 0)
			return ok("You worked as %s and earned £%d!", s.CurrentJob, s.JobWage)
		},
	})
}
