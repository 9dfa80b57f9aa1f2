package actions

import (
	"fmt"

	"github.com/mrjones-game/life-server/internal/domain/catalog"
	"github.com/mrjones-game/life-server/internal/domain/player"
)

func registerJobOffice(c *Catalog) {
	c.register(Definition{
		Key:      "get_job",
		Location: "job_office",
		Label:    "Find me a job",
		Description: "Visit the job office to automatically get the best available job " +
			"based on your qualifications and appearance. Better education and appearance " +
			"unlock higher-paying jobs.",
		Execute: func(s *player.State, _ Params) Outcome {
			job := catalog.BestJob(s.Qualification, s.Look)
			if job == nil {
				return fail("No jobs available for you right now. Improve your qualifications or appearance!")
			}
			if s.CurrentJob == job.Title {
				return fail("You already work as %s, the best job available to you.", job.Title)
			}
			s.CurrentJob = job.Title
			s.JobWage = job.Wage
			return ok("You secured a job as %s earning £%d per shift!", job.Title, job.Wage)
		},
	})

	c.register(Definition{
		Key:      "apply_for_job",
		Location: "job_office",
		Label:    "Apply for a job",
		Description: "Apply for a specific job by title. Requires appropriate education " +
			"qualifications and appearance level. Higher-paying jobs need better appearance " +
			"(look level).",
		Params: []Param{{
			Name:        "job_title",
			Type:        "string",
			Description: "The title of the job to apply for (e.g. 'Office Worker', 'Junior Developer')",
			Required:    true,
		}},
		Check: func(s *player.State, p Params) string {
			title, given := p.String("job_title")
			if !given {
				return "Missing required argument: job_title"
			}
			job := catalog.JobByTitle(title)
			if job == nil {
				return "No such job listing: " + title
			}
			if !s.Qualification.AtLeast(job.Qualification) {
				return fmt.Sprintf("The %s position requires a %s qualification.",
					job.Title, job.Qualification)
			}
			if s.Look < job.MinLook {
				return fmt.Sprintf("You don't look the part for %s. Smarten up your appearance (need look level %d, you are %s).",
					job.Title, job.MinLook, player.LookLabel(s.Look))
			}
			return ""
		},
		Execute: func(s *player.State, p Params) Outcome {
			title, _ := p.String("job_title")
			job := catalog.JobByTitle(title)
			if job == nil {
				return fail("No such job listing: %s", title)
			}
			if !job.Eligible(s.Qualification, s.Look) {
				return fail("Your application for %s was rejected.", job.Title)
			}
			s.CurrentJob = job.Title
			s.JobWage = job.Wage
			return ok("Congratulations! You got the job as %s earning £%d per shift!", job.Title, job.Wage)
		},
	})
}
