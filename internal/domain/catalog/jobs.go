package catalog

import "github.com/mrjones-game/life-server/internal/domain/player"

// Job is one job-office listing. Eligibility needs the qualification
// and a minimum look level; higher-paying jobs expect a sharper look.
type Job struct {
	Title         string               `json:"title"`
	Wage          int                  `json:"wage"` // paid per shift
	Qualification player.Qualification `json:"qualification"`
	MinLook       int                  `json:"min_look"`
}

// Jobs is the job-office board, ordered by wage.
var Jobs = []Job{
	{"Janitor", 20, player.QualificationNone, 1},
	{"Warehouse Picker", 25, player.QualificationNone, 1},
	{"Cashier", 35, player.QualificationHighSchool, 1},
	{"Barista", 40, player.QualificationHighSchool, 2},
	{"Electrician", 55, player.QualificationVocational, 2},
	{"Office Worker", 60, player.QualificationBachelor, 2},
	{"Junior Developer", 75, player.QualificationBachelor, 2},
	{"Accountant", 85, player.QualificationBachelor, 3},
	{"Marketing Manager", 95, player.QualificationMaster, 3},
	{"Manager", 100, player.QualificationMaster, 3},
	{"Senior Consultant", 120, player.QualificationMaster, 4},
	{"Executive", 150, player.QualificationPhD, 4},
	{"Director", 200, player.QualificationPhD, 5},
}

// JobByTitle looks up a job by its exact title.
func JobByTitle(title string) *Job {
	for i := range Jobs {
		if Jobs[i].Title == title {
			return &Jobs[i]
		}
	}
	return nil
}

// Eligible reports whether a player with the given qualification and
// look level can hold the job.
func (j Job) Eligible(q player.Qualification, look int) bool {
	return q.AtLeast(j.Qualification) && look >= j.MinLook
}

// EligibleJobs returns every job the player qualifies for.
func EligibleJobs(q player.Qualification, look int) []Job {
	var out []Job
	for _, j := range Jobs {
		if j.Eligible(q, look) {
			out = append(out, j)
		}
	}
	return out
}

// BestJob returns the highest-paying job the player qualifies for, or
// nil when nothing on the board fits.
func BestJob(q player.Qualification, look int) *Job {
	var best *Job
	for i := range Jobs {
		j := &Jobs[i]
		if j.Eligible(q, look) && (best == nil || j.Wage > best.Wage) {
			best = j
		}
	}
	return best
}
