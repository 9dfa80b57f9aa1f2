package catalog

import "github.com/mrjones-game/life-server/internal/domain/player"

// Course is one university programme. Students enroll, pay per lecture,
// and receive the awarded qualification after the final lecture.
type Course struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	Prerequisite     player.Qualification `json:"prerequisite"`
	LecturesRequired int                  `json:"lectures_required"`
	CostPerLecture   int                  `json:"cost_per_lecture"`
	Awards           player.Qualification `json:"awards"`
}

// Courses is the university catalogue. Prerequisites gate enrollment on
// the qualification ladder; courses at an already-held tier can still be
// taken (e.g. a second bachelor), they just won't move the ladder back.
var Courses = []Course{
	{"middle_school", "Middle School Diploma", player.QualificationNone, 3, 5, player.QualificationMiddleSchool},
	{"high_school", "High School Diploma", player.QualificationMiddleSchool, 4, 10, player.QualificationHighSchool},
	{"vocational", "Vocational Training", player.QualificationHighSchool, 3, 15, player.QualificationVocational},
	{"bachelor_arts", "Bachelor of Arts", player.QualificationHighSchool, 6, 20, player.QualificationBachelor},
	{"bachelor_science", "Bachelor of Science", player.QualificationHighSchool, 6, 25, player.QualificationBachelor},
	{"bachelor_business", "Bachelor of Business", player.QualificationHighSchool, 6, 25, player.QualificationBachelor},
	{"master_arts", "Master of Arts", player.QualificationBachelor, 5, 40, player.QualificationMaster},
	{"master_science", "Master of Science", player.QualificationBachelor, 5, 45, player.QualificationMaster},
	{"mba", "Master of Business Administration", player.QualificationBachelor, 5, 60, player.QualificationMaster},
	{"phd", "Doctor of Philosophy", player.QualificationMaster, 8, 50, player.QualificationPhD},
	{"executive_mba", "Executive MBA", player.QualificationMaster, 4, 100, player.QualificationMaster},
}

// CourseByID looks up a course by its identifier.
func CourseByID(id string) *Course {
	for i := range Courses {
		if Courses[i].ID == id {
			return &Courses[i]
		}
	}
	return nil
}

// EligibleCourses returns the courses a player with the given
// qualification may enroll in, skipping ones already completed.
func EligibleCourses(q player.Qualification, completed []string) []Course {
	done := make(map[string]bool, len(completed))
	for _, id := range completed {
		done[id] = true
	}

	var out []Course
	for _, c := range Courses {
		if done[c.ID] {
			continue
		}
		if q.AtLeast(c.Prerequisite) {
			out = append(out, c)
		}
	}
	return out
}
