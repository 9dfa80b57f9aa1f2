package actions

import (
	"fmt"

	"github.com/mrjones-game/life-server/internal/domain/catalog"
	"github.com/mrjones-game/life-server/internal/domain/player"
)

// Lectures are draining on top of the time they take.
const lectureTiredness = 10

func registerUniversity(c *Catalog) {
	c.register(Definition{
		Key:      "enroll_course",
		Location: "university",
		Label:    "Enroll in a course",
		Description: "Enroll in a university course. Available courses: middle_school, " +
			"high_school, vocational, bachelor_arts, bachelor_science, bachelor_business, " +
			"master_arts, master_science, mba, phd, executive_mba. Prerequisites required " +
			"for advanced courses.",
		Params: []Param{{
			Name:        "course_id",
			Type:        "string",
			Description: "The ID of the course to enroll in (e.g. 'middle_school', 'bachelor_science')",
			Required:    true,
		}},
		Check: func(s *player.State, p Params) string {
			id, given := p.String("course_id")
			if !given {
				return "Missing required argument: course_id"
			}
			course := catalog.CourseByID(id)
			if course == nil {
				return "No such course: " + id
			}
			if s.EnrolledCourse == id {
				return fmt.Sprintf("You are already enrolled in %s!", course.Name)
			}
			if s.HasCompletedCourse(id) {
				return fmt.Sprintf("You have already completed %s!", course.Name)
			}
			if !s.Qualification.AtLeast(course.Prerequisite) {
				return fmt.Sprintf("You need a %s qualification to enroll in %s.",
					course.Prerequisite, course.Name)
			}
			return ""
		},
		Execute: func(s *player.State, p Params) Outcome {
			id, _ := p.String("course_id")
			course := catalog.CourseByID(id)
			if course == nil {
				return fail("No such course: %s", id)
			}

			// Switching courses forfeits any lecture progress.
			abandoned := ""
			if s.EnrolledCourse != "" && s.EnrolledCourse != id {
				if prev := catalog.CourseByID(s.EnrolledCourse); prev != nil {
					abandoned = fmt.Sprintf(" You dropped %s, losing %d lecture(s) of progress.",
						prev.Name, s.LecturesCompleted)
				}
			}
			s.EnrolledCourse = id
			s.LecturesCompleted = 0

			return ok("You enrolled in %s: %d lectures at £%d each.%s",
				course.Name, course.LecturesRequired, course.CostPerLecture, abandoned)
		},
	})

	c.register(Definition{
		Key:      "attend_lecture",
		Location: "university",
		Label:    "Attend a lecture",
		Description: "Attend a lecture at university. Requires being enrolled in a course. " +
			"Each lecture progresses you toward completing your current course.",
		Check: func(s *player.State, _ Params) string {
			if s.EnrolledCourse == "" {
				return "You are not enrolled in a course. Enroll first!"
			}
			course := catalog.CourseByID(s.EnrolledCourse)
			if course == nil {
				return "Your enrolled course no longer exists."
			}
			if s.Money < course.CostPerLecture {
				return fmt.Sprintf("Not enough money! Each %s lecture costs £%d.",
					course.Name, course.CostPerLecture)
			}
			return ""
		},
		Execute: func(s *player.State, _ Params) Outcome {
			course := catalog.CourseByID(s.EnrolledCourse)
			if course == nil {
				return fail("You are not enrolled in a course. Enroll first!")
			}
			if s.Money < course.CostPerLecture {
				return fail("Not enough money! Each %s lecture costs £%d.",
					course.Name, course.CostPerLecture)
			}

			s.ApplyDelta(-course.CostPerLecture, 0, lectureTiredness, 0)
			s.LecturesCompleted++

			if s.LecturesCompleted < course.LecturesRequired {
				return ok("You attended a %s lecture (-£%d). Progress: %d/%d lectures.",
					course.Name, course.CostPerLecture, s.LecturesCompleted, course.LecturesRequired)
			}

			// Final lecture: award the qualification and clear enrollment.
			s.CompletedCourses = append(s.CompletedCourses, course.ID)
			s.AdvanceQualification(course.Awards)
			s.EnrolledCourse = ""
			s.LecturesCompleted = 0

			return ok("You attended the final %s lecture (-£%d) and graduated! Qualification: %s.",
				course.Name, course.CostPerLecture, s.Qualification)
		},
	})
}
