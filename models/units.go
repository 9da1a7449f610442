package models

import "sort"

// Categories lists the question categories of the biology workbook.
var Categories = []string{
	"생명과학",
}

// SubjectName is the display name of the loaded question bank.
const SubjectName = "고등 생명과학 선행"

// Units lists the eight workbook units in curriculum order.
var Units = []string{
	"생물의 특성과 물질대사",
	"기관계 통합적 작용",
	"자극의 전달",
	"신경계",
	"항상성 조절",
	"방어 작용",
	"염색체와 세포분열",
	"생물의 진화",
}

// UnitRange is the contiguous block of question numbers covered by a unit.
type UnitRange struct {
	Start    int
	End      int
	Excludes []int
}

// Contains reports whether n lies in [Start, End] and is not excluded.
func (r UnitRange) Contains(n int) bool {
	if n < r.Start || n > r.End {
		return false
	}
	for _, x := range r.Excludes {
		if x == n {
			return false
		}
	}
	return true
}

// Size is the number of question numbers the range covers.
func (r UnitRange) Size() int {
	if r.End < r.Start {
		return 0
	}
	size := r.End - r.Start + 1
	for _, x := range r.Excludes {
		if x >= r.Start && x <= r.End {
			size--
		}
	}
	return size
}

// UnitQuestionRanges maps each unit to its question numbers in the workbook.
var UnitQuestionRanges = map[string]UnitRange{
	"생물의 특성과 물질대사": {Start: 1, End: 60},
	"기관계 통합적 작용":   {Start: 61, End: 118},
	"자극의 전달":       {Start: 119, End: 180},
	"신경계":          {Start: 181, End: 240},
	"항상성 조절":       {Start: 241, End: 300},
	"방어 작용":        {Start: 301, End: 360},
	"염색체와 세포분열":    {Start: 361, End: 420},
	"생물의 진화":       {Start: 421, End: 447},
}

// UnitCategoryMap maps each unit to its category.
var UnitCategoryMap = map[string]string{
	"생물의 특성과 물질대사": "생명과학",
	"기관계 통합적 작용":   "생명과학",
	"자극의 전달":       "생명과학",
	"신경계":          "생명과학",
	"항상성 조절":       "생명과학",
	"방어 작용":        "생명과학",
	"염색체와 세포분열":    "생명과학",
	"생물의 진화":       "생명과학",
}

// UnitResult is the per-unit feedback stored with a submission.
type UnitResult struct {
	Category        string `json:"category"`
	Unit            string `json:"unit"`
	Total           int    `json:"total"`
	Correct         int    `json:"correct"`
	Wrong           int    `json:"wrong"`
	Unanswered      int    `json:"unanswered"`
	AchievementRate int    `json:"achievementRate"`
}

// IsUnit reports whether name is one of Units.
func IsUnit(name string) bool {
	_, ok := UnitQuestionRanges[name]
	return ok
}

// UnitForQuestion returns the unit whose range contains question number n.
func UnitForQuestion(n int) (string, bool) {
	for _, unit := range Units {
		if UnitQuestionRanges[unit].Contains(n) {
			return unit, true
		}
	}
	return "", false
}

// QuestionsForUnit returns the questions of unit, ordered by question number.
func QuestionsForUnit(unit string, questions []Question) []Question {
	r, ok := UnitQuestionRanges[unit]
	if !ok {
		return nil
	}
	var out []Question
	for _, q := range questions {
		if r.Contains(q.QuestionNumber) {
			out = append(out, q)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].QuestionNumber < out[j].QuestionNumber
	})
	return out
}

// GroupQuestionsByUnit slices a flat question list into per-unit groups.
// Questions outside every range are dropped.
func GroupQuestionsByUnit(questions []Question) map[string][]Question {
	groups := make(map[string][]Question, len(Units))
	for _, unit := range Units {
		if qs := QuestionsForUnit(unit, questions); len(qs) > 0 {
			groups[unit] = qs
		}
	}
	return groups
}
