package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"runji/models"

	"github.com/stretchr/testify/require"
)

// WorkbookSchool is the school the generated Part 1 file creates.
const WorkbookSchool = "에이원"

const workbookSetupSQL = `INSERT INTO schools (name) VALUES ('에이원');
INSERT INTO exams (school_id, school_name, year, semester, subject)
VALUES ((SELECT id FROM schools WHERE name = '에이원'), '에이원', 2025, '런지 교재', '생명과학');
`

// QuestionsSQL renders one INSERT statement per question in [start, end].
// Every tenth question is a multi-answer short-answer question.
func QuestionsSQL(start, end int) string {
	var b strings.Builder
	for n := start; n <= end; n++ {
		unit, _ := models.UnitForQuestion(n)
		qtype, answer, multi := models.QuestionTypeMultipleChoice, fmt.Sprint(n%5+1), "false"
		if n%10 == 0 {
			qtype, answer, multi = models.QuestionTypeShortAnswer, `["ㄱ","ㄷ"]`, "true"
		}
		fmt.Fprintf(&b, "INSERT INTO questions (exam_id, question_number, type, category, unit, answer, is_multiple_answer) "+
			"VALUES ((SELECT id FROM exams WHERE school_name = '에이원'), %d, '%s', '생명과학', '%s', '%s', %s);\n",
			n, qtype, unit, answer, multi)
	}
	return b.String()
}

// WorkbookFiles returns the three biology SQL files (180/180/87 questions).
func WorkbookFiles() fstest.MapFS {
	return fstest.MapFS{
		"load-biology-questions.sql":       {Data: []byte(workbookSetupSQL + QuestionsSQL(1, 180))},
		"load-biology-questions-part2.sql": {Data: []byte(QuestionsSQL(181, 360))},
		"load-biology-questions-part3.sql": {Data: []byte(QuestionsSQL(361, 447))},
	}
}

// WriteWorkbook writes files into a new temp dir and returns its path.
func WriteWorkbook(t *testing.T, files fstest.MapFS) string {
	t.Helper()

	dir := t.TempDir()
	for name, file := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), file.Data, 0o644))
	}
	return dir
}
