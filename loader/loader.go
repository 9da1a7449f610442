// Package loader executes the biology question SQL files against the database.
package loader

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"runji/models"
	"runji/store"

	"gorm.io/gorm"
)

// Part is one SQL file covering a contiguous block of question numbers.
type Part struct {
	Name  string
	File  string
	Start int
	End   int
}

// Expected is the number of questions the part inserts.
func (p Part) Expected() int {
	return p.End - p.Start + 1
}

// DefaultParts are the workbook files in load order. Part 1 also creates the
// school and exam rows the questions reference.
var DefaultParts = []Part{
	{Name: "Part 1", File: "load-biology-questions.sql", Start: 1, End: 180},
	{Name: "Part 2", File: "load-biology-questions-part2.sql", Start: 181, End: 360},
	{Name: "Part 3", File: "load-biology-questions-part3.sql", Start: 361, End: 447},
}

// Loader runs Parts in order, each inside its own transaction.
type Loader struct {
	DB      *gorm.DB
	Files   fs.FS
	Parts   []Part
	Subject string
	// ResumeSchool turns on resumption: a part is skipped when the exams of
	// this school and Subject already hold every question in its range.
	// Empty executes every part, and re-inserting then fails on the
	// (exam_id, question_number) unique index.
	ResumeSchool string
}

// Result summarizes a run.
type Result struct {
	Executed []string
	Skipped  []string
	Total    int64 // questions of Subject after the run
}

// New returns a loader for the default parts and subject.
func New(db *gorm.DB, files fs.FS) *Loader {
	return &Loader{
		DB:      db,
		Files:   files,
		Parts:   DefaultParts,
		Subject: models.DefaultSubject,
	}
}

// Run executes the parts in order and then counts the loaded questions.
// The first failing part stops the run; parts before it stay committed and
// the failing part is rolled back.
func (l *Loader) Run(ctx context.Context) (*Result, error) {
	res := &Result{}
	log.Printf("Loading %s questions (%d parts)...", l.Subject, len(l.Parts))

	for _, part := range l.Parts {
		if l.ResumeSchool != "" {
			loaded, err := l.isLoaded(ctx, part)
			if err != nil {
				return res, err
			}
			if loaded {
				log.Printf("%s already loaded (questions %d-%d), skipping", part.Name, part.Start, part.End)
				res.Skipped = append(res.Skipped, part.Name)
				continue
			}
		}

		log.Printf("Running %s (%s)...", part.Name, part.File)
		if err := l.runPart(ctx, part); err != nil {
			return res, err
		}
		log.Printf("✓ %s completed (questions %d-%d)", part.Name, part.Start, part.End)
		res.Executed = append(res.Executed, part.Name)
	}

	total, err := store.CountQuestionsBySubject(ctx, l.DB, l.Subject)
	if err != nil {
		return res, fmt.Errorf("verification query: %w", err)
	}
	res.Total = total
	log.Printf("Database check: %d questions loaded for %s", total, l.Subject)
	return res, nil
}

// Expected is the number of questions a complete run loads.
func (l *Loader) Expected() int {
	total := 0
	for _, part := range l.Parts {
		total += part.Expected()
	}
	return total
}

func (l *Loader) isLoaded(ctx context.Context, part Part) (bool, error) {
	count, err := store.CountQuestionsInRange(ctx, l.DB, l.Subject, l.ResumeSchool, part.Start, part.End)
	if err != nil {
		return false, fmt.Errorf("%s: %w", part.Name, err)
	}
	return count >= int64(part.Expected()), nil
}

func (l *Loader) runPart(ctx context.Context, part Part) error {
	raw, err := fs.ReadFile(l.Files, part.File)
	if err != nil {
		return fmt.Errorf("%s: read %s: %w", part.Name, part.File, err)
	}
	script := strings.TrimSpace(string(raw))
	if script == "" {
		return fmt.Errorf("%s: %s is empty", part.Name, part.File)
	}

	err = l.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Exec(script).Error
	})
	if err != nil {
		return fmt.Errorf("%s: execute %s: %w", part.Name, part.File, err)
	}
	return nil
}
