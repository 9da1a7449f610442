package main

import (
	"context"
	"flag"
	"log"
	"os"

	"runji/config"
	"runji/database"
	"runji/loader"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run loads the question files and returns the process exit code.
func run(args []string) int {
	flags := flag.NewFlagSet("loadQuestions", flag.ContinueOnError)
	dir := flags.String("dir", "", "directory holding the SQL files (defaults to SQL_DIR)")
	resume := flags.String("resume", "", "skip parts whose questions this school's exams already hold")
	migrate := flags.Bool("migrate", false, "create or update tables before loading")
	check := flags.Bool("check", false, "only test the database connection")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	// Load config and connect to database
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}
	db, err := database.ConnectDb(database.OptionsFromConfig(cfg))
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		return 1
	}
	defer db.Close()

	ctx := context.Background()
	if !db.TestConnection(ctx) {
		return 1
	}
	if *check {
		return 0
	}

	if *migrate {
		if err := database.Migrate(db.Db); err != nil {
			log.Printf("%v", err)
			return 1
		}
	}

	if *dir == "" {
		*dir = cfg.SQLDir
	}
	l := loader.New(db.Db, os.DirFS(*dir))
	l.Subject = cfg.Subject
	l.ResumeSchool = *resume

	res, err := l.Run(ctx)
	if err != nil {
		log.Printf("❌ Load failed: %v", err)
		return 1
	}

	log.Printf("✅ All parts done (executed %d, skipped %d)", len(res.Executed), len(res.Skipped))
	if res.Total != int64(cfg.ExpectedTotal) {
		log.Printf("Warning: expected %d questions, found %d", cfg.ExpectedTotal, res.Total)
	}
	return 0
}
