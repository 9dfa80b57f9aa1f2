// Package main - simulator
// Headless scenario runner: plays a scripted first week of the game
// against an in-memory store and checks the outcomes, so a full play
// loop can be sanity-checked without a browser or an LLM key.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mrjones-game/life-server/internal/actions"
	"github.com/mrjones-game/life-server/internal/engine"
	"github.com/mrjones-game/life-server/internal/events"
	"github.com/mrjones-game/life-server/internal/infra/storage"
	"github.com/mrjones-game/life-server/internal/platform/logger"
)

type step struct {
	location string
	action   string
	params   actions.Params
}

// script is one plausible opening: take any job, work a few shifts,
// eat, sleep, start night school.
var script = []step{
	{location: "job_office", action: "get_job", params: nil},
	{location: "workplace", action: "work", params: nil},
	{location: "shop", action: "buy_food", params: nil},
	{location: "workplace", action: "work", params: nil},
	{location: "home", action: "rest", params: nil},
	{location: "university", action: "enroll_course", params: actions.Params{"course_id": "middle_school"}},
	{location: "university", action: "attend_lecture", params: nil},
}

func main() {
	fmt.Println("LIFE SIMULATOR - scripted week")
	fmt.Println("==============================")

	ctx := context.Background()
	log := logger.NewLogger()
	store := storage.NewMemoryStore()
	eng := engine.New(store, actions.NewCatalog(), events.NewJournal(nil), log)

	const username = "simulated"
	failures := 0

	for day := 1; day <= 7; day++ {
		fmt.Printf("\n--- Day %d ---\n", day)
		for _, st := range script {
			res, err := eng.PerformAction(ctx, username, st.location, st.action, st.params)
			if err != nil {
				fmt.Printf("  ERROR %s/%s: %v\n", st.location, st.action, err)
				failures++
				continue
			}
			marker := "ok"
			if !res.Success {
				marker = "rejected"
			}
			fmt.Printf("  [%s] %s/%s: %s\n", marker, st.location, st.action, res.Message)
		}
		if _, err := eng.PassTime(ctx, username, 0); err != nil {
			fmt.Printf("  ERROR pass_time: %v\n", err)
			failures++
		}
	}

	view, err := eng.State(ctx, username)
	if err != nil {
		fmt.Printf("final state load failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n=== FINAL STATE ===")
	fmt.Printf("Day %d, %s | money £%d | job %s (£%d) | qualification %s\n",
		view.Turn, view.CurrentTime, view.Money, view.CurrentJob, view.JobWage, view.Qualification)
	fmt.Printf("tiredness %s | hunger %s | happiness %s\n",
		view.TirednessLabel, view.HungerLabel, view.HappinessLabel)

	if view.Turn < 8 {
		fmt.Println("check failed: expected at least 7 rollovers")
		failures++
	}
	if view.CurrentJob == "Unemployed" {
		fmt.Println("check failed: expected a job by end of week")
		failures++
	}

	if failures > 0 {
		fmt.Printf("\n%d check(s) failed\n", failures)
		os.Exit(1)
	}
	fmt.Println("\nall checks passed")
}
