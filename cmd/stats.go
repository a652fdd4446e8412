package cmd

import (
	"fmt"
	"strings"

	"github.com/tranhn/khtn/internal/profile"
	"github.com/tranhn/khtn/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		svc := profile.NewService(s.KV())
		p := svc.Profile()
		st := svc.Stats()

		fmt.Printf("%s (%s)\n", p.Name, p.Class)
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("%-28s %d\n", "Quizzes completed", st.Solved)
		fmt.Printf("%-28s %d\n", "Questions answered", st.QuestionsDone)
		fmt.Printf("%-28s %.1f / 10\n", "Average score", st.AverageScore())
		fmt.Printf("%-28s %.0f min\n", "Exercise time", st.ExerciseMinutes)
		fmt.Printf("%-28s %.0f min\n", "Theory time", st.TheoryMinutes)
		fmt.Printf("%-28s %d day(s)\n", "Streak", st.Streak)
		if st.LastActiveDate != "" {
			fmt.Printf("%-28s %s\n", "Last active", st.LastActiveDate)
		}
		return nil
	},
}
