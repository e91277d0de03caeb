package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/ogear/internal/storage"
)

var (
	historyLimit int
	showLast     bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse previously computed solves",
	Long:  `Commands for listing and inspecting solves recorded by 'ogear solve'.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent solves",
	Long:  `Display recent solves with their origin, target and step count.`,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [solve-id]",
	Short: "Show a stored solve",
	Long: `Display a stored solve including its full step-by-step instructions.

Use --last to show the most recent solve.`,
	RunE: runHistoryShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of solves to display")

	historyCmd.AddCommand(historyShowCmd)
	historyShowCmd.Flags().BoolVar(&showLast, "last", false, "Show the most recent solve")
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	solves, err := repo.List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list solves: %w", err)
	}

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet")
		fmt.Println("Compute one with: ogear solve")
		return nil
	}

	fmt.Printf("Recent solves (showing %d):\n", len(solves))
	fmt.Println()
	fmt.Printf("%-36s  %-20s  %-26s  %-26s  %s\n", "ID", "Computed", "Origin", "Target", "Steps")
	fmt.Println("------------------------------------  --------------------  --------------------------  --------------------------  -----")

	for _, s := range solves {
		fmt.Printf("%-36s  %-20s  %-26s  %-26s  %d\n",
			s.SolveID,
			s.CreatedAt.Format("2006-01-02 15:04:05"),
			s.Origin,
			s.Target,
			s.StepCount,
		)
	}

	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)

	var solve *storage.Solve
	switch {
	case showLast:
		solve, err = repo.GetLast()
		if err != nil {
			return fmt.Errorf("failed to get latest solve: %w", err)
		}
		if solve == nil {
			return fmt.Errorf("no solves found")
		}
	case len(args) > 0:
		solve, err = repo.Get(args[0])
		if err != nil {
			return fmt.Errorf("failed to get solve: %w", err)
		}
		if solve == nil {
			return fmt.Errorf("solve not found: %s", args[0])
		}
	default:
		return fmt.Errorf("please provide a solve ID or use --last")
	}

	fmt.Println("Solve Details")
	fmt.Println("=============")
	fmt.Println()
	fmt.Printf("ID:       %s\n", solve.SolveID)
	fmt.Printf("Computed: %s\n", solve.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Origin:   %s\n", solve.Origin)
	fmt.Printf("Target:   %s\n", solve.Target)
	fmt.Printf("Steps:    %d\n", solve.StepCount)
	if solve.Notes != nil && *solve.Notes != "" {
		fmt.Printf("Notes:    %s\n", *solve.Notes)
	}
	fmt.Println()

	if solve.StepCount == 0 {
		fmt.Println("Origin and target were identical; no moves required")
		return nil
	}

	fmt.Print(solve.StepsText)
	return nil
}
