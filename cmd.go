package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func SetupCommands(a *App) *cobra.Command {
	// root command
	rootCmd := &cobra.Command{
		Use:           "metron",
		Short:         "A personal time tracking CLI application",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var dataFile string
	rootCmd.PersistentFlags().StringVar(&dataFile, "file", "", "data file path (default $HOME/.local/share/metron/data.json)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		path := dataFile
		if path == "" {
			path = DataFilePath()
		}

		store, err := Open(path)
		if err != nil {
			return err
		}
		a.store = store
		return nil
	}

	rootCmd.AddCommand(categoryCommands(a))
	rootCmd.AddCommand(tagCommands(a))
	rootCmd.AddCommand(sessionCommands(a))
	rootCmd.AddCommand(analysisCommand(a))
	rootCmd.AddCommand(setQuotaCommand(a))

	return rootCmd
}

// completeCategoryNames offers stored category names for shell completion
func completeCategoryNames(a *App) func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		var names []string
		for _, c := range a.store.Data.Categories {
			names = append(names, c.Name)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

func completeTagNames(a *App) func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		var names []string
		for _, t := range a.store.Data.Tags {
			names = append(names, t.Name)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

func categoryCommands(a *App) *cobra.Command {
	categoryCmd := &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
	}

	var createQuota int
	createCmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new category with a weekly hour quota",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if createQuota < 0 {
				return fmt.Errorf("quota must be non-negative")
			}

			if err := a.CreateCategory(name, createQuota); err != nil {
				return err
			}

			successf("Created category '%s' with %dh/week quota", name, createQuota)
			return nil
		},
	}
	createCmd.Flags().IntVarP(&createQuota, "quota", "q", 0, "weekly quota in hours")
	createCmd.MarkFlagRequired("quota")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := a.ListCategories()

			if len(list.Categories) == 0 {
				fmt.Println("No categories found.")
				return nil
			}

			var rows [][]string
			for _, c := range list.Categories {
				rows = append(rows, []string{c.Name, fmt.Sprintf("%dh", c.WeeklyQuota)})
			}

			total := fmt.Sprintf("%dh (no total quota set)", list.UsedQuota)
			if list.TotalQuota != nil {
				total = fmt.Sprintf("%dh / %dh", list.UsedQuota, *list.TotalQuota)
			}

			PrintTable(
				[]string{"Name", "Weekly Quota"},
				rows,
				[]string{"Total used:", total},
			)
			return nil
		},
	}

	var updateQuota int
	updateCmd := &cobra.Command{
		Use:               "update [name]",
		Short:             "Update an existing category's quota",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeCategoryNames(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if updateQuota < 0 {
				return fmt.Errorf("quota must be non-negative")
			}

			if err := a.UpdateCategory(name, updateQuota); err != nil {
				return err
			}

			successf("Updated category '%s' quota to %dh", name, updateQuota)
			return nil
		},
	}
	updateCmd.Flags().IntVarP(&updateQuota, "quota", "q", 0, "weekly quota in hours")
	updateCmd.MarkFlagRequired("quota")

	deleteCmd := &cobra.Command{
		Use:               "delete [name]",
		Short:             "Delete a category",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeCategoryNames(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			deleted, err := a.DeleteCategory(name)
			if err != nil {
				return err
			}
			if !deleted {
				fmt.Println("Deletion cancelled.")
				return nil
			}

			successf("Deleted category '%s'", name)
			return nil
		},
	}

	categoryCmd.AddCommand(createCmd, listCmd, updateCmd, deleteCmd)
	return categoryCmd
}

func tagCommands(a *App) *cobra.Command {
	tagCmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage tags",
	}

	createCmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			if err := a.CreateTag(name); err != nil {
				return err
			}

			successf("Created tag '%s'", name)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := a.ListTags()

			if len(list.Tags) == 0 {
				fmt.Println("No tags found.")
				return nil
			}

			fmt.Printf("Tags (%d/%d):\n", len(list.Tags), list.Limit)
			for i, t := range list.Tags {
				fmt.Printf("%d. %s\n", i+1, t.Name)
			}
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:               "delete [name]",
		Short:             "Delete a tag",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeTagNames(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			deleted, err := a.DeleteTag(name)
			if err != nil {
				return err
			}
			if !deleted {
				fmt.Println("Deletion cancelled.")
				return nil
			}

			successf("Deleted tag '%s'", name)
			return nil
		},
	}

	tagCmd.AddCommand(createCmd, listCmd, deleteCmd)
	return tagCmd
}

func sessionCommands(a *App) *cobra.Command {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Manage work sessions",
	}

	var startTags []string
	var startDuration int
	startCmd := &cobra.Command{
		Use:   "start [title] [category]",
		Short: "Start a new session",
		Args:  cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 1 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var names []string
			for _, c := range a.store.Data.Categories {
				names = append(names, c.Name)
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			title, category := args[0], args[1]

			session, err := a.StartSession(title, category, startTags, startDuration)
			if err != nil {
				return err
			}

			successf("Started session '%s' in category '%s' for %d minutes", title, category, session.Duration)
			if len(session.Tags) > 0 {
				fmt.Printf("  Tags: %s\n", strings.Join(session.Tags, ", "))
			}
			fmt.Printf("  Session will end at: %s\n", session.End.Format("15:04:05"))
			return nil
		},
	}
	startCmd.Flags().StringSliceVarP(&startTags, "tags", "t", nil, "tag names")
	startCmd.Flags().IntVarP(&startDuration, "duration", "d", 0, "duration in minutes (must be a multiple of 15)")
	startCmd.MarkFlagRequired("duration")

	endCmd := &cobra.Command{
		Use:   "end [id]",
		Short: "End a session early (duration rounds down to the 15-minute grid)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id string
			if len(args) > 0 {
				id = args[0]
			} else {
				id = pickSession(a.ListSessions(), "Choose a session to end")
				if id == "" {
					return fmt.Errorf("no session chosen: %w", ErrSessionNotFound)
				}
			}

			session, err := a.EndSession(id)
			if err != nil {
				return err
			}

			elapsed := int(session.End.Sub(session.Start).Minutes())
			if session.Duration < elapsed {
				successf("Session ended early. Duration rounded down: %dmin → %dmin", elapsed, session.Duration)
			} else {
				successf("Session completed: %dmin", session.Duration)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions := a.ListSessions()

			if len(sessions) == 0 {
				fmt.Println("No sessions found.")
				return nil
			}

			var rows [][]string
			for _, s := range sessions {
				rows = append(rows, []string{
					shortID(s.ID),
					s.Title,
					s.Category,
					fmt.Sprintf("%dmin", s.Duration),
					s.Start.Format("2006-01-02 15:04"),
					formatTags(s.Tags),
				})
			}

			PrintTable(
				[]string{"ID", "Title", "Category", "Duration", "Start", "Tags"},
				rows,
				[]string{"Total:", strconv.Itoa(len(sessions)), "", "", "", ""},
			)
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a session by id or unique id prefix",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id string
			if len(args) > 0 {
				id = args[0]
			} else {
				id = pickSession(a.ListSessions(), "Choose a session to delete")
				if id == "" {
					return fmt.Errorf("no session chosen: %w", ErrSessionNotFound)
				}
			}

			deleted, err := a.DeleteSession(id)
			if err != nil {
				return err
			}
			if !deleted {
				fmt.Println("Deletion cancelled.")
				return nil
			}

			successf("Session deleted")
			return nil
		},
	}

	sessionCmd.AddCommand(startCmd, endCmd, listCmd, deleteCmd)
	return sessionCmd
}

func analysisCommand(a *App) *cobra.Command {
	var period string
	var category string

	analysisCmd := &cobra.Command{
		Use:   "analysis",
		Short: "Show worked time vs. quota for a period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := a.Analyze(period, category)

			if report.PeriodFallback {
				warnf("Unknown period '%s', using weekly", period)
			}

			if report.TotalSessions == 0 {
				fmt.Println("No sessions found for analysis.")
				return nil
			}
			if report.Matched == 0 {
				fmt.Println("No sessions found for the specified period and filter.")
				return nil
			}

			printReport(report)
			return nil
		},
	}

	analysisCmd.Flags().StringVarP(&period, "period", "p", "week", "time period to analyze (day, week, month, year)")
	analysisCmd.Flags().StringVarP(&category, "category", "c", "", "filter by category")
	analysisCmd.RegisterFlagCompletionFunc("period", cobra.FixedCompletions(
		[]string{"day", "week", "month", "year"}, cobra.ShellCompDirectiveNoFileComp,
	))

	return analysisCmd
}

func printReport(report *Report) {
	fmt.Println(color.CyanString("Analysis Report - %s", strings.ToUpper(report.Period)))
	if report.CategoryFilter != "" {
		fmt.Printf("Category: %s\n", report.CategoryFilter)
	}
	fmt.Println(strings.Repeat("=", 60))

	for _, g := range report.Groups {
		fmt.Printf("\nCategory: %s\n", g.Category)
		fmt.Printf("  Sessions: %d\n", g.Sessions)
		fmt.Printf("  Total Time: %s (%d minutes)\n", FormatHours(g.TotalMinutes), g.TotalMinutes)

		if g.QuotaHours > 0 {
			fmt.Printf("  Weekly Quota: %dh\n", g.QuotaHours)
			fmt.Printf("  Work Time: %s (%d minutes)\n", FormatHours(g.WorkMinutes), g.WorkMinutes)
			if g.OvertimeMinutes > 0 {
				fmt.Printf("  Overtime: %s (%d minutes)\n", color.YellowString(FormatHours(g.OvertimeMinutes)), g.OvertimeMinutes)
			}
		}

		if len(g.TagMinutes) > 0 {
			fmt.Println("  Tags:")
			for _, tag := range sortedKeys(g.TagMinutes) {
				fmt.Printf("    - %s: %s\n", tag, FormatHours(g.TagMinutes[tag]))
			}
		}
	}

	grand := report.WorkMinutes + report.OvertimeMinutes
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Summary")
	fmt.Printf("  Total Worktime: %s (%d minutes)\n", FormatHours(report.WorkMinutes), report.WorkMinutes)
	if report.OvertimeMinutes > 0 {
		fmt.Printf("  Total Overtime: %s (%d minutes)\n", FormatHours(report.OvertimeMinutes), report.OvertimeMinutes)
	}
	fmt.Printf("  Grand Total: %s (%d minutes)\n", FormatHours(grand), grand)
	fmt.Printf("  Sessions: %d\n", report.Matched)
}

func setQuotaCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-quota [hours]",
		Short: "Set the total weekly quota in hours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := strconv.Atoi(args[0])
			if err != nil || hours < 0 {
				return fmt.Errorf("hours must be a non-negative integer")
			}

			if err := a.SetTotalQuota(hours); err != nil {
				return err
			}

			successf("Set total weekly quota to %dh", hours)
			return nil
		},
	}
}
