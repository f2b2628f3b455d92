package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/verbora/verbora/internal/content"
	"github.com/verbora/verbora/internal/lang"
	"github.com/verbora/verbora/internal/progress"
	"github.com/verbora/verbora/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		p, err := progress.NewService(st.ProfileRepo()).Current(ctx)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s — level %d, %d points, %d day streak\n\n", p.Name, p.Level, p.TotalScore, p.DailyStreak)

		fmt.Fprintln(out, "Skills:")
		for _, sk := range progress.AllSkills() {
			fmt.Fprintf(out, "  %-11s %3d/%d\n", sk.DisplayName(), p.Skills.Get(sk), progress.MaxSkill)
		}

		stats, err := st.EventRepo().PerGameStats(ctx)
		if err != nil {
			return fmt.Errorf("aggregate stats: %w", err)
		}
		if len(stats) > 0 {
			fmt.Fprintln(out, "\nGames:")
			for _, g := range stats {
				fmt.Fprintf(out, "  %-18s %3d answered  %3d correct  %3.0f%% accuracy\n",
					lang.GameName(lang.English, g.GameID), g.Answered, g.Correct, g.Accuracy()*100)
			}
		}

		if len(p.Badges) > 0 {
			fmt.Fprintln(out, "\nBadges:")
			for _, id := range p.Badges {
				if b, ok := content.BadgeByID(id); ok {
					fmt.Fprintf(out, "  %s %s — %s\n", b.Icon, b.Name, b.Description)
				}
			}
		}
		return nil
	},
}
