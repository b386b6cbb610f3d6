package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zachkp/starfolio/internal/projects"
)

var (
	projectsSearch   string
	projectsLanguage string
	projectsSort     string
	projectsJSON     bool
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Print the project listing as the projects page would show it",
	Long: `Fetch the configured user's repositories through the same service the
server uses, apply the search, language and sort filters, and print the result.
When GitHub cannot be reached the built-in fallback list is printed instead.`,
	RunE: runProjects,
}

func init() {
	projectsCmd.Flags().StringVarP(&projectsSearch, "query", "q", "", "Case-insensitive search over name, description and topics")
	projectsCmd.Flags().StringVarP(&projectsLanguage, "language", "l", projects.AllLanguages, "Language filter")
	projectsCmd.Flags().StringVarP(&projectsSort, "sort", "s", string(projects.SortUpdated), "Sort key: updated, stars, forks or created")
	projectsCmd.Flags().BoolVarP(&projectsJSON, "json", "j", false, "Output JSON instead of a table")
	rootCmd.AddCommand(projectsCmd)
}

func runProjects(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	svc, closeCache, err := newProjectService(cfg)
	if err != nil {
		return err
	}
	defer closeCache()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.GitHub.Timeout+5*time.Second)
	defer cancel()

	listing := svc.List(ctx)
	list := projects.Apply(listing.Projects, projects.Query{
		Search:   projectsSearch,
		Language: projectsLanguage,
		Sort:     projects.ParseSortKey(projectsSort),
	})

	stats := projects.Summarize(listing.Projects)

	if projectsJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"origin":   listing.Origin,
			"stats":    stats,
			"projects": list,
		})
	}

	printf(cmd, "%d projects, %d stars, %d forks, %d languages (source: %s)\n\n",
		stats.Projects, stats.Stars, stats.Forks, stats.Languages, listing.Origin)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tLANGUAGE\tSTARS\tFORKS\tUPDATED")
	for _, p := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%s\n", p.ID, p.Name, p.DisplayLanguage(), p.Stars, p.Forks, projects.FormatDate(p.UpdatedAt))
	}
	return w.Flush()
}
