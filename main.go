package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	settingsPath string
	bearerToken  string
	debugMode    bool
	dryRun       bool

	listCategory   string
	listStatus     string
	listTag        string
	listSearch     string
	listTags       bool
	listCategories bool
)

var rootCmd = &cobra.Command{
	Use:           "directory",
	Short:         "Curated directory of agentic internet platforms and autonomous studios",
	Long:          `Browse the agentic internet directory and discover new platform candidates from X/Twitter search.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		SetDebugMode(debugMode)
	},
}

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Search X/Twitter for new platform candidates and append suggestions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureConfigExists(); err != nil {
			return err
		}

		settings, err := LoadSettings(settingsPath)
		if err != nil {
			return err
		}

		token := bearerToken
		if token == "" {
			token = os.Getenv("X_BEARER_TOKEN")
		}
		if dryRun {
			token = ""
		}

		result, err := NewDiscoverer(settings, token).Run()
		if err != nil {
			return err
		}

		green := color.New(color.FgGreen).SprintFunc()
		gray := color.New(color.FgHiBlack).SprintFunc()
		if len(result.Added) == 0 {
			fmt.Printf("%s no new platforms (%d candidates, %d skipped)\n",
				green("done:"), result.CandidatesFound,
				result.SkippedNoTitle+result.SkippedName+result.SkippedSlug)
			return nil
		}
		fmt.Printf("%s %d suggested platform(s) appended %s\n",
			green("done:"), len(result.Added),
			gray(fmt.Sprintf("(total %d)", result.TotalPlatforms)))
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List directory platforms",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := LoadSettings(settingsPath)
		if err != nil {
			return err
		}

		store, err := LoadPlatforms(settings.Data.PlatformsPath)
		if err != nil {
			return err
		}

		if listTags {
			for _, t := range store.AllTags() {
				fmt.Println(t)
			}
			return nil
		}
		if listCategories {
			for _, c := range store.Categories {
				fmt.Println(c)
			}
			return nil
		}

		view := store
		if listCategory != "" {
			view = &PlatformsData{Platforms: view.ByCategory(listCategory)}
		}
		if listStatus != "" {
			view = &PlatformsData{Platforms: view.ByStatus(listStatus)}
		}
		if listTag != "" {
			view = &PlatformsData{Platforms: view.ByTag(listTag)}
		}
		if listSearch != "" {
			view = &PlatformsData{Platforms: view.Search(listSearch)}
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		gray := color.New(color.FgHiBlack).SprintFunc()
		for _, p := range view.Platforms {
			fmt.Printf("%s %s %s\n", cyan(p.Name), gray("("+p.ID+")"),
				gray(p.Category+" · "+p.Status))
			fmt.Printf("  %s\n  %s\n", p.Description, gray(p.URL))
		}
		fmt.Printf("\n%d platform(s) · last updated %s\n", len(view.Platforms), store.LastUpdated)
		return nil
	},
}

var studiosCmd = &cobra.Command{
	Use:   "studios [id]",
	Short: "List autonomous studios, or show one in detail",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := LoadSettings(settingsPath)
		if err != nil {
			return err
		}

		store, err := LoadStudios(settings.Data.StudiosPath)
		if err != nil {
			return err
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		gray := color.New(color.FgHiBlack).SprintFunc()

		if len(args) == 1 {
			s := store.StudioByID(args[0])
			if s == nil {
				return fmt.Errorf("no studio with id %q", args[0])
			}
			fmt.Printf("%s %s\n%s\n\n", cyan(s.Name), gray("("+s.Type+")"), s.Description)
			if s.Creator != "" {
				fmt.Printf("Creator:  %s\n", s.Creator)
			}
			if s.Website != "" {
				fmt.Printf("Website:  %s\n", s.Website)
			}
			fmt.Printf("X:        %s\n", s.X)
			if s.Token != nil {
				fmt.Printf("Token:    %s (%s)\n", s.Token.Name, s.Token.Address)
			}
			fmt.Printf("Autonomy: ideas=%s dev=%s distribution=%s\n",
				s.Autonomy.IdeaGeneration, s.Autonomy.Development, s.Autonomy.Distribution)
			fmt.Printf("Visible:  code=%s logs=%s\n", s.Transparency.Code, s.Transparency.Logs)
			for _, p := range s.Products {
				fmt.Printf("  - %s: %s\n", p.Name, p.Description)
			}
			for _, n := range s.Notable {
				fmt.Printf("  * %s\n", n)
			}
			return nil
		}

		for _, s := range store.Studios {
			fmt.Printf("%s %s %s\n  %s\n", cyan(s.Name), gray("("+s.ID+")"), gray(s.Type), s.Description)
		}
		fmt.Printf("\n%d studio(s) · last updated %s\n", len(store.Studios), store.LastUpdated)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "Path to settings YAML file")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	discoverCmd.Flags().StringVar(&bearerToken, "bearer-token", "", "X API bearer token (defaults to X_BEARER_TOKEN)")
	discoverCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Skip all search requests even if a token is set")

	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter by category")
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status")
	listCmd.Flags().StringVar(&listTag, "tag", "", "Filter by tag")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Filter by name/description text")
	listCmd.Flags().BoolVar(&listTags, "tags", false, "Print all distinct tags")
	listCmd.Flags().BoolVar(&listCategories, "categories", false, "Print the category list")

	rootCmd.AddCommand(discoverCmd, listCmd, studiosCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
