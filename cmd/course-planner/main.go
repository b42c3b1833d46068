package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abcu/course-planner/internal/catalog"
	"github.com/abcu/course-planner/internal/config"
	"github.com/abcu/course-planner/internal/loader"
	"github.com/abcu/course-planner/internal/logger"
	"github.com/abcu/course-planner/internal/menu"
	"github.com/abcu/course-planner/internal/report"
	"github.com/abcu/course-planner/internal/types"
	"github.com/abcu/course-planner/internal/utils"
	"github.com/abcu/course-planner/internal/version"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// validLogLevels is the accepted set for --log-level and LOG_LEVEL
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validFormats is the accepted set for --format
var validFormats = map[string]bool{
	"table": true,
	"json":  true,
}

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course-planner",
		Short: "A CLI tool for browsing an academic course catalog",
		Long: `course-planner loads a comma-delimited course catalog file into a sorted
in-memory structure keyed by course number and answers advising queries:
the full course list in alphanumeric order, or a single course with its
prerequisite titles resolved.

The tool supports:
- One-shot queries (list, show) for scripting
- An interactive advising session (plan)
- Catalog validation with a JSON load report (validate)
- Case-insensitive catalog file name resolution
- Optional YAML configuration for defaults`,
		Version:      version.String(),
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().Bool("verbose", false, "enable verbose logging")
	cmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("config", config.DefaultFileName, "path to YAML config file")

	// Add subcommands
	cmd.AddCommand(NewListCommand())
	cmd.AddCommand(NewShowCommand())
	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewPlanCommand())

	return cmd
}

// globalOptions carries the resolved config and logger for one invocation
type globalOptions struct {
	cfg *config.Config
	log *logger.Logger
}

// resolveGlobalOptions reads the persistent flags, loads the config file,
// and builds the logger. Flags beat the LOG_LEVEL environment variable,
// which beats the config file.
func resolveGlobalOptions(cmd *cobra.Command) (*globalOptions, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadOrDefault(configPath)
	}
	if err != nil {
		return nil, err
	}

	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor || cfg.NoColor {
		color.NoColor = true
	}

	logLevel, _ := cmd.Flags().GetString("log-level")
	if !cmd.Flags().Changed("log-level") {
		if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
			logLevel = envLevel
		} else if cfg.Logging.Level != "" {
			logLevel = cfg.Logging.Level
		}
	}

	normalized, ok := utils.ValidateStringInSet(logLevel, validLogLevels)
	if !ok {
		return nil, fmt.Errorf("invalid log level '%s'. Valid levels: debug, info, warn, error", logLevel)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	log := logger.New(logger.Config{
		Level:   logger.LogLevel(normalized),
		Verbose: verbose,
	})

	return &globalOptions{cfg: cfg, log: log}, nil
}

// loadCatalog resolves the catalog file name and ingests it
func loadCatalog(input string, log *logger.Logger) (string, *loader.Result, error) {
	path, err := loader.ResolveCatalogPath(input)
	if err != nil {
		return "", nil, err
	}

	result, err := loader.LoadFile(path, log)
	if err != nil {
		return "", nil, err
	}

	return path, result, nil
}

// resolveFormat validates the --format flag
func resolveFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("format")
	normalized, ok := utils.ValidateStringInSet(format, validFormats)
	if !ok {
		return "", fmt.Errorf("invalid format '%s'. Valid formats: table, json", format)
	}
	return normalized, nil
}

// NewListCommand creates the list subcommand
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <catalog-file>",
		Short: "Print every course in alphanumeric order",
		Long: `List loads the catalog file and prints every course ascending by course
number, one "number, title" pair per line.

Examples:
  course-planner list courses.csv
  course-planner list courses --format json`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args[0])
		},
	}

	cmd.Flags().String("format", "table", "output format (table, json)")

	return cmd
}

// runList loads the catalog and prints the sorted course schedule
func runList(cmd *cobra.Command, catalogArg string) error {
	opts, err := resolveGlobalOptions(cmd)
	if err != nil {
		return err
	}

	format, err := resolveFormat(cmd)
	if err != nil {
		return err
	}

	_, result, err := loadCatalog(catalogArg, opts.log)
	if err != nil {
		return err
	}

	if format == "json" {
		return printJSON(result.Catalog.Courses())
	}

	fmt.Println("Here is the course schedule:")
	fmt.Println()
	result.Catalog.Walk(func(c *types.Course) bool {
		fmt.Println(c.Label())
		return true
	})
	return nil
}

// NewShowCommand creates the show subcommand
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <catalog-file> <course-number>",
		Short: "Print one course with resolved prerequisite titles",
		Long: `Show loads the catalog file and prints the title of the requested course
along with each prerequisite, resolved to its title when the referenced
course exists in the catalog. The course number match is case-insensitive.

Examples:
  course-planner show courses.csv CSCI201
  course-planner show courses.csv csci201 --format json`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], args[1])
		},
	}

	cmd.Flags().String("format", "table", "output format (table, json)")

	return cmd
}

// courseDetail is the JSON shape of the show command output
type courseDetail struct {
	Number        string                 `json:"number"`
	Title         string                 `json:"title"`
	Prerequisites []catalog.Prerequisite `json:"prerequisites"`
}

// runShow loads the catalog and prints the detail view for one course
func runShow(cmd *cobra.Command, catalogArg, courseArg string) error {
	opts, err := resolveGlobalOptions(cmd)
	if err != nil {
		return err
	}

	format, err := resolveFormat(cmd)
	if err != nil {
		return err
	}

	_, result, err := loadCatalog(catalogArg, opts.log)
	if err != nil {
		return err
	}

	key := utils.NormalizeCourseNumber(courseArg)
	course, found := result.Catalog.Lookup(key)
	if !found {
		return fmt.Errorf("course %s not found", key)
	}

	prereqs := result.Catalog.ResolvePrerequisites(course)

	if format == "json" {
		return printJSON(courseDetail{
			Number:        course.Number,
			Title:         course.Title,
			Prerequisites: prereqs,
		})
	}

	menu.PrintCourse(os.Stdout, course, prereqs)
	return nil
}

// NewValidateCommand creates the validate subcommand
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <catalog-file>",
		Short: "Validate a catalog file and report ingestion diagnostics",
		Long: `Validate parses the catalog file and reports how many courses loaded,
which lines were malformed, and which prerequisite references do not
resolve to any course in the catalog. Diagnostics are warnings; the
command only fails when the file itself cannot be read.

Examples:
  course-planner validate courses.csv
  course-planner validate courses.csv --save-report load-report.json`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			savePath, _ := cmd.Flags().GetString("save-report")
			return runValidate(cmd, args[0], savePath)
		},
	}

	cmd.Flags().String("save-report", "", "path to save the JSON load report")

	return cmd
}

// runValidate parses the catalog and prints ingestion diagnostics
func runValidate(cmd *cobra.Command, catalogArg, savePath string) error {
	opts, err := resolveGlobalOptions(cmd)
	if err != nil {
		return err
	}

	path, result, err := loadCatalog(catalogArg, opts.log)
	if err != nil {
		return err
	}

	fmt.Printf("Validating catalog file: %s\n\n", path)
	color.Green("✓ Parsed %d line(s), loaded %d course(s)", result.Lines, result.Loaded)

	if len(result.Skipped) > 0 {
		color.Yellow("⚠ Skipped %d malformed line(s):", len(result.Skipped))
		for _, skipped := range result.Skipped {
			fmt.Printf("  line %d: %s (%s)\n", skipped.Line, skipped.Text, skipped.Reason)
		}
	}

	result.Catalog.Walk(func(c *types.Course) bool {
		if !c.IsValid() {
			color.Yellow("⚠ Degenerate record: %q has an empty number or title", c.Label())
		}
		return true
	})

	dangling := result.Catalog.DanglingPrerequisites()
	if len(dangling) > 0 {
		color.Yellow("⚠ Found prerequisite references with no matching course:")
		for _, ref := range dangling {
			for _, missing := range ref.Missing {
				fmt.Printf("  %s -> %s\n", ref.Course, missing)
			}
		}
	} else {
		color.Green("✓ Every prerequisite reference resolves")
	}

	if savePath != "" {
		r := report.New(path, result)
		if err := r.Save(savePath); err != nil {
			return err
		}
		fmt.Printf("\nLoad report saved to: %s\n", savePath)
	}

	return nil
}

// NewPlanCommand creates the plan subcommand
func NewPlanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [catalog-file]",
		Short: "Start an interactive advising session",
		Long: `Plan starts the menu-driven advising session: load a catalog, print the
course schedule, or look up a single course, until you exit. When a
catalog file is given here (or configured), it becomes the default for
the session's load option.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaultPath := ""
			if len(args) == 1 {
				defaultPath = args[0]
			}
			return runPlan(cmd, defaultPath)
		},
	}

	return cmd
}

// runPlan drives the interactive advising session
func runPlan(cmd *cobra.Command, defaultPath string) error {
	opts, err := resolveGlobalOptions(cmd)
	if err != nil {
		return err
	}

	if defaultPath == "" {
		defaultPath = opts.cfg.Catalog.Path
	}

	session := menu.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), opts.log, defaultPath)
	return session.Run()
}

// printJSON writes v to stdout as indented JSON
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
