package cli

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/chatwarden/internal/classify"
	"github.com/ppiankov/chatwarden/internal/config"
	"github.com/ppiankov/chatwarden/internal/rules"
)

var (
	classifyProfile string
	classifyJSON    bool
)

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().StringVar(&classifyProfile, "profile", "", "Evaluate with this profile's rules")
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "Print the result as JSON")
}

var classifyCmd = &cobra.Command{
	Use:   "classify <text>",
	Short: "Classify text and show the rule decision",
	Long: `Runs the same classifier and rules as the proxy against the given text,
without a running proxy. Useful for tuning rules and keyword lists.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

type classifyReport struct {
	Action   string           `json:"action"`
	Source   string           `json:"source"`
	Mode     classify.Mode    `json:"mode"`
	Matches  []classify.Match `json:"matches"`
	Duration time.Duration    `json:"duration_ns"`
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := buildClassifier(cfg, slog.New(slog.DiscardHandler))
	if err != nil {
		return err
	}
	eng, err := rules.Open(cfg.Rules.Path)
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	res := c.Classify(text)
	dec := eng.Evaluate(res, time.Now(), classifyProfile)
	rep := classifyReport{
		Action:   dec.Action.String(),
		Source:   dec.Source,
		Mode:     res.Mode,
		Matches:  res.Matches,
		Duration: res.Duration,
	}

	w := cmd.OutOrStdout()
	if classifyJSON {
		return printJSON(w, rep)
	}
	actionColor(rep.Action).Fprintf(w, "%s", strings.ToUpper(rep.Action))
	fmt.Fprintf(w, " (%s)\n", rep.Source)
	for _, m := range rep.Matches {
		fmt.Fprintf(w, "  %-10s %.2f  tier %d  %s\n", m.Category, m.Confidence, m.Tier, m.Pattern)
	}
	dimColor.Fprintf(w, "classifier: %s, %s\n", rep.Mode, rep.Duration.Round(time.Microsecond))
	return nil
}

func buildClassifier(cfg *config.Config, log *slog.Logger) (*classify.Classifier, error) {
	c, err := classify.Build(classify.Options{
		KeywordsPath: cfg.Classifier.KeywordsPath,
		Model: classify.ModelConfig{
			ModelPath:         cfg.Classifier.ModelPath,
			TokenizerPath:     cfg.Classifier.TokenizerPath,
			MaxSequenceLength: cfg.Classifier.MaxSequenceLength,
		},
		Config: classify.Config{
			ShortCircuitThreshold: cfg.Classifier.ShortCircuitThreshold,
			UnsafeThreshold:       cfg.Classifier.UnsafeThreshold,
		},
	}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to build classifier: %w", err)
	}
	return c, nil
}
