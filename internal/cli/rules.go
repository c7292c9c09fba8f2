package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ppiankov/chatwarden/internal/admin"
	"github.com/ppiankov/chatwarden/internal/classify"
	"github.com/ppiankov/chatwarden/internal/rules"
)

var (
	ruleProfile  string
	ruleID       string
	ruleName     string
	ruleAction   string
	ruleCategory string
	ruleMinConf  float32
	ruleDays     []string
	ruleStart    string
	ruleEnd      string
)

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesListCmd, rulesAddCmd, rulesRemoveCmd)
	rulesCmd.PersistentFlags().StringVar(&ruleProfile, "profile", "", "Profile the rule belongs to (default: installation rules)")

	f := rulesAddCmd.Flags()
	f.StringVar(&ruleID, "id", "", "Rule id (generated when empty)")
	f.StringVar(&ruleName, "name", "", "Human-readable name")
	f.StringVar(&ruleAction, "action", "block", "allow | warn | block")
	f.StringVar(&ruleCategory, "category", "", "Content rule: category to match ("+categoryNames()+")")
	f.Float32Var(&ruleMinConf, "min-confidence", 0.5, "Content rule: minimum match confidence")
	f.StringSliceVar(&ruleDays, "days", nil, "Time rule: weekdays (mon,tue,...); empty means every day")
	f.StringVar(&ruleStart, "start", "", "Time rule: window start HH:MM")
	f.StringVar(&ruleEnd, "end", "", "Time rule: window end HH:MM")
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage time and content rules",
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List rules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAdmin(func(ctx context.Context, c *admin.Client) error {
			list, profiles, err := c.ListRules(ctx, ruleProfile)
			if err != nil {
				return err
			}
			printRules(cmd.OutOrStdout(), list)
			if len(profiles) > 0 {
				dimColor.Fprintf(cmd.OutOrStdout(), "\nProfiles: %s\n", strings.Join(profiles, ", "))
			}
			return nil
		})
	},
}

var rulesAddCmd = &cobra.Command{
	Use:   "add time|content",
	Short: "Add a rule",
	Example: `  chatwarden rules add time --profile kids --days mon,tue,wed,thu,sun --start 21:00 --end 07:00
  chatwarden rules add content --category violence --min-confidence 0.4 --action block`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(rules.KindTime), string(rules.KindContent)},
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := ruleFromFlags(args[0])
		if err != nil {
			return err
		}
		return withAdmin(func(ctx context.Context, c *admin.Client) error {
			created, err := c.CreateRule(ctx, ruleProfile, r)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", created.ID)
			return nil
		})
	},
}

var rulesRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a rule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAdmin(func(ctx context.Context, c *admin.Client) error {
			if err := c.DeleteRule(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		})
	},
}

func ruleFromFlags(kind string) (rules.Rule, error) {
	action, err := rules.ParseAction(ruleAction)
	if err != nil {
		return rules.Rule{}, err
	}
	r := rules.Rule{ID: ruleID, Name: ruleName, Kind: rules.Kind(kind), Action: action}
	switch r.Kind {
	case rules.KindTime:
		r.Days, r.Start, r.End = ruleDays, ruleStart, ruleEnd
	case rules.KindContent:
		cat, ok := classify.ParseCategory(ruleCategory)
		if !ok {
			return rules.Rule{}, fmt.Errorf("unknown category %q (want one of %s)", ruleCategory, categoryNames())
		}
		r.Category, r.MinConfidence = cat, ruleMinConf
	default:
		return rules.Rule{}, fmt.Errorf("rule kind must be time or content, got %q", kind)
	}
	return r, nil
}

func categoryNames() string {
	names := make([]string, len(classify.Categories))
	for i, c := range classify.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func printRules(w io.Writer, rs []rules.Rule) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	headColor.Fprintln(tw, "ID\tKIND\tACTION\tMATCH")
	for _, r := range rs {
		var match string
		if r.Kind == rules.KindTime {
			days := "every day"
			if len(r.Days) > 0 {
				days = strings.Join(r.Days, ",")
			}
			match = fmt.Sprintf("%s-%s %s", r.Start, r.End, days)
		} else {
			match = fmt.Sprintf("%s >= %.2f", r.Category, r.MinConfidence)
		}
		a := r.Action.String()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, r.Kind, actionColor(a).Sprint(a), match)
	}
	tw.Flush()
}
