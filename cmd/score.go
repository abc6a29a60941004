package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/quitcheck/internal/assessment"
	"github.com/abhisek/quitcheck/internal/report"
	"github.com/abhisek/quitcheck/internal/variant"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a set of answers without the interactive UI",
	Long: "Score a set of answers without the interactive UI.\n\n" +
		"--answers takes one letter per question in catalog order; '-' skips a question.\n" +
		"--file reads a YAML or JSON mapping of question id to letter.",
	Example: "  quitcheck score --variant survival --answers ABCDABCDABCDABCDABCD\n" +
		"  quitcheck score --variant readiness --file answers.yaml --format markdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("variant")
		if name == "" {
			name = cfg.Variant
		}
		formatName, _ := cmd.Flags().GetString("format")
		format, err := report.ParseFormat(formatName)
		if err != nil {
			return err
		}

		v, err := variant.Load(name)
		if err != nil {
			return err
		}
		answers, err := readAnswers(cmd, v)
		if err != nil {
			return err
		}

		outcome, err := v.Engine.Evaluate(answers)
		if err != nil {
			return err
		}
		return report.Write(cmd.OutOrStdout(), report.New(v, answers, outcome), format)
	},
}

func init() {
	scoreCmd.Flags().String("variant", "", "Questionnaire to score against (default from config)")
	scoreCmd.Flags().String("answers", "", "Positional answers, e.g. ABCD-A")
	scoreCmd.Flags().String("file", "", "YAML/JSON file mapping question id to letter")
	scoreCmd.Flags().String("format", "text", "Output format: text, markdown, html")
	scoreCmd.MarkFlagsMutuallyExclusive("answers", "file")
}

func readAnswers(cmd *cobra.Command, v *variant.Variant) (assessment.Answers, error) {
	positional, _ := cmd.Flags().GetString("answers")
	path, _ := cmd.Flags().GetString("file")

	switch {
	case positional != "":
		return v.ParseAnswers(positional)
	case path != "":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read answers file: %w", err)
		}
		var raw map[int]string
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse answers file: %w", err)
		}
		return v.AnswersFromMap(raw)
	default:
		return nil, errors.New("one of --answers or --file is required")
	}
}
