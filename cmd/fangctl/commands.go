package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/CyberTud/dracula-wtf/internal/modules/card"
	"github.com/CyberTud/dracula-wtf/internal/modules/roast"
	"github.com/CyberTud/dracula-wtf/internal/rubric"
	"github.com/CyberTud/dracula-wtf/internal/share"
	"github.com/spf13/cobra"
)

const (
	minTextRunes = 10
	maxTextRunes = 5000
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fangctl",
		Short:         "Score text for vampire energy from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newScoreCmd(), newIDCmd(), newCardCmd())
	return root
}

// scoreOutput is the analysis plus the offline caption.
type scoreOutput struct {
	rubric.Result
	Roast string `json:"roast"`
}

func newScoreCmd() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "score [file|-]",
		Short: "Analyze text from a file or stdin and print the result as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := rubric.ParseMode(mode)
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if n := utf8.RuneCountInString(text); n < minTextRunes || n > maxTextRunes {
				return fmt.Errorf("text must be %d-%d characters, got %d", minTextRunes, maxTextRunes, n)
			}

			res := rubric.Analyze(text, m)
			if res.Evidence == nil {
				res.Evidence = []string{}
			}
			out := scoreOutput{Result: res, Roast: roast.Fallback(res.Bucket, res.OverallScore)}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", string(rubric.ModeEveryday), "startup, dating, politics or everyday")
	return cmd
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return "", fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

func newIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "id <text>",
		Short: "Print the result id the server would assign to text right now",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), share.NewResultID(strings.Join(args, " "), time.Now()))
			return err
		},
	}
}

func newCardCmd() *cobra.Command {
	var (
		score                        int
		bucket, mode, caption, quote string
		output                       string
	)
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Render a share card PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := url.Values{}
			q.Set("score", strconv.Itoa(score))
			q.Set("bucket", bucket)
			q.Set("mode", mode)
			q.Set("roast", caption)
			q.Set("evidence", quote)
			p := card.ParseParams(q)

			var w io.Writer = cmd.OutOrStdout()
			if output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				w = f
			}
			return card.Encode(w, p)
		},
	}
	cmd.Flags().IntVar(&score, "score", 0, "overall score, 0-100")
	cmd.Flags().StringVar(&bucket, "bucket", "", "bucket label, derived from the score when empty")
	cmd.Flags().StringVar(&mode, "mode", string(rubric.ModeEveryday), "mode shown on the card")
	cmd.Flags().StringVar(&caption, "roast", "", "caption text")
	cmd.Flags().StringVar(&quote, "evidence", "", "quoted evidence snippet")
	cmd.Flags().StringVarP(&output, "output", "o", "card.png", "output file, - for stdout")
	return cmd
}
