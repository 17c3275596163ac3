package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"subtext/internal/analyzer"
	"subtext/internal/detect"
	"subtext/internal/domain"
	"subtext/internal/scoring"
	"subtext/internal/trail"
)

// readText returns the first file argument's contents, or stdin when no
// argument was given.
func readText(args []string) (string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		name         string
		context      string
		depth        string
		noContribute bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Run the full analysis on a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(args)
			if err != nil {
				return err
			}
			analysis, err := a.analyzer.Analyze(text, name, context, domain.SeeingDepth(depth), !noContribute)
			if err != nil {
				return err
			}
			return printJSON(struct {
				Analysis   *domain.SystemAnalysis   `json:"analysis"`
				Assessment analyzer.DepthAssessment `json:"depth_assessment"`
			}{analysis, a.analyzer.AssessSeeingDepth(analysis)})
		},
	}

	cmd.Flags().StringVar(&name, "name", "Unknown System", "name of the system under analysis")
	cmd.Flags().StringVar(&context, "context", "", "additional context appended for matching")
	cmd.Flags().StringVar(&depth, "depth", string(domain.DepthStructure),
		"seeing depth: surface|pattern|structure|generative|recursive|integral")
	cmd.Flags().BoolVar(&noContribute, "no-contribute", false, "skip the collective contribution")
	return cmd
}

func newDetectCmd(a *app, kind, short string) *cobra.Command {
	return &cobra.Command{
		Use:   kind + " [file]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(args)
			if err != nil {
				return err
			}
			switch kind {
			case "frames":
				return printJSON(detect.DetectFrames(a.tables, text, ""))
			case "masks":
				return printJSON(a.analyzer.Graph().IdentifyMasks(text))
			case "spells":
				spells := detect.AnalyzeSpells(a.tables, text)
				return printJSON(struct {
					Spells  []domain.Spell        `json:"spells"`
					Potency scoring.PotencyReport `json:"potency"`
				}{spells, scoring.ComputePotency(spells)})
			case "prisons":
				prisons := detect.MapPrisons(a.tables, text)
				return printJSON(struct {
					Prisons []domain.Prison    `json:"prisons"`
					Cage    scoring.CageReport `json:"cage"`
				}{prisons, scoring.ComputeCageScore(prisons)})
			}
			return fmt.Errorf("unknown detector %q", kind)
		},
	}
}

func newCorpusCmd(a *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "corpus <file>...",
		Short: "Scan multiple texts for cross-text patterns",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var texts []string
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", path, err)
				}
				texts = append(texts, string(data))
			}
			report, err := a.analyzer.ScanCorpus(texts, name)
			if err != nil {
				return err
			}
			return printJSON(report)
		},
	}

	cmd.Flags().StringVar(&name, "name", "Corpus", "name of the corpus under analysis")
	return cmd
}

func newCollectiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "collective",
		Short: "Print the collective insight map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(a.analyzer.CollectiveMap())
		},
	}
}

func newSelfCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "self",
		Short: "Turn the scanner on itself",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(a.analyzer.ExamineSelf())
		},
	}
}

func newTrailCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trail",
		Short: "Work with the crumb trail",
	}
	cmd.AddCommand(newTrailDropCmd(a), newTrailFollowCmd(a))
	return cmd
}

// openTrail loads the persisted trail when one exists so crumbs survive
// across invocations; otherwise it falls back to the analyzer's in-memory
// store.
func openTrail(a *app) *trail.Trail {
	if a.cfg.TrailPath != "" {
		if t, err := trail.Load(a.cfg.TrailPath); err == nil {
			return t
		}
	}
	return a.analyzer.Trail()
}

func newTrailDropCmd(a *app) *cobra.Command {
	var (
		crumbType  string
		context    string
		visibility string
		chainID    string
	)

	cmd := &cobra.Command{
		Use:   "drop <content>",
		Short: "Drop a crumb into the trail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := openTrail(a)
			crumb := t.DropCrumb(
				args[0], domain.CrumbType(strings.ToUpper(crumbType)),
				context, visibility, "", chainID)
			if a.cfg.TrailPath != "" {
				if err := t.Persist(a.cfg.TrailPath); err != nil {
					return err
				}
			}
			return printJSON(crumb)
		},
	}

	cmd.Flags().StringVar(&crumbType, "type", string(domain.CrumbSignal),
		"crumb type: question|pattern|paradox|bridge|mirror|trail|signal")
	cmd.Flags().StringVar(&context, "context", "", "where and why the crumb was dropped")
	cmd.Flags().StringVar(&visibility, "visibility", domain.VisibilityHidden, "hidden|subtle|public")
	cmd.Flags().StringVar(&chainID, "chain", "", "chain to link the crumb into")
	return cmd
}

func newTrailFollowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "follow <chain-id>",
		Short: "List the crumbs in a chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(openTrail(a).FollowChain(args[0]))
		},
	}
}
