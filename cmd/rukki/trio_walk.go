package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"log/slog"
	"os"
	"sort"

	"github.com/dgryski/go-farm"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kvbio/rukki/bubblechain"
	"github.com/kvbio/rukki/gaf"
	"github.com/kvbio/rukki/gfa"
	"github.com/kvbio/rukki/haplopath"
	"github.com/kvbio/rukki/seqgraph"
	"github.com/kvbio/rukki/superbubble"
	"github.com/kvbio/rukki/trioio"
)

type trioWalkFlags struct {
	graphPath   string
	markersPath string
	outPath     string
	configPath  string
	gafStyle    bool
}

func newTrioWalkCmd() *cobra.Command {
	var flags trioWalkFlags
	cmd := &cobra.Command{
		Use:   "trio-walk",
		Short: "Grow haplotype-consistent paths from trio marker evidence",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrioWalk(cmd.Context(), flags)
		},
	}
	cmd.Flags().StringVar(&flags.graphPath, "graph", "", "GFA graph file (.gfa or .gfa.gz)")
	cmd.Flags().StringVar(&flags.markersPath, "markers", "", "TSV parental marker count file")
	cmd.Flags().StringVar(&flags.outPath, "out", "", "output path table")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "YAML threshold config (optional)")
	cmd.Flags().BoolVar(&flags.gafStyle, "gaf", false, "emit paths in GAF orientation style")
	cmd.MarkFlagRequired("graph")
	cmd.MarkFlagRequired("markers")
	cmd.MarkFlagRequired("out")
	return cmd
}

func runTrioWalk(ctx context.Context, flags trioWalkFlags) error {
	runID := uuid.New().String()
	logger := slog.With("run_id", runID, "cmd", "trio-walk")

	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		logger.Error("loading config", "err", err)
		return err
	}

	var store *seqgraph.Store
	var counts []trioio.Counts
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		f, err := os.Open(flags.graphPath)
		if err != nil {
			return errors.Wrapf(err, "opening graph file %q", flags.graphPath)
		}
		defer f.Close()
		store, err = gfa.Parse(f)
		return errors.Wrap(err, "parsing graph")
	})
	g.Go(func() error {
		f, err := os.Open(flags.markersPath)
		if err != nil {
			return errors.Wrapf(err, "opening markers file %q", flags.markersPath)
		}
		defer f.Close()
		counts, err = trioio.ReadMarkerCounts(f)
		return errors.Wrap(err, "parsing markers")
	})
	if err := g.Wait(); err != nil {
		logger.Error("loading inputs", "err", err)
		return err
	}

	logger.Info("graph loaded",
		"nodes", len(store.AllNodes()),
		"fingerprint", graphFingerprint(store))

	bubbles, chains := findBubbleChains(store, superbubble.Params{
		MaxLength: cfg.MaxLength,
		MaxDiff:   cfg.MaxDiff,
		MaxCount:  cfg.MaxCount,
	})
	logger.Info("bubble structure scanned", "superbubbles", len(bubbles), "chains", chains)

	oracle := trioio.AssignParentalGroups(store, counts, trioio.Thresholds{
		LowCount: cfg.LowMarkerCount,
		Ratio:    cfg.MarkerRatio,
	})

	searcher := haplopath.NewSearcher(store, oracle, cfg.LongNodeThreshold)
	results := searcher.FindAll()
	logger.Info("haplo-paths found", "count", len(results))

	out, err := os.Create(flags.outPath)
	if err != nil {
		logger.Error("creating output file", "err", err)
		return errors.Wrapf(err, "creating output file %q", flags.outPath)
	}
	defer out.Close()

	if err := gaf.WriteResults(out, store, results, flags.gafStyle); err != nil {
		logger.Error("writing results", "err", err)
		return err
	}
	return nil
}

// findBubbleChains runs the bounded superbubble search over every vertex of
// g, then extends each discovered bubble into its maximal chain, reporting
// how many non-nested superbubbles and distinct chains the configured
// max_length/max_diff/max_count bounds admit. Chains sharing a bubble are
// only counted once, keyed by that bubble's start vertex.
func findBubbleChains(g seqgraph.Graph, params superbubble.Params) (bubbles []*superbubble.Superbubble, chainCount int) {
	bubbles = superbubble.FindAllOuter(g, params)

	seen := map[seqgraph.Vertex]bool{}
	for _, sb := range bubbles {
		if seen[sb.Start()] {
			continue
		}
		chain := bubblechain.FindMaximalChain(g, sb.Start(), params)
		for _, c := range chain {
			seen[c.Start()] = true
		}
		if len(chain) > 0 {
			chainCount++
		}
	}
	return bubbles, chainCount
}

// graphFingerprint hashes every node's name and length, sorted by name so
// the result is independent of load order, letting two runs over what
// should be the same graph be compared for drift.
func graphFingerprint(g seqgraph.Graph) uint64 {
	nodes := g.AllNodes()
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Name < nodes[j].Name })

	var buf bytes.Buffer
	var lenBytes [8]byte
	for _, n := range nodes {
		buf.WriteString(n.Name)
		buf.WriteByte(0)
		binary.LittleEndian.PutUint64(lenBytes[:], uint64(n.Length))
		buf.Write(lenBytes[:])
	}
	return farm.Hash64(buf.Bytes())
}
