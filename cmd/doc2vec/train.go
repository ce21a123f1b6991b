package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Draif/doc2vec/internal/config"
	"github.com/Draif/doc2vec/internal/logging"
	"github.com/Draif/doc2vec/internal/trainer"
)

func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	input := fs.String("input", "", "path to the tagged-text training corpus (required)")
	output := fs.String("output", "", "path to write the trained model (required)")
	def := config.Default()
	dim := fs.Int("dim", def.Dimension, "embedding dimension")
	hs := fs.Bool("hs", def.HierarchicalSoftMax, "enable hierarchical softmax")
	cbow := fs.Bool("cbow", def.CBOW, "use CBOW instead of Skip-Gram")
	nsNum := fs.Int("ns-num", def.NegativeSamples, "negative samples per update (0 disables NS)")
	iters := fs.Int("iters", def.Iterations, "training epochs per shard")
	window := fs.Int("window", def.Window, "context window radius")
	sample := fs.Float64("sample", def.Sample, "subsampling threshold (0 disables subsampling)")
	threads := fs.Int("threads", def.Threads, "number of training shards/workers")
	alpha := fs.Float64("alpha", def.Alpha, "initial learning rate")
	logLevel := fs.String("log-level", "info", "debug, info, warn, or error")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" || *output == "" {
		return fmt.Errorf("train: -input and -output are required")
	}

	log, err := logging.New(&logging.Config{Level: *logLevel, Output: "stderr"})
	if err != nil {
		return err
	}

	spec := config.TrainSpec{
		Dimension:           *dim,
		HierarchicalSoftMax: *hs,
		CBOW:                *cbow,
		NegativeSamples:     *nsNum,
		Iterations:          *iters,
		Window:              *window,
		Sample:              *sample,
		Threads:             *threads,
		Alpha:               *alpha,
		TrainFilename:       *input,
	}
	log.Info("train spec: %s", spec)

	in, err := os.Open(*input)
	if err != nil {
		return fmt.Errorf("train: open input: %w", err)
	}
	defer in.Close()

	model, err := trainer.New(spec, in, log)
	if err != nil {
		return err
	}
	if err := model.Train(); err != nil {
		return err
	}

	out, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("train: create output: %w", err)
	}
	defer out.Close()
	if err := model.Save(out); err != nil {
		return fmt.Errorf("train: save model: %w", err)
	}
	log.Info("model saved to %s", *output)
	return nil
}
