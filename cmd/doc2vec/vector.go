package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Draif/doc2vec/internal/logging"
	"github.com/Draif/doc2vec/internal/trainer"
)

func runVector(args []string) error {
	fs := flag.NewFlagSet("vector", flag.ExitOnError)
	modelPath := fs.String("model", "", "path to a saved model (required)")
	var words, docs stringList
	fs.Var(&words, "word", "word to print the vector for (repeatable)")
	fs.Var(&docs, "doc", "document tag to print the vector for (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *modelPath == "" {
		return fmt.Errorf("vector: -model is required")
	}
	if len(words) == 0 && len(docs) == 0 {
		return fmt.Errorf("vector: at least one -word or -doc is required")
	}

	f, err := os.Open(*modelPath)
	if err != nil {
		return fmt.Errorf("vector: open model: %w", err)
	}
	defer f.Close()

	model, err := trainer.Load(f, logging.Nop())
	if err != nil {
		return err
	}

	for _, w := range words {
		v, err := model.WordVector(w)
		if err != nil {
			fmt.Fprintln(os.Stderr, errStyle.Render("error:"), err)
			continue
		}
		fmt.Printf("%s %s\n", w, formatVector(v))
	}
	for _, tag := range docs {
		v, err := model.DocVector(tag)
		if err != nil {
			fmt.Fprintln(os.Stderr, errStyle.Render("error:"), err)
			continue
		}
		fmt.Printf("%s %s\n", tag, formatVector(v))
	}
	return nil
}
