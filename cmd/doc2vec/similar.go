package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/Draif/doc2vec/internal/logging"
	"github.com/Draif/doc2vec/internal/trainer"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

func runSimilar(args []string) error {
	fs := flag.NewFlagSet("similar", flag.ExitOnError)
	modelPath := fs.String("model", "", "path to a saved model (required)")
	k := fs.Int("k", 10, "number of neighbors to return")
	var words, docs stringList
	fs.Var(&words, "word", "query word (repeatable)")
	fs.Var(&docs, "doc", "query document tag (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *modelPath == "" {
		return fmt.Errorf("similar: -model is required")
	}
	if len(words) == 0 && len(docs) == 0 {
		return fmt.Errorf("similar: at least one -word or -doc is required")
	}

	f, err := os.Open(*modelPath)
	if err != nil {
		return fmt.Errorf("similar: open model: %w", err)
	}
	defer f.Close()

	model, err := trainer.Load(f, logging.Nop())
	if err != nil {
		return err
	}

	for _, w := range words {
		matches, err := model.FindSimilarWords(w, *k)
		if err != nil {
			fmt.Fprintln(os.Stderr, errStyle.Render("error:"), err)
			continue
		}
		fmt.Println(headerStyle.Render(fmt.Sprintf("word %q:", w)))
		for _, m := range matches {
			fmt.Printf("  %-20s %.4f\n", m.Word, m.Similarity)
		}
	}
	for _, tag := range docs {
		matches, err := model.FindSimilarDocs(tag, *k)
		if err != nil {
			fmt.Fprintln(os.Stderr, errStyle.Render("error:"), err)
			continue
		}
		fmt.Println(headerStyle.Render(fmt.Sprintf("doc %q:", tag)))
		for _, m := range matches {
			fmt.Printf("  %-20s %.4f\n", m.Tag, m.Similarity)
		}
	}
	return nil
}
