// Command doc2vec is a thin external front-end: it parses flags, opens
// files, and renders results, while every bit of training/query logic
// lives in the internal packages.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var errStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "train":
		err = runTrain(os.Args[2:])
	case "similar":
		err = runSimilar(os.Args[2:])
	case "vector":
		err = runVector(os.Args[2:])
	case "-help", "--help", "help":
		usage()
		return
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render("error:"), err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `doc2vec - paragraph-vector training and query

Usage:
  doc2vec train   -input FILE -output FILE [train flags]
  doc2vec similar -model FILE [-word W]... [-doc TAG]... [-k N]
  doc2vec vector  -model FILE [-word W]... [-doc TAG]...
  doc2vec -help`)
}
