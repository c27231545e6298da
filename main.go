package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/heathj/html5parse/parser"
)

// main is a thin wrapper around parser.Parse: read a document from stdin
// or a file argument, print its tree, and list any recorded parse errors.
func main() {
	log := logrus.NewEntry(logrus.StandardLogger())

	var r *os.File = os.Stdin
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			log.WithError(err).Fatal("open input")
		}
		defer f.Close()
		r = f
	}

	doc, err := parser.ParseReader(r, parser.Options{Log: log})
	if err != nil {
		log.WithError(err).Fatal("parse")
	}

	fmt.Println(doc.String())
	for _, pe := range doc.ParseErrors {
		fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", os.Args[0], pe.Line, pe.Column, pe.Kind)
	}
}
