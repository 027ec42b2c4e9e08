package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/tools/imports"
)

type writeOptions struct {
	Dry               bool
	DisableFormatting bool
}

func logTime(l *logrus.Entry, s string, fn func() error) error {
	l = l.WithField("operation", s)

	a := time.Now()

	l = l.WithField("time_start", a)

	l.Debug("starting")

	err := fn()

	b := time.Now()

	l.WithFields(logrus.Fields{
		"time_end":   b,
		"time_total": b.Sub(a),
	}).Debug("finished")

	return err
}

func executeWriters(l *logrus.Entry, a []writer, opts writeOptions) ([]string, error) {
	var files []string

	for i, w := range a {
		l := l.WithField("writer", i)

		if err := executeWriter(l, w, opts); err != nil {
			return files, err
		}

		files = append(files, w.File())
	}

	return files, nil
}

// executeWriter renders w and replaces its target file. Go output is run
// through goimports unless formatting is disabled.
func executeWriter(l *logrus.Entry, w writer, opts writeOptions) error {
	filename := w.File()

	l = l.WithField("output", filename)

	l.Info("executing writer")

	if !opts.Dry {
		if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
			return errors.Wrap(err, "could not prepare target directory")
		}
	}

	var nice []byte

	if err := logTime(l, "generate code", func() error {
		b, err := renderWriter(w)
		nice = b
		return err
	}); err != nil {
		return err
	}

	if w.Language() == "go" && !opts.DisableFormatting {
		if err := logTime(l, "format go code", func() error {
			d, err := imports.Process(filename, nice, nil)
			if err != nil {
				return errors.Wrapf(err, "could not format go code for %s", filename)
			}
			nice = d
			return nil
		}); err != nil {
			return err
		}
	}

	if !opts.Dry {
		if err := logTime(l, "write file", func() error {
			return errors.Wrap(os.WriteFile(filename, nice, 0644), "could not write output")
		}); err != nil {
			return err
		}
	}

	return nil
}
