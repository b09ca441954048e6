// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/someonegg/petmatch"
	"github.com/someonegg/petmatch/shelter"
	"gopkg.in/yaml.v3"
)

func loadDataset(file string) (*shelter.Dataset, error) {
	if file == "" {
		return shelter.Sample(), nil
	}
	ds, err := shelter.Load(file)
	if err != nil {
		return nil, fmt.Errorf("load data file failed: %w", err)
	}
	return ds, nil
}

func newMatchmaker(opts runOptions, top *int) *shelter.Matchmaker {
	return &shelter.Matchmaker{
		Top:     top,
		Seed:    opts.seed,
		Verbose: opts.verbose,
		Logger:  logger,
	}
}

func build(opts runOptions, top *int) (*shelter.Matchmaker, []*petmatch.Center, []petmatch.Adopter, error) {
	ds, err := loadDataset(opts.dataFile)
	if err != nil {
		return nil, nil, nil, err
	}

	m := newMatchmaker(opts, top)
	centers, adopters, err := m.Build(ds)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("build dataset failed: %w", err)
	}

	return m, centers, adopters, nil
}

func doRank(ctx context.Context, opts runOptions, only string) error {
	_, centers, adopters, err := build(opts, nil)
	if err != nil {
		return err
	}

	found := false
	for _, a := range adopters {
		if only != "" && a.Name() != only {
			continue
		}
		found = true
		fmt.Println("The best adoption centers for " + a.Name() + " are, in descending order: ")
		fmt.Println(formatNames(petmatch.RankCenters(a, centers)))
	}
	if only != "" && !found {
		return fmt.Errorf("unknown adopter: %s", only)
	}

	return nil
}

func doAdvertise(ctx context.Context, opts runOptions, only string, top int, adopt string) error {
	if top < 0 {
		return errors.New("invalid top")
	}
	if adopt != "" && only == "" {
		return errors.New("--adopt needs --center")
	}

	m, centers, adopters, err := build(opts, &top)
	if err != nil {
		return err
	}

	if only != "" && shelter.FindCenter(centers, only) == nil {
		return fmt.Errorf("%w: %s", shelter.ErrUnknownCenter, only)
	}

	if adopt != "" {
		if err := m.Adopt(centers, only, adopt); err != nil {
			return err
		}
	}

	for _, c := range centers {
		if only != "" && c.Name() != only {
			continue
		}
		fmt.Printf("The top %d candidate adopters for %s are, in descending order: \n", top, c.Name())
		fmt.Println(formatNames(petmatch.TopAdopters(c, adopters, top)))
	}

	return nil
}

func doReport(ctx context.Context, opts runOptions, reportFile string, top int) error {
	m, centers, adopters, err := build(opts, &top)
	if err != nil {
		return err
	}

	report := m.Match(centers, adopters)
	fmt.Printf("%+v\n", report.Summary)

	if err := writeJSON(reportFile, report); err != nil {
		return fmt.Errorf("write report file failed: %w", err)
	}

	return nil
}

func doList(ctx context.Context, opts runOptions) error {
	_, centers, adopters, err := build(opts, nil)
	if err != nil {
		return err
	}

	for _, c := range centers {
		fmt.Println("Created " + c.String())
	}
	fmt.Println("")
	for _, a := range adopters {
		fmt.Println("Created " + fmt.Sprint(a))
	}

	return nil
}

func doSample(ctx context.Context, file string) error {
	ds := shelter.Sample()

	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		data, err := yaml.Marshal(ds)
		if err != nil {
			return err
		}
		return os.WriteFile(file, data, 0644)
	default:
		return writeJSON(file, ds)
	}
}

func formatNames(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return "(" + strings.Join(quoted, ", ") + ")"
}

func writeJSON(file string, v interface{}) error {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "   ")
	if err := encoder.Encode(v); err != nil {
		return err
	}

	return os.WriteFile(file, buf.Bytes(), 0644)
}
