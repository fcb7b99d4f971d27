package main

import (
	"fmt"
	"os"

	"github.com/m-manu/bucket-set/driver"
	"github.com/m-manu/bucket-set/fmte"
)

// loadValues reads values from inputPath, or generates cfg.Count random ones when it is empty
func loadValues(cfg driver.Config, inputPath string) ([]int, error) {
	if inputPath == "" {
		fmte.Printf("Generating %d random values (seed %d)...\n", cfg.Count, cfg.Seed)
		return driver.RandomValues(cfg.Count, cfg.Seed), nil
	}
	file, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("error opening input file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	values, err := driver.ReadValues(file)
	if err != nil {
		return nil, fmt.Errorf("error in input file %s: %w", inputPath, err)
	}
	fmte.Printf("Read %d values from %s\n", len(values), inputPath)
	return values, nil
}

func bucketSet(cfg driver.Config, values []int) error {
	fmte.Printf("Inserting into a set of %d buckets...\n", cfg.Capacity)
	report, err := driver.Run(cfg, values)
	if err != nil {
		return err
	}
	fmte.Printf("%s", report.String())
	return nil
}
