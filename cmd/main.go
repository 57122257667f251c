package main

import (
	"os"

	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"

	"github.com/arne314/retouch/internal/app"
	cfg "github.com/arne314/retouch/internal/config"
	"github.com/arne314/retouch/internal/input"
	"github.com/arne314/retouch/internal/report"
)

var dumpConfig = spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}

func main() {
	log.SetOutput(os.Stderr)
	config := cfg.Load()
	log.Info("Starting retouch...")

	if config.Input.Original == "" || config.Input.Revised == "" {
		log.Fatalf("Both -original and -revised are required")
	}
	loader := input.NewLoader()
	original, err := loader.Load(config.Input.Original)
	if err != nil {
		log.Fatalf("Error loading original text: %v", err)
	}
	revised, err := loader.Load(config.Input.Revised)
	if err != nil {
		log.Fatalf("Error loading revised text: %v", err)
	}
	if err := app.ValidateInput(original, revised); err != nil {
		log.Fatalf("Invalid input: %v", err)
	}

	comparer, err := app.NewComparer(config)
	if err != nil {
		log.Fatalf("Error setting up comparison: %v", err)
	}
	segmentedOriginal := comparer.Segment(original)
	segmentedRevised := comparer.Segment(revised)
	if config.Input.Dump {
		dumpConfig.Fdump(os.Stderr, map[string]*app.Segmentation{
			"original": segmentedOriginal,
			"revised":  segmentedRevised,
		})
	}
	result := comparer.CompareSegmented(segmentedOriginal, segmentedRevised)

	if err := report.Render(os.Stdout, result, config.Report.Format); err != nil {
		log.Fatalf("Error writing report: %v", err)
	}
	log.Infof(
		"Done: %v%% of sentences retouched, %v%% of words conserved",
		result.SentenceRetouchPercent, result.WordConservedPercent,
	)
}
