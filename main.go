// calcurve loads a calibration experiment file, tags each measured series
// with its metadata record, and prints the fit seeds (frequency estimate,
// initial parameter vectors, bounds) as JSON for a downstream
// nonlinear least-squares fitter.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/google/uuid"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/cwsl/calcurve/curve"
	"github.com/cwsl/calcurve/metadata"
)

// SeriesReport ties one series' metadata export to its fit seeds
type SeriesReport struct {
	Metadata  *orderedmap.OrderedMap[string, any] `json:"metadata"`
	Frequency float64                             `json:"frequency_estimate"`
	Guesses   []curve.Parameters                  `json:"initial_guesses"`
	Bounds    []curve.Bound                       `json:"fit_bounds"`
}

func main() {
	inputPath := flag.String("input", "", "path to experiment YAML file (required)")
	pretty := flag.Bool("pretty", false, "indent the JSON report")
	flag.Parse()

	if *inputPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	exp, err := LoadExperimentFile(*inputPath)
	if err != nil {
		log.Fatalf("Loading experiment: %v", err)
	}

	expID := exp.ExpID
	if expID == "" {
		expID = uuid.NewString()
		log.Printf("No exp_id in %s, generated %s", *inputPath, expID)
	}

	var model curve.CosineModel
	reports := make([]SeriesReport, 0, len(exp.Series))
	for i, s := range exp.Series {
		md, err := metadata.New(metadata.Config{
			Name:              exp.Name,
			PulseScheduleName: exp.PulseScheduleName,
			XValues:           s.XValues,
			Series:            s.Label,
			ExpID:             expID,
			Qubits:            exp.Qubits,
			RegisterMap:       exp.RegisterMap,
		})
		if err != nil {
			log.Fatalf("Series %d metadata: %v", i, err)
		}

		freq := curve.EstimateFrequency(s.X, s.Y)
		if freq == 0 {
			log.Printf("Series %d: no usable frequency estimate, seeding with f=0", i)
		}

		reports = append(reports, SeriesReport{
			Metadata:  md.ToMap(),
			Frequency: freq,
			Guesses:   model.InitialGuess(s.X, s.Y),
			Bounds:    model.FitBoundary(s.X, s.Y),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(reports); err != nil {
		log.Fatalf("Encoding report: %v", err)
	}
}
