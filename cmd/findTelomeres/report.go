package main

import (
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"
	"github.com/johannesnicolaus/find-telomeres/telomere"
	"github.com/vertgenlab/gonomics/bed"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// writeReport renders one block per record. Positions are printed 1-based
// inclusive for the start, end as given.
func writeReport(out io.Writer, results []telomere.RecordResult) {
	for i := range results {
		fmt.Fprintf(out, "Entry: %s\n", results[i].Name)
		fmt.Fprintf(out, "  Length: %d\n", results[i].Length)
		writeEnd(out, "Left", results[i].Left)
		writeEnd(out, "Right", results[i].Right)
		fmt.Fprintln(out)
	}
}

func writeEnd(out io.Writer, label string, e telomere.EndResult) {
	if e.Found {
		fmt.Fprintf(out, "  %s telomere: YES (%s) (positions %d-%d) sequence: %s\n",
			label, dna.BasesToString(e.Motif), e.Start+1, e.End, dna.BasesToString(e.Seq))
	} else {
		fmt.Fprintf(out, "  %s telomere: NO\n", label)
	}
}

// writeBed writes one 4-field bed record per detected telomere, named
// like 5xTTAGGG so downstream tools keep the repeat composition.
func writeBed(filename string, results []telomere.RecordResult) {
	out := fileio.EasyCreate(filename)
	defer cleanup(out)
	var curr bed.Bed
	for i := range results {
		for _, e := range []telomere.EndResult{results[i].Left, results[i].Right} {
			if !e.Found {
				continue
			}
			curr = bed.Bed{
				Chrom:             results[i].Name,
				ChromStart:        e.Start,
				ChromEnd:          e.End,
				Name:              fmt.Sprintf("%dx%s", e.Repeats, dna.BasesToString(e.Motif)),
				FieldsInitialized: 4,
			}
			bed.WriteBed(out, curr)
		}
	}
}

// repeatCounts gathers the repeat-unit count of every detected telomere.
func repeatCounts(results []telomere.RecordResult) []float64 {
	var counts []float64
	for i := range results {
		if results[i].Left.Found {
			counts = append(counts, float64(results[i].Left.Repeats))
		}
		if results[i].Right.Found {
			counts = append(counts, float64(results[i].Right.Repeats))
		}
	}
	return counts
}

// tractLengths gathers the length in bp of every detected telomere run.
func tractLengths(results []telomere.RecordResult) []float64 {
	var lengths []float64
	for i := range results {
		if results[i].Left.Found {
			lengths = append(lengths, float64(results[i].Left.End-results[i].Left.Start))
		}
		if results[i].Right.Found {
			lengths = append(lengths, float64(results[i].Right.End-results[i].Right.Start))
		}
	}
	return lengths
}

func repeatHistogram(results []telomere.RecordResult) string {
	counts := repeatCounts(results)
	if len(counts) == 0 {
		return "No telomere repeats detected.\n"
	}
	var maxCount int
	for _, c := range counts {
		if int(c) > maxCount {
			maxCount = int(c)
		}
	}
	vals := make([]float64, maxCount+1)
	for _, c := range counts {
		vals[int(c)]++
	}
	return asciigraph.Plot(vals,
		asciigraph.Height(5),
		asciigraph.Precision(0),
		asciigraph.Caption("telomere ends by repeat count")) + "\n"
}

func summarize(results []telomere.RecordResult) string {
	counts := repeatCounts(results)
	lengths := tractLengths(results)
	var byScore [3]int
	for i := range results {
		byScore[results[i].Score]++
	}
	if len(counts) == 0 {
		return fmt.Sprintf("Records scanned: %d, no telomere repeats detected.\n", len(results))
	}
	return fmt.Sprintf(
		"Records scanned: %d (both ends: %d, one end: %d, none: %d)\n"+
			"Telomere ends detected: %d\n"+
			"Repeat count mean: %.1f sd: %.1f\n"+
			"Tract length (bp) mean: %.1f sd: %.1f\n",
		len(results), byScore[2], byScore[1], byScore[0],
		len(counts),
		stat.Mean(counts, nil), stat.StdDev(counts, nil),
		stat.Mean(lengths, nil), stat.StdDev(lengths, nil))
}

func plotRepeats(filename string, results []telomere.RecordResult) {
	counts := repeatCounts(results)
	if len(counts) == 0 {
		fmt.Println("No telomere repeats detected, skipping plot.")
		return
	}
	v := make(plotter.Values, len(counts))
	copy(v, counts)
	h, err := plotter.NewHist(v, 16)
	exception.PanicOnErr(err)

	p := plot.New()
	p.Add(h)
	p.Title.Text = "Telomere repeat count distribution"
	p.X.Label.Text = "Repeat units"
	p.Y.Label.Text = "Telomere ends"

	err = p.Save(15*vg.Centimeter, 10*vg.Centimeter, filename)
	exception.PanicOnErr(err)
}
