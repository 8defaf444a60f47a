package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/johannesnicolaus/find-telomeres/seqio"
	"github.com/johannesnicolaus/find-telomeres/telomere"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"golang.org/x/exp/slices"
)

func usage() {
	fmt.Print(
		"findTelomeres - Scan a FASTA file for telomere repeats at sequence ends\n" +
			"and sort entries by telomere presence.\n" +
			"Usage:\n" +
			"findTelomeres [options] -i assembly.fasta > report.txt\n\n")
	flag.PrintDefaults()
}

// motifList is a custom type that gets filled by flag.Parse()
type motifList []string

// String to satisfy flag.Value interface
func (m *motifList) String() string {
	return strings.Join(*m, " ")
}

// Set to satisfy flag.Value interface
func (m *motifList) Set(value string) error {
	value = strings.ToUpper(value)
	if slices.Contains(*m, value) {
		return fmt.Errorf("duplicate motif: %s", value)
	}
	*m = append(*m, value)
	return nil
}

func main() {
	var motifs motifList
	input := flag.String("i", "", "Input `FASTA` file.")
	output := flag.String("o", "stdout", "Output report file.")
	flag.Var(&motifs, "motif", "Telomere repeat motif. May be declared more than once with additional -motif flags. (default TTAGGG and CCCTAA)")
	minRepeats := flag.Int("minRepeats", 5, "Minimum consecutive repeats required for a telomere call.")
	window := flag.Int("window", 200, "Window size (in bp) at each end of the sequence to search.")
	maxOffset := flag.Int("maxOffset", 10, "Maximum distance (in bp) between a repeat run and the outer edge of the search window.")
	excludeNoTelomere := flag.Bool("excludeNoTelomere", false, "Exclude entries without a telomere at either end from all output.")
	bedFile := flag.String("bed", "", "Output `BED` file with coordinates of detected telomere repeat runs.")
	hist := flag.Bool("hist", false, "Print a histogram of repeat counts for detected telomeres after the report.")
	stats := flag.Bool("stats", false, "Print summary statistics for detected telomeres after the report.")
	plotFile := flag.String("plot", "", "Save a histogram of repeat counts for detected telomeres to an image file (format from extension, e.g. .png or .pdf).")
	threads := flag.Int("threads", 1, "Number of processor threads to use for scanning.")
	verbose := flag.Bool("verbose", false, "Print progress updates.")
	flag.Parse()

	if *input == "" {
		usage()
		log.Fatal("ERROR: Must have a value for -i.")
	}
	if *threads < 1 {
		log.Fatal("ERROR: threads must be >= 1.")
	}
	if len(motifs) == 0 {
		motifs = motifList{"TTAGGG", "CCCTAA"}
	}

	s := telomere.Settings{
		Motifs:     make([][]dna.Base, len(motifs)),
		MinRepeats: *minRepeats,
		Window:     *window,
		MaxOffset:  *maxOffset,
	}
	for i := range motifs {
		s.Motifs[i] = dna.StringToBases(motifs[i])
	}
	if err := s.Validate(); err != nil {
		usage()
		log.Fatalf("ERROR: %v", err)
	}

	findTelomeres(*input, *output, *bedFile, *plotFile, s, *excludeNoTelomere, *hist, *stats, *threads, *verbose)
}

func findTelomeres(input, output, bedFile, plotFile string, s telomere.Settings, excludeNoTelomere, hist, stats bool, threads int, verbose bool) {
	records, err := seqio.Read(input)
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}
	if verbose {
		log.Printf("read %d records from %s", len(records), input)
	}
	for i := range records {
		dna.AllToUpper(records[i].Seq)
	}

	results := telomere.EvaluateRecords(records, s, threads)
	ranked := telomere.Rank(results, excludeNoTelomere)
	if verbose {
		log.Printf("scanned %d records, %d with telomere repeats", len(results), countScored(results))
	}

	out := fileio.EasyCreate(output)
	defer cleanup(out)
	writeReport(out, ranked)

	if bedFile != "" {
		writeBed(bedFile, ranked)
	}
	if hist {
		fmt.Fprint(out, repeatHistogram(ranked))
	}
	if stats {
		fmt.Fprint(out, summarize(ranked))
	}
	if plotFile != "" {
		plotRepeats(plotFile, ranked)
		if verbose {
			log.Printf("saved repeat count histogram to %s", plotFile)
		}
	}
}

func countScored(results []telomere.RecordResult) int {
	var n int
	for i := range results {
		if results[i].Score > 0 {
			n++
		}
	}
	return n
}

func cleanup(f io.Closer) {
	err := f.Close()
	exception.PanicOnErr(err)
}
