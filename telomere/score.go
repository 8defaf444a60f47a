package telomere

import (
	"sync"

	"github.com/vertgenlab/gonomics/fasta"
	"golang.org/x/exp/slices"
)

// RecordResult holds the per-end scan outcomes for one sequence record.
// Score counts the ends with a telomere call and is always 0, 1, or 2.
type RecordResult struct {
	Name   string
	Length int
	Left   EndResult
	Right  EndResult
	Score  int
}

// EvaluateRecord scans both ends of one record and packages the score.
func EvaluateRecord(rec fasta.Fasta, s Settings) RecordResult {
	r := RecordResult{
		Name:   rec.Name,
		Length: len(rec.Seq),
		Left:   ScanEnd(rec.Seq, Left, s),
		Right:  ScanEnd(rec.Seq, Right, s),
	}
	if r.Left.Found {
		r.Score++
	}
	if r.Right.Found {
		r.Score++
	}
	return r
}

// EvaluateRecords scans every record, fanning work out over threads worker
// goroutines. Results are written by record index, so output order always
// matches input order regardless of completion order.
func EvaluateRecords(recs []fasta.Fasta, s Settings, threads int) []RecordResult {
	results := make([]RecordResult, len(recs))
	if threads < 2 {
		for i := range recs {
			results[i] = EvaluateRecord(recs[i], s)
		}
		return results
	}

	jobs := make(chan int, threads*2)
	wg := new(sync.WaitGroup)
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = EvaluateRecord(recs[i], s)
			}
		}()
	}
	for i := range recs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}

// Rank orders results by score, highest first. The sort is stable: records
// with equal scores keep their input order. When excludeZero is true,
// records without a telomere call at either end are dropped.
func Rank(results []RecordResult, excludeZero bool) []RecordResult {
	ranked := make([]RecordResult, 0, len(results))
	for i := range results {
		if excludeZero && results[i].Score == 0 {
			continue
		}
		ranked = append(ranked, results[i])
	}
	slices.SortStableFunc(ranked, func(a, b RecordResult) int {
		return b.Score - a.Score
	})
	return ranked
}
