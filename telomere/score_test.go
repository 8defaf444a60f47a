package telomere

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/fasta"
)

func testRecords() []fasta.Fasta {
	telo := strings.Repeat("TTAGGG", 6)
	filler := strings.Repeat("ACGT", 60)
	return []fasta.Fasta{
		{Name: "none", Seq: dna.StringToBases(filler)},
		{Name: "both", Seq: dna.StringToBases(telo + filler + strings.Repeat("CCCTAA", 5))},
		{Name: "leftOnly", Seq: dna.StringToBases(telo + filler)},
	}
}

func TestEvaluateRecord(t *testing.T) {
	s := defaultSettings()
	recs := testRecords()

	r := EvaluateRecord(recs[0], s)
	if r.Score != 0 || r.Left.Found || r.Right.Found {
		t.Error("expected no telomeres, got score", r.Score)
	}
	if r.Name != "none" || r.Length != len(recs[0].Seq) {
		t.Error("wrong record metadata:", r.Name, r.Length)
	}

	r = EvaluateRecord(recs[1], s)
	if r.Score != 2 || !r.Left.Found || !r.Right.Found {
		t.Error("expected telomeres at both ends, got score", r.Score)
	}

	r = EvaluateRecord(recs[2], s)
	if r.Score != 1 || !r.Left.Found || r.Right.Found {
		t.Error("expected a left telomere only, got score", r.Score)
	}

	empty := EvaluateRecord(fasta.Fasta{Name: "empty"}, s)
	if empty.Score != 0 || empty.Length != 0 {
		t.Error("empty record should score 0, got", empty.Score)
	}
}

func TestEvaluateRecordsKeepsOrder(t *testing.T) {
	s := defaultSettings()
	recs := testRecords()
	sequential := EvaluateRecords(recs, s, 1)
	parallel := EvaluateRecords(recs, s, 4)
	if !reflect.DeepEqual(sequential, parallel) {
		t.Error("parallel evaluation must preserve input order")
	}
	for i := range sequential {
		if sequential[i].Name != recs[i].Name {
			t.Error("results out of order at index", i)
		}
	}
}

func TestRank(t *testing.T) {
	s := defaultSettings()
	results := EvaluateRecords(testRecords(), s, 1)
	// input scores are 0, 2, 1
	ranked := Rank(results, false)
	if len(ranked) != 3 || ranked[0].Name != "both" || ranked[1].Name != "leftOnly" || ranked[2].Name != "none" {
		t.Error("wrong ranking:", ranked)
	}
	ranked = Rank(results, true)
	if len(ranked) != 2 || ranked[0].Name != "both" || ranked[1].Name != "leftOnly" {
		t.Error("zero-score records should be excluded:", ranked)
	}
}

func TestRankStable(t *testing.T) {
	results := []RecordResult{
		{Name: "a", Score: 1},
		{Name: "b", Score: 2},
		{Name: "c", Score: 1},
		{Name: "d", Score: 2},
		{Name: "e", Score: 0},
	}
	ranked := Rank(results, false)
	want := []string{"b", "d", "a", "c", "e"}
	for i := range ranked {
		if ranked[i].Name != want[i] {
			t.Errorf("equal scores must keep input order: position %d got %s, want %s", i, ranked[i].Name, want[i])
		}
	}
}
