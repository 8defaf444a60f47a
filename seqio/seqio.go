// Package seqio reads fasta files into records suitable for end scanning.
package seqio

import (
	"fmt"
	"strings"

	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fasta"
	"github.com/vertgenlab/gonomics/fileio"
)

// Read parses a fasta file into records in file order. The record name is
// the first whitespace-delimited token after '>', matching how assembly
// tools refer to contigs; any description after it is dropped. A header
// with no sequence lines yields a record with an empty sequence. Sequence
// data before the first header is a malformed file and returns an error.
func Read(filename string) ([]fasta.Fasta, error) {
	file := fileio.EasyOpen(filename)
	var records []fasta.Fasta
	var inRecord bool
	var line string
	var done bool
	for line, done = fileio.EasyNextRealLine(file); !done; line, done = fileio.EasyNextRealLine(file) {
		if strings.HasPrefix(line, ">") {
			var name string
			if fields := strings.Fields(line[1:]); len(fields) > 0 {
				name = fields[0]
			}
			records = append(records, fasta.Fasta{Name: name})
			inRecord = true
			continue
		}
		if !inRecord {
			err := file.Close()
			exception.PanicOnErr(err)
			return nil, fmt.Errorf("malformed fasta %s: sequence data before first header", filename)
		}
		records[len(records)-1].Seq = append(records[len(records)-1].Seq, dna.StringToBases(line)...)
	}
	err := file.Close()
	exception.PanicOnErr(err)
	return records, nil
}
