package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/biogo/hts/sam"
	"github.com/fatih/color"
)

type recordReader interface {
	Read() (*sam.Record, error)
}

type recordWriter interface {
	Write(*sam.Record) error
}

type trimStats struct {
	Total    int64
	Kept     int64
	Duration time.Duration
}

// trimRecords copies every record of at least keepLength bases from r to w,
// trimmed to its best quality window. Shorter records are skipped.
func trimRecords(r recordReader, w recordWriter, keepLength int) (trimStats, error) {
	var stats trimStats
	for {
		read, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return stats, fmt.Errorf("read record %d: %w", stats.Total+1, err)
		}
		stats.Total++

		if read.Seq.Length < keepLength {
			continue
		}

		idx := selectWindow(read.Qual, keepLength)
		trimmed, err := bamToUbam(read, idx, keepLength)
		if err != nil {
			return stats, err
		}
		if err := w.Write(trimmed); err != nil {
			return stats, fmt.Errorf("write %q: %w", read.Name, err)
		}
		stats.Kept++
	}
	return stats, nil
}

// ProcessReads trims every read in inputFile to keepLength and writes the
// result to outputFile as unmapped BAM. A failed run leaves whatever was
// already written in place.
func ProcessReads(inputFile, outputFile string, keepLength int) (trimStats, error) {
	startTime := time.Now()

	out, err := createOutput(outputFile, keepLength)
	if err != nil {
		return trimStats{}, fmt.Errorf("create output %s: %w", outputFile, err)
	}

	in, err := openInput(inputFile)
	if err != nil {
		err = fmt.Errorf("open input %s: %w", inputFile, err)
		return trimStats{}, errors.Join(err, out.Close())
	}
	defer in.Close()

	stats, err := trimRecords(in, out, keepLength)
	if err != nil {
		return stats, errors.Join(err, out.Close())
	}

	if err := out.Close(); err != nil {
		return stats, fmt.Errorf("close output %s: %w", outputFile, err)
	}
	stats.Duration = time.Since(startTime)
	return stats, nil
}

// reportStats prints the number of reads written. Dropped reads are not
// reported.
func reportStats(w io.Writer, stats trimStats) {
	color.New(color.FgHiGreen).Fprintf(w, "\nTrimmed reads: %s\n", Comma(stats.Kept))
	fmt.Fprintf(w, "\nApplication execution time: %s\n", stats.Duration)
}

func Comma(value int64) string {
	str := strconv.FormatInt(value, 10)
	result := ""
	count := 0
	for i := len(str) - 1; i >= 0; i-- {
		if count > 0 && count%3 == 0 {
			result = "," + result
		}
		result = string(str[i]) + result
		count++
	}
	return result
}
