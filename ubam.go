package main

import (
	"fmt"

	"github.com/biogo/hts/sam"
)

const (
	pe150Name   = "PE150"
	pe150Length = 150
	keepRefName = "KEEP_LENGTH"

	headerVersion = "1.0"
)

const (
	ubamRead1Flags = sam.Paired | sam.Unmapped | sam.MateUnmapped | sam.Read1 // 77
	ubamRead2Flags = sam.Paired | sam.Unmapped | sam.MateUnmapped | sam.Read2 // 141
)

// YT:Z:UP marks a read as unpaired-processed.
var (
	provenanceTag   = sam.NewTag("YT")
	provenanceValue = "UP"
)

// bamToUbam builds an unmapped record holding read's sequence and
// qualities over [start, start+length). Alignment fields take their
// unmapped values and only the provenance tag is attached.
func bamToUbam(read *sam.Record, start, length int) (*sam.Record, error) {
	if start < 0 || length < 0 || start+length > read.Seq.Length {
		panic(fmt.Sprintf("bamToUbam: window [%d, %d) outside read %q of length %d", start, start+length, read.Name, read.Seq.Length))
	}

	seq := read.Seq.Expand()[start : start+length]
	var qual []byte
	if read.Qual != nil {
		qual = make([]byte, length)
		copy(qual, read.Qual[start:start+length])
	}

	yt, err := sam.NewAux(provenanceTag, provenanceValue)
	if err != nil {
		return nil, err
	}

	newRead, err := sam.NewRecord(read.Name, nil, nil, -1, -1, 0, 0, nil, seq, qual, []sam.Aux{yt})
	if err != nil {
		return nil, fmt.Errorf("build unmapped record %q: %w", read.Name, err)
	}

	if read.Flags&sam.Read1 != 0 {
		newRead.Flags = ubamRead1Flags
	} else {
		newRead.Flags = ubamRead2Flags
	}
	return newRead, nil
}

// ubamHeader returns the header written to every output file. The two
// references are placeholders; no output record points at them.
func ubamHeader(keepLength int) (*sam.Header, error) {
	pe150, err := sam.NewReference(pe150Name, "", "", pe150Length, nil, nil)
	if err != nil {
		return nil, err
	}
	keep, err := sam.NewReference(keepRefName, "", "", keepLength, nil, nil)
	if err != nil {
		return nil, err
	}

	h, err := sam.NewHeader(nil, []*sam.Reference{pe150, keep})
	if err != nil {
		return nil, err
	}
	h.Version = headerVersion
	return h, nil
}
