package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
	"github.com/klauspost/pgzip"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	bamMagic  = []byte("BAM\x01")
)

// inputFile yields records from a BAM, SAM or gzipped SAM file.
type inputFile struct {
	recordReader
	closers []io.Closer
}

func (f *inputFile) Close() error {
	var err error
	for i := len(f.closers) - 1; i >= 0; i-- {
		if cerr := f.closers[i].Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openInput opens path and picks a reader from its leading bytes.
func openInput(path string) (*inputFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	in, err := newInput(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return in, nil
}

func newInput(f *os.File) (*inputFile, error) {
	magic, err := bufio.NewReader(f).Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	if !bytes.Equal(magic, gzipMagic) {
		sr, err := sam.NewReader(bufio.NewReader(f))
		if err != nil {
			return nil, err
		}
		return &inputFile{recordReader: sr, closers: []io.Closer{f}}, nil
	}

	gr, err := pgzip.NewReaderN(f, 1<<20, 1)
	if err != nil {
		return nil, err
	}
	payload := bufio.NewReader(gr)
	head, err := payload.Peek(len(bamMagic))
	if err != nil && err != io.EOF {
		gr.Close()
		return nil, err
	}

	if bytes.Equal(head, bamMagic) {
		gr.Close()
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		br, err := bam.NewReader(f, 1)
		if err != nil {
			return nil, err
		}
		return &inputFile{recordReader: br, closers: []io.Closer{f, br}}, nil
	}

	sr, err := sam.NewReader(payload)
	if err != nil {
		gr.Close()
		return nil, err
	}
	return &inputFile{recordReader: sr, closers: []io.Closer{f, gr}}, nil
}

// outputFile appends records to a BAM file.
type outputFile struct {
	f  *os.File
	bw *bam.Writer
}

// createOutput creates path, and its parent directory if needed, and writes
// the uBAM header for keepLength.
func createOutput(path string, keepLength int) (*outputFile, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	h, err := ubamHeader(keepLength)
	if err != nil {
		return nil, fmt.Errorf("build header: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	bw, err := bam.NewWriter(f, h, 1)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &outputFile{f: f, bw: bw}, nil
}

func (o *outputFile) Write(r *sam.Record) error {
	return o.bw.Write(r)
}

// Close flushes the BGZF stream, including its EOF block, then closes the
// file.
func (o *outputFile) Close() error {
	return errors.Join(o.bw.Close(), o.f.Close())
}
