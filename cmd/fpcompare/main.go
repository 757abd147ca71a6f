// Command fpcompare finds similar audio segments between two WAV files.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	chromaprint "github.com/darksv/go-chromaprint"
	"github.com/darksv/go-chromaprint/internal/wavutil"
)

func calculateFingerprint(path string, config *chromaprint.Configuration) ([]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	wavFile, err := wavutil.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	fp := chromaprint.New(config)
	if err := fp.Start(wavFile.SampleRate, wavFile.Channels); err != nil {
		return nil, fmt.Errorf("starting fingerprinter for %s: %w", path, err)
	}
	fp.Consume(wavFile.Samples)
	fp.Finish()
	return fp.Fingerprint(), nil
}

func main() {
	logger := log.New(os.Stderr)

	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: fpcompare <file1> <file2>")
		os.Exit(2)
	}

	config := chromaprint.Test1()

	fp1, err := calculateFingerprint(os.Args[1], config)
	if err != nil {
		logger.Fatal("fingerprinting first file", "err", err)
	}
	fp2, err := calculateFingerprint(os.Args[2], config)
	if err != nil {
		logger.Fatal("fingerprinting second file", "err", err)
	}

	segments, err := chromaprint.MatchFingerprints(fp1, fp2, config)
	if err != nil {
		logger.Fatal("matching fingerprints", "err", err)
	}

	for _, segment := range segments {
		fmt.Printf("%0.2f -- %0.2f | %0.2f -- %0.2f -> %0.2f\n",
			segment.Start1(), segment.End1(),
			segment.Start2(), segment.End2(),
			segment.Score())
	}
}
