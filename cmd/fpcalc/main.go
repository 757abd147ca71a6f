// Command fpcalc computes AcoustID-compatible fingerprints for audio
// files.
package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	chromaprint "github.com/darksv/go-chromaprint"
	"github.com/darksv/go-chromaprint/internal/wavutil"
)

type result struct {
	File           string   `json:"file"`
	Duration       float64  `json:"duration"`
	Fingerprint    string   `json:"fingerprint,omitempty"`
	RawFingerprint []int64  `json:"fingerprint_raw,omitempty"`
}

func algorithmByID(id int) (*chromaprint.Configuration, error) {
	switch id {
	case 0:
		return chromaprint.Test1(), nil
	case 1:
		return chromaprint.Test2(), nil
	case 2:
		return chromaprint.Test3(), nil
	case 3:
		return chromaprint.Test4(), nil
	case 4:
		return chromaprint.Test5(), nil
	default:
		return nil, fmt.Errorf("unknown algorithm ID %d", id)
	}
}

func main() {
	logger := log.New(os.Stderr)

	var (
		algorithm = pflag.IntP("algorithm", "a", 1, "algorithm method (0-4)")
		raw       = pflag.BoolP("raw", "R", false, "output fingerprints in the uncompressed format")
		signed    = pflag.BoolP("signed", "s", false, "change the uncompressed format from unsigned integers to signed")
		jsonOut   = pflag.BoolP("json", "j", false, "print the output in JSON format")
		plain     = pflag.BoolP("plain", "p", false, "print just the fingerprint in text format")
	)
	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: fpcalc [flags] file")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(2)
	}
	path := pflag.Arg(0)

	config, err := algorithmByID(*algorithm)
	if err != nil {
		logger.Fatal("invalid algorithm", "err", err)
	}

	f, err := os.Open(path)
	if err != nil {
		logger.Fatal("opening file", "path", path, "err", err)
	}
	defer f.Close()

	wavFile, err := wavutil.Decode(f)
	if err != nil {
		logger.Fatal("decoding WAV file", "path", path, "err", err)
	}

	fp := chromaprint.New(config)
	if err := fp.Start(wavFile.SampleRate, wavFile.Channels); err != nil {
		logger.Fatal("starting fingerprinter", "err", err)
	}
	fp.Consume(wavFile.Samples)
	fp.Finish()

	fingerprint := fp.Fingerprint()
	duration := float64(len(wavFile.Samples)) / float64(wavFile.Channels) / float64(wavFile.SampleRate)

	res := result{File: path, Duration: duration}
	if *raw {
		res.RawFingerprint = make([]int64, len(fingerprint))
		for i, v := range fingerprint {
			if *signed {
				res.RawFingerprint[i] = int64(int32(v))
			} else {
				res.RawFingerprint[i] = int64(v)
			}
		}
	} else {
		res.Fingerprint = base64.StdEncoding.EncodeToString(config.Compress(fingerprint))
	}

	switch {
	case *jsonOut:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			logger.Fatal("encoding JSON output", "err", err)
		}
	case *plain:
		fmt.Println(res.Fingerprint)
	default:
		fmt.Printf("FILE=%s\n", res.File)
		fmt.Printf("DURATION=%.2f\n", res.Duration)
		if *raw {
			fmt.Printf("FINGERPRINT=%v\n", res.RawFingerprint)
		} else {
			fmt.Printf("FINGERPRINT=%s\n", res.Fingerprint)
		}
	}
}
