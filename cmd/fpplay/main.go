// Command fpplay plays a WAV file through the system's audio output
// while printing the fingerprint computed from it, adapted from
// go-mp3's own playback example.
package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/oto/v2"

	chromaprint "github.com/darksv/go-chromaprint"
	"github.com/darksv/go-chromaprint/internal/wavutil"
)

func run() error {
	path := "sample.wav"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	wavFile, err := wavutil.Decode(f)
	if err != nil {
		return err
	}

	fp := chromaprint.New(chromaprint.Default())
	if err := fp.Start(wavFile.SampleRate, wavFile.Channels); err != nil {
		return err
	}
	fp.Consume(wavFile.Samples)
	fp.Finish()

	compressed := chromaprint.Default().Compress(fp.Fingerprint())
	fmt.Printf("Fingerprint: %d sub-fingerprints, %d bytes compressed\n", len(fp.Fingerprint()), len(compressed))

	pcm := make([]byte, len(wavFile.Samples)*2)
	for i, s := range wavFile.Samples {
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(s))
	}

	c, ready, err := oto.NewContext(int(wavFile.SampleRate), int(wavFile.Channels), 2)
	if err != nil {
		return err
	}
	<-ready

	p := c.NewPlayer(bytes.NewReader(pcm))
	defer p.Close()
	p.Play()

	duration := time.Duration(float64(len(wavFile.Samples)) / float64(wavFile.Channels) / float64(wavFile.SampleRate) * float64(time.Second))
	fmt.Printf("Duration: %v\n", duration.Round(time.Second))
	for p.IsPlaying() {
		time.Sleep(100 * time.Millisecond)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
