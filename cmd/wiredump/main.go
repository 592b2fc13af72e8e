// wiredump decodes a binary buffer field by field according to a TOML
// schema and prints the values. It is a debugging aid for captured protocol
// payloads:
//
//	wiredump -schema layout.toml capture.bin
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rawbytedev/bytewire"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	schemaPath := flag.String("schema", "", "TOML schema describing the field layout")
	verbose := flag.Bool("v", false, "log per-field offsets")
	flag.Parse()

	if *schemaPath == "" || flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: wiredump -schema layout.toml <file>")
		os.Exit(2)
	}
	if !*verbose {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	schema, err := loadSchema(*schemaPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading schema")
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("reading input")
	}
	log.Debug().Int("bytes", len(data)).Int("fields", len(schema.Fields)).Msg("dumping")

	// the codec trusts its caller on bounds; a schema longer than the capture
	// faults, so turn that into a diagnostic here
	defer func() {
		if r := recover(); r != nil {
			log.Fatal().Interface("fault", r).Msg("schema overruns the buffer")
		}
	}()

	c := bytewire.NewCursor(bytewire.NewSegment(data))
	for _, f := range schema.Fields {
		if c.Remaining() == 0 {
			log.Fatal().Str("field", f.Name).Msg("buffer exhausted before field")
		}
		start := c.Offset()
		val, err := decodeField(c, f)
		if err != nil {
			log.Fatal().Err(err).Str("field", f.Name).Int("offset", start).Msg("decode failed")
		}
		log.Debug().Str("field", f.Name).Int("offset", start).Int("size", c.Offset()-start).Msg("decoded")
		fmt.Printf("%-20s %-12s %s\n", f.Name, f.Type, val)
	}
	if c.Remaining() != 0 {
		log.Warn().Int("trailing", c.Remaining()).Msg("undecoded trailing bytes")
	}
}
