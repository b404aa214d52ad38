package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/maruel/subcommands"
	"github.com/viant/uuidb64"
	"github.com/viant/uuidb64/internal/tracing"
	"gopkg.in/yaml.v3"
)

// Record is the structured output of every command.
type Record struct {
	ID      uuidb64.UUID `json:"id" yaml:"id"`
	UUID    string       `json:"uuid" yaml:"uuid"`
	Version int          `json:"version" yaml:"version"`
}

func newRecord(id uuidb64.UUID) *Record {
	return &Record{ID: id, UUID: id.Hex(), Version: int(id.UUID().Version())}
}

type baseRun struct {
	subcommands.CommandRunBase
	output    string
	traceFile string
}

func (r *baseRun) registerBaseFlags() {
	r.Flags.StringVar(&r.output, "o", "", "Output format: text, json or yaml. Defaults to $UUIDB64_OUTPUT or text.")
	r.Flags.StringVar(&r.traceFile, "trace", "", "Write OpenTelemetry spans as JSON to this file. Defaults to $UUIDB64_TRACE_FILE.")
}

// resolveOutput resolves the effective output format.
func (r *baseRun) resolveOutput(a *application) bool {
	if r.output == "" {
		r.output = a.config.Output
	}
	cfg := *a.config
	cfg.Output = r.output
	if err := cfg.Validate(); err != nil {
		a.logger.Printf("%v", err)
		return false
	}
	return true
}

// run executes body inside a span named after the command. body returns the
// exit code and the number of rejected arguments.
func (r *baseRun) run(a *application, name string, args []string, body func() (int, int)) int {
	traceFile := r.traceFile
	if traceFile == "" {
		traceFile = a.config.TraceFile
	}
	if traceFile != "" {
		if err := tracing.Init(a.GetName(), Version, traceFile); err != nil {
			a.logger.Printf("failed to initialise tracing: %v", err)
		}
	}
	_, span := tracing.StartSpan(context.Background(), a.GetName()+"."+name)

	code, invalid := ExitUsage, 0
	if r.resolveOutput(a) {
		code, invalid = body()
	}

	span.WithAttributes(map[string]string{
		"command": name,
		"output":  r.output,
	}).WithInt("args", len(args)).WithInt("invalid_args", invalid).WithInt("exit_code", code)
	var err error
	if code != ExitOK {
		err = fmt.Errorf("%v exited with code %d", name, code)
	}
	tracing.EndSpan(span, err)
	return code
}

// emit writes records in the selected format; text renders each record with textFn.
// Nothing is written when records is empty.
func (r *baseRun) emit(w io.Writer, records []*Record, textFn func(*Record) string) error {
	if len(records) == 0 {
		return nil
	}
	switch r.output {
	case OutputJSON:
		encoder := json.NewEncoder(w)
		for _, record := range records {
			if err := encoder.Encode(record); err != nil {
				return err
			}
		}
		return nil
	case OutputYAML:
		data, err := yaml.Marshal(records)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		for _, record := range records {
			if _, err := fmt.Fprintln(w, textFn(record)); err != nil {
				return err
			}
		}
		return nil
	}
}

// convert parses every argument with parse, reporting each invalid one.
func (r *baseRun) convert(a *application, args []string, parse func(string) (uuidb64.UUID, error), textFn func(*Record) string) (int, int) {
	if len(args) == 0 {
		a.logger.Printf("at least one identifier is required")
		return ExitUsage, 0
	}
	var records []*Record
	invalid := 0
	for _, arg := range args {
		id, err := parse(arg)
		if err != nil {
			a.logger.Printf("%v", err)
			invalid++
			continue
		}
		records = append(records, newRecord(id))
	}
	if err := r.emit(a.GetOut(), records, textFn); err != nil {
		a.logger.Printf("failed to write output: %v", err)
		return ExitOutput, invalid
	}
	if invalid > 0 {
		return ExitInvalidInput, invalid
	}
	return ExitOK, 0
}

var cmdNew = &subcommands.Command{
	UsageLine: "new [-n count] [-o format]",
	ShortDesc: "generates random (v4) identifiers",
	LongDesc:  "Generates random (v4) identifiers and prints their canonical text form.",
	CommandRun: func() subcommands.CommandRun {
		r := &newRun{}
		r.registerBaseFlags()
		r.Flags.IntVar(&r.count, "n", 0, "Number of identifiers to generate. Defaults to $UUIDB64_COUNT or 1.")
		return r
	},
}

type newRun struct {
	baseRun
	count int
}

func (r *newRun) Run(scApp subcommands.Application, args []string, _ subcommands.Env) int {
	a := scApp.(*application)
	return r.run(a, "new", args, func() (int, int) {
		if len(args) != 0 {
			a.logger.Printf("new takes no positional arguments")
			return ExitUsage, len(args)
		}
		count := r.count
		if count == 0 {
			count = a.config.Count
		}
		if err := validateCount(count); err != nil {
			a.logger.Printf("%v", err)
			return ExitUsage, 0
		}
		var records []*Record
		for i := 0; i < count; i++ {
			records = append(records, newRecord(uuidb64.New()))
		}
		if err := r.emit(a.GetOut(), records, func(record *Record) string { return record.ID.String() }); err != nil {
			a.logger.Printf("failed to write output: %v", err)
			return ExitOutput, 0
		}
		return ExitOK, 0
	})
}

var cmdEncode = &subcommands.Command{
	UsageLine: "encode [-o format] <hex-uuid>...",
	ShortDesc: "converts hyphenated hex UUIDs to their canonical text form",
	LongDesc:  "Converts UUIDs in the conventional hyphenated hex form to the 22 character URL-safe base64 form.",
	CommandRun: func() subcommands.CommandRun {
		r := &encodeRun{}
		r.registerBaseFlags()
		return r
	},
}

type encodeRun struct {
	baseRun
}

func (r *encodeRun) Run(scApp subcommands.Application, args []string, _ subcommands.Env) int {
	a := scApp.(*application)
	return r.run(a, "encode", args, func() (int, int) {
		return r.convert(a, args, uuidb64.ParseHex, func(record *Record) string { return record.ID.String() })
	})
}

var cmdDecode = &subcommands.Command{
	UsageLine: "decode [-o format] <id>...",
	ShortDesc: "converts canonical text identifiers to hyphenated hex",
	LongDesc:  "Converts 22 character URL-safe base64 identifiers to the conventional hyphenated hex form.",
	CommandRun: func() subcommands.CommandRun {
		r := &decodeRun{}
		r.registerBaseFlags()
		return r
	},
}

type decodeRun struct {
	baseRun
}

func (r *decodeRun) Run(scApp subcommands.Application, args []string, _ subcommands.Env) int {
	a := scApp.(*application)
	return r.run(a, "decode", args, func() (int, int) {
		return r.convert(a, args, uuidb64.Parse, func(record *Record) string { return record.UUID })
	})
}

var cmdInspect = &subcommands.Command{
	UsageLine: "inspect [-o format] <id>...",
	ShortDesc: "prints both forms of identifiers given in either form",
	LongDesc:  "Accepts identifiers in either the canonical text form or the hyphenated hex form and prints both forms and the UUID version.",
	CommandRun: func() subcommands.CommandRun {
		r := &inspectRun{}
		r.registerBaseFlags()
		return r
	},
}

type inspectRun struct {
	baseRun
}

func (r *inspectRun) Run(scApp subcommands.Application, args []string, _ subcommands.Env) int {
	a := scApp.(*application)
	return r.run(a, "inspect", args, func() (int, int) {
		return r.convert(a, args, parseAny, func(record *Record) string {
			return fmt.Sprintf("%v %v v%d", record.ID, record.UUID, record.Version)
		})
	})
}

func parseAny(text string) (uuidb64.UUID, error) {
	if len(text) == uuidb64.EncodedLen {
		return uuidb64.Parse(text)
	}
	return uuidb64.ParseHex(text)
}
