// Command vectorgen regenerates the checked-in interop vector table
// from the JSON corpus under vectorgen/testdata. Every vector is decoded
// and re-rendered before the table is written, so a corpus entry whose
// diagnostic text drifts from the decoder fails generation instead of
// producing a table the tests can never satisfy.
package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"

	"github.com/alecthomas/kong"
	"golang.org/x/tools/imports"

	"github.com/airgauge/cbortree/cbor"
	"github.com/airgauge/cbortree/vectorgen/templates"
)

type CLI struct {
	Input   string `short:"i" help:"JSON vector corpus" default:"vectorgen/testdata/vectors.json"`
	Output  string `short:"o" help:"Generated Go table file" default:"tests/interop-vectors/vectors_gen.go"`
	Package string `short:"p" help:"Package name of the generated file" default:"tests"`
}

type vectorSpec struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
	Diag string `json:"diag"`
}

var tableTemplate = template.Must(template.New("vectors.go.tpl").ParseFS(templates.FS, "vectors.go.tpl"))

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("vectorgen"),
		kong.Description("Regenerate the interop vector table from the JSON corpus."),
	)

	if err := run(&cli); err != nil {
		ctx.FatalIfErrorf(err)
	}
}

func run(cli *CLI) error {
	raw, err := os.ReadFile(cli.Input)
	if err != nil {
		return fmt.Errorf("read corpus: %w", err)
	}
	var vectors []vectorSpec
	if err := json.Unmarshal(raw, &vectors); err != nil {
		return fmt.Errorf("parse corpus: %w", err)
	}
	if len(vectors) == 0 {
		return fmt.Errorf("corpus %s is empty", cli.Input)
	}
	if err := checkVectors(vectors); err != nil {
		return err
	}

	data := struct {
		Package string
		Vectors []vectorSpec
	}{Package: cli.Package, Vectors: vectors}

	var buf bytes.Buffer
	if err := tableTemplate.ExecuteTemplate(&buf, "vectors.go.tpl", data); err != nil {
		return err
	}

	src, err := imports.Process(cli.Output, buf.Bytes(), nil)
	if err != nil {
		// Fall back to go/format if goimports fails.
		if formatted, ferr := format.Source(buf.Bytes()); ferr == nil {
			src = formatted
		} else {
			src = buf.Bytes()
		}
	}

	if err := os.MkdirAll(filepath.Dir(cli.Output), 0o755); err != nil {
		return err
	}
	return os.WriteFile(cli.Output, src, 0o644)
}

// checkVectors re-decodes every corpus entry with the preserving options
// the interop suite uses and compares the rendering.
func checkVectors(vectors []vectorSpec) error {
	opts := cbor.DecodeOptions{TagFunc: cbor.KeepTags, SimpleFunc: cbor.KeepSimpleValues}
	seen := make(map[string]struct{}, len(vectors))
	for _, vec := range vectors {
		if _, dup := seen[vec.Name]; dup {
			return fmt.Errorf("vector %q: duplicate name", vec.Name)
		}
		seen[vec.Name] = struct{}{}

		data, err := hex.DecodeString(vec.Hex)
		if err != nil {
			return fmt.Errorf("vector %q: bad hex: %w", vec.Name, err)
		}
		v, err := opts.Decode(data)
		if err != nil {
			return fmt.Errorf("vector %q: decode: %w", vec.Name, err)
		}
		if got := cbor.Diag(v); got != vec.Diag {
			return fmt.Errorf("vector %q: diag mismatch: got %s, corpus says %s", vec.Name, got, vec.Diag)
		}
	}
	return nil
}
