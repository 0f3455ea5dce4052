// Command cbordump decodes a single CBOR item and prints it as
// diagnostic notation, JSON, or an extracted sensor reading.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/airgauge/cbortree/cbor"
	"github.com/airgauge/cbortree/telemetry"
)

type CLI struct {
	Hex       string `short:"x" help:"Inline hex payload (whitespace ignored)."`
	In        string `short:"i" help:"Read the payload from a file instead of stdin." type:"existingfile"`
	JSON      bool   `short:"j" help:"Render the decoded item as JSON." xor:"format"`
	Telemetry bool   `short:"t" help:"Extract sensor readings from a report payload." xor:"format"`
	Tags      bool   `help:"Preserve tag numbers instead of unwrapping tagged items."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cbordump"),
		kong.Description("Decode one CBOR item and print it in a readable form."),
	)
	if err := run(&cli); err != nil {
		ctx.FatalIfErrorf(err)
	}
}

func run(cli *CLI) error {
	data, err := input(cli)
	if err != nil {
		return err
	}
	if cbor.IsLikelyJSON(data) {
		fmt.Fprintln(os.Stderr, "cbordump: input looks like JSON text, not CBOR")
	}

	opts := cbor.DecodeOptions{SimpleFunc: cbor.KeepSimpleValues}
	if cli.Tags {
		opts.TagFunc = cbor.KeepTags
	}
	v, err := opts.Decode(data)
	if err != nil {
		return err
	}

	switch {
	case cli.Telemetry:
		r, err := telemetry.Extract(v)
		if err != nil {
			return err
		}
		fmt.Printf("temperature=%.1f humidity=%.1f co2=%.0f\n", r.Temperature, r.Humidity, r.CO2)
	case cli.JSON:
		out := cbor.AppendJSON(nil, v)
		out = append(out, '\n')
		if _, err := os.Stdout.Write(out); err != nil {
			return err
		}
	default:
		fmt.Println(cbor.Diag(v))
	}
	return nil
}

func input(cli *CLI) ([]byte, error) {
	switch {
	case cli.Hex != "":
		return telemetry.DecodePayload(cli.Hex)
	case cli.In != "":
		return os.ReadFile(cli.In)
	default:
		return io.ReadAll(os.Stdin)
	}
}
