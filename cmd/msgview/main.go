package main

import (
	"encoding/base64"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"

	"ibc-lab/domain/connection"
	"ibc-lab/internal"
	pb "ibc-lab/proto/connection"
)

// msgview decodes a hex- or base64-encoded MsgConnectionOpenInit envelope
// (first argument, or stdin) and prints its validated fields.

func main() {
	if err := run(); err != nil {
		color.Red.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	encoding, err := config.Encoding()
	if err != nil {
		return err
	}

	// 2. Read the envelope payload
	flag.Parse()
	input := flag.Arg(0)
	if input == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		input = string(data)
	}
	input = strings.TrimSpace(input)

	var bin []byte
	switch encoding {
	case internal.EncodingBase64:
		bin, err = base64.StdEncoding.DecodeString(input)
	default:
		bin, err = hex.DecodeString(input)
	}
	if err != nil {
		return fmt.Errorf("decoding %s payload: %w", encoding, err)
	}

	// 3. Unmarshal the wire message, then validate it into domain form
	raw := new(pb.RawMsgConnectionOpenInit)
	if err := raw.Unmarshal(bin); err != nil {
		return fmt.Errorf("unmarshal failed: %w", err)
	}
	msg, err := connection.DecodeMsgConnectionOpenInit(raw)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	log.Debug("decoded envelope", "type_url", msg.Type(), "bytes", len(bin))

	// 4. Render
	color.Green.Println(msg.Type())
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Field", "Value"})
	table.Append([]string{"client_id", msg.ClientIDOnA.String()})
	table.Append([]string{"counterparty.client_id", msg.Counterparty.ClientID.String()})
	table.Append([]string{"counterparty.connection_id", orUnset(msg.Counterparty.ConnectionID.String())})
	table.Append([]string{"counterparty.prefix", fmt.Sprintf("%x", msg.Counterparty.Prefix.KeyPrefix)})
	if msg.Version != nil {
		table.Append([]string{"version", msg.Version.Identifier})
		table.Append([]string{"version.features", strings.Join(msg.Version.Features, ", ")})
	} else {
		table.Append([]string{"version", "(any supported)"})
	}
	table.Append([]string{"delay_period", msg.DelayPeriod.String()})
	table.Append([]string{"signer", msg.Signer.String()})
	table.Render()
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
