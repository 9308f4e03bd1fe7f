package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yuchenli/fupan/internal/kv"
)

type DebugCmd struct {
	Path *DebugPathCmd `cmd:"" help:"Show the data file path."`
	Dump *DebugDumpCmd `cmd:"" help:"Dump the raw stored value for a key."`
}

type DebugPathCmd struct{}

func (cmd *DebugPathCmd) Run(ctx *Context) error {
	output := map[string]string{
		"path": ctx.Store.Path(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpCmd struct {
	Key string `arg:"" help:"Storage key to dump."`
}

func (cmd *DebugDumpCmd) Validate() error {
	for _, key := range kv.Keys {
		if cmd.Key == key {
			return nil
		}
	}
	return fmt.Errorf("unknown storage key %q (known keys: %s)", cmd.Key, strings.Join(kv.Keys, ", "))
}

func (cmd *DebugDumpCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	raw, ok := ctx.Store.Get(cmd.Key)
	if !ok {
		return fmt.Errorf("no value stored under key: %s", cmd.Key)
	}

	// Stored values are versioned envelopes; dump them as written.
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		// Not valid JSON; show the bytes anyway.
		fmt.Println(string(raw))
		return nil
	}

	fmt.Println(pretty.String())
	return nil
}
