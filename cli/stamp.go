package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ErrTerminalOutput is returned when no output file is given and stdout is a
// terminal.
var ErrTerminalOutput = errors.New("no output file specified and stdout is a terminal, use -o or redirect stdout")

// stdoutIsTerminal reports whether stdout is attached to a terminal.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func runStamp(cmd *cobra.Command, opts *options, input string) error {
	if opts.output == "" && stdoutIsTerminal() {
		return ErrTerminalOutput
	}

	doc, merged, err := open(cmd, opts, input)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	result, err := doc.Write(&buf)
	if cerr := doc.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	if merged.output == "" {
		_, err := io.Copy(cmd.OutOrStdout(), &buf)
		return err
	}

	if err := writeFile(merged.output, buf.Bytes()); err != nil {
		return err
	}
	log.Printf("Stamped %d of %d pages, written to %s", result.Stamped, len(result.Plan), merged.output)
	return nil
}

// writeFile replaces path atomically, so output may equal the input file.
func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	mode := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := os.Chmod(tmp.Name(), mode); err != nil {
		return fmt.Errorf("failed to set output permissions: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
