package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/nfdez/brainctl/internal/adapters/api"
)

// reportRemoteError prints a remote failure for the operator. HTTP and
// transport errors never abort the process; the exit code stays zero.
func reportRemoteError(w io.Writer, err error) {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		fmt.Fprintf(w, "Error: %d - %s\n", statusErr.Code, statusErr.Body)
		return
	}

	fmt.Fprintf(w, "Connection error: %v\n", err)
}

func writeRawJSON(w io.Writer, raw []byte) error {
	var indented bytes.Buffer
	if err := json.Indent(&indented, raw, "", "  "); err != nil {
		// Not JSON after all; show it as-is.
		_, writeErr := fmt.Fprintf(w, "%s\n", raw)
		return writeErr
	}

	_, err := fmt.Fprintf(w, "%s\n", indented.Bytes())
	return err
}
