package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/nodestack/dirspace/internal/scan"
)

const tabSpacing = 2

// nodeDTO is the JSON-serializable projection of a scan.Node; scan.Node's
// fields are unexported and immutable once constructed, so marshaling
// goes through this shape instead of reflecting the tree type directly.
type nodeDTO struct {
	Path     string     `json:"path"`
	Size     uint64     `json:"size"`
	IsDir    bool       `json:"is_directory"`
	Children []*nodeDTO `json:"children,omitempty"`
}

func toDTO(n *scan.Node) *nodeDTO {
	if n == nil {
		return nil
	}

	dto := &nodeDTO{Path: n.Path(), Size: n.Size(), IsDir: n.IsDir()}

	for i := 0; i < n.ChildrenCount(); i++ {
		dto.Children = append(dto.Children, toDTO(n.Child(i)))
	}

	return dto
}

// PrintJSON outputs the scan result as indented JSON.
func PrintJSON(result *scan.Result, writer io.Writer) error {
	out := struct {
		Root      *nodeDTO `json:"root"`
		ElapsedMS int64    `json:"elapsed_ms"`
	}{
		Root:      toDTO(result.Root()),
		ElapsedMS: result.ElapsedMillis(),
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	_, err = fmt.Fprintln(writer, string(data))

	return err
}

// PrintTable outputs the scan result as an indented, human-readable size
// tree using a tabwriter-aligned table layout.
func PrintTable(result *scan.Result, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, tabSpacing, ' ', 0)

	printNode(w, result.Root(), 0)
	fmt.Fprintf(w, "\nElapsed:\t%dms\n", result.ElapsedMillis())

	return w.Flush()
}

func printNode(w *tabwriter.Writer, n *scan.Node, depth int) {
	if n == nil {
		return
	}

	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}

	marker := ""
	if n.IsDir() {
		marker = "/"
	}

	name := n.Path()
	if depth > 0 {
		name = filepath.Base(name)
	}

	fmt.Fprintf(w, "%s%s%s\t%s\n", indent, name, marker, humanize.IBytes(n.Size()))

	for i := 0; i < n.ChildrenCount(); i++ {
		printNode(w, n.Child(i), depth+1)
	}
}

func humanizeBytes(n uint64) string {
	return humanize.IBytes(n)
}

func isTerminalStderr() bool {
	return isatty.IsTerminal(os.Stderr.Fd())
}
