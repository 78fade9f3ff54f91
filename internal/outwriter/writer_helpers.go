package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/safecity/crimelens/internal/contract"
)

// writeWithFile routes writer output to --output-file when set, otherwise
// stdout. The save notice goes to stderr so piped output stays clean.
func writeWithFile(outputFile string, write func(io.Writer) error, notice string) error {
	out, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	toFile := out != os.Stdout
	if toFile {
		defer func() { _ = out.Close() }()
	}

	if err := write(out); err != nil {
		return err
	}

	if toFile {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", notice, outputFile)
	}
	return nil
}

// writeJSON emits indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json output: %w", err)
	}
	return nil
}

// writeCSVWithHeader writes the header row, hands the csv.Writer to the row
// callback, then flushes and surfaces any buffered write error.
func writeCSVWithHeader(w io.Writer, header []string, rows func(*csv.Writer) error) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := rows(cw); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// createFormatters returns the numeric formatters shared by the text and CSV
// writers: a float formatter honoring --precision and a plain int formatter.
func createFormatters(precision int) (fmtFloat func(float64) string, fmtInt func(int) string) {
	fmtFloat = func(v float64) string {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}
	fmtInt = strconv.Itoa
	return fmtFloat, fmtInt
}
