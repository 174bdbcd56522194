package cli

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lbl/internal/cli/styles"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to os.Stdout and os.Stderr
	Out io.Writer
	Err io.Writer
}

// NewFormatter builds a formatter from the --json and --quiet flags of cmd,
// writing to the command's output streams
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) err() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			_, err := fmt.Fprintf(f.out(), "%d\n", idGetter.GetID())
			return err
		}
	}

	if f.JSON {
		return f.JSONEnvelope(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// JSONEnvelope writes v as one line of JSON to the output stream
func (f *OutputFormatter) JSONEnvelope(v any) error {
	return json.NewEncoder(f.out()).Encode(v)
}

// Printf writes human-readable output unless quiet or JSON mode is on
func (f *OutputFormatter) Printf(format string, args ...any) {
	if f.Quiet || f.JSON {
		return
	}
	_, _ = fmt.Fprintf(f.out(), format, args...)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	return f.errorOutput(code, message, suggestion, nil)
}

// FieldErrors outputs a rejected save, one line per field
func (f *OutputFormatter) FieldErrors(code string, message string, fields map[string]string) error {
	return f.errorOutput(code, message, "", fields)
}

func (f *OutputFormatter) errorOutput(code, message, suggestion string, fields map[string]string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		if len(fields) > 0 {
			errData["fields"] = fields
		}
		return f.JSONEnvelope(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	w := f.err()
	if _, err := fmt.Fprintf(w, "%s %s\n", styles.ErrorStyle.Render("Error:"), message); err != nil {
		return err
	}
	for _, field := range slices.Sorted(maps.Keys(fields)) {
		if _, err := fmt.Fprintf(w, "  %s %s\n", styles.FieldStyle.Render(field+":"), fields[field]); err != nil {
			return err
		}
	}
	if suggestion != "" {
		if _, err := fmt.Fprintf(w, "%s %s\n", styles.SubtleStyle.Render("Suggestion:"), suggestion); err != nil {
			return err
		}
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}
