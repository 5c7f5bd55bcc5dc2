package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/fortie/internal/constants"
	"github.com/fivetwenty-io/fortie/pkg/fortie"
)

// outputFormat returns the format selected by --output or the config file.
func outputFormat() string {
	return viper.GetString("output")
}

// writeOutput encodes value as JSON or YAML, or calls renderTable for the
// table format.
func writeOutput(writer io.Writer, format string, value interface{}, renderTable func(io.Writer) error) error {
	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		return encoder.Encode(value)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(writer)
		encoder.SetIndent(constants.JSONIndentSize)

		err := encoder.Encode(value)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return encoder.Close()
	case constants.FormatTable, "":
		return renderTable(writer)
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownOutputFormat, format)
	}
}

// renderRecordTable prints every field of record as a Property/Value row.
func renderRecordTable(writer io.Writer, record fortie.Record) error {
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	table := tablewriter.NewWriter(writer)
	table.Header("Property", "Value")

	for _, key := range keys {
		_ = table.Append(key, formatValue(record[key]))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderListTable prints one row per record with the given columns.
func renderListTable(writer io.Writer, list *fortie.ListResponse, columns []string) error {
	header := make([]any, len(columns))
	for i, column := range columns {
		header[i] = column
	}

	table := tablewriter.NewWriter(writer)
	table.Header(header...)

	for _, record := range list.Records {
		row := make([]any, len(columns))
		for i, column := range columns {
			row[i] = formatValue(record[column])
		}

		_ = table.Append(row...)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	if list.Meta.TotalPages > 0 {
		_, _ = fmt.Fprintf(writer, "\nPage %d of %d (%d total)\n",
			list.Meta.CurrentPage, list.Meta.TotalPages, list.Meta.TotalResources)
	}

	return nil
}

func formatValue(value interface{}) string {
	switch typed := value.(type) {
	case nil:
		return constants.NotAvailable
	case string:
		if typed == "" {
			return constants.NotAvailable
		}

		return typed
	case map[string]interface{}, []interface{}:
		encoded, err := json.Marshal(typed)
		if err != nil {
			return fmt.Sprint(typed)
		}

		return string(encoded)
	default:
		return fmt.Sprint(typed)
	}
}
