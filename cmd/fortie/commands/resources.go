package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/fortie/internal/constants"
	"github.com/fivetwenty-io/fortie/pkg/fortie"
)

// resourceCommand describes the CLI surface of one CRUD resource.
type resourceCommand struct {
	name     string
	aliases  []string
	singular string
	wrapper  string
	idName   string
	columns  []string
	resource func(fortie.Client) fortie.ResourceClient
}

var (
	suppliersCommand = resourceCommand{
		name:     "suppliers",
		aliases:  []string{"supplier"},
		singular: "supplier",
		wrapper:  "Supplier",
		idName:   "SUPPLIER_NUMBER",
		columns:  []string{"SupplierNumber", "Name", "OrganisationNumber", "Email", "City"},
		resource: fortie.Client.Suppliers,
	}
	customersCommand = resourceCommand{
		name:     "customers",
		aliases:  []string{"customer"},
		singular: "customer",
		wrapper:  "Customer",
		idName:   "CUSTOMER_NUMBER",
		columns:  []string{"CustomerNumber", "Name", "OrganisationNumber", "Email", "City"},
		resource: fortie.Client.Customers,
	}
	articlesCommand = resourceCommand{
		name:     "articles",
		aliases:  []string{"article"},
		singular: "article",
		wrapper:  "Article",
		idName:   "ARTICLE_NUMBER",
		columns:  []string{"ArticleNumber", "Description", "SalesPrice", "QuantityInStock", "Unit"},
		resource: fortie.Client.Articles,
	}
)

// NewSuppliersCommand creates the suppliers command group.
func NewSuppliersCommand() *cobra.Command {
	return newResourceCommand(suppliersCommand)
}

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	return newResourceCommand(customersCommand)
}

// NewArticlesCommand creates the articles command group.
func NewArticlesCommand() *cobra.Command {
	return newResourceCommand(articlesCommand)
}

func newResourceCommand(spec resourceCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:     spec.name,
		Aliases: spec.aliases,
		Short:   "Manage " + spec.name,
		Long:    fmt.Sprintf("List, view, create, update and delete Fortnox %s", spec.name),
	}

	cmd.AddCommand(newResourceListCommand(spec))
	cmd.AddCommand(newResourceGetCommand(spec))
	cmd.AddCommand(newResourceCreateCommand(spec))
	cmd.AddCommand(newResourceUpdateCommand(spec))
	cmd.AddCommand(newResourceDeleteCommand(spec))

	return cmd
}

func newResourceListCommand(spec resourceCommand) *cobra.Command {
	var (
		page      int
		limit     int
		filter    string
		sortBy    string
		sortOrder string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + spec.name,
		Long:  fmt.Sprintf("List one page of %s", spec.name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 1 || limit > constants.MaxPageSize {
				return constants.ErrInvalidPageSize
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			params := fortie.NewQueryParams().WithLimit(limit)
			if page > 0 {
				params.WithPage(page)
			}

			if filter != "" {
				params.WithFilter(filter)
			}

			if sortBy != "" {
				params.WithSortBy(sortBy)
			}

			if sortOrder != "" {
				params.WithSortOrder(sortOrder)
			}

			list, err := spec.resource(client).All(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("failed to list %s: %w", spec.name, err)
			}

			return writeOutput(cmd.OutOrStdout(), outputFormat(), list, func(writer io.Writer) error {
				if len(list.Records) == 0 {
					_, _ = fmt.Fprintf(writer, "No %s found\n", spec.name)

					return nil
				}

				return renderListTable(writer, list, spec.columns)
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "records per page")
	cmd.Flags().StringVar(&filter, "filter", "", "predefined filter, e.g. active or inactive")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "field to sort by")
	cmd.Flags().StringVar(&sortOrder, "sort-order", "", "ascending or descending")

	return cmd
}

func newResourceGetCommand(spec resourceCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "get " + spec.idName,
		Short: "Get " + spec.singular + " details",
		Long:  fmt.Sprintf("Display every field of a single %s", spec.singular),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			record, err := spec.resource(client).Find(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get %s: %w", spec.singular, err)
			}

			return writeRecord(cmd.OutOrStdout(), record)
		},
	}
}

func newResourceCreateCommand(spec resourceCommand) *cobra.Command {
	var (
		sets     []string
		fromFile string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a " + spec.singular,
		Long:  fmt.Sprintf("Create a %s from --set KEY=VALUE pairs and/or a YAML or JSON file", spec.singular),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := buildRecord(fromFile, sets, spec.wrapper)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			record, err := spec.resource(client).Create(cmd.Context(), data)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", spec.singular, err)
			}

			return writeRecord(cmd.OutOrStdout(), record)
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "field value as KEY=VALUE (repeatable)")
	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "YAML or JSON file with the fields")

	return cmd
}

func newResourceUpdateCommand(spec resourceCommand) *cobra.Command {
	var (
		sets     []string
		fromFile string
	)

	cmd := &cobra.Command{
		Use:   "update " + spec.idName,
		Short: "Update a " + spec.singular,
		Long:  fmt.Sprintf("Update an existing %s; required fields must be included", spec.singular),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := buildRecord(fromFile, sets, spec.wrapper)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			record, err := spec.resource(client).Update(cmd.Context(), args[0], data)
			if err != nil {
				return fmt.Errorf("failed to update %s: %w", spec.singular, err)
			}

			return writeRecord(cmd.OutOrStdout(), record)
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "field value as KEY=VALUE (repeatable)")
	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "YAML or JSON file with the fields")

	return cmd
}

func newResourceDeleteCommand(spec resourceCommand) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete " + spec.idName,
		Short: "Delete a " + spec.singular,
		Long:  fmt.Sprintf("Delete a %s", spec.singular),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			if !force && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
				fmt.Sprintf("Really delete %s %s? [y/N]: ", spec.singular, id)) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Delete cancelled")

				return nil
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			err = spec.resource(client).Delete(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to delete %s: %w", spec.singular, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", spec.singular, id)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

func writeRecord(writer io.Writer, record fortie.Record) error {
	return writeOutput(writer, outputFormat(), record, func(writer io.Writer) error {
		return renderRecordTable(writer, record)
	})
}

func confirm(in io.Reader, out io.Writer, prompt string) bool {
	_, _ = fmt.Fprint(out, prompt)

	answer, _ := bufio.NewReader(in).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))

	return answer == "y" || answer == "yes"
}

// buildRecord merges the fields from file with --set assignments; the
// assignments win.
func buildRecord(fromFile string, sets []string, wrapper string) (fortie.Record, error) {
	record := fortie.Record{}

	if fromFile != "" {
		fileRecord, err := readRecordFile(fromFile, wrapper)
		if err != nil {
			return nil, err
		}

		record = fileRecord
	}

	assignments, err := parseAssignments(sets)
	if err != nil {
		return nil, err
	}

	for key, value := range assignments {
		record[key] = value
	}

	if len(record) == 0 {
		return nil, constants.ErrEmptyRecord
	}

	return record, nil
}

// parseAssignments turns KEY=VALUE pairs into a record of strings.
func parseAssignments(sets []string) (fortie.Record, error) {
	record := fortie.Record{}

	for _, set := range sets {
		key, value, found := strings.Cut(set, "=")
		key = strings.TrimSpace(key)

		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidAssignment, set)
		}

		record[key] = value
	}

	return record, nil
}

// readRecordFile reads a record from YAML or JSON. A document wrapped in
// the resource key, e.g. {"Supplier": {...}}, is unwrapped.
func readRecordFile(path, wrapper string) (fortie.Record, error) {
	// #nosec G304 -- the path is supplied by the user on purpose
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var document map[string]interface{}

	err = yaml.Unmarshal(data, &document)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if inner, ok := document[wrapper].(map[string]interface{}); ok && len(document) == 1 {
		return fortie.Record(inner), nil
	}

	return fortie.Record(document), nil
}
