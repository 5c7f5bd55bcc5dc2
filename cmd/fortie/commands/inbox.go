package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewInboxCommand creates the inbox command group.
func NewInboxCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "Manage inbox documents",
		Long:  "Upload receipts and other documents to the Fortnox inbox",
	}

	cmd.AddCommand(newInboxUploadCommand())
	cmd.AddCommand(newInboxGetCommand())

	return cmd
}

func newInboxUploadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload a document",
		Long:  "Upload a local file to the Fortnox inbox",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			record, err := client.Inbox().Upload(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to upload document: %w", err)
			}

			return writeRecord(cmd.OutOrStdout(), record)
		},
	}
}

func newInboxGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get FILE_ID",
		Short: "Get document details",
		Long:  "Display the metadata of a document in the inbox",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			record, err := client.Inbox().Find(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get document: %w", err)
			}

			return writeRecord(cmd.OutOrStdout(), record)
		},
	}
}
