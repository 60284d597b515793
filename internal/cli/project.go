package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrToKa/traylay/pkg/store"
)

// projectCommand creates the project command group for the shared store.
func (c *CLI) projectCommand() *cobra.Command {
	var mongoURI string

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects in the shared store",
		Long: `Manage projects in the shared MongoDB store.

Teams working on the same plant push their project files to a shared
store so everyone renders from the same revision.`,
	}

	cmd.PersistentFlags().StringVar(&mongoURI, "mongo", "", "mongodb connection URI (default mongodb://localhost:27017)")

	cmd.AddCommand(c.projectPushCommand(&mongoURI))
	cmd.AddCommand(c.projectListCommand(&mongoURI))
	cmd.AddCommand(c.projectDeleteCommand(&mongoURI))

	return cmd
}

func openStore(ctx context.Context, mongoURI string) (store.Store, error) {
	st, err := store.NewMongoStore(ctx, store.MongoOptions{URI: mongoURI})
	if err != nil {
		return nil, fmt.Errorf("open project store: %w", err)
	}
	return st, nil
}

// projectPushCommand creates the "project push" subcommand.
func (c *CLI) projectPushCommand(mongoURI *string) *cobra.Command {
	return &cobra.Command{
		Use:   "push [project.json]",
		Short: "Upload a project file to the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			doc, err := store.DocumentFromFile(args[0])
			if err != nil {
				return err
			}

			st, err := openStore(ctx, *mongoURI)
			if err != nil {
				return err
			}
			defer st.Close(ctx)

			if err := st.Put(ctx, doc); err != nil {
				return err
			}

			printSuccess("Pushed %s", doc.Name)
			printDetail("ID: %s", doc.ID)
			printStats(doc.TrayCount, doc.CableCount, false)
			return nil
		},
	}
}

// projectListCommand creates the "project list" subcommand.
func (c *CLI) projectListCommand(mongoURI *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects in the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx, *mongoURI)
			if err != nil {
				return err
			}
			defer st.Close(ctx)

			docs, err := st.List(ctx)
			if err != nil {
				return err
			}
			if len(docs) == 0 {
				printInfo("Store is empty")
				return nil
			}

			for _, doc := range docs {
				printInfo("%s", doc.Name)
				printDetail("%s · %d trays · %d cables · %s",
					doc.ID, doc.TrayCount, doc.CableCount,
					doc.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

// projectDeleteCommand creates the "project delete" subcommand.
func (c *CLI) projectDeleteCommand(mongoURI *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Remove a project from the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx, *mongoURI)
			if err != nil {
				return err
			}
			defer st.Close(ctx)

			if err := st.Delete(ctx, args[0]); err != nil {
				return err
			}
			printSuccess("Deleted %s", args[0])
			return nil
		},
	}
}
