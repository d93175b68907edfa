package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/m-mizutani/fireconf"
	"github.com/m-mizutani/goerr/v2"
	"github.com/taskdeck-io/taskdeck/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdMigrate() *cli.Command {
	var projectID string
	var databaseID string
	var dryRun bool

	return &cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Migrate Firestore indexes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "firestore-project-id",
				Usage:       "Firestore Project ID (required)",
				Required:    true,
				Sources:     cli.EnvVars("TASKDECK_FIRESTORE_PROJECT_ID"),
				Destination: &projectID,
			},
			&cli.StringFlag{
				Name:        "firestore-database-id",
				Usage:       "Firestore Database ID",
				Sources:     cli.EnvVars("TASKDECK_FIRESTORE_DATABASE_ID"),
				Destination: &databaseID,
			},
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "Preview changes without applying",
				Destination: &dryRun,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			logger.Info("Migrate configuration",
				"projectID", projectID,
				"databaseID", databaseID,
				"dryRun", dryRun)

			var opts []fireconf.Option
			if dryRun {
				color.Yellow("Dry run mode - previewing changes without applying")
				opts = append(opts, fireconf.WithDryRun(true))
			}

			fc, err := fireconf.New(ctx, projectID, databaseID, getIndexConfig(), opts...)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize fireconf")
			}

			if err := fc.Migrate(ctx); err != nil {
				return goerr.Wrap(err, "failed to apply migrations")
			}

			if dryRun {
				color.Green("Dry run completed, no changes applied")
			} else {
				logger.Info("Migrations applied successfully")
			}

			return nil
		},
	}
}

// getIndexConfig returns the Firestore index configuration
func getIndexConfig() *fireconf.Config {
	return &fireconf.Config{
		Collections: []fireconf.Collection{
			{
				Name: "tasks",
				Indexes: []fireconf.Index{
					// ListByProject: Project ASC, CreatedAt DESC
					{
						Fields: []fireconf.IndexField{
							{Path: "Project", Order: fireconf.OrderAscending},
							{Path: "CreatedAt", Order: fireconf.OrderDescending},
						},
					},
				},
			},
			{
				Name: "notifications",
				Indexes: []fireconf.Index{
					// ListByUser: User ASC, Timestamp DESC
					{
						Fields: []fireconf.IndexField{
							{Path: "User", Order: fireconf.OrderAscending},
							{Path: "Timestamp", Order: fireconf.OrderDescending},
						},
					},
				},
			},
		},
	}
}
