package cmd

import (
	"context"

	"github.com/projectpulse/dashboard-services/db"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy the flat-file store into the configured MongoDB database",
	Long: `This job reads users.json and db.json and writes every record into the
Mongo collections, keyed by record id. Re-running it overwrites the same
documents, so it is safe to repeat.`,
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config and set up logging
		commonSetUp()

		ctx := context.Background()
		logger := log.Logger

		fileStore := db.NewFileStore(appCfg.Store.File.UsersPath, appCfg.Store.File.DataPath, &logger)

		mongoStore, err := db.NewMongoStore(ctx, appCfg.Store.Mongo.URI, appCfg.Store.Mongo.Database, &logger)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
		}
		defer mongoStore.Close(ctx)

		users, err := fileStore.ListUsers(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read users from file store")
		}
		for _, u := range users {
			if err := mongoStore.PutUser(ctx, u); err != nil {
				log.Fatal().Err(err).Str("user_id", u.ID).Msg("Failed to migrate user")
			}
		}
		log.Info().Int("count", len(users)).Msg("Migrated users")

		projects, err := fileStore.ListProjects(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read projects from file store")
		}
		for _, p := range projects {
			if err := mongoStore.PutProject(ctx, p); err != nil {
				log.Fatal().Err(err).Str("project_id", p.ID).Msg("Failed to migrate project")
			}
		}
		log.Info().Int("count", len(projects)).Msg("Migrated projects")

		members, err := fileStore.ListMembers(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read members from file store")
		}
		if len(members) == 0 {
			log.Info().Msg("No members to migrate")
		} else {
			for _, m := range members {
				if err := mongoStore.PutMember(ctx, m); err != nil {
					log.Fatal().Err(err).Str("member_id", m.ID()).Msg("Failed to migrate member")
				}
			}
			log.Info().Int("count", len(members)).Msg("Migrated members")
		}

		log.Info().Msg("Migration complete")
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
