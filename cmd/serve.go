package cmd

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/projectpulse/dashboard-services/api/handlers"
	"github.com/projectpulse/dashboard-services/api/middleware"
	"github.com/projectpulse/dashboard-services/api/services"
	"github.com/projectpulse/dashboard-services/db"
	"github.com/projectpulse/dashboard-services/internal/appconfig"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server for handling API requests",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config and set up logging
		commonSetUp()

		store, err := openStore(context.Background())
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize store")
		}
		defer store.Close(context.Background())

		// Create routes
		r := mux.NewRouter()

		service := &services.Service{
			Config: appCfg,
			DB:     store,
		}

		// Register the routes
		api := r.PathPrefix(appCfg.BasePath).Subrouter()

		// Apply the middleware to the API routes
		api.Use(middleware.WithLogger)
		api.Use(middleware.CORS)

		// Auth routes
		api.HandleFunc("/auth/login", handlers.Login(service)).Methods(http.MethodPost)
		api.HandleFunc("/auth/users", handlers.GetUsers(service)).Methods(http.MethodGet)

		// User management routes
		api.HandleFunc("/users", handlers.CreateUser(service)).Methods(http.MethodPost)
		api.HandleFunc("/users/{user-id}", handlers.UpdateUser(service)).Methods(http.MethodPut)
		api.HandleFunc("/users/{user-id}", handlers.DeleteUser(service)).Methods(http.MethodDelete)

		// Member roster routes
		api.HandleFunc("/members", handlers.GetMembers(service)).Methods(http.MethodGet)
		api.HandleFunc("/members", handlers.CreateMember(service)).Methods(http.MethodPost)
		api.HandleFunc("/members/{member-id}", handlers.UpdateMember(service)).Methods(http.MethodPut)
		api.HandleFunc("/members/{member-id}", handlers.DeleteMember(service)).Methods(http.MethodDelete)

		// Project routes
		api.HandleFunc("/projects", handlers.GetProjects(service)).Methods(http.MethodGet)
		api.HandleFunc("/projects", handlers.CreateProject(service)).Methods(http.MethodPost)
		api.HandleFunc("/projects/{project-id}", handlers.UpdateProject(service)).Methods(http.MethodPut)
		api.HandleFunc("/projects/{project-id}", handlers.DeleteProject(service)).Methods(http.MethodDelete)

		// Dashboard statistics routes
		api.HandleFunc("/stats/members", handlers.GetMemberStats(service)).Methods(http.MethodGet)
		api.HandleFunc("/stats/departments", handlers.GetDepartmentStats(service)).Methods(http.MethodGet)
		api.HandleFunc("/stats/divisions", handlers.GetDivisionStats(service)).Methods(http.MethodGet)
		api.HandleFunc("/stats/overview", handlers.GetOverviewStats(service)).Methods(http.MethodGet)

		api.HandleFunc("/health", handlers.Health()).Methods(http.MethodGet)

		log.Info().Msg(fmt.Sprintf("Server started at %s:%d", host, port))

		if err := http.ListenAndServe(fmt.Sprintf("%s:%d", host, port),
			r); err != nil {

			log.Error().Err(err).Msg("could not start server")
		}
	},
}

// openStore builds the persistence backend the config selects.
func openStore(ctx context.Context) (db.Store, error) {
	logger := log.Logger

	switch appCfg.Store.Backend {
	case appconfig.BackendMongo:
		return db.NewMongoStore(ctx, appCfg.Store.Mongo.URI, appCfg.Store.Mongo.Database, &logger)
	case appconfig.BackendFile:
		return db.NewFileStore(appCfg.Store.File.UsersPath, appCfg.Store.File.DataPath, &logger), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", appCfg.Store.Backend)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&host, "host", "0.0.0.0", "host to run the server on")
	serveCmd.Flags().IntVar(&port, "port", 8080, "port to run the server on")
}
