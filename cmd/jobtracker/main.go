// Package main is the entry point for the job application tracker API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	_ "github.com/taskhive/taskhive/docs"
	"github.com/taskhive/taskhive/internal/api"
	"github.com/taskhive/taskhive/internal/app"
	"github.com/taskhive/taskhive/internal/core/domain"
	"github.com/taskhive/taskhive/internal/core/service"
	"github.com/taskhive/taskhive/internal/infrastructure/db/jsonfile"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	a, err := app.New(ctx, "jobtracker", domain.RoleUser)
	if err != nil {
		fmt.Fprintln(os.Stderr, "jobtracker:", err)
		os.Exit(1)
	}
	log := a.Logger

	applications, err := jsonfile.NewApplicationRepository(a.Config.Files.Applications)
	if err != nil {
		log.Fatal().Err(err).Msg("open application store")
	}
	a.Checks["applications"] = applications

	tracker := service.NewApplicationService(applications, log)

	e := api.NewJobTrackerRouter(a.Deps(), tracker)
	a.Serve(ctx, e)
}
