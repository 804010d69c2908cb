// Package main is the entry point for the student portal API.
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

// @title        TaskHive Tutorial APIs
// @version      1.0
// @description  Authentication-backed tutorial services: a student portal, a shopping cart, a job application tracker, and a notes API.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	a, err := app.New(ctx, "studentportal", domain.RoleStudent)
	if err != nil {
		fmt.Fprintln(os.Stderr, "studentportal:", err)
		os.Exit(1)
	}
	log := a.Logger

	students, err := jsonfile.NewStudentRepository(a.Config.Files.Students)
	if err != nil {
		log.Fatal().Err(err).Msg("open student store")
	}
	a.Checks["students"] = students

	portal := service.NewStudentService(a.Auth, a.Accounts, students, log)

	deps := a.Deps()
	deps.Auth = portal // registration also provisions the student profile

	e := api.NewStudentPortalRouter(deps, portal)
	a.Serve(ctx, e)
}
