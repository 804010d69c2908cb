// Package main is the entry point for the notes API.
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
	a, err := app.New(ctx, "notesapi", domain.RoleUser)
	if err != nil {
		fmt.Fprintln(os.Stderr, "notesapi:", err)
		os.Exit(1)
	}
	log := a.Logger

	notes, err := jsonfile.NewNoteRepository(a.Config.Files.Notes)
	if err != nil {
		log.Fatal().Err(err).Msg("open note store")
	}
	a.Checks["notes"] = notes

	e := api.NewNotesRouter(a.Deps(), service.NewNoteService(notes))
	a.Serve(ctx, e)
}
