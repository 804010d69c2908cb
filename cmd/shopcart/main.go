// Package main is the entry point for the shopping cart API.
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
	redisdb "github.com/taskhive/taskhive/internal/infrastructure/db/redis"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	a, err := app.New(ctx, "shopcart", domain.RoleCustomer)
	if err != nil {
		fmt.Fprintln(os.Stderr, "shopcart:", err)
		os.Exit(1)
	}
	log := a.Logger

	products, err := jsonfile.NewProductRepository(a.Config.Files.Products)
	if err != nil {
		log.Fatal().Err(err).Msg("open product store")
	}
	a.Checks["products"] = products

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: a.Config.Redis.Addr,
		DB:   a.Config.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect to redis")
	}
	a.AddCloser(func() { _ = rdb.Close() })

	carts := redisdb.NewCartRepository(rdb)
	a.Checks["carts"] = carts

	catalog := service.NewCatalogService(products, log)
	cart := service.NewCartService(products, carts)

	e := api.NewShopCartRouter(a.Deps(), catalog, cart)
	a.Serve(ctx, e)
}
