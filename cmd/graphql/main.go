package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gogostanoev/e-commerce-backend-assignment/internal/app"
	"github.com/gogostanoev/e-commerce-backend-assignment/internal/graphql"
	"github.com/gogostanoev/e-commerce-backend-assignment/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Relations are resolved per requested field
	application, err := app.New(ctx, "catalog-graphql", service.WithoutRelations())
	if err != nil {
		// Can't use structured logger yet since bootstrap did not finish
		panic("Failed to initialize application: " + err.Error())
	}

	schema, err := graphql.NewSchema(application.Products, application.Images)
	if err != nil {
		application.Log.Fatal("Failed to build GraphQL schema", zap.Error(err))
	}

	h := echo.WrapHandler(graphql.NewHandler(schema, application.Config.Server.Env != "production"))
	application.Echo.GET("/graphql", h)
	application.Echo.POST("/graphql", h)

	if err := application.Run(ctx, application.Config.Server.GraphQLPort); err != nil {
		application.Log.Fatal("Server error", zap.Error(err))
	}
}
