package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gogostanoev/e-commerce-backend-assignment/internal/app"
	"github.com/gogostanoev/e-commerce-backend-assignment/internal/handler"
	mid "github.com/gogostanoev/e-commerce-backend-assignment/internal/middleware"
	"github.com/gogostanoev/e-commerce-backend-assignment/pkg/jwtutil"

	"go.uber.org/zap"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	application, err := app.New(ctx, "catalog-rest")
	if err != nil {
		// Can't use structured logger yet since bootstrap did not finish
		panic("Failed to initialize application: " + err.Error())
	}

	var signer *jwtutil.Signer
	if key := application.Config.Auth.SigningKey; key != "" {
		signer = jwtutil.NewSigner(key, time.Hour)
		application.Log.Info("Write guard enabled")
	}

	api := application.Echo.Group("", mid.WriteGuard(signer))
	handler.RegisterRoutes(api,
		handler.NewProductHandler(application.Products),
		handler.NewImageHandler(application.Images))

	if err := application.Run(ctx, application.Config.Server.Port); err != nil {
		application.Log.Fatal("Server error", zap.Error(err))
	}
}
