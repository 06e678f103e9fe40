package main

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/repoeditor/internal"
	"github.com/rios0rios0/repoeditor/internal/infrastructure/controllers"
)

// injectApp builds the container once and pulls out what main needs.
func injectApp() (*internal.AppInternal, *controllers.SessionController) {
	container := dig.New()

	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var appInternal *internal.AppInternal
	var sessionController *controllers.SessionController
	if err := container.Invoke(func(ai *internal.AppInternal, sc *controllers.SessionController) {
		appInternal = ai
		sessionController = sc
	}); err != nil {
		panic(err)
	}

	return appInternal, sessionController
}
