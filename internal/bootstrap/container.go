package bootstrap

import (
	"notebook-share-be/internal/config"
	"notebook-share-be/internal/controller"
	"notebook-share-be/internal/pkg/logger"
	"notebook-share-be/internal/repository/memory"
	"notebook-share-be/internal/repository/unitofwork"
	"notebook-share-be/internal/service"
)

type Container struct {
	AuthController       controller.IAuthController
	NotebookController   controller.INotebookController
	PermissionController controller.IPermissionController

	Sessions *memory.SessionRepository
	Logger   logger.ILogger
}

func NewContainer(uowFactory unitofwork.RepositoryFactory, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	sessions := memory.NewSessionRepository()

	authService := service.NewAuthService(uowFactory, sessions, cfg.App.JWTSecret, sysLogger)
	notebookService := service.NewNotebookService(uowFactory, sysLogger)
	permissionService := service.NewPermissionService(uowFactory, sysLogger)

	return &Container{
		AuthController:       controller.NewAuthController(authService),
		NotebookController:   controller.NewNotebookController(notebookService),
		PermissionController: controller.NewPermissionController(permissionService),

		Sessions: sessions,
		Logger:   sysLogger,
	}
}
