package main

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/mcmikius/TILApp/pkg/common/config"
	acronymmodel "github.com/mcmikius/TILApp/pkg/core/acronym/model"
	acronymimpl "github.com/mcmikius/TILApp/pkg/core/acronym/repository/dao/impl"
	acronymservice "github.com/mcmikius/TILApp/pkg/core/acronym/service"
	categorymodel "github.com/mcmikius/TILApp/pkg/core/category/model"
	categoryimpl "github.com/mcmikius/TILApp/pkg/core/category/repository/dao/impl"
	categoryservice "github.com/mcmikius/TILApp/pkg/core/category/service"
	usermodel "github.com/mcmikius/TILApp/pkg/core/user/model"
	userimpl "github.com/mcmikius/TILApp/pkg/core/user/repository/dao/impl"
	userservice "github.com/mcmikius/TILApp/pkg/core/user/service"
	"github.com/mcmikius/TILApp/pkg/web/handler"
	"github.com/mcmikius/TILApp/pkg/web/middleware"
	"github.com/mcmikius/TILApp/pkg/web/router"
)

func main() {
	cfg := config.Load()

	db, err := cfg.InitDB()
	if err != nil {
		panic("failed to initialize database: " + err.Error())
	}

	if err := usermodel.AutoMigrate(db); err != nil {
		panic("failed to migrate users: " + err.Error())
	}
	if err := categorymodel.AutoMigrate(db); err != nil {
		panic("failed to migrate categories: " + err.Error())
	}
	if err := acronymmodel.AutoMigrate(db); err != nil {
		panic("failed to migrate acronyms: " + err.Error())
	}

	userRepo := userimpl.NewGormUserRepository(db)
	categoryRepo := categoryimpl.NewGormCategoryRepository(db)
	acronymRepo := acronymimpl.NewGormAcronymRepository(db)

	userSvc := userservice.NewUserService(userRepo)
	categorySvc := categoryservice.NewCategoryService(categoryRepo)
	acronymSvc := acronymservice.NewAcronymService(acronymRepo, userRepo, categoryRepo)

	auth, err := middleware.NewSessionAuth(cfg.Middleware.Session, userSvc)
	if err != nil {
		panic("failed to initialize session middleware: " + err.Error())
	}

	h := server.Default(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
	)
	h.LoadHTMLGlob(cfg.Server.TemplateGlob)

	router.Register(h, cfg, router.Handlers{
		Health:     handler.NewHealthCheckHandler(db),
		Users:      handler.NewUserHandler(userSvc, acronymSvc, cfg.Middleware.Session),
		Categories: handler.NewCategoryHandler(categorySvc, acronymSvc),
		Acronyms:   handler.NewAcronymHandler(acronymSvc),
		Site:       handler.NewSiteHandler(acronymSvc, userSvc, categorySvc),
		Auth:       auth,
	})

	h.Spin()
}
