package main

import (
	"context"
	"embed"
	"fmt"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"gorm.io/gorm/logger"

	"puppytime/internal/database"
	"puppytime/internal/events"
	"puppytime/internal/services"
	"puppytime/internal/utils"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {

	app := NewApp()

	if err := utils.LoadEnv(); err != nil {
		fmt.Println("No .env file loaded:", err)
	}

	db, err := database.Init(database.Config{
		LogLevel: logger.Info,
	})
	if err != nil {
		fmt.Println("Error opening database:", err)
		return
	}

	if sqlDB, err := db.DB(); err == nil {
		app.dbClose = sqlDB.Close
	}

	//Create each service
	keyringService := services.NewKeyringService()
	dbService := services.NewDbServices(db)
	breedService := services.NewBreedService(keyringService, dbService.ModelConfigs)
	puppifier := services.NewOpenAIPuppifier(keyringService)
	pipelineService := services.NewPipelineService(dbService.Settings, dbService.Transformations, breedService, puppifier)
	libraryService := services.NewLibraryService()
	eventEmitter := services.NewEventEmitterService()

	app.Settings = dbService.Settings
	app.Transformations = dbService.Transformations
	app.Pipeline = pipelineService
	app.Library = libraryService

	// Create application with options
	err = wails.Run(&options.App{
		Title:  "PuppyTime",
		Width:  1024,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "PuppyTime",
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup: func(ctx context.Context) {
			app.startup(ctx)
			events.EnableRuntimeEmitter()
			keyringService.Startup()
			eventEmitter.Startup(ctx)

			if err := dbService.StartDbServices(ctx); err != nil {
				fmt.Println("Error starting database services:", err)
			}
			if err := breedService.Startup(ctx); err != nil {
				fmt.Println("Error starting breed service:", err)
			}
			if err := pipelineService.Startup(ctx); err != nil {
				fmt.Println("Error starting pipeline service:", err)
			}
			if err := libraryService.Startup(ctx); err != nil {
				fmt.Println("Error starting library service:", err)
			}
		},
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
			dbService.Settings,
			dbService.Transformations,
			dbService.ModelConfigs,
			pipelineService,
			libraryService,
			keyringService,
			eventEmitter,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
