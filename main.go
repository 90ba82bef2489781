package main

import (
	"context"
	"log"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"

	"github.com/example/taskboard/modules/api"
	"github.com/example/taskboard/modules/broadcast"
	"github.com/example/taskboard/modules/eventbus"
	"github.com/example/taskboard/modules/project"
	"github.com/example/taskboard/modules/rollover"
	"github.com/example/taskboard/modules/store"
	"github.com/example/taskboard/modules/task"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("Starting taskboard application...")

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Create modules. The event bus is constructed up front so producers
	// and consumers share one instance.
	bus := eventbus.New()
	storeModule := store.NewModule()
	taskModule := task.NewModule(storeModule, bus)
	projectModule := project.NewModule(storeModule)
	broadcastModule := broadcast.NewModule(bus)
	rolloverModule := rollover.NewModule(taskModule)
	apiModule := api.NewModule(taskModule, projectModule, broadcastModule.Hub())

	// Register modules in dependency order: the store opens the database
	// before anything touches it, and the rollover sweep runs only after
	// the task service exists.
	modules := []mono.Module{
		storeModule,
		eventbus.NewModule(bus),
		taskModule,
		projectModule,
		broadcastModule,
		rolloverModule,
		apiModule,
	}
	for _, m := range modules {
		if err := app.Register(m); err != nil {
			log.Fatalf("Failed to register %s module: %v", m.Name(), err)
		}
	}

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	log.Println("Application started successfully")

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}
