package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/task-tracker/modules/auth"
	"github.com/example/task-tracker/modules/notification"
	"github.com/example/task-tracker/modules/query"
	"github.com/example/task-tracker/modules/task"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Task Tracker - Dashboard Engine ===")

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Order: independent modules first, then modules with dependencies.
	app.Register(auth.NewModule())         // Identity provider (no dependencies)
	app.Register(notification.NewModule()) // Event consumer (subscribes to task events)
	app.Register(task.NewModule())         // Core domain (depends on auth, emits events)
	app.Register(query.NewModule())        // Derived views (depends on task)

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

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

func printStartupInfo() {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("Demo Users Available (password: password123):")
	log.Println("  - user-1: Alice Johnson (alice@example.com, developer)")
	log.Println("  - user-2: Bob Smith (bob@example.com, developer)")
	log.Println("  - user-3: Charlie Brown (charlie@example.com, manager)")
	log.Println("")
	log.Println("In-process services:")
	log.Println("  auth:  login, logout, current-user, get-user")
	log.Println("  task:  create-task, get-task, update-task, delete-task,")
	log.Println("         list-tasks, add-time-entry, change-status")
	log.Println("  query: filter-tasks, daily-trend, unique-assignees, task-stats")
	log.Println("")
	log.Println("Set TASK_DB_PATH to persist tasks in SQLite; default is in-memory.")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
