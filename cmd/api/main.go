package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hatchhr/hatchhr-backend-go/internal/config"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/event"
	appHTTP "github.com/hatchhr/hatchhr-backend-go/internal/handler/http"
	"github.com/hatchhr/hatchhr-backend-go/internal/pkg/database"
	"github.com/hatchhr/hatchhr-backend-go/internal/pkg/jwt"
	"github.com/hatchhr/hatchhr-backend-go/internal/repository/postgresql"
	"github.com/hatchhr/hatchhr-backend-go/internal/service/dispatch"
	employeeService "github.com/hatchhr/hatchhr-backend-go/internal/service/employee"
	hatcheryService "github.com/hatchhr/hatchhr-backend-go/internal/service/hatchery"
	inventoryService "github.com/hatchhr/hatchhr-backend-go/internal/service/inventory"
	leaveService "github.com/hatchhr/hatchhr-backend-go/internal/service/leave"
	notificationService "github.com/hatchhr/hatchhr-backend-go/internal/service/notification"
	salaryService "github.com/hatchhr/hatchhr-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	hatcheryRepo := postgresql.NewHatcheryRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	inventoryRepo := postgresql.NewInventoryRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	// Every event is routed to the admin of the hatchery it occurred in.
	resolveRecipient := func(ctx context.Context, e event.Event) (string, error) {
		if e.HatcheryID == "" {
			return "", fmt.Errorf("event %s carries no hatchery", e.Kind)
		}
		return hatcheryRepo.GetAdminID(ctx, e.HatcheryID)
	}
	dispatcher := dispatch.NewDispatcher(notificationRepo, resolveRecipient)

	hatcherySvc := hatcheryService.NewService(hatcheryRepo)
	employeeSvc := employeeService.NewService(employeeRepo, hatcheryRepo)
	leaveSvc := leaveService.NewService(leaveRepo, employeeRepo, dispatcher)
	salarySvc := salaryService.NewService(salaryRepo, employeeRepo, dispatcher)
	inventorySvc := inventoryService.NewService(inventoryRepo, dispatcher, cfg.Inventory.LowStockDefault)
	notificationSvc := notificationService.NewService(notificationRepo)

	router := appHTTP.NewRouter(cfg.App, JWTService, appHTTP.Handlers{
		Hatchery:     appHTTP.NewHatcheryHandler(hatcherySvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Salary:       appHTTP.NewSalaryHandler(salarySvc),
		Inventory:    appHTTP.NewInventoryHandler(inventorySvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
