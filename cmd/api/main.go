package main

import (
	"fmt"
	"net/http"

	"github.com/staffhub/hrms-backend-go/internal/config"
	appHTTP "github.com/staffhub/hrms-backend-go/internal/handler/http"
	"github.com/staffhub/hrms-backend-go/internal/pkg/database"
	"github.com/staffhub/hrms-backend-go/internal/pkg/jwt"
	"github.com/staffhub/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffhub/hrms-backend-go/internal/service/attendance"
	authService "github.com/staffhub/hrms-backend-go/internal/service/auth"
	dashboardService "github.com/staffhub/hrms-backend-go/internal/service/dashboard"
	employeeService "github.com/staffhub/hrms-backend-go/internal/service/employee"
	leaveService "github.com/staffhub/hrms-backend-go/internal/service/leave"
	taskService "github.com/staffhub/hrms-backend-go/internal/service/task"
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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	taskSvc := taskService.NewTaskService(taskRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, attendanceRepo, taskRepo, leaveRepo)

	router := appHTTP.NewRouter(jwtService, cfg.App.Env, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Task:       appHTTP.NewTaskHandler(taskSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
