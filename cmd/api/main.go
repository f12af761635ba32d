package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pontolabs/ponto-backend-go/internal/config"
	appHTTP "github.com/pontolabs/ponto-backend-go/internal/handler/http"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/cron"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/oauth"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/storage"
	"github.com/pontolabs/ponto-backend-go/internal/repository/postgresql"
	authService "github.com/pontolabs/ponto-backend-go/internal/service/auth"
	deviceService "github.com/pontolabs/ponto-backend-go/internal/service/device"
	employeeService "github.com/pontolabs/ponto-backend-go/internal/service/employee"
	"github.com/pontolabs/ponto-backend-go/internal/service/file"
	hourbankService "github.com/pontolabs/ponto-backend-go/internal/service/hourbank"
	kioskService "github.com/pontolabs/ponto-backend-go/internal/service/kiosk"
	scheduleService "github.com/pontolabs/ponto-backend-go/internal/service/schedule"
	sectorService "github.com/pontolabs/ponto-backend-go/internal/service/sector"
	timesheetService "github.com/pontolabs/ponto-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	sectorRepo := postgresql.NewSectorRepository(db)
	deviceRepo := postgresql.NewDeviceRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	ledgerRepo := postgresql.NewLedgerRepository(db)
	balanceRepo := postgresql.NewBalanceRepository(db)
	loginAttemptRepo := postgresql.NewLoginAttemptRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var googleService oauth.GoogleService
	if cfg.OAuthEnabled() {
		googleService = oauth.NewGoogleService(
			cfg.OAuth2Google.ClientID,
			cfg.OAuth2Google.ClientSecret,
			cfg.OAuth2Google.RedirectURL,
			cfg.OAuth2Google.Scopes,
		)
	}

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileSvc := file.NewFileService(fileStorage)
	resolver := scheduleService.NewScheduleResolver(workScheduleRepo, employeeRepo)
	hourBankSvc := hourbankService.NewHourBankService(ledgerRepo, balanceRepo)
	timesheetSvc := timesheetService.NewTimesheetService(punchRepo, timesheetRepo, resolver, hourBankSvc)
	kioskSvc := kioskService.NewKioskService(
		cfg.Kiosk,
		employeeRepo,
		deviceRepo,
		punchRepo,
		loginAttemptRepo,
		fileSvc,
		timesheetSvc,
	)
	authSvc := authService.NewAuthService(kioskSvc, employeeRepo, jwtService, googleService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	sectorSvc := sectorService.NewSectorService(sectorRepo)
	deviceSvc := deviceService.NewDeviceService(deviceRepo)
	scheduleSvc := scheduleService.NewScheduleService(workScheduleRepo)

	scheduler := cron.NewScheduler()
	cron.NewReconciliationJobs(employeeRepo, timesheetSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Kiosk:     appHTTP.NewKioskHandler(kioskSvc),
		Auth:      appHTTP.NewAuthHandler(authSvc),
		Timesheet: appHTTP.NewTimesheetHandler(timesheetSvc),
		HourBank:  appHTTP.NewHourBankHandler(hourBankSvc),
		Employee:  appHTTP.NewEmployeeHandler(employeeSvc),
		Sector:    appHTTP.NewSectorHandler(sectorSvc),
		Device:    appHTTP.NewDeviceHandler(deviceSvc),
		Schedule:  appHTTP.NewScheduleHandler(scheduleSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
