package web

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/brianbaso/Social-Blog-App/internal/config"
	"github.com/brianbaso/Social-Blog-App/internal/database"
)

type app struct {
	infoLog        *log.Logger
	errorLog       *log.Logger
	HTMLDir        string
	StaticDir      string
	SessionSecret  []byte
	Database       *database.Database
	UserService    *database.UserService
	SessionService *database.SessionService
	PostService    *database.PostService
}

func RunApp() {
	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	cfg := config.Load()

	db, err := database.NewDatabase(cfg.DSN)
	if err != nil {
		errorLog.Fatal("Failed to open SQLite DB:", err)
	}
	defer db.Close()

	infoLog.Println("SQLite DB connected:", cfg.DSN)

	app := &app{
		infoLog:        infoLog,
		errorLog:       errorLog,
		HTMLDir:        cfg.HTMLDir,
		StaticDir:      cfg.StaticDir,
		SessionSecret:  []byte(cfg.SessionSecret),
		Database:       db,
		UserService:    database.NewUserService(db),
		SessionService: database.NewSessionService(db, cfg.SessionTTL),
		PostService:    database.NewPostService(db),
	}

	srv := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      app.routes(),
		ErrorLog:     errorLog,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	infoLog.Printf("Starting server on %s", cfg.ServerAddr)
	err = srv.ListenAndServe()
	errorLog.Fatal(err)
}
