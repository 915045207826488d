package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"meditrack/config"
	"meditrack/controllers"
	"meditrack/db"
	"meditrack/jobs"
	"meditrack/routes"
	"meditrack/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Error in loading the ENV")
	}
	cfg := config.Load()

	// The store must be reachable before we accept a single request.
	mongo, err := db.Connect(context.Background(), cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Could not connect to MongoDB: ", err)
	}

	svc := services.NewPatientService(db.NewPatientRepo(mongo))
	patients := controllers.NewPatientController(svc)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.LoadHTMLGlob("templates/*.html")
	routes.Routes(r, patients)

	census := jobs.StartDailyCensus(svc)

	server := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.Println("Listening on port " + cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Error from ListenAndServe: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	census.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Println("Error from Shutdown: ", err)
	}
	if err := mongo.Close(ctx); err != nil {
		log.Println("Error from mongo.Close: ", err)
	}
}
