package main

import (
	"log"
	"net/http"

	"hoteljt/config"
	"hoteljt/models"
	"hoteljt/routes"
	"hoteljt/services"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hoteljt",
		Short: "Single-property lodging management API",
	}
	rootCmd.AddCommand(serveCmd(), seedCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			router, err := config.InitApp()
			if err != nil {
				return err
			}

			// First run creates the 22-room catalog.
			if err := models.SeedRooms(config.DB); err != nil {
				return err
			}

			clock := services.NewClock(config.GetEnvDefault("TZ", "America/Sao_Paulo"))
			routes.SetupRoutes(router, config.DB, config.RedisClient, clock)

			router.GET("/ping", func(c *gin.Context) {
				c.String(http.StatusOK, "pong")
			})

			port := config.GetEnvDefault("PORT", "8083")
			log.Println("Server starting on port " + port + "...")
			return router.Run(":" + port)
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the schema and the 22-room catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()
			if err := config.ConnectDB(); err != nil {
				return err
			}
			if err := config.MigrateDB(config.DB); err != nil {
				return err
			}
			if err := models.SeedRooms(config.DB); err != nil {
				return err
			}

			var count int64
			if err := config.DB.Model(&models.Room{}).Count(&count).Error; err != nil {
				return err
			}
			log.Printf("Seed complete, %d rooms in catalog", count)
			return nil
		},
	}
}
