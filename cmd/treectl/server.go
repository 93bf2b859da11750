package main

import (
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/Sapana-Micro-Software/merry-go-round-splay-trees/store"
)

var servePort string
var metricsPort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a debug HTTP server exposing container snapshots",
	Run: func(cmd *cobra.Command, args []string) {
		go startMetricsServer(metricsPort)
		runServer(db, servePort)
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "3000", "port to listen on")
	serveCmd.Flags().StringVar(&metricsPort, "metrics-port", "9090", "port to serve /metrics on")
}

// startMetricsServer exposes the pool package's Prometheus vectors on
// their own listener, mirroring indigo's BGS.StartMetrics.
func startMetricsServer(port string) {
	http.Handle("/metrics", promhttp.Handler())
	log.Printf("treectl metrics server listening on :%s", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Printf("metrics server: %v", err)
	}
}

// runServer starts a fiber app exposing read-only container endpoints
// over the given Store.
func runServer(db *store.Store, port string) {
	app := fiber.New()

	app.Get("/containers", func(c *fiber.Ctx) error {
		return c.JSON(db.Names())
	})

	app.Get("/containers/:id/snapshot", func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
		}
		container, ok := db.ContainerByID(id)
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no such container"})
		}
		return c.JSON(container.Snapshot())
	})

	app.Get("/containers/by-name/:name/snapshot", func(c *fiber.Ctx) error {
		container, ok := db.Container(c.Params("name"))
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no such container"})
		}
		return c.JSON(container.Snapshot())
	})

	log.Printf("treectl debug server listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
