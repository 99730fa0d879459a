package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"dineout/config"
	httpapi "dineout/internal/api/http"
	"dineout/internal/seed"
	"dineout/internal/service"
	"dineout/internal/storage"
)

func main() {
	config.Load()

	catalog := storage.NewMemoryCatalog()
	users := storage.NewMemoryUserDirectory()
	orders := storage.NewMemoryOrderStore()

	qrEncoder := service.ReceiptQRGenerator{BaseURL: config.QRBaseURL()}

	var publisher service.OrderPublisher
	if config.KafkaBroker() != "" {
		publisher = storage.NewKafkaPublisher(config.NewKafkaWriter(config.OrdersTopic()))
		log.Printf("Publishing order events to %s", config.OrdersTopic())
	}

	sys := service.NewDineOut(catalog, users, orders, qrEncoder, publisher)
	seed.Apply(sys)

	handler := httpapi.NewHandler(sys)
	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}).Handler(router)

	addr := config.HTTPAddr()
	log.Printf("DineOut service starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, corsHandler))
}
