package main

import (
	"log"
	"net/http"

	"healthassist/internal/server"
)

func main() {

	server := server.NewServer()

	log.Printf("listening on %s", server.Addr)
	err := server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("HTTP server error: %s", err)
	}

	log.Println("Server has stopped.")
}
