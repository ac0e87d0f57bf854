package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ajensen/friendlink/internal/config"
	"github.com/ajensen/friendlink/internal/handlers"
	"github.com/ajensen/friendlink/internal/store/sqlstore"
	"github.com/ajensen/friendlink/internal/ws"
	"github.com/gorilla/mux"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	// Initialize Database
	store, err := sqlstore.New(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.SeedDemo {
		if err := store.SeedDemo(); err != nil {
			log.Fatal(err)
		}
	}

	// Initialize WebSocket Hub
	hub := ws.NewHub(store)
	go hub.Run()

	// Initialize Handlers
	friendHandler := &handlers.FriendHandler{Store: store}
	bookingHandler := &handlers.BookingHandler{Store: store}
	messageHandler := &handlers.MessageHandler{Store: store}
	signupHandler := &handlers.SignupHandler{Store: store}

	r := mux.NewRouter()
	r.Use(loggingMiddleware)

	// API Endpoints
	r.HandleFunc("/signup", signupHandler.Signup).Methods("POST")
	r.HandleFunc("/friends", friendHandler.ListFriends).Methods("GET")
	r.HandleFunc("/friends/{id}", friendHandler.GetFriend).Methods("GET")
	r.HandleFunc("/bookings", bookingHandler.CreateBooking).Methods("POST")
	r.HandleFunc("/bookings", bookingHandler.ListBookings).Methods("GET")
	r.HandleFunc("/bookings/{id}", bookingHandler.GetBooking).Methods("GET")
	r.HandleFunc("/messages/{userId}/{otherId}", messageHandler.GetConversation).Methods("GET")

	// WebSocket Endpoint. Identity is established in-band by the auth frame.
	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWs(hub, w, r)
	})

	// Serve index.html
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, cfg.StaticDir+"/index.html")
	})

	// Serve static files with cache-busting headers for development
	r.PathPrefix("/").Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, ".css") || strings.HasSuffix(r.URL.Path, ".js") {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
		}
		http.FileServer(http.Dir(cfg.StaticDir)).ServeHTTP(w, r)
	}))

	log.Println("Starting server on", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, r))
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}
