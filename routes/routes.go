package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/tylacb11-spec/lienquan-sub000/handlers"
	"github.com/tylacb11-spec/lienquan-sub000/middleware"
)

// SetupRoutes wires every HTTP and websocket endpoint onto the router.
// Everything below /saves requires a valid bearer token.
func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	gameHandler *handlers.GameHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Post("/auth/register", authHandler.Register)
	router.Post("/auth/login", authHandler.Login)

	router.Route("/saves", func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtSecret))

		r.Get("/", gameHandler.ListSaves)
		r.Post("/advance", gameHandler.AdvanceAll)

		r.Route("/{slot}", func(r chi.Router) {
			r.Post("/", gameHandler.NewGame)
			r.Get("/", gameHandler.State)
			r.Delete("/", gameHandler.DeleteSave)
			r.Post("/export", gameHandler.ExportSave)

			r.Post("/advance", gameHandler.Advance)
			r.Post("/resolve", gameHandler.ResolvePending)

			r.Put("/lineup", gameHandler.SetLineup)
			r.Post("/players/{playerID}/release", gameHandler.ReleasePlayer)
			r.Post("/players/{playerID}/sign", gameHandler.SignPlayer)
			r.Post("/staff/upgrade", gameHandler.UpgradeStaff)
		})
	})

	router.Route("/ws", func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtSecret))
		r.Get("/saves/{slot}", webSocketHandler.ServeWs)
	})
}
