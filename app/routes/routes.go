package routes

import (
	"net/http"

	"github.com/main18/Developers-Social-Network/app/auth"
	"github.com/main18/Developers-Social-Network/app/config"
	"github.com/main18/Developers-Social-Network/app/controllers"
	"github.com/main18/Developers-Social-Network/app/middleware"
	"github.com/main18/Developers-Social-Network/app/repositories"
	"github.com/main18/Developers-Social-Network/app/services"

	"github.com/gorilla/mux"
)

// SetupRoutes wires the API and the static client shell onto a router.
func SetupRoutes(repo *repositories.Repository, cfg config.Config) *mux.Router {
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	userService := services.NewUserService(repo.Users(), tokens, cfg.BcryptCost)
	postService := services.NewPostService(repo.Posts(), repo.Users())

	userController := controllers.NewUserController(userService)
	authController := controllers.NewAuthController(userService)
	postController := controllers.NewPostController(postService)

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	requireAuth := middleware.RequireAuth(tokens)
	protect := func(h http.HandlerFunc) http.Handler {
		return requireAuth(h)
	}

	api := router.PathPrefix("/api").Subrouter()

	// Users and auth
	api.HandleFunc("/users", userController.Register).Methods("POST")
	api.Handle("/auth", protect(authController.Me)).Methods("GET")
	api.HandleFunc("/auth", authController.Login).Methods("POST")

	// Posts, likes, comments (all protected)
	posts := api.PathPrefix("/posts").Subrouter()
	posts.Use(requireAuth)
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/like/{id:[0-9]+}", postController.Like).Methods("PUT")
	posts.HandleFunc("/unlike/{id:[0-9]+}", postController.Unlike).Methods("PUT")
	posts.HandleFunc("/comment/{id:[0-9]+}", postController.Comment).Methods("POST")
	posts.HandleFunc("/comment/{id:[0-9]+}/{comment_id}", postController.DeleteComment).Methods("DELETE")
	posts.HandleFunc("/{id:[0-9]+}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id:[0-9]+}", postController.Delete).Methods("DELETE")

	// Static client shell
	router.PathPrefix("/").Handler(http.FileServer(http.Dir("static")))

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
