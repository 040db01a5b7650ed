package rest

import (
	"log/slog"
	"net/http"

	"myflix/internal/config"
	"myflix/internal/transport/rest/middleware"
)

type RouterDeps struct {
	Auth  *AuthHandler
	Movie *MovieHandler
	User  *UserHandler

	Verifier middleware.TokenVerifier
	Log      *slog.Logger
}

func NewRouter(cfg *config.Config, deps *RouterDeps) http.Handler {
	mux := http.NewServeMux()

	globalMw := middleware.New()
	globalMw.Use(middleware.CORS(cfg))
	globalMw.Use(middleware.Logging(deps.Log))

	authMw := middleware.New()
	authMw.Use(middleware.JWT(deps.Verifier))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST /login", deps.Auth.Login)
	mux.HandleFunc("POST /users", deps.Auth.Register)

	mux.Handle("GET /movies", authMw.Then(http.HandlerFunc(deps.Movie.Index)))
	mux.Handle("GET /movies/genre/{name}", authMw.Then(http.HandlerFunc(deps.Movie.Genre)))
	mux.Handle("GET /movies/director/{name}", authMw.Then(http.HandlerFunc(deps.Movie.Director)))
	mux.Handle("GET /movies/{title}", authMw.Then(http.HandlerFunc(deps.Movie.Show)))

	mux.Handle("GET /users", authMw.Then(http.HandlerFunc(deps.User.Index)))
	mux.Handle("GET /users/{username}", authMw.Then(http.HandlerFunc(deps.User.Show)))
	mux.Handle("PUT /users/{username}", authMw.Then(http.HandlerFunc(deps.User.Update)))
	mux.Handle("DELETE /users/{username}", authMw.Then(http.HandlerFunc(deps.User.Destroy)))

	mux.Handle("POST /users/{username}/movies/{movieID}", authMw.Then(http.HandlerFunc(deps.User.AddFavorite)))
	mux.Handle("DELETE /users/{username}/movies/{movieID}", authMw.Then(http.HandlerFunc(deps.User.RemoveFavorite)))

	return globalMw.Apply(mux)
}
