package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	adminapp "github.com/twentymincoach/api/internal/admin/application"
	"github.com/twentymincoach/api/internal/config"
	"github.com/twentymincoach/api/internal/directory"
	mongodoc "github.com/twentymincoach/api/internal/infrastructure/mongo"
	adminhttp "github.com/twentymincoach/api/internal/interfaces/http/admin"
	commonhttp "github.com/twentymincoach/api/internal/interfaces/http/common"
	publichttp "github.com/twentymincoach/api/internal/interfaces/http/public"
	"github.com/twentymincoach/api/internal/metrics"
	publicapp "github.com/twentymincoach/api/internal/public/application"
	"github.com/twentymincoach/api/internal/seed"
)

// Server は HTTP サーバーのライフサイクルを管理し、Public/Admin の各ハンドラへ依存注入するコンポジションルート。
type Server struct {
	logger          *zap.Logger
	client          *mongo.Client
	directory       *directory.Directory
	queries         publicapp.CoachQueryService
	profiles        publicapp.ProfileService
	coaches         adminapp.CoachService
	metrics         *metrics.Recorder
	limiter         *commonhttp.RateLimiter
	jwtConfigs      []config.JWTConfig
	adminJWTConfigs []config.JWTConfig
	jwtAudience     string
	addr            string
	allowedOrigins  []string
}

type authenticatedUser = commonhttp.AuthenticatedUser

// New は Config と任意の Mongo クライアントからサーバーを組み立てる。
// client が nil の場合はシードデータのみのインメモリ構成になる。
func New(ctx context.Context, cfg config.Config, logger *zap.Logger, client *mongo.Client) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	srv := &Server{
		logger:          logger,
		client:          client,
		directory:       directory.New(),
		metrics:         metrics.New(),
		limiter:         commonhttp.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, logger),
		jwtConfigs:      append([]config.JWTConfig(nil), cfg.JWTConfigs...),
		adminJWTConfigs: append([]config.JWTConfig(nil), cfg.AdminJWTConfigs...),
		jwtAudience:     cfg.JWTAudience,
		addr:            cfg.Addr,
		allowedOrigins:  append([]string(nil), cfg.AllowedOrigins...),
	}

	var repo adminapp.CoachRepository
	if client != nil {
		coachRepo := mongodoc.NewCoachRepository(client.Database(cfg.MongoDatabase), cfg.CoachCollection)
		if err := srv.hydrate(ctx, coachRepo); err != nil {
			return nil, err
		}
		repo = coachRepo
	} else {
		if err := srv.loadSeed(); err != nil {
			return nil, err
		}
		logger.Info("MONGO_URI 未設定のためシードデータのみで起動します", zap.Int("coaches", srv.directory.Len()))
	}

	srv.queries = publicapp.NewQueryEngine(srv.directory)
	srv.profiles = publicapp.NewProfileResolver(srv.directory)
	srv.coaches = adminapp.NewCoachService(srv.directory, repo)
	return srv, nil
}

// hydrate は Mongo からディレクトリを読み込む。コレクションが空ならシードを書き込む。
func (s *Server) hydrate(ctx context.Context, repo *mongodoc.CoachRepository) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := repo.EnsureIndexes(ctx); err != nil {
		s.logger.Warn("インデックス作成に失敗しました", zap.Error(err))
	}

	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count coaches: %w", err)
	}
	if count == 0 {
		for _, coach := range seed.Coaches() {
			if err := repo.Save(ctx, coach); err != nil {
				return fmt.Errorf("seed coach %s: %w", coach.ID, err)
			}
		}
		s.logger.Info("空のコレクションにシードを投入しました")
	}

	coaches, err := repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load coaches: %w", err)
	}
	for _, coach := range coaches {
		if err := s.directory.Upsert(coach); err != nil {
			return fmt.Errorf("hydrate coach %s: %w", coach.ID, err)
		}
	}
	s.logger.Info("ディレクトリを読み込みました", zap.Int("coaches", len(coaches)))
	return nil
}

func (s *Server) loadSeed() error {
	for _, coach := range seed.Coaches() {
		if err := s.directory.Upsert(coach); err != nil {
			return fmt.Errorf("seed coach %s: %w", coach.ID, err)
		}
	}
	return nil
}

// Router は Public/Admin のルーティングとミドルウェアを組み立てる。
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/healthz", s.healthHandler())
	router.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:   s.logger,
		Queries:  s.queries,
		Profiles: s.profiles,
		Coaches:  s.coaches,
		Metrics:  s.metrics,
	})
	router.Group(func(r chi.Router) {
		r.Use(s.limiter.Middleware)
		publicHandler.Register(r, s.requireToken(s.jwtConfigs))
	})

	adminHandler := adminhttp.NewHandler(adminhttp.Config{
		Logger:       s.logger,
		CoachService: s.coaches,
		Metrics:      s.metrics,
	})
	router.Route("/admin", func(r chi.Router) {
		r.Use(s.requireToken(s.adminJWTConfigs))
		adminHandler.Register(r)
	})

	return router
}

// Run は HTTP サーバーを起動し、ctx がキャンセルされると graceful shutdown する。
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("HTTP サーバー起動", zap.String("addr", s.addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("サーバー停止処理を開始します")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	s.shutdown()
	return err
}

// healthHandler は MongoDB 構成時のみ疎通確認を行う。
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.client == nil {
			commonhttp.WriteJSON(s.logger, w, http.StatusOK, map[string]any{
				"status":  "ok",
				"store":   "memory",
				"coaches": s.directory.Len(),
			})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			commonhttp.WriteJSON(s.logger, w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}

		commonhttp.WriteJSON(s.logger, w, http.StatusOK, map[string]any{
			"status":  "ok",
			"store":   "mongo",
			"coaches": s.directory.Len(),
			"time":    time.Now().Format(time.RFC3339),
		})
	}
}

// requireToken は Authorization ヘッダーの JWT を指定の設定群で検証し、認証済みユーザーをコンテキストへ詰める。
func (s *Server) requireToken(configs []config.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
			if authHeader == "" {
				commonhttp.WriteMessage(s.logger, w, http.StatusUnauthorized, "missing Authorization header")
				return
			}

			const bearerPrefix = "Bearer "
			if !strings.HasPrefix(authHeader, bearerPrefix) {
				commonhttp.WriteMessage(s.logger, w, http.StatusUnauthorized, "bearer token required")
				return
			}

			tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
			if tokenString == "" {
				commonhttp.WriteMessage(s.logger, w, http.StatusUnauthorized, "empty access token")
				return
			}

			claims, err := s.parseAuthToken(tokenString, configs)
			if err != nil {
				commonhttp.WriteMessage(s.logger, w, http.StatusUnauthorized, err.Error())
				return
			}

			user := authenticatedUser{
				ID:       claims.Subject,
				Name:     claims.Name,
				Username: claims.PreferredUsername,
				Picture:  claims.Picture,
			}

			ctx := commonhttp.ContextWithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// parseAuthToken は複数の JWT 設定を順番に試し、署名検証と Issuer/Audience の整合性を確認する。
func (s *Server) parseAuthToken(tokenString string, configs []config.JWTConfig) (*authClaims, error) {
	if len(configs) == 0 {
		return nil, errors.New("authentication is not configured")
	}

	for _, cfg := range configs {
		claims := &authClaims{}
		opts := []jwt.ParserOption{
			jwt.WithLeeway(30 * time.Second),
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		}
		if cfg.Issuer != "" {
			opts = append(opts, jwt.WithIssuer(cfg.Issuer))
		}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
			return cfg.Secret, nil
		}, opts...)
		if err != nil || !token.Valid {
			continue
		}
		if claims.Subject == "" {
			continue
		}
		if s.jwtAudience != "" && !slices.Contains(claims.Audience, s.jwtAudience) {
			continue
		}
		return claims, nil
	}

	return nil, errors.New("invalid access token")
}

type authClaims struct {
	jwt.RegisteredClaims
	Name              string `json:"name,omitempty"`
	Picture           string `json:"picture,omitempty"`
	PreferredUsername string `json:"preferred_username,omitempty"`
}

// shutdown は MongoDB クライアントをタイムアウト付きで切断する。
func (s *Server) shutdown() {
	if s.client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(ctx); err != nil {
		s.logger.Warn("MongoDB 切断時にエラー", zap.Error(err))
	}
}
