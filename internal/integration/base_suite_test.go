package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/popcornpalace/cinema-reservation-system/internal/app"
	"github.com/stretchr/testify/suite"
)

const (
	dbImageName    = "postgres:17-alpine"
	cacheImageName = "redis:7"
	dbName         = "cinema_test"
	dbUser         = "cinema"
	dbPassword     = "secret"
)

// BaseSuite spins up throwaway Postgres and Redis containers once and runs
// the full application against them. Individual suites embed it and truncate
// between tests.
type BaseSuite struct {
	suite.Suite
	dbContainer    *PostgresContainer
	cacheContainer *RedisContainer
	pool           *pgxpool.Pool
	app            *app.Application
	handler        http.Handler
}

func (s *BaseSuite) SetupSuite() {
	ctx := context.Background()

	dbContainer, err := getDbContainer(ctx)
	s.Require().NoError(err)
	s.dbContainer = dbContainer

	cacheContainer, err := getCacheContainer(ctx)
	s.Require().NoError(err)
	s.cacheContainer = cacheContainer

	pool, err := pgxpool.New(ctx, dbContainer.ConnectionString)
	s.Require().NoError(err)
	s.pool = pool

	cfg := app.Config{
		Env: "test",
		DB: app.DBConfig{
			DSN:          dbContainer.ConnectionString,
			MaxOpenConns: 25,
			MaxIdleTime:  15 * time.Minute,
		},
		Redis: app.RedisConfig{
			URL:          cacheContainer.ConnectionString,
			MaxOpenConns: 25,
			MaxIdleConns: 10,
			MaxIdleTime:  2 * time.Minute,
		},
		RateLimit: app.RateLimitConfig{Enabled: false},
	}

	application, err := app.New(cfg)
	s.Require().NoError(err)
	s.app = application
	s.handler = application.Routes()
}

func (s *BaseSuite) TearDownSuite() {
	ctx := context.Background()

	if s.app != nil {
		s.app.Close()
	}
	if s.pool != nil {
		s.pool.Close()
	}
	if s.cacheContainer != nil {
		_ = s.cacheContainer.Container.Terminate(ctx)
	}
	if s.dbContainer != nil {
		_ = s.dbContainer.Container.Terminate(ctx)
	}
}

func (s *BaseSuite) truncateTables() {
	_, err := s.pool.Exec(context.Background(),
		"TRUNCATE bookings, showtimes, movies RESTART IDENTITY")
	s.Require().NoError(err)
}

func (s *BaseSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader io.Reader

	if body != nil {
		jsonData, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handler.ServeHTTP(w, r)

	return w
}

func decodeResponse[T any](s *BaseSuite, w *httptest.ResponseRecorder) T {
	var v T
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&v))
	return v
}
