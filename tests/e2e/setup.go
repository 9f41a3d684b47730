//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"booking-flow/cmd/bootstrap"
	"booking-flow/cmd/bootstrap/components"
	"booking-flow/internal/infra/db"
	"booking-flow/internal/pkg/config"
	"booking-flow/migrations"
	"booking-flow/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	testUser     = "test"
	testPassword = "testpass"

	postgresPort = "5432/tcp"
	redisPort    = "6379/tcp"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

func (c ContainerInfo) Addr() string {
	return c.Host + ":" + c.Port.Port()
}

// sharedContainer starts its container at most once per test process.
type sharedContainer struct {
	once      sync.Once
	container testcontainers.Container
	err       error
	port      string
	startup   time.Duration
	request   func() testcontainers.ContainerRequest
}

var (
	postgresContainer = &sharedContainer{port: postgresPort, startup: 3 * time.Minute, request: postgresRequest}
	redisContainer    = &sharedContainer{port: redisPort, startup: time.Minute, request: redisRequest}
)

func (sc *sharedContainer) info(t *testing.T) ContainerInfo {
	t.Helper()
	sc.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), sc.startup)
		defer cancel()
		sc.container, sc.err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: sc.request(),
			Started:          true,
		})
	})
	require.NoError(t, sc.err, "コンテナの起動に失敗")

	ctx := context.Background()
	mapped, err := sc.container.MappedPort(ctx, nat.Port(sc.port))
	require.NoError(t, err)
	host, err := sc.container.Host(ctx)
	require.NoError(t, err)
	return ContainerInfo{Host: host, Port: mapped}
}

func postgresRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{postgresPort},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       "postgres",
		},
		// データはRAM上に置き、耐久性は捨てる
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "full_page_writes=off",
			"-c", "synchronous_commit=off",
			"-c", "max_connections=200",
		},
		WaitingFor: wait.ForSQL(postgresPort, "pgx", func(host string, port nat.Port) string {
			return adminDSN(ContainerInfo{Host: host, Port: port})
		}).WithStartupTimeout(time.Minute),
		Name:   "booking-flow-postgres-e2e",
		Labels: map[string]string{"purpose": "e2e-tests"},
	}
}

func redisRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{redisPort},
		Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		Name:         "booking-flow-redis-e2e",
		Labels:       map[string]string{"purpose": "e2e-tests"},
	}
}

func adminDSN(pg ContainerInfo) string {
	return fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable", testUser, testPassword, pg.Addr())
}

// createDatabase gives each test process its own database so suites can run
// in parallel against one container.
func createDatabase(t *testing.T, pg ContainerInfo) config.DBConfig {
	t.Helper()
	dbName := "booking_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, adminDSN(pg))
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	require.Eventually(t, func() bool {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+dbName)
		return err == nil
	}, 8*time.Second, 500*time.Millisecond, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN(pg))
		if err != nil {
			slog.Warn("クリーンアップ用の接続に失敗しました", "database", dbName, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", dbName, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     pg.Host,
		Port:     pg.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
	}
}

func openMigratedPool(t *testing.T, dbConfig config.DBConfig) *pgxpool.Pool {
	t.Helper()
	pool, cleanup, err := db.Connect(context.Background(), dbConfig)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(cleanup)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	require.NoError(t, db.Migrate(ctx, pool, migrations.FS), "マイグレーションに失敗")
	return pool
}

// testConfig points the app at the containers and shortens the wizard delays
// so flows finish quickly. Random slot locks are switched off.
func testConfig(dbConfig config.DBConfig, rd ContainerInfo) config.Config {
	cfg := config.NewTestConfig()
	cfg.DB = dbConfig
	cfg.Store.Backend = config.BackendPostgres
	cfg.Redis.Addr = rd.Addr()
	cfg.Lock.Backend = config.BackendRedis
	cfg.Lock.Probability = 0
	cfg.Wizard.AutoAdvanceDelay = 20 * time.Millisecond
	cfg.Wizard.ConfirmationDelay = 20 * time.Millisecond
	return cfg
}

// startApp builds the production graph minus the HTTP server and starts it.
func startApp(t *testing.T, cfg config.Config) (*gin.Engine, *redis.Client) {
	t.Helper()
	var (
		router *gin.Engine
		rdb    *redis.Client
	)

	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.MetricsModule,
		bootstrap.StoreModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,
		bootstrap.WorkerModule,
		fx.Provide(bootstrap.NewRedisClient),
		fx.Populate(&router, &rdb),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})
	return router, rdb
}

// SharedSuite boots Postgres, Redis and the whole app once per suite.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pg := postgresContainer.info(t)
	rd := redisContainer.info(t)
	dbConfig := createDatabase(t, pg)

	s.DB = openMigratedPool(t, dbConfig)
	s.Config = testConfig(dbConfig, rd)
	s.Router, s.Redis = startApp(t, s.Config)

	slog.Info("E2E環境の準備が完了しました", "postgres", pg.Addr(), "redis", rd.Addr(), "database", dbConfig.DBName)
}

// SetupSubTest clears booking records and slot locks between sub-tests.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database state")
	require.NoError(s.T(), s.Redis.FlushDB(context.Background()).Err(), "failed to flush slot locks")
}
