package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/beka-birhanu/maze-solver/api"
	api_i "github.com/beka-birhanu/maze-solver/api/i"
	"github.com/beka-birhanu/maze-solver/api/identity"
	"github.com/beka-birhanu/maze-solver/api/mazeapi"
	"github.com/beka-birhanu/maze-solver/codec"
	"github.com/beka-birhanu/maze-solver/config"
	logger "github.com/beka-birhanu/maze-solver/infrastruture/log"
	"github.com/beka-birhanu/maze-solver/infrastruture/repo"
	"github.com/beka-birhanu/maze-solver/infrastruture/sortedstorage"
	"github.com/beka-birhanu/maze-solver/infrastruture/token"
	"github.com/beka-birhanu/maze-solver/service"
	"github.com/beka-birhanu/maze-solver/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	mazeRepo       i.MazeRepo
	rankingStore   i.SortedStore
	jwtTokenizer   i.Tokenizer
	solverService  *service.Solver
	mazeController api_i.Controller
	router         *api.Router
	appLogger      i.Logger
)

func initMongo(ctx context.Context) {
	clientOptions := options.Client().ApplyURI(config.Envs.MongoURI())
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
		DB:       config.Envs.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initMazeRepo(client *mongo.Client) {
	mazeRepo = repo.NewMazeRepo(client, config.Envs.DBName, "mazes")
	appLogger.Info("Maze repository initialized")
}

func initRankingStore(client *redis.Client) {
	var err error
	rankingStore, err = sortedstorage.NewRedisSortedStore(client, config.Envs.RankingTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating ranking store: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Ranking store initialized")
}

func initJWTTokenizer() {
	var err error
	jwtTokenizer, err = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating JWT tokenizer: %v", err))
		os.Exit(1)
	}
	appLogger.Info("JWT Tokenizer initialized")
}

func initSolverService(policy codec.Policy) {
	solverLogger, err := logger.New("SOLVER", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solver logger: %v", err))
		os.Exit(1)
	}

	solverService, err = service.NewSolver(mazeRepo, rankingStore, solverLogger, &service.Options{
		Seed:   config.Envs.Seed,
		Policy: policy,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solver service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Solver service initialized")
}

func initMazeController() {
	apiLogger, err := logger.New("API", config.ColorPurple, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating API logger: %v", err))
		os.Exit(1)
	}

	mazeController, err = mazeapi.NewController(solverService, apiLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{mazeController},
		AuthorizationMiddleware: identity.Authorize(t),
	})
	appLogger.Info("Router initialized")
}

// runServe starts the HTTP API backed by MongoDB and Redis.
func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := config.Envs.ValidateServer(); err != nil {
		return err
	}
	policy, err := codec.ParsePolicy(config.Envs.RolePolicy)
	if err != nil {
		return err
	}

	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	initRedis(ctx)
	defer redisClient.Close()

	initMazeRepo(mongoClient)
	initRankingStore(redisClient)
	initJWTTokenizer()
	initSolverService(policy)
	initMazeController()
	initRouter(jwtTokenizer)

	// Run HTTP server
	return router.Run()
}

const usage = `usage:
  maze-solver [solve] [flags] <maze file>   solve a maze file
  maze-solver generate [flags] <maze file>  carve a new maze and write it
  maze-solver benchmark [flags] <maze file> time every algorithm on a maze
  maze-solver serve                          run the HTTP API
  maze-solver token [flags]                  mint an API bearer token

run "maze-solver <command> -h" for the flags of a command; flags may come
before or after the maze file
`

var errNoPath = errors.New("no path found")

func main() {
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stderr)

	command, args := "solve", os.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "solve", "generate", "benchmark", "serve", "token":
			command, args = args[0], args[1:]
		case "help":
			fmt.Fprint(os.Stdout, usage)
			return
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch command {
	case "generate":
		err = runGenerate(args)
	case "benchmark":
		err = runBenchmark(ctx, args)
	case "serve":
		err = runServe(args)
	case "token":
		err = runToken(args)
	default:
		err = runSolve(ctx, args)
	}

	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errNoPath):
		stop()
		os.Exit(2)
	case errors.Is(err, errUsage):
		fmt.Fprint(os.Stderr, usage)
		stop()
		os.Exit(1)
	default:
		appLogger.Error(err.Error())
		stop()
		os.Exit(1)
	}
}
