package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/beka-birhanu/mazerunner-api/api"
	api_i "github.com/beka-birhanu/mazerunner-api/api/i"
	"github.com/beka-birhanu/mazerunner-api/api/identity"
	runapi "github.com/beka-birhanu/mazerunner-api/api/run"
	"github.com/beka-birhanu/mazerunner-api/config"
	"github.com/beka-birhanu/mazerunner-api/infrastruture/leaderboard"
	"github.com/beka-birhanu/mazerunner-api/infrastruture/repo"
	"github.com/beka-birhanu/mazerunner-api/infrastruture/token"
	"github.com/beka-birhanu/mazerunner-api/service"
	"github.com/beka-birhanu/mazerunner-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient       *mongo.Client
	redisClient       *redis.Client
	playerRepo        i.PlayerRepo
	solveLeaderboard  i.Leaderboard
	runSessionManager i.RunSessionManager
	runController     api_i.Controller
	jwtTokenizer      i.Tokenizer
	authService       i.Authenticator
	authController    api_i.Controller
	router            *api.Router
	appLogger         *log.Logger
)

// newComponentLogger creates a logger with a colored per-component prefix.
func newComponentLogger(name, color string) *log.Logger {
	prefix := fmt.Sprintf("%s[%s]%s ", color, name, config.ColorReset)
	return log.New(os.Stdout, prefix, log.LstdFlags)
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Fatalf("%s[FATAL]%s Failed to connect to MongoDB: %v", config.LogErrorColor, config.LogColorReset, err)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Fatalf("%s[FATAL]%s MongoDB ping failed: %v", config.LogErrorColor, config.LogColorReset, err)
	}
	appLogger.Printf("%s[INFO]%s Connected to MongoDB", config.LogInfoColor, config.LogColorReset)
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Fatalf("%s[FATAL]%s Redis ping failed: %v", config.LogErrorColor, config.LogColorReset, err)
	}
	appLogger.Printf("%s[INFO]%s Connected to Redis", config.LogInfoColor, config.LogColorReset)
}

func initPlayerRepo(client *mongo.Client) {
	playerRepo = repo.NewPlayerRepo(client, config.Envs.DBName, "players")
	appLogger.Printf("%s[INFO]%s Player repository initialized", config.LogInfoColor, config.LogColorReset)
}

func initLeaderboard() {
	var err error
	solveLeaderboard, err = leaderboard.New(redisClient, &leaderboard.Options{
		Logger: newComponentLogger("LEADERBOARD", config.ColorMagenta),
	})
	if err != nil {
		appLogger.Fatalf("%s[FATAL]%s Creating leaderboard: %v", config.LogErrorColor, config.LogColorReset, err)
	}
	appLogger.Printf("%s[INFO]%s Leaderboard initialized", config.LogInfoColor, config.LogColorReset)
}

func initRunSessionManager() {
	var err error
	runSessionManager, err = service.NewRunSessionManager(&service.RunSessionConfig{
		Leaderboard: solveLeaderboard,
		Logger:      newComponentLogger("RUN-SESSION", config.ColorCyan),
	})
	if err != nil {
		appLogger.Fatalf("%s[FATAL]%s Creating run session manager: %v", config.LogErrorColor, config.LogColorReset, err)
	}
	appLogger.Printf("%s[INFO]%s Run session manager initialized", config.LogInfoColor, config.LogColorReset)
}

func initRunController() {
	var err error
	runController, err = runapi.NewRunController(runSessionManager, solveLeaderboard)
	if err != nil {
		appLogger.Fatalf("%s[FATAL]%s Creating run controller: %v", config.LogErrorColor, config.LogColorReset, err)
	}
	appLogger.Printf("%s[INFO]%s Run controller initialized", config.LogInfoColor, config.LogColorReset)
}

func initJWTTokenizer() {
	if config.Envs.JWTSecret == "insecure-dev-secret" {
		appLogger.Printf("%s[ERROR]%s JWT_SECRET not set, using the insecure development default", config.LogErrorColor, config.LogColorReset)
	}
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Printf("%s[INFO]%s JWT Tokenizer initialized", config.LogInfoColor, config.LogColorReset)
}

func initAuthService() {
	var err error
	authService, err = service.NewAuth(playerRepo, jwtTokenizer)
	if err != nil {
		appLogger.Fatalf("%s[FATAL]%s Creating auth service: %v", config.LogErrorColor, config.LogColorReset, err)
	}
	appLogger.Printf("%s[INFO]%s Auth service initialized", config.LogInfoColor, config.LogColorReset)
}

func initAuthController() {
	authController = identity.NewIdentityServer(authService)
	appLogger.Printf("%s[INFO]%s Auth controller initialized", config.LogInfoColor, config.LogColorReset)
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, runController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Printf("%s[INFO]%s Router initialized", config.LogInfoColor, config.LogColorReset)
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	appLogger = newComponentLogger("APP", config.ColorBlue)
	gin.SetMode(config.Envs.GinMode)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer redisClient.Close()

	initPlayerRepo(mongoClient)
	initLeaderboard()
	initRunSessionManager()
	initRunController()
	initJWTTokenizer()
	initAuthService()
	initAuthController()
	initRouter(jwtTokenizer)

	if err := router.Run(); err != nil {
		appLogger.Fatalf("%s[FATAL]%s Starting server: %v", config.LogErrorColor, config.LogColorReset, err)
	}
}
