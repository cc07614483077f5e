package deps

import (
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/r3labs/sse/v2"

	"userapp/internal/config"
	"userapp/internal/core/domain/account"
	"userapp/internal/core/domain/code"
	devents "userapp/internal/core/domain/events"
	dl "userapp/internal/core/domain/logging"
	drl "userapp/internal/core/domain/rate_limiter"
	duow "userapp/internal/core/domain/unit_of_work"
	"userapp/internal/db"
	dbaccount "userapp/internal/db/account"
	uow "userapp/internal/db/unit_of_work"
	codegenerator "userapp/internal/implementations/code_generator"
	"userapp/internal/implementations/email"
	eventsimpl "userapp/internal/implementations/events"
	"userapp/internal/implementations/logging"
	passwordhasher "userapp/internal/implementations/password_hasher"
	ratelimiter "userapp/internal/implementations/rate_limiter"
	sessiontoken "userapp/internal/implementations/session_token"
	"userapp/internal/rabbitmq"
	outgoingemail "userapp/internal/rabbitmq/publishers/outgoing_email"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB        *pgxpool.Pool
	Redis     *redis.Client
	Rabbitmq  *rabbitmq.Connection
	SseServer *sse.Server

	Now func() time.Time

	UnitOfWork        duow.UnitOfWork
	AccountRepository account.Repository

	RateLimiter drl.RateLimiter

	EmailSender              *email.SESSender
	VerificationEmailSender  account.VerificationEmailSender
	PasswordResetEmailSender account.PasswordResetEmailSender

	CodeGenerator  code.Generator
	PasswordHasher account.PasswordHasher
	TokenIssuer    account.TokenIssuer
	TokenVerifier  account.TokenVerifier
	EventPublisher devents.Publisher
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()
	closeSseServer := deps.initSseServer()

	deps.Now = func() time.Time { return time.Now().UTC() }

	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	deps.AccountRepository = dbaccount.NewPgxRepository(deps.DB)

	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)

	deps.EmailSender = email.NewSESSender(deps.AwsConfig, deps.Config.AwsEmailSender)
	closeEmailPublisher := deps.initEmailDelivery()

	deps.CodeGenerator = codegenerator.NewGenerator()
	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)

	sessionTokens := sessiontoken.NewHMAC(deps.Config.Secret, deps.Config.SessionTokenValidDuration)
	deps.TokenIssuer = sessionTokens
	deps.TokenVerifier = sessionTokens

	deps.EventPublisher = eventsimpl.NewSSEPublisher(deps.SseServer, deps.Logger)

	return deps, func() {
		closeFuncs := []func(){
			closeSseServer,
			closeEmailPublisher,
			closeRabbitmqConn,
			closeRedisClient,
			closePgxPool,
			closeLogger,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	if err := db.Migrate(deps.Config.PostgresqlURL); err != nil {
		deps.Logger.Error(context.Background(), "Could not apply DB migrations.", dl.Entry("err", err))
		panic(err)
	}
	pool, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = pool
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		pool.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

// initEmailDelivery wires the email sender interfaces either directly to SES
// or to the outgoing email queue, depending on configuration.
func (deps *Deps) initEmailDelivery() func() {
	if deps.Config.EmailDeliveryMode == config.EmailDeliveryDirect {
		deps.VerificationEmailSender = deps.EmailSender
		deps.PasswordResetEmailSender = deps.EmailSender
		return func() {}
	}

	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}
	if _, err := rabbitmqChannel.QueueDeclare(
		deps.Config.RabbitmqOutgoingEmailQueue,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}

	publisher := outgoingemail.New(
		deps.Logger,
		rabbitmqChannel,
		deps.Config.RabbitmqOutgoingEmailExchange,
		deps.Config.RabbitmqOutgoingEmailQueue,
	)
	deps.VerificationEmailSender = publisher
	deps.PasswordResetEmailSender = publisher

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down outgoing email publisher.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Outgoing email publisher shut down.")
	}
}

func (deps *Deps) initSseServer() func() {
	deps.SseServer = sse.New()
	deps.SseServer.AutoStream = true
	deps.SseServer.AutoReplay = false
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down SSE server.")
		deps.SseServer.Close()
		deps.Logger.Info(context.Background(), "SSE server shut down.")
	}
}
