package main

import (
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/usecase"
	auth "app/internal/usecase/auth_usecase"
	"app/internal/validator"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(userID int64, role model.Role, tokenVersion int, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"tv":   tokenVersion,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	//.envは開発用。無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.RefreshToken{},
		&model.Service{},
		&model.BlogPost{},
		&model.Order{},
		&model.ServiceVote{},
		&model.BlogPostVote{},
		&model.PostComment{},
		&model.SavedBlogPost{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	rtRepo := infraRepo.NewRefreshTokenRepository(gormDB)
	serviceRepo := infraRepo.NewServiceGormRepository(gormDB)
	blogPostRepo := infraRepo.NewBlogPostGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()
	authValidator := validator.NewAuthValidator(userRepo)

	issuer := &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: 15 * time.Minute,
	}
	refreshTTL := 14 * 24 * time.Hour

	//Usecase生成
	registerUC := auth.NewRegisterUserUsecase(userRepo, authValidator, hasher, clock)
	loginUC := auth.NewLoginUsecase(userRepo, rtRepo, verifier, issuer, idGen, clock, refreshTTL)
	orderUC := usecase.NewOrderUsecase(txManager)
	serviceUC := usecase.NewServiceUsecase(serviceRepo)
	serviceVoteUC := usecase.NewServiceVoteUsecase(txManager)
	blogPostUC := usecase.NewBlogPostUsecase(blogPostRepo)
	blogVoteUC := usecase.NewBlogVoteUsecase(txManager)
	commentUC := usecase.NewCommentUsecase(txManager)
	savedUC := usecase.NewSavedPostUsecase(txManager)

	//Handler生成
	authH := handler.NewAuthHandler(registerUC, loginUC, refreshTTL, cfg.GoEnv != "dev")
	orderH := handler.NewOrderHandler(orderUC)
	serviceH := handler.NewServiceHandler(serviceUC, serviceVoteUC)
	blogH := handler.NewBlogPostHandler(blogPostUC, blogVoteUC, commentUC, savedUC)

	//Echoサーバー
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	if cfg.FEURL != "" {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     []string{cfg.FEURL},
			AllowCredentials: true,
		}))
	}

	authH.RegisterRoutes(e)
	orderH.RegisterRoutes(e, cfg, userRepo)
	serviceH.RegisterRoutes(e, cfg, userRepo)
	blogH.RegisterRoutes(e, cfg, userRepo)

	addr := ":" + cfg.Port
	if err := e.Start(addr); err != nil {
		e.Logger.Fatal(err)
	}
}
