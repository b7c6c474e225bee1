package main

import (
	"time"

	"mall/internal/config"
	"mall/internal/domain/model"
	"mall/internal/handler"
	"mall/internal/infra/db"
	infraRepo "mall/internal/infra/repository"
	"mall/internal/logger"
	"mall/internal/server"
	"mall/internal/usecase"
	"mall/internal/usecase/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret     []byte
	sessionTTL time.Duration
}

func (i *jwtIssuer) Issue(email string, role model.Role, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.sessionTTL)

	claims := jwt.MapClaims{
		"sub":  email,
		"role": string(role),
		"jti":  uuid.NewString(),
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
	// .envはあれば読む（本番は環境変数だけ）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.GoEnv)
	defer log.Sync()

	// DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(
		&model.Member{},
		&model.Item{},
		&model.ItemImage{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}

	// Repository（GORM実装）生成
	memberRepo := infraRepo.NewMemberGormRepository(gormDB)
	itemRepo := infraRepo.NewItemGormRepository(gormDB)
	imageRepo := infraRepo.NewItemImageGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	// usecaseに渡す部品
	clock := &realClock{}

	// bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()

	// セッショントークン発行（2時間）
	issuer := &jwtIssuer{
		secret:     []byte(cfg.JWTSecret),
		sessionTTL: 2 * time.Hour,
	}

	// Usecase生成
	registerUC := auth.NewRegisterUsecase(memberRepo, hasher, clock)
	loginUC := auth.NewLoginUsecase(memberRepo, verifier, issuer, clock)
	itemUC := usecase.NewItemUsecase(txManager, itemRepo, imageRepo, log)
	orderUC := usecase.NewOrderUsecase(txManager, memberRepo, orderRepo, itemRepo, imageRepo, log)

	// Handler生成
	handlers := server.Handlers{
		Member:    handler.NewMemberHandler(registerUC, loginUC),
		Item:      handler.NewItemHandler(itemUC),
		AdminItem: handler.NewAdminItemHandler(itemUC),
		Order:     handler.NewOrderHandler(orderUC),
	}

	// Server起動
	addr := ":" + cfg.Port
	e := server.New(cfg, log, handlers)

	log.Info("server starting", zap.String("addr", addr))
	if err := server.Start(e, addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
