package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mario2280/Dating-App-Front-sub000/config"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/feed"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/handler"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/match"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/middleware"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/repository"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/service"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/store"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/ws"
	"github.com/Mario2280/Dating-App-Front-sub000/pkg/cloudinary"
	"github.com/Mario2280/Dating-App-Front-sub000/pkg/wallet"
)

func Setup(cfg *config.Config, st store.Store, cloud cloudinary.Uploader, provider wallet.Provider, log *zap.Logger) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	sessionRepo := repository.NewSessionRepository(st, cfg.Telegram.IdentityTTL)
	profileRepo := repository.NewProfileRepository(st)
	filterRepo := repository.NewFilterRepository(st)
	currentRepo := repository.NewCurrentProfileRepository(st)
	convRepo := repository.NewConversationRepository(st, currentRepo)
	matchRepo := repository.NewMatchRepository(st)
	likeRepo := repository.NewLikeRepository(st)
	paymentRepo := repository.NewPaymentRepository(st)

	candidateFeed := feed.NewFeed(feed.NewGenerator(filterRepo))
	matchPolicy := match.NewCoinFlipPolicy(time.Now().UnixNano())
	chatHub := ws.NewHub()

	// Services
	chatSvc := service.NewChatService(convRepo, chatHub, log)

	// Handlers
	authHandler := handler.NewAuthHandler(cfg, sessionRepo)
	profileHandler := handler.NewProfileHandler(profileRepo, cloud)
	filterHandler := handler.NewFilterHandler(filterRepo, candidateFeed)
	feedHandler := handler.NewFeedHandler(candidateFeed, likeRepo, matchRepo, convRepo, currentRepo, matchPolicy)
	convHandler := handler.NewConversationHandler(convRepo, chatSvc)
	matchHandler := handler.NewMatchHandler(matchRepo, convRepo)
	walletHandler := handler.NewWalletHandler(provider, paymentRepo)

	authMw := middleware.AuthRequired(&cfg.JWT)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/telegram", authHandler.Login)
			authGroup.GET("/session", authHandler.Session)
			authGroup.POST("/logout", authMw, authHandler.Logout)
		}

		me := api.Group("/me")
		me.Use(authMw)
		{
			me.GET("/profile", profileHandler.Get)
			me.PUT("/profile", profileHandler.Put)
			me.PATCH("/profile", profileHandler.Patch)
			me.POST("/profile/photos", profileHandler.UploadPhoto)
			me.PATCH("/location", profileHandler.PatchLocation)
			me.GET("/notifications", profileHandler.GetNotifications)
			me.PUT("/notifications", profileHandler.PutNotifications)
			me.GET("/filters", filterHandler.Get)
			me.PUT("/filters", filterHandler.Put)
			me.GET("/likes", feedHandler.Likes)
			me.GET("/wallet", walletHandler.Balance)
			me.GET("/payment", walletHandler.GetSelection)
			me.PUT("/payment", walletHandler.PutSelection)
		}

		feedGroup := api.Group("/feed")
		feedGroup.Use(authMw)
		{
			feedGroup.GET("", feedHandler.Candidates)
			feedGroup.POST("/swipe", feedHandler.Swipe)
			feedGroup.GET("/current", feedHandler.Current)
			feedGroup.PUT("/current", feedHandler.SetCurrent)
			feedGroup.DELETE("/current", feedHandler.ClearCurrent)
		}

		convGroup := api.Group("/conversations")
		convGroup.Use(authMw)
		{
			convGroup.GET("", convHandler.List)
			convGroup.POST("", convHandler.Create)
			convGroup.POST("/:id/messages", convHandler.SendMessage)
			convGroup.POST("/:id/read", convHandler.MarkRead)
		}

		matchGroup := api.Group("/matches")
		matchGroup.Use(authMw)
		{
			matchGroup.GET("", matchHandler.List)
			matchGroup.DELETE("/:id", matchHandler.Reject)
		}

		api.GET("/ws/chat", ws.UpgradeChatWS(&cfg.JWT, chatHub))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
