package router

import (
	"Hive_Social/internal/config"
	"Hive_Social/internal/handler"
	"Hive_Social/internal/middleware"
	"Hive_Social/internal/pkg"
	"Hive_Social/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func InitRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.Default()

	emailSvc := service.NewEmailService(pkg.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	communitySvc := service.NewCommunityService(db)

	user := handler.NewUserHandler(service.NewUserService(db, emailSvc))
	email := handler.NewEmailHandler(emailSvc)
	community := handler.NewCommunityHandler(communitySvc)
	friend := handler.NewFriendHandler(service.NewFriendService(db))
	message := handler.NewMessageHandler(service.NewMessageService(db, communitySvc.Ledger()))

	// 邮件相关接口
	emailGroup := r.Group("/api/email")
	{
		emailGroup.POST("/:scope/code", email.SendCode)
	}

	// 用户相关接口
	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/register", user.Register)
		userGroup.POST("/login", user.Login)
		userGroup.POST("/reset", user.ResetPassword)
	}

	// token相关接口
	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", user.TokenRefresh)
	}

	// 登录态接口
	authGroup := r.Group("/api/auth")
	authGroup.Use(middleware.AuthMiddleware())
	{
		authGroup.POST("/logout", user.Logout)
		authGroup.POST("/change-password", user.ChangePassword)
	}

	// 社区相关接口
	communityGroup := r.Group("/api/community")
	communityGroup.Use(middleware.AuthMiddleware())
	{
		communityGroup.POST("/create", community.Create)
		communityGroup.POST("/join", community.Join)
		communityGroup.POST("/leave", community.Leave)
		communityGroup.POST("/remove-member", community.RemoveMember)
		communityGroup.POST("/delete", community.Delete)
		communityGroup.GET("/members", community.Members)
		communityGroup.GET("/list", community.List)
	}

	// 好友相关接口
	friendGroup := r.Group("/api/friend")
	friendGroup.Use(middleware.AuthMiddleware())
	{
		friendGroup.POST("/request", friend.SendRequest)
		friendGroup.POST("/accept", friend.Accept)
		friendGroup.POST("/reject", friend.Reject)
		friendGroup.POST("/cancel", friend.Cancel)
		friendGroup.GET("/list", friend.List)
		friendGroup.GET("/incoming", friend.Incoming)
		friendGroup.GET("/status", friend.Status)
	}

	// 社区消息接口
	messageGroup := r.Group("/api/message")
	messageGroup.Use(middleware.AuthMiddleware())
	{
		messageGroup.POST("/create", message.Create)
		messageGroup.GET("/list", message.ListByCommunity)
	}

	return r
}
