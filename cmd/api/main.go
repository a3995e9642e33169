package main

import (
	"context"
	"os"

	"Hive_Social/internal/config"
	"Hive_Social/internal/model"
	"Hive_Social/internal/pkg"
	"Hive_Social/internal/repository/mysql"
	"Hive_Social/internal/repository/redis"
	"Hive_Social/internal/router"
	"Hive_Social/internal/service"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load(os.Getenv("HIVE_CONFIG"))
	if err != nil {
		log.Fatal().Err(err).Msg("load config failed")
	}
	pkg.SetSecrets(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret)

	if err := mysql.InitDB(cfg.MySQL.DSN); err != nil {
		log.Fatal().Err(err).Msg("mysql init failed")
	}

	// 连接redis
	if err := redis.Init(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		log.Fatal().Err(err).Msg("redis init failed")
	}

	// 自动建表（开发阶段 OK）
	mysql.DB.AutoMigrate(
		&model.User{},
		&model.Community{},
		&model.CommunityMember{},
		&model.FriendRequest{},
		&model.Friendship{},
		&model.Message{},
		&model.SocialOutbox{},
	)

	ctx := context.Background()

	// outbox投递：有Kafka走Kafka，否则打日志
	sender := service.LogSender
	if cfg.Kafka.Enabled {
		producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("kafka producer init failed")
		}
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}
	go service.NewOutboxRelayer(mysql.DB, sender).Run(ctx)

	// member_count对账
	go service.NewMemberCountReconciler(mysql.DB).Run(ctx)

	// Gin
	r := router.InitRouter(mysql.DB, cfg)
	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
