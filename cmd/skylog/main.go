package main

import (
	"flag"
	"fmt"

	"github.com/flightlog-collective/skylog/internal/base"
	"github.com/flightlog-collective/skylog/internal/database"
	"github.com/flightlog-collective/skylog/internal/http_server"
	"github.com/flightlog-collective/skylog/internal/interfaces"
	"github.com/flightlog-collective/skylog/internal/interfaces/global"
	"github.com/flightlog-collective/skylog/internal/interfaces/service"
	"github.com/joho/godotenv"
)

func recoverFromError() {
	if r := recover(); r != nil {
		fmt.Printf("It looks like there are some serious errors, the details are as follows: %v", r)
	}
}

func main() {
	flag.Parse()

	defer recoverFromError()

	// .env缺失不算错误, 配置校验阶段会兜底
	_ = godotenv.Load(*global.EnvFilePath)

	logger := base.NewLogger()
	logger.Init(*global.DebugMode)

	logger.Info("Application initializing...")

	cleaner := base.NewCleaner(logger)
	cleaner.Init()
	defer cleaner.Clean()

	configManager := base.NewManager(logger)
	config := configManager.Config()

	// 本地联调用: 签发一个会话令牌后直接退出
	if *global.DevTokenFor != "" {
		claims := service.NewClaims(config.Server.HttpServer.JWT, *global.DevTokenFor, *global.DevTokenEmail)
		fmt.Println(claims.GenerateKey())
		return
	}

	shutdownCallback, databaseOperation, err := database.ConnectDatabase(logger, config, *global.DebugMode)
	if err != nil {
		logger.FatalF("Error occurred while initializing operation, details: %v", err)
		return
	}

	cleaner.Add(shutdownCallback)

	applicationContent := interfaces.NewApplicationContent(configManager, cleaner, logger, databaseOperation)

	if !config.Server.HttpServer.Enabled {
		logger.Fatal("Http server is disabled in config, nothing to serve")
		return
	}

	http_server.StartHttpServer(applicationContent)
}
